package compression

import "github.com/aalhour/binlogevents/internal/buffer"

// noneCompressor is the identity Compressor: Compress/Finish memcpy the
// pending input straight into the output, grounded on
// original_source/.../none_comp.h and the teacher's NoCompression branch.
type noneCompressor struct {
	pending []byte
}

func newNoneCompressor() *noneCompressor { return &noneCompressor{} }

func (c *noneCompressor) Feed(data []byte) error {
	c.pending = data
	return nil
}

func (c *noneCompressor) Compress(out *buffer.ManagedBufferSequence[byte]) CompressStatus {
	status := out.Write(c.pending)
	if status == CompressSuccess {
		c.pending = nil
	}
	return status
}

func (c *noneCompressor) Finish(out *buffer.ManagedBufferSequence[byte]) CompressStatus {
	return c.Compress(out)
}

func (c *noneCompressor) Reset() { c.pending = nil }

func (c *noneCompressor) SetPledgedInputSize(uint64) {}

func (c *noneCompressor) GetGrowConstraintHint() buffer.GrowConstraint {
	return buffer.NewGrowConstraint()
}

// noneDecompressor returns fed input unchanged, treating the entire
// input as a single frame.
type noneDecompressor struct {
	pending []byte
	pos     int
}

func newNoneDecompressor() *noneDecompressor { return &noneDecompressor{} }

func (d *noneDecompressor) Feed(data []byte) error {
	d.pending = data
	d.pos = 0
	return nil
}

func (d *noneDecompressor) Decompress(out *buffer.ManagedBuffer[byte], n int) DecompressStatus {
	available := len(d.pending) - d.pos
	if available == 0 {
		// Zero bytes produced, whatever was requested: for the identity
		// codec every exhaustion point is a clean frame boundary.
		return DecompressEnd
	}
	want := n
	if want > available {
		want = available
	}
	if status := out.ReserveWriteSize(want); status != CompressSuccess {
		if status == CompressExceedsMaxSize {
			return DecompressExceedsMaxSize
		}
		return DecompressOutOfMemory
	}
	copy(out.WritePart(), d.pending[d.pos:d.pos+want])
	out.IncreasePosition(want)
	d.pos += want
	if want < n {
		return DecompressTruncated
	}
	return DecompressSuccess
}

func (d *noneDecompressor) GetGrowConstraintHint() buffer.GrowConstraint {
	return buffer.NewGrowConstraint()
}

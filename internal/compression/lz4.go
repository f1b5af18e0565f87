package compression

import (
	"github.com/pierrec/lz4/v4"

	"github.com/aalhour/binlogevents/internal/buffer"
)

// lz4Compressor wraps lz4's streaming Writer. Like snappy, lz4 has no
// pledged-size concept wired here; SetPledgedInputSize is accepted but
// unused.
type lz4Compressor struct {
	sink    sequenceWriter
	w       *lz4.Writer
	pending []byte
}

func newLZ4Compressor() *lz4Compressor {
	c := &lz4Compressor{}
	c.w = lz4.NewWriter(&c.sink)
	return c
}

func (c *lz4Compressor) Feed(data []byte) error {
	c.pending = append(c.pending, data...)
	return nil
}

func (c *lz4Compressor) Compress(out *buffer.ManagedBufferSequence[byte]) CompressStatus {
	c.sink.out = out
	if len(c.pending) == 0 {
		return CompressSuccess
	}
	if _, err := c.w.Write(c.pending); err != nil {
		return statusFromWriteErr(err)
	}
	c.pending = c.pending[:0]
	return CompressSuccess
}

func (c *lz4Compressor) Finish(out *buffer.ManagedBufferSequence[byte]) CompressStatus {
	c.sink.out = out
	if len(c.pending) > 0 {
		if _, err := c.w.Write(c.pending); err != nil {
			return statusFromWriteErr(err)
		}
		c.pending = c.pending[:0]
	}
	if err := c.w.Close(); err != nil {
		return statusFromWriteErr(err)
	}
	c.w.Reset(&c.sink)
	return CompressSuccess
}

func (c *lz4Compressor) Reset() {
	c.pending = c.pending[:0]
	c.w.Reset(&c.sink)
}

func (c *lz4Compressor) SetPledgedInputSize(uint64) {}

func (c *lz4Compressor) GetGrowConstraintHint() buffer.GrowConstraint {
	hint := buffer.NewGrowConstraint()
	hint.SetGrowIncrement(lz4BlockSize)
	hint.SetBlockSize(lz4BlockSize)
	return hint
}

// lz4Decompressor replays accumulated input through a reusable lz4.Reader
// each call, same strategy as zstdDecompressor and snappyDecompressor.
type lz4Decompressor struct {
	r        *lz4.Reader
	feed     *feedBuffer
	produced int
}

func newLZ4Decompressor() *lz4Decompressor {
	feed := newFeedBuffer()
	return &lz4Decompressor{r: lz4.NewReader(feed.reader()), feed: feed}
}

func (d *lz4Decompressor) Feed(data []byte) error {
	return d.feed.Feed(data)
}

func (d *lz4Decompressor) Decompress(out *buffer.ManagedBuffer[byte], n int) DecompressStatus {
	d.feed.acknowledge()
	d.r.Reset(d.feed.reader())
	status, produced := runDecompress(d.r, d.produced, out, n)
	switch status {
	case DecompressCorrupted, DecompressOutOfMemory:
		d.produced = 0
		d.feed.reset()
	default:
		d.produced += produced
	}
	return status
}

func (d *lz4Decompressor) GetGrowConstraintHint() buffer.GrowConstraint {
	hint := buffer.NewGrowConstraint()
	hint.SetGrowIncrement(lz4BlockSize)
	hint.SetBlockSize(lz4BlockSize)
	return hint
}

// lz4BlockSize mirrors lz4's default block size (64 KiB, BlockSize64Kb).
const lz4BlockSize = 64 * 1024

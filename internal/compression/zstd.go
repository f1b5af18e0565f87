package compression

import (
	"github.com/klauspost/compress/zstd"

	"github.com/aalhour/binlogevents/internal/buffer"
)

// zstdCompressor wraps a reusable zstd.Encoder session, grounded on the
// teacher's compressZstd helper and
// original_source/.../zstd_comp.cpp's pledged-size contract.
type zstdCompressor struct {
	enc          *zstd.Encoder
	sink         sequenceWriter
	pending      []byte
	pledgedSize  uint64
	framePending bool
}

// newZstdCompressor binds enc to &c.sink once, for its whole lifetime.
// Compress/Finish only ever update c.sink.out in place and write through
// the same encoder session, the way snappyCompressor and lz4Compressor
// keep a persistent writer. Reset is reserved for actually starting a
// new frame (Finish, once the current one closes, and Reset).
func newZstdCompressor() (*zstdCompressor, error) {
	c := &zstdCompressor{pledgedSize: PledgedInputSizeUnset}
	enc, err := zstd.NewWriter(&c.sink, zstd.WithEncoderLevel(zstd.SpeedDefault))
	if err != nil {
		return nil, err
	}
	c.enc = enc
	return c, nil
}

func (c *zstdCompressor) Feed(data []byte) error {
	c.pending = data
	c.framePending = true
	return nil
}

// applyPledgedSize sets the frame's pledged size hint on the first write,
// since SetPledgedSize is only legal before any bytes are written to the
// frame (spec.md §4.3).
func (c *zstdCompressor) applyPledgedSize() {
	if c.pledgedSize != PledgedInputSizeUnset {
		_ = c.enc.SetPledgedSize(c.pledgedSize)
		c.pledgedSize = PledgedInputSizeUnset
	}
}

func (c *zstdCompressor) Compress(out *buffer.ManagedBufferSequence[byte]) CompressStatus {
	c.sink.out = out
	c.applyPledgedSize()
	if len(c.pending) > 0 {
		if _, err := c.enc.Write(c.pending); err != nil {
			return statusFromWriteErr(err)
		}
		c.pending = nil
	}
	if err := c.enc.Flush(); err != nil {
		return statusFromWriteErr(err)
	}
	return CompressSuccess
}

func (c *zstdCompressor) Finish(out *buffer.ManagedBufferSequence[byte]) CompressStatus {
	c.sink.out = out
	c.applyPledgedSize()
	if len(c.pending) > 0 {
		if _, err := c.enc.Write(c.pending); err != nil {
			return statusFromWriteErr(err)
		}
		c.pending = nil
	}
	if err := c.enc.Close(); err != nil {
		return statusFromWriteErr(err)
	}
	c.framePending = false
	c.enc.Reset(&c.sink)
	return CompressSuccess
}

func (c *zstdCompressor) Reset() {
	c.pending = nil
	c.framePending = false
	c.pledgedSize = PledgedInputSizeUnset
	c.enc.Reset(&c.sink)
}

// SetPledgedInputSize is only meaningful while the frame is empty
// (spec.md §4.3); this module does not separately enforce that
// precondition, matching the identity and none codecs.
func (c *zstdCompressor) SetPledgedInputSize(n uint64) {
	c.pledgedSize = n
}

// GetGrowConstraintHint suggests ZSTD's preferred streaming output block
// size as grow_increment, per spec.md §4.3.
func (c *zstdCompressor) GetGrowConstraintHint() buffer.GrowConstraint {
	hint := buffer.NewGrowConstraint()
	hint.SetGrowIncrement(zstdStreamOutSize)
	hint.SetBlockSize(zstdStreamOutSize)
	return hint
}

// zstdDecompressor replays accumulated input through a reusable
// zstd.Decoder session each call, per the feedBuffer replay strategy in
// adapters.go.
type zstdDecompressor struct {
	dec      *zstd.Decoder
	feed     *feedBuffer
	produced int
}

func newZstdDecompressor() (*zstdDecompressor, error) {
	dec, err := zstd.NewReader(nil)
	if err != nil {
		return nil, err
	}
	return &zstdDecompressor{dec: dec, feed: newFeedBuffer()}, nil
}

func (d *zstdDecompressor) Feed(data []byte) error {
	return d.feed.Feed(data)
}

func (d *zstdDecompressor) Decompress(out *buffer.ManagedBuffer[byte], n int) DecompressStatus {
	d.feed.acknowledge()
	if err := d.dec.Reset(d.feed.reader()); err != nil {
		return DecompressCorrupted
	}
	status, produced := runDecompress(d.dec, d.produced, out, n)
	switch status {
	case DecompressCorrupted, DecompressOutOfMemory:
		d.produced = 0
		d.feed.reset()
	default:
		d.produced += produced
	}
	return status
}

func (d *zstdDecompressor) GetGrowConstraintHint() buffer.GrowConstraint {
	hint := buffer.NewGrowConstraint()
	hint.SetGrowIncrement(zstdStreamOutSize)
	hint.SetBlockSize(zstdStreamOutSize)
	return hint
}

// zstdStreamOutSize mirrors ZSTD_DStreamOutSize()/ZSTD_CStreamOutSize(),
// the library's recommended streaming buffer size (128 KiB).
const zstdStreamOutSize = 128 * 1024

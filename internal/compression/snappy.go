package compression

import (
	"github.com/golang/snappy"

	"github.com/aalhour/binlogevents/internal/buffer"
)

// snappyCompressor wraps snappy's framed streaming writer. Snappy has no
// pledged-size hint; Feed copies input into pending, Compress writes
// pending into the buffered writer (which may hold it until a block
// fills), and Finish writes any remaining input and closes the writer,
// flushing everything and ending the frame.
type snappyCompressor struct {
	sink    sequenceWriter
	w       *snappy.Writer
	pending []byte
}

func newSnappyCompressor() *snappyCompressor {
	c := &snappyCompressor{}
	c.w = snappy.NewBufferedWriter(&c.sink)
	return c
}

func (c *snappyCompressor) Feed(data []byte) error {
	c.pending = append(c.pending, data...)
	return nil
}

func (c *snappyCompressor) Compress(out *buffer.ManagedBufferSequence[byte]) CompressStatus {
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

func (c *snappyCompressor) Finish(out *buffer.ManagedBufferSequence[byte]) CompressStatus {
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

func (c *snappyCompressor) Reset() {
	c.pending = c.pending[:0]
	c.w.Reset(&c.sink)
}

func (c *snappyCompressor) SetPledgedInputSize(uint64) {}

func (c *snappyCompressor) GetGrowConstraintHint() buffer.GrowConstraint {
	hint := buffer.NewGrowConstraint()
	hint.SetGrowIncrement(snappyBlockSize)
	hint.SetBlockSize(snappyBlockSize)
	return hint
}

// snappyDecompressor replays accumulated input through a reusable
// snappy.Reader each call, same strategy as zstdDecompressor.
type snappyDecompressor struct {
	r        *snappy.Reader
	feed     *feedBuffer
	produced int
}

func newSnappyDecompressor() *snappyDecompressor {
	feed := newFeedBuffer()
	return &snappyDecompressor{r: snappy.NewReader(feed.reader()), feed: feed}
}

func (d *snappyDecompressor) Feed(data []byte) error {
	return d.feed.Feed(data)
}

func (d *snappyDecompressor) Decompress(out *buffer.ManagedBuffer[byte], n int) DecompressStatus {
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

func (d *snappyDecompressor) GetGrowConstraintHint() buffer.GrowConstraint {
	hint := buffer.NewGrowConstraint()
	hint.SetGrowIncrement(snappyBlockSize)
	hint.SetBlockSize(snappyBlockSize)
	return hint
}

// snappyBlockSize mirrors snappy's framing format block size (64 KiB).
const snappyBlockSize = 64 * 1024

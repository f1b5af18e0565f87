package compression

import (
	"bytes"
	"errors"
	"io"

	"github.com/aalhour/binlogevents/internal/buffer"
)

// errSequenceExceedsMaxSize and errSequenceOutOfMemory let sequenceWriter
// report a ManagedBufferSequence grow failure through the io.Writer
// contract, to be unwrapped by the codec that owns the writer.
var (
	errSequenceExceedsMaxSize = errors.New("compression: output exceeds max size")
	errSequenceOutOfMemory    = errors.New("compression: output allocation failed")
)

// sequenceWriter adapts a ManagedBufferSequence[byte] to io.Writer, so a
// streaming encoder (zstd.Encoder, snappy.Writer, lz4.Writer) can write
// its output directly into the codec's growable destination.
type sequenceWriter struct {
	out *buffer.ManagedBufferSequence[byte]
}

func (w sequenceWriter) Write(p []byte) (int, error) {
	switch w.out.Write(p) {
	case buffer.GrowSuccess:
		return len(p), nil
	case buffer.GrowExceedsMaxSize:
		return 0, errSequenceExceedsMaxSize
	default:
		return 0, errSequenceOutOfMemory
	}
}

// statusFromWriteErr maps an error surfaced through sequenceWriter back
// into a CompressStatus.
func statusFromWriteErr(err error) CompressStatus {
	switch {
	case err == nil:
		return CompressSuccess
	case errors.Is(err, errSequenceExceedsMaxSize):
		return CompressExceedsMaxSize
	default:
		return CompressOutOfMemory
	}
}

// feedBuffer accumulates every byte fed to a Decompressor since the
// current frame began, and enforces the Feed precondition that a
// previous Feed's input must be consumed before another begins.
//
// Real streaming readers (zstd.Decoder, snappy.Reader, lz4.Reader) are
// pull-based: once their source io.Reader reports EOF mid-frame, they do
// not support being "unblocked" by more bytes arriving later on the same
// reader. To still support spec.md §4.3's "truncated, caller feeds more,
// retry" contract, the decompressors in this package replay from the
// start of feedBuffer on every Decompress call via the codec's cheap
// Reset(io.Reader) method, discarding the bytes already produced in this
// frame before reading the newly requested ones. This trades a bounded
// amount of redundant decode work (at most one frame's worth, replayed
// once per Decompress call within that frame) for correctness against
// libraries that were not designed for incremental resumption.
type feedBuffer struct {
	data    []byte
	fed     bool
	atStart bool
}

func newFeedBuffer() *feedBuffer {
	return &feedBuffer{atStart: true}
}

func (f *feedBuffer) Feed(data []byte) error {
	if f.fed {
		return errors.New("compression: Feed called before previous input was consumed")
	}
	f.data = append(f.data, data...)
	f.fed = true
	return nil
}

// acknowledge marks the pending Feed as consumed, permitting another.
func (f *feedBuffer) acknowledge() { f.fed = false }

// reader returns a fresh io.Reader over the full accumulated buffer.
func (f *feedBuffer) reader() io.Reader { return bytes.NewReader(f.data) }

// reset clears the buffer for a new frame.
func (f *feedBuffer) reset() {
	f.data = f.data[:0]
	f.fed = false
}

// runDecompress discards the bytes already produced earlier in this
// frame from rd, then reads up to n more bytes into out. It is shared by
// every streaming decompressor (zstd, snappy, lz4): each wires its own
// library-specific Reset(io.Reader) to replay from feedBuffer, then
// delegates the read-n-bytes-and-classify-the-outcome logic here. It
// returns the number of bytes actually produced during this call, which
// the caller accumulates into its running frame total.
func runDecompress(rd io.Reader, alreadyProduced int, out *buffer.ManagedBuffer[byte], n int) (DecompressStatus, int) {
	if alreadyProduced > 0 {
		if _, err := io.CopyN(io.Discard, rd, int64(alreadyProduced)); err != nil {
			return DecompressCorrupted, 0
		}
	}
	if n == 0 {
		return DecompressEnd, 0
	}
	if status := out.ReserveWriteSize(n); status != CompressSuccess {
		if status == CompressExceedsMaxSize {
			return DecompressExceedsMaxSize, 0
		}
		return DecompressOutOfMemory, 0
	}
	dst := out.WritePart()[:n]
	read, err := io.ReadFull(rd, dst)
	switch {
	case err == nil:
		out.IncreasePosition(read)
		return DecompressSuccess, read
	case errors.Is(err, io.EOF):
		return DecompressEnd, 0
	case errors.Is(err, io.ErrUnexpectedEOF):
		if read > 0 {
			out.IncreasePosition(read)
		}
		return DecompressTruncated, read
	default:
		return DecompressCorrupted, 0
	}
}

package compression

import "github.com/aalhour/binlogevents/internal/buffer"

// PledgedInputSizeUnset marks that no pledged input size has been set,
// per spec.md §9 Open Question #2: Reset must restore this sentinel
// rather than zero.
const PledgedInputSizeUnset = ^uint64(0)

// Compressor is the streaming compression contract for one frame at a
// time, grounded on
// original_source/libs/mysql/binlog/event/compression/compressor.h
// (spec.md §4.3).
type Compressor interface {
	// Feed records a reference to input bytes (no copy).
	//
	// REQUIRES: no unconsumed input from a previous Feed.
	Feed(data []byte) error

	// Compress consumes all pending input, writing output into out. It
	// may leave residual output buffered internally for a later call.
	Compress(out *buffer.ManagedBufferSequence[byte]) CompressStatus

	// Finish compresses any pending input, flushes internal buffers,
	// and closes the frame. On success the Compressor is ready for a
	// new frame.
	Finish(out *buffer.ManagedBufferSequence[byte]) CompressStatus

	// Reset aborts the current frame without producing output.
	Reset()

	// SetPledgedInputSize is a hint, legal only when the frame is
	// empty, allowing the codec to tune allocation upper bounds.
	SetPledgedInputSize(n uint64)

	// GetGrowConstraintHint returns the codec's preferred growth
	// policy for its output buffer.
	GetGrowConstraintHint() buffer.GrowConstraint
}

// Decompressor is the streaming decompression contract, grounded on
// original_source/libs/mysql/binlog/event/compression/decompressor.h
// (spec.md §4.3).
type Decompressor interface {
	// Feed records a reference to input bytes.
	//
	// REQUIRES: previous input fully consumed.
	Feed(data []byte) error

	// Decompress ensures out has at least n bytes of write space, then
	// decodes exactly n output bytes and advances out's position by n,
	// or reports why it could not.
	Decompress(out *buffer.ManagedBuffer[byte], n int) DecompressStatus

	// GetGrowConstraintHint returns the codec's preferred growth policy
	// for its output buffer (e.g. the codec's internal block size).
	GetGrowConstraintHint() buffer.GrowConstraint
}

// Type identifies a compression codec. ZSTD and None are the wire
// discriminants spec.md §6 defines for the payload-data header; Snappy
// and LZ4 are additional pluggable codecs this module exposes for direct
// construction (SPEC_FULL.md §11) but that never appear on the wire —
// the root package's payload header parser accepts only TypeZSTD and
// TypeNone, mapping every other byte (including these two) to corrupted,
// exactly as spec.md §6 requires ("Unknown codes → corrupted").
type Type uint8

const (
	TypeZSTD   Type = 0
	TypeSnappy Type = 1
	TypeLZ4    Type = 2
	TypeNone   Type = 255
)

func (t Type) String() string {
	switch t {
	case TypeZSTD:
		return "ZSTD"
	case TypeSnappy:
		return "Snappy"
	case TypeLZ4:
		return "LZ4"
	case TypeNone:
		return "None"
	default:
		return "Unknown"
	}
}

// Package compression implements the streaming Compressor/Decompressor
// contracts (spec.md §4.3) and the codecs that back them: the identity
// codec, ZSTD, Snappy, and LZ4.
package compression

import "github.com/aalhour/binlogevents/internal/buffer"

// CompressStatus is the three-way outcome of Feed/Compress/Finish,
// grounded on original_source/.../grow_status.cpp: compression can only
// fail the way a grow can fail.
type CompressStatus = buffer.GrowStatus

const (
	CompressSuccess        = buffer.GrowSuccess
	CompressOutOfMemory    = buffer.GrowOutOfMemory
	CompressExceedsMaxSize = buffer.GrowExceedsMaxSize
)

// DecompressStatus is the six-way outcome of Decompress, grounded on
// original_source/libs/mysql/binlog/event/compression/decompressor.h.
type DecompressStatus uint8

const (
	// DecompressSuccess means exactly the requested number of bytes was
	// produced.
	DecompressSuccess DecompressStatus = iota
	// DecompressEnd means zero bytes were requested/produced because the
	// input is at a clean frame boundary.
	DecompressEnd
	// DecompressTruncated means 0 < k < n bytes were produced before
	// input ran out; the frame is not reset and more input may be fed.
	DecompressTruncated
	// DecompressCorrupted means the codec detected invalid input; the
	// frame is reset.
	DecompressCorrupted
	// DecompressOutOfMemory means allocation failed; the frame is reset.
	DecompressOutOfMemory
	// DecompressExceedsMaxSize means the required size exceeds the
	// output GrowCalculator's max_size; the frame is not reset.
	DecompressExceedsMaxSize
)

func (s DecompressStatus) String() string {
	switch s {
	case DecompressSuccess:
		return "success"
	case DecompressEnd:
		return "end"
	case DecompressTruncated:
		return "truncated"
	case DecompressCorrupted:
		return "corrupted"
	case DecompressOutOfMemory:
		return "out_of_memory"
	case DecompressExceedsMaxSize:
		return "exceeds_max_size"
	default:
		return "unknown"
	}
}

// Terminal reports whether this status ends the frame (corrupted and
// out_of_memory both implicitly reset the codec's internal frame state).
func (s DecompressStatus) Terminal() bool {
	return s == DecompressCorrupted || s == DecompressOutOfMemory
}

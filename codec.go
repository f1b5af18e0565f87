package binlogevents

import "github.com/aalhour/binlogevents/internal/compression"

// CompressionType identifies a payload compression algorithm, per
// spec.md §6. ZSTD and None are the wire discriminants found in a
// payload-data header; Snappy and LZ4 are additional pluggable codecs
// (SPEC_FULL.md §11) that this module can construct directly but that
// never appear on the wire.
type CompressionType = compression.Type

// Compression type constants.
const (
	CompressionZSTD   = compression.TypeZSTD
	CompressionSnappy = compression.TypeSnappy
	CompressionLZ4    = compression.TypeLZ4
	CompressionNone   = compression.TypeNone
)

// BuildCompressor returns a Compressor for the given algorithm.
func BuildCompressor(t CompressionType) (compression.Compressor, error) {
	return compression.BuildCompressor(t)
}

// BuildDecompressor returns a Decompressor for the given algorithm.
func BuildDecompressor(t CompressionType) (compression.Decompressor, error) {
	return compression.BuildDecompressor(t)
}

package compression

import "fmt"

// BuildCompressor constructs a Compressor for t, grounded on
// original_source/libs/mysql/binlog/event/compression/factory.h's
// Compressor_builder::build switch.
func BuildCompressor(t Type) (Compressor, error) {
	switch t {
	case TypeNone:
		return newNoneCompressor(), nil
	case TypeZSTD:
		return newZstdCompressor()
	case TypeSnappy:
		return newSnappyCompressor(), nil
	case TypeLZ4:
		return newLZ4Compressor(), nil
	default:
		return nil, fmt.Errorf("compression: unknown codec type %d", t)
	}
}

// BuildDecompressor constructs a Decompressor for t, grounded on
// original_source/libs/mysql/binlog/event/compression/factory.h's
// Decompressor_builder::build switch.
func BuildDecompressor(t Type) (Decompressor, error) {
	switch t {
	case TypeNone:
		return newNoneDecompressor(), nil
	case TypeZSTD:
		return newZstdDecompressor()
	case TypeSnappy:
		return newSnappyDecompressor(), nil
	case TypeLZ4:
		return newLZ4Decompressor(), nil
	default:
		return nil, fmt.Errorf("compression: unknown codec type %d", t)
	}
}

package checksum

// Algorithm selects which digest PayloadEventStream.FrameDigest uses.
type Algorithm uint8

const (
	// AlgorithmNone disables the frame digest entirely.
	AlgorithmNone Algorithm = 0
	// AlgorithmCRC32C uses Castagnoli CRC32C.
	AlgorithmCRC32C Algorithm = 1
	// AlgorithmXXH3 uses the 64-bit XXH3 digest.
	AlgorithmXXH3 Algorithm = 2
)

// String returns a human-readable name for the algorithm.
func (a Algorithm) String() string {
	switch a {
	case AlgorithmNone:
		return "None"
	case AlgorithmCRC32C:
		return "CRC32C"
	case AlgorithmXXH3:
		return "XXH3"
	default:
		return "Unknown"
	}
}

// Compute returns the digest of data under the given algorithm, widened to
// 64 bits (CRC32C values occupy the low 32 bits). AlgorithmNone always
// yields 0.
func Compute(a Algorithm, data []byte) uint64 {
	switch a {
	case AlgorithmCRC32C:
		return uint64(Value(data))
	case AlgorithmXXH3:
		return XXH3(data)
	default:
		return 0
	}
}

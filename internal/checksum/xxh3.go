package checksum

import "github.com/zeebo/xxh3"

// XXH3 computes the 64-bit XXH3 digest of data. Unlike the teacher
// package this is wired to the real algorithm (github.com/zeebo/xxh3)
// rather than a hand-rolled reimplementation: nothing about this digest's
// use here (an opt-in diagnostic frame digest, never a wire-format
// invariant) requires reproducing a specific binary layout by hand.
func XXH3(data []byte) uint64 {
	return xxh3.Hash(data)
}

// XXH3Seed computes the 64-bit XXH3 digest of data under an explicit seed,
// used by tests that want a non-default digest stream.
func XXH3Seed(data []byte, seed uint64) uint64 {
	return xxh3.HashSeed(data, seed)
}

package checksum

import "testing"

func TestXXH3Deterministic(t *testing.T) {
	data := []byte("The quick brown fox jumps over the lazy dog")
	h1 := XXH3(data)
	h2 := XXH3(data)
	if h1 != h2 {
		t.Fatalf("XXH3 not deterministic: %x != %x", h1, h2)
	}
}

func TestXXH3Empty(t *testing.T) {
	// XXH3 of empty input is a fixed well-known constant, not zero.
	if XXH3(nil) != XXH3([]byte{}) {
		t.Fatalf("XXH3(nil) and XXH3([]byte{}) must agree")
	}
}

func TestXXH3DiffersByInput(t *testing.T) {
	a := XXH3([]byte("payload-a"))
	b := XXH3([]byte("payload-b"))
	if a == b {
		t.Fatalf("distinct inputs collided: %x", a)
	}
}

func TestXXH3SeedChangesDigest(t *testing.T) {
	data := []byte("frame digest input")
	if XXH3Seed(data, 1) == XXH3Seed(data, 2) {
		t.Fatalf("different seeds produced the same digest")
	}
	if XXH3(data) != XXH3Seed(data, 0) {
		t.Fatalf("XXH3 must equal XXH3Seed with seed 0")
	}
}

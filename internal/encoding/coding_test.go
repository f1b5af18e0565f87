package encoding

import (
	"bytes"
	"testing"
)

func TestDecodeFixed16(t *testing.T) {
	tests := []struct {
		name  string
		bytes []byte
		want  uint16
	}{
		{"zero", []byte{0x00, 0x00}, 0},
		{"one", []byte{0x01, 0x00}, 1},
		{"max", []byte{0xFF, 0xFF}, 0xFFFF},
		{"0x1234", []byte{0x34, 0x12}, 0x1234}, // little-endian
		{"256", []byte{0x00, 0x01}, 256},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := DecodeFixed16(tt.bytes); got != tt.want {
				t.Errorf("DecodeFixed16(%v) = %d, want %d", tt.bytes, got, tt.want)
			}
		})
	}
}

func TestDecodeFixed32(t *testing.T) {
	tests := []struct {
		name  string
		bytes []byte
		want  uint32
	}{
		{"zero", []byte{0x00, 0x00, 0x00, 0x00}, 0},
		{"one", []byte{0x01, 0x00, 0x00, 0x00}, 1},
		{"max", []byte{0xFF, 0xFF, 0xFF, 0xFF}, 0xFFFFFFFF},
		{"0x12345678", []byte{0x78, 0x56, 0x34, 0x12}, 0x12345678},
		{"65536", []byte{0x00, 0x00, 0x01, 0x00}, 65536},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := DecodeFixed32(tt.bytes); got != tt.want {
				t.Errorf("DecodeFixed32(%v) = %d, want %d", tt.bytes, got, tt.want)
			}
		})
	}
}

func TestDecodeFixed64(t *testing.T) {
	tests := []struct {
		name  string
		bytes []byte
		want  uint64
	}{
		{"zero", []byte{0, 0, 0, 0, 0, 0, 0, 0}, 0},
		{"one", []byte{1, 0, 0, 0, 0, 0, 0, 0}, 1},
		{"max", []byte{0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF}, 0xFFFFFFFFFFFFFFFF},
		{"0x0102030405060708", []byte{8, 7, 6, 5, 4, 3, 2, 1}, 0x0102030405060708},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := DecodeFixed64(tt.bytes); got != tt.want {
				t.Errorf("DecodeFixed64(%v) = %d, want %d", tt.bytes, got, tt.want)
			}
		})
	}
}

func TestAppendFixed64(t *testing.T) {
	tests := []struct {
		name  string
		value uint64
		want  []byte
	}{
		{"zero", 0, []byte{0, 0, 0, 0, 0, 0, 0, 0}},
		{"one", 1, []byte{1, 0, 0, 0, 0, 0, 0, 0}},
		{"max", 0xFFFFFFFFFFFFFFFF, []byte{0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF}},
		{"0x0102030405060708", 0x0102030405060708, []byte{8, 7, 6, 5, 4, 3, 2, 1}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := AppendFixed64(nil, tt.value)
			if !bytes.Equal(got, tt.want) {
				t.Errorf("AppendFixed64(%d) = %v, want %v", tt.value, got, tt.want)
			}
			if roundTrip := DecodeFixed64(got); roundTrip != tt.value {
				t.Errorf("DecodeFixed64(AppendFixed64(%d)) = %d, want %d", tt.value, roundTrip, tt.value)
			}
		})
	}

	// AppendFixed64 must extend an existing prefix rather than overwrite it.
	prefix := []byte{0xAA, 0xBB}
	got := AppendFixed64(prefix, 1)
	want := []byte{0xAA, 0xBB, 1, 0, 0, 0, 0, 0, 0, 0}
	if !bytes.Equal(got, want) {
		t.Errorf("AppendFixed64 with prefix = %v, want %v", got, want)
	}
}

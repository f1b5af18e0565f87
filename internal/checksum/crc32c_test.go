package checksum

import "testing"

// TestCRC32CBasic tests basic CRC32C computation.
func TestCRC32CBasic(t *testing.T) {
	tests := []struct {
		name string
		data []byte
		want uint32
	}{
		{"empty", []byte{}, 0},
		{"zero_byte", []byte{0x00}, 0x527d5351},
		{"one_byte_ff", []byte{0xff}, 0xff000000},
		// Standard test vector for CRC32C
		{"123456789", []byte("123456789"), 0xe3069283},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Value(tt.data)
			if got != tt.want {
				t.Errorf("Value(%v) = 0x%08x, want 0x%08x", tt.data, got, tt.want)
			}
		})
	}
}

// TestCRC32CStandardResults tests RFC3720 test vectors.
func TestCRC32CStandardResults(t *testing.T) {
	// From RFC 3720 section B.4
	buf := make([]byte, 32)

	for i := range buf {
		buf[i] = 0
	}
	if got := Value(buf); got != 0x8a9136aa {
		t.Errorf("All zeros: got 0x%08x, want 0x8a9136aa", got)
	}

	for i := range buf {
		buf[i] = 0xFF
	}
	if got := Value(buf); got != 0x62a8ab43 {
		t.Errorf("All 0xFF: got 0x%08x, want 0x62a8ab43", got)
	}

	for i := range buf {
		buf[i] = byte(i)
	}
	if got := Value(buf); got != 0x46dd794e {
		t.Errorf("Ascending: got 0x%08x, want 0x46dd794e", got)
	}

	for i := range buf {
		buf[i] = byte(31 - i)
	}
	if got := Value(buf); got != 0x113fdb5c {
		t.Errorf("Descending: got 0x%08x, want 0x113fdb5c", got)
	}
}

// TestCRC32CValues tests that different inputs produce different outputs.
func TestCRC32CValues(t *testing.T) {
	a := Value([]byte("a"))
	foo := Value([]byte("foo"))
	if a == foo {
		t.Errorf("Value(\"a\") == Value(\"foo\"), both 0x%08x", a)
	}
}

// TestCRC32CLargeBuffer tests CRC on larger buffers.
func TestCRC32CLargeBuffer(t *testing.T) {
	sizes := []int{1024, 4096, 32768, 65536}

	for _, size := range sizes {
		buf := make([]byte, size)
		for i := range buf {
			buf[i] = byte(i % 256)
		}
		if crc := Value(buf); crc == 0 && size > 0 {
			t.Logf("Warning: CRC of %d bytes is zero", size)
		}
	}
}

func BenchmarkCRC32C(b *testing.B) {
	data := make([]byte, 4096)
	for i := range data {
		data[i] = 'x'
	}
	b.SetBytes(int64(len(data)))

	for b.Loop() {
		Value(data)
	}
}

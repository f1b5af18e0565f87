package binlogevents

import "testing"

func TestLengthEncodedRoundTrip(t *testing.T) {
	values := []uint64{0, 1, 250, 251, 252, 0xfbff, 1 << 16, 1<<16 + 1, 1 << 24, 1<<24 + 1, 1 << 40, ^uint64(0)}
	for _, v := range values {
		buf := PutLengthEncoded(nil, v)
		got, n, ok := GetLengthEncoded(buf)
		if !ok {
			t.Fatalf("GetLengthEncoded(%d): not ok", v)
		}
		if got != v {
			t.Errorf("GetLengthEncoded(%d): got %d", v, got)
		}
		if n != len(buf) {
			t.Errorf("GetLengthEncoded(%d): consumed %d, want %d", v, n, len(buf))
		}
	}
}

func TestLengthEncodedWidths(t *testing.T) {
	cases := []struct {
		v    uint64
		want int
	}{
		{0, 1},
		{250, 1},
		{251, 3},
		{1<<16 - 1, 3},
		{1 << 16, 4},
		{1<<24 - 1, 4},
		{1 << 24, 9},
	}
	for _, c := range cases {
		buf := PutLengthEncoded(nil, c.v)
		if len(buf) != c.want {
			t.Errorf("PutLengthEncoded(%d): width %d, want %d", c.v, len(buf), c.want)
		}
	}
}

func TestGetLengthEncodedTruncated(t *testing.T) {
	cases := [][]byte{
		{},
		{0xfc, 0x01},
		{0xfd, 0x01, 0x02},
		{0xfe, 0x01, 0x02, 0x03},
	}
	for _, buf := range cases {
		if _, _, ok := GetLengthEncoded(buf); ok {
			t.Errorf("GetLengthEncoded(%v): want not ok", buf)
		}
	}
}

func TestPayloadHeaderRoundTrip(t *testing.T) {
	for _, h := range []PayloadHeader{
		{Compression: CompressionZSTD, PayloadSize: 1024, UncompressedSize: 4096},
		{Compression: CompressionNone, PayloadSize: 0, UncompressedSize: 0},
		{Compression: CompressionZSTD, PayloadSize: 1 << 32, UncompressedSize: 1 << 40},
	} {
		buf, err := EncodePayloadHeader(h)
		if err != nil {
			t.Fatalf("EncodePayloadHeader(%+v): %v", h, err)
		}
		got, n, err := DecodePayloadHeader(buf)
		if err != nil {
			t.Fatalf("DecodePayloadHeader: %v", err)
		}
		if n != len(buf) {
			t.Errorf("DecodePayloadHeader consumed %d, want %d", n, len(buf))
		}
		if got != h {
			t.Errorf("DecodePayloadHeader = %+v, want %+v", got, h)
		}
	}
}

func TestEncodePayloadHeaderRejectsUnwireableCompression(t *testing.T) {
	_, err := EncodePayloadHeader(PayloadHeader{Compression: CompressionSnappy})
	if err == nil {
		t.Fatal("EncodePayloadHeader(Snappy): want error, got nil")
	}
}

func TestDecodePayloadHeaderRejectsBadCompressionByte(t *testing.T) {
	var buf []byte
	buf = PutLengthEncoded(buf, FieldTypeCompressionType)
	buf = PutLengthEncoded(buf, 1)
	buf = append(buf, 0x7f)
	if _, _, err := DecodePayloadHeader(buf); err == nil {
		t.Fatal("DecodePayloadHeader: want error for invalid compression byte, got nil")
	}
}

func TestDecodePayloadHeaderRejectsBadFieldType(t *testing.T) {
	var buf []byte
	buf = PutLengthEncoded(buf, FieldTypePayloadSize) // wrong: compression must come first
	buf = PutLengthEncoded(buf, 1)
	buf = append(buf, WireCompressionZSTD)
	if _, _, err := DecodePayloadHeader(buf); err == nil {
		t.Fatal("DecodePayloadHeader: want error for out-of-order field, got nil")
	}
}

func TestDecodePayloadHeaderRejectsMissingEndMark(t *testing.T) {
	h := PayloadHeader{Compression: CompressionZSTD, PayloadSize: 10, UncompressedSize: 20}
	buf, err := EncodePayloadHeader(h)
	if err != nil {
		t.Fatalf("EncodePayloadHeader: %v", err)
	}
	truncated := buf[:len(buf)-1]
	if _, _, err := DecodePayloadHeader(truncated); err == nil {
		t.Fatal("DecodePayloadHeader: want error for missing end mark, got nil")
	}
}

func TestDecodePayloadHeaderTruncated(t *testing.T) {
	h := PayloadHeader{Compression: CompressionZSTD, PayloadSize: 1024, UncompressedSize: 4096}
	buf, err := EncodePayloadHeader(h)
	if err != nil {
		t.Fatalf("EncodePayloadHeader: %v", err)
	}
	for n := 0; n < len(buf)-1; n++ {
		if _, _, err := DecodePayloadHeader(buf[:n]); err == nil {
			t.Errorf("DecodePayloadHeader(buf[:%d]): want error, got nil", n)
		}
	}
}

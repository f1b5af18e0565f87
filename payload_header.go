package binlogevents

import "fmt"

// PutLengthEncoded appends v to dst in net_store_length format: a
// 64-bit integer stored in 1 to 9 bytes, short for small values.
// Values below 251 fit in a single byte; larger values are prefixed
// with a marker byte naming the width of a little-endian tail.
func PutLengthEncoded(dst []byte, v uint64) []byte {
	switch {
	case v < 251:
		return append(dst, byte(v))
	case v < 1<<16:
		dst = append(dst, 0xfc, byte(v), byte(v>>8))
		return dst
	case v < 1<<24:
		return append(dst, 0xfd, byte(v), byte(v>>8), byte(v>>16))
	default:
		dst = append(dst, 0xfe)
		for i := 0; i < 8; i++ {
			dst = append(dst, byte(v>>(8*i)))
		}
		return dst
	}
}

// GetLengthEncoded decodes a net_store_length value from the front of
// buf, returning the value and the number of bytes consumed. It
// reports ok=false if buf does not hold a complete encoding.
func GetLengthEncoded(buf []byte) (v uint64, n int, ok bool) {
	if len(buf) == 0 {
		return 0, 0, false
	}
	switch b := buf[0]; {
	case b < 0xfc:
		return uint64(b), 1, true
	case b == 0xfc:
		if len(buf) < 3 {
			return 0, 0, false
		}
		return uint64(buf[1]) | uint64(buf[2])<<8, 3, true
	case b == 0xfd:
		if len(buf) < 4 {
			return 0, 0, false
		}
		return uint64(buf[1]) | uint64(buf[2])<<8 | uint64(buf[3])<<16, 4, true
	case b == 0xfe:
		if len(buf) < 9 {
			return 0, 0, false
		}
		var v uint64
		for i := 0; i < 8; i++ {
			v |= uint64(buf[1+i]) << (8 * i)
		}
		return v, 9, true
	default:
		return 0, 0, false
	}
}

// Payload-data header field type codes. Each of CompressionType,
// PayloadSize, and UncompressedSize is followed by a 1-byte field
// length and then that many value bytes; EndMark terminates the
// header with no length or value.
const (
	FieldTypeCompressionType  uint64 = 1
	FieldTypePayloadSize      uint64 = 2
	FieldTypeUncompressedSize uint64 = 3
	FieldTypeEndMark          uint64 = 0
)

// Wire compression type discriminants. Only these two values are
// legal inside a payload-data header; anything else is corruption.
const (
	WireCompressionZSTD byte = 0
	WireCompressionNone byte = 255
)

// PayloadHeader is the parsed payload-data header that precedes the
// compressed stream inside a TRANSACTION_PAYLOAD_EVENT.
type PayloadHeader struct {
	Compression      CompressionType
	PayloadSize      uint64
	UncompressedSize uint64
}

// EncodePayloadHeader serializes h as the TLV triple-plus-end-mark
// sequence described by spec.md §6.
func EncodePayloadHeader(h PayloadHeader) ([]byte, error) {
	var wire byte
	switch h.Compression {
	case CompressionZSTD:
		wire = WireCompressionZSTD
	case CompressionNone:
		wire = WireCompressionNone
	default:
		return nil, fmt.Errorf("binlogevents: compression type %v has no wire encoding", h.Compression)
	}

	var buf []byte
	buf = PutLengthEncoded(buf, FieldTypeCompressionType)
	buf = PutLengthEncoded(buf, 1)
	buf = append(buf, wire)

	buf = PutLengthEncoded(buf, FieldTypePayloadSize)
	sizeField := PutLengthEncoded(nil, h.PayloadSize)
	buf = PutLengthEncoded(buf, uint64(len(sizeField)))
	buf = append(buf, sizeField...)

	buf = PutLengthEncoded(buf, FieldTypeUncompressedSize)
	uncompField := PutLengthEncoded(nil, h.UncompressedSize)
	buf = PutLengthEncoded(buf, uint64(len(uncompField)))
	buf = append(buf, uncompField...)

	buf = PutLengthEncoded(buf, FieldTypeEndMark)
	return buf, nil
}

// DecodePayloadHeader parses a payload-data header from the front of
// buf and returns the header along with the number of bytes consumed.
// Any deviation from the expected TLV shape — an unrecognized field
// type, a truncated field, or a compression byte outside
// {WireCompressionZSTD, WireCompressionNone} — is reported as an error
// rather than a partial result, matching the payload stream's
// treatment of a malformed header as corruption.
func DecodePayloadHeader(buf []byte) (PayloadHeader, int, error) {
	var h PayloadHeader
	pos := 0

	readField := func(want uint64) ([]byte, error) {
		ft, n, ok := GetLengthEncoded(buf[pos:])
		if !ok {
			return nil, fmt.Errorf("binlogevents: truncated payload header field type")
		}
		if ft != want {
			return nil, fmt.Errorf("binlogevents: unexpected payload header field type %d, want %d", ft, want)
		}
		pos += n
		length, n, ok := GetLengthEncoded(buf[pos:])
		if !ok {
			return nil, fmt.Errorf("binlogevents: truncated payload header field length")
		}
		pos += n
		if uint64(len(buf)-pos) < length {
			return nil, fmt.Errorf("binlogevents: truncated payload header field value")
		}
		val := buf[pos : pos+int(length)]
		pos += int(length)
		return val, nil
	}

	compressionBytes, err := readField(FieldTypeCompressionType)
	if err != nil {
		return h, 0, err
	}
	if len(compressionBytes) != 1 {
		return h, 0, fmt.Errorf("binlogevents: compression type field has length %d, want 1", len(compressionBytes))
	}
	switch compressionBytes[0] {
	case WireCompressionZSTD:
		h.Compression = CompressionZSTD
	case WireCompressionNone:
		h.Compression = CompressionNone
	default:
		return h, 0, fmt.Errorf("binlogevents: compression type byte %#x is not a valid wire discriminant", compressionBytes[0])
	}

	payloadSizeBytes, err := readField(FieldTypePayloadSize)
	if err != nil {
		return h, 0, err
	}
	v, n, ok := GetLengthEncoded(payloadSizeBytes)
	if !ok || n != len(payloadSizeBytes) {
		return h, 0, fmt.Errorf("binlogevents: malformed payload size value")
	}
	h.PayloadSize = v

	uncompressedSizeBytes, err := readField(FieldTypeUncompressedSize)
	if err != nil {
		return h, 0, err
	}
	v, n, ok = GetLengthEncoded(uncompressedSizeBytes)
	if !ok || n != len(uncompressedSizeBytes) {
		return h, 0, fmt.Errorf("binlogevents: malformed uncompressed size value")
	}
	h.UncompressedSize = v

	endMark, n, ok := GetLengthEncoded(buf[pos:])
	if !ok {
		return h, 0, fmt.Errorf("binlogevents: truncated payload header end mark")
	}
	if endMark != FieldTypeEndMark {
		return h, 0, fmt.Errorf("binlogevents: expected payload header end mark, got field type %d", endMark)
	}
	pos += n

	return h, pos, nil
}

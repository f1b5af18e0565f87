package gtid

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/aalhour/binlogevents/internal/encoding"
)

// MaxGno is the largest legal sequence number (spec.md §3: 1 <= gno < 2^63 - 1).
const MaxGno GNO = 1<<63 - 2

// Gtid is a Global Transaction Identifier: a pair (tsid, gno).
type Gtid struct {
	tsid Tsid
	gno  GNO
}

// New builds a Gtid from its components. It does not validate gno against
// MaxGno; callers parsing untrusted text should use Parse.
func New(tsid Tsid, gno GNO) Gtid {
	return Gtid{tsid: tsid, gno: gno}
}

func (g Gtid) Tsid() Tsid { return g.tsid }
func (g Gtid) UUID() UUID { return g.tsid.UUID() }
func (g Gtid) Tag() Tag   { return g.tsid.Tag() }
func (g Gtid) GNO() GNO   { return g.gno }

func (g Gtid) Equal(other Gtid) bool {
	return g.tsid.Equal(other.tsid) && g.gno == other.gno
}

// String renders "uuid[:tag]:gno" per spec.md §6's Gtid text grammar.
func (g Gtid) String() string {
	return fmt.Sprintf("%s%c%d", g.tsid.String(), gtidSeparator, g.gno)
}

// Parse reads a Gtid from text matching `uuid [":" tag] ":" gno`
// (spec.md §6). The tag segment is optional; when present it is
// distinguished from the trailing gno by trying to parse it as a decimal
// integer first.
func Parse(text string) (Gtid, error) {
	parts := strings.Split(text, string(gtidSeparator))
	if len(parts) < 2 {
		return Gtid{}, fmt.Errorf("gtid: malformed gtid %q", text)
	}
	u, err := ParseUUID(parts[0])
	if err != nil {
		return Gtid{}, fmt.Errorf("gtid: %w", err)
	}

	var tag Tag
	gnoText := parts[len(parts)-1]
	if len(parts) == 3 {
		parsed, n := ParseTag(parts[1] + "\x00")
		if n != len(parts[1]) {
			return Gtid{}, fmt.Errorf("gtid: malformed tag %q", parts[1])
		}
		tag = parsed
	} else if len(parts) != 2 {
		return Gtid{}, fmt.Errorf("gtid: malformed gtid %q", text)
	}

	gno, err := strconv.ParseInt(gnoText, 10, 64)
	if err != nil || gno < 1 || gno > MaxGno {
		return Gtid{}, fmt.Errorf("gtid: malformed gno %q", gnoText)
	}

	return Gtid{tsid: NewTsid(u, tag), gno: gno}, nil
}

// EncodeTagged appends the tagged binary form to dst: 16-byte uuid,
// 1-byte-length-prefixed tag, 8-byte little-endian gno (spec.md §4.5).
func (g Gtid) EncodeTagged(dst []byte) []byte {
	u := g.tsid.UUID()
	dst = append(dst, u[:]...)
	dst = g.tsid.Tag().Encode(dst)
	return encoding.AppendFixed64(dst, uint64(g.gno))
}

// DecodeTagged reads the tagged binary form from the front of buf,
// returning the Gtid and the number of bytes consumed.
func DecodeTagged(buf []byte) (Gtid, int, bool) {
	if len(buf) < UUIDByteLength {
		return Gtid{}, 0, false
	}
	var u UUID
	copy(u[:], buf[:UUIDByteLength])
	pos := UUIDByteLength

	tag, n, ok := DecodeTag(buf[pos:])
	if !ok {
		return Gtid{}, 0, false
	}
	pos += n

	if len(buf)-pos < 8 {
		return Gtid{}, 0, false
	}
	gno := int64(encoding.DecodeFixed64(buf[pos:]))
	pos += 8

	return Gtid{tsid: NewTsid(u, tag), gno: gno}, pos, true
}

// EncodeUntagged appends the untagged binary form to dst: 16-byte uuid,
// 8-byte little-endian gno, with no tag bytes. The format is selected by
// the caller's out-of-band flag rather than by inspecting the tag
// (spec.md §4.5); callers must only use this for an untagged Gtid.
func (g Gtid) EncodeUntagged(dst []byte) []byte {
	u := g.tsid.UUID()
	dst = append(dst, u[:]...)
	return encoding.AppendFixed64(dst, uint64(g.gno))
}

// DecodeUntagged reads the untagged binary form from the front of buf.
func DecodeUntagged(buf []byte) (Gtid, int, bool) {
	if len(buf) < UUIDByteLength+8 {
		return Gtid{}, 0, false
	}
	var u UUID
	copy(u[:], buf[:UUIDByteLength])
	gno := int64(encoding.DecodeFixed64(buf[UUIDByteLength:]))
	return Gtid{tsid: NewTsid(u, Tag{}), gno: gno}, UUIDByteLength + 8, true
}

// Format selects the binary encoding used for a Gtid: untagged (no tag
// bytes) or tagged (tag length + bytes always present, even if empty).
// Grounded on original_source/libs/mysql/gtid/gtid_format.h.
type Format uint8

const (
	FormatUntagged Format = 0
	FormatTagged   Format = 1
)

func (f Format) String() string {
	if f == FormatTagged {
		return "tagged"
	}
	return "untagged"
}

package gtid

import "strings"

// TagMaxLength is the maximum number of characters in a tag.
const TagMaxLength = 32

// gtidSeparator separates uuid, tag, and gno in a Gtid's text form.
const gtidSeparator = ':'

// gtidSetSeparator separates uuid_sets in a GtidSet's text form.
const gtidSetSeparator = ','

// Tag is a normalized string of 0..32 characters from the alphabet
// [a-z_][a-z0-9_]*. The empty tag is legal and denotes "untagged".
type Tag struct {
	data string
}

// NewTag parses text with ParseTag and discards the count, returning the
// empty Tag if text is not a valid tag.
func NewTag(text string) Tag {
	t, _ := ParseTag(text)
	return t
}

// IsEmpty reports whether the tag is untagged.
func (t Tag) IsEmpty() bool { return t.data == "" }

// IsDefined reports whether the tag is non-empty.
func (t Tag) IsDefined() bool { return !t.IsEmpty() }

// String returns the normalized (lowercased) tag text.
func (t Tag) String() string { return t.data }

// Len returns the number of characters in the tag.
func (t Tag) Len() int { return len(t.data) }

func (t Tag) Equal(other Tag) bool { return t.data == other.data }

// Less compares tags lexicographically on their normalized text.
func (t Tag) Less(other Tag) bool { return t.data < other.data }

func isValidEndChar(c byte) bool {
	return c == gtidSeparator || c == 0 || c == gtidSetSeparator
}

func isTagChar(c byte, pos int) bool {
	isAlpha := (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z') || c == '_'
	isDigit := c >= '0' && c <= '9'
	return isAlpha || (isDigit && pos > 0)
}

// ParseTag reads a tag from the front of text: skips leading whitespace,
// reads valid tag characters up to TagMaxLength, skips trailing
// whitespace, and requires the terminator to be NUL, ':', or ','.
//
// Returns the parsed (lowercased) tag and the number of bytes of text
// consumed up to and including the trailing whitespace. If the
// terminator is invalid, returns the empty tag and 0, mirroring
// Tag::from_cstring's failure contract (spec.md §4.6).
func ParseTag(text string) (Tag, int) {
	pos := 0
	for pos < len(text) && isSpace(text[pos]) {
		pos++
	}
	start := pos
	length := 0
	for pos < len(text) && isTagChar(text[pos], length) && length < TagMaxLength {
		length++
		pos++
	}
	for pos < len(text) && isSpace(text[pos]) {
		pos++
	}
	var term byte
	if pos < len(text) {
		term = text[pos]
	}
	if !isValidEndChar(term) {
		return Tag{}, 0
	}
	return Tag{data: strings.ToLower(text[start : start+length])}, pos
}

func isSpace(c byte) bool {
	return c == ' ' || c == '\t' || c == '\n' || c == '\r' || c == '\v' || c == '\f'
}

// Encode appends the tag's 1-byte-length-prefixed text to dst, matching
// the binary form spec.md §4.5 describes for a tagged Gtid: "variable-length
// tag (1-byte length then raw bytes, length ≤ 32)".
func (t Tag) Encode(dst []byte) []byte {
	dst = append(dst, byte(len(t.data)))
	return append(dst, t.data...)
}

// DecodeTag reads a 1-byte-length-prefixed tag from the front of buf,
// returning the tag and the number of bytes consumed. It fails if buf is
// truncated, the declared length exceeds TagMaxLength, or the decoded
// text is not itself a valid tag.
func DecodeTag(buf []byte) (Tag, int, bool) {
	if len(buf) == 0 {
		return Tag{}, 0, false
	}
	length := int(buf[0])
	if length > TagMaxLength || len(buf)-1 < length {
		return Tag{}, 0, false
	}
	raw := string(buf[1 : 1+length])
	if length == 0 {
		return Tag{}, 1, true
	}
	tag, consumed := ParseTag(raw + "\x00")
	if consumed != length {
		return Tag{}, 0, false
	}
	return tag, 1 + length, true
}

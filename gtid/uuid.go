// Package gtid implements the GTID (Global Transaction Identifier) value
// types and set algebra: Uuid, Tag, Tsid, Gtid, and GtidSet.
//
// Reference: MySQL libs/mysql/gtid (uuid.h, tag.cpp, tsid.cpp, gtidset.cpp).
package gtid

import (
	"encoding/hex"
	"errors"
	"fmt"
)

// UUIDByteLength is the number of bytes in a binary UUID.
const UUIDByteLength = 16

// UUIDTextLength is the number of characters in canonical 8-4-4-4-12 text form.
const UUIDTextLength = 36

// ErrMalformedUUID is returned when text does not parse as a canonical UUID.
var ErrMalformedUUID = errors.New("gtid: malformed uuid")

// UUID is a 16-byte source identifier.
type UUID [UUIDByteLength]byte

var uuidDashPositions = [4]int{8, 13, 18, 23}

// ParseUUID parses the canonical 8-4-4-4-12 hyphenated hex form.
func ParseUUID(text string) (UUID, error) {
	var u UUID
	if len(text) != UUIDTextLength {
		return u, ErrMalformedUUID
	}
	for _, pos := range uuidDashPositions {
		if text[pos] != '-' {
			return u, ErrMalformedUUID
		}
	}
	hexOnly := make([]byte, 0, 32)
	for i := 0; i < len(text); i++ {
		if text[i] == '-' {
			continue
		}
		hexOnly = append(hexOnly, text[i])
	}
	if _, err := hex.Decode(u[:], hexOnly); err != nil {
		return UUID{}, fmt.Errorf("%w: %v", ErrMalformedUUID, err)
	}
	return u, nil
}

// String renders the UUID in canonical 8-4-4-4-12 hex form.
func (u UUID) String() string {
	enc := hex.EncodeToString(u[:])
	return fmt.Sprintf("%s-%s-%s-%s-%s", enc[0:8], enc[8:12], enc[12:16], enc[16:20], enc[20:32])
}

// Compare orders two UUIDs the way the source does: byte-wise comparison
// of the operands in reversed argument order (memcmp(rhs, lhs)), not the
// natural memcmp(lhs, rhs). See DESIGN.md Open Question #1. Returns a
// negative number, zero, or a positive number as a < b, a == b, a > b
// under this reversed convention.
func (a UUID) Compare(b UUID) int {
	for i := 0; i < UUIDByteLength; i++ {
		if b[i] != a[i] {
			if b[i] < a[i] {
				return -1
			}
			return 1
		}
	}
	return 0
}

// Less reports whether a sorts before b under Compare.
func (a UUID) Less(b UUID) bool {
	return a.Compare(b) < 0
}

package gtid

import "fmt"

// Tsid (Transaction Source Identifier) is a pair (uuid, tag). Ordered by
// uuid then tag.
type Tsid struct {
	uuid UUID
	tag  Tag
}

// NewTsid builds a Tsid from its components.
func NewTsid(uuid UUID, tag Tag) Tsid {
	return Tsid{uuid: uuid, tag: tag}
}

func (t Tsid) UUID() UUID { return t.uuid }
func (t Tsid) Tag() Tag   { return t.tag }

// IsTagged reports whether this Tsid carries a non-empty tag.
func (t Tsid) IsTagged() bool { return t.tag.IsDefined() }

func (t Tsid) Equal(other Tsid) bool {
	return t.uuid == other.uuid && t.tag.Equal(other.tag)
}

// Less orders by uuid first; ties broken by tag.
func (t Tsid) Less(other Tsid) bool {
	if t.uuid != other.uuid {
		return t.uuid.Less(other.uuid)
	}
	return t.tag.Less(other.tag)
}

// String renders "uuid" for an untagged Tsid, or "uuid:tag" for a tagged one.
func (t Tsid) String() string {
	if t.tag.IsEmpty() {
		return t.uuid.String()
	}
	return fmt.Sprintf("%s%c%s", t.uuid.String(), gtidSeparator, t.tag.String())
}

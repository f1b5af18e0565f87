package gtid

import (
	"sort"
	"strings"
)

// GtidSet is a two-level mapping uuid -> (tag -> sorted set of
// non-overlapping, non-contiguous GnoIntervals), per spec.md §3. The zero
// value is an empty, ready-to-use set.
type GtidSet struct {
	buckets map[UUID]map[Tag][]GnoInterval
}

// NewGtidSet returns an empty GtidSet.
func NewGtidSet() *GtidSet {
	return &GtidSet{buckets: make(map[UUID]map[Tag][]GnoInterval)}
}

// Add inserts interval into the bucket for tsid, merging it with any
// existing interval it intersects or is contiguous with (spec.md §4.5
// step 1-3). This never fails: see DESIGN.md Open Question #3.
func (s *GtidSet) Add(tsid Tsid, interval GnoInterval) {
	if s.buckets == nil {
		s.buckets = make(map[UUID]map[Tag][]GnoInterval)
	}
	tagMap, ok := s.buckets[tsid.UUID()]
	if !ok {
		tagMap = make(map[Tag][]GnoInterval)
		s.buckets[tsid.UUID()] = tagMap
	}

	intervals := tagMap[tsid.Tag()]
	current := interval
	var kept []GnoInterval
	for _, existing := range intervals {
		if existing.IntersectsOrContiguous(current) {
			current = current.Union(existing)
			continue
		}
		kept = append(kept, existing)
	}
	kept = append(kept, current)
	sort.Slice(kept, func(i, j int) bool { return kept[i].Less(kept[j]) })
	tagMap[tsid.Tag()] = kept
}

// AddGtid inserts the single-GNO interval for g.
func (s *GtidSet) AddGtid(g Gtid) {
	s.Add(g.Tsid(), NewGnoInterval(g.GNO(), g.GNO()))
}

// AddSet unions every interval of other into s.
func (s *GtidSet) AddSet(other *GtidSet) {
	for u, tagMap := range other.buckets {
		for tag, intervals := range tagMap {
			for _, interval := range intervals {
				s.Add(NewTsid(u, tag), interval)
			}
		}
	}
}

// Contains reports whether g's gno falls within a recorded interval for
// g's tsid.
func (s *GtidSet) Contains(g Gtid) bool {
	tagMap, ok := s.buckets[g.UUID()]
	if !ok {
		return false
	}
	intervals, ok := tagMap[g.Tag()]
	if !ok {
		return false
	}
	i := sort.Search(len(intervals), func(i int) bool { return intervals[i].End() >= g.GNO() })
	return i < len(intervals) && intervals[i].Start() <= g.GNO()
}

// IsEmpty reports whether the set has no tsids recorded.
func (s *GtidSet) IsEmpty() bool { return len(s.buckets) == 0 }

// Reset empties the set.
func (s *GtidSet) Reset() { s.buckets = make(map[UUID]map[Tag][]GnoInterval) }

// NumTsids returns the number of distinct (uuid, tag) pairs recorded.
func (s *GtidSet) NumTsids() int {
	n := 0
	for _, tagMap := range s.buckets {
		n += len(tagMap)
	}
	return n
}

// Count returns the total number of GNOs covered by the set.
func (s *GtidSet) Count() int64 {
	var n int64
	for _, tagMap := range s.buckets {
		for _, intervals := range tagMap {
			for _, interval := range intervals {
				n += interval.Count()
			}
		}
	}
	return n
}

// sortedUUIDs returns the set's uuid keys ordered by UUID.Compare.
func (s *GtidSet) sortedUUIDs() []UUID {
	uuids := make([]UUID, 0, len(s.buckets))
	for u := range s.buckets {
		uuids = append(uuids, u)
	}
	sort.Slice(uuids, func(i, j int) bool { return uuids[i].Less(uuids[j]) })
	return uuids
}

func sortedTags(tagMap map[Tag][]GnoInterval) []Tag {
	tags := make([]Tag, 0, len(tagMap))
	for t := range tagMap {
		tags = append(tags, t)
	}
	sort.Slice(tags, func(i, j int) bool { return tags[i].Less(tags[j]) })
	return tags
}

// String renders the set per the §6 text grammar: uuid_sets separated by
// ',', within a uuid_set tag-groups separated by ':', within a tag-group
// intervals separated by ':' (the tag itself, when non-empty, prefixes
// its group). An empty set renders as "".
func (s *GtidSet) String() string {
	if s.IsEmpty() {
		return ""
	}
	var uuidSets []string
	for _, u := range s.sortedUUIDs() {
		tagMap := s.buckets[u]
		var groups []string
		for _, tag := range sortedTags(tagMap) {
			intervals := tagMap[tag]
			var parts []string
			if tag.IsDefined() {
				parts = append(parts, tag.String())
			}
			for _, interval := range intervals {
				parts = append(parts, interval.String())
			}
			groups = append(groups, strings.Join(parts, string(gtidSeparator)))
		}
		uuidSets = append(uuidSets, u.String()+string(gtidSeparator)+strings.Join(groups, string(gtidSeparator)))
	}
	return strings.Join(uuidSets, string(gtidSetSeparator))
}

// Equal reports whether s and other contain exactly the same (uuid, tag,
// interval) triples.
func (s *GtidSet) Equal(other *GtidSet) bool {
	if len(s.buckets) != len(other.buckets) {
		return false
	}
	for u, tagMap := range s.buckets {
		otherTagMap, ok := other.buckets[u]
		if !ok || len(tagMap) != len(otherTagMap) {
			return false
		}
		for tag, intervals := range tagMap {
			otherIntervals, ok := otherTagMap[tag]
			if !ok || len(intervals) != len(otherIntervals) {
				return false
			}
			for i, interval := range intervals {
				if !interval.Equal(otherIntervals[i]) {
					return false
				}
			}
		}
	}
	return true
}

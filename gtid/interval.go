package gtid

import "fmt"

// GNO is a group number: a positive sequence number within one source
// identity. Legal range is 1 <= gno < 2^63 - 1 (spec.md §3).
type GNO = int64

// gnoIntervalSeparator is the '-' in "start-end".
const gnoIntervalSeparator = '-'

// GnoInterval is a closed interval [start, end] of positive GNOs.
// Internally stored as [start, nextAfterEnd) to make contiguity checks
// ("end+1 of one equals start of the other") a plain equality, following
// the source's Gno_interval representation.
type GnoInterval struct {
	start        GNO
	nextAfterEnd GNO
}

// NewGnoInterval builds the closed interval [start, end].
func NewGnoInterval(start, end GNO) GnoInterval {
	return GnoInterval{start: start, nextAfterEnd: end + 1}
}

func (g GnoInterval) Start() GNO { return g.start }
func (g GnoInterval) End() GNO   { return g.nextAfterEnd - 1 }

// Count returns the number of GNOs covered by the interval.
func (g GnoInterval) Count() int64 { return g.nextAfterEnd - g.start }

// IsValid reports whether the interval is well-formed: start > 0 and
// start <= end.
func (g GnoInterval) IsValid() bool {
	return g.start > 0 && g.start < g.nextAfterEnd
}

// Less establishes the total order used to keep a bucket's intervals
// sorted: by start, then by end.
func (g GnoInterval) Less(other GnoInterval) bool {
	if g.start != other.start {
		return g.start < other.start
	}
	return g.End() < other.End()
}

func (g GnoInterval) Equal(other GnoInterval) bool {
	return g.start == other.start && g.nextAfterEnd == other.nextAfterEnd
}

// Intersects reports whether the two intervals share at least one GNO.
func (g GnoInterval) Intersects(other GnoInterval) bool {
	otherStartsInThis := other.start >= g.start && other.start < g.nextAfterEnd
	thisStartsInOther := g.start >= other.start && g.start <= other.End()
	return otherStartsInThis || thisStartsInOther
}

// Contiguous reports whether the two intervals are adjacent with no gap:
// one interval's end+1 equals the other's start.
func (g GnoInterval) Contiguous(other GnoInterval) bool {
	return other.start == g.nextAfterEnd || other.End()+1 == g.start
}

// IntersectsOrContiguous reports whether other can be merged into g
// without leaving a gap or overlap unresolved.
func (g GnoInterval) IntersectsOrContiguous(other GnoInterval) bool {
	return g.Intersects(other) || g.Contiguous(other)
}

// Union returns the smallest interval covering both g and other. The
// caller must have already confirmed IntersectsOrContiguous; this port
// never fails the way the source's add() can signal non-intersection,
// since GtidSet.Add only calls it after that check (see DESIGN.md
// Open Question #3).
func (g GnoInterval) Union(other GnoInterval) GnoInterval {
	start := g.start
	if other.start < start {
		start = other.start
	}
	nextAfterEnd := g.nextAfterEnd
	if other.nextAfterEnd > nextAfterEnd {
		nextAfterEnd = other.nextAfterEnd
	}
	return GnoInterval{start: start, nextAfterEnd: nextAfterEnd}
}

// String renders "start" for a single-element interval, else "start-end".
func (g GnoInterval) String() string {
	if g.start == g.End() {
		return fmt.Sprintf("%d", g.start)
	}
	return fmt.Sprintf("%d%c%d", g.start, gnoIntervalSeparator, g.End())
}

package gtid

import "testing"

func TestGnoIntervalBasics(t *testing.T) {
	iv := NewGnoInterval(5, 10)
	if iv.Start() != 5 || iv.End() != 10 {
		t.Errorf("Start/End = %d/%d, want 5/10", iv.Start(), iv.End())
	}
	if iv.Count() != 6 {
		t.Errorf("Count() = %d, want 6", iv.Count())
	}
	if !iv.IsValid() {
		t.Error("IsValid() = false for a well-formed interval")
	}
}

func TestGnoIntervalSingleElementString(t *testing.T) {
	iv := NewGnoInterval(7, 7)
	if got := iv.String(); got != "7" {
		t.Errorf("String() = %q, want %q", got, "7")
	}
	rng := NewGnoInterval(7, 9)
	if got := rng.String(); got != "7-9" {
		t.Errorf("String() = %q, want %q", got, "7-9")
	}
}

func TestGnoIntervalIntersects(t *testing.T) {
	a := NewGnoInterval(1, 10)
	cases := []struct {
		b    GnoInterval
		want bool
	}{
		{NewGnoInterval(5, 15), true},   // overlaps tail
		{NewGnoInterval(-5, 5), true},   // overlaps head (gno can be <=0 here for the test's sake)
		{NewGnoInterval(3, 7), true},    // fully inside
		{NewGnoInterval(1, 10), true},   // identical
		{NewGnoInterval(11, 20), false}, // adjacent, not overlapping
		{NewGnoInterval(20, 30), false}, // disjoint
	}
	for _, c := range cases {
		if got := a.Intersects(c.b); got != c.want {
			t.Errorf("Intersects(%v, %v) = %v, want %v", a, c.b, got, c.want)
		}
	}
}

func TestGnoIntervalContiguous(t *testing.T) {
	a := NewGnoInterval(1, 10)
	if !a.Contiguous(NewGnoInterval(11, 20)) {
		t.Error("[1,10] and [11,20] should be contiguous")
	}
	if !NewGnoInterval(11, 20).Contiguous(a) {
		t.Error("contiguity must be symmetric")
	}
	if a.Contiguous(NewGnoInterval(12, 20)) {
		t.Error("[1,10] and [12,20] should not be contiguous (gap at 11)")
	}
	if a.Contiguous(NewGnoInterval(5, 20)) {
		// overlapping intervals are not reported as "contiguous" by this
		// predicate alone, though they are still mergeable via Intersects.
		t.Error("overlapping intervals reported contiguous")
	}
}

func TestGnoIntervalUnion(t *testing.T) {
	a := NewGnoInterval(1, 10)
	b := NewGnoInterval(11, 20)
	u := a.Union(b)
	if u.Start() != 1 || u.End() != 20 {
		t.Errorf("Union = [%d,%d], want [1,20]", u.Start(), u.End())
	}

	c := NewGnoInterval(5, 8) // fully inside a
	u2 := a.Union(c)
	if u2.Start() != 1 || u2.End() != 10 {
		t.Errorf("Union with subset = [%d,%d], want [1,10]", u2.Start(), u2.End())
	}
}

func TestGnoIntervalEqual(t *testing.T) {
	a := NewGnoInterval(1, 10)
	b := NewGnoInterval(1, 10)
	if !a.Equal(b) {
		t.Error("identical intervals compared unequal")
	}
	if a.Equal(NewGnoInterval(1, 11)) {
		t.Error("different intervals compared equal")
	}
}

package buffer

import "math"

// MachineMaxSize is the largest representable size, used as the default
// (unconstrained) MaxSize.
const MachineMaxSize = math.MaxUint64

// GrowConstraint is a hint a codec publishes (via GetGrowConstraintHint)
// describing the growth policy it would prefer its caller use, without
// itself owning any buffer. Grounded on
// original_source/libs/mysql/binlog/event/compression/buffer/grow_constraint.h.
type GrowConstraint struct {
	maxSize      uint64
	growFactor   float64
	growIncrement uint64
	blockSize    uint64
}

// NewGrowConstraint returns the default, unconstrained GrowConstraint:
// max_size unbounded, grow_factor 1.0, grow_increment 0, block_size 1.
func NewGrowConstraint() GrowConstraint {
	return GrowConstraint{
		maxSize:       MachineMaxSize,
		growFactor:    1.0,
		growIncrement: 0,
		blockSize:     1,
	}
}

func (g GrowConstraint) MaxSize() uint64       { return g.maxSize }
func (g GrowConstraint) GrowFactor() float64   { return g.growFactor }
func (g GrowConstraint) GrowIncrement() uint64 { return g.growIncrement }
func (g GrowConstraint) BlockSize() uint64     { return g.blockSize }

func (g *GrowConstraint) SetMaxSize(n uint64)       { g.maxSize = n }
func (g *GrowConstraint) SetGrowFactor(f float64)   { g.growFactor = f }
func (g *GrowConstraint) SetGrowIncrement(n uint64) { g.growIncrement = n }
func (g *GrowConstraint) SetBlockSize(n uint64)     { g.blockSize = n }

// CombineWith returns a constraint with the smallest max_size between the
// two, and the largest grow_factor, grow_increment, and block_size. Used
// to tighten a caller's GrowCalculator with a codec's published hint
// (spec.md §4.4 step 3).
func (g GrowConstraint) CombineWith(other GrowConstraint) GrowConstraint {
	ret := NewGrowConstraint()
	ret.maxSize = min(g.maxSize, other.maxSize)
	ret.growFactor = max(g.growFactor, other.growFactor)
	ret.growIncrement = max(g.growIncrement, other.growIncrement)
	ret.blockSize = max(g.blockSize, other.blockSize)
	return ret
}

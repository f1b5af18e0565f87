package buffer

// GrowStatus is the outcome of a GrowCalculator decision.
type GrowStatus uint8

const (
	GrowSuccess GrowStatus = iota
	GrowOutOfMemory
	GrowExceedsMaxSize
)

func (s GrowStatus) String() string {
	switch s {
	case GrowSuccess:
		return "success"
	case GrowOutOfMemory:
		return "out_of_memory"
	case GrowExceedsMaxSize:
		return "exceeds_max_size"
	default:
		return "unknown"
	}
}

// Defaults for GrowCalculator, matching
// original_source/libs/mysql/containers/buffers/grow_calculator.h.
const (
	DefaultMaxSize      uint64  = 1024 * 1024 * 1024 // 1 GiB
	DefaultGrowFactor    float64 = 2.0
	DefaultGrowIncrement uint64  = 1024
	DefaultBlockSize     uint64  = 1024
)

// GrowCalculator decides how large a buffer should become to satisfy a
// requested size, per spec.md §4.2. It embeds the same four knobs as
// GrowConstraint with different defaults suited to actually driving
// allocation rather than merely hinting at it.
type GrowCalculator struct {
	constraint GrowConstraint
}

// NewGrowCalculator returns a calculator with the documented defaults:
// max_size 1 GiB, grow_factor 2.0, grow_increment 1 KiB, block_size 1 KiB.
func NewGrowCalculator() GrowCalculator {
	return GrowCalculator{constraint: GrowConstraint{
		maxSize:       DefaultMaxSize,
		growFactor:    DefaultGrowFactor,
		growIncrement: DefaultGrowIncrement,
		blockSize:     DefaultBlockSize,
	}}
}

func (g GrowCalculator) MaxSize() uint64       { return g.constraint.maxSize }
func (g GrowCalculator) GrowFactor() float64   { return g.constraint.growFactor }
func (g GrowCalculator) GrowIncrement() uint64 { return g.constraint.growIncrement }
func (g GrowCalculator) BlockSize() uint64     { return g.constraint.blockSize }

func (g *GrowCalculator) SetMaxSize(n uint64)       { g.constraint.maxSize = n }
func (g *GrowCalculator) SetGrowFactor(f float64)   { g.constraint.growFactor = f }
func (g *GrowCalculator) SetGrowIncrement(n uint64) { g.constraint.growIncrement = n }
func (g *GrowCalculator) SetBlockSize(n uint64)     { g.constraint.blockSize = n }

// Constraint exposes the calculator's knobs as a plain GrowConstraint, so
// it can be combined with a codec's published hint via CombineWith.
func (g GrowCalculator) Constraint() GrowConstraint { return g.constraint }

// ApplyConstraint replaces the calculator's knobs with those of c,
// typically the result of CombineWith-ing the caller's calculator with a
// codec's GrowConstraint hint.
func (g *GrowCalculator) ApplyConstraint(c GrowConstraint) { g.constraint = c }

// addSaturating returns x+y, or MachineMaxSize if that would overflow.
func addSaturating(x, y uint64) uint64 {
	sum := x + y
	if sum < x {
		return MachineMaxSize
	}
	return sum
}

// multiplySaturating returns x*factor rounded down, or MachineMaxSize if
// that would overflow uint64. A non-positive factor yields 0.
func multiplySaturating(x uint64, factor float64) uint64 {
	if factor <= 0 {
		return 0
	}
	if x == 0 {
		return 0
	}
	if float64(MachineMaxSize)/factor < float64(x) {
		return MachineMaxSize
	}
	return uint64(float64(x) * factor)
}

// ComputeNewSize implements spec.md §4.2's pseudocode: never shrinks,
// grows by at least grow_factor and grow_increment, rounds up to a
// multiple of block_size, and caps at max_size.
func (g GrowCalculator) ComputeNewSize(oldSize, requestedSize uint64) (GrowStatus, uint64) {
	if max(oldSize, requestedSize) > g.constraint.maxSize {
		return GrowExceedsMaxSize, 0
	}
	if requestedSize <= oldSize {
		return GrowSuccess, oldSize
	}
	n := requestedSize
	n = max(n, multiplySaturating(oldSize, g.constraint.growFactor))
	n = max(n, addSaturating(oldSize, g.constraint.growIncrement))
	if block := g.constraint.blockSize; block > 1 {
		if r := n % block; r != 0 {
			n = addSaturating(n, block-r)
		}
	}
	n = min(n, g.constraint.maxSize)
	return GrowSuccess, n
}

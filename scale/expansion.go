package scale

import (
	"fmt"
	"math"
)

// Expansion is the padding applied to each end of a range:
// (mult_lo, add_lo, mult_hi, add_hi). The lower end moves down by
// mult_lo*width + add_lo and the upper end moves up by
// mult_hi*width + add_hi.
type Expansion [4]float64

// Default expansions.
var (
	// DefaultContinuousExpansion pads each side by 5% of the range width.
	DefaultContinuousExpansion = Expansion{0.05, 0, 0.05, 0}

	// DefaultDiscreteExpansion pads each side by 0.6 category units.
	DefaultDiscreteExpansion = Expansion{0, 0.6, 0, 0.6}
)

// NewExpansion builds an Expansion from multiplicative and additive
// factors. Each of mult and add must hold one value (applied to both
// sides) or two values (lower, upper). Any other length, or a NaN
// factor, is an error wrapping ErrInvalidArgument.
//
//	NewExpansion([]float64{0.1}, []float64{0})    // {0.1, 0, 0.1, 0}
//	NewExpansion([]float64{0, 0.1}, []float64{2}) // {0, 2, 0.1, 2}
func NewExpansion(mult, add []float64) (Expansion, error) {
	m, err := broadcast2("mult", mult)
	if err != nil {
		return Expansion{}, err
	}
	a, err := broadcast2("add", add)
	if err != nil {
		return Expansion{}, err
	}
	return Expansion{m[0], a[0], m[1], a[1]}, nil
}

// MustExpansion is like NewExpansion but panics on error. It is intended
// for package-level variables and tests.
func MustExpansion(mult, add []float64) Expansion {
	e, err := NewExpansion(mult, add)
	if err != nil {
		panic(err)
	}
	return e
}

func broadcast2(name string, v []float64) ([2]float64, error) {
	if len(v) != 1 && len(v) != 2 {
		return [2]float64{}, fmt.Errorf("%w: %s must have length 1 or 2, got %d", ErrInvalidArgument, name, len(v))
	}
	for _, x := range v {
		if math.IsNaN(x) {
			return [2]float64{}, fmt.Errorf("%w: %s must be numeric, got NaN", ErrInvalidArgument, name)
		}
	}
	if len(v) == 1 {
		return [2]float64{v[0], v[0]}, nil
	}
	return [2]float64{v[0], v[1]}, nil
}

// Lower returns the multiplicative and additive factors for the lower end.
func (e Expansion) Lower() (mult, add float64) {
	return e[0], e[1]
}

// Upper returns the multiplicative and additive factors for the upper end.
func (e Expansion) Upper() (mult, add float64) {
	return e[2], e[3]
}

// IsZero reports whether e pads neither side.
func (e Expansion) IsZero() bool {
	return e == Expansion{}
}

// String implements fmt.Stringer.
func (e Expansion) String() string {
	return fmt.Sprintf("expansion(mult=[%g %g], add=[%g %g])", e[0], e[2], e[1], e[3])
}

// Apply expands limits by e. It is ExpandRange4 for a well-formed
// expansion vector.
func (e Expansion) Apply(limits Range) Range {
	if !isFinite(limits[0]) && !isFinite(limits[1]) {
		return Unbounded
	}
	lower := expandRange(limits, e[0], e[1])[0]
	upper := expandRange(limits, e[2], e[3])[1]
	return Range{lower, upper}
}

// ExpandRange4 expands limits by a raw expansion vector of length 4
// (mult_lo, add_lo, mult_hi, add_hi) or length 2 (mult, add), which is
// reused for both sides. Limits with no finite endpoint have no extent
// to pad and yield (-Inf, +Inf).
func ExpandRange4(limits Range, expand []float64) (Range, error) {
	var e Expansion
	switch len(expand) {
	case 2:
		e = Expansion{expand[0], expand[1], expand[0], expand[1]}
	case 4:
		copy(e[:], expand)
	default:
		return Range{}, fmt.Errorf("%w: expand must have length 2 or 4, got %d", ErrInvalidArgument, len(expand))
	}
	for _, x := range e {
		if math.IsNaN(x) {
			return Range{}, fmt.Errorf("%w: expand must be numeric, got NaN", ErrInvalidArgument)
		}
	}
	return e.Apply(limits), nil
}

// expandRange pads both ends of r by mul*width + add. A range with no
// width is padded by add alone.
func expandRange(r Range, mul, add float64) Range {
	d := r.Width()*mul + add
	return Range{r[0] - d, r[1] + d}
}

package scale

import (
	"fmt"
	"math"
)

// Range is an ordered pair of endpoints. The first element is the lower
// limit; a transform may produce a Range whose first element is the
// larger one.
type Range [2]float64

// Unbounded is the range with no finite extent.
var Unbounded = Range{math.Inf(-1), math.Inf(1)}

// Width returns r[1] - r[0]. It is negative for reversed ranges.
func (r Range) Width() float64 {
	return r[1] - r[0]
}

// Reverse returns r with its endpoints swapped.
func (r Range) Reverse() Range {
	return Range{r[1], r[0]}
}

// IsFinite reports whether both endpoints are finite.
func (r Range) IsFinite() bool {
	return isFinite(r[0]) && isFinite(r[1])
}

// Union returns the smallest range covering r and o. NaN endpoints
// propagate.
func (r Range) Union(o Range) Range {
	return Range{
		math.Min(math.Min(r[0], r[1]), math.Min(o[0], o[1])),
		math.Max(math.Max(r[0], r[1]), math.Max(o[0], o[1])),
	}
}

// String implements fmt.Stringer.
func (r Range) String() string {
	return fmt.Sprintf("[%g, %g]", r[0], r[1])
}

func isFinite(x float64) bool {
	return !math.IsNaN(x) && !math.IsInf(x, 0)
}

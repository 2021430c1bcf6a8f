package scale

import (
	"math"

	mmscale "github.com/aclements/go-moremath/scale"
)

// Breaks returns "nice" major and minor break positions inside r, with
// at most max major breaks. It returns nil if r has no finite extent or
// max < 1.
func Breaks(r Range, max int) (major, minor []float64) {
	if !r.IsFinite() || max < 1 {
		return nil, nil
	}
	lo, hi := math.Min(r[0], r[1]), math.Max(r[0], r[1])
	if lo == hi {
		return []float64{lo}, nil
	}

	ls := mmscale.Linear{Min: lo, Max: hi}
	major, minor = ls.Ticks(mmscale.TickOptions{Max: max})
	return within(major, lo, hi), within(minor, lo, hi)
}

// within filters xs to [lo, hi] in place.
func within(xs []float64, lo, hi float64) []float64 {
	out := xs[:0]
	for _, x := range xs {
		if x >= lo && x <= hi {
			out = append(out, x)
		}
	}
	return out
}

package scale

import (
	"math"
	"slices"

	"github.com/gogpu/ggplot/optional"
)

// CoordLimits are per-side overrides of a scale's limits, as set by a
// coordinate system zoom. The zero value overrides neither side.
type CoordLimits [2]optional.Value[float64]

// LimitInfo is the result of expanding a scale's limits.
type LimitInfo struct {
	// ContinuousRange is the expanded range in scale space, used for
	// computing breaks.
	ContinuousRange Range

	// ContinuousRangeCoord is the expanded range in coordinate space,
	// used for mapping positions onto the panel.
	ContinuousRangeCoord Range
}

// LimitsOption replaces the limits read from a scale in
// ExpandLimitsScale.
type LimitsOption func(*limitsOptions)

type limitsOptions struct {
	limits optional.Value[Range]
	levels []string
	hasLev bool
}

// OverrideLimits replaces the continuous limits of the scale. r is in
// transformed space.
func OverrideLimits(r Range) LimitsOption {
	return func(o *limitsOptions) {
		o.limits = optional.Of(r)
	}
}

// OverrideLevels replaces the categories of a discrete scale.
func OverrideLevels(levels ...string) LimitsOption {
	return func(o *limitsOptions) {
		o.levels = slices.Clone(levels)
		o.hasLev = true
	}
}

// ExpandLimitsScale expands the limits of s by expand, honouring the
// coordinate limits coord, which are given in data space.
//
// For continuous scales, set coordinate limits are mapped into scale
// space through the scale's transform; a limit the transform cannot
// represent (NaN) is treated as unset. For discrete scales the
// coordinate limits are used as given, and any continuous values
// trained on the scale widen the result.
func ExpandLimitsScale(s Scale, expand Expansion, coord CoordLimits, opts ...LimitsOption) LimitInfo {
	var o limitsOptions
	for _, opt := range opts {
		opt(&o)
	}

	if s.IsDiscrete() {
		levels := s.Levels()
		if o.hasLev {
			levels = o.levels
		}
		return ExpandLimitsDiscreteTrans(levels, expand, coord, Identity(), s.ContinuousRange())
	}

	limits := s.Limits()
	if r, ok := o.limits.Get(); ok {
		limits = r
	}
	trans := s.Transform()
	var scaleCoord CoordLimits
	for i, c := range coord {
		v, ok := c.Get()
		if !ok {
			continue
		}
		if y := trans.Forward(v); !math.IsNaN(y) {
			scaleCoord[i] = optional.Of(y)
		}
	}
	return ExpandLimitsContinuousTrans(limits, expand, scaleCoord, Identity())
}

// ExpandLimitsContinuousTrans expands continuous limits through the
// coordinate transform trans.
//
// Set coordinate limits replace the corresponding limit. The result is
// transformed into coordinate space and expanded there; if trans
// reversed the order of the endpoints, the expansion is applied to the
// reordered pair so that the lower factors still pad the lower data
// limit. The expanded range is mapped back with trans.Inverse, and any
// endpoint that is not finite afterwards falls back to its unexpanded
// limit.
func ExpandLimitsContinuousTrans(limits Range, expand Expansion, coord CoordLimits, trans Transform) LimitInfo {
	for i, c := range coord {
		if v, ok := c.Get(); ok {
			limits[i] = v
		}
	}

	rc := trans.ForwardRange(limits)
	if rc.IsFinite() && rc.Width() < 0 {
		rc = expand.Apply(rc.Reverse()).Reverse()
	} else {
		rc = expand.Apply(rc)
	}

	final := trans.InverseRange(rc)
	for i := range final {
		if !isFinite(final[i]) {
			final[i] = limits[i]
		}
	}
	return LimitInfo{ContinuousRange: final, ContinuousRangeCoord: rc}
}

// ExpandLimitsDiscreteTrans expands the range of a discrete axis whose
// categories sit at 1..len(levels), optionally carrying a continuous
// range cont.
//
// With neither levels nor cont, the unit range (0, 1) is expanded. With
// only one of them, that range is expanded. With both, the category
// range is expanded by expand and cont is taken unexpanded, and the
// result is the union of the two in each space.
func ExpandLimitsDiscreteTrans(levels []string, expand Expansion, coord CoordLimits, trans Transform, cont optional.Value[Range]) LimitInfo {
	n := len(levels)
	cr, hasCont := cont.Get()

	switch {
	case n == 0 && !hasCont:
		return ExpandLimitsContinuousTrans(Range{0, 1}, expand, coord, trans)
	case n == 0:
		return ExpandLimitsContinuousTrans(cr, expand, coord, trans)
	case !hasCont:
		return ExpandLimitsContinuousTrans(Range{1, float64(n)}, expand, coord, trans)
	}

	d := ExpandLimitsContinuousTrans(Range{1, float64(n)}, expand, coord, trans)
	// The continuous range is taken unexpanded.
	c := ExpandLimitsContinuousTrans(cr, Expansion{}, coord, trans)
	return LimitInfo{
		ContinuousRange:      d.ContinuousRange.Union(c.ContinuousRange),
		ContinuousRangeCoord: d.ContinuousRangeCoord.Union(c.ContinuousRangeCoord),
	}
}

// Package scale computes padded axis ranges for continuous, discrete and
// mixed position scales.
//
// # Expansion
//
// An [Expansion] holds multiplicative and additive padding for each end
// of a range:
//
//	e, err := scale.NewExpansion([]float64{0.05}, []float64{0})
//	r := e.Apply(scale.Range{0, 10}) // {-0.5, 10.5}
//
// Continuous scales default to 5% multiplicative padding, discrete scales
// to 0.6 units of additive padding (see [DefaultExpansion]).
//
// # Limits
//
// [ExpandLimitsScale] is the entry point used by coordinate systems. It
// dispatches on the scale kind and returns both the coordinate-space and
// scale-space ranges in a [LimitInfo]. The lower-level
// [ExpandLimitsContinuousTrans] and [ExpandLimitsDiscreteTrans] accept an
// explicit coordinate [Transform], which may reverse ordering.
//
// Degenerate inputs never fail: limits with no finite endpoint expand to
// (-Inf, +Inf), and an endpoint that leaves the transform's domain after
// expansion falls back to the unexpanded limit. Only malformed expansion
// arguments are reported, as [ErrInvalidArgument].
package scale

package main

import (
	"strconv"

	"github.com/gogpu/ggplot/scale"
)

// axis holds an expanded scale and its breaks in coordinate space.
type axis struct {
	s      scale.Scale
	info   scale.LimitInfo
	major  []float64
	minor  []float64
	labels []string
}

func newAxis(s scale.Scale, coord scale.CoordLimits) *axis {
	expand := scale.DefaultExpansion(s, scale.DefaultDiscreteExpansion, scale.DefaultContinuousExpansion, true)
	a := &axis{s: s, info: scale.ExpandLimitsScale(s, expand, coord)}

	if s.IsDiscrete() {
		for i, l := range s.Levels() {
			a.major = append(a.major, float64(i+1))
			a.labels = append(a.labels, l)
		}
		return a
	}

	a.major, a.minor = scale.Breaks(a.info.ContinuousRangeCoord, 6)
	for _, b := range a.major {
		// Coordinate space is the scale's transformed space.
		a.labels = append(a.labels, strconv.FormatFloat(s.Transform().Inverse(b), 'g', 4, 64))
	}
	return a
}

// npc maps a coordinate-space position onto [0, 1].
func (a *axis) npc(v float64) float64 {
	r := a.info.ContinuousRangeCoord
	if w := r.Width(); w != 0 {
		return (v - r[0]) / w
	}
	return 0.5
}

func (a *axis) npcs(vs []float64) []float64 {
	out := make([]float64, len(vs))
	for i, v := range vs {
		out[i] = a.npc(v)
	}
	return out
}

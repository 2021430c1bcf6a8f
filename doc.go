// Package ggplot is the plumbing of a grammar-of-graphics plotting layer
// built on gg.
//
// # Overview
//
// A plot needs two pieces of bookkeeping before anything is drawn: how
// far each axis extends around the data, and how every visual element
// (axis lines, tick labels, grid lines, backgrounds) is styled. The
// sub-packages handle each:
//
//   - scale: continuous and discrete scales, transformations, range
//     expansion and break computation
//   - theme: inheritable style elements resolved against an element tree
//   - grob: the drawable descriptors themes resolve to
//   - render: painting descriptors on a gg.Context
//
// # Quick Start
//
//	x := scale.NewContinuous()
//	x.Train(0, 10)
//	info := scale.ExpandLimitsScale(x, scale.DefaultContinuousExpansion, scale.CoordLimits{})
//	// info.ContinuousRange == [-0.5, 10.5]
//
//	r := theme.NewResolver(theme.DefaultTree())
//	g, err := r.Render(theme.Grey(), "axis.text.x", grob.WithLabel("2.5"))
//
// # Logging
//
// ggplot is silent by default. Call [SetLogger] to receive diagnostics
// such as theme elements that resolve to nothing.
package ggplot

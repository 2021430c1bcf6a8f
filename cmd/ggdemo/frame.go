package main

import (
	"fmt"

	"github.com/gogpu/ggplot/grob"
	"github.com/gogpu/ggplot/render"
	"github.com/gogpu/ggplot/theme"
)

// Fixed strip sizes around the panel, in points.
const (
	titleHeight  = 24
	axisTextSize = 28
	axisTitle    = 20
)

type frame struct {
	r  *theme.Resolver
	th theme.Theme
	p  *render.Painter
}

func (f *frame) render(name string, vp render.Viewport, opts ...grob.Option) error {
	g, err := f.r.Render(f.th, name, opts...)
	if err != nil {
		return err
	}
	return f.p.Draw(g, vp)
}

// points resolves a unit property to pixels.
func (f *frame) points(name string) (float64, error) {
	v, err := f.r.Calc(f.th, name)
	if err != nil {
		return 0, err
	}
	u, ok := v.(theme.Unit)
	if !ok {
		return 0, nil
	}
	pt, err := u.Points(theme.BaseSize)
	if err != nil {
		return 0, err
	}
	return f.p.Points(pt), nil
}

func (f *frame) margin(name string) (top, right, bottom, left float64, err error) {
	v, err := f.r.Calc(f.th, name)
	if err != nil {
		return 0, 0, 0, 0, err
	}
	m, ok := v.(theme.Margin)
	if !ok {
		return 0, 0, 0, 0, nil
	}
	top, right, bottom, left, err = m.Points(theme.BaseSize)
	return f.p.Points(top), f.p.Points(right), f.p.Points(bottom), f.p.Points(left), err
}

func (f *frame) draw(full render.Viewport, title string, x, y *axis) error {
	if err := f.render("plot.background", full); err != nil {
		return err
	}

	top, right, bottom, left, err := f.margin("plot.margin")
	if err != nil {
		return err
	}
	plot := full.Inset(top, right, bottom, left)

	tick, err := f.points("axis.ticks.length.x.bottom")
	if err != nil {
		return err
	}
	titleH, textH, axisH := f.p.Points(titleHeight), f.p.Points(axisTextSize), f.p.Points(axisTitle)
	panel := plot.Inset(titleH, 0, tick+textH+axisH, tick+textH+axisH)

	titleVP := render.Viewport{X: panel.X, Y: plot.Y, Width: panel.Width, Height: titleH}
	xTicks := render.Viewport{X: panel.X, Y: panel.Y + panel.Height, Width: panel.Width, Height: tick}
	xText := render.Viewport{X: panel.X, Y: xTicks.Y + tick, Width: panel.Width, Height: textH}
	xTitle := render.Viewport{X: panel.X, Y: xText.Y + textH, Width: panel.Width, Height: axisH}
	yTicks := render.Viewport{X: panel.X - tick, Y: panel.Y, Width: tick, Height: panel.Height}
	yText := render.Viewport{X: yTicks.X - textH, Y: panel.Y, Width: textH, Height: panel.Height}
	yTitle := render.Viewport{X: yText.X - axisH, Y: panel.Y, Width: axisH, Height: panel.Height}

	steps := []struct {
		name string
		vp   render.Viewport
		opts []grob.Option
	}{
		{"panel.background", panel, nil},
		{"panel.grid.minor.x", panel, verticals(x.npcs(x.minor))},
		{"panel.grid.minor.y", panel, horizontals(y.npcs(y.minor))},
		{"panel.grid.major.x", panel, verticals(x.npcs(x.major))},
		{"panel.grid.major.y", panel, horizontals(y.npcs(y.major))},
		{"panel.border", panel, nil},
		{"axis.line.x.bottom", panel, []grob.Option{grob.WithX(0, 1), grob.WithY(0, 0)}},
		{"axis.line.y.left", panel, []grob.Option{grob.WithX(0, 0), grob.WithY(0, 1)}},
		{"axis.ticks.x.bottom", xTicks, verticals(x.npcs(x.major))},
		{"axis.ticks.y.left", yTicks, horizontals(y.npcs(y.major))},
		{"axis.title.x.bottom", xTitle, []grob.Option{grob.WithLabel(axisName(x, "x"))}},
		{"axis.title.y.left", yTitle, []grob.Option{grob.WithLabel(axisName(y, "y"))}},
		{"plot.title", titleVP, []grob.Option{grob.WithLabel(title)}},
	}
	for _, s := range steps {
		if s.opts != nil && len(s.opts) == 0 {
			continue // no breaks
		}
		if err := f.render(s.name, s.vp, s.opts...); err != nil {
			return fmt.Errorf("%s: %w", s.name, err)
		}
	}

	for i, pos := range x.npcs(x.major) {
		if err := f.render("axis.text.x.bottom", xText, grob.WithLabel(x.labels[i]), grob.WithX(pos)); err != nil {
			return err
		}
	}
	for i, pos := range y.npcs(y.major) {
		if err := f.render("axis.text.y.left", yText, grob.WithLabel(y.labels[i]), grob.WithY(pos)); err != nil {
			return err
		}
	}
	return nil
}

// verticals returns options for full-height lines at each x.
func verticals(xs []float64) []grob.Option {
	return lines(xs, true)
}

// horizontals returns options for full-width lines at each y.
func horizontals(ys []float64) []grob.Option {
	return lines(ys, false)
}

func lines(at []float64, vertical bool) []grob.Option {
	if len(at) == 0 {
		return []grob.Option{}
	}
	var pos, span []float64
	ids := make([]int, len(at))
	for i, v := range at {
		pos = append(pos, v, v)
		span = append(span, 0, 1)
		ids[i] = 2
	}
	if vertical {
		return []grob.Option{grob.WithX(pos...), grob.WithY(span...), grob.WithIDLengths(ids...)}
	}
	return []grob.Option{grob.WithX(span...), grob.WithY(pos...), grob.WithIDLengths(ids...)}
}

func axisName(a *axis, fallback string) string {
	if name := a.s.Transform().Name(); name != "identity" && !a.s.IsDiscrete() {
		return fallback + " (" + name + ")"
	}
	return fallback
}

// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package grob

import (
	"slices"

	"github.com/gogpu/ggplot/optional"
)

// Option overrides a value that would otherwise come from the theme.
//
// Example:
//
//	g, err := r.Render(th, "panel.grid.major.x",
//	    grob.WithX(0.25, 0.25, 0.75, 0.75),
//	    grob.WithY(0, 1, 0, 1),
//	    grob.WithIDLengths(2, 2))
type Option func(*Overrides)

// Overrides holds call-site values for building a descriptor. Set
// values take precedence over the resolved theme element.
type Overrides struct {
	X, Y          []float64
	Width, Height optional.Value[float64]
	IDLengths     []int

	Label optional.Value[string]

	Fill     optional.Value[string]
	Colour   optional.Value[string]
	Size     optional.Value[float64]
	Linetype optional.Value[string]
	Lineend  optional.Value[string]

	Family     optional.Value[string]
	Face       optional.Value[string]
	Hjust      optional.Value[float64]
	Vjust      optional.Value[float64]
	Angle      optional.Value[float64]
	Lineheight optional.Value[float64]
	Margin     optional.Value[Margin]
}

// NewOverrides applies opts to empty Overrides.
func NewOverrides(opts ...Option) Overrides {
	var o Overrides
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// WithX sets x positions in npc.
func WithX(xs ...float64) Option {
	return func(o *Overrides) { o.X = slices.Clone(xs) }
}

// WithY sets y positions in npc.
func WithY(ys ...float64) Option {
	return func(o *Overrides) { o.Y = slices.Clone(ys) }
}

// WithWidth sets a rectangle's width in npc.
func WithWidth(w float64) Option {
	return func(o *Overrides) { o.Width = optional.Of(w) }
}

// WithHeight sets a rectangle's height in npc.
func WithHeight(h float64) Option {
	return func(o *Overrides) { o.Height = optional.Of(h) }
}

// WithIDLengths splits polyline points into strips of the given lengths.
func WithIDLengths(lengths ...int) Option {
	return func(o *Overrides) { o.IDLengths = slices.Clone(lengths) }
}

// WithLabel sets the text of a label.
func WithLabel(s string) Option {
	return func(o *Overrides) { o.Label = optional.Of(s) }
}

// WithFill sets the fill colour.
func WithFill(c string) Option {
	return func(o *Overrides) { o.Fill = optional.Of(c) }
}

// WithColour sets the stroke or text colour.
func WithColour(c string) Option {
	return func(o *Overrides) { o.Colour = optional.Of(c) }
}

// WithSize sets the line size in millimetres or the font size in points.
func WithSize(s float64) Option {
	return func(o *Overrides) { o.Size = optional.Of(s) }
}

// WithLinetype sets the line type.
func WithLinetype(lt string) Option {
	return func(o *Overrides) { o.Linetype = optional.Of(lt) }
}

// WithLineend sets the line end style.
func WithLineend(le string) Option {
	return func(o *Overrides) { o.Lineend = optional.Of(le) }
}

// WithFamily sets the font family.
func WithFamily(f string) Option {
	return func(o *Overrides) { o.Family = optional.Of(f) }
}

// WithFace sets the font face.
func WithFace(f string) Option {
	return func(o *Overrides) { o.Face = optional.Of(f) }
}

// WithHjust sets horizontal justification in [0, 1].
func WithHjust(h float64) Option {
	return func(o *Overrides) { o.Hjust = optional.Of(h) }
}

// WithVjust sets vertical justification in [0, 1].
func WithVjust(v float64) Option {
	return func(o *Overrides) { o.Vjust = optional.Of(v) }
}

// WithAngle sets text rotation in degrees.
func WithAngle(a float64) Option {
	return func(o *Overrides) { o.Angle = optional.Of(a) }
}

// WithLineheight sets the line height multiple.
func WithLineheight(l float64) Option {
	return func(o *Overrides) { o.Lineheight = optional.Of(l) }
}

// WithMargin sets the text margin in points.
func WithMargin(m Margin) Option {
	return func(o *Overrides) { o.Margin = optional.Of(m) }
}

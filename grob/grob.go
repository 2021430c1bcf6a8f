// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package grob

import (
	"fmt"

	"github.com/gogpu/gg"
)

// Grob is a drawable primitive descriptor: Null, Rect, Polyline or Text.
type Grob interface {
	// Kind returns a short name for the primitive.
	Kind() string

	isGrob()
}

// FontFace is the style of a font.
type FontFace int

// Font faces.
const (
	FacePlain FontFace = iota
	FaceBold
	FaceItalic
	FaceBoldItalic
)

// String implements fmt.Stringer.
func (f FontFace) String() string {
	switch f {
	case FacePlain:
		return "plain"
	case FaceBold:
		return "bold"
	case FaceItalic:
		return "italic"
	case FaceBoldItalic:
		return "bold.italic"
	}
	return fmt.Sprintf("FontFace(%d)", int(f))
}

// Gpar holds resolved graphical parameters.
type Gpar struct {
	// Col is the stroke or text colour.
	Col gg.RGBA

	// Fill is the fill colour of closed shapes.
	Fill gg.RGBA

	// LineWidth is the stroke width in points.
	LineWidth float64

	// Dash is the dash pattern in points. nil means a solid line.
	Dash *gg.Dash

	// Cap is the shape of line ends.
	Cap gg.LineCap

	FontFamily string
	FontFace   FontFace

	// FontSize is in points.
	FontSize float64

	// LineHeight is a multiple of FontSize.
	LineHeight float64
}

// Stroked reports whether the parameters draw a visible outline.
func (g Gpar) Stroked() bool {
	return g.Col.A > 0 && g.LineWidth > 0
}

// Filled reports whether the parameters draw a visible fill.
func (g Gpar) Filled() bool {
	return g.Fill.A > 0
}

// Margin is spacing around text, in points.
type Margin struct {
	Top, Right, Bottom, Left float64
}

// Null draws nothing.
type Null struct{}

// Kind implements Grob.
func (Null) Kind() string { return "null" }
func (Null) isGrob()      {}

// Rect is a rectangle centred on (X, Y).
type Rect struct {
	X, Y, Width, Height float64
	Gp                  Gpar
}

// Kind implements Grob.
func (Rect) Kind() string { return "rect" }
func (Rect) isGrob()      {}

// Polyline is one or more connected line strips. IDLengths splits the
// points into consecutive strips; nil means a single strip.
type Polyline struct {
	X, Y      []float64
	IDLengths []int
	Gp        Gpar
}

// Kind implements Grob.
func (Polyline) Kind() string { return "polyline" }
func (Polyline) isGrob()      {}

// Strips returns the index ranges [start, end) of each strip. Lengths
// below one are skipped.
func (p Polyline) Strips() [][2]int {
	n := min(len(p.X), len(p.Y))
	if len(p.IDLengths) == 0 {
		if n == 0 {
			return nil
		}
		return [][2]int{{0, n}}
	}
	strips := make([][2]int, 0, len(p.IDLengths))
	start := 0
	for _, l := range p.IDLengths {
		if l <= 0 {
			continue
		}
		end := min(start+l, n)
		if end > start {
			strips = append(strips, [2]int{start, end})
		}
		start = end
	}
	return strips
}

// Text is a label anchored at (X, Y). Hjust and Vjust place the anchor
// within the label's box, before rotation by Rot degrees
// counter-clockwise.
type Text struct {
	Label        string
	X, Y         float64
	Hjust, Vjust float64
	Rot          float64
	Margin       Margin
	Gp           Gpar
}

// Kind implements Grob.
func (Text) Kind() string { return "text" }
func (Text) isGrob()      {}

// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package render

import (
	"fmt"
	"math"

	"github.com/gogpu/gg"
	"github.com/gogpu/ggplot"
	"github.com/gogpu/ggplot/grob"
)

// Painter draws descriptors on a gg.Context.
type Painter struct {
	dc        *gg.Context
	fonts     *Fonts
	ownsFonts bool
	scale     float64
}

// Option configures a Painter.
type Option func(*Painter)

// WithFonts sets the fonts used for text. The Painter does not close
// them.
func WithFonts(f *Fonts) Option {
	return func(p *Painter) { p.fonts = f }
}

// WithDPI sets the output resolution. Sizes in points are scaled by
// dpi/72.27.
func WithDPI(dpi float64) Option {
	return func(p *Painter) {
		if dpi > 0 {
			p.scale = dpi / 72.27
		}
	}
}

// NewPainter returns a Painter drawing on dc. Without WithFonts it loads
// the Go fonts and closes them in Close.
func NewPainter(dc *gg.Context, opts ...Option) (*Painter, error) {
	p := &Painter{dc: dc, scale: 1}
	for _, opt := range opts {
		opt(p)
	}
	if p.fonts == nil {
		f, err := NewFonts()
		if err != nil {
			return nil, err
		}
		p.fonts, p.ownsFonts = f, true
	}
	return p, nil
}

// Close releases fonts loaded by NewPainter.
func (p *Painter) Close() error {
	if p.ownsFonts {
		return p.fonts.Close()
	}
	return nil
}

// Points converts a size in points to pixels.
func (p *Painter) Points(v float64) float64 {
	return v * p.scale
}

// Draw paints g into vp.
func (p *Painter) Draw(g grob.Grob, vp Viewport) error {
	switch g := g.(type) {
	case nil, grob.Null:
		return nil
	case grob.Rect:
		return p.rect(g, vp)
	case grob.Polyline:
		return p.polyline(g, vp)
	case grob.Text:
		return p.text(g, vp)
	default:
		return fmt.Errorf("render: unsupported descriptor %s", g.Kind())
	}
}

func (p *Painter) rect(r grob.Rect, vp Viewport) error {
	x, y := vp.Pixel(r.X-r.Width/2, r.Y+r.Height/2)
	w, h := r.Width*vp.Width, r.Height*vp.Height

	if r.Gp.Filled() {
		setColour(p.dc, r.Gp.Fill)
		p.dc.DrawRectangle(x, y, w, h)
		if err := p.dc.Fill(); err != nil {
			return fmt.Errorf("render: fill rect: %w", err)
		}
	}
	if r.Gp.Stroked() {
		p.setStroke(r.Gp)
		p.dc.DrawRectangle(x, y, w, h)
		if err := p.dc.Stroke(); err != nil {
			return fmt.Errorf("render: stroke rect: %w", err)
		}
	}
	return nil
}

func (p *Painter) polyline(l grob.Polyline, vp Viewport) error {
	if !l.Gp.Stroked() {
		return nil
	}
	strips := l.Strips()
	if len(strips) == 0 {
		return nil
	}
	p.setStroke(l.Gp)
	for _, s := range strips {
		for i := s[0]; i < s[1]; i++ {
			x, y := vp.Pixel(l.X[i], l.Y[i])
			if i == s[0] {
				p.dc.MoveTo(x, y)
			} else {
				p.dc.LineTo(x, y)
			}
		}
	}
	if err := p.dc.Stroke(); err != nil {
		return fmt.Errorf("render: stroke polyline: %w", err)
	}
	return nil
}

func (p *Painter) text(t grob.Text, vp Viewport) error {
	if t.Label == "" || t.Gp.Col.A == 0 {
		return nil
	}
	face := p.fonts.Face(t.Gp.FontFamily, t.Gp.FontFace, p.Points(t.Gp.FontSize))
	if face == nil {
		ggplot.Logger().Warn("render: no font face", "family", t.Gp.FontFamily, "face", t.Gp.FontFace)
		return nil
	}

	x, y := vp.Pixel(t.X, t.Y)
	// Margins push the label away from the side it is justified to, in
	// the label's rotated frame.
	m := t.Margin
	dx := p.Points(m.Left*(1-t.Hjust) - m.Right*t.Hjust)
	dy := p.Points(m.Top*t.Vjust - m.Bottom*(1-t.Vjust))

	p.dc.Push()
	defer p.dc.Pop()
	p.dc.RotateAbout(-t.Rot*math.Pi/180, x, y)
	p.dc.SetFont(face)
	setColour(p.dc, t.Gp.Col)
	p.dc.DrawStringAnchored(t.Label, x+dx, y+dy, t.Hjust, t.Vjust)
	return nil
}

func (p *Painter) setStroke(gp grob.Gpar) {
	setColour(p.dc, gp.Col)
	p.dc.SetLineWidth(p.Points(gp.LineWidth))
	p.dc.SetLineCap(gp.Cap)
	if gp.Dash == nil {
		p.dc.ClearDash()
		return
	}
	lengths := make([]float64, len(gp.Dash.Array))
	for i, l := range gp.Dash.Array {
		lengths[i] = p.Points(l)
	}
	p.dc.SetDash(lengths...)
}

func setColour(dc *gg.Context, c gg.RGBA) {
	dc.SetRGBA(c.R, c.G, c.B, c.A)
}

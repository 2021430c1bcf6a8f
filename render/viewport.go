// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package render

import "github.com/gogpu/gg"

// Viewport is a rectangle of the image in pixels. X and Y are the
// top-left corner.
type Viewport struct {
	X, Y, Width, Height float64
}

// Full returns the viewport covering the whole of dc.
func Full(dc *gg.Context) Viewport {
	return Viewport{Width: float64(dc.Width()), Height: float64(dc.Height())}
}

// Pixel converts npc (x, y) to pixel coordinates. The y axis is flipped:
// npc y grows upwards, pixel y downwards.
func (v Viewport) Pixel(x, y float64) (px, py float64) {
	return v.X + x*v.Width, v.Y + (1-y)*v.Height
}

// Sub returns the viewport covering the npc rectangle with bottom-left
// corner (x, y) and size (w, h) within v.
func (v Viewport) Sub(x, y, w, h float64) Viewport {
	left, top := v.Pixel(x, y+h)
	return Viewport{X: left, Y: top, Width: w * v.Width, Height: h * v.Height}
}

// Inset returns v shrunk by the given pixel amounts on each side.
func (v Viewport) Inset(top, right, bottom, left float64) Viewport {
	return Viewport{
		X:      v.X + left,
		Y:      v.Y + top,
		Width:  max(v.Width-left-right, 0),
		Height: max(v.Height-top-bottom, 0),
	}
}

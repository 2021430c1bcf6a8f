// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package grob

import (
	"slices"
	"testing"

	"github.com/gogpu/gg"
)

func TestPolylineStrips(t *testing.T) {
	tests := []struct {
		name string
		p    Polyline
		want [][2]int
	}{
		{"empty", Polyline{}, nil},
		{"single", Polyline{X: []float64{0, 1}, Y: []float64{0, 1}}, [][2]int{{0, 2}}},
		{
			name: "two strips",
			p:    Polyline{X: []float64{0, 0, 1, 1}, Y: []float64{0, 1, 0, 1}, IDLengths: []int{2, 2}},
			want: [][2]int{{0, 2}, {2, 4}},
		},
		{
			name: "lengths past end",
			p:    Polyline{X: []float64{0, 0, 1}, Y: []float64{0, 1, 0}, IDLengths: []int{2, 2, 2}},
			want: [][2]int{{0, 2}, {2, 3}},
		},
		{
			name: "non-positive lengths",
			p:    Polyline{X: []float64{0, 1, 2}, Y: []float64{0, 1, 2}, IDLengths: []int{2, -5, 0, 3}},
			want: [][2]int{{0, 2}, {2, 3}},
		},
		{
			name: "mismatched coordinates",
			p:    Polyline{X: []float64{0, 1, 2}, Y: []float64{0, 1}},
			want: [][2]int{{0, 2}},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.p.Strips(); !slices.Equal(got, tt.want) {
				t.Errorf("Strips() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestGparVisibility(t *testing.T) {
	g := Gpar{Col: gg.Black, LineWidth: 1, Fill: gg.Transparent}
	if !g.Stroked() {
		t.Error("Stroked() = false, want true")
	}
	if g.Filled() {
		t.Error("Filled() = true for transparent fill")
	}
	g.LineWidth = 0
	if g.Stroked() {
		t.Error("Stroked() = true for zero width")
	}
}

func TestKinds(t *testing.T) {
	for _, tt := range []struct {
		g    Grob
		want string
	}{
		{Null{}, "null"},
		{Rect{}, "rect"},
		{Polyline{}, "polyline"},
		{Text{}, "text"},
	} {
		if got := tt.g.Kind(); got != tt.want {
			t.Errorf("%T.Kind() = %q, want %q", tt.g, got, tt.want)
		}
	}
}

func TestOverrides(t *testing.T) {
	xs := []float64{0, 1}
	o := NewOverrides(WithX(xs...), WithColour("red"), WithAngle(90))
	xs[0] = 5
	if o.X[0] != 0 {
		t.Error("WithX should copy its arguments")
	}
	if c, ok := o.Colour.Get(); !ok || c != "red" {
		t.Errorf("Colour = %v, want red", o.Colour)
	}
	if o.Fill.IsSet() {
		t.Error("Fill should be unset")
	}
	if a := o.Angle.Or(0); a != 90 {
		t.Errorf("Angle = %v, want 90", a)
	}
}

func TestFontFaceString(t *testing.T) {
	if got := FaceBoldItalic.String(); got != "bold.italic" {
		t.Errorf("String() = %q, want bold.italic", got)
	}
}

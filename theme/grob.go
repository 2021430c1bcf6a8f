package theme

import (
	"fmt"
	"math"

	"github.com/gogpu/gg"
	"github.com/gogpu/ggplot/grob"
	"github.com/gogpu/ggplot/optional"
)

// Fallbacks for attributes left unset after resolution.
const (
	defaultColour     = "black"
	defaultLineWidth  = 0.5 // mm
	defaultFontSize   = 11  // pt
	defaultLineheight = 0.9
)

// ElementGrob converts a resolved value to a descriptor. Set overrides
// take precedence over the element's attributes. Blank gives
// grob.Null. Raw values have no descriptor and give ErrInvalidElement.
func ElementGrob(v Value, opts ...grob.Option) (grob.Grob, error) {
	o := grob.NewOverrides(opts...)
	switch e := v.(type) {
	case nil, Blank:
		return grob.Null{}, nil
	case Rect:
		return rectGrob(e, o)
	case Line:
		return lineGrob(e, o)
	case Text:
		return textGrob(e, o)
	}
	return nil, fmt.Errorf("%w: %v has no descriptor", ErrInvalidElement, v.Kind())
}

func rectGrob(e Rect, o grob.Overrides) (grob.Grob, error) {
	gp, err := strokeGpar(
		optional.First(o.Colour, e.Colour),
		optional.First(o.Size, absValue(e.Size)),
		optional.First(o.Linetype, e.Linetype),
		optional.None[string](),
	)
	if err != nil {
		return nil, err
	}
	if fill, ok := optional.First(o.Fill, e.Fill).Get(); ok {
		if gp.Fill, err = ParseColour(fill); err != nil {
			return nil, err
		}
	} else {
		gp.Fill = gg.Transparent
	}
	return grob.Rect{
		X:      first(o.X, 0.5),
		Y:      first(o.Y, 0.5),
		Width:  o.Width.Or(1),
		Height: o.Height.Or(1),
		Gp:     gp,
	}, nil
}

func lineGrob(e Line, o grob.Overrides) (grob.Grob, error) {
	gp, err := strokeGpar(
		optional.First(o.Colour, e.Colour),
		optional.First(o.Size, absValue(e.Size)),
		optional.First(o.Linetype, e.Linetype),
		optional.First(o.Lineend, e.Lineend),
	)
	if err != nil {
		return nil, err
	}
	x, y := o.X, o.Y
	if x == nil {
		x = []float64{0, 1}
	}
	if y == nil {
		y = []float64{0, 1}
	}
	return grob.Polyline{X: x, Y: y, IDLengths: o.IDLengths, Gp: gp}, nil
}

func textGrob(e Text, o grob.Overrides) (grob.Grob, error) {
	hjust := optional.First(o.Hjust, e.Hjust).Or(0.5)
	vjust := optional.First(o.Vjust, e.Vjust).Or(0.5)
	angle := optional.First(o.Angle, e.Angle).Or(0)

	col, err := ParseColour(optional.First(o.Colour, e.Colour).Or(defaultColour))
	if err != nil {
		return nil, err
	}
	face, err := ParseFace(optional.First(o.Face, e.Face).Or("plain"))
	if err != nil {
		return nil, err
	}
	size := optional.First(o.Size, absValue(e.Size)).Or(defaultFontSize)

	margin, ok := o.Margin.Get()
	if !ok {
		if m, ok := e.Margin.Get(); ok {
			top, right, bottom, left, err := m.Points(size)
			if err != nil {
				return nil, err
			}
			margin = grob.Margin{Top: top, Right: right, Bottom: bottom, Left: left}
		}
	}

	jx, jy := rotateJust(angle, hjust, vjust)
	return grob.Text{
		Label:  o.Label.Or(""),
		X:      first(o.X, jx),
		Y:      first(o.Y, jy),
		Hjust:  hjust,
		Vjust:  vjust,
		Rot:    angle,
		Margin: margin,
		Gp: grob.Gpar{
			Col:        col,
			FontFamily: optional.First(o.Family, e.Family).Or(""),
			FontFace:   face,
			FontSize:   size,
			LineHeight: optional.First(o.Lineheight, e.Lineheight).Or(defaultLineheight),
		},
	}, nil
}

// strokeGpar builds the outline parameters shared by lines and
// rectangles. size is in millimetres.
func strokeGpar(colour optional.Value[string], size optional.Value[float64], linetype, lineend optional.Value[string]) (grob.Gpar, error) {
	var gp grob.Gpar
	var err error
	if gp.Col, err = ParseColour(colour.Or(defaultColour)); err != nil {
		return gp, err
	}
	gp.LineWidth = size.Or(defaultLineWidth) * PointsPerMM

	dash, visible, err := ParseLinetype(linetype.Or("solid"), gp.LineWidth)
	if err != nil {
		return gp, err
	}
	if !visible {
		gp.Col = gg.Transparent
	}
	gp.Dash = dash

	if gp.Cap, err = ParseLineend(lineend.Or("butt")); err != nil {
		return gp, err
	}
	return gp, nil
}

// rotateJust returns the position in npc of a label justified by
// (hjust, vjust) and rotated by angle degrees, so that it sits against
// the same side of its viewport whatever the rotation.
func rotateJust(angle, hjust, vjust float64) (x, y float64) {
	a := math.Mod(angle, 360)
	if a < 0 {
		a += 360
	}
	switch {
	case a >= 0 && a < 90:
		return hjust, vjust
	case a >= 90 && a < 180:
		return 1 - vjust, hjust
	case a >= 180 && a < 270:
		return 1 - hjust, 1 - vjust
	default:
		return vjust, 1 - hjust
	}
}

func absValue(s optional.Value[Size]) optional.Value[float64] {
	if v, ok := s.Get(); ok && !v.Relative {
		return optional.Of(v.Value)
	}
	return optional.None[float64]()
}

func first(xs []float64, fallback float64) float64 {
	if len(xs) > 0 {
		return xs[0]
	}
	return fallback
}

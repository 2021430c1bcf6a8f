package theme

import "fmt"

// Unit is a length with units: "pt", "mm", "cm", "in" or "lines".
type Unit struct {
	Value float64
	Units string
}

// Pt returns a Unit in points.
func Pt(v float64) Unit { return Unit{Value: v, Units: "pt"} }

// Kind implements Value.
func (Unit) Kind() Kind { return KindUnit }
func (Unit) isValue()   {}

// String implements fmt.Stringer.
func (u Unit) String() string {
	return fmt.Sprintf("%g%s", u.Value, u.Units)
}

// Points converts u to points. fontSize, in points, is the size of one
// line for the "lines" unit.
func (u Unit) Points(fontSize float64) (float64, error) {
	return toPoints(u.Value, u.Units, fontSize)
}

// String is a raw string property such as "legend.position".
type String string

// Kind implements Value.
func (String) Kind() Kind { return KindString }
func (String) isValue()   {}

// Margin is spacing around an element.
type Margin struct {
	Top, Right, Bottom, Left float64
	Units                    string
}

// Margins returns a Margin in points.
func Margins(top, right, bottom, left float64) Margin {
	return Margin{Top: top, Right: right, Bottom: bottom, Left: left, Units: "pt"}
}

// Kind implements Value.
func (Margin) Kind() Kind { return KindMargin }
func (Margin) isValue()   {}

// Points converts m to points.
func (m Margin) Points(fontSize float64) (top, right, bottom, left float64, err error) {
	f, err := toPoints(1, m.Units, fontSize)
	if err != nil {
		return 0, 0, 0, 0, err
	}
	return m.Top * f, m.Right * f, m.Bottom * f, m.Left * f, nil
}

// PointsPerMM is the number of points in a millimetre.
const PointsPerMM = 72.27 / 25.4

func toPoints(v float64, units string, fontSize float64) (float64, error) {
	switch units {
	case "pt", "":
		return v, nil
	case "mm":
		return v * PointsPerMM, nil
	case "cm":
		return v * PointsPerMM * 10, nil
	case "in":
		return v * 72.27, nil
	case "lines":
		return v * fontSize, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrInvalidUnit, units)
}

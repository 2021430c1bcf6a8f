package theme

import (
	"errors"
	"reflect"
	"testing"

	"github.com/gogpu/gg"
	"github.com/gogpu/ggplot/grob"
)

func TestRotateJust(t *testing.T) {
	const h, v = 0.2, 0.9
	tests := []struct {
		angle        float64
		wantX, wantY float64
	}{
		{0, h, v},
		{45, h, v},
		{90, 1 - v, h},
		{180, 1 - h, 1 - v},
		{270, v, 1 - h},
		{360, h, v},
		{-90, v, 1 - h},
		{450, 1 - v, h},
	}
	for _, tt := range tests {
		x, y := rotateJust(tt.angle, h, v)
		if !approx(x, tt.wantX) || !approx(y, tt.wantY) {
			t.Errorf("rotateJust(%v) = (%v, %v), want (%v, %v)", tt.angle, x, y, tt.wantX, tt.wantY)
		}
	}
}

func TestElementGrobText(t *testing.T) {
	e := Text{
		Colour: Str("black"), Size: Abs(10), Hjust: Num(1), Vjust: Num(0),
		Angle: Num(90), Face: Str("bold"), Margin: margin(Margin{Top: 2, Units: "lines"}),
	}
	g, err := ElementGrob(e, grob.WithLabel("y"))
	if err != nil {
		t.Fatalf("ElementGrob() error = %v", err)
	}
	txt := g.(grob.Text)
	if txt.X != 1 || txt.Y != 1 {
		t.Errorf("position = (%v, %v), want (1, 1)", txt.X, txt.Y)
	}
	if txt.Hjust != 1 || txt.Vjust != 0 || txt.Rot != 90 {
		t.Errorf("justification = (%v, %v, %v), want (1, 0, 90)", txt.Hjust, txt.Vjust, txt.Rot)
	}
	if txt.Gp.FontFace != grob.FaceBold || txt.Gp.FontSize != 10 {
		t.Errorf("font = %v %v, want bold 10", txt.Gp.FontFace, txt.Gp.FontSize)
	}
	if txt.Margin != (grob.Margin{Top: 20}) {
		t.Errorf("margin = %+v, want 20pt top", txt.Margin)
	}
}

func TestElementGrobTextOverridePosition(t *testing.T) {
	g, err := ElementGrob(Text{Hjust: Num(0)}, grob.WithX(0.3), grob.WithY(0.7), grob.WithHjust(1))
	if err != nil {
		t.Fatalf("ElementGrob() error = %v", err)
	}
	txt := g.(grob.Text)
	if txt.X != 0.3 || txt.Y != 0.7 || txt.Hjust != 1 {
		t.Errorf("ElementGrob() = %+v", txt)
	}
}

func TestElementGrobLine(t *testing.T) {
	e := Line{Colour: Str("grey20"), Size: Abs(1), Linetype: Str("dashed"), Lineend: Str("round")}
	g, err := ElementGrob(e)
	if err != nil {
		t.Fatalf("ElementGrob() error = %v", err)
	}
	l := g.(grob.Polyline)
	if !reflect.DeepEqual(l.X, []float64{0, 1}) || !reflect.DeepEqual(l.Y, []float64{0, 1}) {
		t.Errorf("points = %v, %v, want default diagonal", l.X, l.Y)
	}
	if !approx(l.Gp.LineWidth, PointsPerMM) {
		t.Errorf("LineWidth = %v, want %v", l.Gp.LineWidth, PointsPerMM)
	}
	if l.Gp.Cap != gg.LineCapRound {
		t.Errorf("Cap = %v, want round", l.Gp.Cap)
	}
	if l.Gp.Dash == nil || len(l.Gp.Dash.Array) != 2 || !approx(l.Gp.Dash.Array[0], 4*PointsPerMM) {
		t.Errorf("Dash = %+v, want 4-4 scaled by line width", l.Gp.Dash)
	}
}

func TestElementGrobLineBlankLinetype(t *testing.T) {
	g, err := ElementGrob(Line{Colour: Str("black"), Linetype: Str("blank")})
	if err != nil {
		t.Fatalf("ElementGrob() error = %v", err)
	}
	if g.(grob.Polyline).Gp.Stroked() {
		t.Error("blank linetype should not stroke")
	}
}

func TestElementGrobRect(t *testing.T) {
	g, err := ElementGrob(Rect{Fill: Str("white"), Colour: Str("NA")}, grob.WithWidth(0.5))
	if err != nil {
		t.Fatalf("ElementGrob() error = %v", err)
	}
	r := g.(grob.Rect)
	if r.X != 0.5 || r.Y != 0.5 || r.Width != 0.5 || r.Height != 1 {
		t.Errorf("geometry = %+v", r)
	}
	if !r.Gp.Filled() || r.Gp.Stroked() {
		t.Errorf("Filled, Stroked = %v, %v, want true, false", r.Gp.Filled(), r.Gp.Stroked())
	}
}

func TestElementGrobNullAndRaw(t *testing.T) {
	for _, v := range []Value{nil, Blank{}} {
		g, err := ElementGrob(v)
		if err != nil {
			t.Fatalf("ElementGrob(%v) error = %v", v, err)
		}
		if _, ok := g.(grob.Null); !ok {
			t.Errorf("ElementGrob(%v) = %T, want grob.Null", v, g)
		}
	}
	if _, err := ElementGrob(Pt(1)); !errors.Is(err, ErrInvalidElement) {
		t.Errorf("ElementGrob(unit) error = %v, want ErrInvalidElement", err)
	}
}

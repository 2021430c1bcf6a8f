package main

import (
	"slices"
	"testing"

	"github.com/gogpu/ggplot/grob"
	"github.com/gogpu/ggplot/scale"
)

func TestNewAxisDiscrete(t *testing.T) {
	d := scale.NewDiscrete()
	d.Train("a", "b", "c")
	a := newAxis(d, scale.CoordLimits{})

	if !slices.Equal(a.major, []float64{1, 2, 3}) || !slices.Equal(a.labels, []string{"a", "b", "c"}) {
		t.Errorf("breaks = %v %v", a.major, a.labels)
	}
	if got := a.npc(2); got != 0.5 {
		t.Errorf("npc(2) = %v, want 0.5", got)
	}
}

func TestNewAxisLog(t *testing.T) {
	c := scale.NewContinuous(scale.WithTransform(scale.Log10()))
	c.Train(1, 1000)
	a := newAxis(c, scale.CoordLimits{})
	if len(a.major) == 0 || len(a.major) != len(a.labels) {
		t.Fatalf("major = %v, labels = %v", a.major, a.labels)
	}
	if !slices.Contains(a.labels, "100") {
		t.Errorf("labels = %v, want a label at 100", a.labels)
	}
	for _, v := range a.npcs(a.major) {
		if v < 0 || v > 1 {
			t.Errorf("break at npc %v outside the panel", v)
		}
	}
}

func TestLines(t *testing.T) {
	o := grob.NewOverrides(verticals([]float64{0.25, 0.75})...)
	if !slices.Equal(o.X, []float64{0.25, 0.25, 0.75, 0.75}) || !slices.Equal(o.Y, []float64{0, 1, 0, 1}) {
		t.Errorf("verticals = %v, %v", o.X, o.Y)
	}
	if !slices.Equal(o.IDLengths, []int{2, 2}) {
		t.Errorf("IDLengths = %v, want [2 2]", o.IDLengths)
	}
	if opts := horizontals(nil); opts == nil || len(opts) != 0 {
		t.Errorf("horizontals(nil) = %v, want empty non-nil", opts)
	}
}

func TestPickTheme(t *testing.T) {
	for _, name := range []string{"grey", "bw", "minimal"} {
		if _, err := pickTheme(name); err != nil {
			t.Errorf("pickTheme(%q) error = %v", name, err)
		}
	}
	if _, err := pickTheme("dark"); err == nil {
		t.Error("pickTheme(dark) should fail")
	}
}

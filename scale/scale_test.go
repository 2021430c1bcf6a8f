package scale

import (
	"math"
	"slices"
	"testing"
)

func TestDefaultExpansion(t *testing.T) {
	custom := MustExpansion([]float64{0.2}, []float64{1})
	disc := NewDiscrete()
	cont := NewContinuous()

	tests := []struct {
		name   string
		s      Scale
		expand bool
		want   Expansion
	}{
		{"disabled", cont, false, Expansion{}},
		{"disabled explicit", NewContinuous(WithExpand(custom)), false, Expansion{}},
		{"explicit wins", NewContinuous(WithExpand(custom)), true, custom},
		{"explicit discrete", NewDiscrete(WithExpand(custom)), true, custom},
		{"discrete default", disc, true, DefaultDiscreteExpansion},
		{"continuous default", cont, true, DefaultContinuousExpansion},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := DefaultExpansion(tt.s, DefaultDiscreteExpansion, DefaultContinuousExpansion, tt.expand)
			if got != tt.want {
				t.Errorf("DefaultExpansion() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestContinuousLimits(t *testing.T) {
	s := NewContinuous()
	if !s.IsEmpty() {
		t.Error("new scale should be empty")
	}
	if got, want := s.Limits(), (Range{0, 1}); got != want {
		t.Errorf("empty Limits() = %v, want %v", got, want)
	}
	if s.ContinuousRange().IsSet() {
		t.Error("empty ContinuousRange() should be unset")
	}

	s.Train(3, math.NaN(), -2, math.Inf(1), 7)
	if got, want := s.Limits(), (Range{-2, 7}); got != want {
		t.Errorf("Limits() = %v, want %v", got, want)
	}
}

func TestContinuousTransformedLimits(t *testing.T) {
	s := NewContinuous(WithTransform(Log10()))
	s.Train(0, 10, 1000)
	if got, want := s.Limits(), (Range{1, 3}); !rangeEqual(got, want) {
		t.Errorf("Limits() = %v, want %v", got, want)
	}

	fixed := NewContinuous(WithTransform(Log10()), WithLimits(Range{1, 100}))
	fixed.Train(1e6)
	if got, want := fixed.Limits(), (Range{0, 2}); !rangeEqual(got, want) {
		t.Errorf("fixed Limits() = %v, want %v", got, want)
	}
}

func TestDiscreteTrain(t *testing.T) {
	s := NewDiscrete()
	s.Train("b", "a", "b", "c")
	if got, want := s.Levels(), []string{"b", "a", "c"}; !slices.Equal(got, want) {
		t.Errorf("Levels() = %q, want %q", got, want)
	}
	if got := s.Map("c"); got != 3 {
		t.Errorf("Map(c) = %v, want 3", got)
	}
	if got := s.Map("z"); !math.IsNaN(got) {
		t.Errorf("Map(z) = %v, want NaN", got)
	}
	if s.Transform().Name() != "identity" {
		t.Errorf("Transform() = %s, want identity", s.Transform().Name())
	}
}

func TestDiscreteFixedLevels(t *testing.T) {
	s := NewDiscrete(WithLevels("x", "y"))
	s.Train("z")
	if got, want := s.Levels(), []string{"x", "y"}; !slices.Equal(got, want) {
		t.Errorf("Levels() = %q, want %q", got, want)
	}
}

func TestDiscreteContinuousRange(t *testing.T) {
	s := NewDiscrete()
	if s.ContinuousRange().IsSet() {
		t.Error("ContinuousRange() should start unset")
	}
	s.TrainContinuous(1.2, math.NaN(), 0.8)
	got, ok := s.ContinuousRange().Get()
	if !ok || got != (Range{0.8, 1.2}) {
		t.Errorf("ContinuousRange() = (%v, %v), want ([0.8, 1.2], true)", got, ok)
	}
}

func TestTransforms(t *testing.T) {
	tests := []struct {
		trans Transform
		x     float64
	}{
		{Identity(), 3},
		{Transform{}, 3},
		{Log10(), 100},
		{Log(2), 8},
		{Exp(), 1.5},
		{Sqrt(), 16},
		{Reverse(), 4},
		{Reciprocal(), 0.25},
	}
	for _, tt := range tests {
		t.Run(tt.trans.Name(), func(t *testing.T) {
			if got := tt.trans.Inverse(tt.trans.Forward(tt.x)); !approxEqual(got, tt.x) {
				t.Errorf("Inverse(Forward(%v)) = %v", tt.x, got)
			}
		})
	}
}

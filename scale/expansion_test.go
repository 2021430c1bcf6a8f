package scale

import (
	"errors"
	"math"
	"testing"
)

const eps = 1e-9

func approxEqual(a, b float64) bool {
	if math.IsInf(a, 0) || math.IsInf(b, 0) {
		return a == b
	}
	return math.Abs(a-b) <= eps
}

func rangeEqual(a, b Range) bool {
	return approxEqual(a[0], b[0]) && approxEqual(a[1], b[1])
}

func TestNewExpansion(t *testing.T) {
	tests := []struct {
		name      string
		mult, add []float64
		want      Expansion
	}{
		{"broadcast both", []float64{0.1}, []float64{0}, Expansion{0.1, 0, 0.1, 0}},
		{"two-sided mult", []float64{0, 0.1}, []float64{2}, Expansion{0, 2, 0.1, 2}},
		{"two-sided both", []float64{1, 2}, []float64{3, 4}, Expansion{1, 3, 2, 4}},
		{"zero", []float64{0}, []float64{0}, Expansion{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := NewExpansion(tt.mult, tt.add)
			if err != nil {
				t.Fatalf("NewExpansion() error = %v", err)
			}
			if got != tt.want {
				t.Errorf("NewExpansion() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestNewExpansionInvalid(t *testing.T) {
	tests := []struct {
		name      string
		mult, add []float64
	}{
		{"nil mult", nil, []float64{0}},
		{"empty add", []float64{0}, []float64{}},
		{"long mult", []float64{1, 2, 3}, []float64{0}},
		{"long add", []float64{0}, []float64{1, 2, 3}},
		{"nan mult", []float64{math.NaN()}, []float64{0}},
		{"nan add", []float64{0}, []float64{0, math.NaN()}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewExpansion(tt.mult, tt.add)
			if !errors.Is(err, ErrInvalidArgument) {
				t.Errorf("NewExpansion() error = %v, want ErrInvalidArgument", err)
			}
		})
	}
}

func TestMustExpansionPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("MustExpansion() did not panic on invalid input")
		}
	}()
	MustExpansion(nil, nil)
}

func TestExpansionSides(t *testing.T) {
	e := Expansion{1, 2, 3, 4}
	if m, a := e.Lower(); m != 1 || a != 2 {
		t.Errorf("Lower() = (%v, %v), want (1, 2)", m, a)
	}
	if m, a := e.Upper(); m != 3 || a != 4 {
		t.Errorf("Upper() = (%v, %v), want (3, 4)", m, a)
	}
	if e.IsZero() {
		t.Error("IsZero() = true for non-zero expansion")
	}
	if !(Expansion{}).IsZero() {
		t.Error("IsZero() = false for zero expansion")
	}
}

func TestExpandRange4(t *testing.T) {
	tests := []struct {
		name   string
		limits Range
		expand []float64
		want   Range
	}{
		{"unbounded", Range{math.Inf(-1), math.Inf(1)}, []float64{0.5, 3}, Unbounded},
		{"no finite endpoint", Range{math.NaN(), math.Inf(1)}, []float64{0, 0, 0, 0}, Unbounded},
		{"mult", Range{0, 10}, MustExpansion([]float64{0.1}, []float64{0}).slice(), Range{-1, 11}},
		{"add", Range{0, 10}, MustExpansion([]float64{0}, []float64{2}).slice(), Range{-2, 12}},
		{"upper only", Range{0, 10}, MustExpansion([]float64{0, 0.1}, []float64{0}).slice(), Range{0, 11}},
		{"length two reused", Range{0, 10}, []float64{0.1, 1}, Range{-2, 12}},
		{"zero width mult", Range{5, 5}, []float64{0.1, 0, 0.1, 0}, Range{5, 5}},
		{"zero width add", Range{5, 5}, []float64{0.1, 0.6}, Range{4.4, 5.6}},
		{"negative", Range{-20, -10}, []float64{0.1, 0, 0, 1}, Range{-21, -9}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ExpandRange4(tt.limits, tt.expand)
			if err != nil {
				t.Fatalf("ExpandRange4() error = %v", err)
			}
			if !rangeEqual(got, tt.want) {
				t.Errorf("ExpandRange4(%v, %v) = %v, want %v", tt.limits, tt.expand, got, tt.want)
			}
		})
	}
}

func TestExpandRange4Invalid(t *testing.T) {
	for _, expand := range [][]float64{nil, {1}, {1, 2, 3}, {1, 2, 3, 4, 5}, {math.NaN(), 0}} {
		if _, err := ExpandRange4(Range{0, 1}, expand); !errors.Is(err, ErrInvalidArgument) {
			t.Errorf("ExpandRange4(%v) error = %v, want ErrInvalidArgument", expand, err)
		}
	}
}

func TestExpandRange4Unbounded(t *testing.T) {
	// Validation happens before the unbounded shortcut.
	if _, err := ExpandRange4(Unbounded, []float64{1}); !errors.Is(err, ErrInvalidArgument) {
		t.Errorf("ExpandRange4(Unbounded, [1]) error = %v, want ErrInvalidArgument", err)
	}
}

func TestApplyMatchesExpandRange4(t *testing.T) {
	e := Expansion{0.05, 1, 0.2, 0}
	r := Range{3, 7}
	want, err := ExpandRange4(r, e[:])
	if err != nil {
		t.Fatal(err)
	}
	if got := e.Apply(r); !rangeEqual(got, want) {
		t.Errorf("Apply() = %v, want %v", got, want)
	}
}

func (e Expansion) slice() []float64 {
	return e[:]
}

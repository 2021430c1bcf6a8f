package scale

import "math"

// Transform is a monotone function pair mapping data space to a
// coordinate space and back. A Transform may reverse ordering.
//
// The zero Transform is the identity.
type Transform struct {
	name    string
	forward func(float64) float64
	inverse func(float64) float64
}

// NewTransform returns a Transform from a forward function and its
// inverse. A nil function is treated as the identity.
func NewTransform(name string, forward, inverse func(float64) float64) Transform {
	return Transform{name: name, forward: forward, inverse: inverse}
}

// Name returns the transform's name.
func (t Transform) Name() string {
	if t.name == "" {
		return "identity"
	}
	return t.name
}

// Forward maps x from data space into coordinate space.
func (t Transform) Forward(x float64) float64 {
	if t.forward == nil {
		return x
	}
	return t.forward(x)
}

// Inverse maps y from coordinate space back into data space.
func (t Transform) Inverse(y float64) float64 {
	if t.inverse == nil {
		return y
	}
	return t.inverse(y)
}

// ForwardRange applies Forward to both endpoints of r.
func (t Transform) ForwardRange(r Range) Range {
	return Range{t.Forward(r[0]), t.Forward(r[1])}
}

// InverseRange applies Inverse to both endpoints of r.
func (t Transform) InverseRange(r Range) Range {
	return Range{t.Inverse(r[0]), t.Inverse(r[1])}
}

// Identity returns the identity transform.
func Identity() Transform {
	return Transform{name: "identity"}
}

// Log10 returns the base-10 logarithm transform.
func Log10() Transform {
	return Transform{name: "log-10", forward: math.Log10, inverse: func(y float64) float64 {
		return math.Pow(10, y)
	}}
}

// Log returns the logarithm transform for base.
func Log(base float64) Transform {
	lb := math.Log(base)
	return Transform{
		name:    "log",
		forward: func(x float64) float64 { return math.Log(x) / lb },
		inverse: func(y float64) float64 { return math.Pow(base, y) },
	}
}

// Exp returns the natural exponential transform.
func Exp() Transform {
	return Transform{name: "exp", forward: math.Exp, inverse: math.Log}
}

// Sqrt returns the square root transform.
func Sqrt() Transform {
	return Transform{name: "sqrt", forward: math.Sqrt, inverse: func(y float64) float64 {
		return y * y
	}}
}

// Reverse returns the transform that negates values, reversing order.
func Reverse() Transform {
	neg := func(x float64) float64 { return -x }
	return Transform{name: "reverse", forward: neg, inverse: neg}
}

// Reciprocal returns the 1/x transform, which reverses order on each
// side of zero.
func Reciprocal() Transform {
	recip := func(x float64) float64 { return 1 / x }
	return Transform{name: "reciprocal", forward: recip, inverse: recip}
}

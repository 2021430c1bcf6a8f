package scale

import (
	"fmt"
	"math"
	"slices"

	"github.com/gogpu/ggplot/optional"
)

// Scale is the view of a position scale needed to compute its padded
// range.
type Scale interface {
	// IsDiscrete reports whether the scale maps categories.
	IsDiscrete() bool

	// Limits returns the continuous limits in transformed space.
	// Discrete scales return the zero Range.
	Limits() Range

	// Levels returns the categories of a discrete scale in display
	// order. Continuous scales return nil.
	Levels() []string

	// ContinuousRange returns the range of continuous values trained
	// on a discrete scale, such as jittered positions. It is unset if
	// no continuous values were seen.
	ContinuousRange() optional.Value[Range]

	// Transform returns the scale's data transform.
	Transform() Transform

	// Expand returns the user-configured expansion, unset if the
	// scale should use a default.
	Expand() optional.Value[Expansion]
}

// Option configures a Continuous or Discrete scale.
type Option func(*options)

type options struct {
	trans  Transform
	expand optional.Value[Expansion]
	limits optional.Value[Range]
	levels []string
}

// WithTransform sets the data transform of a continuous scale.
// Discrete scales ignore it.
func WithTransform(t Transform) Option {
	return func(o *options) {
		o.trans = t
	}
}

// WithExpand sets an explicit expansion, overriding the defaults chosen
// by DefaultExpansion.
func WithExpand(e Expansion) Option {
	return func(o *options) {
		o.expand = optional.Of(e)
	}
}

// WithLimits fixes the limits of a continuous scale, in data space.
// Trained data no longer affects Limits.
func WithLimits(r Range) Option {
	return func(o *options) {
		o.limits = optional.Of(r)
	}
}

// WithLevels fixes the categories of a discrete scale and their order.
// Trained values no longer add categories.
func WithLevels(levels ...string) Option {
	return func(o *options) {
		o.levels = slices.Clone(levels)
	}
}

func applyOptions(opts []Option) options {
	var o options
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// Continuous is a position scale over real numbers.
//
// Continuous is not safe for concurrent training.
type Continuous struct {
	trans  Transform
	expand optional.Value[Expansion]
	limits optional.Value[Range]

	// data is the trained range in transformed space.
	data    Range
	trained bool
}

// NewContinuous returns an untrained continuous scale.
func NewContinuous(opts ...Option) *Continuous {
	o := applyOptions(opts)
	return &Continuous{trans: o.trans, expand: o.expand, limits: o.limits}
}

// Train extends the scale's range to cover xs, given in data space.
// Values that are not finite after transformation are ignored.
func (s *Continuous) Train(xs ...float64) {
	for _, x := range xs {
		y := s.trans.Forward(x)
		if !isFinite(y) {
			continue
		}
		if !s.trained {
			s.data = Range{y, y}
			s.trained = true
			continue
		}
		s.data[0] = math.Min(s.data[0], y)
		s.data[1] = math.Max(s.data[1], y)
	}
}

// IsEmpty reports whether the scale has neither data nor fixed limits.
func (s *Continuous) IsEmpty() bool {
	return !s.trained && !s.limits.IsSet()
}

// IsDiscrete implements Scale.
func (s *Continuous) IsDiscrete() bool { return false }

// Limits implements Scale. Fixed limits take precedence over trained
// data; an empty scale has limits (0, 1).
func (s *Continuous) Limits() Range {
	if r, ok := s.limits.Get(); ok {
		return s.trans.ForwardRange(r)
	}
	if !s.trained {
		return Range{0, 1}
	}
	return s.data
}

// Levels implements Scale.
func (s *Continuous) Levels() []string { return nil }

// ContinuousRange implements Scale. For a continuous scale this is its
// trained range.
func (s *Continuous) ContinuousRange() optional.Value[Range] {
	if !s.trained {
		return optional.None[Range]()
	}
	return optional.Of(s.data)
}

// Transform implements Scale.
func (s *Continuous) Transform() Transform { return s.trans }

// Expand implements Scale.
func (s *Continuous) Expand() optional.Value[Expansion] { return s.expand }

// String implements fmt.Stringer.
func (s *Continuous) String() string {
	return fmt.Sprintf("continuous %s %v", s.trans.Name(), s.Limits())
}

// Discrete is a position scale over categories placed at the integer
// positions 1..n. It may also carry continuous values plotted on the
// same axis.
//
// Discrete is not safe for concurrent training.
type Discrete struct {
	levels []string
	fixed  bool
	seen   map[string]bool
	expand optional.Value[Expansion]

	cont    Range
	hasCont bool
}

// NewDiscrete returns an untrained discrete scale.
func NewDiscrete(opts ...Option) *Discrete {
	o := applyOptions(opts)
	s := &Discrete{expand: o.expand, seen: make(map[string]bool)}
	if o.levels != nil {
		s.levels = o.levels
		s.fixed = true
	}
	return s
}

// Train adds unseen values as new categories, in order of first
// appearance. A scale with fixed levels ignores Train.
func (s *Discrete) Train(values ...string) {
	if s.fixed {
		return
	}
	for _, v := range values {
		if s.seen[v] {
			continue
		}
		s.seen[v] = true
		s.levels = append(s.levels, v)
	}
}

// TrainContinuous extends the continuous range of the scale to cover
// xs. Non-finite values are ignored.
func (s *Discrete) TrainContinuous(xs ...float64) {
	for _, x := range xs {
		if !isFinite(x) {
			continue
		}
		if !s.hasCont {
			s.cont = Range{x, x}
			s.hasCont = true
			continue
		}
		s.cont[0] = math.Min(s.cont[0], x)
		s.cont[1] = math.Max(s.cont[1], x)
	}
}

// Map returns the position of category v, or NaN if v is not a level.
func (s *Discrete) Map(v string) float64 {
	if i := slices.Index(s.levels, v); i >= 0 {
		return float64(i + 1)
	}
	return math.NaN()
}

// IsDiscrete implements Scale.
func (s *Discrete) IsDiscrete() bool { return true }

// Limits implements Scale.
func (s *Discrete) Limits() Range { return Range{} }

// Levels implements Scale.
func (s *Discrete) Levels() []string { return slices.Clone(s.levels) }

// ContinuousRange implements Scale.
func (s *Discrete) ContinuousRange() optional.Value[Range] {
	if !s.hasCont {
		return optional.None[Range]()
	}
	return optional.Of(s.cont)
}

// Transform implements Scale. Discrete scales are never transformed.
func (s *Discrete) Transform() Transform { return Identity() }

// Expand implements Scale.
func (s *Discrete) Expand() optional.Value[Expansion] { return s.expand }

// String implements fmt.Stringer.
func (s *Discrete) String() string {
	return fmt.Sprintf("discrete %q", s.levels)
}

// DefaultExpansion returns the expansion to use for s. If expand is
// false no padding is applied. Otherwise the scale's own expansion wins,
// falling back to discrete or continuous by scale kind.
func DefaultExpansion(s Scale, discrete, continuous Expansion, expand bool) Expansion {
	if !expand {
		return Expansion{}
	}
	if e, ok := s.Expand().Get(); ok {
		return e
	}
	if s.IsDiscrete() {
		return discrete
	}
	return continuous
}

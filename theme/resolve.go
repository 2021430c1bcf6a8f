package theme

import (
	"fmt"
	"log/slog"

	"github.com/gogpu/ggplot"
	"github.com/gogpu/ggplot/grob"
)

// Resolver resolves theme properties against an element tree.
//
// A Resolver holds no per-call state and may be used concurrently.
type Resolver struct {
	tree   *Tree
	logger *slog.Logger
}

// ResolverOption configures a Resolver.
type ResolverOption func(*Resolver)

// WithLogger sets the logger for diagnostics. By default the Resolver
// logs to ggplot.Logger() at the time of each call.
func WithLogger(l *slog.Logger) ResolverOption {
	return func(r *Resolver) { r.logger = l }
}

// NewResolver returns a Resolver over tree. A nil tree selects
// DefaultTree.
func NewResolver(tree *Tree, opts ...ResolverOption) *Resolver {
	if tree == nil {
		tree = DefaultTree()
	}
	r := &Resolver{tree: tree}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Tree returns the element tree r resolves against.
func (r *Resolver) Tree() *Tree { return r.tree }

func (r *Resolver) log() *slog.Logger {
	if r.logger != nil {
		return r.logger
	}
	return ggplot.Logger()
}

// Calc resolves the property name in th.
//
// Starting at name, each ancestor in the tree fills the attributes still
// unset, until the value is complete or the root is reached. Attributes
// unset at the root stay unset. Relative sizes are multiplied by the
// inherited size.
//
// A blank value stops the walk and gives Blank. An element that does
// not inherit blank shields itself from blank ancestors.
//
// Calc returns (nil, nil) when neither name nor any ancestor has a
// value, and ErrInvalidElement when a value's kind contradicts the tree.
func (r *Resolver) Calc(th Theme, name string) (Value, error) {
	var acc Value
	skipBlank := false
	for cur := name; cur != ""; {
		def, inTree := r.tree.Lookup(cur)
		v := th[cur]
		if v != nil && inTree {
			if err := checkKind(r.tree, cur, v); err != nil {
				return nil, err
			}
		}

		if _, ok := v.(Blank); ok {
			if !skipBlank {
				return Blank{}, nil
			}
			v = nil
		}
		if v != nil {
			if v.Kind().IsElement() && !inheritsBlank(v) {
				skipBlank = true
			}
			acc = inherit(acc, v)
		}

		if acc != nil && (!acc.Kind().IsElement() || (skipBlank && complete(acc))) {
			break
		}
		if !inTree {
			break
		}
		cur = def.Inherits
	}

	if acc == nil {
		return nil, nil
	}
	out, dropped := dropRelative(acc)
	if dropped {
		r.log().Debug("theme: relative size without absolute ancestor", "element", name)
	}
	return out, nil
}

// Render resolves name in th and builds its descriptor with opts
// overriding the resolved attributes.
//
// A property with no value along its inheritance chain logs a warning
// and gives grob.Null.
func (r *Resolver) Render(th Theme, name string, opts ...grob.Option) (grob.Grob, error) {
	v, err := r.Calc(th, name)
	if err != nil {
		return nil, err
	}
	if v == nil {
		r.log().Warn("theme element missing", "element", name)
		return grob.Null{}, nil
	}
	g, err := ElementGrob(v, opts...)
	if err != nil {
		return nil, fmt.Errorf("theme: render %s: %w", name, err)
	}
	return g, nil
}

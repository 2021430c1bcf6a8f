package theme

import (
	"fmt"
	"maps"
	"slices"
)

// Theme maps property names to values. A missing property is inherited
// through the element tree.
//
// Themes are values: Add and Replace return new Themes and leave their
// operands unchanged.
type Theme map[string]Value

// Get returns the value set for name, or nil.
func (t Theme) Get(name string) Value {
	return t[name]
}

// Add returns t with other laid over it. For elements of the same kind
// the set attributes of other win and its unset attributes keep t's
// values; any other value in other replaces t's.
func (t Theme) Add(other Theme) Theme {
	out := maps.Clone(t)
	if out == nil {
		out = make(Theme, len(other))
	}
	for name, v := range other {
		out[name] = merge(v, out[name])
	}
	return out
}

// Replace returns t with every property of other replacing t's whole
// value.
func (t Theme) Replace(other Theme) Theme {
	out := maps.Clone(t)
	if out == nil {
		out = make(Theme, len(other))
	}
	maps.Copy(out, other)
	return out
}

// Validate checks that every property of t declared in tree holds a
// value of the declared kind. Blank is accepted for element kinds.
func (t Theme) Validate(tree *Tree) error {
	for _, name := range slices.Sorted(maps.Keys(t)) {
		if err := checkKind(tree, name, t[name]); err != nil {
			return err
		}
	}
	return nil
}

func checkKind(tree *Tree, name string, v Value) error {
	if v == nil {
		return nil
	}
	d, ok := tree.Lookup(name)
	if !ok {
		return nil
	}
	k := v.Kind()
	if k == d.Kind || (k == KindBlank && d.Kind.IsElement()) {
		return nil
	}
	return fmt.Errorf("%w: %s should be %v, got %v", ErrInvalidElement, name, d.Kind, k)
}

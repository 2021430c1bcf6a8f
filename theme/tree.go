package theme

import (
	"fmt"
	"maps"
	"slices"
	"sync"
)

// Def declares the kind of a theme property and the property it
// inherits unset attributes from.
type Def struct {
	Kind     Kind
	Inherits string
}

// ElDef returns a Def for a property of kind k inheriting from parent.
// An empty parent makes the property a root.
func ElDef(k Kind, parent string) Def {
	return Def{Kind: k, Inherits: parent}
}

// Tree is an immutable mapping from property name to Def. Every
// property's parent chain ends at a root, and parents have the same kind
// as their children.
//
// A Tree is safe for concurrent use.
type Tree struct {
	defs map[string]Def
}

// NewTree validates defs and returns a Tree holding a copy of them.
func NewTree(defs map[string]Def) (*Tree, error) {
	for _, name := range slices.Sorted(maps.Keys(defs)) {
		d := defs[name]
		if d.Kind <= KindBlank || d.Kind > KindMargin {
			return nil, fmt.Errorf("%w: %s has kind %v", ErrInvalidTree, name, d.Kind)
		}
		if d.Inherits == "" {
			continue
		}
		p, ok := defs[d.Inherits]
		if !ok {
			return nil, fmt.Errorf("%w: %s inherits from undefined %s", ErrInvalidTree, name, d.Inherits)
		}
		if p.Kind != d.Kind {
			return nil, fmt.Errorf("%w: %s is %v but its parent %s is %v", ErrInvalidTree, name, d.Kind, d.Inherits, p.Kind)
		}
	}

	// Walk every chain; a chain longer than the tree has a cycle.
	for name := range defs {
		n := 0
		for cur := name; cur != ""; cur = defs[cur].Inherits {
			if n++; n > len(defs) {
				return nil, fmt.Errorf("%w: inheritance cycle through %s", ErrInvalidTree, name)
			}
		}
	}
	return &Tree{defs: maps.Clone(defs)}, nil
}

// MustTree is like NewTree but panics on error.
func MustTree(defs map[string]Def) *Tree {
	t, err := NewTree(defs)
	if err != nil {
		panic(err)
	}
	return t
}

// Lookup returns the Def for name.
func (t *Tree) Lookup(name string) (Def, bool) {
	d, ok := t.defs[name]
	return d, ok
}

// Len returns the number of properties in the tree.
func (t *Tree) Len() int {
	return len(t.defs)
}

// Names returns the property names in sorted order.
func (t *Tree) Names() []string {
	return slices.Sorted(maps.Keys(t.defs))
}

// Chain returns name followed by its ancestors up to the root. A name
// outside the tree has a chain of itself.
func (t *Tree) Chain(name string) []string {
	chain := []string{name}
	for d, ok := t.defs[name]; ok && d.Inherits != ""; d, ok = t.defs[d.Inherits] {
		chain = append(chain, d.Inherits)
	}
	return chain
}

// Extend returns a new Tree with defs added to or replacing t's.
func (t *Tree) Extend(defs map[string]Def) (*Tree, error) {
	all := maps.Clone(t.defs)
	maps.Copy(all, defs)
	return NewTree(all)
}

var defaultTree = sync.OnceValue(func() *Tree {
	return MustTree(defaultDefs())
})

// DefaultTree returns the standard plot element tree. It is built once
// and shared.
func DefaultTree() *Tree {
	return defaultTree()
}

func defaultDefs() map[string]Def {
	return map[string]Def{
		"line": ElDef(KindLine, ""),
		"rect": ElDef(KindRect, ""),
		"text": ElDef(KindText, ""),

		"title": ElDef(KindText, "text"),

		"axis.line":          ElDef(KindLine, "line"),
		"axis.line.x":        ElDef(KindLine, "axis.line"),
		"axis.line.x.top":    ElDef(KindLine, "axis.line.x"),
		"axis.line.x.bottom": ElDef(KindLine, "axis.line.x"),
		"axis.line.y":        ElDef(KindLine, "axis.line"),
		"axis.line.y.left":   ElDef(KindLine, "axis.line.y"),
		"axis.line.y.right":  ElDef(KindLine, "axis.line.y"),

		"axis.text":          ElDef(KindText, "text"),
		"axis.text.x":        ElDef(KindText, "axis.text"),
		"axis.text.x.top":    ElDef(KindText, "axis.text.x"),
		"axis.text.x.bottom": ElDef(KindText, "axis.text.x"),
		"axis.text.y":        ElDef(KindText, "axis.text"),
		"axis.text.y.left":   ElDef(KindText, "axis.text.y"),
		"axis.text.y.right":  ElDef(KindText, "axis.text.y"),

		"axis.ticks":          ElDef(KindLine, "line"),
		"axis.ticks.x":        ElDef(KindLine, "axis.ticks"),
		"axis.ticks.x.top":    ElDef(KindLine, "axis.ticks.x"),
		"axis.ticks.x.bottom": ElDef(KindLine, "axis.ticks.x"),
		"axis.ticks.y":        ElDef(KindLine, "axis.ticks"),
		"axis.ticks.y.left":   ElDef(KindLine, "axis.ticks.y"),
		"axis.ticks.y.right":  ElDef(KindLine, "axis.ticks.y"),

		"axis.ticks.length":          ElDef(KindUnit, ""),
		"axis.ticks.length.x":        ElDef(KindUnit, "axis.ticks.length"),
		"axis.ticks.length.x.top":    ElDef(KindUnit, "axis.ticks.length.x"),
		"axis.ticks.length.x.bottom": ElDef(KindUnit, "axis.ticks.length.x"),
		"axis.ticks.length.y":        ElDef(KindUnit, "axis.ticks.length"),
		"axis.ticks.length.y.left":   ElDef(KindUnit, "axis.ticks.length.y"),
		"axis.ticks.length.y.right":  ElDef(KindUnit, "axis.ticks.length.y"),

		"axis.title":          ElDef(KindText, "title"),
		"axis.title.x":        ElDef(KindText, "axis.title"),
		"axis.title.x.top":    ElDef(KindText, "axis.title.x"),
		"axis.title.x.bottom": ElDef(KindText, "axis.title.x"),
		"axis.title.y":        ElDef(KindText, "axis.title"),
		"axis.title.y.left":   ElDef(KindText, "axis.title.y"),
		"axis.title.y.right":  ElDef(KindText, "axis.title.y"),

		"legend.background":     ElDef(KindRect, "rect"),
		"legend.margin":         ElDef(KindMargin, ""),
		"legend.spacing":        ElDef(KindUnit, ""),
		"legend.spacing.x":      ElDef(KindUnit, "legend.spacing"),
		"legend.spacing.y":      ElDef(KindUnit, "legend.spacing"),
		"legend.key":            ElDef(KindRect, "panel.background"),
		"legend.key.size":       ElDef(KindUnit, ""),
		"legend.key.height":     ElDef(KindUnit, "legend.key.size"),
		"legend.key.width":      ElDef(KindUnit, "legend.key.size"),
		"legend.text":           ElDef(KindText, "text"),
		"legend.title":          ElDef(KindText, "title"),
		"legend.position":       ElDef(KindString, ""),
		"legend.direction":      ElDef(KindString, ""),
		"legend.justification":  ElDef(KindString, ""),
		"legend.box":            ElDef(KindString, ""),
		"legend.box.margin":     ElDef(KindMargin, ""),
		"legend.box.background": ElDef(KindRect, "rect"),
		"legend.box.spacing":    ElDef(KindUnit, ""),

		"panel.background":   ElDef(KindRect, "rect"),
		"panel.border":       ElDef(KindRect, "rect"),
		"panel.spacing":      ElDef(KindUnit, ""),
		"panel.spacing.x":    ElDef(KindUnit, "panel.spacing"),
		"panel.spacing.y":    ElDef(KindUnit, "panel.spacing"),
		"panel.grid":         ElDef(KindLine, "line"),
		"panel.grid.major":   ElDef(KindLine, "panel.grid"),
		"panel.grid.minor":   ElDef(KindLine, "panel.grid"),
		"panel.grid.major.x": ElDef(KindLine, "panel.grid.major"),
		"panel.grid.major.y": ElDef(KindLine, "panel.grid.major"),
		"panel.grid.minor.x": ElDef(KindLine, "panel.grid.minor"),
		"panel.grid.minor.y": ElDef(KindLine, "panel.grid.minor"),

		"strip.background":   ElDef(KindRect, "rect"),
		"strip.background.x": ElDef(KindRect, "strip.background"),
		"strip.background.y": ElDef(KindRect, "strip.background"),
		"strip.text":         ElDef(KindText, "text"),
		"strip.text.x":       ElDef(KindText, "strip.text"),
		"strip.text.y":       ElDef(KindText, "strip.text"),
		"strip.placement":    ElDef(KindString, ""),

		"plot.background":       ElDef(KindRect, "rect"),
		"plot.title":            ElDef(KindText, "title"),
		"plot.title.position":   ElDef(KindString, ""),
		"plot.subtitle":         ElDef(KindText, "title"),
		"plot.caption":          ElDef(KindText, "title"),
		"plot.caption.position": ElDef(KindString, ""),
		"plot.tag":              ElDef(KindText, "title"),
		"plot.tag.position":     ElDef(KindString, ""),
		"plot.margin":           ElDef(KindMargin, ""),
	}
}

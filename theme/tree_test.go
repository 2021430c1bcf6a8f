package theme

import (
	"errors"
	"slices"
	"testing"
)

func TestNewTreeErrors(t *testing.T) {
	tests := []struct {
		name string
		defs map[string]Def
	}{
		{"undefined parent", map[string]Def{"a": ElDef(KindLine, "missing")}},
		{"kind mismatch", map[string]Def{"line": ElDef(KindLine, ""), "a": ElDef(KindText, "line")}},
		{"cycle", map[string]Def{"a": ElDef(KindLine, "b"), "b": ElDef(KindLine, "a")}},
		{"blank kind", map[string]Def{"a": ElDef(KindBlank, "")}},
		{"invalid kind", map[string]Def{"a": {}}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := NewTree(tt.defs); !errors.Is(err, ErrInvalidTree) {
				t.Errorf("NewTree() error = %v, want ErrInvalidTree", err)
			}
		})
	}
}

func TestTreeIsCopied(t *testing.T) {
	defs := map[string]Def{"line": ElDef(KindLine, "")}
	tree := MustTree(defs)
	defs["rect"] = ElDef(KindRect, "")
	if tree.Len() != 1 {
		t.Errorf("Len() = %d after mutating input, want 1", tree.Len())
	}
}

func TestDefaultTreeChain(t *testing.T) {
	got := DefaultTree().Chain("axis.text.x.bottom")
	want := []string{"axis.text.x.bottom", "axis.text.x", "axis.text", "text"}
	if !slices.Equal(got, want) {
		t.Errorf("Chain() = %v, want %v", got, want)
	}
	if DefaultTree() != DefaultTree() {
		t.Error("DefaultTree() should return a shared tree")
	}
}

func TestDefaultTreeRoots(t *testing.T) {
	tree := DefaultTree()
	for _, name := range tree.Names() {
		chain := tree.Chain(name)
		root := chain[len(chain)-1]
		d, _ := tree.Lookup(root)
		if d.Kind.IsElement() && root != "line" && root != "rect" && root != "text" {
			t.Errorf("%s has element root %s", name, root)
		}
	}
}

func TestTreeExtend(t *testing.T) {
	tree, err := DefaultTree().Extend(map[string]Def{"my.title": ElDef(KindText, "title")})
	if err != nil {
		t.Fatalf("Extend() error = %v", err)
	}
	if _, ok := tree.Lookup("my.title"); !ok {
		t.Error("extended tree is missing my.title")
	}
	if _, ok := DefaultTree().Lookup("my.title"); ok {
		t.Error("Extend() modified the default tree")
	}
}

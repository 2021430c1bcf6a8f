package theme

import (
	"fmt"

	"github.com/gogpu/ggplot/optional"
)

// Kind is the kind of value a theme property holds.
type Kind int

// Kinds of theme values.
const (
	KindInvalid Kind = iota
	KindBlank
	KindLine
	KindRect
	KindText
	KindUnit
	KindString
	KindMargin
)

var kindNames = [...]string{
	KindInvalid: "invalid",
	KindBlank:   "element_blank",
	KindLine:    "element_line",
	KindRect:    "element_rect",
	KindText:    "element_text",
	KindUnit:    "unit",
	KindString:  "character",
	KindMargin:  "margin",
}

// String implements fmt.Stringer.
func (k Kind) String() string {
	if k >= 0 && int(k) < len(kindNames) {
		return kindNames[k]
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// IsElement reports whether k is a drawable element kind.
func (k Kind) IsElement() bool {
	return k == KindLine || k == KindRect || k == KindText
}

// Value is a theme property value.
type Value interface {
	Kind() Kind
	isValue()
}

// Size is an element size. An absolute size is in millimetres for lines
// and rectangle borders and in points for text. A relative size
// multiplies the size inherited from the parent.
type Size struct {
	Value    float64
	Relative bool
}

// Abs returns a set absolute size.
func Abs(v float64) optional.Value[Size] {
	return optional.Of(Size{Value: v})
}

// Rel returns a set size relative to the inherited size.
func Rel(f float64) optional.Value[Size] {
	return optional.Of(Size{Value: f, Relative: true})
}

// String implements fmt.Stringer.
func (s Size) String() string {
	if s.Relative {
		return fmt.Sprintf("rel(%g)", s.Value)
	}
	return fmt.Sprintf("%g", s.Value)
}

// of resolves s against an inherited size.
func (s Size) of(parent Size) Size {
	if !s.Relative {
		return s
	}
	return Size{Value: s.Value * parent.Value, Relative: parent.Relative}
}

// Str returns a set string attribute.
func Str(s string) optional.Value[string] {
	return optional.Of(s)
}

// Num returns a set numeric attribute.
func Num(v float64) optional.Value[float64] {
	return optional.Of(v)
}

// Blank draws nothing and stops inheritance.
type Blank struct{}

// Kind implements Value.
func (Blank) Kind() Kind { return KindBlank }
func (Blank) isValue()   {}

// Line styles lines such as axis lines, ticks and grid lines.
type Line struct {
	Colour   optional.Value[string]
	Size     optional.Value[Size]
	Linetype optional.Value[string]
	Lineend  optional.Value[string]

	// InheritBlank makes the element blank if its parent is blank.
	InheritBlank bool
}

// Kind implements Value.
func (Line) Kind() Kind { return KindLine }
func (Line) isValue()   {}

// Rect styles backgrounds and borders.
type Rect struct {
	Fill     optional.Value[string]
	Colour   optional.Value[string]
	Size     optional.Value[Size]
	Linetype optional.Value[string]

	// InheritBlank makes the element blank if its parent is blank.
	InheritBlank bool
}

// Kind implements Value.
func (Rect) Kind() Kind { return KindRect }
func (Rect) isValue()   {}

// Text styles titles and labels.
type Text struct {
	Family     optional.Value[string]
	Face       optional.Value[string]
	Colour     optional.Value[string]
	Size       optional.Value[Size]
	Hjust      optional.Value[float64]
	Vjust      optional.Value[float64]
	Angle      optional.Value[float64]
	Lineheight optional.Value[float64]
	Margin     optional.Value[Margin]

	// InheritBlank makes the element blank if its parent is blank.
	InheritBlank bool
}

// Kind implements Value.
func (Text) Kind() Kind { return KindText }
func (Text) isValue()   {}

// inheritsBlank reports whether v is an element that becomes blank
// under a blank parent. Raw values never do.
func inheritsBlank(v Value) bool {
	switch e := v.(type) {
	case Line:
		return e.InheritBlank
	case Rect:
		return e.InheritBlank
	case Text:
		return e.InheritBlank
	}
	return false
}

package theme

import "github.com/gogpu/ggplot/optional"

// inherit fills the unset attributes of child from parent. A relative
// child size is scaled by the parent's size. A child under a blank
// parent becomes blank if it inherits blank. Values of different kinds
// do not combine.
func inherit(child, parent Value) Value {
	if child == nil {
		return parent
	}
	if parent == nil {
		return child
	}
	if _, ok := child.(Blank); ok {
		return child
	}
	if _, ok := parent.(Blank); ok {
		if inheritsBlank(child) {
			return parent
		}
		return child
	}

	switch c := child.(type) {
	case Line:
		p, ok := parent.(Line)
		if !ok {
			return child
		}
		c.Colour = optional.First(c.Colour, p.Colour)
		c.Size = inheritSize(c.Size, p.Size)
		c.Linetype = optional.First(c.Linetype, p.Linetype)
		c.Lineend = optional.First(c.Lineend, p.Lineend)
		return c
	case Rect:
		p, ok := parent.(Rect)
		if !ok {
			return child
		}
		c.Fill = optional.First(c.Fill, p.Fill)
		c.Colour = optional.First(c.Colour, p.Colour)
		c.Size = inheritSize(c.Size, p.Size)
		c.Linetype = optional.First(c.Linetype, p.Linetype)
		return c
	case Text:
		p, ok := parent.(Text)
		if !ok {
			return child
		}
		c.Family = optional.First(c.Family, p.Family)
		c.Face = optional.First(c.Face, p.Face)
		c.Colour = optional.First(c.Colour, p.Colour)
		c.Size = inheritSize(c.Size, p.Size)
		c.Hjust = optional.First(c.Hjust, p.Hjust)
		c.Vjust = optional.First(c.Vjust, p.Vjust)
		c.Angle = optional.First(c.Angle, p.Angle)
		c.Lineheight = optional.First(c.Lineheight, p.Lineheight)
		c.Margin = optional.First(c.Margin, p.Margin)
		return c
	}
	// Raw values are never partially set.
	return child
}

func inheritSize(child, parent optional.Value[Size]) optional.Value[Size] {
	c, ok := child.Get()
	if !ok {
		return parent
	}
	p, ok := parent.Get()
	if !ok {
		return child
	}
	return optional.Of(c.of(p))
}

// merge overlays the set attributes of newer onto older, as when one
// theme is added to another. Unlike inherit, relative sizes are kept
// as given.
func merge(newer, older Value) Value {
	if older == nil {
		return newer
	}
	if _, ok := older.(Blank); ok {
		return newer
	}
	switch n := newer.(type) {
	case Line:
		o, ok := older.(Line)
		if !ok {
			return newer
		}
		n.Colour = optional.First(n.Colour, o.Colour)
		n.Size = optional.First(n.Size, o.Size)
		n.Linetype = optional.First(n.Linetype, o.Linetype)
		n.Lineend = optional.First(n.Lineend, o.Lineend)
		return n
	case Rect:
		o, ok := older.(Rect)
		if !ok {
			return newer
		}
		n.Fill = optional.First(n.Fill, o.Fill)
		n.Colour = optional.First(n.Colour, o.Colour)
		n.Size = optional.First(n.Size, o.Size)
		n.Linetype = optional.First(n.Linetype, o.Linetype)
		return n
	case Text:
		o, ok := older.(Text)
		if !ok {
			return newer
		}
		n.Family = optional.First(n.Family, o.Family)
		n.Face = optional.First(n.Face, o.Face)
		n.Colour = optional.First(n.Colour, o.Colour)
		n.Size = optional.First(n.Size, o.Size)
		n.Hjust = optional.First(n.Hjust, o.Hjust)
		n.Vjust = optional.First(n.Vjust, o.Vjust)
		n.Angle = optional.First(n.Angle, o.Angle)
		n.Lineheight = optional.First(n.Lineheight, o.Lineheight)
		n.Margin = optional.First(n.Margin, o.Margin)
		return n
	}
	return newer
}

// complete reports whether v has no attribute left to inherit.
func complete(v Value) bool {
	switch e := v.(type) {
	case Line:
		return e.Colour.IsSet() && absSize(e.Size) && e.Linetype.IsSet() && e.Lineend.IsSet()
	case Rect:
		return e.Fill.IsSet() && e.Colour.IsSet() && absSize(e.Size) && e.Linetype.IsSet()
	case Text:
		return e.Family.IsSet() && e.Face.IsSet() && e.Colour.IsSet() && absSize(e.Size) &&
			e.Hjust.IsSet() && e.Vjust.IsSet() && e.Angle.IsSet() && e.Lineheight.IsSet() &&
			e.Margin.IsSet()
	}
	return true
}

func absSize(s optional.Value[Size]) bool {
	v, ok := s.Get()
	return ok && !v.Relative
}

// dropRelative unsets a relative size left with no absolute ancestor.
func dropRelative(v Value) (Value, bool) {
	switch e := v.(type) {
	case Line:
		if s, ok := e.Size.Get(); ok && s.Relative {
			e.Size = optional.None[Size]()
			return e, true
		}
	case Rect:
		if s, ok := e.Size.Get(); ok && s.Relative {
			e.Size = optional.None[Size]()
			return e, true
		}
	case Text:
		if s, ok := e.Size.Get(); ok && s.Relative {
			e.Size = optional.None[Size]()
			return e, true
		}
	}
	return v, false
}

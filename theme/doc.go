// Package theme resolves inheritable plot style properties into drawable
// descriptors.
//
// A [Theme] maps property names such as "axis.text.x" to values: the
// elements [Blank], [Line], [Rect] and [Text], or raw values ([Unit],
// [String], [Margin]). Element attributes are optional; an unset
// attribute is inherited from the parent property named in the element
// [Tree], walking up until the root ("line", "rect" or "text").
//
//	r := theme.NewResolver(theme.DefaultTree())
//	g, err := r.Render(theme.Grey(), "axis.text.x", grob.WithLabel("10"))
//
// A property that resolves to nothing is not an error: the resolver logs
// a warning and returns [grob.Null], so the rest of a plot still draws.
package theme

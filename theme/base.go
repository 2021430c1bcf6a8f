package theme

import "github.com/gogpu/ggplot/optional"

// BaseSize is the base font size, in points, of the built-in themes.
const BaseSize = 11

// Grey returns the default theme: a grey panel with white grid lines.
// Every root element is complete, so every property of DefaultTree
// resolves to a fully set value.
func Grey() Theme {
	const (
		half = BaseSize / 2.0
		line = BaseSize / 22.0
	)
	return Theme{
		"line": Line{Colour: Str("black"), Size: Abs(line), Linetype: Str("solid"), Lineend: Str("butt")},
		"rect": Rect{Fill: Str("white"), Colour: Str("black"), Size: Abs(line), Linetype: Str("solid")},
		"text": Text{
			Family: Str(""), Face: Str("plain"), Colour: Str("black"), Size: Abs(BaseSize),
			Lineheight: Num(0.9), Hjust: Num(0.5), Vjust: Num(0.5), Angle: Num(0),
			Margin: margin(Margin{}),
		},

		"axis.line":          Blank{},
		"axis.text":          Text{Size: Rel(0.8), Colour: Str("grey30")},
		"axis.text.x":        Text{Margin: margin(Margins(0.8*half/2, 0, 0, 0)), Vjust: Num(1)},
		"axis.text.x.top":    Text{Margin: margin(Margins(0, 0, 0.8*half/2, 0)), Vjust: Num(0)},
		"axis.text.y":        Text{Margin: margin(Margins(0, 0.8*half/2, 0, 0)), Hjust: Num(1)},
		"axis.text.y.right":  Text{Margin: margin(Margins(0, 0, 0, 0.8*half/2)), Hjust: Num(0)},
		"axis.ticks":         Line{Colour: Str("grey20")},
		"axis.ticks.length":  Pt(half / 2),
		"axis.title.x":       Text{Margin: margin(Margins(half/2, 0, 0, 0)), Vjust: Num(1)},
		"axis.title.x.top":   Text{Margin: margin(Margins(0, 0, half/2, 0)), Vjust: Num(0)},
		"axis.title.y":       Text{Angle: Num(90), Margin: margin(Margins(0, half/2, 0, 0)), Vjust: Num(1)},
		"axis.title.y.right": Text{Angle: Num(-90), Margin: margin(Margins(0, 0, 0, half/2)), Vjust: Num(0)},

		"legend.background":  Rect{Colour: Str("NA")},
		"legend.margin":      Margins(half, half, half, half),
		"legend.spacing":     Pt(2 * half),
		"legend.key":         Rect{Fill: Str("grey95"), Colour: Str("NA")},
		"legend.key.size":    Unit{Value: 1.2, Units: "lines"},
		"legend.text":        Text{Size: Rel(0.8)},
		"legend.title":       Text{Hjust: Num(0)},
		"legend.position":    String("right"),
		"legend.box.spacing": Pt(2 * half),

		"panel.background": Rect{Fill: Str("grey92"), Colour: Str("NA")},
		"panel.border":     Blank{},
		"panel.grid":       Line{Colour: Str("white")},
		"panel.grid.minor": Line{Size: Rel(0.5)},
		"panel.spacing":    Pt(half),

		"strip.background": Rect{Fill: Str("grey85"), Colour: Str("NA")},
		"strip.text": Text{
			Colour: Str("grey10"), Size: Rel(0.8),
			Margin: margin(Margins(0.8*half, 0.8*half, 0.8*half, 0.8*half)),
		},
		"strip.placement": String("inside"),

		"plot.background":       Rect{Colour: Str("white")},
		"plot.title":            Text{Size: Rel(1.2), Hjust: Num(0), Vjust: Num(1), Margin: margin(Margins(0, 0, half, 0))},
		"plot.title.position":   String("panel"),
		"plot.subtitle":         Text{Hjust: Num(0), Vjust: Num(1), Margin: margin(Margins(0, 0, half, 0))},
		"plot.caption":          Text{Size: Rel(0.8), Hjust: Num(1), Vjust: Num(1), Margin: margin(Margins(half, 0, 0, 0))},
		"plot.caption.position": String("panel"),
		"plot.tag":              Text{Size: Rel(1.2), Hjust: Num(0.5), Vjust: Num(0.5)},
		"plot.tag.position":     String("topleft"),
		"plot.margin":           Margins(half, half, half, half),
	}
}

// BW returns Grey with a white panel and a dark border.
func BW() Theme {
	return Grey().Replace(Theme{
		"panel.background": Rect{Fill: Str("white"), Colour: Str("NA")},
		"panel.border":     Rect{Fill: Str("NA"), Colour: Str("grey20")},
		"panel.grid":       Line{Colour: Str("grey92")},
		"panel.grid.minor": Line{Size: Rel(0.5)},
		"strip.background": Rect{Fill: Str("grey85"), Colour: Str("grey20")},
		"legend.key":       Rect{Fill: Str("white"), Colour: Str("NA")},
	})
}

// Minimal returns BW without backgrounds, borders or ticks.
func Minimal() Theme {
	return BW().Replace(Theme{
		"axis.ticks":        Blank{},
		"legend.background": Blank{},
		"legend.key":        Blank{},
		"panel.background":  Blank{},
		"panel.border":      Blank{},
		"strip.background":  Blank{},
		"plot.background":   Blank{},
	})
}

func margin(m Margin) optional.Value[Margin] {
	return optional.Of(m)
}

package theme_test

import (
	"fmt"

	"github.com/gogpu/gg"
	"github.com/gogpu/ggplot/grob"
	"github.com/gogpu/ggplot/theme"
)

func ExampleResolver_Calc() {
	r := theme.NewResolver(theme.DefaultTree())
	th := theme.Theme{
		"text":        theme.Text{Colour: theme.Str("black"), Size: theme.Abs(11)},
		"axis.text":   theme.Text{Size: theme.Rel(0.8)},
		"axis.text.x": theme.Text{Colour: theme.Str("grey30")},
	}
	v, err := r.Calc(th, "axis.text.x")
	if err != nil {
		fmt.Println(err)
		return
	}
	e := v.(theme.Text)
	fmt.Println(e.Colour, e.Size, e.Face)
	// Output: grey30 8.8 unset
}

func ExampleResolver_Render() {
	r := theme.NewResolver(nil)
	g, err := r.Render(theme.Grey(), "panel.grid.major.x",
		grob.WithX(0.25, 0.25),
		grob.WithY(0, 1))
	if err != nil {
		fmt.Println(err)
		return
	}
	line := g.(grob.Polyline)
	fmt.Println(g.Kind(), line.X, line.Y, line.Gp.Col == gg.White)
	// Output: polyline [0.25 0.25] [0 1] true
}

package theme

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/gogpu/gg"
	colorful "github.com/lucasb-eyer/go-colorful"
	"golang.org/x/image/colornames"
	"golang.org/x/text/cases"
)

// foldCase folds s for case-insensitive matching. A Caser is stateful,
// so each call gets its own.
func foldCase(s string) string {
	return cases.Fold().String(s)
}

// ParseColour converts a colour specification to gg.RGBA.
//
// Supported forms:
//   - "NA" and "transparent": fully transparent
//   - "#RGB", "#RGBA", "#RRGGBB", "#RRGGBBAA"
//   - "greyN" and "grayN" for N in 0..100
//   - SVG colour names such as "black", "white" and "steelblue"
//
// Names are matched case-insensitively.
func ParseColour(s string) (gg.RGBA, error) {
	name := foldCase(strings.TrimSpace(s))
	switch name {
	case "na", "transparent":
		return gg.Transparent, nil
	case "grey", "gray":
		// The X11 grey, lighter than the SVG one.
		return grey(190), nil
	}

	if strings.HasPrefix(name, "#") {
		return parseHexColour(s, name)
	}
	if n, ok := greyLevel(name); ok {
		return grey(uint8(math.Round(float64(n) * 255 / 100))), nil
	}
	if c, ok := colornames.Map[name]; ok {
		return gg.FromColor(c), nil
	}
	return gg.RGBA{}, fmt.Errorf("%w: %q", ErrInvalidColour, s)
}

func parseHexColour(orig, hex string) (gg.RGBA, error) {
	rgb, alpha := hex, ""
	switch len(hex) {
	case 4, 7:
	case 5:
		rgb, alpha = hex[:4], hex[4:]+hex[4:]
	case 9:
		rgb, alpha = hex[:7], hex[7:]
	default:
		return gg.RGBA{}, fmt.Errorf("%w: %q", ErrInvalidColour, orig)
	}

	c, err := colorful.Hex(rgb)
	if err != nil {
		return gg.RGBA{}, fmt.Errorf("%w: %q: %v", ErrInvalidColour, orig, err)
	}
	a := 1.0
	if alpha != "" {
		v, err := strconv.ParseUint(alpha, 16, 8)
		if err != nil {
			return gg.RGBA{}, fmt.Errorf("%w: %q: bad alpha", ErrInvalidColour, orig)
		}
		a = float64(v) / 255
	}
	return gg.RGBA{R: c.R, G: c.G, B: c.B, A: a}, nil
}

// greyLevel parses "greyN" or "grayN" with N in 0..100.
func greyLevel(name string) (int, bool) {
	var digits string
	switch {
	case strings.HasPrefix(name, "grey"):
		digits = name[len("grey"):]
	case strings.HasPrefix(name, "gray"):
		digits = name[len("gray"):]
	default:
		return 0, false
	}
	n, err := strconv.Atoi(digits)
	if err != nil || n < 0 || n > 100 || digits[0] == '+' {
		return 0, false
	}
	return n, true
}

func grey(v uint8) gg.RGBA {
	f := float64(v) / 255
	return gg.RGBA{R: f, G: f, B: f, A: 1}
}

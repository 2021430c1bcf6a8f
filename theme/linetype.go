package theme

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/gogpu/gg"
	"github.com/gogpu/ggplot/grob"
)

// Named line types as on/off dash lengths in multiples of the line
// width. An empty pattern is a solid line.
var linetypes = map[string]string{
	"solid":    "",
	"dashed":   "44",
	"dotted":   "13",
	"dotdash":  "1343",
	"longdash": "73",
	"twodash":  "2262",
}

// numbered line types, "0" through "6".
var linetypeIndex = []string{"blank", "solid", "dashed", "dotted", "dotdash", "longdash", "twodash"}

// ParseLinetype converts a line type to a dash pattern for a line of the
// given width. It reports visible == false for the "blank" line type.
// A nil dash is a solid line.
//
// A line type is a name ("solid", "dashed", "dotted", "dotdash",
// "longdash", "twodash", "blank"), an index "0" to "6" into that list
// starting at "blank", or an even number of up to eight hex digits
// giving on/off lengths, such as "44" or "1343".
func ParseLinetype(lt string, width float64) (dash *gg.Dash, visible bool, err error) {
	name := foldCase(strings.TrimSpace(lt))
	if len(name) == 1 && name[0] >= '0' && name[0] <= '6' {
		name = linetypeIndex[name[0]-'0']
	}
	if name == "blank" {
		return nil, false, nil
	}
	pattern, ok := linetypes[name]
	if !ok {
		pattern = name
		if len(pattern) == 0 || len(pattern) > 8 || len(pattern)%2 != 0 {
			return nil, false, fmt.Errorf("%w: %q", ErrInvalidLinetype, lt)
		}
	}
	if pattern == "" {
		return nil, true, nil
	}

	if width <= 0 {
		width = 1
	}
	lengths := make([]float64, len(pattern))
	for i := range pattern {
		v, err := strconv.ParseUint(pattern[i:i+1], 16, 8)
		if err != nil || v == 0 {
			return nil, false, fmt.Errorf("%w: %q", ErrInvalidLinetype, lt)
		}
		lengths[i] = float64(v) * width
	}
	return gg.NewDash(lengths...), true, nil
}

// ParseLineend converts "butt", "round" or "square" to a gg.LineCap.
func ParseLineend(le string) (gg.LineCap, error) {
	switch foldCase(strings.TrimSpace(le)) {
	case "butt":
		return gg.LineCapButt, nil
	case "round":
		return gg.LineCapRound, nil
	case "square":
		return gg.LineCapSquare, nil
	}
	return gg.LineCapButt, fmt.Errorf("%w: line end %q", ErrInvalidLinetype, le)
}

// ParseFace converts "plain", "bold", "italic" or "bold.italic" to a
// grob.FontFace.
func ParseFace(face string) (grob.FontFace, error) {
	switch foldCase(strings.TrimSpace(face)) {
	case "plain", "":
		return grob.FacePlain, nil
	case "bold":
		return grob.FaceBold, nil
	case "italic":
		return grob.FaceItalic, nil
	case "bold.italic", "bolditalic":
		return grob.FaceBoldItalic, nil
	}
	return grob.FacePlain, fmt.Errorf("%w: font face %q", ErrInvalidElement, face)
}

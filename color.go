package bookart

import (
	"fmt"
	"image/color"
	"math"
	"strconv"
	"strings"

	"golang.org/x/image/colornames"
)

// Color is a non-premultiplied RGBA color.
type Color struct {
	R, G, B, A uint8
}

var _ color.Color = Color{}

// Colors used by the layout when no configuration overrides them.
var (
	Black = Color{0, 0, 0, 0xff}
	Grey  = FromRGBA(colornames.Grey)
)

// FromRGBA converts an opaque or straight-alpha [color.RGBA].
func FromRGBA(c color.RGBA) Color {
	return Color{c.R, c.G, c.B, c.A}
}

// RGBA implements color.Color.
func (c Color) RGBA() (r, g, b, a uint32) {
	return color.NRGBA{c.R, c.G, c.B, c.A}.RGBA()
}

// Opacity returns the alpha channel in [0, 1].
func (c Color) Opacity() float64 {
	return float64(c.A) / 255
}

// Hex returns the color as #rrggbb, ignoring alpha.
func (c Color) Hex() string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}

func (c Color) String() string {
	if c.A == 0xff {
		return c.Hex()
	}
	return fmt.Sprintf("#%02x%02x%02x%02x", c.R, c.G, c.B, c.A)
}

// ParseColor parses a CSS color: #rgb, #rgba, #rrggbb, #rrggbbaa,
// rgb(r, g, b), rgba(r, g, b, a) and the SVG color keywords. "none" and
// "transparent" parse as the zero color.
func ParseColor(s string) (Color, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	switch {
	case s == "none" || s == "transparent":
		return Color{}, nil
	case strings.HasPrefix(s, "#"):
		return parseHexColor(s[1:])
	case strings.HasPrefix(s, "rgb(") || strings.HasPrefix(s, "rgba("):
		return parseFuncColor(s)
	}
	if c, ok := colornames.Map[s]; ok {
		return FromRGBA(c), nil
	}
	return Color{}, ErrMalformedColor
}

func parseHexColor(s string) (Color, error) {
	switch len(s) {
	case 3, 4:
		// Expand #rgb(a) to #rrggbb(aa).
		var sb strings.Builder
		for _, r := range s {
			sb.WriteRune(r)
			sb.WriteRune(r)
		}
		s = sb.String()
	case 6, 8:
	default:
		return Color{}, ErrMalformedColor
	}
	if len(s) == 6 {
		s += "ff"
	}
	v, err := strconv.ParseUint(s, 16, 32)
	if err != nil {
		return Color{}, ErrMalformedColor
	}
	return Color{uint8(v >> 24), uint8(v >> 16), uint8(v >> 8), uint8(v)}, nil
}

func parseFuncColor(s string) (Color, error) {
	open := strings.IndexByte(s, '(')
	if !strings.HasSuffix(s, ")") {
		return Color{}, ErrMalformedColor
	}
	args := strings.Split(s[open+1:len(s)-1], ",")
	if len(args) != 3 && len(args) != 4 {
		return Color{}, ErrMalformedColor
	}
	var ch [4]uint8
	ch[3] = 0xff
	for i, arg := range args {
		arg = strings.TrimSpace(arg)
		scale := 1.0
		if i == 3 {
			// Alpha is a fraction.
			scale = 255
		}
		if pct, ok := strings.CutSuffix(arg, "%"); ok {
			arg = pct
			scale = 255.0 / 100
		}
		v, err := strconv.ParseFloat(arg, 64)
		if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
			return Color{}, ErrMalformedColor
		}
		ch[i] = uint8(min(max(v*scale+0.5, 0), 255))
	}
	return Color{ch[0], ch[1], ch[2], ch[3]}, nil
}

package sketch

import (
	"fmt"
	"image/color"
	"strings"

	"golang.org/x/text/cases"

	"github.com/gogpu/sketch/internal/blend"
)

// RGBA represents a color with red, green, blue, and alpha components.
// Each component is in the range [0, 1].
type RGBA struct {
	R, G, B, A float64
}

// Color converts RGBA to the standard color.Color interface.
func (c RGBA) Color() color.Color {
	return color.NRGBA{
		R: uint8(clamp255(c.R*255) + 0.5),
		G: uint8(clamp255(c.G*255) + 0.5),
		B: uint8(clamp255(c.B*255) + 0.5),
		A: uint8(clamp255(c.A*255) + 0.5),
	}
}

// FromColor converts a standard color.Color to RGBA.
func FromColor(c color.Color) RGBA {
	n := color.NRGBAModel.Convert(c).(color.NRGBA)
	return RGBA{
		R: float64(n.R) / 255,
		G: float64(n.G) / 255,
		B: float64(n.B) / 255,
		A: float64(n.A) / 255,
	}
}

// RGB creates an opaque color from RGB components.
func RGB(r, g, b float64) RGBA {
	return RGBA{R: r, G: g, B: b, A: 1.0}
}

// Hex returns the color as "#RRGGBB", or "#RRGGBBAA" when not opaque.
func (c RGBA) Hex() string {
	n := c.Color().(color.NRGBA)
	if n.A == 255 {
		return fmt.Sprintf("#%02X%02X%02X", n.R, n.G, n.B)
	}
	return fmt.Sprintf("#%02X%02X%02X%02X", n.R, n.G, n.B, n.A)
}

// clamped restricts every component to [0, 1]. NaN becomes 0.
func (c RGBA) clamped() RGBA {
	return RGBA{R: clampUnit(c.R), G: clampUnit(c.G), B: clampUnit(c.B), A: clampUnit(c.A)}
}

// premultiplied converts the color to the compositor's source format.
func (c RGBA) premultiplied() blend.Color {
	return blend.Premultiply(c.R, c.G, c.B, c.A)
}

// ParseColor parses "#RGB", "#RGBA", "#RRGGBB", "#RRGGBBAA" (the leading '#'
// is optional) or a basic CSS color name such as "red" or "Orange".
func ParseColor(s string) (RGBA, error) {
	s = strings.TrimSpace(s)
	if c, ok := namedColors[foldName(s)]; ok {
		return c, nil
	}

	hex := strings.TrimPrefix(s, "#")
	var r, g, b uint32
	a := uint32(255)
	ok := true

	switch len(hex) {
	case 3: // RGB
		ok = parseHex(hex[0:1], &r) && parseHex(hex[1:2], &g) && parseHex(hex[2:3], &b)
		r, g, b = r*17, g*17, b*17
	case 4: // RGBA
		ok = parseHex(hex[0:1], &r) && parseHex(hex[1:2], &g) && parseHex(hex[2:3], &b) && parseHex(hex[3:4], &a)
		r, g, b, a = r*17, g*17, b*17, a*17
	case 6: // RRGGBB
		ok = parseHex(hex[0:2], &r) && parseHex(hex[2:4], &g) && parseHex(hex[4:6], &b)
	case 8: // RRGGBBAA
		ok = parseHex(hex[0:2], &r) && parseHex(hex[2:4], &g) && parseHex(hex[4:6], &b) && parseHex(hex[6:8], &a)
	default:
		ok = false
	}
	if !ok {
		return RGBA{}, fmt.Errorf("sketch: invalid color %q", s)
	}

	return RGBA{
		R: float64(r) / 255,
		G: float64(g) / 255,
		B: float64(b) / 255,
		A: float64(a) / 255,
	}, nil
}

// MustParseColor is like ParseColor but panics on malformed input.
// Intended for package-level palettes.
func MustParseColor(s string) RGBA {
	c, err := ParseColor(s)
	if err != nil {
		panic(err)
	}
	return c
}

// parseHex parses hex digits into val, reporting false on a non-hex digit.
func parseHex(s string, val *uint32) bool {
	*val = 0
	for i := 0; i < len(s); i++ {
		c := s[i]
		*val *= 16
		switch {
		case '0' <= c && c <= '9':
			*val += uint32(c - '0')
		case 'a' <= c && c <= 'f':
			*val += uint32(c - 'a' + 10)
		case 'A' <= c && c <= 'F':
			*val += uint32(c - 'A' + 10)
		default:
			return false
		}
	}
	return true
}

// foldName case-folds a color or tool name for lookup.
// A Caser carries state, so each call gets its own.
func foldName(s string) string {
	return cases.Fold().String(s)
}

// clamp255 restricts a value to [0, 255] range.
func clamp255(x float64) float64 {
	if x != x || x < 0 {
		return 0
	}
	if x > 255 {
		return 255
	}
	return x
}

// clampUnit restricts a value to [0, 1]. NaN becomes 0.
func clampUnit(x float64) float64 {
	if x != x || x < 0 {
		return 0
	}
	if x > 1 {
		return 1
	}
	return x
}

// Common colors
var (
	Black       = RGB(0, 0, 0)
	White       = RGB(1, 1, 1)
	Red         = RGB(1, 0, 0)
	Green       = RGB(0, 1, 0)
	Blue        = RGB(0, 0, 1)
	Transparent = RGBA{}
)

// Palette is the swatch set offered by the drawing toolbar.
var Palette = []RGBA{
	MustParseColor("#000000"),
	MustParseColor("#FF0000"),
	MustParseColor("#00FF00"),
	MustParseColor("#0000FF"),
	MustParseColor("#FFFF00"),
	MustParseColor("#FF00FF"),
	MustParseColor("#00FFFF"),
	MustParseColor("#FFA500"),
	MustParseColor("#800080"),
	MustParseColor("#FFC0CB"),
}

// namedColors maps case-folded CSS basic names to colors.
var namedColors = map[string]RGBA{
	"black":       Black,
	"white":       White,
	"red":         Red,
	"lime":        Green,
	"green":       RGB(0, 128.0/255, 0),
	"blue":        Blue,
	"yellow":      RGB(1, 1, 0),
	"magenta":     RGB(1, 0, 1),
	"fuchsia":     RGB(1, 0, 1),
	"cyan":        RGB(0, 1, 1),
	"aqua":        RGB(0, 1, 1),
	"orange":      RGB(1, 165.0/255, 0),
	"purple":      RGB(128.0/255, 0, 128.0/255),
	"pink":        RGB(1, 192.0/255, 203.0/255),
	"gray":        RGB(128.0/255, 128.0/255, 128.0/255),
	"grey":        RGB(128.0/255, 128.0/255, 128.0/255),
	"transparent": Transparent,
}

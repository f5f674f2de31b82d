// Package blend implements the Porter-Duff operators used by the stroke
// compositor.
//
// Pixels are RGBA, premultiplied alpha, 0-255. A stroke is applied through
// a coverage mask: each mask byte scales the source before the operator runs,
// and a zero byte leaves the destination pixel untouched.
//
// References:
//   - Porter-Duff: "Compositing Digital Images" (1984)
//   - W3C Compositing and Blending Level 1: https://www.w3.org/TR/compositing-1/
package blend

// Mode selects the Porter-Duff operator applied under a coverage mask.
type Mode uint8

const (
	// ModeSourceOver paints the source over the destination.
	// Result: S*c + D*(1 - Sa*c)
	ModeSourceOver Mode = iota

	// ModeDestinationOut removes destination content under the mask.
	// The source colour is ignored; only coverage matters.
	// Result: D*(1 - c)
	ModeDestinationOut
)

// String returns the CSS composite operation name of the mode.
func (m Mode) String() string {
	switch m {
	case ModeSourceOver:
		return "source-over"
	case ModeDestinationOut:
		return "destination-out"
	default:
		return "unknown"
	}
}

// Color is a premultiplied RGBA source colour.
type Color struct {
	R, G, B, A byte
}

// Premultiply converts straight-alpha components in [0, 1] to a
// premultiplied Color. Components outside [0, 1] are clamped.
func Premultiply(r, g, b, a float64) Color {
	a = clampUnit(a)
	return Color{
		R: toByte(clampUnit(r) * a),
		G: toByte(clampUnit(g) * a),
		B: toByte(clampUnit(b) * a),
		A: toByte(a),
	}
}

// MaskFunc applies an operator to one row.
// dst holds 4 bytes per pixel and must be at least 4*len(mask) long.
type MaskFunc func(dst []byte, mask []byte, src Color)

// GetMaskFunc returns the row function for the given mode.
// Returns the source-over function for unknown modes.
func GetMaskFunc(mode Mode) MaskFunc {
	switch mode {
	case ModeDestinationOut:
		return DestinationOutMask
	default:
		return SourceOverMask
	}
}

// BlendMask applies mode to a row of pixels under mask.
func BlendMask(dst []byte, mask []byte, src Color, mode Mode) {
	GetMaskFunc(mode)(dst, mask, src)
}

func clampUnit(v float64) float64 {
	if v != v || v < 0 { // NaN or negative
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

func toByte(v float64) byte {
	return byte(v*255 + 0.5)
}

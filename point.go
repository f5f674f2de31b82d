package sketch

import "math"

// Point represents a position in canvas space, origin top-left.
type Point struct {
	X, Y float64
}

// Pt is a convenience function to create a Point.
func Pt(x, y float64) Point {
	return Point{X: x, Y: y}
}

// clampTo restricts p to [0, width] x [0, height].
// NaN coordinates become 0; infinities clamp to the nearest bound.
func (p Point) clampTo(width, height int) Point {
	return Point{
		X: clampCoord(p.X, float64(width)),
		Y: clampCoord(p.Y, float64(height)),
	}
}

func clampCoord(v, limit float64) float64 {
	if math.IsNaN(v) || v < 0 {
		return 0
	}
	if v > limit {
		return limit
	}
	return v
}

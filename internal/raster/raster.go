// Package raster computes anti-aliased coverage masks for freehand strokes.
//
// A stroke with round caps and round joins is exactly the set of points
// within width/2 of its polyline, so coverage is evaluated as a signed
// distance field over capsules (one per segment) instead of expanding the
// outline and scan-converting it. This keeps joins gap-free at any turning
// angle and makes a one-point stroke a disc.
package raster

import (
	"image"
	"math"
)

// AntialiasWidth controls the smoothstep transition half-width in pixels.
const AntialiasWidth = 0.7

// Point represents a 2D point (internal copy to avoid import cycle).
type Point struct {
	X, Y float64
}

// Polyline is a round-capped, round-joined stroke path.
type Polyline struct {
	Points []Point
	Width  float64
}

// Bounds returns the pixel rectangle that may receive non-zero coverage.
// An empty polyline has empty bounds.
func (p Polyline) Bounds() image.Rectangle {
	if len(p.Points) == 0 {
		return image.Rectangle{}
	}
	minX, minY := p.Points[0].X, p.Points[0].Y
	maxX, maxY := minX, minY
	for _, pt := range p.Points[1:] {
		minX = math.Min(minX, pt.X)
		minY = math.Min(minY, pt.Y)
		maxX = math.Max(maxX, pt.X)
		maxY = math.Max(maxY, pt.Y)
	}
	return padBounds(minX, minY, maxX, maxY, p.Width/2)
}

func padBounds(minX, minY, maxX, maxY, radius float64) image.Rectangle {
	pad := radius + AntialiasWidth
	return image.Rect(
		int(math.Floor(minX-pad)),
		int(math.Floor(minY-pad)),
		int(math.Ceil(maxX+pad)),
		int(math.Ceil(maxY+pad)),
	)
}

// Mask holds 8-bit coverage for a rectangle of pixels.
type Mask struct {
	Rect   image.Rectangle
	Stride int
	Pix    []byte
}

// Row returns the coverage bytes of row y, or nil if y is outside the mask.
func (m *Mask) Row(y int) []byte {
	if y < m.Rect.Min.Y || y >= m.Rect.Max.Y {
		return nil
	}
	o := (y - m.Rect.Min.Y) * m.Stride
	return m.Pix[o : o+m.Rect.Dx()]
}

// At returns the coverage at pixel (x, y), 0 outside the mask.
func (m *Mask) At(x, y int) byte {
	if !(image.Point{X: x, Y: y}).In(m.Rect) {
		return 0
	}
	return m.Pix[(y-m.Rect.Min.Y)*m.Stride+(x-m.Rect.Min.X)]
}

func (m *Mask) reset(r image.Rectangle) {
	n := r.Dx() * r.Dy()
	if cap(m.Pix) < n {
		m.Pix = make([]byte, n)
	} else {
		m.Pix = m.Pix[:n]
		clear(m.Pix)
	}
	m.Rect = r
	m.Stride = r.Dx()
}

// Rasterizer builds coverage masks. The returned mask is owned by the
// Rasterizer and is overwritten by the next call.
//
// Rasterizer is not safe for concurrent use.
type Rasterizer struct {
	mask Mask
}

// NewRasterizer creates a rasterizer.
func NewRasterizer() *Rasterizer {
	return &Rasterizer{}
}

// Stroke computes the coverage of p restricted to clip.
//
// Coverage of a pixel depends only on the pixel and the polyline, never on
// clip, so rendering a stroke piecewise through different clips produces
// the same bytes as rendering it at once.
func (r *Rasterizer) Stroke(p Polyline, clip image.Rectangle) *Mask {
	area := p.Bounds().Intersect(clip)
	r.mask.reset(area)
	if area.Empty() || p.Width <= 0 {
		return &r.mask
	}

	radius := p.Width / 2
	pts := p.Points
	if len(pts) == 1 {
		r.capsule(pts[0], pts[0], radius, area)
		return &r.mask
	}
	for i := 1; i < len(pts); i++ {
		r.capsule(pts[i-1], pts[i], radius, area)
	}
	return &r.mask
}

// capsule max-accumulates the coverage of one segment into the mask.
// Taking the maximum (not the sum) means overlapping segments of the same
// stroke never double their coverage.
func (r *Rasterizer) capsule(a, b Point, radius float64, area image.Rectangle) {
	seg := padBounds(math.Min(a.X, b.X), math.Min(a.Y, b.Y),
		math.Max(a.X, b.X), math.Max(a.Y, b.Y), radius).Intersect(area)
	if seg.Empty() {
		return
	}

	dx, dy := b.X-a.X, b.Y-a.Y
	lenSq := dx*dx + dy*dy

	m := &r.mask
	for y := seg.Min.Y; y < seg.Max.Y; y++ {
		py := float64(y) + 0.5
		row := m.Pix[(y-m.Rect.Min.Y)*m.Stride:]
		for x := seg.Min.X; x < seg.Max.X; x++ {
			px := float64(x) + 0.5
			d := segmentDistance(px, py, a, dx, dy, lenSq)
			c := coverageByte(smoothstepCoverage(d - radius))
			if i := x - m.Rect.Min.X; c > row[i] {
				row[i] = c
			}
		}
	}
}

// segmentDistance returns the distance from (px, py) to the segment starting
// at a with direction (dx, dy).
func segmentDistance(px, py float64, a Point, dx, dy, lenSq float64) float64 {
	vx, vy := px-a.X, py-a.Y
	if lenSq == 0 {
		return math.Hypot(vx, vy)
	}
	t := (vx*dx + vy*dy) / lenSq
	if t < 0 {
		t = 0
	} else if t > 1 {
		t = 1
	}
	return math.Hypot(vx-t*dx, vy-t*dy)
}

// smoothstepCoverage converts a signed distance to an anti-aliased coverage
// value using a Hermite smoothstep function.
//
// sdf < -AntialiasWidth => 1.0 (fully inside)
// sdf > +AntialiasWidth => 0.0 (fully outside)
// Otherwise             => smooth transition
func smoothstepCoverage(sdf float64) float64 {
	if sdf >= AntialiasWidth {
		return 0
	}
	if sdf <= -AntialiasWidth {
		return 1
	}
	t := (sdf + AntialiasWidth) / (2 * AntialiasWidth)
	return 1 - (t * t * (3 - 2*t))
}

func coverageByte(c float64) byte {
	return byte(c*255 + 0.5)
}

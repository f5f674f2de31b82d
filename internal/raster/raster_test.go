package raster

import (
	"image"
	"math"
	"testing"
)

func TestSmoothstepCoverage(t *testing.T) {
	tests := []struct {
		name string
		sdf  float64
		want float64
	}{
		{"fully inside", -2.0, 1.0},
		{"fully outside", 2.0, 0.0},
		{"at center", 0.0, 0.5},
		{"at inner edge", -AntialiasWidth, 1.0},
		{"at outer edge", AntialiasWidth, 0.0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := smoothstepCoverage(tt.sdf)
			if math.Abs(got-tt.want) > 1e-6 {
				t.Errorf("smoothstepCoverage(%f) = %f, want %f", tt.sdf, got, tt.want)
			}
		})
	}
}

func TestSegmentDistance(t *testing.T) {
	a := Point{X: 0, Y: 0}
	tests := []struct {
		name   string
		px, py float64
		b      Point
		want   float64
	}{
		{"perpendicular", 5, 3, Point{X: 10, Y: 0}, 3},
		{"before start", -4, 3, Point{X: 10, Y: 0}, 5},
		{"past end", 13, 4, Point{X: 10, Y: 0}, 5},
		{"degenerate segment", 3, 4, Point{X: 0, Y: 0}, 5},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dx, dy := tt.b.X-a.X, tt.b.Y-a.Y
			got := segmentDistance(tt.px, tt.py, a, dx, dy, dx*dx+dy*dy)
			if math.Abs(got-tt.want) > 1e-9 {
				t.Errorf("segmentDistance = %f, want %f", got, tt.want)
			}
		})
	}
}

func TestPolylineBounds(t *testing.T) {
	if got := (Polyline{}).Bounds(); !got.Empty() {
		t.Errorf("empty polyline bounds = %v, want empty", got)
	}

	p := Polyline{Points: []Point{{X: 10, Y: 10}, {X: 10, Y: 50}}, Width: 5}
	got := p.Bounds()
	want := image.Rect(6, 6, 14, 54)
	if got != want {
		t.Errorf("Bounds() = %v, want %v", got, want)
	}
}

func TestStrokeVerticalLine(t *testing.T) {
	r := NewRasterizer()
	p := Polyline{Points: []Point{{X: 10, Y: 10}, {X: 10, Y: 30}, {X: 10, Y: 50}}, Width: 5}
	m := r.Stroke(p, image.Rect(0, 0, 100, 100))

	tests := []struct {
		name    string
		x, y    int
		wantMin byte
		wantMax byte
	}{
		{"on the line", 10, 30, 255, 255},
		{"inside half width", 11, 30, 255, 255},
		{"edge", 12, 30, 100, 160},
		{"outside", 14, 30, 0, 0},
		{"far away", 60, 60, 0, 0},
		{"beyond round cap", 10, 55, 0, 0},
		{"inside round cap", 10, 51, 255, 255},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := m.At(tt.x, tt.y)
			if got < tt.wantMin || got > tt.wantMax {
				t.Errorf("At(%d, %d) = %d, want [%d, %d]", tt.x, tt.y, got, tt.wantMin, tt.wantMax)
			}
		})
	}
}

func TestStrokeSinglePointIsDisc(t *testing.T) {
	r := NewRasterizer()
	m := r.Stroke(Polyline{Points: []Point{{X: 20, Y: 20}}, Width: 6}, image.Rect(0, 0, 64, 64))

	if got := m.At(19, 19); got != 255 {
		t.Errorf("center coverage = %d, want 255", got)
	}
	if got := m.At(25, 20); got != 0 {
		t.Errorf("outside coverage = %d, want 0", got)
	}
	// Symmetric about the centre point.
	if m.At(17, 19) != m.At(22, 19) {
		t.Errorf("disc not symmetric: %d vs %d", m.At(17, 19), m.At(22, 19))
	}
}

func TestStrokeClipIndependent(t *testing.T) {
	p := Polyline{
		Points: []Point{{X: 5, Y: 5}, {X: 40, Y: 12}, {X: 22, Y: 38}, {X: 50, Y: 50}},
		Width:  7,
	}
	full := NewRasterizer().Stroke(p, image.Rect(0, 0, 64, 64))
	fullPix := append([]byte(nil), full.Pix...)
	fullRect := full.Rect

	halves := []image.Rectangle{image.Rect(0, 0, 64, 30), image.Rect(0, 30, 64, 64)}
	r := NewRasterizer()
	for _, clip := range halves {
		m := r.Stroke(p, clip)
		for y := m.Rect.Min.Y; y < m.Rect.Max.Y; y++ {
			for x := m.Rect.Min.X; x < m.Rect.Max.X; x++ {
				want := fullPix[(y-fullRect.Min.Y)*fullRect.Dx()+(x-fullRect.Min.X)]
				if got := m.At(x, y); got != want {
					t.Fatalf("clip %v: At(%d, %d) = %d, want %d", clip, x, y, got, want)
				}
			}
		}
	}
}

func TestStrokeOverlapDoesNotAccumulate(t *testing.T) {
	clip := image.Rect(0, 0, 64, 32)
	once := NewRasterizer().Stroke(Polyline{
		Points: []Point{{X: 10, Y: 10}, {X: 50, Y: 10}},
		Width:  4,
	}, clip)
	oncePix := append([]byte(nil), once.Pix...)

	twice := NewRasterizer().Stroke(Polyline{
		Points: []Point{{X: 10, Y: 10}, {X: 50, Y: 10}, {X: 10, Y: 10}},
		Width:  4,
	}, clip)

	if once.Rect != twice.Rect {
		t.Fatalf("rect = %v, want %v", twice.Rect, once.Rect)
	}
	for i := range oncePix {
		if oncePix[i] != twice.Pix[i] {
			t.Fatalf("pixel %d: %d != %d", i, twice.Pix[i], oncePix[i])
		}
	}
}

func TestStrokeOutsideClip(t *testing.T) {
	m := NewRasterizer().Stroke(Polyline{Points: []Point{{X: 200, Y: 200}}, Width: 4}, image.Rect(0, 0, 50, 50))
	if !m.Rect.Empty() {
		t.Errorf("Rect = %v, want empty", m.Rect)
	}
	if m.Row(0) != nil {
		t.Error("Row(0) on empty mask should be nil")
	}
}

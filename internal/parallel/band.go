// Package parallel splits full-canvas recomposition into horizontal bands
// that are rendered independently on a shared worker pool.
//
// A band owns a disjoint set of rows, so workers never write the same
// pixel. Callers must give each band its own scratch state.
package parallel

import "image"

// BandHeight is the number of rows in a full band.
// 64 rows of a 600px canvas is about 150KB of RGBA, small enough to stay
// in L2 while every stroke is blended into it.
const BandHeight = 64

// Bands splits bounds into horizontal bands of BandHeight rows, top to
// bottom. The last band may be shorter. Empty bounds yield no bands.
func Bands(bounds image.Rectangle) []image.Rectangle {
	if bounds.Empty() {
		return nil
	}
	n := (bounds.Dy() + BandHeight - 1) / BandHeight
	out := make([]image.Rectangle, 0, n)
	for y := bounds.Min.Y; y < bounds.Max.Y; y += BandHeight {
		out = append(out, image.Rect(bounds.Min.X, y, bounds.Max.X, min(y+BandHeight, bounds.Max.Y)))
	}
	return out
}

// ForEach calls fn once for every band on p and waits for all calls to
// return. A nil pool runs the bands in order on the calling goroutine.
func ForEach(p *WorkerPool, bands []image.Rectangle, fn func(band image.Rectangle)) {
	if p == nil || len(bands) < 2 {
		for _, b := range bands {
			fn(b)
		}
		return
	}
	work := make([]func(), len(bands))
	for i, b := range bands {
		b := b
		work[i] = func() { fn(b) }
	}
	p.ExecuteAll(work)
}

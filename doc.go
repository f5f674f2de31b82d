// Package sketch captures freehand strokes on a bounded canvas and
// composites them into a raster image for downstream analysis.
//
// # Overview
//
// An Engine is one drawing session. It turns pointer events into strokes,
// keeps them in an append-only StrokeModel, recomposes the canvas surface
// after every change, and exports the result as PNG.
//
// # Quick Start
//
//	e, err := sketch.New(600, 400)
//	if err != nil {
//	    return err
//	}
//	e.OnChange(func(c sketch.Change) { enableAnalyze(c.Strokes > 0) })
//
//	e.SelectColor(sketch.Red)
//	e.SelectWidth(5)
//	e.PointerDown(10, 10)
//	e.PointerMove(10, 50)
//	e.PointerUp()
//
//	dataURL, err := e.ExportInline()
//
// # Input Capture
//
// The engine is Idle until PointerDown, which begins a stroke seeded from
// the current ToolState. PointerMove appends to that stroke and is ignored
// while Idle. PointerUp seals the stroke and fires the change notification.
// Clear empties the canvas from any state. Coordinates outside the canvas
// are clamped; drawing never fails.
//
// # Tools and Blending
//
// Pen strokes paint source-over. Eraser strokes are drawn at
// EraserWidthMultiplier times the selected width and remove content
// (destination-out). Blend modes are applied per stroke in paint order, so
// re-rendering a model always reproduces the same pixels.
//
// # Export
//
// ExportInline returns a data URL synchronously. ExportBlob copies the
// surface and encodes it on another goroutine, handing PNG bytes to a
// callback. An empty canvas exports as a blank image.
//
// # Coordinate System
//
// Origin (0,0) at top-left, X increases right, Y increases down. Pixel
// (x, y) covers [x, x+1) x [y, y+1).
package sketch

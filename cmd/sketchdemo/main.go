// Command sketchdemo replays a scripted drawing session and saves the
// exported canvas as PNG.
package main

import (
	"flag"
	"log"
	"log/slog"
	"math"
	"os"

	"github.com/gogpu/sketch"
)

func main() {
	var (
		width   = flag.Int("width", sketch.DefaultCanvasWidth, "canvas width")
		height  = flag.Int("height", sketch.DefaultCanvasHeight, "canvas height")
		output  = flag.String("output", "sketch.png", "output file")
		bg      = flag.String("bg", "", "export background colour (hex or name); empty keeps transparency")
		size    = flag.Int("size", 0, "resample the export to size x size; 0 keeps the canvas size")
		erase   = flag.Bool("erase", true, "run the eraser pass")
		verbose = flag.Bool("v", false, "log engine events to stderr")
	)
	flag.Parse()

	if *verbose {
		sketch.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelDebug})))
	}

	var opts []sketch.EngineOption
	if *bg != "" {
		c, err := sketch.ParseColor(*bg)
		if err != nil {
			log.Fatalf("Invalid -bg: %v", err)
		}
		opts = append(opts, sketch.WithExportBackground(c))
	}
	if *size > 0 {
		opts = append(opts, sketch.WithExportSize(*size, *size))
	}

	e, err := sketch.New(*width, *height, opts...)
	if err != nil {
		log.Fatalf("Failed to create engine: %v", err)
	}
	defer func() { _ = e.Close() }()

	strokes := 0
	e.OnChange(func(c sketch.Change) { strokes = c.Strokes })

	drawReferenceStroke(e)
	drawPaletteWave(e)
	if *erase {
		drawEraserPass(e)
	}

	f, err := os.Create(*output) //nolint:gosec // output path is user-provided intentionally
	if err != nil {
		log.Fatalf("Failed to create %s: %v", *output, err)
	}
	if err := e.EncodePNG(f); err != nil {
		_ = f.Close()
		log.Fatalf("Failed to export: %v", err)
	}
	if err := f.Close(); err != nil {
		log.Fatalf("Failed to save: %v", err)
	}

	log.Printf("Sketch saved to %s (%dx%d, %d strokes)\n", *output, *width, *height, strokes)
}

// drawReferenceStroke draws a 5px red vertical line from (10,10) to (10,50).
func drawReferenceStroke(e *sketch.Engine) {
	e.SelectTool(sketch.ToolPen)
	e.SelectColorString("#FF0000")
	e.SelectWidth(5)
	e.PointerDown(10, 10)
	for y := 20.0; y <= 50; y += 10 {
		e.PointerMove(10, y)
	}
	e.PointerUp()
}

// drawPaletteWave draws one sine stroke per palette colour with growing width.
func drawPaletteWave(e *sketch.Engine) {
	w, h := float64(e.Width()), float64(e.Height())
	for i, c := range sketch.Palette {
		e.SelectColor(c)
		e.SelectWidth(float64(2 + 2*i))
		base := h * (0.15 + 0.08*float64(i))
		e.PointerDown(w*0.1, base)
		for x := w * 0.1; x <= w*0.9; x += 6 {
			e.PointerMove(x, base+12*math.Sin(x/40+float64(i)))
		}
		e.PointerUp()
	}
}

// drawEraserPass cuts a diagonal through everything drawn so far.
func drawEraserPass(e *sketch.Engine) {
	w, h := float64(e.Width()), float64(e.Height())
	e.SelectTool(sketch.ToolEraser)
	e.SelectWidth(8)
	e.PointerDown(w*0.5, 0)
	e.PointerMove(w*0.7, h)
	e.PointerUp()
	e.SelectTool(sketch.ToolPen)
}

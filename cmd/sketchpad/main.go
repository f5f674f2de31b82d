// Command sketchpad is a terminal drawing pad. Draw with the left mouse
// button; press s to save the canvas as PNG.
package main

import (
	"flag"
	"log"
	"log/slog"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/gogpu/sketch"
	"github.com/gogpu/sketch/internal/tui"
)

func main() {
	var (
		width   = flag.Int("width", sketch.DefaultCanvasWidth, "canvas width")
		height  = flag.Int("height", sketch.DefaultCanvasHeight, "canvas height")
		output  = flag.String("output", "sketch.png", "file written by the save key")
		bg      = flag.String("bg", "white", "export background colour; empty keeps transparency")
		logPath = flag.String("log", "", "write debug logs to this file")
		mono    = flag.Bool("mono", false, "draw the preview without colour")
	)
	flag.Parse()

	if *logPath != "" {
		f, err := tea.LogToFile(*logPath, "sketchpad")
		if err != nil {
			log.Fatalf("Failed to open log: %v", err)
		}
		defer func() { _ = f.Close() }()
		sketch.SetLogger(slog.New(slog.NewTextHandler(f, &slog.HandlerOptions{Level: slog.LevelDebug})))
	}

	var opts []sketch.EngineOption
	if *bg != "" {
		c, err := sketch.ParseColor(*bg)
		if err != nil {
			log.Fatalf("Invalid -bg: %v", err)
		}
		opts = append(opts, sketch.WithExportBackground(c))
	}

	e, err := sketch.New(*width, *height, opts...)
	if err != nil {
		log.Fatalf("Failed to create engine: %v", err)
	}
	defer func() { _ = e.Close() }()

	m := tui.New(e, *output).WithColour(!*mono)
	if _, err := tea.NewProgram(m, tea.WithAltScreen(), tea.WithMouseCellMotion()).Run(); err != nil {
		log.Fatal(err)
	}
}

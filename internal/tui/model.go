// Package tui is a terminal drawing host for a sketch.Engine. Mouse
// gestures over the canvas area become pointer events and the composed
// surface is previewed as braille.
package tui

import (
	"image"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/gogpu/sketch"
)

// widthStep is how much +/- change the stroke width.
const widthStep = 1.0

// Layout constants, in cells.
const (
	headerHeight = 1
	borderSize   = 1
	minCanvasW   = 8
	minCanvasH   = 4
)

// changeLog receives engine notifications. It is shared by every copy of
// the Model because listeners outlive a single Update.
type changeLog struct {
	last   sketch.Change
	seen   bool
	cancel func()
}

// Model is the bubbletea model of the drawing host. Copies share the engine
// and the change log.
type Model struct {
	width  int
	height int

	engine  *sketch.Engine
	outPath string

	keys keyMap
	help help.Model

	status   string
	statusOK bool
	saving   bool
	colour   bool

	changes *changeLog
}

// New returns a host for e. Saved images are written to outPath.
func New(e *sketch.Engine, outPath string) Model {
	m := Model{
		engine:   e,
		outPath:  outPath,
		keys:     newKeyMap(),
		help:     help.New(),
		status:   "draw with the left mouse button",
		statusOK: true,
		colour:   true,
		changes:  &changeLog{},
	}
	cl := m.changes
	cl.cancel = e.OnChange(func(c sketch.Change) {
		cl.last = c
		cl.seen = true
		if c.Kind == sketch.ChangeStrokeCompleted {
			sketch.Logger().Debug("sketchpad: stroke completed", "id", c.Stroke, "strokes", c.Strokes)
		}
	})
	return m
}

// WithColour returns m with coloured preview cells enabled or disabled.
func (m Model) WithColour(on bool) Model {
	m.colour = on
	return m
}

// Close unregisters the host from its engine.
func (m Model) Close() {
	if m.changes.cancel != nil {
		m.changes.cancel()
		m.changes.cancel = nil
	}
}

func (m Model) Init() tea.Cmd { return nil }

func (m Model) footerHeight() int {
	return 1 + lipgloss.Height(m.help.View(m.keys))
}

// canvasRect returns the cell rectangle that shows the canvas, keeping the
// canvas aspect ratio with square braille dots.
func (m Model) canvasRect() image.Rectangle {
	availW := max(minCanvasW, m.width-2*borderSize)
	availH := max(minCanvasH, m.height-headerHeight-m.footerHeight()-2*borderSize)

	cw, ch := float64(m.engine.Width()), float64(m.engine.Height())
	scale := min(float64(availW*2)/cw, float64(availH*4)/ch)
	w := max(1, min(availW, int(cw*scale/2+0.5)))
	h := max(1, min(availH, int(ch*scale/4+0.5)))

	origin := image.Pt(borderSize, headerHeight+borderSize)
	return image.Rectangle{Min: origin, Max: origin.Add(image.Pt(w, h))}
}

// cellToCanvas maps a terminal cell to canvas coordinates at the cell
// centre. Cells outside the canvas area map past its edge and are clamped
// by the engine.
func (m Model) cellToCanvas(cx, cy int) (x, y float64) {
	r := m.canvasRect()
	x = (float64(cx-r.Min.X) + 0.5) / float64(r.Dx()) * float64(m.engine.Width())
	y = (float64(cy-r.Min.Y) + 0.5) / float64(r.Dy()) * float64(m.engine.Height())
	return x, y
}

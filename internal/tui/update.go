package tui

import (
	"fmt"
	"image"
	"os"
	"path/filepath"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/gogpu/sketch"
)

// savedMsg reports the outcome of an asynchronous PNG save.
type savedMsg struct {
	path string
	size int
	err  error
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
	case tea.KeyMsg:
		return m.handleKey(msg)
	case tea.MouseMsg:
		m.handleMouse(msg)
	case savedMsg:
		m.saving = false
		if msg.err != nil {
			m.setStatus(false, "save failed: %v", msg.err)
			sketch.Logger().Warn("sketchpad: save failed", "path", msg.path, "error", msg.err)
			return m, nil
		}
		m.setStatus(true, "saved %s (%d bytes)", filepath.Base(msg.path), msg.size)
		sketch.Logger().Info("sketchpad: saved", "path", msg.path, "bytes", msg.size)
	}
	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.Close()
		return m, tea.Quit
	case key.Matches(msg, m.keys.Pen):
		m.engine.SelectTool(sketch.ToolPen)
		m.setStatus(true, "pen")
	case key.Matches(msg, m.keys.Eraser):
		m.engine.SelectTool(sketch.ToolEraser)
		m.setStatus(true, "eraser")
	case key.Matches(msg, m.keys.Color):
		if i, ok := paletteIndex(msg.String()); ok && i < len(sketch.Palette) {
			m.engine.SelectColor(sketch.Palette[i])
			m.setStatus(true, "colour %s", sketch.Palette[i].Hex())
		}
	case key.Matches(msg, m.keys.Wider):
		m.engine.SelectWidth(m.engine.ToolState().Width + widthStep)
		m.setStatus(true, "width %.0f", m.engine.ToolState().Width)
	case key.Matches(msg, m.keys.Thinner):
		m.engine.SelectWidth(m.engine.ToolState().Width - widthStep)
		m.setStatus(true, "width %.0f", m.engine.ToolState().Width)
	case key.Matches(msg, m.keys.Clear):
		m.engine.Clear()
		m.setStatus(true, "cleared")
	case key.Matches(msg, m.keys.Save):
		if m.saving {
			return m, nil
		}
		m.saving = true
		m.setStatus(true, "saving %s...", filepath.Base(m.outPath))
		return m, m.save()
	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
	}
	return m, nil
}

// handleMouse turns left-button gestures into pointer events.
func (m Model) handleMouse(msg tea.MouseMsg) {
	switch msg.Action {
	case tea.MouseActionPress:
		if msg.Button != tea.MouseButtonLeft {
			return
		}
		if !image.Pt(msg.X, msg.Y).In(m.canvasRect()) {
			return
		}
		m.engine.PointerDown(m.cellToCanvas(msg.X, msg.Y))
	case tea.MouseActionMotion:
		m.engine.PointerMove(m.cellToCanvas(msg.X, msg.Y))
	case tea.MouseActionRelease:
		m.engine.PointerUp()
	}
}

// save snapshots the canvas now and writes it to outPath off the event
// loop. The result arrives as a savedMsg.
func (m Model) save() tea.Cmd {
	path := m.outPath
	done := make(chan savedMsg, 1)
	m.engine.ExportBlob(func(b []byte, err error) {
		if err == nil {
			if werr := os.WriteFile(path, b, 0o644); werr != nil {
				err = fmt.Errorf("write %s: %w", path, werr)
			}
		}
		done <- savedMsg{path: path, size: len(b), err: err}
	})
	return func() tea.Msg { return <-done }
}

func (m *Model) setStatus(ok bool, format string, args ...any) {
	m.statusOK = ok
	m.status = fmt.Sprintf(format, args...)
}

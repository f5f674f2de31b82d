package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/google/uuid"

	"github.com/gogpu/sketch"
)

func (m Model) View() string {
	if m.width == 0 || m.height == 0 {
		return ""
	}
	contentWidth := max(10, m.width)

	// Header
	header := titleStyle.Render(" sketchpad ") +
		dimStyle.Render(fmt.Sprintf(" %dx%d canvas ", m.engine.Width(), m.engine.Height()))
	header = lipgloss.NewStyle().Width(contentWidth).Render(header)

	// Canvas
	r := m.canvasRect()
	var body string
	if snap, err := m.engine.Snapshot(); err != nil {
		body = errStyle.Render(err.Error())
	} else {
		lines := renderSurface(snap, r.Dx(), r.Dy(), m.colour)
		body = canvasStyle.Render(lipgloss.NewStyle().Width(r.Dx()).Height(r.Dy()).Render(strings.Join(lines, "\n")))
	}

	footer := lipgloss.JoinVertical(lipgloss.Left, m.renderStatus(), m.help.View(m.keys))

	ui := lipgloss.JoinVertical(lipgloss.Left, header, body, footer)
	return appStyle.Width(contentWidth).Height(m.height).Render(ui)
}

// renderStatus shows the tool state, stroke count, the last change
// notification and the last action.
func (m Model) renderStatus() string {
	ts := m.engine.ToolState()
	parts := []string{
		" " + swatch(ts.Color),
		fmt.Sprintf("%s %.0f", ts.Tool, ts.Width),
		fmt.Sprintf("strokes %d", m.engine.Model().Len()),
		m.renderChange(),
	}
	st := dimStyle
	if !m.statusOK {
		st = errStyle
	}
	parts = append(parts, st.Render(m.status))
	return strings.Join(parts, dimStyle.Render("  │  "))
}

func (m Model) renderChange() string {
	if !m.changes.seen {
		return dimStyle.Render("empty")
	}
	if m.changes.last.Kind == sketch.ChangeStrokeCompleted && m.changes.last.Strokes > 0 {
		return okStyle.Render("ready to analyze") + dimStyle.Render(" "+shortID(m.changes.last.Stroke))
	}
	return dimStyle.Render(m.changes.last.Kind.String())
}

// shortID returns the first block of a stroke ID.
func shortID(id uuid.UUID) string {
	return id.String()[:8]
}

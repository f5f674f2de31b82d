package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/gogpu/sketch"
)

// Styles
var (
	baseFg    = lipgloss.Color("#E6E6E6")
	baseDimFg = lipgloss.AdaptiveColor{Light: "#6B7280", Dark: "#6B7280"}
	accentFg  = lipgloss.Color("#7C3AED")
	borderCol = lipgloss.Color("#243141")
	okFg      = lipgloss.Color("#22C55E")
	errFg     = lipgloss.Color("#EF4444")

	appStyle    = lipgloss.NewStyle().Foreground(baseFg)
	canvasStyle = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(borderCol)
	titleStyle  = lipgloss.NewStyle().Foreground(accentFg).Bold(true)
	dimStyle    = lipgloss.NewStyle().Foreground(baseDimFg)
	okStyle     = lipgloss.NewStyle().Foreground(okFg)
	errStyle    = lipgloss.NewStyle().Foreground(errFg)
)

// swatch renders a two-cell block of c.
func swatch(c sketch.RGBA) string {
	return lipgloss.NewStyle().Background(lipgloss.Color(sketch.RGB(c.R, c.G, c.B).Hex())).Render("  ")
}

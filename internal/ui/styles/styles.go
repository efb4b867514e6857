// Package styles holds the shared lipgloss palette for all views.
package styles

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"
)

// Palette
var (
	ColorAccentBlue  = lipgloss.Color("#58a6ff")
	ColorTextPrimary = lipgloss.Color("#c9d1d9")
	ColorTextMuted   = lipgloss.Color("#8b949e")
	ColorSurface     = lipgloss.Color("#161b22")
	ColorBorder      = lipgloss.Color("#30363d")

	// Label colors: Signal is the point of the product, it gets green.
	ColorSignal  = lipgloss.Color("#3fb950")
	ColorReview  = lipgloss.Color("#d29922")
	ColorNoise   = lipgloss.Color("#8b949e")
	ColorPending = lipgloss.Color("#484f58")

	ColorError = lipgloss.Color("#f85149")
)

var (
	Title = lipgloss.NewStyle().
		Bold(true).
		Foreground(ColorAccentBlue)

	Muted = lipgloss.NewStyle().
		Foreground(ColorTextMuted)

	Dim = lipgloss.NewStyle().
		Foreground(ColorPending)

	ErrorPanel = lipgloss.NewStyle().
			Foreground(ColorError).
			Border(lipgloss.RoundedBorder()).
			BorderForeground(ColorError).
			Padding(0, 1)

	StatusBar = lipgloss.NewStyle().
			Foreground(ColorTextPrimary).
			Background(ColorSurface).
			Padding(0, 1)

	StatusKey = lipgloss.NewStyle().
			Foreground(ColorAccentBlue).
			Bold(true)

	Card = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(ColorBorder).
		Padding(0, 2)

	Badge = lipgloss.NewStyle().
		Background(ColorSurface).
		Padding(0, 1).
		MarginRight(1)
)

// LabelStyle returns the color style for an evaluation label.
func LabelStyle(label string) lipgloss.Style {
	switch label {
	case "Signal":
		return lipgloss.NewStyle().Foreground(ColorSignal).Bold(true)
	case "Review":
		return lipgloss.NewStyle().Foreground(ColorReview)
	case "Noise":
		return lipgloss.NewStyle().Foreground(ColorNoise)
	}
	return lipgloss.NewStyle().Foreground(ColorPending)
}

// Truncate shortens s to maxWidth display cells, appending ".." when cut.
// Width-aware so CJK titles don't overflow their column.
func Truncate(s string, maxWidth int) string {
	if maxWidth <= 0 {
		return ""
	}
	if runewidth.StringWidth(s) <= maxWidth {
		return s
	}
	if maxWidth <= 2 {
		return runewidth.Truncate(s, maxWidth, "")
	}
	return runewidth.Truncate(s, maxWidth, "..")
}

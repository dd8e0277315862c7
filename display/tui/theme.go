package tui

import "github.com/charmbracelet/lipgloss"

// Color palette for the activity dashboard.
const (
	colorPrimary = lipgloss.Color("#7C3AED") // Purple
	colorAccent  = lipgloss.Color("#06B6D4") // Cyan
	colorActive  = lipgloss.Color("#22C55E") // Green
	colorWarning = lipgloss.Color("#EAB308") // Yellow
	colorMuted   = lipgloss.Color("#6B7280") // Gray
)

// Styles used throughout the TUI.
var (
	styleTitle   lipgloss.Style
	styleValue   lipgloss.Style
	styleLabel   lipgloss.Style
	styleLive    lipgloss.Style
	styleNoData  lipgloss.Style
	styleFooter  lipgloss.Style
	styleContent lipgloss.Style
)

func init() {
	styleTitle = lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("#FFFFFF")).
		Background(colorPrimary).
		Padding(0, 2)

	styleValue = lipgloss.NewStyle().
		Bold(true).
		Foreground(colorAccent)

	styleLabel = lipgloss.NewStyle().
		Foreground(colorMuted)

	styleLive = lipgloss.NewStyle().
		Foreground(colorActive)

	styleNoData = lipgloss.NewStyle().
		Foreground(colorMuted).
		Italic(true)

	styleFooter = lipgloss.NewStyle().
		Foreground(colorMuted).
		MarginTop(1)

	styleContent = lipgloss.NewStyle().
		Padding(1, 2)
}

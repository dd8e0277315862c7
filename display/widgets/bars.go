// Package widgets provides terminal chart rendering for activity windows.
package widgets

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"gitlab.com/tinyland/lab/wrist-pulse/engine"
)

// Bar glyphs for the 2-level histogram. A full bar lights both cells, a
// half bar only the lower one, and an empty bar neither. Slots with no
// committed data render as a dot on the baseline.
const (
	barFull  = '█'
	barHalf  = '▄'
	barEmpty = ' '
	barNone  = '·'
)

// BarChartConfig controls the appearance of a window bar chart.
type BarChartConfig struct {
	// Window holds the 12 samples to render.
	Window engine.Window
	// Color is the lipgloss color for lit bar cells.
	Color lipgloss.Color
	// Gap inserts a space between bars when true.
	Gap bool
}

// RenderBarChart renders a window as a two-row, 12-column bar chart using
// the timeframe's threshold table. The first returned line is the upper
// cell row, the second the lower.
func RenderBarChart(cfg BarChartConfig) []string {
	var top, bottom strings.Builder

	for i, v := range cfg.Window.Values {
		if cfg.Gap && i > 0 {
			top.WriteRune(' ')
			bottom.WriteRune(' ')
		}

		if !cfg.Window.Valid[i] {
			top.WriteRune(barEmpty)
			bottom.WriteRune(barNone)
			continue
		}

		switch engine.BarHeight(v, cfg.Window.Timeframe) {
		case 2:
			top.WriteRune(barFull)
			bottom.WriteRune(barFull)
		case 1:
			top.WriteRune(barEmpty)
			bottom.WriteRune(barHalf)
		default:
			top.WriteRune(barEmpty)
			bottom.WriteRune(barEmpty)
		}
	}

	lines := []string{top.String(), bottom.String()}
	if cfg.Color != "" {
		style := lipgloss.NewStyle().Foreground(cfg.Color)
		for i := range lines {
			lines[i] = style.Render(lines[i])
		}
	}
	return lines
}

// BarLabels renders an axis line under a bar chart: the last digit of the
// hour of day per column for the hourly timeframe, or days-back markers
// for the daily timeframe.
func BarLabels(w engine.Window, gap bool) string {
	var b strings.Builder
	for i := range w.Values {
		if gap && i > 0 {
			b.WriteRune(' ')
		}
		if w.Timeframe == engine.TimeframeHourly {
			b.WriteRune(rune('0' + w.HourAt(i)%10))
			continue
		}
		b.WriteRune(rune('0' + w.DaysBackAt(i)%10))
	}
	return b.String()
}

package widgets

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// sparkBlocks contains 8 unicode block characters for sparkline rendering,
// ordered from lowest to highest.
var sparkBlocks = []rune{'▁', '▂', '▃', '▄', '▅', '▆', '▇', '█'}

// SparklineConfig controls the appearance of an activity sparkline.
type SparklineConfig struct {
	// Data points to render (most recent last).
	Data []uint16
	// Width is the number of characters to render. If 0, uses len(Data).
	Width int
	// Max is the scale ceiling. If 0, auto-scales to the data maximum.
	Max uint16
	// Label is optional text shown before the sparkline.
	Label string
	// Color is the lipgloss color for the sparkline characters.
	Color lipgloss.Color
}

// RenderSparkline renders an 8-level unicode sparkline from active-minute
// counts.
func RenderSparkline(cfg SparklineConfig) string {
	if len(cfg.Data) == 0 {
		return ""
	}

	data := cfg.Data

	width := cfg.Width
	if width <= 0 {
		width = len(data)
	}
	if width < len(data) {
		data = data[len(data)-width:]
	}

	maxVal := cfg.Max
	if maxVal == 0 {
		for _, v := range data {
			if v > maxVal {
				maxVal = v
			}
		}
	}

	var runes []rune
	for _, v := range data {
		if maxVal == 0 {
			runes = append(runes, sparkBlocks[0])
			continue
		}
		idx := int(v) * (len(sparkBlocks) - 1) / int(maxVal)
		if idx >= len(sparkBlocks) {
			idx = len(sparkBlocks) - 1
		}
		runes = append(runes, sparkBlocks[idx])
	}

	sparkStr := string(runes)
	if width > len(data) {
		sparkStr = strings.Repeat(" ", width-len(data)) + sparkStr
	}

	if cfg.Color != "" {
		sparkStr = lipgloss.NewStyle().Foreground(cfg.Color).Render(sparkStr)
	}
	if cfg.Label != "" {
		sparkStr = cfg.Label + " " + sparkStr
	}

	return sparkStr
}

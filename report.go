package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/fatih/color"

	"gitlab.com/tinyland/lab/wrist-pulse/display/widgets"
	"gitlab.com/tinyland/lab/wrist-pulse/engine"
	"gitlab.com/tinyland/lab/wrist-pulse/internal/format"
)

// Report bar sizing: each row spends reportRowOverhead columns on the
// label, count, and marker, and the bar takes the rest of the terminal
// width within the clamp bounds.
const (
	reportRowOverhead  = 14
	reportMinBarWidth  = 16
	reportMaxBarWidth  = 48
	reportDefaultWidth = 80
)

// reportBarWidth sizes report bars to the terminal the output goes to,
// falling back to an 80-column layout for pipes and files.
func reportBarWidth(w io.Writer) int {
	termWidth := reportDefaultWidth
	if f, ok := w.(*os.File); ok {
		termWidth = widgets.TerminalWidth(f, reportDefaultWidth)
	}
	return clampBarWidth(termWidth)
}

// clampBarWidth converts a terminal width into a bar column count.
func clampBarWidth(termWidth int) int {
	bw := termWidth - reportRowOverhead
	if bw < reportMinBarWidth {
		return reportMinBarWidth
	}
	if bw > reportMaxBarWidth {
		return reportMaxBarWidth
	}
	return bw
}

// writeReport prints a one-shot activity report for the given window: one
// row per slot with a proportional bar, then the median/min/max summary
// with translated hour or calendar-date labels.
func writeReport(w io.Writer, log *engine.Log, clock engine.Clock, tf engine.Timeframe, colored bool) {
	now := clock.Now()
	win := log.Window(tf, now)
	barWidth := reportBarWidth(w)
	ruleWidth := barWidth + reportRowOverhead

	title := "Activity — last 12 hours"
	if tf == engine.TimeframeDaily {
		title = "Activity — last 12 days"
	}
	fmt.Fprintln(w, title)
	fmt.Fprintln(w, strings.Repeat("─", ruleWidth))

	scale := windowScale(tf)
	full := color.New(color.FgGreen)
	half := color.New(color.FgYellow)
	dim := color.New(color.FgHiBlack)
	if !colored {
		color.NoColor = true
	}

	for i, v := range win.Values {
		label := format.Hour(win.HourAt(i))
		if tf == engine.TimeframeDaily {
			if !win.Valid[i] {
				fmt.Fprintf(w, "%5s  %s\n", "--", dim.Sprint("no data"))
				continue
			}
			label = fmt.Sprintf("%5d", clock.DaysBack(win.DaysBackAt(i)))
		}

		barLen := int(v) * barWidth / scale
		if barLen > barWidth {
			barLen = barWidth
		}
		bar := strings.Repeat("█", barLen)
		switch engine.BarHeight(v, tf) {
		case 2:
			bar = full.Sprint(bar)
		case 1:
			bar = half.Sprint(bar)
		default:
			bar = dim.Sprint(bar)
		}

		marker := " "
		if i == engine.WindowSize-1 && tf == engine.TimeframeHourly {
			marker = "<" // current partial hour
		}
		fmt.Fprintf(w, "%5s  %-*s %4d %s\n", label, barWidth, bar, v, marker)
	}

	fmt.Fprintln(w, strings.Repeat("─", ruleWidth))

	med := win.Median()
	minVal, minIdx := win.Min()
	maxVal, maxIdx := win.Max()

	fmt.Fprintf(w, "median  %s\n", format.Minutes(med))
	fmt.Fprintf(w, "min     %s at %s\n", format.Minutes(minVal), slotLabel(&win, clock, minIdx))
	fmt.Fprintf(w, "max     %s at %s\n", format.Minutes(maxVal), slotLabel(&win, clock, maxIdx))
	fmt.Fprintf(w, "today   %s %s\n", format.Minutes(log.MinutesToday()), engine.MoodFor(log.MinutesToday()).Emoticon())
}

// windowScale is the full-bar scale for proportional report bars.
func windowScale(tf engine.Timeframe) int {
	if tf == engine.TimeframeHourly {
		return engine.MaxMinutesPerHour
	}
	return engine.MaxMinutesPerDay
}

// slotLabel translates a window slot into a calendar label for display.
func slotLabel(w *engine.Window, clock engine.Clock, idx int) string {
	if idx < 0 {
		return "--"
	}
	if w.Timeframe == engine.TimeframeHourly {
		return format.Hour(w.HourAt(idx))
	}
	if !w.Valid[idx] {
		return "--"
	}
	return fmt.Sprintf("day %d", clock.DaysBack(w.DaysBackAt(idx)))
}

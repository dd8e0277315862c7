package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"gitlab.com/tinyland/lab/wrist-pulse/display/widgets"
	"gitlab.com/tinyland/lab/wrist-pulse/engine"
	"gitlab.com/tinyland/lab/wrist-pulse/internal/format"
)

// View implements tea.Model.
func (m Model) View() string {
	if !m.ready {
		return "loading..."
	}

	var b strings.Builder

	b.WriteString(styleTitle.Render("wrist-pulse"))
	b.WriteString("\n\n")

	if m.loadErr != nil {
		b.WriteString(styleNoData.Render(fmt.Sprintf("load error: %v", m.loadErr)))
		b.WriteString("\n\n")
	}

	switch m.page {
	case PageDay:
		b.WriteString(m.viewDayPage())
	case PageHistogram:
		b.WriteString(m.viewHistogramPage())
	}

	b.WriteString("\n")
	if !m.lastLoaded.IsZero() {
		b.WriteString(styleLabel.Render("updated " + format.TimeSince(m.lastLoaded)))
		b.WriteString("\n")
	}
	b.WriteString(styleFooter.Render(m.help.View(keys)))

	return styleContent.Render(b.String())
}

// viewDayPage renders the running count for today or a committed day.
func (m Model) viewDayPage() string {
	var b strings.Builder

	dom := m.clock.DaysBack(m.daysBack)

	if m.daysBack == 0 {
		b.WriteString(styleLabel.Render("today") + " " + styleValue.Render(fmt.Sprintf("%02d", dom)))
		b.WriteString("\n\n")
		mins := m.log.MinutesToday()
		b.WriteString(styleLabel.Render("active ") + styleValue.Render(format.Minutes(mins)))
		b.WriteString("  " + moodStyle(mins).Render(engine.MoodFor(mins).Emoticon()))
		b.WriteString("\n")
		if m.log.DebounceArmed() {
			b.WriteString(styleLive.Render("● sampling"))
			b.WriteString("\n")
		}

		// Compact 12-hour trend under the running count.
		win := m.log.Window(engine.TimeframeHourly, m.clock.Now())
		b.WriteString("\n")
		b.WriteString(widgets.RenderSparkline(widgets.SparklineConfig{
			Data:  win.Values[:],
			Width: engine.WindowSize,
			Max:   engine.MaxMinutesPerHour,
			Label: "12h",
			Color: colorAccent,
		}))
		b.WriteString("\n")
		return b.String()
	}

	b.WriteString(styleLabel.Render(fmt.Sprintf("-%dd", m.daysBack)) + " " + styleValue.Render(fmt.Sprintf("%02d", dom)))
	b.WriteString("\n\n")

	mins, ok := m.log.DailyTotal(m.daysBack)
	if !ok {
		b.WriteString(styleNoData.Render("no data"))
		b.WriteString("\n")
		return b.String()
	}
	b.WriteString(styleLabel.Render("active ") + styleValue.Render(format.Minutes(mins)))
	b.WriteString("  " + moodStyle(mins).Render(engine.MoodFor(mins).Emoticon()))
	b.WriteString("\n")
	return b.String()
}

// viewHistogramPage renders the 12-slot chart or one of its stat views.
func (m Model) viewHistogramPage() string {
	var b strings.Builder

	now := m.clock.Now()
	w := m.log.Window(m.timeframe, now)

	b.WriteString(styleLabel.Render(m.timeframe.String()))
	b.WriteString("\n\n")

	switch m.view {
	case ViewChart:
		rows := widgets.RenderBarChart(widgets.BarChartConfig{
			Window: w,
			Color:  colorPrimary,
			Gap:    true,
		})
		for _, row := range rows {
			b.WriteString(row)
			b.WriteString("\n")
		}
		b.WriteString(styleLabel.Render(widgets.BarLabels(w, true)))
		b.WriteString("\n")

	case ViewMedian:
		b.WriteString(styleLabel.Render("median ") + styleValue.Render(format.Minutes(w.Median())))
		b.WriteString("\n")

	case ViewMin:
		b.WriteString(m.viewExtreme("min", w, false))

	case ViewMax:
		b.WriteString(m.viewExtreme("max", w, true))
	}

	return b.String()
}

// viewExtreme renders the min or max view with its slot translated back to
// an hour of day or a day of month.
func (m Model) viewExtreme(label string, w engine.Window, max bool) string {
	var val uint16
	var idx int
	if max {
		val, idx = w.Max()
	} else {
		val, idx = w.Min()
	}
	if idx < 0 {
		return styleNoData.Render("no data") + "\n"
	}

	var at string
	if w.Timeframe == engine.TimeframeHourly {
		at = format.Hour(w.HourAt(idx))
	} else {
		at = fmt.Sprintf("%02d", m.clock.DaysBack(w.DaysBackAt(idx)))
	}

	return styleLabel.Render(label+" ") + styleValue.Render(format.Minutes(val)) +
		styleLabel.Render(" at ") + styleValue.Render(at) + "\n"
}

// moodStyle picks a style matching the mood thresholds.
func moodStyle(minutes uint16) lipgloss.Style {
	switch engine.MoodFor(minutes) {
	case engine.MoodHappy:
		return styleLive
	case engine.MoodNeutral:
		return styleValue
	default:
		return styleNoData
	}
}

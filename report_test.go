package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/fatih/color"

	"gitlab.com/tinyland/lab/wrist-pulse/engine"
)

type fixedClock struct {
	now engine.TimeOfDay
}

func (c fixedClock) Now() engine.TimeOfDay { return c.now }

func (c fixedClock) DaysBack(n int) int {
	d := c.now.DayOfMonth - n
	for d < 1 {
		d += 30
	}
	return d
}

// activeHour pushes one absent minute plus enough active minutes through the
// debounce to credit the given count to an hour.
func activeHour(l *engine.Log, hour int, minutes uint16) {
	now := engine.TimeOfDay{Hour: hour, Minute: 0, DayOfMonth: 21}
	l.Sample(true, now)
	for i := uint16(0); i <= minutes; i++ {
		now.Minute++
		l.Sample(false, now)
	}
}

func TestWriteReportHourly(t *testing.T) {
	color.NoColor = true
	l := engine.NewLog(discardLogger())
	activeHour(l, 10, 12)
	activeHour(l, 14, 7)

	clock := fixedClock{now: engine.TimeOfDay{Hour: 14, Minute: 45, DayOfMonth: 21}}

	var buf bytes.Buffer
	writeReport(&buf, l, clock, engine.TimeframeHourly, false)
	out := buf.String()

	if !strings.Contains(out, "last 12 hours") {
		t.Errorf("missing hourly title:\n%s", out)
	}
	if !strings.Contains(out, "10:00") {
		t.Errorf("missing hour label for active hour:\n%s", out)
	}
	if !strings.Contains(out, "<") {
		t.Errorf("missing current-hour marker:\n%s", out)
	}
	if !strings.Contains(out, "median") {
		t.Errorf("missing median line:\n%s", out)
	}
	if !strings.Contains(out, "max     12m at 10:00") {
		t.Errorf("max line wrong:\n%s", out)
	}
}

func TestWriteReportDailyNoData(t *testing.T) {
	color.NoColor = true
	l := engine.NewLog(discardLogger())

	clock := fixedClock{now: engine.TimeOfDay{Hour: 9, Minute: 0, DayOfMonth: 21}}

	var buf bytes.Buffer
	writeReport(&buf, l, clock, engine.TimeframeDaily, false)
	out := buf.String()

	if !strings.Contains(out, "last 12 days") {
		t.Errorf("missing daily title:\n%s", out)
	}
	if got := strings.Count(out, "no data"); got != engine.WindowSize {
		t.Errorf("no-data rows = %d, want %d:\n%s", got, engine.WindowSize, out)
	}
}

func TestWriteReportDailyCommittedDays(t *testing.T) {
	color.NoColor = true
	l := engine.NewLog(discardLogger())

	// Three committed days of 40 minutes each.
	for day := 0; day < 3; day++ {
		activeHour(l, 9, 40)
		l.Rollover()
	}

	clock := fixedClock{now: engine.TimeOfDay{Hour: 9, Minute: 0, DayOfMonth: 21}}

	var buf bytes.Buffer
	writeReport(&buf, l, clock, engine.TimeframeDaily, false)
	out := buf.String()

	if got := strings.Count(out, "no data"); got != engine.WindowSize-3 {
		t.Errorf("no-data rows = %d, want %d:\n%s", got, engine.WindowSize-3, out)
	}
	if !strings.Contains(out, "40m") {
		t.Errorf("missing committed day total:\n%s", out)
	}
}

func TestClampBarWidth(t *testing.T) {
	tests := []struct {
		termWidth int
		want      int
	}{
		{20, reportMinBarWidth},  // narrower than the row overhead allows
		{40, 26},                 // scales with the terminal
		{60, 46},                 // scales with the terminal
		{200, reportMaxBarWidth}, // wide terminals stay legible
	}
	for _, tt := range tests {
		if got := clampBarWidth(tt.termWidth); got != tt.want {
			t.Errorf("clampBarWidth(%d) = %d, want %d", tt.termWidth, got, tt.want)
		}
	}
}

func TestReportBarWidthNonTerminalWriter(t *testing.T) {
	// Buffers and pipes get the 80-column default layout.
	var buf bytes.Buffer
	if got := reportBarWidth(&buf); got != reportMaxBarWidth {
		t.Errorf("reportBarWidth(buffer) = %d, want %d", got, reportMaxBarWidth)
	}
}

func TestWriteReportTodayMood(t *testing.T) {
	color.NoColor = true
	l := engine.NewLog(discardLogger())
	activeHour(l, 8, 35)

	clock := fixedClock{now: engine.TimeOfDay{Hour: 9, Minute: 0, DayOfMonth: 21}}

	var buf bytes.Buffer
	writeReport(&buf, l, clock, engine.TimeframeHourly, false)
	out := buf.String()

	if !strings.Contains(out, "today   35m :|") {
		t.Errorf("today line wrong:\n%s", out)
	}
}

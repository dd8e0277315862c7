package engine

// Timeframe selects which rolling window a query operates on.
type Timeframe int

const (
	// TimeframeHourly is the last 12 hours, one sample per hour.
	TimeframeHourly Timeframe = iota
	// TimeframeDaily is the last 12 committed days, one sample per day.
	TimeframeDaily
)

// String returns the short display label for the timeframe.
func (t Timeframe) String() string {
	switch t {
	case TimeframeHourly:
		return "hourly"
	case TimeframeDaily:
		return "daily"
	default:
		return "unknown"
	}
}

// ParseTimeframe maps a config/CLI string to a Timeframe.
// Unknown values default to hourly.
func ParseTimeframe(s string) Timeframe {
	if s == "daily" || s == "12d" {
		return TimeframeDaily
	}
	return TimeframeHourly
}

// Window is a materialized 12-element view of the most recent samples for
// one timeframe. Slot 0 is the oldest sample, slot WindowSize-1 the most
// recent (the current partial hour, or yesterday for the daily timeframe).
//
// Valid[i] is false for daily slots that were never committed (the first
// 11 days of operation). Such slots read as zero in statistics but must be
// presented as "no data" rather than a fabricated date.
type Window struct {
	Timeframe Timeframe
	Values    [WindowSize]uint16
	Valid     [WindowSize]bool

	hour   int // hour of day at extraction, hourly translation anchor
	cursor int // write cursor at extraction, daily translation anchor
}

// Window extracts the rolling window for the given timeframe. An
// out-of-range timeframe is a programming error; it is clamped to the
// hourly default and logged rather than treated as fatal.
func (l *Log) Window(tf Timeframe, now TimeOfDay) Window {
	switch tf {
	case TimeframeHourly, TimeframeDaily:
	default:
		l.logger.Warn("unknown timeframe, defaulting to hourly", "timeframe", int(tf))
		tf = TimeframeHourly
	}

	w := Window{Timeframe: tf, hour: now.Hour, cursor: l.writeCursor}

	if tf == TimeframeHourly {
		for i := range w.Values {
			w.Values[i] = l.hourlyTotals[w.HourAt(i)]
			w.Valid[i] = true
		}
		return w
	}

	for i := range w.Values {
		day := l.writeCursor - WindowSize + i
		if day < 0 {
			// Never committed. Zero-filled and flagged.
			continue
		}
		w.Values[i] = l.dailyTotals[day%NumDays]
		w.Valid[i] = true
	}
	return w
}

// HourAt translates a window slot index into an hour of day, 0-23.
// Only meaningful for the hourly timeframe.
func (w *Window) HourAt(i int) int {
	return ((w.hour-WindowSize+1+i)%hoursPerDay + hoursPerDay) % hoursPerDay
}

// DaysBackAt translates a window slot index into a number of days before
// today. Slot WindowSize-1 is yesterday. Only meaningful for the daily
// timeframe.
func (w *Window) DaysBackAt(i int) int {
	return WindowSize - i
}

// Median returns the median of the window values. Unfilled daily slots
// count as zero, matching the histogram rendering.
func (w *Window) Median() uint16 {
	return Median(w.Values[:])
}

// Min returns the minimum value and its slot index.
func (w *Window) Min() (uint16, int) {
	return MinWithIndex(w.Values[:])
}

// Max returns the maximum value and its slot index.
func (w *Window) Max() (uint16, int) {
	return MaxWithIndex(w.Values[:])
}

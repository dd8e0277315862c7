// Package engine implements the activity logging core: a debounced
// per-minute motion sampler, hourly and daily aggregation rings, rolling
// 12-sample windows for two timeframes, and descriptive statistics over
// those windows.
//
// The engine is purely reactive. A host scheduler delivers minute samples
// via Sample and a once-daily midnight commit via Rollover; everything else
// is a read-only computation over the accumulated state. The Log is owned
// by a single goroutine and does no internal locking.
package engine

import "log/slog"

const (
	// NumDays is the capacity of the daily history ring.
	NumDays = 12

	// WindowSize is the number of samples in a statistics window.
	WindowSize = 12

	// MaxMinutesPerHour bounds a single hourly bucket.
	MaxMinutesPerHour = 60

	// MaxMinutesPerDay bounds the running daily total.
	MaxMinutesPerDay = 1440

	hoursPerDay = 24
)

// Log accumulates active-minute counts for the current day, per hour of the
// current day, and per day for the most recent NumDays days.
//
// The daily ring is append-only in logical terms: writeCursor counts every
// day ever committed and is never wrapped, so the physical slot for day d
// is d % NumDays and slots older than NumDays days are overwritten.
type Log struct {
	dailyTotals  [NumDays]uint16
	writeCursor  int
	hourlyTotals [hoursPerDay]uint16
	minutesToday uint16
	debounce     bool
	currentHour  int
	logger       *slog.Logger
}

// NewLog creates an empty activity log.
func NewLog(logger *slog.Logger) *Log {
	if logger == nil {
		logger = slog.Default()
	}
	return &Log{
		currentHour: -1,
		logger:      logger,
	}
}

// Sample records one minute of motion sensor input. It must be called at
// most once per calendar minute.
//
// A single isolated active minute is treated as sensor noise: the first
// active minute after an absent minute only arms the debounce flag, and the
// count starts with the second consecutive active minute. An isolated
// active minute is never credited, not even retroactively.
func (l *Log) Sample(motionAbsent bool, now TimeOfDay) {
	if now.Hour < 0 || now.Hour >= hoursPerDay {
		l.logger.Warn("sample outside valid hour range, dropped", "hour", now.Hour)
		return
	}

	// Lazy per-hour reset: the first sample observed in a new hour clears
	// that hour's bucket before being processed. This subsumes the
	// minute-zero clear and still works when ticks are missed.
	if now.Hour != l.currentHour {
		l.hourlyTotals[now.Hour] = 0
		l.currentHour = now.Hour
	}

	if motionAbsent {
		l.debounce = false
		return
	}

	if !l.debounce {
		l.debounce = true
		return
	}

	// Clamp rather than wrap: exceeding either bound means the host
	// violated the once-per-minute contract.
	if l.minutesToday >= MaxMinutesPerDay {
		l.logger.Warn("daily total at bound, sample not credited", "minutes", l.minutesToday)
	} else {
		l.minutesToday++
	}
	if l.hourlyTotals[now.Hour] >= MaxMinutesPerHour {
		l.logger.Warn("hourly bucket at bound, sample not credited", "hour", now.Hour)
	} else {
		l.hourlyTotals[now.Hour]++
	}
}

// Rollover commits the running day total into the daily ring and resets it.
// The host scheduler must invoke it exactly once per midnight boundary; the
// engine itself does not deduplicate.
func (l *Log) Rollover() {
	l.dailyTotals[l.writeCursor%NumDays] = l.minutesToday
	l.writeCursor++
	l.minutesToday = 0
}

// MinutesToday returns the running active-minute count for the current,
// not-yet-committed day.
func (l *Log) MinutesToday() uint16 {
	return l.minutesToday
}

// DaysLogged returns the number of days ever committed to the daily ring.
func (l *Log) DaysLogged() int {
	return l.writeCursor
}

// DebounceArmed reports whether the previous sampled minute was active.
func (l *Log) DebounceArmed() bool {
	return l.debounce
}

// HourlyTotal returns the active-minute count for the given hour of day.
// For the current hour this is a partial count; for hours not yet visited
// today it still holds yesterday's value, which is what the rolling
// 12-hour window wants.
func (l *Log) HourlyTotal(hour int) uint16 {
	if hour < 0 || hour >= hoursPerDay {
		return 0
	}
	return l.hourlyTotals[hour]
}

// DailyTotal returns the committed total for the day the given number of
// days back (1 = yesterday). The second return value is false when that day
// was never committed or has already been overwritten in the ring.
func (l *Log) DailyTotal(daysBack int) (uint16, bool) {
	if daysBack < 1 || daysBack > NumDays {
		return 0, false
	}
	day := l.writeCursor - daysBack
	if day < 0 {
		return 0, false
	}
	return l.dailyTotals[day%NumDays], true
}

package engine

import "time"

// TimeOfDay is the slice of wall-clock state the engine cares about.
type TimeOfDay struct {
	// Hour is the hour of day, 0-23.
	Hour int
	// Minute is the minute of the hour, 0-59.
	Minute int
	// DayOfMonth is the calendar day, 1-31.
	DayOfMonth int
}

// Clock supplies the current local time and calendar lookups for
// translating window indices into dates. Production code uses SystemClock;
// tests substitute a synthetic clock.
type Clock interface {
	// Now returns the current local time of day.
	Now() TimeOfDay
	// DaysBack returns the day of month n days before today.
	DaysBack(n int) int
}

// SystemClock implements Clock using the local system time.
type SystemClock struct{}

// Now implements Clock.
func (SystemClock) Now() TimeOfDay {
	t := time.Now()
	return TimeOfDay{Hour: t.Hour(), Minute: t.Minute(), DayOfMonth: t.Day()}
}

// DaysBack implements Clock.
func (SystemClock) DaysBack(n int) int {
	return time.Now().AddDate(0, 0, -n).Day()
}

// TimeOfDayFrom extracts a TimeOfDay from a time.Time.
func TimeOfDayFrom(t time.Time) TimeOfDay {
	return TimeOfDay{Hour: t.Hour(), Minute: t.Minute(), DayOfMonth: t.Day()}
}

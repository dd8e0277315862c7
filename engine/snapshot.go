package engine

import (
	"fmt"
	"time"
)

// Snapshot is the JSON-serializable state of a Log, used by the host to
// persist the log across restarts. The engine itself never touches disk.
type Snapshot struct {
	DailyTotals  []uint16  `json:"daily_totals"`
	WriteCursor  int       `json:"write_cursor"`
	HourlyTotals []uint16  `json:"hourly_totals"`
	MinutesToday uint16    `json:"minutes_today"`
	Debounce     bool      `json:"debounce"`
	CurrentHour  int       `json:"current_hour"`
	TakenAt      time.Time `json:"taken_at"`
}

// Snapshot captures the current log state.
func (l *Log) Snapshot() *Snapshot {
	s := &Snapshot{
		DailyTotals:  make([]uint16, NumDays),
		WriteCursor:  l.writeCursor,
		HourlyTotals: make([]uint16, hoursPerDay),
		MinutesToday: l.minutesToday,
		Debounce:     l.debounce,
		CurrentHour:  l.currentHour,
		TakenAt:      time.Now(),
	}
	copy(s.DailyTotals, l.dailyTotals[:])
	copy(s.HourlyTotals, l.hourlyTotals[:])
	return s
}

// Restore replaces the log state with a previously captured snapshot.
func (l *Log) Restore(s *Snapshot) error {
	if s == nil {
		return fmt.Errorf("engine: restore: nil snapshot")
	}
	if len(s.DailyTotals) != NumDays {
		return fmt.Errorf("engine: restore: daily ring has %d slots, want %d", len(s.DailyTotals), NumDays)
	}
	if len(s.HourlyTotals) != hoursPerDay {
		return fmt.Errorf("engine: restore: hourly array has %d slots, want %d", len(s.HourlyTotals), hoursPerDay)
	}
	if s.WriteCursor < 0 {
		return fmt.Errorf("engine: restore: negative write cursor %d", s.WriteCursor)
	}
	if s.MinutesToday > MaxMinutesPerDay {
		return fmt.Errorf("engine: restore: minutes today %d exceeds bound", s.MinutesToday)
	}
	if s.CurrentHour < -1 || s.CurrentHour >= hoursPerDay {
		return fmt.Errorf("engine: restore: current hour %d out of range", s.CurrentHour)
	}

	copy(l.dailyTotals[:], s.DailyTotals)
	copy(l.hourlyTotals[:], s.HourlyTotals)
	l.writeCursor = s.WriteCursor
	l.minutesToday = s.MinutesToday
	l.debounce = s.Debounce
	l.currentHour = s.CurrentHour
	return nil
}

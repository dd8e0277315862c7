package format

import (
	"testing"
	"time"
)

func TestMinutes(t *testing.T) {
	tests := []struct {
		in   uint16
		want string
	}{
		{0, "0m"},
		{45, "45m"},
		{60, "1h 0m"},
		{204, "3h 24m"},
		{1440, "24h 0m"},
	}
	for _, tt := range tests {
		if got := Minutes(tt.in); got != tt.want {
			t.Errorf("Minutes(%d) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestHour(t *testing.T) {
	if got := Hour(7); got != "07:00" {
		t.Errorf("Hour(7) = %q", got)
	}
	if got := Hour(23); got != "23:00" {
		t.Errorf("Hour(23) = %q", got)
	}
}

func TestTimeSince(t *testing.T) {
	if got := TimeSince(time.Time{}); got != "never" {
		t.Errorf("TimeSince(zero) = %q, want never", got)
	}
	if got := TimeSince(time.Now()); got != "just now" {
		t.Errorf("TimeSince(now) = %q, want just now", got)
	}
	if got := TimeSince(time.Now().Add(-5 * time.Minute)); got != "5m ago" {
		t.Errorf("TimeSince(-5m) = %q, want 5m ago", got)
	}
}

func TestDuration(t *testing.T) {
	tests := []struct {
		in   time.Duration
		want string
	}{
		{0, "0s"},
		{45 * time.Second, "45s"},
		{90 * time.Second, "1m 30s"},
		{135 * time.Minute, "2h 15m"},
	}
	for _, tt := range tests {
		if got := Duration(tt.in); got != tt.want {
			t.Errorf("Duration(%v) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

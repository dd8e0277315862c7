package engine

// Bar height thresholds. Hourly buckets cap at 60 minutes, daily buckets at
// 1440, so the hourly scale is proportionally smaller.
const (
	hourlyFullBar = 10
	hourlyHalfBar = 5
	dailyFullBar  = 150
	dailyHalfBar  = 30
)

// BarHeight maps an active-minute count to a 2-level histogram bar height
// (0, 1, or 2) using the threshold table for the given timeframe.
func BarHeight(minutes uint16, tf Timeframe) int {
	if tf == TimeframeHourly {
		switch {
		case minutes >= hourlyFullBar:
			return 2
		case minutes >= hourlyHalfBar:
			return 1
		default:
			return 0
		}
	}
	switch {
	case minutes >= dailyFullBar:
		return 2
	case minutes >= dailyHalfBar:
		return 1
	default:
		return 0
	}
}

// Mood is a coarse classification of a day's activity total.
type Mood int

const (
	// MoodSad is fewer than 30 active minutes.
	MoodSad Mood = iota
	// MoodNeutral is 30-149 active minutes.
	MoodNeutral
	// MoodHappy is 150 or more active minutes.
	MoodHappy
)

// MoodFor classifies a daily active-minute total.
func MoodFor(minutes uint16) Mood {
	switch {
	case minutes >= dailyFullBar:
		return MoodHappy
	case minutes >= dailyHalfBar:
		return MoodNeutral
	default:
		return MoodSad
	}
}

// Emoticon returns the display face for the mood.
func (m Mood) Emoticon() string {
	switch m {
	case MoodHappy:
		return ":)"
	case MoodNeutral:
		return ":|"
	default:
		return ":("
	}
}

// String returns the mood name.
func (m Mood) String() string {
	switch m {
	case MoodHappy:
		return "happy"
	case MoodNeutral:
		return "neutral"
	default:
		return "sad"
	}
}

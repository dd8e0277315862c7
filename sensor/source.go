// Package sensor provides motion sources for the activity daemon. A source
// answers one question once per minute: was motion absent during the minute
// that just ended. The daemon never reads sensor hardware directly; device
// bridges write samples for the file source, and the sim source generates a
// plausible day profile for demos and tests.
package sensor

import (
	"context"
	"time"
)

// Source is the motion-sensor collaborator.
type Source interface {
	// Name returns the source's identifier for logging.
	Name() string

	// MotionAbsent reports whether motion was absent during the minute
	// ending at t.
	MotionAbsent(ctx context.Context, t time.Time) (bool, error)
}

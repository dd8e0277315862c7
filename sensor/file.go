package sensor

import (
	"context"
	"fmt"
	"os"
	"strings"
	"time"
)

// FileSource reads the most recent motion sample from a file maintained by
// a device bridge (e.g. a BLE relay that overwrites the file with "1" when
// the wearable reported motion in the last minute and "0" otherwise).
type FileSource struct {
	path string
	// maxAge is how old the file may be before its content is
	// distrusted and the minute treated as motion-absent.
	maxAge time.Duration
}

// NewFileSource creates a file-backed motion source.
func NewFileSource(path string) *FileSource {
	return &FileSource{path: path, maxAge: 2 * time.Minute}
}

// Name implements Source.
func (f *FileSource) Name() string {
	return "file"
}

// MotionAbsent implements Source. A missing or stale file means the bridge
// is not delivering samples; that minute reads as motion-absent so gaps
// never inflate the activity count.
func (f *FileSource) MotionAbsent(_ context.Context, t time.Time) (bool, error) {
	info, err := os.Stat(f.path)
	if err != nil {
		if os.IsNotExist(err) {
			return true, nil
		}
		return true, fmt.Errorf("sensor: stat %s: %w", f.path, err)
	}
	if t.Sub(info.ModTime()) > f.maxAge {
		return true, nil
	}

	data, err := os.ReadFile(f.path)
	if err != nil {
		return true, fmt.Errorf("sensor: read %s: %w", f.path, err)
	}

	return strings.TrimSpace(string(data)) != "1", nil
}

// Package store persists activity log snapshots as JSON files so the
// accumulated history survives daemon restarts. Writes are atomic (temp
// file plus rename) and corrupted files are discarded rather than treated
// as fatal.
package store

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"gitlab.com/tinyland/lab/wrist-pulse/engine"
)

// snapshotFileName is the snapshot file within the data directory.
const snapshotFileName = "activity.json"

// Store reads and writes engine snapshots under a single data directory.
type Store struct {
	dir    string
	logger *slog.Logger
}

// NewStore creates a snapshot store at the given directory.
// The directory is created with 0700 permissions if it does not exist.
func NewStore(dir string, logger *slog.Logger) (*Store, error) {
	if err := os.MkdirAll(dir, 0700); err != nil {
		return nil, fmt.Errorf("store: create directory %s: %w", dir, err)
	}
	return &Store{dir: dir, logger: logger}, nil
}

// path returns the snapshot file path.
func (s *Store) path() string {
	return filepath.Join(s.dir, snapshotFileName)
}

// Load reads the persisted snapshot. Returns (nil, nil) when no snapshot
// exists yet. A corrupted file is removed and treated the same as a
// missing one.
func (s *Store) Load() (*engine.Snapshot, error) {
	data, err := os.ReadFile(s.path())
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("store: read snapshot: %w", err)
	}

	var snap engine.Snapshot
	if err := json.Unmarshal(data, &snap); err != nil {
		s.logger.Warn("store: removing corrupted snapshot", "error", err)
		_ = os.Remove(s.path())
		return nil, nil
	}

	return &snap, nil
}

// Save writes a snapshot atomically.
func (s *Store) Save(snap *engine.Snapshot) error {
	if snap == nil {
		return nil
	}

	encoded, err := json.MarshalIndent(snap, "", "  ")
	if err != nil {
		return fmt.Errorf("store: marshal snapshot: %w", err)
	}

	tmp, err := os.CreateTemp(s.dir, ".tmp-activity-*.json")
	if err != nil {
		return fmt.Errorf("store: create temp file: %w", err)
	}
	tmpName := tmp.Name()

	success := false
	defer func() {
		if !success {
			_ = os.Remove(tmpName)
		}
	}()

	if _, err := tmp.Write(encoded); err != nil {
		tmp.Close()
		return fmt.Errorf("store: write temp file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("store: close temp file: %w", err)
	}
	if err := os.Rename(tmpName, s.path()); err != nil {
		return fmt.Errorf("store: rename snapshot: %w", err)
	}

	success = true
	return nil
}

// ModTime returns the modification time of the persisted snapshot, used by
// the health check to detect a stalled daemon. Returns the zero time when
// no snapshot exists.
func (s *Store) ModTime() (time.Time, error) {
	info, err := os.Stat(s.path())
	if err != nil {
		if os.IsNotExist(err) {
			return time.Time{}, nil
		}
		return time.Time{}, fmt.Errorf("store: stat snapshot: %w", err)
	}
	return info.ModTime(), nil
}

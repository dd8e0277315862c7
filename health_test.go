package main

import (
	"os"
	"path/filepath"
	"strconv"
	"testing"
)

func TestCheckHealthNoDaemon(t *testing.T) {
	cfg := testConfig(t)
	if code := checkHealth(cfg, false); code != 1 {
		t.Errorf("checkHealth with no daemon = %d, want 1", code)
	}
}

func TestCheckHealthHealthy(t *testing.T) {
	cfg := testConfig(t)

	// The test process itself stands in for a live daemon.
	pidPath := filepath.Join(cfg.Daemon.DataDir, "wrist-pulse.pid")
	writeFile(t, pidPath, strconv.Itoa(os.Getpid()))
	writeFile(t, filepath.Join(cfg.Daemon.DataDir, "activity.json"), "{}")

	if code := checkHealth(cfg, false); code != 0 {
		t.Errorf("checkHealth with live PID and fresh snapshot = %d, want 0", code)
	}
	if code := checkHealth(cfg, true); code != 0 {
		t.Errorf("checkHealth JSON mode = %d, want 0", code)
	}
}

func TestCheckHealthStaleSnapshot(t *testing.T) {
	cfg := testConfig(t)

	pidPath := filepath.Join(cfg.Daemon.DataDir, "wrist-pulse.pid")
	writeFile(t, pidPath, strconv.Itoa(os.Getpid()))

	snapPath := filepath.Join(cfg.Daemon.DataDir, "activity.json")
	writeFile(t, snapPath, "{}")
	old := staleTime(cfg)
	if err := os.Chtimes(snapPath, old, old); err != nil {
		t.Fatalf("Chtimes: %v", err)
	}

	if code := checkHealth(cfg, false); code != 1 {
		t.Errorf("checkHealth with stale snapshot = %d, want 1", code)
	}
}

func TestCheckHealthLivePIDMissingSnapshot(t *testing.T) {
	cfg := testConfig(t)

	pidPath := filepath.Join(cfg.Daemon.DataDir, "wrist-pulse.pid")
	writeFile(t, pidPath, strconv.Itoa(os.Getpid()))

	if code := checkHealth(cfg, false); code != 1 {
		t.Errorf("checkHealth with no snapshot = %d, want 1", code)
	}
}

package main

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"syscall"
	"time"

	"gitlab.com/tinyland/lab/wrist-pulse/config"
	"gitlab.com/tinyland/lab/wrist-pulse/internal/format"
)

// snapshotStaleThreshold is how old the persisted snapshot may be before
// the daemon is considered stalled. Snapshots are written at least every
// snapshot interval, so a couple of missed intervals means trouble.
func snapshotStaleThreshold(cfg *config.Config) time.Duration {
	return 2*cfg.SnapshotInterval() + time.Minute
}

// checkHealth inspects the PID file and the snapshot age and reports
// whether the daemon is alive and sampling. Returns exit code 0 for
// healthy, 1 otherwise.
func checkHealth(cfg *config.Config, jsonOutput bool) int {
	pid, pidAlive := readDaemonPID(cfg.Daemon.DataDir)

	snapAge := time.Duration(-1)
	snapPath := filepath.Join(cfg.Daemon.DataDir, "activity.json")
	if info, err := os.Stat(snapPath); err == nil {
		snapAge = time.Since(info.ModTime())
	}

	stale := snapAge < 0 || snapAge > snapshotStaleThreshold(cfg)
	healthy := pidAlive && !stale

	if jsonOutput {
		out := map[string]interface{}{
			"healthy":      healthy,
			"pid":          pid,
			"pid_alive":    pidAlive,
			"snapshot_age": snapAge.String(),
			"stale":        stale,
		}
		data, _ := json.MarshalIndent(out, "", "  ")
		fmt.Println(string(data))
	} else {
		switch {
		case !pidAlive:
			fmt.Fprintln(os.Stderr, "daemon not running (no live PID)")
		case stale:
			fmt.Fprintf(os.Stderr, "daemon stalled (snapshot %s old, threshold %s)\n",
				format.Duration(snapAge), format.Duration(snapshotStaleThreshold(cfg)))
		default:
			fmt.Printf("daemon healthy (PID %d, snapshot %s old)\n", pid, format.Duration(snapAge))
		}
	}

	if healthy {
		return 0
	}
	return 1
}

// readDaemonPID reads the daemon PID file and probes the process.
func readDaemonPID(dataDir string) (int, bool) {
	data, err := os.ReadFile(filepath.Join(dataDir, "wrist-pulse.pid"))
	if err != nil {
		return 0, false
	}
	pid, err := strconv.Atoi(strings.TrimSpace(string(data)))
	if err != nil {
		return 0, false
	}
	process, err := os.FindProcess(pid)
	if err != nil {
		return pid, false
	}
	if err := process.Signal(syscall.Signal(0)); err != nil {
		return pid, false
	}
	return pid, true
}

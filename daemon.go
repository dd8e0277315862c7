package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"syscall"
	"time"

	"gitlab.com/tinyland/lab/wrist-pulse/config"
	"gitlab.com/tinyland/lab/wrist-pulse/engine"
	"gitlab.com/tinyland/lab/wrist-pulse/sensor"
	"gitlab.com/tinyland/lab/wrist-pulse/store"
)

// daemon drives the activity engine: it polls the motion source once per
// calendar minute, fires the daily rollover at each midnight boundary, and
// persists snapshots so history survives restarts.
type daemon struct {
	config  *config.Config
	logger  *slog.Logger
	store   *store.Store
	source  sensor.Source
	log     *engine.Log
	metrics *metrics
	pidFile string

	// lastDay is the epoch day of the last processed tick, used to fire
	// the rollover exactly once per day change even when ticks are missed.
	lastDay int64
}

// newDaemon creates a daemon wired from the configuration and restores any
// persisted activity history.
func newDaemon(cfg *config.Config, logger *slog.Logger) (*daemon, error) {
	st, err := store.NewStore(cfg.Daemon.DataDir, logger)
	if err != nil {
		return nil, fmt.Errorf("daemon: create store: %w", err)
	}

	var src sensor.Source
	switch cfg.Sensor.Source {
	case "file":
		src = sensor.NewFileSource(cfg.Sensor.Path)
	default:
		src = sensor.NewSimSource(cfg.Sensor.SimSeed)
	}

	d := &daemon{
		config:  cfg,
		logger:  logger,
		store:   st,
		source:  src,
		log:     engine.NewLog(logger),
		pidFile: filepath.Join(cfg.Daemon.DataDir, "wrist-pulse.pid"),
		lastDay: epochDay(time.Now()),
	}

	if err := d.restore(); err != nil {
		return nil, err
	}

	return d, nil
}

// restore loads the persisted snapshot and catches up on rollovers for any
// full days that passed while the daemon was down. Each missed midnight
// commits whatever running total the snapshot carried (zero after the
// first) so the daily ring keeps one entry per calendar day.
func (d *daemon) restore() error {
	snap, err := d.store.Load()
	if err != nil {
		return fmt.Errorf("daemon: load snapshot: %w", err)
	}
	if snap == nil {
		d.logger.Info("no persisted history, starting fresh")
		return nil
	}

	if err := d.log.Restore(snap); err != nil {
		d.logger.Warn("persisted snapshot rejected, starting fresh", "error", err)
		d.log = engine.NewLog(d.logger)
		return nil
	}

	missed := epochDay(time.Now()) - epochDay(snap.TakenAt)
	for i := int64(0); i < missed && i < engine.NumDays+1; i++ {
		d.log.Rollover()
	}
	if missed > 0 {
		d.logger.Info("caught up on missed rollovers",
			"missed_days", missed,
			"snapshot_age", time.Since(snap.TakenAt).String(),
		)
	}

	d.logger.Info("restored activity history",
		"days_logged", d.log.DaysLogged(),
		"minutes_today", d.log.MinutesToday(),
	)
	return nil
}

// epochDay returns the number of whole days since the Unix epoch in local
// time, the daemon's notion of a calendar day identity.
func epochDay(t time.Time) int64 {
	year, month, day := t.Date()
	midnight := time.Date(year, month, day, 0, 0, 0, 0, t.Location())
	return midnight.Unix() / 86400
}

// writePIDFile writes the current process PID to the PID file.
func (d *daemon) writePIDFile() error {
	dir := filepath.Dir(d.pidFile)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create PID file directory: %w", err)
	}
	pid := os.Getpid()
	if err := os.WriteFile(d.pidFile, []byte(strconv.Itoa(pid)), 0o644); err != nil {
		return fmt.Errorf("write PID file: %w", err)
	}
	d.logger.Info("wrote PID file", "path", d.pidFile, "pid", pid)
	return nil
}

// removePIDFile removes the PID file on shutdown.
func (d *daemon) removePIDFile() {
	if err := os.Remove(d.pidFile); err != nil && !os.IsNotExist(err) {
		d.logger.Error("failed to remove PID file", "path", d.pidFile, "error", err)
		return
	}
	d.logger.Info("removed PID file", "path", d.pidFile)
}

// isRunning checks if another daemon instance is already running by reading
// the PID file and probing the process. Stale or corrupt PID files are
// cleaned up.
func (d *daemon) isRunning() (bool, int) {
	data, err := os.ReadFile(d.pidFile)
	if err != nil {
		return false, 0
	}

	pid, err := strconv.Atoi(strings.TrimSpace(string(data)))
	if err != nil {
		d.logger.Warn("corrupt PID file, removing", "path", d.pidFile, "content", string(data))
		os.Remove(d.pidFile)
		return false, 0
	}

	process, err := os.FindProcess(pid)
	if err != nil {
		os.Remove(d.pidFile)
		return false, 0
	}

	if err := process.Signal(syscall.Signal(0)); err != nil {
		d.logger.Warn("stale PID file, removing", "path", d.pidFile, "pid", pid)
		os.Remove(d.pidFile)
		return false, 0
	}

	return true, pid
}

// run starts the daemon loop. It aligns to the next wall-clock minute and
// then ticks once per minute until the context is cancelled, writing a
// final snapshot on the way out.
func (d *daemon) run(ctx context.Context) error {
	if running, pid := d.isRunning(); running {
		return fmt.Errorf("daemon already running (PID %d)", pid)
	}
	if err := d.writePIDFile(); err != nil {
		return fmt.Errorf("write PID file: %w", err)
	}
	defer d.removePIDFile()

	if addr := d.config.Daemon.MetricsAddr; addr != "" {
		d.metrics = newMetrics()
		d.metrics.syncFrom(d.log)
		go d.metrics.serve(ctx, addr, d.logger)
	}

	d.logger.Info("daemon started",
		"source", d.source.Name(),
		"data_dir", d.config.Daemon.DataDir,
	)

	snapshotInterval := d.config.SnapshotInterval()
	lastSnapshot := time.Now()

	for {
		// Sleep to the next minute boundary rather than using a fixed
		// ticker, so samples land on calendar minutes.
		now := time.Now()
		next := now.Truncate(time.Minute).Add(time.Minute)

		select {
		case <-ctx.Done():
			d.logger.Info("daemon shutting down gracefully")
			if err := d.store.Save(d.log.Snapshot()); err != nil {
				d.logger.Error("final snapshot failed", "error", err)
			}
			return ctx.Err()
		case <-time.After(time.Until(next)):
		}

		d.tick(ctx, time.Now())

		if time.Since(lastSnapshot) >= snapshotInterval {
			if err := d.store.Save(d.log.Snapshot()); err != nil {
				d.logger.Error("periodic snapshot failed", "error", err)
			}
			lastSnapshot = time.Now()
		}
	}
}

// tick processes one minute: the midnight rollover first, so the new day
// starts at zero before its first sample is credited, then the motion
// sample for the minute that just ended.
func (d *daemon) tick(ctx context.Context, now time.Time) {
	if day := epochDay(now); day != d.lastDay {
		d.rollover(day)
	}

	absent, err := d.source.MotionAbsent(ctx, now)
	if err != nil {
		d.logger.Warn("motion source error, minute reads as absent",
			"source", d.source.Name(),
			"error", err,
		)
		absent = true
	}

	d.log.Sample(absent, engine.TimeOfDayFrom(now))

	if d.metrics != nil {
		d.metrics.observeSample(absent)
		d.metrics.syncFrom(d.log)
	}
}

// rollover commits the finished day and persists immediately: the commit
// is the one state change that cannot be reconstructed from a replay.
func (d *daemon) rollover(day int64) {
	committed := d.log.MinutesToday()
	d.log.Rollover()
	d.lastDay = day

	if err := d.store.Save(d.log.Snapshot()); err != nil {
		d.logger.Error("rollover snapshot failed", "error", err)
	}
	if d.metrics != nil {
		d.metrics.observeRollover()
	}

	d.logger.Info("daily rollover",
		"committed_minutes", committed,
		"days_logged", d.log.DaysLogged(),
	)
}

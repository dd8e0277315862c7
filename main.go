// wrist-pulse is the host-side companion for a wearable activity logger.
//
// It samples a motion source once per minute, maintains a debounced
// per-hour and per-day activity log with a 12-day history ring, and
// surfaces the data through a terminal report, an interactive TUI, or
// Prometheus metrics exposed by the background daemon.
//
// Usage:
//
//	wrist-pulse [flags]
//
// Flags:
//
//	-daemon            Run background sampling daemon
//	-tui               Launch interactive Bubbletea TUI
//	-report            Print activity histogram report to stdout
//	-timeframe string  Report/TUI timeframe (hourly|daily)
//	-config string     Path to configuration file (default: ~/.config/wrist-pulse/config.yaml)
//	-health            Check daemon health status
//	-json              Output health check as JSON (with -health)
//	-no-color          Disable colored report output
//	-verbose           Enable verbose logging
//	-version           Print version and exit
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	tea "github.com/charmbracelet/bubbletea"

	"gitlab.com/tinyland/lab/wrist-pulse/config"
	"gitlab.com/tinyland/lab/wrist-pulse/display/tui"
	"gitlab.com/tinyland/lab/wrist-pulse/engine"
	"gitlab.com/tinyland/lab/wrist-pulse/store"
)

func main() {
	var (
		configPath  = flag.String("config", "", "Path to configuration file (default: ~/.config/wrist-pulse/config.yaml)")
		runDaemon   = flag.Bool("daemon", false, "Run background sampling daemon")
		runTUI      = flag.Bool("tui", false, "Launch interactive Bubbletea TUI")
		runReport   = flag.Bool("report", false, "Print activity histogram report to stdout")
		timeframe   = flag.String("timeframe", "", "Report/TUI timeframe (hourly|daily)")
		runHealth   = flag.Bool("health", false, "Check daemon health status")
		healthJSON  = flag.Bool("json", false, "Output health check as JSON (with -health)")
		noColor     = flag.Bool("no-color", false, "Disable colored report output")
		verbose     = flag.Bool("verbose", false, "Enable verbose logging")
		showVersion = flag.Bool("version", false, "Print version and exit")
	)
	flag.Parse()

	if *showVersion {
		fmt.Printf("wrist-pulse %s (%s) built %s\n", version, commit, date)
		os.Exit(0)
	}

	cfgPath := *configPath
	if cfgPath == "" {
		home, _ := os.UserHomeDir()
		cfgPath = filepath.Join(home, ".config", "wrist-pulse", "config.yaml")
	}
	cfg, err := config.LoadConfig(cfgPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		os.Exit(1)
	}
	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "invalid config: %v\n", err)
		os.Exit(1)
	}

	if *runHealth {
		os.Exit(checkHealth(cfg, *healthJSON))
	}

	tf := engine.ParseTimeframe(cfg.Display.Timeframe)
	if *timeframe != "" {
		tf = engine.ParseTimeframe(*timeframe)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-sigChan
		cancel()
	}()

	if *runDaemon {
		logger := newLogger(cfg.Daemon.LogFile, *verbose)
		d, err := newDaemon(cfg, logger)
		if err != nil {
			fmt.Fprintf(os.Stderr, "daemon init failed: %v\n", err)
			os.Exit(1)
		}
		if err := d.run(ctx); err != nil && !errors.Is(err, context.Canceled) {
			fmt.Fprintf(os.Stderr, "daemon exited: %v\n", err)
			os.Exit(1)
		}
		os.Exit(0)
	}

	if *runReport {
		logger := newLogger("", *verbose)
		log, err := loadLog(cfg, logger)
		if err != nil {
			fmt.Fprintf(os.Stderr, "failed to load activity log: %v\n", err)
			os.Exit(1)
		}
		colored := cfg.Display.Color && !*noColor
		writeReport(os.Stdout, log, engine.SystemClock{}, tf, colored)
		os.Exit(0)
	}

	if *runTUI {
		defer func() {
			if r := recover(); r != nil {
				// Restore terminal from alt-screen before printing the error.
				fmt.Print("\x1b[?1049l\x1b[?25h")
				fmt.Fprintf(os.Stderr, "wrist-pulse: TUI panic: %v\n", r)
				os.Exit(1)
			}
		}()

		logger := newLogger(cfg.Daemon.LogFile, *verbose)
		st, err := store.NewStore(cfg.Daemon.DataDir, logger)
		if err != nil {
			fmt.Fprintf(os.Stderr, "store init failed: %v\n", err)
			os.Exit(1)
		}
		m := tui.New(st, engine.SystemClock{}, tf, cfg.RefreshInterval(), logger)
		p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithContext(ctx))
		if _, err := p.Run(); err != nil {
			fmt.Fprintf(os.Stderr, "TUI failed: %v\n", err)
			os.Exit(1)
		}
		os.Exit(0)
	}

	flag.Usage()
	os.Exit(2)
}

// newLogger builds the process logger. With an empty path it logs to
// stderr, otherwise it appends to the given file, falling back to stderr
// if the file cannot be opened.
func newLogger(path string, verbose bool) *slog.Logger {
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}

	var w io.Writer = os.Stderr
	if path != "" {
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err == nil {
			if f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644); err == nil {
				w = f
			}
		}
	}

	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}

// loadLog restores the persisted activity log for read-only display modes.
func loadLog(cfg *config.Config, logger *slog.Logger) (*engine.Log, error) {
	st, err := store.NewStore(cfg.Daemon.DataDir, logger)
	if err != nil {
		return nil, err
	}
	log := engine.NewLog(logger)
	snap, err := st.Load()
	if err != nil {
		return nil, err
	}
	if snap != nil {
		if err := log.Restore(snap); err != nil {
			return nil, fmt.Errorf("restore snapshot: %w", err)
		}
	}
	return log, nil
}

// Package config provides configuration parsing for wrist-pulse.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"
)

// Config represents the wrist-pulse daemon configuration.
type Config struct {
	// Daemon holds daemon-level settings.
	Daemon DaemonConfig `yaml:"daemon"`

	// Sensor holds motion source settings.
	Sensor SensorConfig `yaml:"sensor"`

	// Display holds TUI and report rendering settings.
	Display DisplayConfig `yaml:"display"`
}

// DaemonConfig holds daemon-level settings.
type DaemonConfig struct {
	// DataDir is the directory for persisted activity snapshots.
	DataDir string `yaml:"data_dir"`
	// LogFile is the path for daemon log output. Empty logs to stderr.
	LogFile string `yaml:"log_file"`
	// MetricsAddr is the listen address for the Prometheus metrics
	// endpoint (e.g. "127.0.0.1:9180"). Empty disables metrics.
	MetricsAddr string `yaml:"metrics_addr"`
	// SnapshotInterval is a duration string (e.g. "5m") between periodic
	// snapshot writes. Snapshots are also written at every rollover.
	SnapshotInterval string `yaml:"snapshot_interval"`
}

// SensorConfig holds motion source settings.
type SensorConfig struct {
	// Source selects the motion source: "sim" or "file".
	Source string `yaml:"source"`
	// Path is the sample file written by a device bridge (file source).
	Path string `yaml:"path"`
	// SimSeed seeds the simulated source so demo runs are reproducible.
	SimSeed int64 `yaml:"sim_seed"`
}

// DisplayConfig holds TUI and report rendering settings.
type DisplayConfig struct {
	// Timeframe is the default statistics window: "hourly" or "daily".
	Timeframe string `yaml:"timeframe"`
	// RefreshInterval is a duration string between TUI snapshot reloads.
	RefreshInterval string `yaml:"refresh_interval"`
	// Color enables ANSI color output in the text report.
	Color bool `yaml:"color"`
}

// DefaultConfig returns a Config populated with sensible defaults.
func DefaultConfig() *Config {
	home, _ := os.UserHomeDir()

	return &Config{
		Daemon: DaemonConfig{
			DataDir:          filepath.Join(home, ".local", "share", "wrist-pulse"),
			LogFile:          filepath.Join(home, ".local", "log", "wrist-pulse.log"),
			MetricsAddr:      "",
			SnapshotInterval: "5m",
		},
		Sensor: SensorConfig{
			Source:  "sim",
			Path:    "/run/wrist-pulse/motion",
			SimSeed: 1,
		},
		Display: DisplayConfig{
			Timeframe:       "hourly",
			RefreshInterval: "30s",
			Color:           true,
		},
	}
}

// LoadConfig loads configuration from a YAML file, merging with defaults.
func LoadConfig(path string) (*Config, error) {
	config := DefaultConfig()

	if path == "" {
		return config, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return config, nil
		}
		return nil, err
	}

	if err := yaml.Unmarshal(data, config); err != nil {
		return nil, err
	}

	return config, nil
}

// Validate checks the configuration for required fields and logical consistency.
func (c *Config) Validate() error {
	if c.Daemon.DataDir == "" {
		return fmt.Errorf("daemon.data_dir is required")
	}
	if _, err := time.ParseDuration(c.Daemon.SnapshotInterval); err != nil {
		return fmt.Errorf("daemon.snapshot_interval is not a valid duration: %q", c.Daemon.SnapshotInterval)
	}

	if c.Sensor.Source != "sim" && c.Sensor.Source != "file" {
		return fmt.Errorf("sensor.source must be 'sim' or 'file', got %q", c.Sensor.Source)
	}
	if c.Sensor.Source == "file" && c.Sensor.Path == "" {
		return fmt.Errorf("sensor.path is required for the file source")
	}

	if c.Display.Timeframe != "hourly" && c.Display.Timeframe != "daily" {
		return fmt.Errorf("display.timeframe must be 'hourly' or 'daily', got %q", c.Display.Timeframe)
	}
	if _, err := time.ParseDuration(c.Display.RefreshInterval); err != nil {
		return fmt.Errorf("display.refresh_interval is not a valid duration: %q", c.Display.RefreshInterval)
	}

	return nil
}

// SnapshotInterval returns the parsed snapshot interval.
// Validate must have been called first.
func (c *Config) SnapshotInterval() time.Duration {
	d, _ := time.ParseDuration(c.Daemon.SnapshotInterval)
	return d
}

// RefreshInterval returns the parsed TUI refresh interval.
// Validate must have been called first.
func (c *Config) RefreshInterval() time.Duration {
	d, _ := time.ParseDuration(c.Display.RefreshInterval)
	return d
}

// SaveConfig saves configuration to a YAML file.
func SaveConfig(config *Config, path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}

	data, err := yaml.Marshal(config)
	if err != nil {
		return err
	}

	return os.WriteFile(path, data, 0644)
}

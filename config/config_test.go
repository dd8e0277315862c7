package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.Sensor.Source != "sim" {
		t.Errorf("Sensor.Source = %q, want sim", cfg.Sensor.Source)
	}
	if cfg.Display.Timeframe != "hourly" {
		t.Errorf("Display.Timeframe = %q, want hourly", cfg.Display.Timeframe)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("default config should validate: %v", err)
	}
}

func TestLoadConfig_MissingFileUsesDefaults(t *testing.T) {
	cfg, err := LoadConfig(filepath.Join(t.TempDir(), "nope.yaml"))
	if err != nil {
		t.Fatalf("LoadConfig failed: %v", err)
	}
	if cfg.Daemon.SnapshotInterval != "5m" {
		t.Errorf("SnapshotInterval = %q, want default 5m", cfg.Daemon.SnapshotInterval)
	}
}

func TestLoadConfig_MergesFileOverDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	content := `
daemon:
  metrics_addr: "127.0.0.1:9180"
sensor:
  source: file
  path: /tmp/motion
display:
  timeframe: daily
`
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig failed: %v", err)
	}

	if cfg.Daemon.MetricsAddr != "127.0.0.1:9180" {
		t.Errorf("MetricsAddr = %q", cfg.Daemon.MetricsAddr)
	}
	if cfg.Sensor.Source != "file" || cfg.Sensor.Path != "/tmp/motion" {
		t.Errorf("Sensor = %+v", cfg.Sensor)
	}
	if cfg.Display.Timeframe != "daily" {
		t.Errorf("Timeframe = %q, want daily", cfg.Display.Timeframe)
	}
	// Untouched fields keep their defaults.
	if cfg.Daemon.SnapshotInterval != "5m" {
		t.Errorf("SnapshotInterval = %q, want default 5m", cfg.Daemon.SnapshotInterval)
	}
}

func TestLoadConfig_InvalidYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte("daemon: [broken"), 0644); err != nil {
		t.Fatal(err)
	}

	if _, err := LoadConfig(path); err == nil {
		t.Error("expected error for invalid YAML")
	}
}

func TestValidate_Errors(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantSub string
	}{
		{"empty data dir", func(c *Config) { c.Daemon.DataDir = "" }, "data_dir"},
		{"bad snapshot interval", func(c *Config) { c.Daemon.SnapshotInterval = "soon" }, "snapshot_interval"},
		{"unknown source", func(c *Config) { c.Sensor.Source = "bluetooth" }, "sensor.source"},
		{"file source without path", func(c *Config) { c.Sensor.Source = "file"; c.Sensor.Path = "" }, "sensor.path"},
		{"unknown timeframe", func(c *Config) { c.Display.Timeframe = "weekly" }, "timeframe"},
		{"bad refresh interval", func(c *Config) { c.Display.RefreshInterval = "often" }, "refresh_interval"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(cfg)
			err := cfg.Validate()
			if err == nil {
				t.Fatal("expected validation error")
			}
			if !strings.Contains(err.Error(), tt.wantSub) {
				t.Errorf("error %q does not mention %q", err, tt.wantSub)
			}
		})
	}
}

func TestSaveConfig_Roundtrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sub", "config.yaml")
	cfg := DefaultConfig()
	cfg.Sensor.SimSeed = 42

	if err := SaveConfig(cfg, path); err != nil {
		t.Fatalf("SaveConfig failed: %v", err)
	}

	loaded, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig failed: %v", err)
	}
	if loaded.Sensor.SimSeed != 42 {
		t.Errorf("SimSeed = %d, want 42", loaded.Sensor.SimSeed)
	}
}

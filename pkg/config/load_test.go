package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestLoadBytes_FullConfig(t *testing.T) {
	data := []byte(`
server:
  listen_address: "0.0.0.0:9090"
  read_timeout: 5s
  shutdown_timeout: 3s
  disable_metrics: true
  watch_config: true

logging:
  level: debug
  format: text

parking:
  lane_size: 5
  pedestrian_exits: [8, 11]
  disabled_bays: [5]
`)

	cfg, err := LoadBytes(data)
	if err != nil {
		t.Fatalf("LoadBytes failed: %v", err)
	}

	if cfg.Server.ListenAddress != "0.0.0.0:9090" {
		t.Errorf("Expected listen address 0.0.0.0:9090, got %q", cfg.Server.ListenAddress)
	}
	if cfg.Server.ReadTimeout != 5*time.Second {
		t.Errorf("Expected read timeout 5s, got %v", cfg.Server.ReadTimeout)
	}
	if !cfg.Server.DisableMetrics {
		t.Error("Expected metrics disabled")
	}
	if !cfg.Server.WatchConfig {
		t.Error("Expected config watching enabled")
	}
	if cfg.Logging.Level != "debug" || cfg.Logging.Format != "text" {
		t.Errorf("Unexpected logging config: %+v", cfg.Logging)
	}
	if cfg.Parking.LaneSize != 5 {
		t.Errorf("Expected lane size 5, got %d", cfg.Parking.LaneSize)
	}
	if len(cfg.Parking.PedestrianExits) != 2 || cfg.Parking.PedestrianExits[0] != 8 {
		t.Errorf("Unexpected exits: %v", cfg.Parking.PedestrianExits)
	}

	// Unset fields pick up defaults
	if cfg.Server.WriteTimeout != DefaultWriteTimeout {
		t.Errorf("Expected default write timeout, got %v", cfg.Server.WriteTimeout)
	}
	if cfg.Server.IdleTimeout != DefaultIdleTimeout {
		t.Errorf("Expected default idle timeout, got %v", cfg.Server.IdleTimeout)
	}
}

func TestLoadBytes_EmptyUsesDefaults(t *testing.T) {
	cfg, err := LoadBytes(nil)
	if err != nil {
		t.Fatalf("LoadBytes failed: %v", err)
	}

	if cfg.Server.ListenAddress != DefaultListenAddress {
		t.Errorf("Expected default listen address, got %q", cfg.Server.ListenAddress)
	}
	if cfg.Logging.Level != DefaultLoggingLevel {
		t.Errorf("Expected default log level, got %q", cfg.Logging.Level)
	}
	if cfg.Parking.LaneSize != DefaultLaneSize {
		t.Errorf("Expected default lane size, got %d", cfg.Parking.LaneSize)
	}
}

func TestLoadBytes_MalformedYAML(t *testing.T) {
	if _, err := LoadBytes([]byte("parking: [not a mapping")); err == nil {
		t.Fatal("Expected a parse error")
	}
}

func TestLoad_File(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	data := []byte("parking:\n  lane_size: 2\n  pedestrian_exits: [0]\n")
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatalf("WriteFile failed: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.Parking.LaneSize != 2 {
		t.Errorf("Expected lane size 2, got %d", cfg.Parking.LaneSize)
	}
}

func TestLoad_MissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "absent.yaml")); err == nil {
		t.Fatal("Expected an error for a missing file")
	}
}

package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

const sampleYAML = `
port: "9000"
pollInterval: 30m
source:
  kind: file
  path: data/E0.csv
classifier:
  teamFilter: share
  shareFraction: 0.55
  ongoingWindow: 3h
snapshots:
  enabled: false
metrics:
  serviceName: fixtures-staging
`

func writeConfigFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("writing config file: %v", err)
	}
	return path
}

func TestLoadFromYAMLFile(t *testing.T) {
	t.Setenv(envConfigFile, writeConfigFile(t, sampleYAML))

	cfg, err := Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.Port != "9000" {
		t.Fatalf("expected port 9000, got %s", cfg.Port)
	}
	if cfg.PollInterval != 30*time.Minute {
		t.Fatalf("expected 30m, got %v", cfg.PollInterval)
	}
	if cfg.Source.Kind != "file" || cfg.Source.Path != "data/E0.csv" {
		t.Fatalf("unexpected source %+v", cfg.Source)
	}
	if cfg.Classifier.ShareFraction != 0.55 || cfg.Classifier.OngoingWindow != 3*time.Hour {
		t.Fatalf("unexpected classifier %+v", cfg.Classifier)
	}
	if cfg.Snapshots.Enabled {
		t.Fatal("expected snapshots disabled by file")
	}
	if cfg.Metrics.ServiceName != "fixtures-staging" {
		t.Fatalf("unexpected service name %s", cfg.Metrics.ServiceName)
	}
	// Untouched fields keep their defaults.
	if cfg.Classifier.BandMin != defaultTeamBandMin {
		t.Fatalf("expected default band min, got %d", cfg.Classifier.BandMin)
	}
}

func TestEnvWinsOverFile(t *testing.T) {
	t.Setenv(envConfigFile, writeConfigFile(t, sampleYAML))
	t.Setenv(envPort, "7777")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Port != "7777" {
		t.Fatalf("expected env port to win, got %s", cfg.Port)
	}
}

func TestLoadBadFileErrors(t *testing.T) {
	t.Setenv(envConfigFile, writeConfigFile(t, "port: [not, a, string"))
	if _, err := Load(); err == nil {
		t.Fatal("expected parse error")
	}

	t.Setenv(envConfigFile, "/does/not/exist.yaml")
	if _, err := Load(); err == nil {
		t.Fatal("expected read error")
	}
}

package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// fileConfig mirrors the YAML layout; every field is optional and only
// non-zero values override the defaults.
type fileConfig struct {
	Port         string `yaml:"port"`
	PollInterval string `yaml:"pollInterval"`

	Source struct {
		Kind     string `yaml:"kind"`
		BaseURL  string `yaml:"baseUrl"`
		Season   string `yaml:"season"`
		Division string `yaml:"division"`
		Path     string `yaml:"path"`
	} `yaml:"source"`

	Classifier struct {
		TeamFilter    string  `yaml:"teamFilter"`
		BandMin       int     `yaml:"bandMin"`
		BandMax       int     `yaml:"bandMax"`
		ShareFraction float64 `yaml:"shareFraction"`
		OngoingWindow string  `yaml:"ongoingWindow"`
	} `yaml:"classifier"`

	Snapshots struct {
		Enabled    *bool  `yaml:"enabled"`
		Folder     string `yaml:"folder"`
		AdminToken string `yaml:"adminToken"`
	} `yaml:"snapshots"`

	Metrics struct {
		Enabled      *bool  `yaml:"enabled"`
		Port         string `yaml:"port"`
		OtlpEndpoint string `yaml:"otlpEndpoint"`
		ServiceName  string `yaml:"serviceName"`
	} `yaml:"metrics"`
}

func applyFile(cfg *Config, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("config: reading %s: %w", path, err)
	}

	var fc fileConfig
	if err := yaml.Unmarshal(data, &fc); err != nil {
		return fmt.Errorf("config: parsing %s: %w", path, err)
	}

	setString(&cfg.Port, fc.Port)
	setDuration(&cfg.PollInterval, fc.PollInterval)

	setString(&cfg.Source.Kind, fc.Source.Kind)
	setString(&cfg.Source.BaseURL, fc.Source.BaseURL)
	setString(&cfg.Source.Season, fc.Source.Season)
	setString(&cfg.Source.Division, fc.Source.Division)
	setString(&cfg.Source.Path, fc.Source.Path)

	setString(&cfg.Classifier.TeamFilter, fc.Classifier.TeamFilter)
	if fc.Classifier.BandMin > 0 {
		cfg.Classifier.BandMin = fc.Classifier.BandMin
	}
	if fc.Classifier.BandMax > 0 {
		cfg.Classifier.BandMax = fc.Classifier.BandMax
	}
	if fc.Classifier.ShareFraction > 0 && fc.Classifier.ShareFraction <= 1 {
		cfg.Classifier.ShareFraction = fc.Classifier.ShareFraction
	}
	setDuration(&cfg.Classifier.OngoingWindow, fc.Classifier.OngoingWindow)

	if fc.Snapshots.Enabled != nil {
		cfg.Snapshots.Enabled = *fc.Snapshots.Enabled
	}
	setString(&cfg.Snapshots.Folder, fc.Snapshots.Folder)
	setString(&cfg.Snapshots.AdminToken, fc.Snapshots.AdminToken)

	if fc.Metrics.Enabled != nil {
		cfg.Metrics.Enabled = *fc.Metrics.Enabled
	}
	setString(&cfg.Metrics.Port, fc.Metrics.Port)
	setString(&cfg.Metrics.OtlpEndpoint, fc.Metrics.OtlpEndpoint)
	setString(&cfg.Metrics.ServiceName, fc.Metrics.ServiceName)

	return nil
}

func setString(dst *string, value string) {
	if value != "" {
		*dst = value
	}
}

func setDuration(dst *Duration, value string) {
	if value == "" {
		return
	}
	parsed, err := time.ParseDuration(value)
	if err != nil || parsed <= 0 {
		return
	}
	*dst = parsed
}

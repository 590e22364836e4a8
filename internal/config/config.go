package config

import "os"

// Config holds runtime configuration for the server.
type Config struct {
	Port         string
	PollInterval Duration
	Source       SourceConfig
	Classifier   ClassifierConfig
	Snapshots    SnapshotConfig
	Metrics      MetricsConfig
}

// Load reads configuration from an optional YAML file (CONFIG_FILE) and
// environment variables, with env taking precedence over the file and both
// over the built-in defaults.
func Load() (Config, error) {
	cfg := defaults()

	if path := os.Getenv(envConfigFile); path != "" {
		if err := applyFile(&cfg, path); err != nil {
			return Config{}, err
		}
	}

	applyEnv(&cfg)
	return cfg, nil
}

func defaults() Config {
	return Config{
		Port:         defaultPort,
		PollInterval: defaultPollInterval,
		Source:       defaultSourceConfig(),
		Classifier:   defaultClassifierConfig(),
		Snapshots:    defaultSnapshotConfig(),
		Metrics:      defaultMetricsConfig(),
	}
}

func applyEnv(cfg *Config) {
	cfg.Port = envOrDefault(envPort, cfg.Port)
	cfg.PollInterval = durationEnvOrDefault(envPollInterval, cfg.PollInterval)
	applySourceEnv(&cfg.Source)
	applyClassifierEnv(&cfg.Classifier)
	applySnapshotEnv(&cfg.Snapshots)
	applyMetricsEnv(&cfg.Metrics)
}

package config

// MetricsConfig controls telemetry export settings.
type MetricsConfig struct {
	Enabled      bool
	Port         string
	OtlpEndpoint string
	ServiceName  string
	OtlpInsecure bool
}

func defaultMetricsConfig() MetricsConfig {
	return MetricsConfig{
		Enabled:      true,
		Port:         defaultMetricsPort,
		ServiceName:  defaultServiceName,
		OtlpInsecure: true,
	}
}

func applyMetricsEnv(cfg *MetricsConfig) {
	cfg.Enabled = boolEnvOrDefault(envMetricsOn, cfg.Enabled)
	cfg.Port = envOrDefault(envMetricsPort, cfg.Port)
	cfg.OtlpEndpoint = envOrDefault(envOtelEndpoint, cfg.OtlpEndpoint)
	cfg.ServiceName = envOrDefault(envOtelService, cfg.ServiceName)
	cfg.OtlpInsecure = boolEnvOrDefault(envOtelInsecure, cfg.OtlpInsecure)
}

package config

// SourceConfig controls where raw match data comes from.
type SourceConfig struct {
	// Kind selects the ingestion source: footballdata, file, or fixture.
	Kind     string
	BaseURL  string
	Season   string
	Division string
	Path     string
}

func defaultSourceConfig() SourceConfig {
	return SourceConfig{
		Kind: defaultSource,
	}
}

func applySourceEnv(cfg *SourceConfig) {
	cfg.Kind = envOrDefault(envSource, cfg.Kind)
	cfg.BaseURL = envOrDefault(envSourceURL, cfg.BaseURL)
	cfg.Season = envOrDefault(envSourceSeason, cfg.Season)
	cfg.Division = envOrDefault(envSourceDiv, cfg.Division)
	cfg.Path = envOrDefault(envSourcePath, cfg.Path)
}

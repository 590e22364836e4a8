package config

// SnapshotConfig controls static JSON publication of gameweek payloads.
type SnapshotConfig struct {
	Enabled    bool
	Folder     string
	AdminToken string // guards the manual refresh endpoint; empty disables it
}

func defaultSnapshotConfig() SnapshotConfig {
	return SnapshotConfig{
		Enabled: defaultSnapshotsOn,
		Folder:  defaultSnapshotFolder,
	}
}

func applySnapshotEnv(cfg *SnapshotConfig) {
	cfg.Enabled = boolEnvOrDefault(envSnapshotsOn, cfg.Enabled)
	cfg.Folder = envOrDefault(envSnapshotFolder, cfg.Folder)
	cfg.AdminToken = envOrDefault(envAdminToken, cfg.AdminToken)
}

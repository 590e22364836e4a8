package config

// ClassifierConfig tunes league detection and status derivation.
type ClassifierConfig struct {
	// TeamFilter selects the acceptance policy: band (absolute appearance
	// count range) or share (fraction of total matches).
	TeamFilter    string
	BandMin       int
	BandMax       int
	ShareFraction float64
	OngoingWindow Duration
}

func defaultClassifierConfig() ClassifierConfig {
	return ClassifierConfig{
		TeamFilter:    defaultTeamFilter,
		BandMin:       defaultTeamBandMin,
		BandMax:       defaultTeamBandMax,
		ShareFraction: defaultTeamShare,
		OngoingWindow: defaultOngoingWindow,
	}
}

func applyClassifierEnv(cfg *ClassifierConfig) {
	cfg.TeamFilter = envOrDefault(envTeamFilter, cfg.TeamFilter)
	cfg.BandMin = intEnvOrDefault(envTeamBandMin, cfg.BandMin)
	cfg.BandMax = intEnvOrDefault(envTeamBandMax, cfg.BandMax)
	cfg.ShareFraction = floatEnvOrDefault(envTeamShare, cfg.ShareFraction)
	cfg.OngoingWindow = durationEnvOrDefault(envOngoingWindow, cfg.OngoingWindow)
}

package config

import "time"

const (
	envConfigFile   = "CONFIG_FILE"
	envPort         = "PORT"
	envPollInterval = "POLL_INTERVAL"
	envSource       = "SOURCE"
	envSourceURL    = "SOURCE_BASE_URL"
	envSourceSeason = "SOURCE_SEASON"
	envSourceDiv    = "SOURCE_DIVISION"
	envSourcePath   = "SOURCE_PATH"

	envTeamFilter    = "TEAM_FILTER"
	envTeamBandMin   = "TEAM_BAND_MIN"
	envTeamBandMax   = "TEAM_BAND_MAX"
	envTeamShare     = "TEAM_SHARE"
	envOngoingWindow = "ONGOING_WINDOW"

	envSnapshotsOn     = "SNAPSHOTS_ENABLED"
	envSnapshotFolder  = "SNAPSHOT_FOLDER"
	envAdminToken      = "ADMIN_TOKEN"
	envMetricsPort     = "METRICS_PORT"
	envMetricsOn       = "METRICS_ENABLED"
	envOtelEndpoint    = "OTEL_EXPORTER_OTLP_ENDPOINT"
	envOtelService     = "OTEL_SERVICE_NAME"
	envOtelInsecure    = "OTEL_EXPORTER_OTLP_INSECURE"
)

const (
	defaultPort = "4000"
	// Season files change at most a few times a day; poll sparingly.
	defaultPollInterval = 15 * Duration(time.Minute)
	defaultSource       = "footballdata"

	defaultTeamFilter  = "band"
	defaultTeamBandMin = 30
	defaultTeamBandMax = 40
	defaultTeamShare   = 0.6
	// How long after kickoff a scoreless match still counts as in play.
	defaultOngoingWindow = 2 * Duration(time.Hour)

	defaultSnapshotsOn    = true
	defaultSnapshotFolder = "public/gameweeks"
	defaultMetricsPort    = "9090"
	defaultServiceName    = "fixtures-service"
)

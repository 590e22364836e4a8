package server

import (
	"log/slog"

	"fixtures-service/internal/config"
	"fixtures-service/internal/ingest"
	"fixtures-service/internal/ingest/fixture"
	"fixtures-service/internal/ingest/footballdata"
	"fixtures-service/internal/metrics"
)

// sourceFactory assembles the ingestion source with the shared logging and
// metrics wrapper.
type sourceFactory struct {
	logger  *slog.Logger
	metrics *metrics.Recorder
}

func newSourceFactory(logger *slog.Logger, recorder *metrics.Recorder) sourceFactory {
	return sourceFactory{logger: logger, metrics: recorder}
}

func (f sourceFactory) build(cfg config.Config) ingest.Source {
	base, name := selectSource(cfg.Source)
	return ingest.NewLoggingSource(base, name, f.logger, f.metrics)
}

// selectSource maps the configured kind to a concrete source. Unknown kinds
// fall back to the remote CSV feed rather than failing startup.
func selectSource(cfg config.SourceConfig) (ingest.Source, string) {
	switch cfg.Kind {
	case "file":
		return ingest.NewFileSource(cfg.Path), "file"
	case "fixture":
		return fixture.New(), "fixture"
	default:
		return footballdata.NewClient(footballdata.Config{
			BaseURL:  cfg.BaseURL,
			Season:   cfg.Season,
			Division: cfg.Division,
		}), "footballdata"
	}
}

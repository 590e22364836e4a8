package ingest

import (
	"context"
	"log/slog"
	"time"

	"fixtures-service/internal/domain"
	"fixtures-service/internal/logging"
	"fixtures-service/internal/metrics"
)

// LoggingSource wraps a Source with structured logging and metrics.
type LoggingSource struct {
	inner   Source
	name    string
	logger  *slog.Logger
	metrics *metrics.Recorder
}

// NewLoggingSource decorates a source. A nil logger or recorder disables
// that concern without changing behavior.
func NewLoggingSource(inner Source, name string, logger *slog.Logger, recorder *metrics.Recorder) *LoggingSource {
	return &LoggingSource{
		inner:   inner,
		name:    name,
		logger:  logger,
		metrics: recorder,
	}
}

// FetchMatches delegates to the wrapped source, timing the call.
func (s *LoggingSource) FetchMatches(ctx context.Context) ([]domain.RawMatch, error) {
	start := time.Now()
	matches, err := s.inner.FetchMatches(ctx)
	duration := time.Since(start)

	if s.metrics != nil {
		s.metrics.RecordSourceAttempt(s.name, duration, err)
	}
	if err != nil {
		logging.Error(s.logger, "source fetch failed", err,
			slog.String(logging.FieldSource, s.name),
			slog.Int64(logging.FieldDurationMS, duration.Milliseconds()),
		)
		return nil, err
	}

	logging.Debug(s.logger, "source fetch complete",
		slog.String(logging.FieldSource, s.name),
		slog.Int(logging.FieldCount, len(matches)),
		slog.Int64(logging.FieldDurationMS, duration.Milliseconds()),
	)
	return matches, nil
}

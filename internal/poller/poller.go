// Package poller drives the fetch-classify-publish cycle on an interval.
package poller

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"fixtures-service/internal/app/fixtures"
	"fixtures-service/internal/classifier"
	"fixtures-service/internal/domain"
	"fixtures-service/internal/ingest"
	"fixtures-service/internal/logging"
	"fixtures-service/internal/metrics"
)

const defaultInterval = 15 * time.Minute

// SeasonWriter persists a classified season as static snapshot files.
type SeasonWriter interface {
	WriteSeason(season domain.Season, updated time.Time) error
}

// Poller fetches raw matches on an interval, classifies them, and publishes
// the result to the in-memory service and the snapshot writer. A failed
// cycle leaves the previously published season untouched; stale data beats
// fabricated data.
type Poller struct {
	source     ingest.Source
	classifier *classifier.Classifier
	service    *fixtures.Service
	writer     SeasonWriter
	logger     *slog.Logger
	metrics    *metrics.Recorder
	interval   time.Duration
	now        func() time.Time

	ticker   *time.Ticker
	done     chan struct{}
	stopOnce sync.Once
	startMu  sync.Mutex
	started  bool

	refreshMu sync.Mutex

	statusMu sync.RWMutex
	status   Status
}

// Status describes the recent health of the poller loop.
type Status struct {
	ConsecutiveFailures int
	LastError           string
	LastAttempt         time.Time
	LastSuccess         time.Time
}

// IsReady reports whether the poller has produced at least one season and is
// not failing repeatedly.
func (s Status) IsReady() bool {
	if s.LastSuccess.IsZero() {
		return false
	}
	return s.ConsecutiveFailures < 3
}

// New constructs a Poller. The snapshot writer is optional.
func New(source ingest.Source, cls *classifier.Classifier, service *fixtures.Service, writer SeasonWriter, logger *slog.Logger, recorder *metrics.Recorder, interval time.Duration) *Poller {
	if interval <= 0 {
		interval = defaultInterval
	}
	return &Poller{
		source:     source,
		classifier: cls,
		service:    service,
		writer:     writer,
		logger:     logger,
		metrics:    recorder,
		interval:   interval,
		now:        time.Now,
		done:       make(chan struct{}),
	}
}

// Start begins polling until the context is cancelled or Stop is called.
// The first cycle runs immediately so data is available soon after boot.
func (p *Poller) Start(ctx context.Context) {
	p.startMu.Lock()
	if p.started {
		p.startMu.Unlock()
		return
	}
	p.started = true
	p.startMu.Unlock()

	p.ticker = time.NewTicker(p.interval)

	go func() {
		logging.Info(p.logger, "poller started", logging.FieldDurationMS, p.interval.Milliseconds())
		_ = p.RefreshNow(ctx)

		for {
			select {
			case <-ctx.Done():
				p.stopTicker()
				logging.Info(p.logger, "poller stopped")
				return
			case <-p.done:
				p.stopTicker()
				logging.Info(p.logger, "poller stopped")
				return
			case <-p.ticker.C:
				_ = p.RefreshNow(ctx)
			}
		}
	}()
}

// Stop halts the polling loop.
func (p *Poller) Stop(ctx context.Context) error {
	_ = ctx
	p.stopOnce.Do(func() {
		close(p.done)
		p.stopTicker()
	})
	return nil
}

// RefreshNow runs one fetch-classify-publish cycle synchronously. It backs
// both the interval loop and the admin refresh endpoint; concurrent calls
// serialize.
func (p *Poller) RefreshNow(ctx context.Context) error {
	p.refreshMu.Lock()
	defer p.refreshMu.Unlock()

	start := p.now()
	p.recordAttempt(start)

	err := p.runCycle(ctx, start)
	p.metrics.RecordPollerCycle(time.Since(start), err)
	if err != nil {
		logging.Error(p.logger, "poller cycle failed", err,
			logging.FieldDurationMS, time.Since(start).Milliseconds())
		p.recordFailure(err, start)
		return err
	}

	p.recordSuccess(start)
	return nil
}

func (p *Poller) runCycle(ctx context.Context, start time.Time) error {
	raw, err := p.source.FetchMatches(ctx)
	if err != nil {
		return err
	}

	season, stats, err := p.classifier.Classify(raw)
	if err != nil {
		return err
	}
	p.metrics.RecordClassification(stats.Classified, stats.Invalid, stats.NonLeague)

	p.service.ReplaceSeason(season, start)
	if p.writer != nil {
		if writeErr := p.writer.WriteSeason(season, start); writeErr != nil {
			// Served data is already fresh; snapshot lag is tolerable.
			logging.Error(p.logger, "snapshot write failed", writeErr)
		}
	}

	logging.Info(p.logger, "season refreshed",
		logging.FieldCount, stats.Classified,
		logging.FieldSkipped, stats.Invalid+stats.NonLeague,
		logging.FieldGameweek, season.CurrentWeek,
		logging.FieldDurationMS, time.Since(start).Milliseconds(),
	)
	return nil
}

func (p *Poller) stopTicker() {
	if p.ticker != nil {
		p.ticker.Stop()
	}
}

func (p *Poller) recordAttempt(at time.Time) {
	p.statusMu.Lock()
	defer p.statusMu.Unlock()
	p.status.LastAttempt = at
}

func (p *Poller) recordSuccess(at time.Time) {
	p.statusMu.Lock()
	defer p.statusMu.Unlock()
	p.status.ConsecutiveFailures = 0
	p.status.LastError = ""
	p.status.LastSuccess = at
}

func (p *Poller) recordFailure(err error, at time.Time) {
	p.statusMu.Lock()
	defer p.statusMu.Unlock()
	p.status.ConsecutiveFailures++
	if err != nil {
		p.status.LastError = err.Error()
	}
	p.status.LastAttempt = at
}

// Status returns a snapshot of the poller's recent health.
func (p *Poller) Status() Status {
	p.statusMu.RLock()
	defer p.statusMu.RUnlock()
	return p.status
}

// Package server wires configuration, ingestion, classification, and the
// HTTP API into a runnable process.
package server

import (
	"context"
	"log/slog"
	"net/http"

	"fixtures-service/internal/app/fixtures"
	"fixtures-service/internal/classifier"
	"fixtures-service/internal/config"
	httpapi "fixtures-service/internal/http"
	"fixtures-service/internal/http/handlers"
	"fixtures-service/internal/ingest"
	"fixtures-service/internal/logging"
	"fixtures-service/internal/metrics"
	"fixtures-service/internal/poller"
	"fixtures-service/internal/store"
)

var metricsSetup = metrics.Setup

// Poller abstracts the refresh loop for test injection.
type Poller interface {
	Start(ctx context.Context)
	Stop(ctx context.Context) error
	Status() poller.Status
	RefreshNow(ctx context.Context) error
}

type Server struct {
	cfg           config.Config
	logger        *slog.Logger
	metrics       *metrics.Recorder
	store         *store.MemoryStore
	service       *fixtures.Service
	httpServer    httpServer
	metricsServer httpServer
	poller        Poller
	metricsStop   func(context.Context) error
}

// New constructs a server with default source and poller wiring.
func New(cfg config.Config, logger *slog.Logger) *Server {
	return newServerWithSource(cfg, logger, nil)
}

func newServerWithSource(cfg config.Config, logger *slog.Logger, source ingest.Source) *Server {
	recorder, metricsSrv, metricsShutdown := buildMetrics(cfg, logger)

	if source == nil {
		source = newSourceFactory(logger, recorder).build(cfg)
	}

	memoryStore := store.NewMemoryStore()
	service := fixtures.NewService(memoryStore)
	cls := classifier.New(classifierConfig(cfg.Classifier))
	snaps := buildSnapshots(cfg)

	var writer poller.SeasonWriter
	if snaps.writer != nil {
		writer = snaps.writer
	}
	plr := poller.New(source, cls, service, writer, logger, recorder, cfg.PollInterval)
	httpSrv := buildHTTPServer(cfg, service, snaps, logger, recorder, plr)

	return &Server{
		cfg:           cfg,
		logger:        logger,
		metrics:       recorder,
		store:         memoryStore,
		service:       service,
		httpServer:    httpSrv,
		metricsServer: metricsSrv,
		poller:        plr,
		metricsStop:   metricsShutdown,
	}
}

// newServerWithDeps is used for testing to inject custom components.
func newServerWithDeps(cfg config.Config, logger *slog.Logger, service *fixtures.Service, httpSrv httpServer, plr Poller) *Server {
	return &Server{
		cfg:        cfg,
		logger:     logger,
		service:    service,
		httpServer: httpSrv,
		poller:     plr,
	}
}

// classifierConfig maps runtime settings onto classifier options.
func classifierConfig(cfg config.ClassifierConfig) classifier.Config {
	var policy classifier.AcceptancePolicy
	switch cfg.TeamFilter {
	case "share":
		policy = classifier.MinShare{Fraction: cfg.ShareFraction}
	default:
		policy = classifier.CountBand{Min: cfg.BandMin, Max: cfg.BandMax}
	}
	return classifier.Config{
		Policy:        policy,
		OngoingWindow: cfg.OngoingWindow,
	}
}

func buildHTTPServer(cfg config.Config, service *fixtures.Service, snaps snapshotComponents, logger *slog.Logger, recorder *metrics.Recorder, plr Poller) httpServer {
	var ready func() bool
	if plr != nil {
		ready = func() bool { return plr.Status().IsReady() }
	}

	handler := handlers.NewHandler(service, snaps.store, ready, logger)

	var admin *handlers.AdminHandler
	if cfg.Snapshots.AdminToken != "" && plr != nil {
		admin = handlers.NewAdminHandler(cfg.Snapshots.AdminToken, plr.RefreshNow, logger)
	}

	router := httpapi.NewRouter(handler, admin, logger, recorder)

	srv := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      router,
		ReadTimeout:  readTimeout,
		WriteTimeout: writeTimeout,
		IdleTimeout:  idleTimeout,
	}
	return netHTTPServer{srv: srv}
}

// Run starts the poller and HTTP server, then waits for context cancellation
// to shut down gracefully.
func (s *Server) Run(ctx context.Context, stop context.CancelFunc) {
	s.startMetrics()
	s.startServer(stop)
	s.poller.Start(ctx)

	<-ctx.Done()
	logging.Info(s.logger, "shutdown signal received")

	s.gracefulShutdown()
}

func (s *Server) startServer(stop context.CancelFunc) {
	launchServer("http", s.httpServer, s.logger, func(err error) {
		if stop != nil {
			stop()
		}
	})
}

func (s *Server) startMetrics() {
	if s.metricsServer == nil {
		return
	}
	launchServer("metrics", s.metricsServer, s.logger, nil)
}

func (s *Server) gracefulShutdown() {
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if s.metricsStop != nil {
		if err := s.metricsStop(shutdownCtx); err != nil {
			logging.Warn(s.logger, "metrics shutdown failed", "error", err)
		}
	}

	if s.metricsServer != nil {
		if err := s.metricsServer.Shutdown(shutdownCtx); err != nil {
			logging.Warn(s.logger, "metrics server shutdown failed", "error", err)
		}
	}

	if err := s.poller.Stop(shutdownCtx); err != nil {
		logging.Error(s.logger, "failed to stop poller", err)
	}

	if err := s.httpServer.Shutdown(shutdownCtx); err != nil {
		logging.Error(s.logger, "graceful shutdown failed", err)
	}

	logging.Info(s.logger, "shutdown complete")
}

func buildMetrics(cfg config.Config, logger *slog.Logger) (*metrics.Recorder, httpServer, func(context.Context) error) {
	recCfg := metrics.TelemetryConfig{
		Enabled:      cfg.Metrics.Enabled,
		Port:         cfg.Metrics.Port,
		ServiceName:  cfg.Metrics.ServiceName,
		OtlpEndpoint: cfg.Metrics.OtlpEndpoint,
		OtlpInsecure: cfg.Metrics.OtlpInsecure,
	}

	rec, handler, shutdown, err := metricsSetup(context.Background(), recCfg)
	if err != nil {
		logging.Warn(logger, "metrics setup failed, continuing without telemetry", "error", err)
		return metrics.NewRecorder(), nil, nil
	}

	var metricsSrv httpServer
	if handler != nil && recCfg.Enabled {
		metricsSrv = netHTTPServer{
			srv: &http.Server{
				Addr:    ":" + recCfg.Port,
				Handler: handler,
			},
		}
	}
	return rec, metricsSrv, shutdown
}

func launchServer(name string, srv httpServer, logger *slog.Logger, onError func(error)) {
	go func() {
		logging.Info(logger, "starting "+name+" server", slog.String("addr", srv.Addr()))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logging.Warn(logger, name+" server failed", "error", err)
			if onError != nil {
				onError(err)
			}
		}
	}()
}

// Handler exposes the HTTP handler (useful for tests).
func (s *Server) Handler() http.Handler {
	return s.httpServer.Handler()
}

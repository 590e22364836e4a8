// Package http wires the public API routes onto a gorilla/mux router.
package http

import (
	"log/slog"
	"net/http"

	"github.com/gorilla/mux"

	"fixtures-service/internal/http/handlers"
	"fixtures-service/internal/http/middleware"
	"fixtures-service/internal/metrics"
)

// NewRouter builds the API router. The admin handler is mounted only when
// non-nil, so deployments without an admin token never expose the route.
func NewRouter(h *handlers.Handler, admin *handlers.AdminHandler, logger *slog.Logger, recorder *metrics.Recorder) http.Handler {
	r := mux.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Logging(logger))
	r.Use(middleware.Metrics(recorder))

	r.HandleFunc("/health", h.Health).Methods(http.MethodGet)
	r.HandleFunc("/ready", h.Ready).Methods(http.MethodGet)
	r.HandleFunc("/gameweeks", h.Gameweeks).Methods(http.MethodGet)
	r.HandleFunc("/gameweeks/current", h.CurrentGameweek).Methods(http.MethodGet)
	r.HandleFunc("/gameweeks/{week:[0-9]+}", h.Gameweek).Methods(http.MethodGet)
	r.HandleFunc("/teams", h.Teams).Methods(http.MethodGet)

	if admin != nil {
		r.HandleFunc("/admin/snapshots/refresh", admin.Refresh).Methods(http.MethodPost)
	}

	return r
}

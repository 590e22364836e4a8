package handlers

import (
	"log/slog"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"fixtures-service/internal/app/fixtures"
	"fixtures-service/internal/classifier"
	"fixtures-service/internal/logging"
	"fixtures-service/internal/snapshots"
)

// Handler serves gameweek payloads from the in-memory service, falling back
// to published snapshots when the service has not classified anything yet
// (e.g. right after a restart, before the first poll completes).
type Handler struct {
	service   *fixtures.Service
	snapshots snapshots.Store
	ready     func() bool
	logger    *slog.Logger
}

// NewHandler constructs a Handler. The snapshot store and readiness probe are
// optional.
func NewHandler(service *fixtures.Service, snaps snapshots.Store, ready func() bool, logger *slog.Logger) *Handler {
	return &Handler{
		service:   service,
		snapshots: snaps,
		ready:     ready,
		logger:    logger,
	}
}

// Health reports process liveness.
func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	h.writeJSON(w, r, http.StatusOK, map[string]string{"status": "ok"})
}

// Ready reports whether the poller has produced at least one usable season.
func (h *Handler) Ready(w http.ResponseWriter, r *http.Request) {
	if h.ready != nil && !h.ready() {
		h.writeJSON(w, r, http.StatusServiceUnavailable, map[string]string{"status": "starting"})
		return
	}
	h.writeJSON(w, r, http.StatusOK, map[string]string{"status": "ready"})
}

// CurrentGameweek returns the current gameweek payload.
func (h *Handler) CurrentGameweek(w http.ResponseWriter, r *http.Request) {
	if payload, ok := h.service.CurrentGameweek(); ok {
		h.writeJSON(w, r, http.StatusOK, payload)
		return
	}
	if h.snapshots != nil {
		if payload, err := h.snapshots.LoadCurrent(); err == nil {
			h.writeJSON(w, r, http.StatusOK, payload)
			return
		}
	}
	h.writeError(w, r, http.StatusServiceUnavailable, "no fixture data available yet")
}

// Gameweek returns the payload for the gameweek in the path. A valid week
// with no fixtures is a 200 with an empty list, not an error.
func (h *Handler) Gameweek(w http.ResponseWriter, r *http.Request) {
	week, err := strconv.Atoi(mux.Vars(r)["week"])
	if err != nil || week < 1 || week > classifier.MaxGameweek {
		h.writeError(w, r, http.StatusBadRequest, "gameweek must be between 1 and 38")
		return
	}

	if payload, ok := h.service.Gameweek(week); ok {
		h.writeJSON(w, r, http.StatusOK, payload)
		return
	}
	if h.snapshots != nil {
		if payload, err := h.snapshots.LoadGameweek(week); err == nil {
			h.writeJSON(w, r, http.StatusOK, payload)
			return
		}
	}
	logging.Debug(h.logger, "gameweek requested before first classification",
		logging.FieldGameweek, week)
	h.writeError(w, r, http.StatusServiceUnavailable, "no fixture data available yet")
}

// Gameweeks lists every populated gameweek with fixture counts.
func (h *Handler) Gameweeks(w http.ResponseWriter, r *http.Request) {
	summaries, ok := h.service.Summaries()
	if !ok {
		h.writeError(w, r, http.StatusServiceUnavailable, "no fixture data available yet")
		return
	}
	h.writeJSON(w, r, http.StatusOK, map[string]any{
		"gameweeks": summaries,
		"count":     len(summaries),
	})
}

// Teams returns the detected league team set.
func (h *Handler) Teams(w http.ResponseWriter, r *http.Request) {
	teams, ok := h.service.Teams()
	if !ok {
		h.writeError(w, r, http.StatusServiceUnavailable, "no fixture data available yet")
		return
	}
	h.writeJSON(w, r, http.StatusOK, map[string]any{
		"teams": teams,
		"count": len(teams),
	})
}

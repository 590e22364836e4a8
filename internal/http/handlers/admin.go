package handlers

import (
	"context"
	"crypto/subtle"
	"encoding/json"
	"log/slog"
	"net/http"
	"strings"

	"fixtures-service/internal/http/middleware"
	"fixtures-service/internal/logging"
)

// AdminHandler exposes the token-guarded manual refresh endpoint.
type AdminHandler struct {
	token   string
	refresh func(context.Context) error
	logger  *slog.Logger
}

// NewAdminHandler constructs an AdminHandler. An empty token means the
// endpoint should not be mounted at all; callers enforce that.
func NewAdminHandler(token string, refresh func(context.Context) error, logger *slog.Logger) *AdminHandler {
	return &AdminHandler{token: token, refresh: refresh, logger: logger}
}

// Refresh forces an immediate fetch-classify-publish cycle.
func (h *AdminHandler) Refresh(w http.ResponseWriter, r *http.Request) {
	if !h.authorized(r) {
		writeAdminJSON(w, http.StatusUnauthorized, map[string]string{"error": "unauthorized"})
		return
	}

	if err := h.refresh(r.Context()); err != nil {
		logging.Error(h.logger, "manual refresh failed", err,
			logging.FieldRequestID, middleware.RequestIDFromContext(r.Context()))
		writeAdminJSON(w, http.StatusBadGateway, map[string]string{"error": "refresh failed"})
		return
	}

	logging.Info(h.logger, "manual refresh completed",
		logging.FieldRequestID, middleware.RequestIDFromContext(r.Context()))
	writeAdminJSON(w, http.StatusOK, map[string]string{"status": "refreshed"})
}

func (h *AdminHandler) authorized(r *http.Request) bool {
	if h.token == "" {
		return false
	}
	presented := r.Header.Get("X-Admin-Token")
	if presented == "" {
		presented = strings.TrimPrefix(r.Header.Get("Authorization"), "Bearer ")
	}
	return subtle.ConstantTimeCompare([]byte(presented), []byte(h.token)) == 1
}

func writeAdminJSON(w http.ResponseWriter, status int, payload map[string]string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(payload)
}

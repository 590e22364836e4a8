package handlers

import (
	"encoding/json"
	"net/http"

	"fixtures-service/internal/http/middleware"
	"fixtures-service/internal/logging"
)

func (h *Handler) writeJSON(w http.ResponseWriter, r *http.Request, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		logger := logging.FromContext(r.Context(), h.logger)
		logging.Error(logger, "encoding response", err,
			logging.FieldPath, r.URL.Path,
			logging.FieldRequestID, middleware.RequestIDFromContext(r.Context()),
		)
	}
}

func (h *Handler) writeError(w http.ResponseWriter, r *http.Request, status int, msg string) {
	h.writeJSON(w, r, status, map[string]string{"error": msg})
}

package handlers

import (
	"encoding/json"
	"net/http"
	"time"
)

// Health check endpoint
func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	h.jsonResponse(w, http.StatusOK, map[string]interface{}{
		"status":    "ok",
		"timestamp": time.Now().UTC(),
	})
}

// Ready check endpoint. A missing model is reported but does not fail
// readiness; profiles fall back to the synthetic value.
func (h *Handler) Ready(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	storeOK := true
	if h.store != nil {
		if err := h.store.Ping(ctx); err != nil {
			h.logger.Warnw("Store not ready", "error", err)
			storeOK = false
		}
	}
	checks := map[string]bool{
		"store": storeOK,
		"model": h.prediction != nil,
	}

	status := http.StatusOK
	if !storeOK {
		status = http.StatusServiceUnavailable
	}
	h.jsonResponse(w, status, map[string]interface{}{
		"ready":  storeOK,
		"checks": checks,
	})
}

func (h *Handler) jsonResponse(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

func (h *Handler) errorResponse(w http.ResponseWriter, status int, message string) {
	h.jsonResponse(w, status, map[string]string{"error": message})
}

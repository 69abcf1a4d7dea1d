package handlers

import (
	"net/http"

	"github.com/swaggo/swag"

	_ "github.com/squadstats/wpi-api/docs"
)

// APIDoc serves the registered OpenAPI document
func (h *Handler) APIDoc(w http.ResponseWriter, r *http.Request) {
	doc, err := swag.ReadDoc()
	if err != nil {
		h.logger.Errorw("Failed to render API doc", "error", err)
		h.errorResponse(w, http.StatusInternalServerError, "API doc unavailable")
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.Write([]byte(doc))
}

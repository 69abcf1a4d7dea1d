package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/squadstats/wpi-api/internal/logic"
	"github.com/squadstats/wpi-api/internal/models"
)

// Predict estimates an auction value for one raw stat line
// @Summary Predict Auction Value
// @Description Uses the trained model when loaded, otherwise the synthetic formula
// @Tags Prediction
// @Accept json
// @Produce json
// @Param request body models.PredictRequest true "Raw player stats"
// @Success 200 {object} models.PredictionResult
// @Failure 400 {object} map[string]string "Bad Request"
// @Router /predict [post]
func (h *Handler) Predict(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, MaxBodySize)

	var req models.PredictRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.errorResponse(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if err := h.validator.Struct(&req); err != nil {
		h.errorResponse(w, http.StatusBadRequest, "Stats must be non-negative: "+err.Error())
		return
	}

	res, err := logic.Estimate(h.prediction, req.Values())
	if err != nil {
		h.logger.Warnw("Model prediction failed, using synthetic value", "error", err, "player", req.PlayerID)
	}

	h.jsonResponse(w, http.StatusOK, res)
}

// GetModel returns the loaded model's metadata
// @Summary Model Metadata
// @Tags Prediction
// @Produce json
// @Success 200 {object} models.ModelMeta
// @Failure 503 {object} map[string]string "No model loaded"
// @Router /model [get]
func (h *Handler) GetModel(w http.ResponseWriter, r *http.Request) {
	if h.prediction == nil {
		h.errorResponse(w, http.StatusServiceUnavailable, "No model loaded")
		return
	}
	h.jsonResponse(w, http.StatusOK, h.prediction.Meta())
}

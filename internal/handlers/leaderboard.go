package handlers

import (
	"net/http"
	"strconv"

	"github.com/squadstats/wpi-api/internal/models"
)

// GetLeaderboard returns players ranked by WPI
// @Summary WPI Leaderboard
// @Tags Leaderboards
// @Produce json
// @Param limit query int false "Limit" default(25)
// @Param page query int false "Page" default(1)
// @Success 200 {object} models.LeaderboardPage
// @Failure 500 {object} map[string]string "Internal Error"
// @Router /leaderboard [get]
func (h *Handler) GetLeaderboard(w http.ResponseWriter, r *http.Request) {
	limit := 25
	page := 1
	if l := r.URL.Query().Get("limit"); l != "" {
		if parsed, err := strconv.Atoi(l); err == nil && parsed > 0 && parsed <= 100 {
			limit = parsed
		}
	}
	if p := r.URL.Query().Get("page"); p != "" {
		if parsed, err := strconv.Atoi(p); err == nil && parsed > 0 {
			page = parsed
		}
	}

	entries, err := h.playerStats.GetLeaderboard(r.Context())
	if err != nil {
		h.logger.Errorw("Failed to build leaderboard", "error", err)
		h.errorResponse(w, http.StatusInternalServerError, "Failed to load leaderboard")
		return
	}

	// Compare page counts rather than offsets so a huge page cannot overflow
	players := []models.LeaderboardEntry{}
	if pages := (len(entries) + limit - 1) / limit; page <= pages {
		start := (page - 1) * limit
		end := start + limit
		if end > len(entries) {
			end = len(entries)
		}
		players = entries[start:end]
	}

	h.jsonResponse(w, http.StatusOK, models.LeaderboardPage{
		Players: players,
		Total:   len(entries),
		Page:    page,
		Limit:   limit,
	})
}

package handlers

import (
	"errors"
	"net/http"
	"net/url"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/squadstats/wpi-api/internal/logic"
)

// SearchPlayer redirects a name search to the player's profile
// @Summary Search Player
// @Tags Players
// @Param q query string true "Player name"
// @Success 302 "Redirect to the profile"
// @Failure 400 {object} map[string]string "Missing name"
// @Router /search [get]
func (h *Handler) SearchPlayer(w http.ResponseWriter, r *http.Request) {
	name := strings.TrimSpace(r.URL.Query().Get("q"))
	if name == "" {
		h.errorResponse(w, http.StatusBadRequest, "Enter a player name")
		return
	}
	http.Redirect(w, r, "/api/v1/players/"+url.PathEscape(name), http.StatusFound)
}

// GetPlayerProfile returns derived stats, charts, tips and auction value
// @Summary Player Profile
// @Tags Players
// @Produce json
// @Param name path string true "Player display name (case-insensitive)"
// @Success 200 {object} models.PlayerProfile
// @Failure 404 {object} map[string]string "Not Found"
// @Failure 500 {object} map[string]string "Internal Error"
// @Router /players/{name} [get]
func (h *Handler) GetPlayerProfile(w http.ResponseWriter, r *http.Request) {
	// chi matches on RawPath when the request has one, leaving the
	// parameter escaped; otherwise it is already decoded.
	name := chi.URLParam(r, "name")
	if r.URL.RawPath != "" {
		if unescaped, err := url.PathUnescape(name); err == nil {
			name = unescaped
		}
	}
	name = strings.TrimSpace(name)

	profile, err := h.playerStats.GetProfile(r.Context(), name)
	if errors.Is(err, logic.ErrPlayerNotFound) {
		h.errorResponse(w, http.StatusNotFound, "Player not found.")
		return
	}
	if err != nil {
		h.logger.Errorw("Failed to build player profile", "error", err, "player", name)
		h.errorResponse(w, http.StatusInternalServerError, "Failed to load player")
		return
	}

	h.jsonResponse(w, http.StatusOK, profile)
}

// ComparePlayers returns a head-to-head view of two players
// @Summary Compare Players
// @Tags Players
// @Produce json
// @Param p1 query string false "First player"
// @Param p2 query string false "Second player"
// @Success 200 {object} models.Comparison
// @Failure 404 {object} map[string]string "Not Found"
// @Router /compare [get]
func (h *Handler) ComparePlayers(w http.ResponseWriter, r *http.Request) {
	p1 := strings.TrimSpace(r.URL.Query().Get("p1"))
	p2 := strings.TrimSpace(r.URL.Query().Get("p2"))

	cmp, err := h.playerStats.Compare(r.Context(), p1, p2)
	if errors.Is(err, logic.ErrPlayerNotFound) {
		h.errorResponse(w, http.StatusNotFound, "One or both players not found. Check names.")
		return
	}
	if err != nil {
		h.logger.Errorw("Failed to compare players", "error", err, "p1", p1, "p2", p2)
		h.errorResponse(w, http.StatusInternalServerError, "Failed to compare players")
		return
	}

	h.jsonResponse(w, http.StatusOK, cmp)
}

package handlers

import (
	"log/slog"
	"net/http"
	"strconv"

	"plantbuilder-server/internal/leaderboard"
	"plantbuilder-server/internal/player"
	"plantbuilder-server/internal/shared/config"
	"plantbuilder-server/internal/shared/errors"
	"plantbuilder-server/internal/shared/response"
)

type LeaderboardHandler struct {
	service *leaderboard.Service
}

func NewLeaderboardHandler(service *leaderboard.Service) *LeaderboardHandler {
	return &LeaderboardHandler{service: service}
}

func (h *LeaderboardHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := slog.With("handler", "leaderboard")

	if r.Method != http.MethodGet {
		response.Error(w, r, logger, errors.MethodNotAllowed(r.Method))
		return
	}

	limit := config.GlobalConfig.Game.LeaderboardSize
	if raw := r.URL.Query().Get("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed <= 0 {
			response.Error(w, r, logger, errors.Validationf("invalid limit %q", raw))
			return
		}
		limit = parsed
	}

	standings, err := h.service.Top(ctx, limit)
	if err != nil {
		response.Error(w, r, logger, err)
		return
	}

	if standings == nil {
		standings = []player.Standing{}
	}

	response.Success(w, http.StatusOK, standings)
}

package handlers

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"plantbuilder-server/internal/player"
	"plantbuilder-server/internal/shared/errors"
	"plantbuilder-server/internal/shared/response"
)

type PlayersHandler struct {
	service *player.Service
}

func NewPlayersHandler(service *player.Service) *PlayersHandler {
	return &PlayersHandler{service: service}
}

type registerRequest struct {
	Phone       string `json:"phone"`
	DisplayName string `json:"display_name"`
}

func (h *PlayersHandler) HandleRegister(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := slog.With("handler", "register_player")

	if r.Method != http.MethodPost {
		response.Error(w, r, logger, errors.MethodNotAllowed(r.Method))
		return
	}

	r.Body = http.MaxBytesReader(w, r.Body, 1<<20) // 1 MB
	var req registerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, r, logger, errors.WrapValidation("invalid JSON in request body", err))
		return
	}

	created, err := h.service.Register(ctx, req.Phone, req.DisplayName)
	if err != nil {
		response.Error(w, r, logger, err)
		return
	}

	response.Success(w, http.StatusCreated, created)
}

func (h *PlayersHandler) HandleScore(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := slog.With("handler", "player_score")

	if r.Method != http.MethodGet {
		response.Error(w, r, logger, errors.MethodNotAllowed(r.Method))
		return
	}

	phone := r.PathValue("phone")
	if phone == "" {
		response.Error(w, r, logger, errors.Validation("phone number is required"))
		return
	}

	p, err := h.service.GetByPhone(ctx, phone)
	if err != nil {
		response.Error(w, r, logger, err)
		return
	}

	response.Success(w, http.StatusOK, p)
}

package player

import (
	"context"
	"log/slog"
	"net/http"
	"strconv"

	"express-hub/internal/http/api"
	"express-hub/internal/http/handlers"

	"github.com/go-chi/render"
	"github.com/google/uuid"
)

//go:generate go run github.com/vektra/mockery/v2@v2.53.5 --name=rosterService --structname=MockRosterService --output=../mocks
type rosterService interface {
	AddPlayer(ctx context.Context, teamID uuid.UUID, in api.CreatePlayerRequest) (*api.PlayerSchema, error)
	List(ctx context.Context, teamID uuid.UUID, activeOnly bool) (*api.RosterResponse, error)
	SetActive(ctx context.Context, playerID uuid.UUID, isActive bool) (*api.PlayerSchema, error)
}

type PlayerHandler struct {
	log     *slog.Logger
	service rosterService
}

func NewPlayerHandler(log *slog.Logger, s rosterService) *PlayerHandler {
	return &PlayerHandler{
		log:     log,
		service: s,
	}
}

func (h *PlayerHandler) Add(w http.ResponseWriter, r *http.Request) {
	log := handlers.RequestLogger(h.log, "handlers.player.Add", r)

	teamID, ok := handlers.UUIDParam(w, r, "teamID")
	if !ok {
		return
	}

	var input api.CreatePlayerRequest
	if !handlers.Bind(w, r, log, &input) {
		return
	}

	resp, err := h.service.AddPlayer(r.Context(), teamID, input)
	if err != nil {
		handlers.RenderError(w, r, log, err)
		return
	}

	log.Info("player added", slog.String("player_id", resp.ID))
	render.Status(r, http.StatusCreated)
	render.JSON(w, r, api.PlayerResponse{Player: *resp})
}

// List serves the roster. ?active=false includes inactive players.
func (h *PlayerHandler) List(w http.ResponseWriter, r *http.Request) {
	log := handlers.RequestLogger(h.log, "handlers.player.List", r)

	teamID, ok := handlers.UUIDParam(w, r, "teamID")
	if !ok {
		return
	}

	activeOnly := true
	if v := r.URL.Query().Get("active"); v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, api.Error(api.ErrBadRequest, "active must be a boolean"))
			return
		}
		activeOnly = b
	}

	resp, err := h.service.List(r.Context(), teamID, activeOnly)
	if err != nil {
		handlers.RenderError(w, r, log, err)
		return
	}

	render.JSON(w, r, resp)
}

func (h *PlayerHandler) SetActive(w http.ResponseWriter, r *http.Request) {
	log := handlers.RequestLogger(h.log, "handlers.player.SetActive", r)

	playerID, ok := handlers.UUIDParam(w, r, "playerID")
	if !ok {
		return
	}

	var input api.SetActiveRequest
	if !handlers.Bind(w, r, log, &input) {
		return
	}

	resp, err := h.service.SetActive(r.Context(), playerID, *input.IsActive)
	if err != nil {
		handlers.RenderError(w, r, log, err)
		return
	}

	log.Info("player activity changed", slog.String("player_id", resp.ID), slog.Bool("is_active", resp.IsActive))
	render.JSON(w, r, api.PlayerResponse{Player: *resp})
}

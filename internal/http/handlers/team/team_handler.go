package team

import (
	"context"
	"log/slog"
	"net/http"

	"express-hub/internal/http/api"
	"express-hub/internal/http/handlers"

	"github.com/go-chi/render"
	"github.com/google/uuid"
)

//go:generate go run github.com/vektra/mockery/v2@v2.53.5 --name=teamService --structname=MockTeamService --output=../mocks
type teamService interface {
	Create(ctx context.Context, in api.CreateTeamRequest) (*api.TeamSchema, error)
	Get(ctx context.Context, teamID uuid.UUID) (*api.TeamSchema, error)
	GetByCode(ctx context.Context, code string) (*api.TeamSchema, error)
	List(ctx context.Context) (*api.TeamListResponse, error)
	Delete(ctx context.Context, teamID uuid.UUID) error
}

type TeamHandler struct {
	log     *slog.Logger
	service teamService
}

func NewTeamHandler(log *slog.Logger, s teamService) *TeamHandler {
	return &TeamHandler{
		log:     log,
		service: s,
	}
}

func (h *TeamHandler) Create(w http.ResponseWriter, r *http.Request) {
	log := handlers.RequestLogger(h.log, "handlers.team.Create", r)

	var input api.CreateTeamRequest
	if !handlers.Bind(w, r, log, &input) {
		return
	}

	resp, err := h.service.Create(r.Context(), input)
	if err != nil {
		handlers.RenderError(w, r, log, err)
		return
	}

	log.Info("team created", slog.String("team_id", resp.ID))
	render.Status(r, http.StatusCreated)
	render.JSON(w, r, api.TeamResponse{Team: *resp})
}

func (h *TeamHandler) Get(w http.ResponseWriter, r *http.Request) {
	log := handlers.RequestLogger(h.log, "handlers.team.Get", r)

	teamID, ok := handlers.UUIDParam(w, r, "teamID")
	if !ok {
		return
	}

	resp, err := h.service.Get(r.Context(), teamID)
	if err != nil {
		handlers.RenderError(w, r, log, err)
		return
	}

	render.JSON(w, r, api.TeamResponse{Team: *resp})
}

// Join resolves a team code typed in by a parent.
func (h *TeamHandler) Join(w http.ResponseWriter, r *http.Request) {
	log := handlers.RequestLogger(h.log, "handlers.team.Join", r)

	code := r.URL.Query().Get("code")
	if code == "" {
		render.Status(r, http.StatusBadRequest)
		render.JSON(w, r, api.Error(api.ErrBadRequest, "code is required"))
		return
	}

	resp, err := h.service.GetByCode(r.Context(), code)
	if err != nil {
		handlers.RenderError(w, r, log, err)
		return
	}

	log.Info("team joined by code", slog.String("team_id", resp.ID))
	render.JSON(w, r, api.TeamResponse{Team: *resp})
}

func (h *TeamHandler) List(w http.ResponseWriter, r *http.Request) {
	log := handlers.RequestLogger(h.log, "handlers.team.List", r)

	resp, err := h.service.List(r.Context())
	if err != nil {
		handlers.RenderError(w, r, log, err)
		return
	}

	render.JSON(w, r, resp)
}

func (h *TeamHandler) Delete(w http.ResponseWriter, r *http.Request) {
	log := handlers.RequestLogger(h.log, "handlers.team.Delete", r)

	teamID, ok := handlers.UUIDParam(w, r, "teamID")
	if !ok {
		return
	}

	if err := h.service.Delete(r.Context(), teamID); err != nil {
		handlers.RenderError(w, r, log, err)
		return
	}

	log.Info("team deleted", slog.String("team_id", teamID.String()))
	render.NoContent(w, r)
}

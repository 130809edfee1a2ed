package event

import (
	"context"
	"log/slog"
	"net/http"

	"express-hub/internal/http/api"
	"express-hub/internal/http/handlers"

	"github.com/go-chi/render"
	"github.com/google/uuid"
)

//go:generate go run github.com/vektra/mockery/v2@v2.53.5 --name=eventService --structname=MockEventService --output=../mocks
type eventService interface {
	Create(ctx context.Context, teamID uuid.UUID, in api.CreateEventRequest) (*api.EventSchema, error)
	List(ctx context.Context, teamID uuid.UUID) (*api.EventListResponse, error)
}

type EventHandler struct {
	log     *slog.Logger
	service eventService
}

func NewEventHandler(log *slog.Logger, s eventService) *EventHandler {
	return &EventHandler{
		log:     log,
		service: s,
	}
}

func (h *EventHandler) Create(w http.ResponseWriter, r *http.Request) {
	log := handlers.RequestLogger(h.log, "handlers.event.Create", r)

	teamID, ok := handlers.UUIDParam(w, r, "teamID")
	if !ok {
		return
	}

	var input api.CreateEventRequest
	if !handlers.Bind(w, r, log, &input) {
		return
	}

	resp, err := h.service.Create(r.Context(), teamID, input)
	if err != nil {
		handlers.RenderError(w, r, log, err)
		return
	}

	log.Info("event created", slog.String("event_id", resp.ID))
	render.Status(r, http.StatusCreated)
	render.JSON(w, r, api.EventResponse{Event: *resp})
}

func (h *EventHandler) List(w http.ResponseWriter, r *http.Request) {
	log := handlers.RequestLogger(h.log, "handlers.event.List", r)

	teamID, ok := handlers.UUIDParam(w, r, "teamID")
	if !ok {
		return
	}

	resp, err := h.service.List(r.Context(), teamID)
	if err != nil {
		handlers.RenderError(w, r, log, err)
		return
	}

	render.JSON(w, r, resp)
}

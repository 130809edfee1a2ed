package push

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"express-hub/internal/http/api"
	"express-hub/internal/http/handlers"
	"express-hub/internal/lib/sl"
	"express-hub/internal/models"
	pushsvc "express-hub/internal/service/push"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"
	"github.com/google/uuid"
)

//go:generate go run github.com/vektra/mockery/v2@v2.53.5 --name=pushService --structname=MockPushService --output=../mocks
type pushService interface {
	Send(ctx context.Context, n pushsvc.Notification) (*api.PushResponse, error)
	SendAnnouncement(ctx context.Context, announcementID uuid.UUID) (*api.PushResponse, error)
	SendScheduleChange(ctx context.Context, scheduleID uuid.UUID) (*api.PushResponse, error)
	SendGameReminder(ctx context.Context, scheduleID uuid.UUID) (*api.PushResponse, error)
	SendPracticeReminder(ctx context.Context, scheduleID uuid.UUID) (*api.PushResponse, error)
	History(ctx context.Context, teamID uuid.UUID) (*api.DispatchListResponse, error)
}

type PushHandler struct {
	log     *slog.Logger
	service pushService
}

func NewPushHandler(log *slog.Logger, s pushService) *PushHandler {
	return &PushHandler{
		log:     log,
		service: s,
	}
}

func (h *PushHandler) Send(w http.ResponseWriter, r *http.Request) {
	log := handlers.RequestLogger(h.log, "handlers.push.Send", r)

	var input api.SendPushRequest
	if !handlers.Bind(w, r, log, &input) {
		return
	}

	resp, err := h.service.Send(r.Context(), pushsvc.Notification{
		TeamID: uuid.MustParse(input.TeamID),
		Title:  input.Title,
		Body:   input.Body,
		Type:   models.NotificationType(input.Type),
		Badge:  input.Badge,
	})
	h.respond(w, r, log, resp, err)
}

func (h *PushHandler) SendAnnouncement(w http.ResponseWriter, r *http.Request) {
	log := handlers.RequestLogger(h.log, "handlers.push.SendAnnouncement", r)

	announcementID, ok := handlers.UUIDParam(w, r, "announcementID")
	if !ok {
		return
	}

	resp, err := h.service.SendAnnouncement(r.Context(), announcementID)
	h.respond(w, r, log, resp, err)
}

// SendSchedule dispatches one of the schedule notifications, picked by the
// {kind} path segment: change, game-reminder or practice-reminder.
func (h *PushHandler) SendSchedule(w http.ResponseWriter, r *http.Request) {
	log := handlers.RequestLogger(h.log, "handlers.push.SendSchedule", r)

	scheduleID, ok := handlers.UUIDParam(w, r, "scheduleID")
	if !ok {
		return
	}

	var send func(context.Context, uuid.UUID) (*api.PushResponse, error)
	switch chi.URLParam(r, "kind") {
	case "change":
		send = h.service.SendScheduleChange
	case "game-reminder":
		send = h.service.SendGameReminder
	case "practice-reminder":
		send = h.service.SendPracticeReminder
	default:
		render.Status(r, http.StatusNotFound)
		render.JSON(w, r, api.Error(api.ErrCodeNotFound, "unknown notification kind"))
		return
	}

	resp, err := send(r.Context(), scheduleID)
	h.respond(w, r, log, resp, err)
}

func (h *PushHandler) History(w http.ResponseWriter, r *http.Request) {
	log := handlers.RequestLogger(h.log, "handlers.push.History", r)

	teamID, ok := handlers.UUIDParam(w, r, "teamID")
	if !ok {
		return
	}

	resp, err := h.service.History(r.Context(), teamID)
	if err != nil {
		handlers.RenderError(w, r, log, err)
		return
	}

	render.JSON(w, r, resp)
}

func (h *PushHandler) respond(w http.ResponseWriter, r *http.Request, log *slog.Logger, resp *api.PushResponse, err error) {
	if err != nil {
		if errors.Is(err, pushsvc.ErrPushFailed) {
			log.Warn("push dispatch failed", sl.Err(err))

			render.Status(r, http.StatusBadGateway)
			render.JSON(w, r, api.Error(api.ErrCodePushFailed, err.Error()))
			return
		}
		handlers.RenderError(w, r, log, err)
		return
	}

	log.Info("push dispatched", slog.String("type", resp.Type), slog.Int("recipients", resp.Recipients))
	render.JSON(w, r, resp)
}

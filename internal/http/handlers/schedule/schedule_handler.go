package schedule

import (
	"context"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"express-hub/internal/http/api"
	"express-hub/internal/http/handlers"

	"github.com/go-chi/render"
	"github.com/google/uuid"
)

//go:generate go run github.com/vektra/mockery/v2@v2.53.5 --name=scheduleService --structname=MockScheduleService --output=../mocks
type scheduleService interface {
	Create(ctx context.Context, teamID uuid.UUID, in api.CreateScheduleRequest) (*api.ScheduleSchema, error)
	Reschedule(ctx context.Context, scheduleID uuid.UUID, start time.Time, end *time.Time) (*api.ScheduleSchema, error)
	Cancel(ctx context.Context, scheduleID uuid.UUID, reason string) (*api.ScheduleSchema, error)
	RecordResult(ctx context.Context, scheduleID uuid.UUID, in api.RecordResultRequest) (*api.ScheduleSchema, error)
	List(ctx context.Context, teamID uuid.UUID, upcomingOnly bool) (*api.ScheduleListResponse, error)
}

type ScheduleHandler struct {
	log     *slog.Logger
	service scheduleService
}

func NewScheduleHandler(log *slog.Logger, s scheduleService) *ScheduleHandler {
	return &ScheduleHandler{
		log:     log,
		service: s,
	}
}

func (h *ScheduleHandler) Create(w http.ResponseWriter, r *http.Request) {
	log := handlers.RequestLogger(h.log, "handlers.schedule.Create", r)

	teamID, ok := handlers.UUIDParam(w, r, "teamID")
	if !ok {
		return
	}

	var input api.CreateScheduleRequest
	if !handlers.Bind(w, r, log, &input) {
		return
	}

	resp, err := h.service.Create(r.Context(), teamID, input)
	if err != nil {
		handlers.RenderError(w, r, log, err)
		return
	}

	log.Info("schedule created", slog.String("schedule_id", resp.ID))
	render.Status(r, http.StatusCreated)
	render.JSON(w, r, api.ScheduleResponse{Schedule: *resp})
}

func (h *ScheduleHandler) Reschedule(w http.ResponseWriter, r *http.Request) {
	log := handlers.RequestLogger(h.log, "handlers.schedule.Reschedule", r)

	scheduleID, ok := handlers.UUIDParam(w, r, "scheduleID")
	if !ok {
		return
	}

	var input api.RescheduleRequest
	if !handlers.Bind(w, r, log, &input) {
		return
	}

	resp, err := h.service.Reschedule(r.Context(), scheduleID, input.StartTime, input.EndTime)
	if err != nil {
		handlers.RenderError(w, r, log, err)
		return
	}

	log.Info("schedule moved", slog.String("schedule_id", resp.ID))
	render.JSON(w, r, api.ScheduleResponse{Schedule: *resp})
}

func (h *ScheduleHandler) Cancel(w http.ResponseWriter, r *http.Request) {
	log := handlers.RequestLogger(h.log, "handlers.schedule.Cancel", r)

	scheduleID, ok := handlers.UUIDParam(w, r, "scheduleID")
	if !ok {
		return
	}

	var input api.CancelScheduleRequest
	if !handlers.Bind(w, r, log, &input) {
		return
	}

	resp, err := h.service.Cancel(r.Context(), scheduleID, input.Reason)
	if err != nil {
		handlers.RenderError(w, r, log, err)
		return
	}

	log.Info("schedule cancelled", slog.String("schedule_id", resp.ID))
	render.JSON(w, r, api.ScheduleResponse{Schedule: *resp})
}

func (h *ScheduleHandler) RecordResult(w http.ResponseWriter, r *http.Request) {
	log := handlers.RequestLogger(h.log, "handlers.schedule.RecordResult", r)

	scheduleID, ok := handlers.UUIDParam(w, r, "scheduleID")
	if !ok {
		return
	}

	var input api.RecordResultRequest
	if !handlers.Bind(w, r, log, &input) {
		return
	}

	resp, err := h.service.RecordResult(r.Context(), scheduleID, input)
	if err != nil {
		handlers.RenderError(w, r, log, err)
		return
	}

	render.JSON(w, r, api.ScheduleResponse{Schedule: *resp})
}

// List serves the team schedule. ?upcoming=true hides finished entries.
func (h *ScheduleHandler) List(w http.ResponseWriter, r *http.Request) {
	log := handlers.RequestLogger(h.log, "handlers.schedule.List", r)

	teamID, ok := handlers.UUIDParam(w, r, "teamID")
	if !ok {
		return
	}

	upcoming := false
	if v := r.URL.Query().Get("upcoming"); v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, api.Error(api.ErrBadRequest, "upcoming must be a boolean"))
			return
		}
		upcoming = b
	}

	resp, err := h.service.List(r.Context(), teamID, upcoming)
	if err != nil {
		handlers.RenderError(w, r, log, err)
		return
	}

	render.JSON(w, r, resp)
}

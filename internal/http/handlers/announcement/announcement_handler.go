package announcement

import (
	"context"
	"log/slog"
	"net/http"

	"express-hub/internal/http/api"
	"express-hub/internal/http/handlers"
	"express-hub/internal/models"

	"github.com/go-chi/render"
	"github.com/google/uuid"
)

//go:generate go run github.com/vektra/mockery/v2@v2.53.5 --name=announcementService --structname=MockAnnouncementService --output=../mocks
type announcementService interface {
	Compose(ctx context.Context, teamID uuid.UUID, in api.CreateAnnouncementRequest) (*api.AnnouncementSchema, error)
	List(ctx context.Context, teamID uuid.UUID, category models.Category) (*api.AnnouncementListResponse, error)
	View(ctx context.Context, announcementID uuid.UUID) (*api.AnnouncementSchema, error)
}

type AnnouncementHandler struct {
	log     *slog.Logger
	service announcementService
}

func NewAnnouncementHandler(log *slog.Logger, s announcementService) *AnnouncementHandler {
	return &AnnouncementHandler{
		log:     log,
		service: s,
	}
}

func (h *AnnouncementHandler) Create(w http.ResponseWriter, r *http.Request) {
	log := handlers.RequestLogger(h.log, "handlers.announcement.Create", r)

	teamID, ok := handlers.UUIDParam(w, r, "teamID")
	if !ok {
		return
	}

	var input api.CreateAnnouncementRequest
	if !handlers.Bind(w, r, log, &input) {
		return
	}

	resp, err := h.service.Compose(r.Context(), teamID, input)
	if err != nil {
		handlers.RenderError(w, r, log, err)
		return
	}

	log.Info("announcement created", slog.String("announcement_id", resp.ID))
	render.Status(r, http.StatusCreated)
	render.JSON(w, r, api.AnnouncementResponse{Announcement: *resp})
}

func (h *AnnouncementHandler) List(w http.ResponseWriter, r *http.Request) {
	log := handlers.RequestLogger(h.log, "handlers.announcement.List", r)

	teamID, ok := handlers.UUIDParam(w, r, "teamID")
	if !ok {
		return
	}

	category := models.Category(r.URL.Query().Get("category"))

	resp, err := h.service.List(r.Context(), teamID, category)
	if err != nil {
		handlers.RenderError(w, r, log, err)
		return
	}

	render.JSON(w, r, resp)
}

// View is the detail screen. Serving it marks the announcement read.
func (h *AnnouncementHandler) View(w http.ResponseWriter, r *http.Request) {
	log := handlers.RequestLogger(h.log, "handlers.announcement.View", r)

	announcementID, ok := handlers.UUIDParam(w, r, "announcementID")
	if !ok {
		return
	}

	resp, err := h.service.View(r.Context(), announcementID)
	if err != nil {
		handlers.RenderError(w, r, log, err)
		return
	}

	render.JSON(w, r, api.AnnouncementResponse{Announcement: *resp})
}

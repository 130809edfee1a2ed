package feed

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

//go:generate go run github.com/vektra/mockery/v2@v2.53.5 --name=feedService --structname=MockFeedService --output=../mocks
type feedService interface {
	Feed(ctx context.Context, teamIDs []uuid.UUID, filter models.FeedFilter) (*api.FeedResponse, error)
}

type FeedHandler struct {
	log     *slog.Logger
	service feedService
}

func NewFeedHandler(log *slog.Logger, s feedService) *FeedHandler {
	return &FeedHandler{
		log:     log,
		service: s,
	}
}

// Get serves GET /feed?team_id=...&team_id=...&filter=all|unread|urgent.
func (h *FeedHandler) Get(w http.ResponseWriter, r *http.Request) {
	log := handlers.RequestLogger(h.log, "handlers.feed.Get", r)

	query := r.URL.Query()

	teamIDs := make([]uuid.UUID, 0, len(query["team_id"]))
	for _, raw := range query["team_id"] {
		id, err := uuid.Parse(raw)
		if err != nil {
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, api.Error(api.ErrBadRequest, "team_id must be a valid uuid"))
			return
		}
		teamIDs = append(teamIDs, id)
	}

	resp, err := h.service.Feed(r.Context(), teamIDs, models.FeedFilter(query.Get("filter")))
	if err != nil {
		handlers.RenderError(w, r, log, err)
		return
	}

	log.Debug("feed served", slog.Int("items", len(resp.Items)), slog.Int("unread", resp.UnreadCount))
	render.JSON(w, r, resp)
}

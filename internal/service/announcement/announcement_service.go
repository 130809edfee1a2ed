package announcement

import (
	"context"
	"fmt"
	"log/slog"
	"slices"
	"strings"

	"express-hub/internal/events"
	"express-hub/internal/http/api"
	"express-hub/internal/metrics"
	"express-hub/internal/models"
	"express-hub/internal/service"

	"github.com/google/uuid"
	"github.com/jonboulle/clockwork"
)

var (
	ErrEmptyTitle      = fmt.Errorf("%w: title must not be empty", service.ErrValidation)
	ErrEmptyMessage    = fmt.Errorf("%w: message must not be empty", service.ErrValidation)
	ErrInvalidPriority = fmt.Errorf("%w: unknown priority", service.ErrValidation)
	ErrInvalidCategory = fmt.Errorf("%w: unknown category", service.ErrValidation)
)

//go:generate go run github.com/vektra/mockery/v2@v2.53.5 --name=AnnouncementStore
type AnnouncementStore interface {
	Create(ctx context.Context, a *models.Announcement) error
	GetByID(ctx context.Context, announcementID uuid.UUID) (*models.Announcement, error)
	ListByTeams(ctx context.Context, teamIDs []uuid.UUID) ([]*models.Announcement, error)
	MarkRead(ctx context.Context, announcementID uuid.UUID) (bool, error)
}

//go:generate go run github.com/vektra/mockery/v2@v2.53.5 --name=TeamGetter
type TeamGetter interface {
	GetByID(ctx context.Context, teamID uuid.UUID) (*models.Team, error)
}

type AnnouncementService struct {
	announcements AnnouncementStore
	teams         TeamGetter
	trm           service.TransactionManager
	clock         clockwork.Clock
	publisher     events.Publisher
	metrics       *metrics.Metrics
	log           *slog.Logger
}

func NewAnnouncementService(
	trm service.TransactionManager,
	announcements AnnouncementStore,
	teams TeamGetter,
	clock clockwork.Clock,
	publisher events.Publisher,
	m *metrics.Metrics,
	log *slog.Logger,
) *AnnouncementService {
	return &AnnouncementService{
		announcements: announcements,
		teams:         teams,
		trm:           trm,
		clock:         clock,
		publisher:     publisher,
		metrics:       m,
		log:           log,
	}
}

// Compose validates the submission and attaches it to the team. Nothing is
// written when validation fails.
func (s *AnnouncementService) Compose(ctx context.Context, teamID uuid.UUID, in api.CreateAnnouncementRequest) (*api.AnnouncementSchema, error) {
	if teamID == uuid.Nil {
		return nil, service.ErrNoTeamSelected
	}

	a, err := s.build(teamID, in)
	if err != nil {
		return nil, err
	}

	err = s.trm.Do(ctx, func(ctx context.Context) error {
		if _, err := s.teams.GetByID(ctx, teamID); err != nil {
			return err
		}
		return s.announcements.Create(ctx, a)
	})
	if err != nil {
		return nil, err
	}

	s.metrics.AnnouncementsMade.WithLabelValues(string(a.Priority)).Inc()
	service.Notify(ctx, s.log, s.publisher, events.Change{
		TeamID:   teamID,
		Entity:   events.EntityAnnouncement,
		Action:   events.ActionCreated,
		EntityID: a.ID,
		At:       a.CreatedAt,
	})

	resp := api.FromAnnouncement(a)
	return &resp, nil
}

func (s *AnnouncementService) build(teamID uuid.UUID, in api.CreateAnnouncementRequest) (*models.Announcement, error) {
	title := strings.TrimSpace(in.Title)
	if title == "" {
		return nil, ErrEmptyTitle
	}
	message := strings.TrimSpace(in.Message)
	if message == "" {
		return nil, ErrEmptyMessage
	}

	priority := models.Priority(strings.TrimSpace(in.Priority))
	if priority == "" {
		priority = models.PriorityNormal
	}
	if !priority.Valid() {
		return nil, ErrInvalidPriority
	}

	category := models.Category(strings.TrimSpace(in.Category))
	if category == "" {
		category = models.CategoryGeneral
	}
	if !category.Valid() {
		return nil, ErrInvalidCategory
	}

	now := s.clock.Now()

	return &models.Announcement{
		ID:        uuid.New(),
		TeamID:    teamID,
		Title:     title,
		Message:   message,
		Priority:  priority,
		Category:  category,
		IsPinned:  in.IsPinned,
		IsRead:    false,
		ExpiresAt: in.ExpiresAt,
		CreatedAt: now,
		UpdatedAt: now,
	}, nil
}

// List returns the team's active announcements, pinned ones first and then
// newest first. A non-empty category narrows the list.
func (s *AnnouncementService) List(ctx context.Context, teamID uuid.UUID, category models.Category) (*api.AnnouncementListResponse, error) {
	if teamID == uuid.Nil {
		return nil, service.ErrNoTeamSelected
	}
	if category != "" && !category.Valid() {
		return nil, ErrInvalidCategory
	}

	var stored []*models.Announcement
	err := s.trm.Do(ctx, func(ctx context.Context) error {
		if _, err := s.teams.GetByID(ctx, teamID); err != nil {
			return err
		}
		var err error
		stored, err = s.announcements.ListByTeams(ctx, []uuid.UUID{teamID})
		return err
	})
	if err != nil {
		return nil, err
	}

	now := s.clock.Now()
	active := make([]*models.Announcement, 0, len(stored))
	for _, a := range stored {
		if a.IsExpired(now) {
			continue
		}
		if category != "" && a.Category != category {
			continue
		}
		active = append(active, a)
	}

	slices.SortStableFunc(active, func(a, b *models.Announcement) int {
		if a.IsPinned != b.IsPinned {
			if a.IsPinned {
				return -1
			}
			return 1
		}
		return b.CreatedAt.Compare(a.CreatedAt)
	})

	resp := &api.AnnouncementListResponse{
		TeamID:        teamID.String(),
		Announcements: make([]api.AnnouncementSchema, 0, len(active)),
	}
	for _, a := range active {
		if !a.IsRead {
			resp.UnreadCount++
		}
		resp.Announcements = append(resp.Announcements, api.FromAnnouncement(a))
	}

	return resp, nil
}

// View opens the detail of an announcement. The first view flips it to
// read and the flip is committed before View returns.
func (s *AnnouncementService) View(ctx context.Context, announcementID uuid.UUID) (*api.AnnouncementSchema, error) {
	var (
		a       *models.Announcement
		flipped bool
	)

	err := s.trm.Do(ctx, func(ctx context.Context) error {
		var err error
		a, err = s.announcements.GetByID(ctx, announcementID)
		if err != nil {
			return err
		}
		if a.IsRead {
			return nil
		}

		flipped, err = s.announcements.MarkRead(ctx, announcementID)
		if err != nil {
			return err
		}
		a.IsRead = true
		return nil
	})
	if err != nil {
		return nil, err
	}

	if flipped {
		s.metrics.AnnouncementReads.Inc()
		service.Notify(ctx, s.log, s.publisher, events.Change{
			TeamID:   a.TeamID,
			Entity:   events.EntityAnnouncement,
			Action:   events.ActionRead,
			EntityID: a.ID,
			At:       s.clock.Now(),
		})
	}

	resp := api.FromAnnouncement(a)
	return &resp, nil
}

package feed

import (
	"context"
	"fmt"
	"time"

	"express-hub/internal/http/api"
	"express-hub/internal/models"
	"express-hub/internal/service"

	"github.com/google/uuid"
	"github.com/jonboulle/clockwork"
)

var ErrInvalidFilter = fmt.Errorf("%w: filter must be one of all, unread, urgent", service.ErrValidation)

//go:generate go run github.com/vektra/mockery/v2@v2.53.5 --name=AnnouncementLister
type AnnouncementLister interface {
	ListByTeams(ctx context.Context, teamIDs []uuid.UUID) ([]*models.Announcement, error)
}

//go:generate go run github.com/vektra/mockery/v2@v2.53.5 --name=ScheduleLister
type ScheduleLister interface {
	ListByTeams(ctx context.Context, teamIDs []uuid.UUID) ([]*models.Schedule, error)
}

type FeedService struct {
	announcements AnnouncementLister
	schedules     ScheduleLister
	trm           service.TransactionManager
	clock         clockwork.Clock
	window        time.Duration
}

func NewFeedService(
	trm service.TransactionManager,
	announcements AnnouncementLister,
	schedules ScheduleLister,
	clock clockwork.Clock,
	window time.Duration,
) *FeedService {
	if window <= 0 {
		window = DefaultWindow
	}
	return &FeedService{
		announcements: announcements,
		schedules:     schedules,
		trm:           trm,
		clock:         clock,
		window:        window,
	}
}

// Feed loads both record sets in one transaction so a concurrent read flip
// is either fully visible or not at all.
func (s *FeedService) Feed(ctx context.Context, teamIDs []uuid.UUID, filter models.FeedFilter) (*api.FeedResponse, error) {
	if len(teamIDs) == 0 {
		return nil, service.ErrNoTeamSelected
	}
	if filter == "" {
		filter = models.FilterAll
	}
	if !filter.Valid() {
		return nil, ErrInvalidFilter
	}

	var (
		announcements []*models.Announcement
		schedules     []*models.Schedule
	)

	err := s.trm.Do(ctx, func(ctx context.Context) error {
		var err error
		announcements, err = s.announcements.ListByTeams(ctx, teamIDs)
		if err != nil {
			return err
		}
		schedules, err = s.schedules.ListByTeams(ctx, teamIDs)
		return err
	})
	if err != nil {
		return nil, err
	}

	items := Project(announcements, schedules, s.clock.Now(), s.window)

	resp := &api.FeedResponse{
		Filter:      string(filter),
		UnreadCount: UnreadCount(items),
		Items:       []api.NotificationSchema{},
	}
	for _, it := range Apply(items, filter) {
		resp.Items = append(resp.Items, api.FromNotification(it))
	}

	return resp, nil
}

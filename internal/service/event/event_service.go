package event

import (
	"context"
	"fmt"
	"log/slog"
	"slices"
	"strings"

	"express-hub/internal/events"
	"express-hub/internal/http/api"
	"express-hub/internal/models"
	"express-hub/internal/service"

	"github.com/google/uuid"
	"github.com/jonboulle/clockwork"
)

var (
	ErrEmptyTitle     = fmt.Errorf("%w: title must not be empty", service.ErrValidation)
	ErrMissingStart   = fmt.Errorf("%w: start date is required", service.ErrValidation)
	ErrEndBeforeStart = fmt.Errorf("%w: end date must not be before start date", service.ErrValidation)
)

//go:generate go run github.com/vektra/mockery/v2@v2.53.5 --name=EventStore
type EventStore interface {
	Create(ctx context.Context, e *models.Event) error
	ListByTeam(ctx context.Context, teamID uuid.UUID) ([]*models.Event, error)
}

//go:generate go run github.com/vektra/mockery/v2@v2.53.5 --name=TeamGetter
type TeamGetter interface {
	GetByID(ctx context.Context, teamID uuid.UUID) (*models.Team, error)
}

type EventService struct {
	events    EventStore
	teams     TeamGetter
	trm       service.TransactionManager
	clock     clockwork.Clock
	publisher events.Publisher
	log       *slog.Logger
}

func NewEventService(
	trm service.TransactionManager,
	eventStore EventStore,
	teams TeamGetter,
	clock clockwork.Clock,
	publisher events.Publisher,
	log *slog.Logger,
) *EventService {
	return &EventService{
		events:    eventStore,
		teams:     teams,
		trm:       trm,
		clock:     clock,
		publisher: publisher,
		log:       log,
	}
}

func (s *EventService) Create(ctx context.Context, teamID uuid.UUID, in api.CreateEventRequest) (*api.EventSchema, error) {
	title := strings.TrimSpace(in.Title)
	if title == "" {
		return nil, ErrEmptyTitle
	}
	if in.StartDate.IsZero() {
		return nil, ErrMissingStart
	}

	end := in.StartDate.Add(models.DefaultEventDuration)
	if in.EndDate != nil {
		end = *in.EndDate
	}
	if end.Before(in.StartDate) {
		return nil, ErrEndBeforeStart
	}

	eventType := strings.TrimSpace(in.EventType)
	if eventType == "" {
		eventType = models.DefaultEventType
	}

	now := s.clock.Now()
	e := &models.Event{
		ID:          uuid.New(),
		TeamID:      teamID,
		Title:       title,
		Description: in.Description,
		EventType:   eventType,
		StartDate:   in.StartDate,
		EndDate:     &end,
		Location:    in.Location,
		IsAllDay:    in.IsAllDay,
		Reminder:    in.Reminder,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	err := s.trm.Do(ctx, func(ctx context.Context) error {
		if _, err := s.teams.GetByID(ctx, teamID); err != nil {
			return err
		}
		return s.events.Create(ctx, e)
	})
	if err != nil {
		return nil, err
	}

	service.Notify(ctx, s.log, s.publisher, events.Change{
		TeamID:   teamID,
		Entity:   events.EntityEvent,
		Action:   events.ActionCreated,
		EntityID: e.ID,
		At:       now,
	})

	resp := api.FromEvent(e)
	return &resp, nil
}

func (s *EventService) List(ctx context.Context, teamID uuid.UUID) (*api.EventListResponse, error) {
	var list []*models.Event

	err := s.trm.Do(ctx, func(ctx context.Context) error {
		if _, err := s.teams.GetByID(ctx, teamID); err != nil {
			return err
		}
		var err error
		list, err = s.events.ListByTeam(ctx, teamID)
		return err
	})
	if err != nil {
		return nil, err
	}

	slices.SortStableFunc(list, func(a, b *models.Event) int {
		return a.StartDate.Compare(b.StartDate)
	})

	resp := &api.EventListResponse{
		TeamID: teamID.String(),
		Events: make([]api.EventSchema, 0, len(list)),
	}
	for _, e := range list {
		resp.Events = append(resp.Events, api.FromEvent(e))
	}

	return resp, nil
}

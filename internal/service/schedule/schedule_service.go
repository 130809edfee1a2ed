package schedule

import (
	"context"
	"fmt"
	"log/slog"
	"slices"
	"strings"
	"time"

	"express-hub/internal/events"
	"express-hub/internal/http/api"
	"express-hub/internal/models"
	"express-hub/internal/service"

	"github.com/google/uuid"
	"github.com/jonboulle/clockwork"
)

var (
	ErrInvalidEventType = fmt.Errorf("%w: unknown event type", service.ErrValidation)
	ErrMissingLocation  = fmt.Errorf("%w: location is required", service.ErrValidation)
	ErrMissingStart     = fmt.Errorf("%w: start time is required", service.ErrValidation)
	ErrEndBeforeStart   = fmt.Errorf("%w: end time must not be before start time", service.ErrValidation)
	ErrInvalidResult    = fmt.Errorf("%w: result must be one of win, loss, tie", service.ErrValidation)
	ErrNegativeScore    = fmt.Errorf("%w: scores must not be negative", service.ErrValidation)
)

//go:generate go run github.com/vektra/mockery/v2@v2.53.5 --name=ScheduleStore
type ScheduleStore interface {
	Create(ctx context.Context, s *models.Schedule) error
	GetByID(ctx context.Context, scheduleID uuid.UUID) (*models.Schedule, error)
	ListByTeams(ctx context.Context, teamIDs []uuid.UUID) ([]*models.Schedule, error)
	Update(ctx context.Context, s *models.Schedule) error
}

//go:generate go run github.com/vektra/mockery/v2@v2.53.5 --name=TeamGetter
type TeamGetter interface {
	GetByID(ctx context.Context, teamID uuid.UUID) (*models.Team, error)
}

type ScheduleService struct {
	schedules ScheduleStore
	teams     TeamGetter
	trm       service.TransactionManager
	clock     clockwork.Clock
	publisher events.Publisher
	log       *slog.Logger
}

func NewScheduleService(
	trm service.TransactionManager,
	schedules ScheduleStore,
	teams TeamGetter,
	clock clockwork.Clock,
	publisher events.Publisher,
	log *slog.Logger,
) *ScheduleService {
	return &ScheduleService{
		schedules: schedules,
		teams:     teams,
		trm:       trm,
		clock:     clock,
		publisher: publisher,
		log:       log,
	}
}

func (s *ScheduleService) Create(ctx context.Context, teamID uuid.UUID, in api.CreateScheduleRequest) (*api.ScheduleSchema, error) {
	eventType := models.EventType(in.EventType)
	if !eventType.Valid() {
		return nil, ErrInvalidEventType
	}
	location := strings.TrimSpace(in.Location)
	if location == "" {
		return nil, ErrMissingLocation
	}
	end, err := resolveEnd(in.StartTime, in.EndTime, models.DefaultScheduleDuration)
	if err != nil {
		return nil, err
	}

	isHome := true
	if in.IsHomeGame != nil {
		isHome = *in.IsHomeGame
	}

	now := s.clock.Now()
	sched := &models.Schedule{
		ID:         uuid.New(),
		TeamID:     teamID,
		EventType:  eventType,
		Opponent:   in.Opponent,
		Location:   location,
		StartTime:  in.StartTime,
		EndTime:    &end,
		IsHomeGame: isHome,
		Notes:      in.Notes,
		CreatedAt:  now,
		UpdatedAt:  now,
	}

	err = s.trm.Do(ctx, func(ctx context.Context) error {
		if _, err := s.teams.GetByID(ctx, teamID); err != nil {
			return err
		}
		return s.schedules.Create(ctx, sched)
	})
	if err != nil {
		return nil, err
	}

	s.notify(ctx, sched, events.ActionCreated)

	resp := api.FromSchedule(sched)
	return &resp, nil
}

// Reschedule moves the schedule to a new start time. Without an explicit
// end the previous duration is kept.
func (s *ScheduleService) Reschedule(
	ctx context.Context,
	scheduleID uuid.UUID,
	start time.Time,
	end *time.Time,
) (*api.ScheduleSchema, error) {
	if start.IsZero() {
		return nil, ErrMissingStart
	}

	return s.update(ctx, scheduleID, func(sched *models.Schedule) error {
		duration := models.DefaultScheduleDuration
		if sched.EndTime != nil {
			duration = sched.EndTime.Sub(sched.StartTime)
		}

		newEnd, err := resolveEnd(start, end, duration)
		if err != nil {
			return err
		}
		sched.StartTime = start
		sched.EndTime = &newEnd
		return nil
	})
}

func (s *ScheduleService) Cancel(ctx context.Context, scheduleID uuid.UUID, reason string) (*api.ScheduleSchema, error) {
	return s.update(ctx, scheduleID, func(sched *models.Schedule) error {
		sched.IsCancelled = true
		if reason = strings.TrimSpace(reason); reason != "" {
			sched.CancellationReason = &reason
		}
		return nil
	})
}

func (s *ScheduleService) RecordResult(ctx context.Context, scheduleID uuid.UUID, in api.RecordResultRequest) (*api.ScheduleSchema, error) {
	switch in.Result {
	case "win", "loss", "tie":
	default:
		return nil, ErrInvalidResult
	}
	if (in.TeamScore != nil && *in.TeamScore < 0) || (in.OpponentScore != nil && *in.OpponentScore < 0) {
		return nil, ErrNegativeScore
	}

	return s.update(ctx, scheduleID, func(sched *models.Schedule) error {
		result := in.Result
		sched.Result = &result
		sched.TeamScore = in.TeamScore
		sched.OpponentScore = in.OpponentScore
		return nil
	})
}

// List returns the team's schedule ordered by start time. upcomingOnly
// drops everything that has already ended.
func (s *ScheduleService) List(ctx context.Context, teamID uuid.UUID, upcomingOnly bool) (*api.ScheduleListResponse, error) {
	var list []*models.Schedule

	err := s.trm.Do(ctx, func(ctx context.Context) error {
		if _, err := s.teams.GetByID(ctx, teamID); err != nil {
			return err
		}
		var err error
		list, err = s.schedules.ListByTeams(ctx, []uuid.UUID{teamID})
		return err
	})
	if err != nil {
		return nil, err
	}

	now := s.clock.Now()
	resp := &api.ScheduleListResponse{
		TeamID:    teamID.String(),
		Schedules: make([]api.ScheduleSchema, 0, len(list)),
	}

	slices.SortStableFunc(list, func(a, b *models.Schedule) int {
		return a.StartTime.Compare(b.StartTime)
	})
	for _, sched := range list {
		if upcomingOnly && endOf(sched).Before(now) {
			continue
		}
		resp.Schedules = append(resp.Schedules, api.FromSchedule(sched))
	}

	return resp, nil
}

func (s *ScheduleService) update(
	ctx context.Context,
	scheduleID uuid.UUID,
	mutate func(sched *models.Schedule) error,
) (*api.ScheduleSchema, error) {
	var sched *models.Schedule

	err := s.trm.Do(ctx, func(ctx context.Context) error {
		var err error
		sched, err = s.schedules.GetByID(ctx, scheduleID)
		if err != nil {
			return err
		}
		if err := mutate(sched); err != nil {
			return err
		}
		sched.UpdatedAt = s.clock.Now()
		return s.schedules.Update(ctx, sched)
	})
	if err != nil {
		return nil, err
	}

	s.notify(ctx, sched, events.ActionUpdated)

	resp := api.FromSchedule(sched)
	return &resp, nil
}

func (s *ScheduleService) notify(ctx context.Context, sched *models.Schedule, action events.Action) {
	service.Notify(ctx, s.log, s.publisher, events.Change{
		TeamID:   sched.TeamID,
		Entity:   events.EntitySchedule,
		Action:   action,
		EntityID: sched.ID,
		At:       sched.UpdatedAt,
	})
}

func resolveEnd(start time.Time, end *time.Time, fallback time.Duration) (time.Time, error) {
	if start.IsZero() {
		return time.Time{}, ErrMissingStart
	}
	if end == nil {
		return start.Add(fallback), nil
	}
	if end.Before(start) {
		return time.Time{}, ErrEndBeforeStart
	}
	return *end, nil
}

func endOf(sched *models.Schedule) time.Time {
	if sched.EndTime != nil {
		return *sched.EndTime
	}
	return sched.StartTime.Add(models.DefaultScheduleDuration)
}

package push

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"express-hub/internal/clients/pushgw"
	"express-hub/internal/deeplink"
	"express-hub/internal/http/api"
	"express-hub/internal/lib/sl"
	"express-hub/internal/metrics"
	"express-hub/internal/models"
	"express-hub/internal/service"
	"express-hub/internal/service/feed"

	"github.com/google/uuid"
	"github.com/jonboulle/clockwork"
)

const (
	GameReminderTitle     = "Game Tomorrow"
	PracticeReminderTitle = "Practice Tomorrow"
	ReminderTimeLayout    = "3:04 PM"

	unknownOpponent = "TBD"
)

var (
	ErrPushFailed    = errors.New("push dispatch failed")
	ErrEmptyTitle    = fmt.Errorf("%w: title must not be empty", service.ErrValidation)
	ErrEmptyBody     = fmt.Errorf("%w: body must not be empty", service.ErrValidation)
	ErrInvalidType   = fmt.Errorf("%w: unknown notification type", service.ErrValidation)
	ErrNegativeBadge = fmt.Errorf("%w: badge must not be negative", service.ErrValidation)
	ErrNotAGame      = fmt.Errorf("%w: game reminders need a game", service.ErrValidation)
	ErrNotAPractice  = fmt.Errorf("%w: practice reminders need a practice", service.ErrValidation)
)

//go:generate go run github.com/vektra/mockery/v2@v2.53.5 --name=Gateway
type Gateway interface {
	Send(ctx context.Context, in pushgw.Request) (int, error)
}

//go:generate go run github.com/vektra/mockery/v2@v2.53.5 --name=DispatchRecorder
type DispatchRecorder interface {
	Create(ctx context.Context, d *models.PushDispatch) error
	ListByTeam(ctx context.Context, teamID uuid.UUID) ([]*models.PushDispatch, error)
}

//go:generate go run github.com/vektra/mockery/v2@v2.53.5 --name=AnnouncementGetter
type AnnouncementGetter interface {
	GetByID(ctx context.Context, announcementID uuid.UUID) (*models.Announcement, error)
}

//go:generate go run github.com/vektra/mockery/v2@v2.53.5 --name=ScheduleGetter
type ScheduleGetter interface {
	GetByID(ctx context.Context, scheduleID uuid.UUID) (*models.Schedule, error)
}

//go:generate go run github.com/vektra/mockery/v2@v2.53.5 --name=TeamGetter
type TeamGetter interface {
	GetByID(ctx context.Context, teamID uuid.UUID) (*models.Team, error)
}

type Notification struct {
	TeamID uuid.UUID
	Title  string
	Body   string
	Type   models.NotificationType
	Badge  *int
	// RefID is the announcement or schedule the deep link opens.
	RefID string
}

type PushService struct {
	gateway       Gateway
	dispatches    DispatchRecorder
	announcements AnnouncementGetter
	schedules     ScheduleGetter
	teams         TeamGetter
	trm           service.TransactionManager
	clock         clockwork.Clock
	metrics       *metrics.Metrics
	log           *slog.Logger
}

func NewPushService(
	trm service.TransactionManager,
	gateway Gateway,
	dispatches DispatchRecorder,
	announcements AnnouncementGetter,
	schedules ScheduleGetter,
	teams TeamGetter,
	clock clockwork.Clock,
	m *metrics.Metrics,
	log *slog.Logger,
) *PushService {
	return &PushService{
		gateway:       gateway,
		dispatches:    dispatches,
		announcements: announcements,
		schedules:     schedules,
		teams:         teams,
		trm:           trm,
		clock:         clock,
		metrics:       m,
		log:           log,
	}
}

// Send hands the notification to the gateway exactly once. A dispatch is
// recorded only when the gateway reports a recipient count.
func (s *PushService) Send(ctx context.Context, n Notification) (*api.PushResponse, error) {
	n.Title = strings.TrimSpace(n.Title)
	n.Body = strings.TrimSpace(n.Body)

	switch {
	case n.TeamID == uuid.Nil:
		return nil, service.ErrNoTeamSelected
	case n.Title == "":
		return nil, ErrEmptyTitle
	case n.Body == "":
		return nil, ErrEmptyBody
	case !n.Type.Valid():
		return nil, ErrInvalidType
	case n.Badge != nil && *n.Badge < 0:
		return nil, ErrNegativeBadge
	}

	if _, err := s.teams.GetByID(ctx, n.TeamID); err != nil {
		return nil, err
	}

	link, err := deeplink.ForNotification(n.Type, n.RefID)
	if err != nil {
		return nil, err
	}

	sent, err := s.gateway.Send(ctx, pushgw.Request{
		TeamID: n.TeamID,
		Title:  n.Title,
		Body:   n.Body,
		Type:   n.Type,
		Badge:  n.Badge,
		Data:   link.Payload(),
	})
	if err != nil {
		s.metrics.PushDispatches.WithLabelValues(string(n.Type), "failed").Inc()
		return nil, fmt.Errorf("%w: %w", ErrPushFailed, err)
	}

	s.metrics.PushDispatches.WithLabelValues(string(n.Type), "sent").Inc()
	s.metrics.PushRecipients.WithLabelValues(string(n.Type)).Add(float64(sent))

	dispatch := &models.PushDispatch{
		ID:         uuid.New(),
		TeamID:     n.TeamID,
		Type:       n.Type,
		Title:      n.Title,
		Body:       n.Body,
		Badge:      n.Badge,
		Recipients: sent,
		SentAt:     s.clock.Now(),
	}
	err = s.trm.Do(ctx, func(ctx context.Context) error {
		return s.dispatches.Create(ctx, dispatch)
	})
	if err != nil {
		// Recording is best effort once the gateway has accepted the push.
		s.log.Error("failed to record push dispatch", slog.String("team_id", n.TeamID.String()), sl.Err(err))
	}

	return &api.PushResponse{
		TeamID:     n.TeamID.String(),
		Type:       string(n.Type),
		Recipients: sent,
	}, nil
}

// History lists the pushes the gateway accepted for a team, newest first.
func (s *PushService) History(ctx context.Context, teamID uuid.UUID) (*api.DispatchListResponse, error) {
	var dispatches []*models.PushDispatch

	err := s.trm.Do(ctx, func(ctx context.Context) error {
		if _, err := s.teams.GetByID(ctx, teamID); err != nil {
			return err
		}
		var err error
		dispatches, err = s.dispatches.ListByTeam(ctx, teamID)
		return err
	})
	if err != nil {
		return nil, err
	}

	resp := &api.DispatchListResponse{
		TeamID:     teamID.String(),
		Dispatches: make([]api.DispatchSchema, 0, len(dispatches)),
	}
	for _, d := range dispatches {
		resp.Dispatches = append(resp.Dispatches, api.FromDispatch(d))
	}

	return resp, nil
}

func (s *PushService) SendAnnouncement(ctx context.Context, announcementID uuid.UUID) (*api.PushResponse, error) {
	a, err := s.announcements.GetByID(ctx, announcementID)
	if err != nil {
		return nil, err
	}

	badge := 1
	return s.Send(ctx, Notification{
		TeamID: a.TeamID,
		Title:  a.Title,
		Body:   a.Message,
		Type:   models.NotificationAnnouncement,
		Badge:  &badge,
		RefID:  a.ID.String(),
	})
}

func (s *PushService) SendScheduleChange(ctx context.Context, scheduleID uuid.UUID) (*api.PushResponse, error) {
	sched, err := s.schedules.GetByID(ctx, scheduleID)
	if err != nil {
		return nil, err
	}

	return s.Send(ctx, Notification{
		TeamID: sched.TeamID,
		Title:  feed.ScheduleChangeTitle,
		Body:   feed.ScheduleChangeMessage(sched),
		Type:   models.NotificationScheduleChange,
		RefID:  sched.ID.String(),
	})
}

func (s *PushService) SendGameReminder(ctx context.Context, scheduleID uuid.UUID) (*api.PushResponse, error) {
	sched, err := s.schedules.GetByID(ctx, scheduleID)
	if err != nil {
		return nil, err
	}
	if sched.EventType != models.EventGame {
		return nil, ErrNotAGame
	}

	opponent := unknownOpponent
	if sched.Opponent != nil && strings.TrimSpace(*sched.Opponent) != "" {
		opponent = *sched.Opponent
	}

	return s.Send(ctx, Notification{
		TeamID: sched.TeamID,
		Title:  GameReminderTitle,
		Body: fmt.Sprintf("vs %s at %s\n📍 %s",
			opponent, sched.StartTime.Format(ReminderTimeLayout), sched.Location),
		Type:  models.NotificationGameReminder,
		RefID: sched.ID.String(),
	})
}

func (s *PushService) SendPracticeReminder(ctx context.Context, scheduleID uuid.UUID) (*api.PushResponse, error) {
	sched, err := s.schedules.GetByID(ctx, scheduleID)
	if err != nil {
		return nil, err
	}
	if sched.EventType != models.EventPractice {
		return nil, ErrNotAPractice
	}

	return s.Send(ctx, Notification{
		TeamID: sched.TeamID,
		Title:  PracticeReminderTitle,
		Body: fmt.Sprintf("Practice at %s\n📍 %s",
			sched.StartTime.Format(ReminderTimeLayout), sched.Location),
		Type:  models.NotificationPracticeReminder,
		RefID: sched.ID.String(),
	})
}

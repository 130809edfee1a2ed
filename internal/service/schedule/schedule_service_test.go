package schedule_test

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"express-hub/internal/events"
	"express-hub/internal/http/api"
	"express-hub/internal/models"
	repo "express-hub/internal/repository"
	"express-hub/internal/service"
	"express-hub/internal/service/mocks"
	"express-hub/internal/service/schedule"

	"github.com/google/uuid"
	"github.com/jonboulle/clockwork"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

var created = time.Date(2025, time.March, 1, 10, 0, 0, 0, time.UTC)

type deps struct {
	store *mocks.ScheduleStore
	teams *mocks.TeamGetter
	trm   *mocks.MockManager
	clock *clockwork.FakeClock
}

func newService(t *testing.T) (*schedule.ScheduleService, deps) {
	d := deps{
		store: mocks.NewScheduleStore(t),
		teams: mocks.NewTeamGetter(t),
		trm:   mocks.NewMockManager(t),
		clock: clockwork.NewFakeClockAt(created),
	}
	log := slog.New(slog.NewTextHandler(io.Discard, nil))
	return schedule.NewScheduleService(d.trm, d.store, d.teams, d.clock, events.Noop{}, log), d
}

func TestScheduleService_Create_DefaultEnd(t *testing.T) {
	svc, d := newService(t)

	teamID := uuid.New()
	start := created.Add(72 * time.Hour)

	d.trm.PassThrough().Once()
	d.teams.On("GetByID", mock.Anything, teamID).Return(&models.Team{ID: teamID}, nil).Once()
	d.store.On("Create", mock.Anything, mock.MatchedBy(func(s *models.Schedule) bool {
		return s.EventType == models.EventGame &&
			s.EndTime != nil && s.EndTime.Equal(start.Add(2*time.Hour)) &&
			s.IsHomeGame &&
			s.CreatedAt.Equal(s.UpdatedAt)
	})).Return(nil).Once()

	opponent := "Hawks"
	resp, err := svc.Create(context.Background(), teamID, api.CreateScheduleRequest{
		EventType: "game",
		Opponent:  &opponent,
		Location:  "Main Gym",
		StartTime: start,
	})

	require.NoError(t, err)
	assert.Equal(t, resp.CreatedAt, resp.UpdatedAt)
	assert.True(t, resp.IsHomeGame)
}

func TestScheduleService_Create_Validation(t *testing.T) {
	start := created.Add(time.Hour)
	before := start.Add(-time.Minute)

	tests := []struct {
		name    string
		in      api.CreateScheduleRequest
		wantErr error
	}{
		{name: "unknown type", in: api.CreateScheduleRequest{EventType: "party", Location: "Gym", StartTime: start}, wantErr: schedule.ErrInvalidEventType},
		{name: "no location", in: api.CreateScheduleRequest{EventType: "practice", Location: " ", StartTime: start}, wantErr: schedule.ErrMissingLocation},
		{name: "no start", in: api.CreateScheduleRequest{EventType: "practice", Location: "Gym"}, wantErr: schedule.ErrMissingStart},
		{name: "end before start", in: api.CreateScheduleRequest{EventType: "practice", Location: "Gym", StartTime: start, EndTime: &before}, wantErr: schedule.ErrEndBeforeStart},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, d := newService(t)

			_, err := svc.Create(context.Background(), uuid.New(), tt.in)

			assert.ErrorIs(t, err, tt.wantErr)
			assert.ErrorIs(t, err, service.ErrValidation)
			d.store.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
		})
	}
}

func TestScheduleService_Reschedule_KeepsDurationAndBumpsUpdatedAt(t *testing.T) {
	svc, d := newService(t)

	id := uuid.New()
	oldStart := created.Add(24 * time.Hour)
	oldEnd := oldStart.Add(90 * time.Minute)
	stored := &models.Schedule{
		ID:        id,
		TeamID:    uuid.New(),
		EventType: models.EventPractice,
		Location:  "Main Gym",
		StartTime: oldStart,
		EndTime:   &oldEnd,
		CreatedAt: created,
		UpdatedAt: created,
	}

	d.clock.Advance(48 * time.Hour)
	newStart := oldStart.Add(3 * time.Hour)

	d.trm.PassThrough().Once()
	d.store.On("GetByID", mock.Anything, id).Return(stored, nil).Once()
	d.store.On("Update", mock.Anything, mock.MatchedBy(func(s *models.Schedule) bool {
		return s.StartTime.Equal(newStart) &&
			s.EndTime.Equal(newStart.Add(90*time.Minute)) &&
			s.UpdatedAt.Equal(created.Add(48*time.Hour)) &&
			s.WasModified()
	})).Return(nil).Once()

	resp, err := svc.Reschedule(context.Background(), id, newStart, nil)

	require.NoError(t, err)
	assert.Equal(t, newStart, resp.StartTime)
	assert.NotEqual(t, resp.CreatedAt, resp.UpdatedAt)
}

func TestScheduleService_Reschedule_NotFound(t *testing.T) {
	svc, d := newService(t)

	id := uuid.New()
	d.trm.PassThrough().Once()
	d.store.On("GetByID", mock.Anything, id).Return(nil, repo.ErrNotFound).Once()

	_, err := svc.Reschedule(context.Background(), id, created, nil)

	assert.ErrorIs(t, err, repo.ErrNotFound)
}

func TestScheduleService_Cancel(t *testing.T) {
	svc, d := newService(t)

	id := uuid.New()
	d.trm.PassThrough().Once()
	d.store.On("GetByID", mock.Anything, id).
		Return(&models.Schedule{ID: id, StartTime: created, CreatedAt: created, UpdatedAt: created}, nil).Once()
	d.store.On("Update", mock.Anything, mock.MatchedBy(func(s *models.Schedule) bool {
		return s.IsCancelled && s.CancellationReason != nil && *s.CancellationReason == "Gym flooded"
	})).Return(nil).Once()

	resp, err := svc.Cancel(context.Background(), id, " Gym flooded ")

	require.NoError(t, err)
	assert.True(t, resp.IsCancelled)
}

func TestScheduleService_RecordResult(t *testing.T) {
	svc, d := newService(t)

	id := uuid.New()
	us, them := 42, 38

	d.trm.PassThrough().Once()
	d.store.On("GetByID", mock.Anything, id).
		Return(&models.Schedule{ID: id, EventType: models.EventGame, CreatedAt: created, UpdatedAt: created}, nil).Once()
	d.store.On("Update", mock.Anything, mock.MatchedBy(func(s *models.Schedule) bool {
		return *s.Result == "win" && *s.TeamScore == 42 && *s.OpponentScore == 38
	})).Return(nil).Once()

	resp, err := svc.RecordResult(context.Background(), id, api.RecordResultRequest{
		Result: "win", TeamScore: &us, OpponentScore: &them,
	})

	require.NoError(t, err)
	assert.Equal(t, "win", *resp.Result)
}

func TestScheduleService_RecordResult_Invalid(t *testing.T) {
	svc, d := newService(t)

	_, err := svc.RecordResult(context.Background(), uuid.New(), api.RecordResultRequest{Result: "draw"})

	assert.ErrorIs(t, err, schedule.ErrInvalidResult)
	d.store.AssertNotCalled(t, "GetByID", mock.Anything, mock.Anything)
}

func TestScheduleService_List_UpcomingOnly(t *testing.T) {
	svc, d := newService(t)

	teamID := uuid.New()
	pastEnd := created.Add(-time.Hour)
	d.trm.PassThrough().Once()
	d.teams.On("GetByID", mock.Anything, teamID).Return(&models.Team{ID: teamID}, nil).Once()
	d.store.On("ListByTeams", mock.Anything, []uuid.UUID{teamID}).Return([]*models.Schedule{
		{ID: uuid.New(), Location: "later", StartTime: created.Add(48 * time.Hour)},
		{ID: uuid.New(), Location: "past", StartTime: created.Add(-3 * time.Hour), EndTime: &pastEnd},
		{ID: uuid.New(), Location: "sooner", StartTime: created.Add(24 * time.Hour)},
	}, nil).Once()

	resp, err := svc.List(context.Background(), teamID, true)

	require.NoError(t, err)
	require.Len(t, resp.Schedules, 2)
	assert.Equal(t, "sooner", resp.Schedules[0].Location)
	assert.Equal(t, "later", resp.Schedules[1].Location)
}

package team_test

import (
	"context"
	"errors"
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
	"express-hub/internal/service/team"

	"github.com/google/uuid"
	"github.com/jonboulle/clockwork"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

var now = time.Date(2025, time.January, 5, 9, 30, 0, 0, time.UTC)

func discard() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func codes(list ...string) func() (string, error) {
	i := 0
	return func() (string, error) {
		c := list[i%len(list)]
		i++
		return c, nil
	}
}

func TestTeamService_Create_Success(t *testing.T) {
	ctx := context.Background()

	mockTeams := mocks.NewTeamStore(t)
	mockTRM := mocks.NewMockManager(t)
	mockTRM.PassThrough().Once()

	coach := "Coach Carter"
	mockTeams.On("Create", mock.Anything, mock.MatchedBy(func(tm *models.Team) bool {
		return tm.Name == "Express 12U" &&
			tm.AgeGroup == "12U" &&
			tm.Season == models.DefaultSeason &&
			tm.PrimaryColor == models.DefaultPrimaryColor &&
			tm.SecondaryColor == "#000000" &&
			tm.TeamCode == "AB12CD" &&
			tm.CoachName != nil && *tm.CoachName == coach &&
			tm.CreatedAt.Equal(now)
	})).Return(nil).Once()

	svc := team.NewTeamService(mockTRM, mockTeams, clockwork.NewFakeClockAt(now), events.Noop{}, discard()).
		WithCodeGenerator(codes("AB12CD"))

	resp, err := svc.Create(ctx, api.CreateTeamRequest{
		Name:           " Express 12U ",
		AgeGroup:       "12U",
		SecondaryColor: "#000000",
		CoachName:      &coach,
	})

	require.NoError(t, err)
	assert.Equal(t, "Express 12U", resp.Name)
	assert.Equal(t, "AB12CD", resp.TeamCode)
	assert.Equal(t, models.DefaultSeason, resp.Season)
	assert.NotEmpty(t, resp.ID)
}

func TestTeamService_Create_RetriesOnCodeCollision(t *testing.T) {
	mockTeams := mocks.NewTeamStore(t)
	mockTRM := mocks.NewMockManager(t)
	mockTRM.PassThrough().Twice()

	mockTeams.On("Create", mock.Anything, mock.MatchedBy(func(tm *models.Team) bool {
		return tm.TeamCode == "TAKEN1"
	})).Return(repo.ErrTeamCodeExists).Once()
	mockTeams.On("Create", mock.Anything, mock.MatchedBy(func(tm *models.Team) bool {
		return tm.TeamCode == "FRESH2"
	})).Return(nil).Once()

	svc := team.NewTeamService(mockTRM, mockTeams, clockwork.NewFakeClockAt(now), events.Noop{}, discard()).
		WithCodeGenerator(codes("TAKEN1", "FRESH2"))

	resp, err := svc.Create(context.Background(), api.CreateTeamRequest{Name: "Express", AgeGroup: "14U"})

	require.NoError(t, err)
	assert.Equal(t, "FRESH2", resp.TeamCode)
}

func TestTeamService_Create_GivesUpAfterRepeatedCollisions(t *testing.T) {
	mockTeams := mocks.NewTeamStore(t)
	mockTRM := mocks.NewMockManager(t)
	mockTRM.PassThrough().Times(5)

	mockTeams.On("Create", mock.Anything, mock.Anything).Return(repo.ErrTeamCodeExists).Times(5)

	svc := team.NewTeamService(mockTRM, mockTeams, clockwork.NewFakeClockAt(now), events.Noop{}, discard()).
		WithCodeGenerator(codes("TAKEN1"))

	resp, err := svc.Create(context.Background(), api.CreateTeamRequest{Name: "Express", AgeGroup: "14U"})

	assert.Nil(t, resp)
	assert.ErrorIs(t, err, repo.ErrTeamCodeExists)
}

func TestTeamService_Create_MissingName(t *testing.T) {
	mockTeams := mocks.NewTeamStore(t)
	svc := team.NewTeamService(mocks.NewMockManager(t), mockTeams, clockwork.NewFakeClockAt(now), events.Noop{}, discard())

	_, err := svc.Create(context.Background(), api.CreateTeamRequest{Name: "  ", AgeGroup: "12U"})

	assert.ErrorIs(t, err, team.ErrMissingName)
	assert.ErrorIs(t, err, service.ErrValidation)
	mockTeams.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestTeamService_GetByCode_Normalizes(t *testing.T) {
	mockTeams := mocks.NewTeamStore(t)
	teamID := uuid.New()

	mockTeams.On("GetByCode", mock.Anything, "AB12CD").
		Return(&models.Team{ID: teamID, Name: "Express", TeamCode: "AB12CD"}, nil).Once()

	svc := team.NewTeamService(mocks.NewMockManager(t), mockTeams, clockwork.NewFakeClockAt(now), events.Noop{}, discard())

	resp, err := svc.GetByCode(context.Background(), "  ab12cd ")

	require.NoError(t, err)
	assert.Equal(t, teamID.String(), resp.ID)
}

func TestTeamService_GetByCode_MalformedIsNotFound(t *testing.T) {
	mockTeams := mocks.NewTeamStore(t)
	svc := team.NewTeamService(mocks.NewMockManager(t), mockTeams, clockwork.NewFakeClockAt(now), events.Noop{}, discard())

	_, err := svc.GetByCode(context.Background(), "AB-12")

	assert.ErrorIs(t, err, repo.ErrNotFound)
	mockTeams.AssertNotCalled(t, "GetByCode", mock.Anything, mock.Anything)
}

func TestTeamService_List(t *testing.T) {
	mockTeams := mocks.NewTeamStore(t)
	mockTeams.On("List", mock.Anything).Return([]*models.Team{
		{ID: uuid.New(), Name: "A"},
		{ID: uuid.New(), Name: "B"},
	}, nil).Once()

	svc := team.NewTeamService(mocks.NewMockManager(t), mockTeams, clockwork.NewFakeClockAt(now), events.Noop{}, discard())

	resp, err := svc.List(context.Background())

	require.NoError(t, err)
	require.Len(t, resp.Teams, 2)
	assert.Equal(t, "A", resp.Teams[0].Name)
}

func TestTeamService_Delete_CascadesInOneTransaction(t *testing.T) {
	ctx := context.Background()
	teamID := uuid.New()

	mockTeams := mocks.NewTeamStore(t)
	announcements := mocks.NewTeamChildRemover(t)
	players := mocks.NewTeamChildRemover(t)
	publisher := mocks.NewPublisher(t)

	mockTRM := &mocks.MockManager{}
	mockTRM.Test(t)
	t.Cleanup(func() { mockTRM.AssertExpectations(t) })

	var order []string
	mockTRM.On("Do", ctx, mock.AnythingOfType("func(context.Context) error")).
		Run(func(args mock.Arguments) {
			fn := args.Get(1).(func(context.Context) error)
			assert.NoError(t, fn(ctx))
		}).
		Return(nil).Once()

	mockTeams.On("GetByID", ctx, teamID).Return(&models.Team{ID: teamID}, nil).Once()
	announcements.On("DeleteByTeam", ctx, teamID).
		Run(func(mock.Arguments) { order = append(order, "announcements") }).Return(nil).Once()
	players.On("DeleteByTeam", ctx, teamID).
		Run(func(mock.Arguments) { order = append(order, "players") }).Return(nil).Once()
	mockTeams.On("Delete", ctx, teamID).
		Run(func(mock.Arguments) { order = append(order, "team") }).Return(nil).Once()
	publisher.On("Publish", ctx, mock.MatchedBy(func(c events.Change) bool {
		return c.TeamID == teamID && c.Action == events.ActionDeleted
	})).Return(nil).Once()

	svc := team.NewTeamService(mockTRM, mockTeams, clockwork.NewFakeClockAt(now), publisher, discard(), announcements, players)

	err := svc.Delete(ctx, teamID)

	require.NoError(t, err)
	assert.Equal(t, []string{"announcements", "players", "team"}, order)
}

func TestTeamService_Delete_ChildFailureStops(t *testing.T) {
	teamID := uuid.New()
	dbErr := errors.New("lock timeout")

	mockTeams := mocks.NewTeamStore(t)
	announcements := mocks.NewTeamChildRemover(t)
	players := mocks.NewTeamChildRemover(t)
	publisher := mocks.NewPublisher(t)
	mockTRM := mocks.NewMockManager(t)
	mockTRM.PassThrough().Once()

	mockTeams.On("GetByID", mock.Anything, teamID).Return(&models.Team{ID: teamID}, nil).Once()
	announcements.On("DeleteByTeam", mock.Anything, teamID).Return(dbErr).Once()

	svc := team.NewTeamService(mockTRM, mockTeams, clockwork.NewFakeClockAt(now), publisher, discard(), announcements, players)

	err := svc.Delete(context.Background(), teamID)

	assert.ErrorIs(t, err, dbErr)
	players.AssertNotCalled(t, "DeleteByTeam", mock.Anything, mock.Anything)
	mockTeams.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
	publisher.AssertNotCalled(t, "Publish", mock.Anything, mock.Anything)
}

func TestTeamService_Delete_NotFound(t *testing.T) {
	teamID := uuid.New()

	mockTeams := mocks.NewTeamStore(t)
	mockTRM := mocks.NewMockManager(t)
	mockTRM.PassThrough().Once()
	mockTeams.On("GetByID", mock.Anything, teamID).Return(nil, repo.ErrNotFound).Once()

	svc := team.NewTeamService(mockTRM, mockTeams, clockwork.NewFakeClockAt(now), events.Noop{}, discard())

	err := svc.Delete(context.Background(), teamID)

	assert.ErrorIs(t, err, repo.ErrNotFound)
}

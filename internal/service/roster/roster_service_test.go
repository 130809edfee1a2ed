package roster_test

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
	"express-hub/internal/service/roster"

	"github.com/google/uuid"
	"github.com/jonboulle/clockwork"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

var now = time.Date(2025, time.February, 1, 12, 0, 0, 0, time.UTC)

func newService(t *testing.T) (*roster.RosterService, *mocks.PlayerStore, *mocks.TeamGetter, *mocks.MockManager) {
	players := mocks.NewPlayerStore(t)
	teams := mocks.NewTeamGetter(t)
	trm := mocks.NewMockManager(t)
	log := slog.New(slog.NewTextHandler(io.Discard, nil))
	return roster.NewRosterService(trm, players, teams, clockwork.NewFakeClockAt(now), events.Noop{}, log), players, teams, trm
}

func TestRosterService_AddPlayer_Success(t *testing.T) {
	svc, players, teams, trm := newService(t)

	teamID := uuid.New()
	trm.PassThrough().Once()
	teams.On("GetByID", mock.Anything, teamID).Return(&models.Team{ID: teamID}, nil).Once()
	players.On("Create", mock.Anything, mock.MatchedBy(func(p *models.Player) bool {
		return p.TeamID == teamID &&
			p.FirstName == "Maya" &&
			p.LastName == "Lopez" &&
			p.JerseyNumber == "23" &&
			p.Position == models.DefaultPosition &&
			p.IsActive &&
			p.CreatedAt.Equal(now)
	})).Return(nil).Once()

	resp, err := svc.AddPlayer(context.Background(), teamID, api.CreatePlayerRequest{
		FirstName:    "Maya",
		LastName:     "Lopez",
		JerseyNumber: "23",
	})

	require.NoError(t, err)
	assert.Equal(t, "Maya L.", resp.DisplayName)
	assert.Equal(t, "Guard", resp.Position)
	assert.True(t, resp.IsActive)
}

func TestRosterService_AddPlayer_Incomplete(t *testing.T) {
	svc, players, _, _ := newService(t)

	_, err := svc.AddPlayer(context.Background(), uuid.New(), api.CreatePlayerRequest{
		FirstName:    "Maya",
		LastName:     " ",
		JerseyNumber: "23",
	})

	assert.ErrorIs(t, err, roster.ErrIncompletePlayer)
	assert.ErrorIs(t, err, service.ErrValidation)
	players.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestRosterService_AddPlayer_UnknownTeam(t *testing.T) {
	svc, _, teams, trm := newService(t)

	teamID := uuid.New()
	trm.PassThrough().Once()
	teams.On("GetByID", mock.Anything, teamID).Return(nil, repo.ErrNotFound).Once()

	_, err := svc.AddPlayer(context.Background(), teamID, api.CreatePlayerRequest{
		FirstName: "Maya", LastName: "Lopez", JerseyNumber: "23",
	})

	assert.ErrorIs(t, err, repo.ErrNotFound)
}

func TestRosterService_List_SortedByJersey(t *testing.T) {
	svc, players, teams, trm := newService(t)

	teamID := uuid.New()
	trm.PassThrough().Once()
	teams.On("GetByID", mock.Anything, teamID).Return(&models.Team{ID: teamID}, nil).Once()
	players.On("ListByTeam", mock.Anything, teamID, true).Return([]*models.Player{
		{ID: uuid.New(), FirstName: "Ana", LastName: "Zed", JerseyNumber: "12"},
		{ID: uuid.New(), FirstName: "Bo", LastName: "Young", JerseyNumber: "4"},
		{ID: uuid.New(), FirstName: "Cy", LastName: "Adams", JerseyNumber: "12"},
		{ID: uuid.New(), FirstName: "Di", LastName: "Xu", JerseyNumber: "00"},
	}, nil).Once()

	resp, err := svc.List(context.Background(), teamID, true)

	require.NoError(t, err)
	require.Len(t, resp.Players, 4)
	assert.Equal(t, "00", resp.Players[0].JerseyNumber)
	assert.Equal(t, "4", resp.Players[1].JerseyNumber)
	assert.Equal(t, "Adams", resp.Players[2].LastName)
	assert.Equal(t, "Zed", resp.Players[3].LastName)
}

func TestRosterService_SetActive(t *testing.T) {
	svc, players, _, trm := newService(t)

	playerID := uuid.New()
	trm.PassThrough().Once()
	players.On("GetByID", mock.Anything, playerID).
		Return(&models.Player{ID: playerID, FirstName: "Maya", LastName: "Lopez", IsActive: true}, nil).Once()
	players.On("SetIsActive", mock.Anything, playerID, false, now).Return(nil).Once()

	resp, err := svc.SetActive(context.Background(), playerID, false)

	require.NoError(t, err)
	assert.False(t, resp.IsActive)
}

func TestRosterService_SetActive_Unchanged(t *testing.T) {
	svc, players, _, trm := newService(t)

	playerID := uuid.New()
	trm.PassThrough().Once()
	players.On("GetByID", mock.Anything, playerID).
		Return(&models.Player{ID: playerID, FirstName: "Maya", IsActive: true}, nil).Once()

	resp, err := svc.SetActive(context.Background(), playerID, true)

	require.NoError(t, err)
	assert.True(t, resp.IsActive)
	players.AssertNotCalled(t, "SetIsActive", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

package player_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"express-hub/internal/http/api"
	"express-hub/internal/http/handlers"
	"express-hub/internal/http/handlers/mocks"
	"express-hub/internal/http/handlers/player"
	repo "express-hub/internal/repository"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestPlayerHandler_Add_Success(t *testing.T) {
	mockService := mocks.NewMockRosterService(t)
	h := player.NewPlayerHandler(handlers.NewLogger(), mockService)

	teamID := uuid.New()
	in := api.CreatePlayerRequest{FirstName: "Maya", LastName: "Lopez", JerseyNumber: "23"}
	body, _ := json.Marshal(in)
	req := handlers.WithURLParams(httptest.NewRequest(http.MethodPost, "/teams/"+teamID.String()+"/players", bytes.NewReader(body)),
		"teamID", teamID.String())

	mockService.On("AddPlayer", mock.Anything, teamID, in).
		Return(&api.PlayerSchema{ID: uuid.NewString(), DisplayName: "Maya L."}, nil).Once()

	w := httptest.NewRecorder()
	h.Add(w, req)

	assert.Equal(t, http.StatusCreated, w.Code)
}

func TestPlayerHandler_Add_InvalidEmail(t *testing.T) {
	mockService := mocks.NewMockRosterService(t)
	h := player.NewPlayerHandler(handlers.NewLogger(), mockService)

	teamID := uuid.New()
	email := "not-an-email"
	body, _ := json.Marshal(api.CreatePlayerRequest{FirstName: "Maya", LastName: "Lopez", JerseyNumber: "23", ParentEmail: &email})
	req := handlers.WithURLParams(httptest.NewRequest(http.MethodPost, "/teams/"+teamID.String()+"/players", bytes.NewReader(body)),
		"teamID", teamID.String())

	w := httptest.NewRecorder()
	h.Add(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	resp := handlers.DecodeErrorResponse(t, w.Body)
	assert.Equal(t, api.ErrValidationErr, resp.Error.Code)
}

func TestPlayerHandler_List_IncludeInactive(t *testing.T) {
	mockService := mocks.NewMockRosterService(t)
	h := player.NewPlayerHandler(handlers.NewLogger(), mockService)

	teamID := uuid.New()
	req := handlers.WithURLParams(httptest.NewRequest(http.MethodGet, "/teams/"+teamID.String()+"/players?active=false", nil),
		"teamID", teamID.String())

	mockService.On("List", mock.Anything, teamID, false).
		Return(&api.RosterResponse{TeamID: teamID.String()}, nil).Once()

	w := httptest.NewRecorder()
	h.List(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestPlayerHandler_SetActive_RequiresFlag(t *testing.T) {
	mockService := mocks.NewMockRosterService(t)
	h := player.NewPlayerHandler(handlers.NewLogger(), mockService)

	playerID := uuid.New()
	req := handlers.WithURLParams(httptest.NewRequest(http.MethodPatch, "/players/"+playerID.String()+"/active", bytes.NewReader([]byte(`{}`))),
		"playerID", playerID.String())

	w := httptest.NewRecorder()
	h.SetActive(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	mockService.AssertNotCalled(t, "SetActive", mock.Anything, mock.Anything, mock.Anything)
}

func TestPlayerHandler_SetActive_NotFound(t *testing.T) {
	mockService := mocks.NewMockRosterService(t)
	h := player.NewPlayerHandler(handlers.NewLogger(), mockService)

	playerID := uuid.New()
	req := handlers.WithURLParams(httptest.NewRequest(http.MethodPatch, "/players/"+playerID.String()+"/active", bytes.NewReader([]byte(`{"is_active":false}`))),
		"playerID", playerID.String())
	mockService.On("SetActive", mock.Anything, playerID, false).Return(nil, repo.ErrNotFound).Once()

	w := httptest.NewRecorder()
	h.SetActive(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

package event_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"express-hub/internal/http/api"
	"express-hub/internal/http/handlers"
	"express-hub/internal/http/handlers/event"
	"express-hub/internal/http/handlers/mocks"
	repo "express-hub/internal/repository"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestEventHandler_Create_Success(t *testing.T) {
	mockService := mocks.NewMockEventService(t)
	h := event.NewEventHandler(handlers.NewLogger(), mockService)

	teamID := uuid.New()
	body, _ := json.Marshal(api.CreateEventRequest{Title: "Team dinner", StartDate: time.Now().Add(24 * time.Hour)})
	req := handlers.WithURLParams(httptest.NewRequest(http.MethodPost, "/teams/"+teamID.String()+"/events", bytes.NewReader(body)),
		"teamID", teamID.String())

	mockService.On("Create", mock.Anything, teamID, mock.AnythingOfType("api.CreateEventRequest")).
		Return(&api.EventSchema{ID: uuid.NewString(), Title: "Team dinner"}, nil).Once()

	w := httptest.NewRecorder()
	h.Create(w, req)

	assert.Equal(t, http.StatusCreated, w.Code)
}

func TestEventHandler_Create_MissingTitle(t *testing.T) {
	mockService := mocks.NewMockEventService(t)
	h := event.NewEventHandler(handlers.NewLogger(), mockService)

	teamID := uuid.New()
	req := handlers.WithURLParams(httptest.NewRequest(http.MethodPost, "/teams/"+teamID.String()+"/events",
		bytes.NewReader([]byte(`{"start_date":"2026-10-20T18:00:00Z"}`))), "teamID", teamID.String())

	w := httptest.NewRecorder()
	h.Create(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	resp := handlers.DecodeErrorResponse(t, w.Body)
	assert.Equal(t, api.ErrValidationErr, resp.Error.Code)
}

func TestEventHandler_Create_InvalidTeamID(t *testing.T) {
	mockService := mocks.NewMockEventService(t)
	h := event.NewEventHandler(handlers.NewLogger(), mockService)

	req := handlers.WithURLParams(httptest.NewRequest(http.MethodPost, "/teams/nope/events", nil), "teamID", "nope")

	w := httptest.NewRecorder()
	h.Create(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestEventHandler_List_UnknownTeam(t *testing.T) {
	mockService := mocks.NewMockEventService(t)
	h := event.NewEventHandler(handlers.NewLogger(), mockService)

	teamID := uuid.New()
	req := handlers.WithURLParams(httptest.NewRequest(http.MethodGet, "/teams/"+teamID.String()+"/events", nil),
		"teamID", teamID.String())
	mockService.On("List", mock.Anything, teamID).Return(nil, repo.ErrNotFound).Once()

	w := httptest.NewRecorder()
	h.List(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
	resp := handlers.DecodeErrorResponse(t, w.Body)
	assert.Equal(t, api.ErrCodeNotFound, resp.Error.Code)
}

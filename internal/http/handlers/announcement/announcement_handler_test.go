package announcement_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"express-hub/internal/http/api"
	"express-hub/internal/http/handlers"
	"express-hub/internal/http/handlers/announcement"
	"express-hub/internal/http/handlers/mocks"
	"express-hub/internal/models"
	repo "express-hub/internal/repository"
	"express-hub/internal/service"
	announcementsvc "express-hub/internal/service/announcement"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func createRequest(t *testing.T, teamID string, in api.CreateAnnouncementRequest) *http.Request {
	t.Helper()
	body, err := json.Marshal(in)
	require.NoError(t, err)
	req := httptest.NewRequest(http.MethodPost, "/teams/"+teamID+"/announcements", bytes.NewReader(body))
	return handlers.WithURLParams(req, "teamID", teamID)
}

func TestAnnouncementHandler_Create_Success(t *testing.T) {
	mockService := mocks.NewMockAnnouncementService(t)
	h := announcement.NewAnnouncementHandler(handlers.NewLogger(), mockService)

	teamID := uuid.New()
	in := api.CreateAnnouncementRequest{Title: "Practice moved", Message: "7pm at Main Gym", Priority: "high"}
	expected := &api.AnnouncementSchema{
		ID: uuid.NewString(), TeamID: teamID.String(), Title: in.Title, Message: in.Message,
		Priority: "high", Category: "general",
	}
	mockService.On("Compose", mock.Anything, teamID, in).Return(expected, nil).Once()

	w := httptest.NewRecorder()
	h.Create(w, createRequest(t, teamID.String(), in))

	assert.Equal(t, http.StatusCreated, w.Code)
	var resp api.AnnouncementResponse
	require.NoError(t, json.NewDecoder(w.Body).Decode(&resp))
	assert.Equal(t, *expected, resp.Announcement)
	assert.False(t, resp.Announcement.IsRead)
}

func TestAnnouncementHandler_Create_EmptyTitleRejected(t *testing.T) {
	mockService := mocks.NewMockAnnouncementService(t)
	h := announcement.NewAnnouncementHandler(handlers.NewLogger(), mockService)

	teamID := uuid.New()
	mockService.On("Compose", mock.Anything, teamID, mock.Anything).Return(nil, announcementsvc.ErrEmptyTitle).Once()

	w := httptest.NewRecorder()
	h.Create(w, createRequest(t, teamID.String(), api.CreateAnnouncementRequest{Title: "  ", Message: "m"}))

	assert.Equal(t, http.StatusBadRequest, w.Code)
	resp := handlers.DecodeErrorResponse(t, w.Body)
	assert.Equal(t, api.ErrValidationErr, resp.Error.Code)
	assert.Contains(t, resp.Error.Message, "title must not be empty")
}

func TestAnnouncementHandler_Create_NoTeamSelected(t *testing.T) {
	mockService := mocks.NewMockAnnouncementService(t)
	h := announcement.NewAnnouncementHandler(handlers.NewLogger(), mockService)

	mockService.On("Compose", mock.Anything, uuid.Nil, mock.Anything).Return(nil, service.ErrNoTeamSelected).Once()

	w := httptest.NewRecorder()
	h.Create(w, createRequest(t, uuid.Nil.String(), api.CreateAnnouncementRequest{Title: "t", Message: "m"}))

	assert.Equal(t, http.StatusBadRequest, w.Code)
	resp := handlers.DecodeErrorResponse(t, w.Body)
	assert.Equal(t, api.ErrCodeNoTeamSelected, resp.Error.Code)
}

func TestAnnouncementHandler_List_PassesCategory(t *testing.T) {
	mockService := mocks.NewMockAnnouncementService(t)
	h := announcement.NewAnnouncementHandler(handlers.NewLogger(), mockService)

	teamID := uuid.New()
	req := httptest.NewRequest(http.MethodGet, "/teams/"+teamID.String()+"/announcements?category=travel", nil)
	req = handlers.WithURLParams(req, "teamID", teamID.String())

	mockService.On("List", mock.Anything, teamID, models.CategoryTravel).
		Return(&api.AnnouncementListResponse{TeamID: teamID.String(), UnreadCount: 1}, nil).Once()

	w := httptest.NewRecorder()
	h.List(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	var resp api.AnnouncementListResponse
	require.NoError(t, json.NewDecoder(w.Body).Decode(&resp))
	assert.Equal(t, 1, resp.UnreadCount)
}

func TestAnnouncementHandler_View_MarksRead(t *testing.T) {
	mockService := mocks.NewMockAnnouncementService(t)
	h := announcement.NewAnnouncementHandler(handlers.NewLogger(), mockService)

	id := uuid.New()
	req := handlers.WithURLParams(httptest.NewRequest(http.MethodGet, "/announcements/"+id.String(), nil),
		"announcementID", id.String())

	mockService.On("View", mock.Anything, id).
		Return(&api.AnnouncementSchema{ID: id.String(), IsRead: true}, nil).Once()

	w := httptest.NewRecorder()
	h.View(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	var resp api.AnnouncementResponse
	require.NoError(t, json.NewDecoder(w.Body).Decode(&resp))
	assert.True(t, resp.Announcement.IsRead)
}

func TestAnnouncementHandler_View_NotFound(t *testing.T) {
	mockService := mocks.NewMockAnnouncementService(t)
	h := announcement.NewAnnouncementHandler(handlers.NewLogger(), mockService)

	id := uuid.New()
	req := handlers.WithURLParams(httptest.NewRequest(http.MethodGet, "/announcements/"+id.String(), nil),
		"announcementID", id.String())

	mockService.On("View", mock.Anything, id).Return(nil, repo.ErrNotFound).Once()

	w := httptest.NewRecorder()
	h.View(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

package push_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"express-hub/internal/clients/pushgw"
	"express-hub/internal/http/api"
	"express-hub/internal/http/handlers"
	"express-hub/internal/http/handlers/mocks"
	"express-hub/internal/http/handlers/push"
	"express-hub/internal/models"
	pushsvc "express-hub/internal/service/push"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestPushHandler_Send_Success(t *testing.T) {
	mockService := mocks.NewMockPushService(t)
	h := push.NewPushHandler(handlers.NewLogger(), mockService)

	teamID := uuid.New()
	body, _ := json.Marshal(api.SendPushRequest{
		TeamID: teamID.String(),
		Title:  "Gym closed",
		Body:   "No practice tonight",
		Type:   "announcement",
	})
	req := httptest.NewRequest(http.MethodPost, "/push/send", bytes.NewReader(body))

	mockService.On("Send", mock.Anything, pushsvc.Notification{
		TeamID: teamID,
		Title:  "Gym closed",
		Body:   "No practice tonight",
		Type:   models.NotificationAnnouncement,
	}).Return(&api.PushResponse{TeamID: teamID.String(), Type: "announcement", Recipients: 18}, nil).Once()

	w := httptest.NewRecorder()
	h.Send(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	var resp api.PushResponse
	require.NoError(t, json.NewDecoder(w.Body).Decode(&resp))
	assert.Equal(t, 18, resp.Recipients)
}

func TestPushHandler_Send_InvalidType(t *testing.T) {
	mockService := mocks.NewMockPushService(t)
	h := push.NewPushHandler(handlers.NewLogger(), mockService)

	body, _ := json.Marshal(api.SendPushRequest{
		TeamID: uuid.NewString(), Title: "t", Body: "b", Type: "schedule",
	})
	req := httptest.NewRequest(http.MethodPost, "/push/send", bytes.NewReader(body))

	w := httptest.NewRecorder()
	h.Send(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	resp := handlers.DecodeErrorResponse(t, w.Body)
	assert.Equal(t, api.ErrValidationErr, resp.Error.Code)
	mockService.AssertNotCalled(t, "Send", mock.Anything, mock.Anything)
}

func TestPushHandler_Send_GatewayFailureSurfacesReason(t *testing.T) {
	mockService := mocks.NewMockPushService(t)
	h := push.NewPushHandler(handlers.NewLogger(), mockService)

	body, _ := json.Marshal(api.SendPushRequest{
		TeamID: uuid.NewString(), Title: "t", Body: "b", Type: "game_reminder",
	})
	req := httptest.NewRequest(http.MethodPost, "/push/send", bytes.NewReader(body))

	gwErr := &pushgw.ServerError{StatusCode: http.StatusBadRequest, Message: "No device tokens"}
	mockService.On("Send", mock.Anything, mock.Anything).
		Return(nil, fmt.Errorf("%w: %w", pushsvc.ErrPushFailed, gwErr)).Once()

	w := httptest.NewRecorder()
	h.Send(w, req)

	assert.Equal(t, http.StatusBadGateway, w.Code)
	resp := handlers.DecodeErrorResponse(t, w.Body)
	assert.Equal(t, api.ErrCodePushFailed, resp.Error.Code)
	assert.Contains(t, resp.Error.Message, "No device tokens")
}

func TestPushHandler_SendAnnouncement(t *testing.T) {
	mockService := mocks.NewMockPushService(t)
	h := push.NewPushHandler(handlers.NewLogger(), mockService)

	id := uuid.New()
	req := handlers.WithURLParams(httptest.NewRequest(http.MethodPost, "/push/announcements/"+id.String(), nil),
		"announcementID", id.String())

	mockService.On("SendAnnouncement", mock.Anything, id).
		Return(&api.PushResponse{Type: "announcement", Recipients: 4}, nil).Once()

	w := httptest.NewRecorder()
	h.SendAnnouncement(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestPushHandler_SendSchedule_Kinds(t *testing.T) {
	tests := []struct {
		kind   string
		method string
	}{
		{kind: "change", method: "SendScheduleChange"},
		{kind: "game-reminder", method: "SendGameReminder"},
		{kind: "practice-reminder", method: "SendPracticeReminder"},
	}

	for _, tt := range tests {
		t.Run(tt.kind, func(t *testing.T) {
			mockService := mocks.NewMockPushService(t)
			h := push.NewPushHandler(handlers.NewLogger(), mockService)

			id := uuid.New()
			req := handlers.WithURLParams(
				httptest.NewRequest(http.MethodPost, "/push/schedules/"+id.String()+"/"+tt.kind, nil),
				"scheduleID", id.String(), "kind", tt.kind,
			)
			mockService.On(tt.method, mock.Anything, id).Return(&api.PushResponse{Recipients: 2}, nil).Once()

			w := httptest.NewRecorder()
			h.SendSchedule(w, req)

			assert.Equal(t, http.StatusOK, w.Code)
		})
	}
}

func TestPushHandler_SendSchedule_UnknownKind(t *testing.T) {
	mockService := mocks.NewMockPushService(t)
	h := push.NewPushHandler(handlers.NewLogger(), mockService)

	id := uuid.New()
	req := handlers.WithURLParams(httptest.NewRequest(http.MethodPost, "/push/schedules/"+id.String()+"/weather", nil),
		"scheduleID", id.String(), "kind", "weather")

	w := httptest.NewRecorder()
	h.SendSchedule(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestPushHandler_SendSchedule_WrongEventType(t *testing.T) {
	mockService := mocks.NewMockPushService(t)
	h := push.NewPushHandler(handlers.NewLogger(), mockService)

	id := uuid.New()
	req := handlers.WithURLParams(httptest.NewRequest(http.MethodPost, "/push/schedules/"+id.String()+"/game-reminder", nil),
		"scheduleID", id.String(), "kind", "game-reminder")
	mockService.On("SendGameReminder", mock.Anything, id).Return(nil, pushsvc.ErrNotAGame).Once()

	w := httptest.NewRecorder()
	h.SendSchedule(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	resp := handlers.DecodeErrorResponse(t, w.Body)
	assert.Equal(t, api.ErrValidationErr, resp.Error.Code)
}

func TestPushHandler_History(t *testing.T) {
	mockService := mocks.NewMockPushService(t)
	h := push.NewPushHandler(handlers.NewLogger(), mockService)

	teamID := uuid.New()
	req := handlers.WithURLParams(httptest.NewRequest(http.MethodGet, "/teams/"+teamID.String()+"/push/dispatches", nil),
		"teamID", teamID.String())
	mockService.On("History", mock.Anything, teamID).Return(&api.DispatchListResponse{
		TeamID:     teamID.String(),
		Dispatches: []api.DispatchSchema{{ID: uuid.NewString(), Type: "announcement", Recipients: 3}},
	}, nil).Once()

	w := httptest.NewRecorder()
	h.History(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	var resp api.DispatchListResponse
	require.NoError(t, json.NewDecoder(w.Body).Decode(&resp))
	assert.Len(t, resp.Dispatches, 1)
}

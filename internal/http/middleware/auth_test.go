package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"express-hub/internal/http/api"
	"express-hub/internal/http/handlers"
	mw "express-hub/internal/http/middleware"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	coachSecret  = "coach_secret"
	parentSecret = "parent_secret"
)

func sign(t *testing.T, secret, role string) string {
	t.Helper()
	tok := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"role": role,
		"exp":  time.Now().Add(time.Hour).Unix(),
	})
	s, err := tok.SignedString([]byte(secret))
	require.NoError(t, err)
	return s
}

func roleEcho() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		role, _ := r.Context().Value(mw.RoleKey).(string)
		_, _ = w.Write([]byte(role))
	})
}

func TestAuth(t *testing.T) {
	tests := []struct {
		name       string
		header     string
		wantStatus int
		wantRole   string
	}{
		{name: "coach", header: "Bearer " + sign(t, coachSecret, "coach"), wantStatus: http.StatusOK, wantRole: "coach"},
		{name: "parent", header: "Bearer " + sign(t, parentSecret, "parent"), wantStatus: http.StatusOK, wantRole: "parent"},
		{name: "missing", header: "", wantStatus: http.StatusUnauthorized},
		{name: "parent secret claiming coach", header: "Bearer " + sign(t, parentSecret, "coach"), wantStatus: http.StatusUnauthorized},
		{name: "unknown secret", header: "Bearer " + sign(t, "other", "coach"), wantStatus: http.StatusUnauthorized},
		{name: "garbage", header: "Bearer nope", wantStatus: http.StatusUnauthorized},
	}

	h := mw.Auth(coachSecret, parentSecret)(roleEcho())

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/teams", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}

			w := httptest.NewRecorder()
			h.ServeHTTP(w, req)

			assert.Equal(t, tt.wantStatus, w.Code)
			if tt.wantStatus == http.StatusOK {
				assert.Equal(t, tt.wantRole, w.Body.String())
				return
			}
			resp := handlers.DecodeErrorResponse(t, w.Body)
			assert.Equal(t, api.ErrCodeUnauthorized, resp.Error.Code)
		})
	}
}

func TestCoachOnly(t *testing.T) {
	h := mw.Auth(coachSecret, parentSecret)(mw.CoachOnly(roleEcho()))

	t.Run("coach passes", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/teams", nil)
		req.Header.Set("Authorization", "Bearer "+sign(t, coachSecret, "coach"))

		w := httptest.NewRecorder()
		h.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("parent is forbidden", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/teams", nil)
		req.Header.Set("Authorization", "Bearer "+sign(t, parentSecret, "parent"))

		w := httptest.NewRecorder()
		h.ServeHTTP(w, req)

		assert.Equal(t, http.StatusForbidden, w.Code)
		resp := handlers.DecodeErrorResponse(t, w.Body)
		assert.Equal(t, api.ErrCodeForbidden, resp.Error.Code)
	})
}

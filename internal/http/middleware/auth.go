package middleware

import (
	"context"
	"net/http"
	"strings"

	"express-hub/internal/http/api"

	"github.com/go-chi/render"
	"github.com/golang-jwt/jwt/v5"
)

type key int

const RoleKey key = 1

const (
	RoleCoach  = "coach"
	RoleParent = "parent"
)

// Auth accepts a bearer token signed with either secret. The role claim
// must match the secret that verified it.
func Auth(coachSecret, parentSecret string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			tokenString := r.Header.Get("Authorization")

			if tokenString == "" {
				render.Status(r, http.StatusUnauthorized)
				render.JSON(w, r, api.Error(api.ErrCodeUnauthorized, "missing token"))
				return
			}

			tokenString, _ = strings.CutPrefix(tokenString, "Bearer ")

			if role, ok := validateToken(tokenString, coachSecret); ok && role == RoleCoach {
				next.ServeHTTP(w, r.WithContext(context.WithValue(r.Context(), RoleKey, RoleCoach)))
				return
			}

			if role, ok := validateToken(tokenString, parentSecret); ok && role == RoleParent {
				next.ServeHTTP(w, r.WithContext(context.WithValue(r.Context(), RoleKey, RoleParent)))
				return
			}

			render.Status(r, http.StatusUnauthorized)
			render.JSON(w, r, api.Error(api.ErrCodeUnauthorized, "invalid token"))
		})
	}
}

// CoachOnly must run after Auth.
func CoachOnly(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		role, _ := r.Context().Value(RoleKey).(string)

		if role != RoleCoach {
			render.Status(r, http.StatusForbidden)
			render.JSON(w, r, api.Error(api.ErrCodeForbidden, "coach role required"))
			return
		}

		next.ServeHTTP(w, r)
	})
}

func validateToken(tokenString, secret string) (string, bool) {
	if secret == "" {
		return "", false
	}

	token, err := jwt.Parse(tokenString, func(t *jwt.Token) (any, error) {
		return []byte(secret), nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))

	if err != nil || !token.Valid {
		return "", false
	}

	if claims, ok := token.Claims.(jwt.MapClaims); ok {
		roleVal, ok := claims["role"].(string)
		if !ok {
			return "", false
		}
		return roleVal, true
	}

	return "", false
}

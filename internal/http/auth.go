package httpapi

import (
	"context"
	"net/http"
	"strings"

	"github.com/DHBWLoerrach/LectureSchedulerBackend/internal/models"
	"github.com/DHBWLoerrach/LectureSchedulerBackend/internal/services"
)

type contextKey string

const ctxUser contextKey = "currentUser"

// WithAuth validates the bearer token and re-reads the user row on every
// request. A token whose identity claims no longer match the stored record
// is rejected, so tokens issued before a profile edit stop working.
func (s *Server) WithAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		auth := r.Header.Get("Authorization")
		if auth == "" || !strings.HasPrefix(auth, "Bearer ") {
			WriteFailure(w, http.StatusUnauthorized, "Unauthorized: No token provided")
			return
		}
		tokenStr := strings.TrimSpace(strings.TrimPrefix(auth, "Bearer "))
		claims, err := s.Tokens.ParseToken(tokenStr)
		if err != nil {
			WriteFailure(w, http.StatusUnauthorized, "Unauthorized: Invalid token")
			return
		}
		user := models.User{}
		if err := s.DB.Get(&user, `
SELECT id, username, password_hash, first_name, last_name, privilege_level, created_at, updated_at
FROM users WHERE id = $1
`, claims.UserID); err != nil {
			WriteFailure(w, http.StatusUnauthorized, "Unauthorized: User not found")
			return
		}
		if !claims.Matches(user) {
			WriteFailure(w, http.StatusUnauthorized, "Unauthorized: User details do not match")
			return
		}
		ctx := context.WithValue(r.Context(), ctxUser, user)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// CurrentUser returns the user record the auth guard attached.
func CurrentUser(r *http.Request) models.User {
	if user, ok := r.Context().Value(ctxUser).(models.User); ok {
		return user
	}
	return models.User{}
}

// RequireTopPrivilege gates dashboard-only routes.
func RequireTopPrivilege(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if CurrentUser(r).PrivilegeLevel != services.TopPrivilegeLevel {
			WriteFailure(w, http.StatusForbidden, "Not allowed")
			return
		}
		next.ServeHTTP(w, r)
	})
}

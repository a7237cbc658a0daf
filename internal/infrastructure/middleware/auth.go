package middleware

import (
	"encoding/json"
	"net/http"
	"strings"

	"aurum-admin-core/internal/domain"
	"aurum-admin-core/internal/ports"

	"github.com/rs/zerolog"
)

// BearerToken extracts the session token from an Authorization header, or
// "" when absent or malformed.
func BearerToken(r *http.Request) string {
	header := r.Header.Get("Authorization")
	if !strings.HasPrefix(header, "Bearer ") {
		return ""
	}
	return strings.TrimPrefix(header, "Bearer ")
}

// RequireSession resolves the bearer token against the session store and
// puts the administrator ID into the request context. Missing or unknown
// tokens get a 401.
func RequireSession(sessions ports.SessionStore, logger zerolog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token := BearerToken(r)
			if token == "" {
				unauthorized(w)
				return
			}

			adminID, err := sessions.Get(r.Context(), token)
			if err != nil {
				logger.Error().Err(err).Msg("Failed to look up session")
				unauthorized(w)
				return
			}
			if adminID == "" {
				unauthorized(w)
				return
			}

			ctx := domain.WithAdminID(r.Context(), adminID)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func unauthorized(w http.ResponseWriter) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusUnauthorized)
	json.NewEncoder(w).Encode(map[string]string{"error": "unauthorized"})
}

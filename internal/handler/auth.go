package handler

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/rnayak/carshare/internal/domain"
)

type contextKey string

// userContextKey holds the authenticated domain.User for protected routes.
const userContextKey contextKey = "user"

// requireUser is the bearer-token gate for protected routes.
// It resolves the token to a user on every request (the token is a
// long-lived credential, not a session) and injects the identity into the
// request context. Failures carry a WWW-Authenticate challenge.
func (s *Server) requireUser(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		token, err := bearerToken(r)
		if err != nil {
			unauthorized(w)
			return
		}

		user, err := s.auth.IdentityFromToken(r.Context(), token)
		if err != nil {
			if errors.Is(err, domain.ErrUnauthorized) {
				unauthorized(w)
				return
			}
			s.internalError(w, r, err)
			return
		}

		ctx := context.WithValue(r.Context(), userContextKey, user)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// userFromContext returns the user injected by requireUser.
func userFromContext(ctx context.Context) (domain.User, bool) {
	user, ok := ctx.Value(userContextKey).(domain.User)
	return user, ok
}

// bearerToken extracts the credential from an "Authorization: Bearer <token>"
// header. Any other scheme, or a missing or empty token, is an error.
func bearerToken(r *http.Request) (string, error) {
	auth := strings.TrimSpace(r.Header.Get("Authorization"))
	if auth == "" {
		return "", errors.New("missing authorization")
	}
	parts := strings.SplitN(auth, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return "", errors.New("invalid authorization")
	}
	token := strings.TrimSpace(parts[1])
	if token == "" {
		return "", errors.New("invalid authorization")
	}
	return token, nil
}

// unauthorized writes the 401 response with the bearer-scheme challenge.
func unauthorized(w http.ResponseWriter) {
	w.Header().Set("WWW-Authenticate", "Bearer")
	writeError(w, http.StatusUnauthorized, "unauthorized", "invalid or missing credentials")
}

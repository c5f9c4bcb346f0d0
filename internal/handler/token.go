package handler

import (
	"errors"
	"net/http"

	"github.com/rnayak/carshare/internal/domain"
)

// tokenResponse is the body returned by POST /auth/token.
// The access token is the authenticated username; see AuthServicer for why.
type tokenResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
}

// createToken handles POST /auth/token. Credentials arrive as form fields
// (username, password); a successful verification returns the opaque bearer
// credential the write endpoints accept.
func (s *Server) createToken(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		writeError(w, http.StatusBadRequest, "bad_request", "invalid form body")
		return
	}

	username := r.PostFormValue("username")
	password := r.PostFormValue("password")
	if username == "" || password == "" {
		writeError(w, http.StatusBadRequest, "bad_request", "username and password are required")
		return
	}

	user, err := s.auth.Authenticate(r.Context(), username, password)
	if err != nil {
		if errors.Is(err, domain.ErrUnauthorized) {
			writeError(w, http.StatusUnauthorized, "unauthorized", "username or password incorrect")
			return
		}
		s.internalError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, tokenResponse{
		AccessToken: user.Username,
		TokenType:   "bearer",
	})
}

package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/rnayak/carshare/internal/auth"
	"github.com/rnayak/carshare/internal/domain"
	"github.com/rnayak/carshare/internal/repo"
)

// AuthService validates credentials against the user store.
//
// The bearer token accepted by IdentityFromToken is the literal username —
// a long-lived opaque credential looked up on every call, with no issuance,
// expiry, or revocation. This mirrors the wire contract of the system it
// replaces and is not a security mechanism.
type AuthService struct {
	users repo.UserRepo
}

// NewAuthService constructs an AuthService backed by the provided UserRepo.
func NewAuthService(users repo.UserRepo) *AuthService {
	return &AuthService{users: users}
}

// IdentityFromToken resolves a presented bearer token to a user.
// An empty token or one matching no account returns domain.ErrUnauthorized.
func (s *AuthService) IdentityFromToken(ctx context.Context, token string) (domain.User, error) {
	if token == "" {
		return domain.User{}, fmt.Errorf("service.AuthService.IdentityFromToken: %w", domain.ErrUnauthorized)
	}
	user, err := s.users.GetByUsername(ctx, token)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return domain.User{}, fmt.Errorf("service.AuthService.IdentityFromToken: %w", domain.ErrUnauthorized)
		}
		return domain.User{}, fmt.Errorf("service.AuthService.IdentityFromToken: %w", err)
	}
	return user, nil
}

// Authenticate verifies a username/password pair against the stored hash.
// Unknown usernames and failed verification both return
// domain.ErrUnauthorized, indistinguishably.
func (s *AuthService) Authenticate(ctx context.Context, username, password string) (domain.User, error) {
	user, err := s.users.GetByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return domain.User{}, fmt.Errorf("service.AuthService.Authenticate: %w", domain.ErrUnauthorized)
		}
		return domain.User{}, fmt.Errorf("service.AuthService.Authenticate: %w", err)
	}
	if !auth.VerifyPassword(password, user.PasswordHash) {
		return domain.User{}, fmt.Errorf("service.AuthService.Authenticate: %w", domain.ErrUnauthorized)
	}
	return user, nil
}

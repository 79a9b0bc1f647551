package service

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/ubatuba-events/events-client/internal/core/domain"
	"github.com/ubatuba-events/events-client/internal/core/ports"
)

// DefaultTokenTTL matches the 7-day expiry of the token cookie.
const DefaultTokenTTL = 7 * 24 * time.Hour

// AuthService implements login, signup, and logout against the remote API.
type AuthService struct {
	api      ports.AuthAPI
	session  ports.SessionStore
	tokenTTL time.Duration
	log      zerolog.Logger
	subs     subscriberList
}

// NewAuthService returns an AuthService storing tokens for tokenTTL.
// A non-positive tokenTTL falls back to DefaultTokenTTL.
func NewAuthService(api ports.AuthAPI, session ports.SessionStore, tokenTTL time.Duration, log zerolog.Logger) *AuthService {
	if tokenTTL <= 0 {
		tokenTTL = DefaultTokenTTL
	}
	return &AuthService{api: api, session: session, tokenTTL: tokenTTL, log: log}
}

// Login exchanges credentials for a token and stores it in the session.
// Transport failures and rejected credentials both surface as
// domain.ErrAuthenticationFailed; the session is left unchanged on failure.
func (s *AuthService) Login(ctx context.Context, email, password string) error {
	return s.authenticate(ctx, "login", email, password, s.api.Login)
}

// Signup registers a new account. Same shape and side effects as Login.
func (s *AuthService) Signup(ctx context.Context, email, password string) error {
	return s.authenticate(ctx, "signup", email, password, s.api.Signup)
}

func (s *AuthService) authenticate(ctx context.Context, op, email, password string, exchange func(context.Context, string, string) (string, error)) error {
	token, err := exchange(ctx, email, password)
	if err != nil {
		s.log.Warn().Err(err).Str("op", op).Str("email", email).Msg("authentication failed")
		return domain.ErrAuthenticationFailed
	}
	if token == "" {
		s.log.Warn().Str("op", op).Str("email", email).Msg("API returned empty token")
		return domain.ErrAuthenticationFailed
	}

	if err := s.session.Set(token, s.tokenTTL); err != nil {
		return fmt.Errorf("store session token: %w", err)
	}

	s.log.Info().Str("op", op).Str("email", email).Msg("authenticated")
	s.subs.notify()
	return nil
}

// Logout clears the session. It never calls the network.
func (s *AuthService) Logout() {
	if err := s.session.Clear(); err != nil {
		s.log.Warn().Err(err).Msg("failed to clear session")
	}
	s.log.Info().Msg("logged out")
	s.subs.notify()
}

// IsAuthenticated reports whether the session holds a token.
func (s *AuthService) IsAuthenticated() bool {
	return s.session.IsAuthenticated()
}

// Subscribe registers fn for synchronous notification after every completed
// login, signup, or logout.
func (s *AuthService) Subscribe(fn func()) (unsubscribe func()) {
	return s.subs.add(fn)
}

package session

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// TokenInfo describes claims decoded from a session token that happens to
// be a JWT. The client never verifies the signature — the token is opaque
// as far as authorization goes; this exists purely for display.
type TokenInfo struct {
	Subject   string
	Email     string
	ExpiresAt time.Time
}

var ErrNotAJWT = errors.New("token is not a decodable JWT")

// Inspect decodes token without verification. Opaque (non-JWT) tokens
// return ErrNotAJWT so callers can degrade gracefully.
func Inspect(token string) (*TokenInfo, error) {
	claims := jwt.MapClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(token, claims); err != nil {
		return nil, ErrNotAJWT
	}

	info := &TokenInfo{}
	if sub, err := claims.GetSubject(); err == nil {
		info.Subject = sub
	}
	if email, ok := claims["email"].(string); ok {
		info.Email = email
	}
	if exp, err := claims.GetExpirationTime(); err == nil && exp != nil {
		info.ExpiresAt = exp.Time
	}
	return info, nil
}

package ports

import "time"

// SessionStore persists the bearer token issued by the community API.
// Exactly one session exists per running client; every component reads it
// through this interface.
type SessionStore interface {
	// Get returns the stored token. ok is false when no token is stored,
	// the token has expired, or the backing store cannot be read.
	Get() (token string, ok bool)

	// Set persists the token with the given time-to-live, overwriting any
	// prior value.
	Set(token string, ttl time.Duration) error

	// Clear removes the persisted token.
	Clear() error

	// IsAuthenticated reports whether Get would return a non-empty token.
	IsAuthenticated() bool
}

package ports

import "context"

// AuthService owns the client's authentication state.
//
// Login and Signup store the issued token on success and leave the session
// unchanged on failure. Both collapse transport errors and non-2xx
// responses into domain.ErrAuthenticationFailed.
type AuthService interface {
	Login(ctx context.Context, email, password string) error
	Signup(ctx context.Context, email, password string) error

	// Logout clears the session. It never calls the network.
	Logout()

	IsAuthenticated() bool

	// Subscribe registers fn to be called synchronously after every
	// completed login, signup, or logout. The returned function removes
	// the subscription.
	Subscribe(fn func()) (unsubscribe func())
}

package ports

import "context"

// AuthAPI exchanges credentials for a bearer token at the remote API.
type AuthAPI interface {
	// Login authenticates an existing account and returns the issued token.
	Login(ctx context.Context, email, password string) (token string, err error)

	// Signup registers a new account and returns the issued token.
	Signup(ctx context.Context, email, password string) (token string, err error)
}

package rest

import (
	"net/http"

	"github.com/ubatuba-events/events-client/internal/core/ports"
)

// HeaderBuilder produces the headers for every outgoing API call.
//
// The Authorization entry is included only when the session holds a token;
// without one, privileged endpoints are still called and fail server-side.
// The client performs no local authorization check beyond UI affordance
// hiding.
type HeaderBuilder struct {
	session ports.SessionStore
}

// NewHeaderBuilder returns a HeaderBuilder reading the given session store.
func NewHeaderBuilder(session ports.SessionStore) *HeaderBuilder {
	return &HeaderBuilder{session: session}
}

// Headers returns a fresh header set: a JSON content type always, plus a
// bearer Authorization entry when a token is stored.
func (b *HeaderBuilder) Headers() http.Header {
	h := http.Header{}
	h.Set("Content-Type", "application/json")
	if token, ok := b.session.Get(); ok {
		h.Set("Authorization", "Bearer "+token)
	}
	return h
}

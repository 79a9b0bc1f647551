package ports

import (
	"context"

	"github.com/ubatuba-events/events-client/internal/core/domain"
)

// EventsAPI is the remote REST collection of events. All persistence,
// validation-at-rest, and authorization enforcement happen behind it; the
// client only consumes the documented endpoints.
type EventsAPI interface {
	// FetchAll retrieves the full event collection.
	FetchAll(ctx context.Context) ([]domain.Event, error)

	// FetchOne retrieves a single event by its ID.
	FetchOne(ctx context.Context, id string) (*domain.Event, error)

	// Create submits a new event and returns it with the server-assigned ID.
	Create(ctx context.Context, input domain.EventInput) (*domain.Event, error)

	// Update replaces the stored event with the given full entity.
	Update(ctx context.Context, event domain.Event) error

	// Delete removes the event with the given ID from the remote store.
	Delete(ctx context.Context, id string) error
}

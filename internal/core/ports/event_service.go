package ports

import (
	"context"

	"github.com/ubatuba-events/events-client/internal/core/domain"
)

// EventListState is a snapshot of the synchronization controller's state.
//
// Loading covers list fetches only; the per-item markers (Creating,
// UpdatingID, DeletingID) let a UI gray out just the affected entry while a
// mutation is in flight.
type EventListState struct {
	Events     []domain.Event
	Loading    bool
	Err        error
	Creating   bool
	UpdatingID string
	DeletingID string
}

// EventService owns the canonical in-memory event list and keeps it
// synchronized with the remote collection. Every successful mutation is
// followed by a full refetch; the list is only ever trusted after a
// successful FetchAll.
type EventService interface {
	FetchAll(ctx context.Context) error
	FetchOne(ctx context.Context, id string) (*domain.Event, error)
	Create(ctx context.Context, input domain.EventInput) error
	Update(ctx context.Context, event domain.Event) error
	Delete(ctx context.Context, event domain.Event) error

	// State returns a copy of the current state. The Events slice is safe
	// for the caller to retain.
	State() EventListState

	// Subscribe registers fn to be called synchronously after every state
	// change. The returned function removes the subscription.
	Subscribe(fn func()) (unsubscribe func())
}

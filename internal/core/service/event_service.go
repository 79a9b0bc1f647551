package service

import (
	"context"
	"fmt"
	"sync"

	"github.com/rs/zerolog"

	"github.com/ubatuba-events/events-client/internal/core/domain"
	"github.com/ubatuba-events/events-client/internal/core/ports"
	"github.com/ubatuba-events/events-client/internal/metrics"
)

// eventService keeps the canonical in-memory event list synchronized with
// the remote collection.
//
// Mutations never patch the list locally: every successful create, update,
// or delete triggers a full FetchAll, so the server stays the single source
// of truth. Operations may run concurrently from different goroutines;
// state changes are applied atomically under the mutex. Two FetchAll calls
// completing out of order mean the last completed response wins — there is
// no request-generation guard.
type eventService struct {
	api ports.EventsAPI
	log zerolog.Logger

	mu         sync.Mutex
	events     []domain.Event
	loading    bool
	err        error
	creating   bool
	updatingID string
	deletingID string

	subs subscriberList
}

// NewEventService returns an EventService backed by the given API client.
func NewEventService(api ports.EventsAPI, log zerolog.Logger) ports.EventService {
	return &eventService{api: api, log: log}
}

// FetchAll replaces the event list with the remote collection, sorted
// ascending by date. On failure the previous list is kept and the error is
// stored as page-level state. Loading resolves to false exactly once per
// call, on both paths.
func (s *eventService) FetchAll(ctx context.Context) error {
	s.mu.Lock()
	s.loading = true
	s.mu.Unlock()
	s.subs.notify()

	events, err := s.api.FetchAll(ctx)

	s.mu.Lock()
	s.loading = false
	if err != nil {
		s.err = err
	} else {
		domain.SortByDate(events)
		s.events = events
		s.err = nil
	}
	s.mu.Unlock()
	s.subs.notify()

	if err != nil {
		s.log.Error().Err(err).Msg("event list fetch failed")
		return fmt.Errorf("fetch events: %w", err)
	}
	s.log.Debug().Int("count", len(events)).Msg("event list synchronized")
	return nil
}

// FetchOne retrieves a single event. It does not touch the list state.
func (s *eventService) FetchOne(ctx context.Context, id string) (*domain.Event, error) {
	event, err := s.api.FetchOne(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("fetch event %s: %w", id, err)
	}
	return event, nil
}

// Create submits a new event and resynchronizes the list on success. The
// list is never patched optimistically.
func (s *eventService) Create(ctx context.Context, input domain.EventInput) error {
	s.setCreating(true)

	created, err := s.api.Create(ctx, input)
	if err != nil {
		s.setCreating(false)
		s.log.Error().Err(err).Str("title", input.Title).Msg("event creation failed")
		return fmt.Errorf("create event: %w", err)
	}

	s.resync(ctx)
	s.setCreating(false)

	metrics.MutationsTotal.WithLabelValues("create").Inc()
	s.log.Info().Str("id", created.ID).Str("title", created.Title).Msg("event created")
	return nil
}

// Update replaces the remote event and resynchronizes the list on success.
func (s *eventService) Update(ctx context.Context, event domain.Event) error {
	s.setUpdatingID(event.ID)

	if err := s.api.Update(ctx, event); err != nil {
		s.setUpdatingID("")
		s.log.Error().Err(err).Str("id", event.ID).Msg("event update failed")
		return fmt.Errorf("update event %s: %w", event.ID, err)
	}

	s.resync(ctx)
	s.setUpdatingID("")

	metrics.MutationsTotal.WithLabelValues("update").Inc()
	s.log.Info().Str("id", event.ID).Msg("event updated")
	return nil
}

// Delete removes the remote event and resynchronizes the list on success.
func (s *eventService) Delete(ctx context.Context, event domain.Event) error {
	s.setDeletingID(event.ID)

	if err := s.api.Delete(ctx, event.ID); err != nil {
		s.setDeletingID("")
		s.log.Error().Err(err).Str("id", event.ID).Msg("event deletion failed")
		return fmt.Errorf("delete event %s: %w", event.ID, err)
	}

	s.resync(ctx)
	s.setDeletingID("")

	metrics.MutationsTotal.WithLabelValues("delete").Inc()
	s.log.Info().Str("id", event.ID).Msg("event deleted")
	return nil
}

// resync refetches the list after a successful mutation. A refetch failure
// does not fail the mutation — it lands in the page-level error state.
func (s *eventService) resync(ctx context.Context) {
	if err := s.FetchAll(ctx); err != nil {
		s.log.Warn().Err(err).Msg("post-mutation resync failed")
	}
}

// State returns a copy of the current state.
func (s *eventService) State() ports.EventListState {
	s.mu.Lock()
	defer s.mu.Unlock()

	events := make([]domain.Event, len(s.events))
	copy(events, s.events)
	return ports.EventListState{
		Events:     events,
		Loading:    s.loading,
		Err:        s.err,
		Creating:   s.creating,
		UpdatingID: s.updatingID,
		DeletingID: s.deletingID,
	}
}

// Subscribe registers fn for synchronous notification after every state
// change.
func (s *eventService) Subscribe(fn func()) (unsubscribe func()) {
	return s.subs.add(fn)
}

func (s *eventService) setCreating(v bool) {
	s.mu.Lock()
	s.creating = v
	s.mu.Unlock()
	s.subs.notify()
}

func (s *eventService) setUpdatingID(id string) {
	s.mu.Lock()
	s.updatingID = id
	s.mu.Unlock()
	s.subs.notify()
}

func (s *eventService) setDeletingID(id string) {
	s.mu.Lock()
	s.deletingID = id
	s.mu.Unlock()
	s.subs.notify()
}

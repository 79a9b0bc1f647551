package service

import (
	"context"
	"errors"
	"testing"

	"github.com/rs/zerolog"

	"github.com/ubatuba-events/events-client/internal/core/domain"
	"github.com/ubatuba-events/events-client/internal/core/ports"
)

// ---------------------------------------------------------------------------
// Stubs
// ---------------------------------------------------------------------------

type stubEventsAPI struct {
	list      []domain.Event
	fetchErr  error
	createErr error
	updateErr error
	deleteErr error

	fetchCalls  int
	createCalls int
	updateCalls int
	deleteCalls int

	// afterCreate, when set, becomes the list served by FetchAll once a
	// create succeeds — the server's post-create collection.
	afterCreate []domain.Event
}

func (a *stubEventsAPI) FetchAll(_ context.Context) ([]domain.Event, error) {
	a.fetchCalls++
	if a.fetchErr != nil {
		return nil, a.fetchErr
	}
	out := make([]domain.Event, len(a.list))
	copy(out, a.list)
	return out, nil
}

func (a *stubEventsAPI) FetchOne(_ context.Context, id string) (*domain.Event, error) {
	for _, e := range a.list {
		if e.ID == id {
			event := e
			return &event, nil
		}
	}
	return nil, domain.ErrEventNotFound
}

func (a *stubEventsAPI) Create(_ context.Context, _ domain.EventInput) (*domain.Event, error) {
	a.createCalls++
	if a.createErr != nil {
		return nil, a.createErr
	}
	if a.afterCreate != nil {
		a.list = a.afterCreate
	}
	created := a.list[len(a.list)-1]
	return &created, nil
}

func (a *stubEventsAPI) Update(_ context.Context, _ domain.Event) error {
	a.updateCalls++
	return a.updateErr
}

func (a *stubEventsAPI) Delete(_ context.Context, _ string) error {
	a.deleteCalls++
	return a.deleteErr
}

func newEventSvc(api *stubEventsAPI) ports.EventService {
	return NewEventService(api, zerolog.Nop())
}

// ---------------------------------------------------------------------------
// FetchAll
// ---------------------------------------------------------------------------

func TestEventService_FetchAll_SortsByDate(t *testing.T) {
	api := &stubEventsAPI{list: []domain.Event{
		{ID: "late", Date: "2025-03-01"},
		{ID: "early", Date: "2025-01-15"},
	}}
	svc := newEventSvc(api)

	if err := svc.FetchAll(context.Background()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	state := svc.State()
	if state.Loading {
		t.Error("expected loading to resolve to false")
	}
	if state.Err != nil {
		t.Errorf("unexpected error state: %v", state.Err)
	}
	if len(state.Events) != 2 || state.Events[0].ID != "early" || state.Events[1].ID != "late" {
		t.Fatalf("expected [early late], got %v", state.Events)
	}
}

func TestEventService_FetchAll_FailureKeepsPreviousList(t *testing.T) {
	api := &stubEventsAPI{list: []domain.Event{{ID: "1", Date: "2025-01-01"}}}
	svc := newEventSvc(api)

	if err := svc.FetchAll(context.Background()); err != nil {
		t.Fatalf("seed fetch failed: %v", err)
	}

	api.fetchErr = errors.New("boom")
	if err := svc.FetchAll(context.Background()); err == nil {
		t.Fatal("expected error")
	}

	state := svc.State()
	if state.Loading {
		t.Error("loading must resolve to false on the failure path too")
	}
	if state.Err == nil {
		t.Error("expected page-level error state")
	}
	if len(state.Events) != 1 || state.Events[0].ID != "1" {
		t.Errorf("previous list must be untouched, got %v", state.Events)
	}
}

func TestEventService_FetchAll_SuccessClearsError(t *testing.T) {
	api := &stubEventsAPI{fetchErr: errors.New("boom")}
	svc := newEventSvc(api)

	_ = svc.FetchAll(context.Background())
	if svc.State().Err == nil {
		t.Fatal("expected error state after failure")
	}

	api.fetchErr = nil
	if err := svc.FetchAll(context.Background()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if svc.State().Err != nil {
		t.Error("expected error state cleared after success")
	}
}

// ---------------------------------------------------------------------------
// Mutations
// ---------------------------------------------------------------------------

func TestEventService_Create_ResyncsFromServer(t *testing.T) {
	api := &stubEventsAPI{
		list: []domain.Event{{ID: "1", Title: "Sarau", Date: "2025-01-01"}},
		afterCreate: []domain.Event{
			{ID: "1", Title: "Sarau", Date: "2025-01-01"},
			{ID: "2", Title: "Festival", Date: "2025-02-01"},
		},
	}
	svc := newEventSvc(api)

	err := svc.Create(context.Background(), domain.EventInput{Title: "Festival"})
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}

	state := svc.State()
	if state.Creating {
		t.Error("expected creating cleared after success")
	}
	if len(state.Events) != 2 {
		t.Fatalf("expected post-create collection, got %d events", len(state.Events))
	}
	if api.fetchCalls != 1 {
		t.Errorf("expected exactly one resync fetch, got %d", api.fetchCalls)
	}
}

func TestEventService_Create_FailureLeavesListUntouched(t *testing.T) {
	api := &stubEventsAPI{list: []domain.Event{{ID: "1", Date: "2025-01-01"}}}
	svc := newEventSvc(api)
	_ = svc.FetchAll(context.Background())

	api.createErr = errors.New("403")
	err := svc.Create(context.Background(), domain.EventInput{Title: "x"})
	if err == nil {
		t.Fatal("expected error")
	}

	state := svc.State()
	if state.Creating {
		t.Error("creating marker must clear on failure")
	}
	if len(state.Events) != 1 {
		t.Errorf("events must be untouched on failed create, got %v", state.Events)
	}
	if api.fetchCalls != 1 {
		t.Errorf("no resync should happen on failed create, got %d fetches", api.fetchCalls)
	}
}

func TestEventService_Update_FailureClearsMarker(t *testing.T) {
	api := &stubEventsAPI{list: []domain.Event{{ID: "1", Title: "Sarau", Date: "2025-01-01"}}}
	svc := newEventSvc(api)
	_ = svc.FetchAll(context.Background())
	before := svc.State().Events

	api.updateErr = errors.New("500")
	err := svc.Update(context.Background(), domain.Event{ID: "1", Title: "Novo"})
	if err == nil {
		t.Fatal("expected error")
	}

	state := svc.State()
	if state.UpdatingID != "" {
		t.Errorf("expected UpdatingID cleared, got %q", state.UpdatingID)
	}
	if len(state.Events) != len(before) || state.Events[0].Title != before[0].Title {
		t.Error("events changed after failed update")
	}
}

func TestEventService_Delete_Success(t *testing.T) {
	api := &stubEventsAPI{list: []domain.Event{{ID: "1", Date: "2025-01-01"}}}
	svc := newEventSvc(api)
	_ = svc.FetchAll(context.Background())

	api.list = nil
	if err := svc.Delete(context.Background(), domain.Event{ID: "1"}); err != nil {
		t.Fatalf("delete failed: %v", err)
	}

	state := svc.State()
	if state.DeletingID != "" {
		t.Errorf("expected DeletingID cleared, got %q", state.DeletingID)
	}
	if len(state.Events) != 0 {
		t.Errorf("expected resynced empty list, got %v", state.Events)
	}
	if api.deleteCalls != 1 {
		t.Errorf("expected one delete call, got %d", api.deleteCalls)
	}
}

func TestEventService_Delete_FailureClearsMarker(t *testing.T) {
	api := &stubEventsAPI{
		list:      []domain.Event{{ID: "1", Date: "2025-01-01"}},
		deleteErr: errors.New("403"),
	}
	svc := newEventSvc(api)
	_ = svc.FetchAll(context.Background())

	if err := svc.Delete(context.Background(), domain.Event{ID: "1"}); err == nil {
		t.Fatal("expected error")
	}

	state := svc.State()
	if state.DeletingID != "" {
		t.Errorf("expected DeletingID cleared, got %q", state.DeletingID)
	}
	if len(state.Events) != 1 {
		t.Error("events changed after failed delete")
	}
}

// ---------------------------------------------------------------------------
// Observation
// ---------------------------------------------------------------------------

func TestEventService_SubscribersNotified(t *testing.T) {
	api := &stubEventsAPI{}
	svc := newEventSvc(api)

	notified := 0
	unsubscribe := svc.Subscribe(func() { notified++ })

	// Loading set + result applied.
	_ = svc.FetchAll(context.Background())
	if notified != 2 {
		t.Fatalf("expected 2 notifications for a fetch cycle, got %d", notified)
	}

	unsubscribe()
	_ = svc.FetchAll(context.Background())
	if notified != 2 {
		t.Fatalf("expected no notifications after unsubscribe, got %d", notified)
	}
}

func TestEventService_StateReturnsCopy(t *testing.T) {
	api := &stubEventsAPI{list: []domain.Event{{ID: "1", Title: "Sarau", Date: "2025-01-01"}}}
	svc := newEventSvc(api)
	_ = svc.FetchAll(context.Background())

	state := svc.State()
	state.Events[0].Title = "mutated"

	if svc.State().Events[0].Title != "Sarau" {
		t.Error("State must return a copy of the events slice")
	}
}

func TestEventService_FetchOne(t *testing.T) {
	api := &stubEventsAPI{list: []domain.Event{{ID: "1", Title: "Sarau", Date: "2025-01-01"}}}
	svc := newEventSvc(api)

	event, err := svc.FetchOne(context.Background(), "1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if event.Title != "Sarau" {
		t.Errorf("unexpected event: %+v", event)
	}

	if _, err := svc.FetchOne(context.Background(), "missing"); !errors.Is(err, domain.ErrEventNotFound) {
		t.Fatalf("expected ErrEventNotFound, got %v", err)
	}
}

package cli

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/rs/zerolog"

	"github.com/ubatuba-events/events-client/internal/core/domain"
	"github.com/ubatuba-events/events-client/internal/core/ports"
)

type fakeEventService struct {
	events []domain.Event
	subs   []func()
}

func (f *fakeEventService) FetchAll(_ context.Context) error {
	f.notify()
	return nil
}

func (f *fakeEventService) FetchOne(_ context.Context, id string) (*domain.Event, error) {
	for i := range f.events {
		if f.events[i].ID == id {
			return &f.events[i], nil
		}
	}
	return nil, domain.ErrEventNotFound
}

func (f *fakeEventService) Create(_ context.Context, _ domain.EventInput) error { return nil }
func (f *fakeEventService) Update(_ context.Context, _ domain.Event) error      { return nil }
func (f *fakeEventService) Delete(_ context.Context, _ domain.Event) error      { return nil }

func (f *fakeEventService) State() ports.EventListState {
	return ports.EventListState{Events: f.events}
}

func (f *fakeEventService) Subscribe(fn func()) (unsubscribe func()) {
	f.subs = append(f.subs, fn)
	return func() {}
}

func (f *fakeEventService) notify() {
	for _, fn := range f.subs {
		fn()
	}
}

type fakeAuthService struct {
	authenticated bool
}

func (f *fakeAuthService) Login(_ context.Context, _, _ string) error {
	f.authenticated = true
	return nil
}

func (f *fakeAuthService) Signup(_ context.Context, _, _ string) error {
	f.authenticated = true
	return nil
}

func (f *fakeAuthService) Logout() { f.authenticated = false }

func (f *fakeAuthService) IsAuthenticated() bool { return f.authenticated }

func (f *fakeAuthService) Subscribe(_ func()) (unsubscribe func()) { return func() {} }

// runBrowse drives the interactive loop with scripted input and returns the
// output split on the prompt, so each segment is what was printed after one
// command.
func runBrowse(t *testing.T, events []domain.Event, input string) []string {
	t.Helper()

	var buf bytes.Buffer
	app := New(Options{
		Auth:   &fakeAuthService{},
		Events: &fakeEventService{events: events},
		In:     strings.NewReader(input),
		Out:    &buf,
		Log:    zerolog.Nop(),
	})

	if err := app.Run(context.Background(), []string{"browse"}); err != nil {
		t.Fatalf("browse failed: %v", err)
	}
	return strings.Split(buf.String(), "ubaevents> ")
}

func TestBrowse_SearchRerendersFilteredList(t *testing.T) {
	events := []domain.Event{
		{ID: "1", Title: "Sarau", Location: "Centro", Date: "2025-01-01"},
		{ID: "2", Title: "Festival de Surf", Location: "Praia", Date: "2025-02-01"},
	}
	segments := runBrowse(t, events, "search surf\nquit\n")

	if len(segments) < 2 {
		t.Fatalf("expected output after the search command, got %q", segments)
	}
	after := segments[1]
	if !strings.Contains(after, `pesquisa: "surf"`) {
		t.Errorf("expected the active query in the re-render, got %q", after)
	}
	if !strings.Contains(after, "Festival de Surf") {
		t.Errorf("expected matching event after search, got %q", after)
	}
	if strings.Contains(after, "Sarau") {
		t.Errorf("non-matching event leaked into filtered view: %q", after)
	}
}

func TestBrowse_ClearRestoresFullList(t *testing.T) {
	events := []domain.Event{
		{ID: "1", Title: "Sarau", Location: "Centro", Date: "2025-01-01"},
		{ID: "2", Title: "Festival de Surf", Location: "Praia", Date: "2025-02-01"},
	}
	segments := runBrowse(t, events, "search surf\nclear\nquit\n")

	if len(segments) < 3 {
		t.Fatalf("expected output after the clear command, got %q", segments)
	}
	after := segments[2]
	if !strings.Contains(after, "Sarau") || !strings.Contains(after, "Festival de Surf") {
		t.Errorf("expected the full list after clear, got %q", after)
	}
	if strings.Contains(after, "pesquisa") {
		t.Errorf("query header must disappear after clear: %q", after)
	}
}

func TestBrowse_SearchWithNoMatchShowsEmptyState(t *testing.T) {
	events := []domain.Event{
		{ID: "1", Title: "Sarau", Location: "Centro", Date: "2025-01-01"},
	}
	segments := runBrowse(t, events, "search xyzzy\nquit\n")

	if len(segments) < 2 {
		t.Fatalf("expected output after the search command, got %q", segments)
	}
	if !strings.Contains(segments[1], "Nenhum evento corresponde à pesquisa.") {
		t.Errorf("expected no-match message after unmatched search, got %q", segments[1])
	}
}

package cli

import (
	"bytes"
	"strings"
	"testing"

	"github.com/ubatuba-events/events-client/internal/core/domain"
)

func TestRenderList_EmptyCollection(t *testing.T) {
	// Empty list with no query: "no events at all", not "no match".
	var buf bytes.Buffer
	app := &App{out: &buf}

	app.renderList(nil, "")

	if !strings.Contains(buf.String(), "Nenhum evento encontrado.") {
		t.Fatalf("expected empty-collection message, got %q", buf.String())
	}
	if strings.Contains(buf.String(), "pesquisa") {
		t.Errorf("no-match message must not appear for an empty collection")
	}
}

func TestRenderList_NoSearchMatch(t *testing.T) {
	var buf bytes.Buffer
	app := &App{out: &buf}

	events := []domain.Event{
		{ID: "1", Title: "Sarau", Location: "Centro", Date: "2025-01-01"},
		{ID: "2", Title: "Festival", Location: "Praia", Date: "2025-02-01"},
	}
	app.renderList(events, "xyzzy")

	if !strings.Contains(buf.String(), "Nenhum evento corresponde à pesquisa.") {
		t.Fatalf("expected no-match message, got %q", buf.String())
	}
}

func TestRenderList_FilteredOutput(t *testing.T) {
	var buf bytes.Buffer
	app := &App{out: &buf}

	events := []domain.Event{
		{ID: "1", Title: "Sarau", Location: "Centro", Date: "2025-01-01"},
		{ID: "2", Title: "Festival de Surf", Location: "Praia", Date: "2025-02-01"},
	}
	app.renderList(events, "surf")

	out := buf.String()
	if !strings.Contains(out, "Festival de Surf") {
		t.Errorf("expected matching event in output: %q", out)
	}
	if strings.Contains(out, "Sarau") {
		t.Errorf("non-matching event leaked into output: %q", out)
	}
}

func TestFormatEventLine_CategoryTranslated(t *testing.T) {
	cat := string(domain.CategoryMusic)
	line := formatEventLine(domain.Event{
		ID:       "1",
		Title:    "Show na praça",
		Location: "Praça",
		Date:     "2025-05-10T20:00",
		Category: &cat,
	})

	if !strings.Contains(line, "[Música]") {
		t.Errorf("expected translated category, got %q", line)
	}
	if !strings.Contains(line, "10/05/2025 20:00") {
		t.Errorf("expected formatted date, got %q", line)
	}
}

func TestSplitCommand(t *testing.T) {
	cases := []struct {
		in, cmd, arg string
	}{
		{"", "", ""},
		{"list", "list", ""},
		{"search praia grande", "search", "praia grande"},
		{"  open  abc ", "open", "abc"},
	}
	for _, tc := range cases {
		cmd, arg := splitCommand(tc.in)
		if cmd != tc.cmd || arg != tc.arg {
			t.Errorf("splitCommand(%q) = (%q, %q), want (%q, %q)", tc.in, cmd, arg, tc.cmd, tc.arg)
		}
	}
}

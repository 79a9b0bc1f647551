package service

import (
	"strings"

	"github.com/ubatuba-events/events-client/internal/core/domain"
)

// FilterEvents derives the search view of events. An empty query returns
// events unchanged. Otherwise the result is the stable-order subsequence
// whose title or location contains query case-insensitively. The input is
// never mutated.
func FilterEvents(events []domain.Event, query string) []domain.Event {
	if query == "" {
		return events
	}

	q := strings.ToLower(query)
	matched := make([]domain.Event, 0, len(events))
	for _, e := range events {
		if strings.Contains(strings.ToLower(e.Title), q) ||
			strings.Contains(strings.ToLower(e.Location), q) {
			matched = append(matched, e)
		}
	}
	return matched
}

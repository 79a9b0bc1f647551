package domain

import (
	"errors"
	"sort"
	"time"
)

// EventCategory labels an event with one entry from a fixed, closed set.
type EventCategory string

const (
	CategoryMusic      EventCategory = "Music"
	CategorySports     EventCategory = "Sports"
	CategoryEducation  EventCategory = "Education"
	CategoryFood       EventCategory = "Food"
	CategoryArt        EventCategory = "Art"
	CategoryLiterature EventCategory = "Literature"
	CategorySurf       EventCategory = "Surf"
)

// EventCategories is the full category set, in display order.
var EventCategories = []EventCategory{
	CategoryMusic,
	CategorySports,
	CategoryEducation,
	CategoryFood,
	CategoryArt,
	CategoryLiterature,
	CategorySurf,
}

// CategoryTranslations maps each category to its Portuguese display label.
var CategoryTranslations = map[EventCategory]string{
	CategoryMusic:      "Música",
	CategorySports:     "Esportes",
	CategoryEducation:  "Educação",
	CategoryFood:       "Comida",
	CategoryArt:        "Arte",
	CategoryLiterature: "Literatura",
	CategorySurf:       "Surfe",
}

var ErrEventNotFound = errors.New("event not found")
var ErrRequestFailed = errors.New("request failed")
var ErrAuthenticationFailed = errors.New("authentication failed")

// IsValidCategory reports whether s is a member of the fixed category set.
func IsValidCategory(s string) bool {
	for _, c := range EventCategories {
		if string(c) == s {
			return true
		}
	}
	return false
}

// Event is a scheduled happening listed by the community API.
//
// ID is assigned by the API and never constructed client-side. Category is
// nil for uncategorized events. Image holds either a remote URL or a data
// URI; empty means the UI shows a placeholder.
type Event struct {
	ID          string  `json:"id"`
	Title       string  `json:"title"`
	Description string  `json:"description"`
	Location    string  `json:"location"`
	Date        string  `json:"date"`
	Category    *string `json:"category,omitempty"`
	Image       string  `json:"image,omitempty"`
}

// EventInput is the creation payload: an Event before the API assigns an ID.
type EventInput struct {
	Title       string  `json:"title" validate:"required,max=100"`
	Description string  `json:"description" validate:"required,max=500"`
	Location    string  `json:"location" validate:"required"`
	Date        string  `json:"date" validate:"required"`
	Category    *string `json:"category,omitempty" validate:"omitempty,eventcategory"`
	Image       string  `json:"image,omitempty"`
}

// dateLayouts are tried in order when parsing Event.Date. RFC 3339 is what
// the API stores; the shorter layouts match what datetime-local and date
// form inputs produce.
var dateLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02T15:04",
	"2006-01-02",
}

// ParseDate parses an ISO-8601 date string. The boolean is false when no
// layout matches.
func ParseDate(s string) (time.Time, bool) {
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// SortByDate sorts events ascending by date in place. The sort is stable:
// equal dates keep their server order. Unparseable dates fall back to
// lexicographic comparison of the raw strings.
func SortByDate(events []Event) {
	sort.SliceStable(events, func(i, j int) bool {
		ti, iOK := ParseDate(events[i].Date)
		tj, jOK := ParseDate(events[j].Date)
		if iOK && jOK {
			return ti.Before(tj)
		}
		return events[i].Date < events[j].Date
	})
}

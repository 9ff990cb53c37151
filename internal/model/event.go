package model

import "fmt"

const (
	TypeEvent = "event"
	TypeBirth = "birth"
	TypeDeath = "death"
)

// PlaceholderImage is served when a record carries no thumbnail.
const PlaceholderImage = `data:image/svg+xml,%3Csvg xmlns="http://www.w3.org/2000/svg" width="100" height="100" viewBox="0 0 100 100"%3E%3Crect width="100" height="100" fill="%23f3f4f6"/%3E%3Ctext x="50" y="50" font-family="Arial" font-size="12" fill="%23666" text-anchor="middle" dy=".3em"%3ENo Image%3C/text%3E%3C/svg%3E`

// FallbackPageURL is an inert link for records without an external page.
const FallbackPageURL = "#"

type EventRecord struct {
	Text     string
	Year     int
	Type     string
	ImageURL string
	PageURL  string
}

// Normalize fills the optional fields so consumers never see empty ones.
func (e *EventRecord) Normalize() {
	if e.Type == "" {
		e.Type = TypeEvent
	}
	if e.ImageURL == "" {
		e.ImageURL = PlaceholderImage
	}
	if e.PageURL == "" {
		e.PageURL = FallbackPageURL
	}
}

type DateKey struct {
	Month int
	Day   int
}

func (k DateKey) String() string {
	return fmt.Sprintf("%02d-%02d", k.Month, k.Day)
}

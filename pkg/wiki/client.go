package wiki

import "context"

// Event is the transport-level record shape shared by both clients.
// Normalization into the application model happens in the events service.
type Event struct {
	Text     string
	Year     int
	Type     string
	ImageURL string
	PageURL  string
}

type DayFeed interface {
	FetchDay(ctx context.Context, month, day int) ([]Event, error)
	Name() string
}

type Searcher interface {
	Search(ctx context.Context, query string) ([]Event, error)
	Name() string
}

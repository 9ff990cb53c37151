package cache

import "github.com/aldrik-cruze/historical-news/internal/model"

// Store is the per-day event cache. A key is written at most once per
// session: Put is a no-op when the key already holds a value, so a racing
// second fetch can never clobber the first.
type Store interface {
	Get(key model.DateKey) ([]model.EventRecord, bool)
	Put(key model.DateKey, events []model.EventRecord)
	All() []model.EventRecord
	Len() int
}

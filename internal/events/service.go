package events

import (
	"context"
	"log/slog"
	"strconv"
	"strings"
	"sync/atomic"
	"time"

	"golang.org/x/sync/singleflight"

	"github.com/aldrik-cruze/historical-news/internal/cache"
	"github.com/aldrik-cruze/historical-news/internal/model"
	"github.com/aldrik-cruze/historical-news/pkg/wiki"
)

// fallbackPause spaces out the calendar-sampling fallback so it does not
// hammer the feed. Not a correctness requirement; tests zero it.
const fallbackPause = 50 * time.Millisecond

// Feed reachability as of the most recent remote fetch. Cache hits do not
// touch it.
const (
	FeedStatusUnknown     = "unknown"
	FeedStatusOK          = "ok"
	FeedStatusUnreachable = "unreachable"
)

// Service resolves dates and search queries to normalized event lists.
// All remote failures are absorbed here: callers always get a list, possibly
// empty, never an error.
type Service struct {
	cache  cache.Store
	feed   wiki.DayFeed
	search wiki.Searcher
	group  singleflight.Group
	pause  time.Duration
	now    func() time.Time

	feedState atomic.Value
}

func NewService(store cache.Store, feed wiki.DayFeed, searcher wiki.Searcher) *Service {
	return &Service{
		cache:  store,
		feed:   feed,
		search: searcher,
		pause:  fallbackPause,
		now:    time.Now,
	}
}

// ResolveDay returns the cached list for (month, day) or fetches it once.
// Zero month or day fall back to the current date. Concurrent calls for the
// same key share a single fetch.
func (s *Service) ResolveDay(ctx context.Context, month, day int) []model.EventRecord {
	if month == 0 || day == 0 {
		today := s.now()
		if month == 0 {
			month = int(today.Month())
		}
		if day == 0 {
			day = today.Day()
		}
	}

	key := model.DateKey{Month: month, Day: day}
	if hit, ok := s.cache.Get(key); ok {
		return hit
	}

	result, err, _ := s.group.Do(key.String(), func() (interface{}, error) {
		if hit, ok := s.cache.Get(key); ok {
			return hit, nil
		}

		fetched, err := s.feed.FetchDay(ctx, month, day)
		if err != nil {
			return nil, err
		}

		records := normalize(fetched)
		s.cache.Put(key, records)
		return records, nil
	})
	if err != nil {
		slog.Warn("day feed unavailable", "month", month, "day", day, "error", err)
		s.feedState.Store(FeedStatusUnreachable)
		return []model.EventRecord{}
	}

	s.feedState.Store(FeedStatusOK)
	return result.([]model.EventRecord)
}

// FeedStatus reports the outcome of the last remote day-feed fetch.
func (s *Service) FeedStatus() string {
	if status, ok := s.feedState.Load().(string); ok {
		return status
	}
	return FeedStatusUnknown
}

// Search combines a scan over everything already cached this session with
// the remote full-text search, cached matches first, deduplicated by text.
// When the remote search fails it degrades to sampling the calendar.
func (s *Service) Search(ctx context.Context, query string) []model.EventRecord {
	trimmed := strings.TrimSpace(query)
	if trimmed == "" {
		return []model.EventRecord{}
	}

	cached := matchCached(s.cache.All(), trimmed)

	remote, err := s.search.Search(ctx, trimmed)
	if err != nil {
		slog.Warn("primary search unavailable, sampling calendar", "query", trimmed, "error", err)
		return dedupeByText(append(cached, s.sampleCalendar(ctx)...))
	}

	return dedupeByText(append(cached, normalize(remote)...))
}

// sampleCalendar fetches roughly one day a week across the current year,
// reusing the day cache. Results are unfiltered; the filter pipeline narrows
// them downstream.
func (s *Service) sampleCalendar(ctx context.Context) []model.EventRecord {
	year := s.now().Year()
	var all []model.EventRecord

	for month := 1; month <= 12; month++ {
		for day := 1; day <= daysIn(month, year); day += 7 {
			if ctx.Err() != nil {
				return all
			}
			all = append(all, s.ResolveDay(ctx, month, day)...)
			if s.pause > 0 {
				time.Sleep(s.pause)
			}
		}
	}

	return all
}

func matchCached(records []model.EventRecord, query string) []model.EventRecord {
	lowered := strings.ToLower(query)
	var matches []model.EventRecord
	for _, r := range records {
		if strings.Contains(strings.ToLower(r.Text), lowered) || strings.Contains(strconv.Itoa(r.Year), query) {
			matches = append(matches, r)
		}
	}
	return matches
}

func dedupeByText(records []model.EventRecord) []model.EventRecord {
	seen := make(map[string]struct{}, len(records))
	unique := make([]model.EventRecord, 0, len(records))
	for _, r := range records {
		if _, ok := seen[r.Text]; ok {
			continue
		}
		seen[r.Text] = struct{}{}
		unique = append(unique, r)
	}
	return unique
}

func normalize(fetched []wiki.Event) []model.EventRecord {
	records := make([]model.EventRecord, 0, len(fetched))
	for _, e := range fetched {
		record := model.EventRecord{
			Text:     e.Text,
			Year:     e.Year,
			Type:     e.Type,
			ImageURL: e.ImageURL,
			PageURL:  e.PageURL,
		}
		record.Normalize()
		records = append(records, record)
	}
	return records
}

func daysIn(month, year int) int {
	return time.Date(year, time.Month(month)+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

package cache

import (
	"sync"

	"github.com/aldrik-cruze/historical-news/internal/model"
)

type MemoryStore struct {
	mu   sync.RWMutex
	days map[model.DateKey][]model.EventRecord
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{days: make(map[model.DateKey][]model.EventRecord)}
}

func (s *MemoryStore) Get(key model.DateKey) ([]model.EventRecord, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	events, ok := s.days[key]
	return events, ok
}

func (s *MemoryStore) Put(key model.DateKey, events []model.EventRecord) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.days[key]; ok {
		return
	}
	s.days[key] = events
}

func (s *MemoryStore) All() []model.EventRecord {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var all []model.EventRecord
	for _, events := range s.days {
		all = append(all, events...)
	}
	return all
}

func (s *MemoryStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.days)
}

package quiz

import (
	"context"
	"errors"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/aldrik-cruze/historical-news/internal/model"
)

var (
	ErrNotFound  = errors.New("quiz session not found")
	ErrBadIndex  = errors.New("question index out of range")
	ErrBadOption = errors.New("option is not one of the question's choices")
	ErrRevealed  = errors.New("quiz already revealed")
)

// Store keeps live quiz sessions in memory. Sessions are ephemeral: they
// die on dismiss or after sitting untouched for the TTL, and nothing is
// persisted.
type Store struct {
	mu       sync.Mutex
	sessions map[string]*sessionEntry
	ttl      time.Duration
	now      func() time.Time
}

type sessionEntry struct {
	session *model.QuizSession
	touched time.Time
}

func NewStore(ttl time.Duration) *Store {
	return &Store{
		sessions: make(map[string]*sessionEntry),
		ttl:      ttl,
		now:      time.Now,
	}
}

func (s *Store) Create(event model.EventRecord, questions []model.QuizQuestion) model.QuizSession {
	session := &model.QuizSession{
		ID:        uuid.NewString(),
		Event:     event,
		Questions: questions,
		Answers:   make(map[int]string),
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.sessions[session.ID] = &sessionEntry{session: session, touched: s.now()}
	return snapshot(session)
}

func (s *Store) Get(id string) (model.QuizSession, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	entry, ok := s.sessions[id]
	if !ok {
		return model.QuizSession{}, ErrNotFound
	}
	entry.touched = s.now()
	return snapshot(entry.session), nil
}

// Answer records the user's selection for one question. Selections can be
// changed until the session is revealed.
func (s *Store) Answer(id string, index int, option string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	entry, ok := s.sessions[id]
	if !ok {
		return ErrNotFound
	}
	session := entry.session

	if session.Revealed {
		return ErrRevealed
	}
	if index < 0 || index >= len(session.Questions) {
		return ErrBadIndex
	}

	valid := false
	for _, opt := range session.Questions[index].Options {
		if opt == option {
			valid = true
			break
		}
	}
	if !valid {
		return ErrBadOption
	}

	session.Answers[index] = option
	entry.touched = s.now()
	return nil
}

// Reveal flips the session into its scored state. Revealing twice is
// harmless.
func (s *Store) Reveal(id string) (model.QuizSession, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	entry, ok := s.sessions[id]
	if !ok {
		return model.QuizSession{}, ErrNotFound
	}

	entry.session.Revealed = true
	entry.touched = s.now()
	return snapshot(entry.session), nil
}

func (s *Store) Delete(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.sessions[id]; !ok {
		return false
	}
	delete(s.sessions, id)
	return true
}

func (s *Store) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.sessions)
}

// Sweep drops sessions untouched for longer than the TTL and reports how
// many were removed.
func (s *Store) Sweep(now time.Time) int {
	s.mu.Lock()
	defer s.mu.Unlock()

	removed := 0
	for id, entry := range s.sessions {
		if now.Sub(entry.touched) > s.ttl {
			delete(s.sessions, id)
			removed++
		}
	}
	return removed
}

// Janitor sweeps on an interval until the context ends.
func (s *Store) Janitor(ctx context.Context, every time.Duration) {
	ticker := time.NewTicker(every)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if removed := s.Sweep(s.now()); removed > 0 {
				slog.Info("expired quiz sessions removed", "count", removed)
			}
		}
	}
}

func snapshot(session *model.QuizSession) model.QuizSession {
	out := *session
	out.Questions = append([]model.QuizQuestion(nil), session.Questions...)
	out.Answers = make(map[int]string, len(session.Answers))
	for index, option := range session.Answers {
		out.Answers[index] = option
	}
	return out
}

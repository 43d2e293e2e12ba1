package session

import (
	"context"
	"sync"

	"github.com/techstore/assistant/internal/domain"
)

// MemoryStore keeps session history in process memory. Access is serialized
// per session id; requests for different sessions do not block each other.
type MemoryStore struct {
	mu       sync.Mutex
	sessions map[string]*memorySession
	maxTurns int
}

type memorySession struct {
	mu    sync.Mutex
	turns []domain.Turn
}

func NewMemoryStore(maxTurns int) *MemoryStore {
	return &MemoryStore{
		sessions: make(map[string]*memorySession),
		maxTurns: maxTurns,
	}
}

func (s *MemoryStore) entry(id string) *memorySession {
	s.mu.Lock()
	defer s.mu.Unlock()
	e, ok := s.sessions[id]
	if !ok {
		e = &memorySession{}
		s.sessions[id] = e
	}
	return e
}

func (s *MemoryStore) History(ctx context.Context, id string) ([]domain.Turn, error) {
	s.mu.Lock()
	e, ok := s.sessions[id]
	s.mu.Unlock()
	if !ok {
		return nil, nil
	}

	e.mu.Lock()
	defer e.mu.Unlock()
	out := make([]domain.Turn, len(e.turns))
	copy(out, e.turns)
	return out, nil
}

func (s *MemoryStore) Append(ctx context.Context, id string, turns ...domain.Turn) error {
	e := s.entry(id)
	e.mu.Lock()
	defer e.mu.Unlock()

	e.turns = append(e.turns, turns...)
	if len(e.turns) > s.maxTurns {
		e.turns = e.turns[len(e.turns)-s.maxTurns:]
	}
	return nil
}

func (s *MemoryStore) Clear(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.sessions, id)
	return nil
}

func (s *MemoryStore) Close() error {
	return nil
}

package session

import (
	"context"
	"maps"
	"sync"
	"time"
)

// MemoryStore is the default, process-local session store. A zero TTL
// keeps sessions alive for the process lifetime; a positive TTL slides
// forward on every write.
type MemoryStore struct {
	mu       sync.RWMutex
	sessions map[string]*Session
	ttl      time.Duration
}

func NewMemoryStore(ttl time.Duration) *MemoryStore {
	return &MemoryStore{
		sessions: make(map[string]*Session),
		ttl:      ttl,
	}
}

func (m *MemoryStore) Get(ctx context.Context, sessionID string) (*Session, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	s, ok := m.sessions[sessionID]
	if !ok {
		return nil, nil // not found
	}

	if s.expired(time.Now()) {
		// Left in place; the entry is replaced on the next write.
		return nil, nil
	}

	// Snapshot so callers never observe concurrent writes.
	return &Session{
		ID:        s.ID,
		Values:    maps.Clone(s.Values),
		ExpiresAt: s.ExpiresAt,
	}, nil
}

func (m *MemoryStore) Set(ctx context.Context, sessionID, key string, value any) error {
	now := time.Now()

	m.mu.Lock()
	defer m.mu.Unlock()

	s, ok := m.sessions[sessionID]
	if !ok || s.expired(now) {
		s = &Session{
			ID:     sessionID,
			Values: make(map[string]any),
		}
		m.sessions[sessionID] = s
	}

	s.Values[key] = value
	if m.ttl > 0 {
		s.ExpiresAt = now.Add(m.ttl)
	}

	return nil
}

func (m *MemoryStore) Delete(ctx context.Context, sessionID string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	delete(m.sessions, sessionID)
	return nil
}

func (s *Session) expired(now time.Time) bool {
	return !s.ExpiresAt.IsZero() && now.After(s.ExpiresAt)
}

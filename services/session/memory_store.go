package session

import (
	"context"
	"sync"
	"time"

	"hotelbook/models"
)

type memoryEntry struct {
	session   models.Session
	expiresAt time.Time
}

// MemoryStore keeps sessions in process; entries idle longer than ttl are dropped on read.
type MemoryStore struct {
	mu      sync.RWMutex
	entries map[string]memoryEntry
	ttl     time.Duration
	now     func() time.Time
}

func NewMemoryStore(ttl time.Duration) *MemoryStore {
	return &MemoryStore{
		entries: make(map[string]memoryEntry),
		ttl:     ttl,
		now:     time.Now,
	}
}

func (m *MemoryStore) Get(_ context.Context, scope string) (*models.Session, error) {
	m.mu.RLock()
	entry, ok := m.entries[scope]
	m.mu.RUnlock()
	if !ok {
		return nil, nil
	}
	if m.ttl > 0 && !m.now().Before(entry.expiresAt) {
		m.mu.Lock()
		if cur, ok := m.entries[scope]; ok && cur.expiresAt.Equal(entry.expiresAt) {
			delete(m.entries, scope)
		}
		m.mu.Unlock()
		return nil, nil
	}
	s := entry.session
	return &s, nil
}

func (m *MemoryStore) Save(_ context.Context, s *models.Session) error {
	if s == nil || s.Scope == "" {
		return ErrScopeRequired
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.entries[s.Scope] = memoryEntry{session: *s, expiresAt: m.now().Add(m.ttl)}
	return nil
}

func (m *MemoryStore) Delete(_ context.Context, scope string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.entries, scope)
	return nil
}

package booking

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"github.com/go-redis/redis/v8"

	"hotelbook/models"
	"hotelbook/utils"
)

// DraftStore keeps unsubmitted booking forms per scope.
type DraftStore interface {
	Append(ctx context.Context, scope string, draft models.BookingDraft) error
	List(ctx context.Context, scope string) ([]models.BookingDraft, error)
	Clear(ctx context.Context, scope string) error
}

type draftEntry struct {
	drafts    []models.BookingDraft
	expiresAt time.Time
}

// MemoryDraftStore keeps drafts in process. A scope's list expires ttl after
// its last append; expired lists are swept at most once per ttl.
type MemoryDraftStore struct {
	mu        sync.Mutex
	entries   map[string]draftEntry
	ttl       time.Duration
	now       func() time.Time
	nextSweep time.Time
}

func NewMemoryDraftStore(ttl time.Duration) *MemoryDraftStore {
	return &MemoryDraftStore{
		entries: make(map[string]draftEntry),
		ttl:     ttl,
		now:     time.Now,
	}
}

func (m *MemoryDraftStore) expired(e draftEntry, now time.Time) bool {
	return m.ttl > 0 && !now.Before(e.expiresAt)
}

// sweep drops expired lists; callers hold mu.
func (m *MemoryDraftStore) sweep(now time.Time) {
	if m.ttl <= 0 || now.Before(m.nextSweep) {
		return
	}
	for scope, e := range m.entries {
		if m.expired(e, now) {
			delete(m.entries, scope)
		}
	}
	m.nextSweep = now.Add(m.ttl)
}

func (m *MemoryDraftStore) Append(_ context.Context, scope string, draft models.BookingDraft) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	now := m.now()
	m.sweep(now)

	e := m.entries[scope]
	if m.expired(e, now) {
		e.drafts = nil
	}
	e.drafts = append(e.drafts, draft)
	e.expiresAt = now.Add(m.ttl)
	m.entries[scope] = e
	return nil
}

func (m *MemoryDraftStore) List(_ context.Context, scope string) ([]models.BookingDraft, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	e, ok := m.entries[scope]
	if !ok {
		return []models.BookingDraft{}, nil
	}
	if m.expired(e, m.now()) {
		delete(m.entries, scope)
		return []models.BookingDraft{}, nil
	}
	out := make([]models.BookingDraft, len(e.drafts))
	copy(out, e.drafts)
	return out, nil
}

// scopeCount is the number of scopes holding drafts, expired or not.
func (m *MemoryDraftStore) scopeCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.entries)
}

func (m *MemoryDraftStore) Clear(_ context.Context, scope string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.entries, scope)
	return nil
}

// RedisDraftStore keeps each scope's drafts in a list that expires with the scope.
type RedisDraftStore struct {
	client *redis.Client
	ttl    time.Duration
}

func NewRedisDraftStore(client *redis.Client, ttl time.Duration) *RedisDraftStore {
	return &RedisDraftStore{client: client, ttl: ttl}
}

func (r *RedisDraftStore) Append(ctx context.Context, scope string, draft models.BookingDraft) error {
	data, err := json.Marshal(draft)
	if err != nil {
		return fmt.Errorf("failed to marshal draft: %w", err)
	}
	key := utils.DraftKeyPrefix + scope
	pipe := r.client.TxPipeline()
	pipe.RPush(ctx, key, data)
	if r.ttl > 0 {
		pipe.Expire(ctx, key, r.ttl)
	}
	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("failed to save draft: %w", err)
	}
	return nil
}

func (r *RedisDraftStore) List(ctx context.Context, scope string) ([]models.BookingDraft, error) {
	items, err := r.client.LRange(ctx, utils.DraftKeyPrefix+scope, 0, -1).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to load drafts: %w", err)
	}
	drafts := make([]models.BookingDraft, 0, len(items))
	for _, item := range items {
		var d models.BookingDraft
		if err := json.Unmarshal([]byte(item), &d); err != nil {
			return nil, fmt.Errorf("failed to unmarshal draft: %w", err)
		}
		drafts = append(drafts, d)
	}
	return drafts, nil
}

func (r *RedisDraftStore) Clear(ctx context.Context, scope string) error {
	return r.client.Del(ctx, utils.DraftKeyPrefix+scope).Err()
}

package draft

import (
	"context"
	"maps"
	"sync"
	"time"
)

// MemoryStore implements Store using in-memory storage.
type MemoryStore struct {
	mu     sync.RWMutex
	drafts map[string]*Draft
	ticker *time.Ticker
	done   chan struct{}
}

// NewMemoryStore creates an in-memory draft store. A positive cleanupInterval
// starts a background janitor that evicts expired drafts; Close stops it.
func NewMemoryStore(cleanupInterval time.Duration) *MemoryStore {
	store := &MemoryStore{
		drafts: make(map[string]*Draft),
		done:   make(chan struct{}),
	}

	if cleanupInterval > 0 {
		store.ticker = time.NewTicker(cleanupInterval)
		go store.cleanupLoop()
	}

	return store
}

// Save creates or overwrites the draft under its token.
func (m *MemoryStore) Save(ctx context.Context, draft *Draft) error {
	if draft == nil || draft.Token == "" {
		return ErrInvalidDraft
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	m.drafts[draft.Token] = copyDraft(draft)
	return nil
}

// Get retrieves a draft by token. Expired drafts are evicted on read.
func (m *MemoryStore) Get(ctx context.Context, token string) (*Draft, error) {
	m.mu.RLock()
	draft, exists := m.drafts[token]
	m.mu.RUnlock()

	if !exists {
		return nil, ErrNotFound
	}

	if draft.IsExpired() {
		m.mu.Lock()
		delete(m.drafts, token)
		m.mu.Unlock()
		return nil, ErrExpired
	}

	return copyDraft(draft), nil
}

// Delete removes a draft by token.
func (m *MemoryStore) Delete(ctx context.Context, token string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	delete(m.drafts, token)
	return nil
}

// DeleteExpired removes all drafts past their retention window.
func (m *MemoryStore) DeleteExpired(ctx context.Context) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	now := time.Now()
	for token, draft := range m.drafts {
		if now.After(draft.ExpiresAt) {
			delete(m.drafts, token)
		}
	}

	return nil
}

// Len returns the number of stored drafts, expired ones included.
func (m *MemoryStore) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.drafts)
}

// Close stops the cleanup goroutine.
func (m *MemoryStore) Close() error {
	if m.ticker != nil {
		m.ticker.Stop()
		close(m.done)
	}
	return nil
}

func (m *MemoryStore) cleanupLoop() {
	for {
		select {
		case <-m.ticker.C:
			_ = m.DeleteExpired(context.Background())
		case <-m.done:
			return
		}
	}
}

// copyDraft detaches the stored draft from caller-held maps.
func copyDraft(draft *Draft) *Draft {
	draftCopy := *draft
	if draft.Values != nil {
		draftCopy.Values = make(map[string]any, len(draft.Values))
		maps.Copy(draftCopy.Values, draft.Values)
	}
	return &draftCopy
}

package submission

import (
	"context"
	"maps"
	"sync"

	"github.com/google/uuid"
)

// MemoryStore implements Store using in-memory storage. Listing walks the
// recording order in reverse, matching the Postgres store's newest-first
// ordering as long as submissions arrive with monotonic timestamps.
type MemoryStore struct {
	mu    sync.RWMutex
	byID  map[uuid.UUID]*Submission
	order []uuid.UUID
}

// NewMemoryStore creates an in-memory submission store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		byID: make(map[uuid.UUID]*Submission),
	}
}

// Record persists an accepted submission.
func (m *MemoryStore) Record(ctx context.Context, sub *Submission) error {
	if sub == nil || sub.ID == uuid.Nil || sub.Form == "" {
		return ErrInvalidSubmission
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	if _, exists := m.byID[sub.ID]; exists {
		return ErrDuplicateID
	}

	m.byID[sub.ID] = copySubmission(sub)
	m.order = append(m.order, sub.ID)
	return nil
}

// Get retrieves a submission by ID.
func (m *MemoryStore) Get(ctx context.Context, id uuid.UUID) (*Submission, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	sub, exists := m.byID[id]
	if !exists {
		return nil, ErrNotFound
	}
	return copySubmission(sub), nil
}

// List returns submissions for a form, newest first.
func (m *MemoryStore) List(ctx context.Context, form string, limit, offset int) ([]Submission, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	var out []Submission
	skipped := 0
	for i := len(m.order) - 1; i >= 0; i-- {
		sub := m.byID[m.order[i]]
		if sub.Form != form {
			continue
		}
		if skipped < offset {
			skipped++
			continue
		}
		out = append(out, *copySubmission(sub))
		if limit > 0 && len(out) == limit {
			break
		}
	}
	return out, nil
}

// Len returns the number of recorded submissions across all forms.
func (m *MemoryStore) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.byID)
}

// copySubmission detaches the stored submission from caller-held maps.
func copySubmission(sub *Submission) *Submission {
	subCopy := *sub
	if sub.Values != nil {
		subCopy.Values = make(map[string]any, len(sub.Values))
		maps.Copy(subCopy.Values, sub.Values)
	}
	return &subCopy
}

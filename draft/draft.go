package draft

import (
	"time"

	"github.com/google/uuid"
)

// Draft holds a partially filled form keyed by an opaque token. Values map
// field names to whatever the form's Values snapshot produced.
type Draft struct {
	Token     string         `json:"token"`
	Values    map[string]any `json:"values"`
	SavedAt   time.Time      `json:"saved_at"`
	ExpiresAt time.Time      `json:"expires_at"`
}

// New creates a draft with a fresh token and the given retention window.
func New(values map[string]any, ttl time.Duration) *Draft {
	now := time.Now()
	return &Draft{
		Token:     uuid.NewString(),
		Values:    values,
		SavedAt:   now,
		ExpiresAt: now.Add(ttl),
	}
}

// IsExpired reports whether the retention window has passed.
func (d *Draft) IsExpired() bool {
	return d != nil && time.Now().After(d.ExpiresAt)
}

// Touch restamps the draft, extending its retention window from now.
func (d *Draft) Touch(ttl time.Duration) {
	now := time.Now()
	d.SavedAt = now
	d.ExpiresAt = now.Add(ttl)
}

// ValidateToken rejects tokens that are not well-formed UUIDs so malformed
// client input never reaches a store lookup.
func ValidateToken(token string) error {
	if _, err := uuid.Parse(token); err != nil {
		return ErrInvalidToken
	}
	return nil
}

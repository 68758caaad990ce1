package draft

import "context"

// Store defines the interface for draft persistence.
type Store interface {
	// Save creates or overwrites the draft under its token.
	Save(ctx context.Context, draft *Draft) error

	// Get retrieves a draft by token.
	Get(ctx context.Context, token string) (*Draft, error)

	// Delete removes a draft by token. Deleting an absent token is not an error.
	Delete(ctx context.Context, token string) error

	// DeleteExpired removes all drafts past their retention window.
	DeleteExpired(ctx context.Context) error
}

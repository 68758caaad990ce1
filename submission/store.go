package submission

import (
	"context"

	"github.com/google/uuid"
)

// Store defines the interface for submission persistence.
type Store interface {
	// Record persists an accepted submission. Recording an ID twice fails
	// with ErrDuplicateID.
	Record(ctx context.Context, sub *Submission) error

	// Get retrieves a submission by ID.
	Get(ctx context.Context, id uuid.UUID) (*Submission, error)

	// List returns submissions for a form, newest first.
	List(ctx context.Context, form string, limit, offset int) ([]Submission, error)
}

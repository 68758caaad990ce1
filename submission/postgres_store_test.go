package submission_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"github.com/dmitrymomot/formkit/submission"
)

// Validation paths run before any query, so a nil pool suffices.
func TestPostgresStoreValidation(t *testing.T) {
	t.Parallel()

	store := submission.NewPostgresStore(nil)
	ctx := context.Background()

	t.Run("rejects a nil submission", func(t *testing.T) {
		t.Parallel()
		assert.ErrorIs(t, store.Record(ctx, nil), submission.ErrInvalidSubmission)
	})

	t.Run("rejects a submission without an id", func(t *testing.T) {
		t.Parallel()
		sub := &submission.Submission{Form: "contact"}
		assert.ErrorIs(t, store.Record(ctx, sub), submission.ErrInvalidSubmission)
	})

	t.Run("rejects a submission without a form name", func(t *testing.T) {
		t.Parallel()
		sub := &submission.Submission{ID: uuid.New()}
		assert.ErrorIs(t, store.Record(ctx, sub), submission.ErrInvalidSubmission)
	})
}

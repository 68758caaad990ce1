package notify

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// Notice describes an accepted submission for delivery to form owners.
type Notice struct {
	Form         string
	SubmissionID uuid.UUID
	Values       map[string]any
	ClientIP     string
	ReceivedAt   time.Time
}

// Notifier delivers submission notices. Implementations must treat delivery
// as best-effort; callers decide whether a failure blocks the submission.
type Notifier interface {
	SubmissionReceived(ctx context.Context, notice Notice) error
}

package notify

import "errors"

var (
	// ErrInvalidConfig indicates a notifier was constructed with incomplete settings.
	ErrInvalidConfig = errors.New("invalid notifier config")

	// ErrFailedToSend indicates the notification could not be delivered.
	ErrFailedToSend = errors.New("failed to send notification")

	// ErrInvalidSignature indicates a webhook delivery failed authentication.
	ErrInvalidSignature = errors.New("invalid webhook signature")
)

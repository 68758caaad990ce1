package draft

import "errors"

var (
	// ErrNotFound indicates no draft exists for the given token.
	ErrNotFound = errors.New("draft not found")

	// ErrExpired indicates the draft exists but its retention window passed.
	ErrExpired = errors.New("draft expired")

	// ErrInvalidDraft indicates a nil draft or one without a token.
	ErrInvalidDraft = errors.New("invalid draft")

	// ErrInvalidToken indicates a token that is not a valid UUID.
	ErrInvalidToken = errors.New("invalid draft token")
)

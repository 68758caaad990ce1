package config

import "errors"

var (
	// ErrParsingConfig wraps failures from parsing environment variables
	// into the target struct, including missing required values.
	ErrParsingConfig = errors.New("failed to parse config")

	// ErrNilPointer is returned when Load receives a nil config pointer.
	ErrNilPointer = errors.New("nil pointer provided")
)

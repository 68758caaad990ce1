package upload

import "errors"

var (
	// ErrNilFileHeader is returned when a nil file header is provided.
	ErrNilFileHeader = errors.New("file header is nil")

	// ErrInvalidPath is returned when a key contains traversal attempts.
	ErrInvalidPath = errors.New("invalid path")

	// ErrNotFound is returned when no stored attachment matches the key.
	ErrNotFound = errors.New("attachment not found")

	// ErrInvalidConfig is returned when a storage backend is misconfigured.
	ErrInvalidConfig = errors.New("invalid storage config")

	// ErrFailedToOpenFile is returned when the uploaded part cannot be opened.
	ErrFailedToOpenFile = errors.New("failed to open file")

	// ErrFailedToReadFile is returned when the uploaded part cannot be read.
	ErrFailedToReadFile = errors.New("failed to read file")

	// ErrFailedToWriteFile is returned when the attachment cannot be written.
	ErrFailedToWriteFile = errors.New("failed to write file")
)

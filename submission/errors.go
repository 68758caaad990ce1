package submission

import "errors"

var (
	// ErrNotFound indicates no submission exists for the given ID.
	ErrNotFound = errors.New("submission not found")

	// ErrInvalidSubmission indicates a nil submission or one without an ID or form name.
	ErrInvalidSubmission = errors.New("invalid submission")

	// ErrDuplicateID indicates a submission ID was recorded twice.
	ErrDuplicateID = errors.New("duplicate submission id")

	// ErrFailedToParseDBConfig indicates the connection string could not be parsed.
	ErrFailedToParseDBConfig = errors.New("failed to parse db config")

	// ErrFailedToOpenDBConnection indicates all connection attempts failed.
	ErrFailedToOpenDBConnection = errors.New("failed to open db connection")

	// ErrFailedToApplyMigrations indicates the schema migration run failed.
	ErrFailedToApplyMigrations = errors.New("failed to apply migrations")
)

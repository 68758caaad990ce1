package binder

import "errors"

// Binding errors. Handlers can classify failures with errors.Is and map them
// to 400/415 responses.
var (
	// ErrMissingContentType is returned when a body-carrying request has no
	// Content-Type header.
	ErrMissingContentType = errors.New("missing content type")

	// ErrUnsupportedMediaType is returned when the Content-Type does not match
	// the binder being used.
	ErrUnsupportedMediaType = errors.New("unsupported media type")

	// ErrInvalidForm is returned when form data cannot be parsed or a field
	// value cannot be decoded.
	ErrInvalidForm = errors.New("invalid form data")

	// ErrInvalidQuery is returned when a query parameter cannot be decoded.
	ErrInvalidQuery = errors.New("invalid query parameter")

	// ErrInvalidJSON is returned when the body is not a well-formed JSON
	// object or a value cannot be assigned to its field.
	ErrInvalidJSON = errors.New("invalid JSON")
)

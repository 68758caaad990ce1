package handler

import "net/http"

// HTTPError carries an HTTP status code together with a stable machine key.
// The key doubles as a translation catalog lookup, so handlers can return the
// same error to API clients and localized pages.
type HTTPError struct {
	Code int    `json:"code"`
	Key  string `json:"key"`
}

// Error implements the error interface.
func (e HTTPError) Error() string { return e.Key }

// NewHTTPError creates an HTTPError with the given status code and key.
func NewHTTPError(code int, key string) HTTPError {
	return HTTPError{Code: code, Key: key}
}

// Predefined HTTP errors for common status codes.
var (
	ErrBadRequest            = NewHTTPError(http.StatusBadRequest, "bad_request")
	ErrUnauthorized          = NewHTTPError(http.StatusUnauthorized, "unauthorized")
	ErrForbidden             = NewHTTPError(http.StatusForbidden, "forbidden")
	ErrNotFound              = NewHTTPError(http.StatusNotFound, "not_found")
	ErrMethodNotAllowed      = NewHTTPError(http.StatusMethodNotAllowed, "method_not_allowed")
	ErrConflict              = NewHTTPError(http.StatusConflict, "conflict")
	ErrGone                  = NewHTTPError(http.StatusGone, "gone")
	ErrRequestEntityTooLarge = NewHTTPError(http.StatusRequestEntityTooLarge, "request_entity_too_large")
	ErrUnsupportedMediaType  = NewHTTPError(http.StatusUnsupportedMediaType, "unsupported_media_type")
	ErrUnprocessableEntity   = NewHTTPError(http.StatusUnprocessableEntity, "unprocessable_entity")
	ErrTooManyRequests       = NewHTTPError(http.StatusTooManyRequests, "too_many_requests")
	ErrInternalServerError   = NewHTTPError(http.StatusInternalServerError, "internal_server_error")
	ErrNotImplemented        = NewHTTPError(http.StatusNotImplemented, "not_implemented")
	ErrServiceUnavailable    = NewHTTPError(http.StatusServiceUnavailable, "service_unavailable")
)

package binder

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/dmitrymomot/formkit"
)

// JSON binds an application/json body into the group's fields.
//
// The body must be a single JSON object; its members assign to the matching
// fields through Group.Apply, tolerating the representations encoding/json
// produces (float64 numbers, []any arrays, RFC 3339 timestamp strings).
// Unknown members are ignored so clients may post supersets of the form.
func JSON(r *http.Request, g *formkit.Group) error {
	contentType := r.Header.Get("Content-Type")
	if contentType == "" {
		return fmt.Errorf("%w: expected application/json", ErrMissingContentType)
	}
	if mt := mediaType(contentType); mt != "application/json" {
		return fmt.Errorf("%w: got %s, expected application/json", ErrUnsupportedMediaType, mt)
	}

	decoder := json.NewDecoder(r.Body)

	var values map[string]any
	if err := decoder.Decode(&values); err != nil {
		if errors.Is(err, io.EOF) {
			return fmt.Errorf("%w: empty body", ErrInvalidJSON)
		}
		return fmt.Errorf("%w: %v", ErrInvalidJSON, err)
	}

	// Ensure the entire body was consumed
	var extra json.RawMessage
	if err := decoder.Decode(&extra); err != io.EOF {
		return fmt.Errorf("%w: unexpected data after JSON object", ErrInvalidJSON)
	}

	if err := g.Apply(values); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidJSON, err)
	}
	return nil
}

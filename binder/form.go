package binder

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/dmitrymomot/formkit"
)

// multipartMaxMemory bounds the in-memory portion of a multipart parse;
// larger file parts spill to temp files.
const multipartMaxMemory = 32 << 20

// Form binds a form-encoded request body into the group's fields.
//
// Accepts application/x-www-form-urlencoded and multipart/form-data. Values
// decode through each field's decoder; unknown form keys are ignored and
// fields absent from the post keep their current value, so bind into a
// freshly constructed group:
//
//	form := signup.NewForm()
//	if err := binder.Form(r, form.Fields); err != nil {
//		// 400 or 415, depending on errors.Is
//	}
//	if err := form.Fields.Validate(); err != nil {
//		// 422 with the per-field error maps
//	}
func Form(r *http.Request, g *formkit.Group) error {
	contentType := r.Header.Get("Content-Type")
	if contentType == "" {
		return fmt.Errorf("%w: expected application/x-www-form-urlencoded", ErrMissingContentType)
	}

	switch mediaType(contentType) {
	case "application/x-www-form-urlencoded":
		if err := r.ParseForm(); err != nil {
			return fmt.Errorf("%w: %v", ErrInvalidForm, err)
		}
	case "multipart/form-data":
		if err := r.ParseMultipartForm(multipartMaxMemory); err != nil {
			return fmt.Errorf("%w: %v", ErrInvalidForm, err)
		}
	default:
		return fmt.Errorf("%w: got %s, expected application/x-www-form-urlencoded", ErrUnsupportedMediaType, mediaType(contentType))
	}

	if err := g.Decode(r.Form); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidForm, err)
	}
	return nil
}

// mediaType strips parameters like charset or boundary from a Content-Type
// value.
func mediaType(contentType string) string {
	if idx := strings.Index(contentType, ";"); idx != -1 {
		return strings.TrimSpace(contentType[:idx])
	}
	return contentType
}

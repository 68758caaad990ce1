package formkit

import (
	"encoding/json"
	"errors"
	"maps"
	"slices"
	"strings"
)

// Errors maps an error kind to its detail payload. A nil or empty map means
// the checked value is valid. Kinds are stable identifiers ("required",
// "email", "min_len") and double as translation keys for message catalogs.
type Errors map[string]Detail

// Detail is the payload recorded under a single error kind. Exactly one shape
// is populated: a leaf message (Message plus optional interpolation Params),
// or a Nested error map produced by a namespacing validator.
type Detail struct {
	Message string         `json:"message,omitempty"`
	Params  map[string]any `json:"params,omitempty"`
	Nested  Errors         `json:"-"`
}

// IsNested reports whether the detail wraps a nested error map rather than a
// leaf message.
func (d Detail) IsNested() bool { return len(d.Nested) > 0 }

// MarshalJSON renders a nested detail as the inner error map itself, so a
// namespaced error serializes as {"ns":{"required":{...}}} without an
// intermediate wrapper object.
func (d Detail) MarshalJSON() ([]byte, error) {
	if d.IsNested() {
		return json.Marshal(d.Nested)
	}
	type leaf struct {
		Message string         `json:"message,omitempty"`
		Params  map[string]any `json:"params,omitempty"`
	}
	return json.Marshal(leaf{Message: d.Message, Params: d.Params})
}

// Error implements the error interface. Kinds are listed in sorted order so
// the message is deterministic.
func (e Errors) Error() string {
	if len(e) == 0 {
		return "no validation errors"
	}
	return "validation failed: " + strings.Join(e.Kinds(), ", ")
}

// IsEmpty reports whether the map records no errors.
func (e Errors) IsEmpty() bool { return len(e) == 0 }

// Has reports whether an error of the given kind is recorded.
func (e Errors) Has(kind string) bool {
	_, ok := e[kind]
	return ok
}

// Get returns the detail recorded under the given kind.
func (e Errors) Get(kind string) (Detail, bool) {
	d, ok := e[kind]
	return d, ok
}

// Kinds returns the recorded error kinds in sorted order.
func (e Errors) Kinds() []string {
	return slices.Sorted(maps.Keys(e))
}

// Merge combines other into the receiver and returns the result. The receiver
// may be nil. On duplicate kinds the entry from other wins.
func (e Errors) Merge(other Errors) Errors {
	if len(other) == 0 {
		return e
	}
	if e == nil {
		e = make(Errors, len(other))
	}
	for kind, detail := range other {
		e[kind] = detail
	}
	return e
}

// FormErrors aggregates per-field error maps from a full group validation
// pass, keyed by field name. Fields that validated clean are absent.
type FormErrors map[string]Errors

// Error implements the error interface.
func (e FormErrors) Error() string {
	if len(e) == 0 {
		return "no validation errors"
	}
	return "validation failed for fields: " + strings.Join(slices.Sorted(maps.Keys(e)), ", ")
}

// IsEmpty reports whether any field recorded an error.
func (e FormErrors) IsEmpty() bool { return len(e) == 0 }

// Field returns the error map recorded for the named field, or nil.
func (e FormErrors) Field(name string) Errors { return e[name] }

// ExtractFormErrors unwraps a FormErrors map from an error chain. Returns nil
// when the chain carries none, so callers can distinguish validation failures
// from infrastructure errors.
func ExtractFormErrors(err error) FormErrors {
	if err == nil {
		return nil
	}

	var formErrs FormErrors
	if errors.As(err, &formErrs) {
		return formErrs
	}

	return nil
}

// ExtractFieldErrors unwraps a single-field Errors map from an error chain,
// as returned by Group.ValidateField.
func ExtractFieldErrors(err error) Errors {
	if err == nil {
		return nil
	}

	var fieldErrs Errors
	if errors.As(err, &fieldErrs) {
		return fieldErrs
	}

	return nil
}

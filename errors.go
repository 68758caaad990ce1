package formkit

import "errors"

// Form model errors.
var (
	// ErrDuplicateField is returned when attaching an element whose name is
	// already taken within the group.
	ErrDuplicateField = errors.New("duplicate field name")

	// ErrFieldNotFound is returned when an operation names a field the group
	// does not contain.
	ErrFieldNotFound = errors.New("field not found")

	// ErrInvalidFieldName is returned when attaching an element with an empty name.
	ErrInvalidFieldName = errors.New("invalid field name")

	// ErrAlreadyAttached is returned when attaching an element that belongs to
	// another group. Detach it there first.
	ErrAlreadyAttached = errors.New("element already attached to another group")

	// ErrDecode is returned when a raw or typed value cannot be converted into
	// the field's value type.
	ErrDecode = errors.New("cannot decode value")

	// ErrNoDecoder is returned when a field of an unsupported type receives raw
	// form input and no custom decoder was configured.
	ErrNoDecoder = errors.New("no decoder for field type")
)

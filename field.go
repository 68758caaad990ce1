package formkit

import (
	"fmt"
	"slices"
)

// Validator checks a field's current value and returns an error map, or nil
// when the value is valid. Validators read the field through its handle and
// never mutate it; a validator that needs another field's value should close
// over that field's handle and read it at call time.
type Validator[T any] func(field *Field[T]) Errors

// Watcher observes value changes on a field. Watchers run synchronously on
// SetValue in registration order, after the new value is assigned, so a
// watcher that triggers validation of another field sees current state.
type Watcher[T any] func(old, current T)

// Field is the handle for a single form input: its current value, its
// attachment to a parent group, and its validator and watcher lists. Fields
// are created by the caller, attached to a Group, and share the group's
// single-goroutine discipline: a Field is not safe for concurrent use.
type Field[T any] struct {
	name       string
	label      string
	value      T
	initial    T
	parent     *Group
	validators []Validator[T]
	decoder    Decoder[T]
	watchers   []watcherEntry[T]
	lastWatch  int
	errs       Errors
	touched    bool
}

type watcherEntry[T any] struct {
	id int
	fn Watcher[T]
}

// FieldOption configures a Field during construction.
type FieldOption[T any] func(*Field[T])

// WithValidators appends validators, run in the given order on every
// validation pass.
func WithValidators[T any](validators ...Validator[T]) FieldOption[T] {
	return func(f *Field[T]) {
		f.validators = append(f.validators, validators...)
	}
}

// WithDecoder replaces the built-in raw form decoder for this field. Required
// for value types the built-in decoder does not cover.
func WithDecoder[T any](decoder Decoder[T]) FieldOption[T] {
	return func(f *Field[T]) {
		f.decoder = decoder
	}
}

// WithLabel sets a human-readable label used by form descriptors.
func WithLabel[T any](label string) FieldOption[T] {
	return func(f *Field[T]) {
		f.label = label
	}
}

// NewField creates a detached field handle with the given name and initial
// value. Attach it to a Group to include it in validation passes.
func NewField[T any](name string, initial T, opts ...FieldOption[T]) *Field[T] {
	f := &Field[T]{
		name:    name,
		value:   initial,
		initial: initial,
	}
	for _, opt := range opts {
		opt(f)
	}
	return f
}

// Name returns the field's identifier within its group.
func (f *Field[T]) Name() string { return f.name }

// Label returns the human-readable label, falling back to the name.
func (f *Field[T]) Label() string {
	if f.label != "" {
		return f.label
	}
	return f.name
}

// Value returns the current value.
func (f *Field[T]) Value() T { return f.value }

// SetValue assigns a new value, marks the field touched, and notifies
// watchers in registration order. Watchers fire on every call, including
// assignments of an equal value.
func (f *Field[T]) SetValue(v T) {
	old := f.value
	f.value = v
	f.touched = true
	f.notify(old, v)
}

// Touched reports whether the value has been set since construction or the
// last Reset.
func (f *Field[T]) Touched() bool { return f.touched }

// Attached reports whether the field currently belongs to a group.
func (f *Field[T]) Attached() bool { return f.parent != nil }

// Group returns the parent group, or nil while detached.
func (f *Field[T]) Group() *Group { return f.parent }

// Watch registers a change observer and returns its unsubscribe function.
// Delivery is synchronous and follows registration order.
func (f *Field[T]) Watch(fn Watcher[T]) func() {
	f.lastWatch++
	id := f.lastWatch
	f.watchers = append(f.watchers, watcherEntry[T]{id: id, fn: fn})
	return func() {
		f.watchers = slices.DeleteFunc(f.watchers, func(e watcherEntry[T]) bool {
			return e.id == id
		})
	}
}

// Validate runs the field's validators in registration order, merges their
// error maps, records the result, and returns it. A nil result means valid.
func (f *Field[T]) Validate() Errors {
	var merged Errors
	for _, validate := range f.validators {
		merged = merged.Merge(validate(f))
	}
	f.errs = merged
	return merged
}

// Err returns the error map recorded by the most recent validation pass, or
// nil if the field has not been validated or validated clean.
func (f *Field[T]) Err() Errors { return f.errs }

// Valid reports whether the most recent validation pass recorded no errors.
// A never-validated field reports valid.
func (f *Field[T]) Valid() bool { return len(f.errs) == 0 }

// Reset restores the initial value, clears recorded errors, and marks the
// field untouched. Watchers are not notified.
func (f *Field[T]) Reset() {
	f.value = f.initial
	f.errs = nil
	f.touched = false
}

// notify delivers a change to watchers over a snapshot of the list, so a
// watcher may subscribe or unsubscribe without corrupting the iteration.
func (f *Field[T]) notify(old, current T) {
	for _, w := range slices.Clone(f.watchers) {
		w.fn(old, current)
	}
}

func (f *Field[T]) attachTo(g *Group) error {
	if f.parent != nil && f.parent != g {
		return fmt.Errorf("%w: %s", ErrAlreadyAttached, f.name)
	}
	f.parent = g
	return nil
}

func (f *Field[T]) detach() {
	f.parent = nil
}

func (f *Field[T]) anyValue() any { return f.value }

// setFromAny assigns a dynamically typed value, tolerating the
// representations encoding/json produces for non-string field types.
func (f *Field[T]) setFromAny(v any) error {
	if tv, ok := v.(T); ok {
		f.SetValue(tv)
		return nil
	}
	if tv, ok := convertAny[T](v); ok {
		f.SetValue(tv)
		return nil
	}
	return fmt.Errorf("%w: field %s: cannot assign %T", ErrDecode, f.name, v)
}

// decodeRaw assigns a value decoded from raw form input, preferring the
// field's custom decoder over the built-in one.
func (f *Field[T]) decodeRaw(raw []string) error {
	decode := f.decoder
	if decode == nil {
		decode = decodeValue[T]
	}
	v, err := decode(raw)
	if err != nil {
		return fmt.Errorf("field %s: %w", f.name, err)
	}
	f.SetValue(v)
	return nil
}

func (f *Field[T]) watchChange(fn func()) {
	f.Watch(func(T, T) { fn() })
}

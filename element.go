package formkit

// Element is the group-facing surface of a form field. Field[T] is the only
// implementation: the interface exists so heterogeneously typed fields can
// share one Group, and its unexported methods keep it sealed to this package.
type Element interface {
	// Name returns the field's identifier within its group.
	Name() string
	// Validate runs the field's validators in registration order and records
	// the merged result.
	Validate() Errors
	// Err returns the error map recorded by the most recent validation pass.
	Err() Errors
	// Valid reports whether the most recent validation pass recorded no errors.
	Valid() bool
	// Reset restores the initial value and clears recorded errors silently,
	// without notifying watchers.
	Reset()

	attachTo(g *Group) error
	detach()
	anyValue() any
	setFromAny(v any) error
	decodeRaw(raw []string) error
	watchChange(fn func())
}

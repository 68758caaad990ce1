package rules

import (
	"slices"

	"github.com/dmitrymomot/formkit"
)

// OneOf fails with kind "one_of" when the value is not among the allowed
// choices. The allowed set is captured at construction; include the field's
// zero value when "unselected" should pass.
func OneOf[T comparable](allowed ...T) formkit.Validator[T] {
	choices := slices.Clone(allowed)
	return func(f *formkit.Field[T]) formkit.Errors {
		if slices.Contains(choices, f.Value()) {
			return nil
		}
		return formkit.Errors{"one_of": formkit.Detail{
			Message: "must be one of the allowed values",
			Params:  map[string]any{"field": f.Name(), "values": choices},
		}}
	}
}

// NoneOf fails with kind "none_of" when the value is among the forbidden
// choices.
func NoneOf[T comparable](forbidden ...T) formkit.Validator[T] {
	choices := slices.Clone(forbidden)
	return func(f *formkit.Field[T]) formkit.Errors {
		if !slices.Contains(choices, f.Value()) {
			return nil
		}
		return formkit.Errors{"none_of": formkit.Detail{
			Message: "is not an allowed value",
			Params:  map[string]any{"field": f.Name(), "values": choices},
		}}
	}
}

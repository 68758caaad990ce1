package rules

import "github.com/dmitrymomot/formkit"

// MatchesField fails with kind "mismatch" when the value differs from another
// field's current value, read live at validation time. The password
// confirmation rule: pair it with a re-validation link from the other field
// so editing either side keeps the confirmation current.
func MatchesField[T comparable](other *formkit.Field[T]) formkit.Validator[T] {
	return func(f *formkit.Field[T]) formkit.Errors {
		if f.Value() == other.Value() {
			return nil
		}
		return formkit.Errors{"mismatch": formkit.Detail{
			Message: "must match the " + other.Label() + " field",
			Params:  map[string]any{"field": f.Name(), "other": other.Name()},
		}}
	}
}

package rules

import "github.com/dmitrymomot/formkit"

// Accepted fails with kind "accepted" unless the value is true. For consent
// checkboxes and terms-of-service confirmations.
func Accepted() formkit.Validator[bool] {
	return func(f *formkit.Field[bool]) formkit.Errors {
		if f.Value() {
			return nil
		}
		return formkit.Errors{"accepted": formkit.Detail{
			Message: "must be accepted",
			Params:  map[string]any{"field": f.Name()},
		}}
	}
}

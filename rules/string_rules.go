package rules

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/dmitrymomot/formkit"
)

// NonEmpty fails with kind "required" when the value is empty after trimming
// whitespace. The only string rule that rejects emptiness; every other rule
// passes empty values through so presence stays a separate concern.
func NonEmpty() formkit.Validator[string] {
	return func(f *formkit.Field[string]) formkit.Errors {
		if strings.TrimSpace(f.Value()) != "" {
			return nil
		}
		return formkit.Errors{"required": formkit.Detail{
			Message: "field is required",
			Params:  map[string]any{"field": f.Name()},
		}}
	}
}

// MinLen fails with kind "min_len" when a non-empty value is shorter than min
// characters. Length is counted in runes, not bytes.
func MinLen(min int) formkit.Validator[string] {
	return func(f *formkit.Field[string]) formkit.Errors {
		v := f.Value()
		if v == "" || utf8.RuneCountInString(v) >= min {
			return nil
		}
		return formkit.Errors{"min_len": formkit.Detail{
			Message: fmt.Sprintf("must be at least %d characters long", min),
			Params:  map[string]any{"field": f.Name(), "min": min},
		}}
	}
}

// MaxLen fails with kind "max_len" when the value is longer than max
// characters. Length is counted in runes, not bytes.
func MaxLen(max int) formkit.Validator[string] {
	return func(f *formkit.Field[string]) formkit.Errors {
		if utf8.RuneCountInString(f.Value()) <= max {
			return nil
		}
		return formkit.Errors{"max_len": formkit.Detail{
			Message: fmt.Sprintf("must be at most %d characters long", max),
			Params:  map[string]any{"field": f.Name(), "max": max},
		}}
	}
}

// LenBetween fails with kind "len_between" when a non-empty value's length in
// runes falls outside [min, max]. Panics if min > max.
func LenBetween(min, max int) formkit.Validator[string] {
	if min > max {
		panic(fmt.Sprintf("rules: LenBetween bounds inverted: %d > %d", min, max))
	}
	return func(f *formkit.Field[string]) formkit.Errors {
		v := f.Value()
		if v == "" {
			return nil
		}
		if n := utf8.RuneCountInString(v); n >= min && n <= max {
			return nil
		}
		return formkit.Errors{"len_between": formkit.Detail{
			Message: fmt.Sprintf("must be between %d and %d characters long", min, max),
			Params:  map[string]any{"field": f.Name(), "min": min, "max": max},
		}}
	}
}

package rules

import (
	"fmt"

	"github.com/dmitrymomot/formkit"
)

// Numeric constrains the numeric rule helpers to Go's built-in number types.
type Numeric interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 |
		~float32 | ~float64
}

// Min fails with kind "min" when the value is below min.
func Min[T Numeric](min T) formkit.Validator[T] {
	return func(f *formkit.Field[T]) formkit.Errors {
		if f.Value() >= min {
			return nil
		}
		return formkit.Errors{"min": formkit.Detail{
			Message: fmt.Sprintf("must be at least %v", min),
			Params:  map[string]any{"field": f.Name(), "min": min},
		}}
	}
}

// Max fails with kind "max" when the value is above max.
func Max[T Numeric](max T) formkit.Validator[T] {
	return func(f *formkit.Field[T]) formkit.Errors {
		if f.Value() <= max {
			return nil
		}
		return formkit.Errors{"max": formkit.Detail{
			Message: fmt.Sprintf("must be at most %v", max),
			Params:  map[string]any{"field": f.Name(), "max": max},
		}}
	}
}

// Between fails with kind "between" when the value falls outside [min, max].
// Panics if min > max.
func Between[T Numeric](min, max T) formkit.Validator[T] {
	if min > max {
		panic(fmt.Sprintf("rules: Between bounds inverted: %v > %v", min, max))
	}
	return func(f *formkit.Field[T]) formkit.Errors {
		if v := f.Value(); v >= min && v <= max {
			return nil
		}
		return formkit.Errors{"between": formkit.Detail{
			Message: fmt.Sprintf("must be between %v and %v", min, max),
			Params:  map[string]any{"field": f.Name(), "min": min, "max": max},
		}}
	}
}

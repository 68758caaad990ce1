package formkit_test

import (
	"encoding/json"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/formkit"
)

func TestErrors(t *testing.T) {
	t.Parallel()

	t.Run("error message lists kinds in sorted order", func(t *testing.T) {
		t.Parallel()

		errs := formkit.Errors{
			"required": formkit.Detail{Message: "value is required"},
			"email":    formkit.Detail{Message: "invalid email"},
		}
		assert.Equal(t, "validation failed: email, required", errs.Error())
		assert.Equal(t, []string{"email", "required"}, errs.Kinds())
	})

	t.Run("accessors report recorded kinds", func(t *testing.T) {
		t.Parallel()

		errs := formkit.Errors{"required": formkit.Detail{Message: "value is required"}}
		assert.True(t, errs.Has("required"))
		assert.False(t, errs.Has("email"))
		assert.False(t, errs.IsEmpty())

		detail, ok := errs.Get("required")
		require.True(t, ok)
		assert.Equal(t, "value is required", detail.Message)
		assert.False(t, detail.IsNested())

		assert.True(t, formkit.Errors(nil).IsEmpty())
	})

	t.Run("merge accepts a nil receiver and lets later entries win", func(t *testing.T) {
		t.Parallel()

		var errs formkit.Errors
		errs = errs.Merge(formkit.Errors{"a": formkit.Detail{Message: "first"}})
		errs = errs.Merge(formkit.Errors{"a": formkit.Detail{Message: "second"}, "b": formkit.Detail{Message: "added"}})
		errs = errs.Merge(nil)

		assert.Equal(t, formkit.Errors{
			"a": formkit.Detail{Message: "second"},
			"b": formkit.Detail{Message: "added"},
		}, errs)
	})

	t.Run("leaf details marshal as message and params", func(t *testing.T) {
		t.Parallel()

		errs := formkit.Errors{
			"min_len": formkit.Detail{Message: "too short", Params: map[string]any{"min": 3}},
		}
		data, err := json.Marshal(errs)
		require.NoError(t, err)
		assert.JSONEq(t, `{"min_len":{"message":"too short","params":{"min":3}}}`, string(data))
	})

	t.Run("nested details marshal as the inner map", func(t *testing.T) {
		t.Parallel()

		errs := formkit.Errors{
			"illuminatiError": formkit.Detail{Nested: formkit.Errors{
				"required": formkit.Detail{Message: "value is required"},
			}},
		}
		data, err := json.Marshal(errs)
		require.NoError(t, err)
		assert.JSONEq(t, `{"illuminatiError":{"required":{"message":"value is required"}}}`, string(data))
	})
}

func TestFormErrors(t *testing.T) {
	t.Parallel()

	t.Run("error message lists field names in sorted order", func(t *testing.T) {
		t.Parallel()

		formErrs := formkit.FormErrors{
			"name":  {"required": formkit.Detail{Message: "value is required"}},
			"email": {"email": formkit.Detail{Message: "invalid email"}},
		}
		assert.Equal(t, "validation failed for fields: email, name", formErrs.Error())
		assert.False(t, formErrs.IsEmpty())
		assert.True(t, formErrs.Field("name").Has("required"))
		assert.Nil(t, formErrs.Field("missing"))
	})

	t.Run("extract unwraps form errors from wrapped chains", func(t *testing.T) {
		t.Parallel()

		formErrs := formkit.FormErrors{"name": {"required": formkit.Detail{Message: "value is required"}}}
		wrapped := fmt.Errorf("handling signup form: %w", formErrs)

		got := formkit.ExtractFormErrors(wrapped)
		require.NotNil(t, got)
		assert.True(t, got.Field("name").Has("required"))
	})

	t.Run("extract returns nil for other errors", func(t *testing.T) {
		t.Parallel()

		assert.Nil(t, formkit.ExtractFormErrors(nil))
		assert.Nil(t, formkit.ExtractFormErrors(errors.New("connection refused")))
	})

	t.Run("extract field errors unwraps a single field map", func(t *testing.T) {
		t.Parallel()

		fieldErrs := formkit.Errors{"required": formkit.Detail{Message: "value is required"}}
		wrapped := fmt.Errorf("validating email: %w", fieldErrs)

		got := formkit.ExtractFieldErrors(wrapped)
		require.NotNil(t, got)
		assert.True(t, got.Has("required"))
		assert.Nil(t, formkit.ExtractFieldErrors(errors.New("not validation")))
	})
}

package formkit_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dmitrymomot/formkit"
)

func TestField(t *testing.T) {
	t.Parallel()

	t.Run("set value marks touched and notifies watchers in order", func(t *testing.T) {
		t.Parallel()

		field := formkit.NewField("name", "initial")
		var seen []string
		field.Watch(func(old, cur string) { seen = append(seen, "first:"+old+"->"+cur) })
		field.Watch(func(old, cur string) { seen = append(seen, "second:"+old+"->"+cur) })

		assert.False(t, field.Touched())
		field.SetValue("changed")

		assert.True(t, field.Touched())
		assert.Equal(t, "changed", field.Value())
		assert.Equal(t, []string{"first:initial->changed", "second:initial->changed"}, seen)
	})

	t.Run("unwatch stops delivery", func(t *testing.T) {
		t.Parallel()

		field := formkit.NewField("name", "")
		notified := 0
		unwatch := field.Watch(func(string, string) { notified++ })

		field.SetValue("once")
		unwatch()
		field.SetValue("twice")

		assert.Equal(t, 1, notified)
	})

	t.Run("watcher registered during delivery misses the in-flight change", func(t *testing.T) {
		t.Parallel()

		field := formkit.NewField("count", 0)
		var calls []string
		field.Watch(func(int, int) {
			calls = append(calls, "outer")
			if len(calls) == 1 {
				field.Watch(func(int, int) { calls = append(calls, "inner") })
			}
		})

		field.SetValue(1)
		assert.Equal(t, []string{"outer"}, calls)

		field.SetValue(2)
		assert.Equal(t, []string{"outer", "outer", "inner"}, calls)
	})

	t.Run("validators run in order and later entries win on merge", func(t *testing.T) {
		t.Parallel()

		first := func(*formkit.Field[string]) formkit.Errors {
			return formkit.Errors{
				"a":      formkit.Detail{Message: "from first"},
				"shared": formkit.Detail{Message: "from first"},
			}
		}
		second := func(*formkit.Field[string]) formkit.Errors {
			return formkit.Errors{
				"b":      formkit.Detail{Message: "from second"},
				"shared": formkit.Detail{Message: "from second"},
			}
		}
		field := formkit.NewField("name", "", formkit.WithValidators(first, second))

		got := field.Validate()

		assert.Equal(t, formkit.Errors{
			"a":      formkit.Detail{Message: "from first"},
			"b":      formkit.Detail{Message: "from second"},
			"shared": formkit.Detail{Message: "from second"},
		}, got)
		assert.Equal(t, got, field.Err())
		assert.False(t, field.Valid())
	})

	t.Run("validation result replaces the previous one", func(t *testing.T) {
		t.Parallel()

		required := func(f *formkit.Field[string]) formkit.Errors {
			if f.Value() != "" {
				return nil
			}
			return formkit.Errors{"required": formkit.Detail{Message: "value is required"}}
		}
		field := formkit.NewField("email", "", formkit.WithValidators(required))

		assert.False(t, field.Validate().IsEmpty())
		assert.False(t, field.Valid())

		field.SetValue("x@y.com")
		assert.Nil(t, field.Validate())
		assert.True(t, field.Valid())
		assert.Nil(t, field.Err())
	})

	t.Run("never-validated field reports valid", func(t *testing.T) {
		t.Parallel()

		field := formkit.NewField("name", "")
		assert.True(t, field.Valid())
		assert.Nil(t, field.Err())
	})

	t.Run("reset restores the initial value silently", func(t *testing.T) {
		t.Parallel()

		failing := func(*formkit.Field[string]) formkit.Errors {
			return formkit.Errors{"broken": formkit.Detail{Message: "always fails"}}
		}
		field := formkit.NewField("name", "init", formkit.WithValidators(failing))
		notified := 0
		field.Watch(func(string, string) { notified++ })

		field.SetValue("other")
		field.Validate()
		field.Reset()

		assert.Equal(t, "init", field.Value())
		assert.False(t, field.Touched())
		assert.True(t, field.Valid())
		assert.Nil(t, field.Err())
		assert.Equal(t, 1, notified)
	})

	t.Run("label falls back to the field name", func(t *testing.T) {
		t.Parallel()

		plain := formkit.NewField("email", "")
		assert.Equal(t, "email", plain.Label())

		labeled := formkit.NewField("email", "", formkit.WithLabel[string]("Email address"))
		assert.Equal(t, "Email address", labeled.Label())
	})
}

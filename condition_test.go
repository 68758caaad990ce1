package formkit_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dmitrymomot/formkit"
)

func TestConditions(t *testing.T) {
	t.Parallel()

	yes := formkit.ConditionFunc(func() bool { return true })
	no := formkit.ConditionFunc(func() bool { return false })

	t.Run("condition func adapts plain functions", func(t *testing.T) {
		t.Parallel()

		assert.True(t, yes.Evaluate())
		assert.False(t, no.Evaluate())
	})

	t.Run("not inverts the wrapped condition", func(t *testing.T) {
		t.Parallel()

		assert.False(t, formkit.Not(yes).Evaluate())
		assert.True(t, formkit.Not(no).Evaluate())
	})

	t.Run("and short-circuits at the first false operand", func(t *testing.T) {
		t.Parallel()

		evaluated := false
		probe := formkit.ConditionFunc(func() bool { evaluated = true; return true })

		assert.False(t, formkit.And(no, probe).Evaluate())
		assert.False(t, evaluated)
		assert.True(t, formkit.And(yes, probe).Evaluate())
		assert.True(t, evaluated)
		assert.True(t, formkit.And().Evaluate())
	})

	t.Run("or short-circuits at the first true operand", func(t *testing.T) {
		t.Parallel()

		evaluated := false
		probe := formkit.ConditionFunc(func() bool { evaluated = true; return false })

		assert.True(t, formkit.Or(yes, probe).Evaluate())
		assert.False(t, evaluated)
		assert.False(t, formkit.Or(no, probe).Evaluate())
		assert.True(t, evaluated)
		assert.False(t, formkit.Or().Evaluate())
	})

	t.Run("truthy reads the bool field live", func(t *testing.T) {
		t.Parallel()

		checkbox := formkit.NewField("checkbox", false)
		cond := formkit.Truthy(checkbox)

		assert.False(t, cond.Evaluate())
		checkbox.SetValue(true)
		assert.True(t, cond.Evaluate())
		checkbox.SetValue(false)
		assert.False(t, cond.Evaluate())
	})

	t.Run("is reads the field live and compares", func(t *testing.T) {
		t.Parallel()

		plan := formkit.NewField("plan", "free")
		cond := formkit.Is(plan, "pro")

		assert.False(t, cond.Evaluate())
		plan.SetValue("pro")
		assert.True(t, cond.Evaluate())
	})
}

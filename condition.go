package formkit

// Condition is the activation predicate consumed by When. It is evaluated
// fresh on every validation pass, so implementations are free to close over
// external mutable state (another field's value, a feature flag, the clock).
// Evaluate must not block: validation passes run synchronously.
type Condition interface {
	Evaluate() bool
}

// ConditionFunc adapts a plain function to the Condition interface.
type ConditionFunc func() bool

// Evaluate calls the wrapped function.
func (fn ConditionFunc) Evaluate() bool { return fn() }

// Not inverts a condition.
func Not(cond Condition) Condition {
	return ConditionFunc(func() bool { return !cond.Evaluate() })
}

// And combines conditions with logical AND. Operands are evaluated left to
// right and evaluation stops at the first false, so later conditions may rely
// on earlier ones holding. And() with no operands is true.
func And(conds ...Condition) Condition {
	return ConditionFunc(func() bool {
		for _, cond := range conds {
			if !cond.Evaluate() {
				return false
			}
		}
		return true
	})
}

// Or combines conditions with logical OR, short-circuiting at the first true.
// Or() with no operands is false.
func Or(conds ...Condition) Condition {
	return ConditionFunc(func() bool {
		for _, cond := range conds {
			if cond.Evaluate() {
				return true
			}
		}
		return false
	})
}

// Truthy is a condition that reads a bool field's current value at evaluation
// time. The canonical "validate B only while checkbox A is ticked" predicate.
func Truthy(field *Field[bool]) Condition {
	return ConditionFunc(func() bool { return field.Value() })
}

// Is is a condition that holds while the field's current value equals want.
func Is[T comparable](field *Field[T], want T) Condition {
	return ConditionFunc(func() bool { return field.Value() == want })
}

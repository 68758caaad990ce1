package formkit

// WhenOption configures a conditional validator built by When.
type WhenOption func(*whenConfig)

type whenConfig struct {
	namespace string
}

// WithNamespace nests the base validator's error map one level deeper under
// the given key, so conditionally activated errors cannot collide with error
// kinds the field's other validators produce. An empty result is never
// namespaced: the wrapper appears only when there is an error to wrap.
func WithNamespace(namespace string) WhenOption {
	return func(cfg *whenConfig) {
		cfg.namespace = namespace
	}
}

// When decorates a base validator with an activation condition. The returned
// validator, on every invocation:
//
//  1. returns nil immediately if the field handle is nil or detached from its
//     group, regardless of the condition: a detached field has no meaningful
//     validation context and must not surface stale errors;
//  2. evaluates the condition fresh, holding no cached state between passes;
//  3. returns nil without invoking the base validator when the condition is
//     false, so the base validator must not carry required side effects;
//  4. otherwise returns the base validator's result, wrapped under the
//     WithNamespace key when one was configured and the result is non-empty.
//
// When never mutates the field handle, the condition, or the base validator.
// A panicking condition or base validator propagates to the caller: that is a
// programming error in the form's wiring, not a validation failure.
func When[T any](cond Condition, base Validator[T], opts ...WhenOption) Validator[T] {
	var cfg whenConfig
	for _, opt := range opts {
		opt(&cfg)
	}

	return func(field *Field[T]) Errors {
		if field == nil || !field.Attached() {
			return nil
		}
		if !cond.Evaluate() {
			return nil
		}
		errs := base(field)
		if len(errs) == 0 {
			return nil
		}
		if cfg.namespace == "" {
			return errs
		}
		return Errors{cfg.namespace: Detail{Nested: errs}}
	}
}

// Package rules provides the base validator catalog for formkit fields:
// small constructors that each return a formkit.Validator bound to a stable
// error kind.
//
// Every rule reads the field's current value through its handle at call time
// and returns an error map with exactly one kind on failure, carrying the
// interpolation parameters a message catalog needs ("min", "max", "values",
// and the field name under "field"). Kinds double as translation keys.
//
// # Architecture
//
// Each source file groups a family of rules for one domain (string_rules.go,
// format_rules.go, numeric_rules.go, ...). Constructors hold no state beyond
// their configuration, so rules are reusable across fields and goroutine-safe
// to construct; evaluation follows the single-goroutine discipline of the
// group they validate.
//
// # Composability
//
// Presence and format are separate concerns: NonEmpty is the only rule that
// fails on an empty string. Format and length rules pass empty values through,
// so an optional field stays clean until filled and a conditionally required
// field reports exactly one kind per problem:
//
//	email := formkit.NewField("email", "",
//		formkit.WithValidators(
//			formkit.When(formkit.Truthy(subscribe), rules.NonEmpty()),
//			rules.Email(),
//		),
//	)
//
// # Error Handling
//
// Rules never return infrastructure errors; a rule either passes (nil) or
// records its kind in the returned map. Programming errors in rule
// configuration (a nil pattern, inverted bounds) panic at construction time.
package rules

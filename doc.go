// Package formkit provides a server-side reactive form model with
// conditional validation for Go web applications.
//
// A form is a Group of typed Field handles. Each field carries its current
// value, an ordered validator list, and an ordered watcher list. Validation
// is declarative: validators are pure functions from a field handle to an
// error map, and cross-field dependencies are expressed through conditions
// that read other fields' values at validation time.
//
// # Conditional Validation
//
// When decorates any base validator with an activation condition that is
// re-evaluated on every validation pass:
//
//	newsletter := formkit.NewField("newsletter", false)
//	email := formkit.NewField("contact_email", "",
//		formkit.WithValidators(
//			formkit.When(
//				formkit.Truthy(newsletter),
//				rules.NonEmpty(),
//				formkit.WithNamespace("newsletter_required"),
//			),
//		),
//	)
//
// While the checkbox is off, the email field validates clean and the base
// validator never runs. Once it is on, a missing email reports
// {"newsletter_required": {"required": ...}}: the namespace keeps the
// conditional error from colliding with the field's unconditional rules.
//
// # Reactive Re-validation
//
// Value changes propagate synchronously. SetValue notifies the field's
// watchers in registration order, and RevalidateOn builds on that to keep
// dependent fields current:
//
//	form, _ := formkit.NewGroup(newsletter, email)
//	_ = form.RevalidateOn("newsletter", "contact_email")
//
//	newsletter.SetValue(true) // email is re-validated before this returns
//
// There is no background work and no implicit subscription mechanism: every
// link is registered explicitly and delivers in a guaranteed order.
//
// # Error Model
//
// Validators return Errors, an open map from error kind ("required",
// "min_len") to a Detail payload. Details are either leaf messages with
// interpolation parameters or, for namespaced errors, a nested error map.
// Group.Validate aggregates per-field maps into a FormErrors value that
// implements the error interface; unwrap it from an error chain with
// ExtractFormErrors.
//
// # Concurrency
//
// A Group and its fields are deliberately not goroutine-safe. The model is
// single-goroutine, synchronous, and cooperative, matching request-scoped
// form handling: construct one group per request or session and let each
// validation pass run to completion.
//
// Subpackages supply the surrounding toolkit: rules (base validator catalog),
// binder (HTTP request binding), handler (JSON and live-validation
// responses), i18n (error message catalogs), draft (autosave stores),
// submission (durable submission stores), notify (submission notifications),
// upload (file-field storage), config (environment loading), and logger
// (slog construction). The modules tree carries complete feature modules
// built from these parts; modules/signup is the reference wiring.
package formkit

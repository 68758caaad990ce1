// Package signup is the reference wiring of a complete form flow: a typed
// field group with conditional validation, HTTP binding, live validation,
// resumable drafts, avatar uploads, and submission recording with owner
// notification.
//
// The form couples a newsletter checkbox to a conditionally required contact
// email: ticking the checkbox re-validates the email synchronously and nests
// the resulting required error under a dedicated namespace. The same form
// constructor drives the live validation endpoint, so a page sees the error
// appear the moment the checkbox changes.
//
// Construct the service, then mount its handler:
//
//	var cfg signup.Config
//	config.MustLoad(&cfg)
//
//	svc := signup.NewService(cfg,
//		signup.WithSubmissionStore(store),
//		signup.WithNotifier(notifier),
//	)
//	r.Mount("/signup", svc.Handle())
//
// Every collaborator is optional: the zero service validates, accepts, and
// drafts entirely in memory, which suits tests and local development.
package signup

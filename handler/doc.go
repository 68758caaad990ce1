// Package handler provides the HTTP layer for form endpoints: typed handler
// functions, response types for JSON, HTML, redirects and SSE streams, and a
// live validation bridge for DataStar pages.
//
// # Core Concepts
//
// Handlers are plain functions over a Context that return a Response. The
// Response decides how to render itself, so one handler can serve API clients
// and DataStar pages from the same code path:
//
//	h := handler.HandlerFunc[handler.Context](
//		func(ctx handler.Context) handler.Response {
//			form := signup.NewForm()
//			if err := binder.Form(ctx.Request(), form.Fields); err != nil {
//				return handler.JSONError(err)
//			}
//			if err := form.Fields.Validate(); err != nil {
//				return handler.JSONError(err)
//			}
//			return handler.Redirect("/signup/thanks")
//		},
//	)
//
//	http.HandleFunc("/signup", handler.Wrap(h))
//
// WrapForm removes the binding boilerplate by constructing a fresh group per
// request and binding it from the payload before the handler runs:
//
//	http.HandleFunc("/signup", handler.WrapForm(signup.NewFormGroup,
//		func(ctx handler.Context, form *formkit.Group) handler.Response {
//			if err := form.Validate(); err != nil {
//				return handler.JSONError(err)
//			}
//			return handler.Redirect("/signup/thanks")
//		},
//	))
//
// # Response Types
//
// JSON responses use a stable envelope with data, meta and error sections.
// Validation failures serialize their per-field error maps under
// error.fields:
//
//	handler.JSON(data)                      // 200 OK with data
//	handler.JSON(data, handler.WithJSONStatus(201))
//	handler.JSONError(err)                  // classified error response
//
// HTML responses carry pre-rendered markup, patched over SSE for DataStar
// requests and written directly otherwise:
//
//	handler.HTML(page.String())
//	handler.HTMLPartial(fragment, full, handler.WithTarget("#signup-form"))
//
// Redirects default to 303 See Other so refreshing after a form post cannot
// resubmit, and switch to a client-side SSE redirect for DataStar:
//
//	handler.Redirect("/signup/thanks")
//	handler.RedirectBack("/")
//
// Long-lived streams run a handler over a StreamContext:
//
//	handler.SSE(func(stream handler.StreamContext) error {
//		return stream.SendSignals(map[string]any{"connected": true})
//	})
//
// # Live Validation
//
// LiveValidate turns a form constructor into an endpoint that re-validates on
// every input change. The page posts its signals, the server rebuilds the
// form, applies the signals so conditional rules see fresh state, validates,
// and patches the field errors back:
//
//	r.Post("/signup/validate", handler.LiveValidate(signup.NewFormGroup))
//
// # Error Handling
//
// Errors are classified before rendering: validation failures map to 422 with
// field details, binding failures to 400 or 415, HTTPError values to their
// own status code, everything else to 500. NewErrorHandler builds an
// app-level handler that logs with the matching severity and renders an error
// page, toast patch or error signals depending on the request type.
package handler

// Package binder populates form groups from HTTP requests.
//
// Each binder reads one request surface and routes it through the group's
// decode or apply path: Form handles urlencoded and multipart bodies, JSON
// handles application/json objects, Query reads URL parameters, and File and
// Files pull multipart uploads out by field name. Unknown keys are ignored
// everywhere, and fields absent from the request keep their current value,
// so bind into a freshly constructed group.
//
// # Usage
//
//	form := signup.NewForm()
//	if err := binder.Form(r, form.Fields); err != nil {
//		// 400 or 415, depending on errors.Is
//	}
//	avatar, err := binder.File(r, "avatar")
//	if err != nil {
//		// 400
//	}
//	if err := form.Fields.Validate(); err != nil {
//		// 422 with the per-field error maps
//	}
//
// Binding and validation stay separate on purpose: a bind failure means the
// request was malformed, a validation failure means the user's input was.
//
// # Error Handling
//
// Binders fail with wrapped sentinels so handlers can classify without string
// matching:
//
//   - ErrMissingContentType: body-carrying request without a Content-Type
//   - ErrUnsupportedMediaType: Content-Type does not match the binder
//   - ErrInvalidForm: unparseable form body or undecodable field value
//   - ErrInvalidQuery: undecodable query parameter
//   - ErrInvalidJSON: malformed JSON body or unassignable member
//
// The handler package maps these to 400 and 415 responses automatically.
package binder

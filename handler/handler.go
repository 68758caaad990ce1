package handler

import (
	"net/http"
	"strings"

	"github.com/dmitrymomot/formkit"
	"github.com/dmitrymomot/formkit/binder"
)

// HandlerFunc provides type-safe HTTP request handling with custom context
// support. C must implement the Context interface. Handlers bind and validate
// their own form groups and return a Response describing the outcome.
//
// Example:
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
//			return handler.JSON(form.Fields.Values())
//		},
//	)
type HandlerFunc[C Context] func(ctx C) Response

// Response renders itself to an http.ResponseWriter.
// Implementations should set headers, status code, and write body.
// Render errors are passed to the wrap error handler.
type Response interface {
	Render(w http.ResponseWriter, r *http.Request) error
}

// FormHandlerFunc handles a request whose form group has already been bound
// from the request payload. The group is bound but not validated.
type FormHandlerFunc[C Context] func(ctx C, form *formkit.Group) Response

// ErrorHandler handles errors from binding or rendering.
type ErrorHandler[C Context] func(ctx C, err error)

// Decorator wraps a HandlerFunc to add cross-cutting functionality.
// Decorators are applied in order, with the first decorator in the list
// being the outermost wrapper.
type Decorator[C Context] func(HandlerFunc[C]) HandlerFunc[C]

// WrapOption configures the Wrap function.
type WrapOption[C Context] func(*wrapConfig[C])

// wrapConfig holds configuration for Wrap.
type wrapConfig[C Context] struct {
	errorHandler   ErrorHandler[C]
	contextFactory func(http.ResponseWriter, *http.Request) C
	decorators     []Decorator[C]
}

// WithErrorHandler sets a custom error handler.
func WithErrorHandler[C Context](h ErrorHandler[C]) WrapOption[C] {
	return func(c *wrapConfig[C]) {
		if h != nil {
			c.errorHandler = h
		}
	}
}

// WithContextFactory sets a custom context factory.
func WithContextFactory[C Context](f func(http.ResponseWriter, *http.Request) C) WrapOption[C] {
	return func(c *wrapConfig[C]) {
		if f != nil {
			c.contextFactory = f
		}
	}
}

// WithDecorators adds decorators to wrap the handler.
// Decorators are applied in order, with the first decorator being the outermost.
func WithDecorators[C Context](decorators ...Decorator[C]) WrapOption[C] {
	return func(c *wrapConfig[C]) {
		c.decorators = append(c.decorators, decorators...)
	}
}

// defaultErrorHandler provides standard HTTP error responses.
// It renders the error through the JSON envelope so API clients always get a
// structured body, including field details for validation failures.
func defaultErrorHandler[C Context](ctx C, err error) {
	resp := JSONError(err)
	if renderErr := resp.Render(ctx.ResponseWriter(), ctx.Request()); renderErr != nil {
		http.Error(ctx.ResponseWriter(), err.Error(), http.StatusInternalServerError)
	}
}

// Wrap converts a typed HandlerFunc to http.HandlerFunc.
//
// Usage with the standard context:
//
//	http.HandleFunc("/signup", handler.Wrap(h))
//
// With options:
//
//	http.HandleFunc("/signup", handler.Wrap(h,
//		handler.WithErrorHandler(customErrorHandler),
//		handler.WithContextFactory(customContextFactory),
//		handler.WithDecorators(logging, requireAuth),
//	))
func Wrap[C Context](h HandlerFunc[C], opts ...WrapOption[C]) http.HandlerFunc {
	cfg := newWrapConfig(opts)

	// Apply decorators in reverse order so first decorator is outermost
	finalHandler := h
	for i := len(cfg.decorators) - 1; i >= 0; i-- {
		finalHandler = cfg.decorators[i](finalHandler)
	}

	return func(w http.ResponseWriter, r *http.Request) {
		ctx := cfg.contextFactory(w, r)

		response := finalHandler(ctx)
		if response == nil {
			cfg.errorHandler(ctx, ErrNilResponse)
			return
		}
		if err := response.Render(w, r); err != nil {
			cfg.errorHandler(ctx, err)
		}
	}
}

// WrapForm converts a form-bound handler to http.HandlerFunc. A fresh group
// is built for every request so no validation state leaks between requests,
// then bound from the payload before the handler runs. Binding failures go to
// the error handler; the handler decides when to validate.
//
//	http.HandleFunc("/signup", handler.WrapForm(signup.NewFormGroup, h))
func WrapForm[C Context](newForm func() *formkit.Group, h FormHandlerFunc[C], opts ...WrapOption[C]) http.HandlerFunc {
	cfg := newWrapConfig(opts)

	return func(w http.ResponseWriter, r *http.Request) {
		ctx := cfg.contextFactory(w, r)

		form := newForm()
		if err := bindRequest(r, form); err != nil {
			cfg.errorHandler(ctx, err)
			return
		}

		// Decorators close over the bound form, so the chain is rebuilt per
		// request instead of once at setup.
		finalHandler := HandlerFunc[C](func(c C) Response {
			return h(c, form)
		})
		for i := len(cfg.decorators) - 1; i >= 0; i-- {
			finalHandler = cfg.decorators[i](finalHandler)
		}

		response := finalHandler(ctx)
		if response == nil {
			cfg.errorHandler(ctx, ErrNilResponse)
			return
		}
		if err := response.Render(w, r); err != nil {
			cfg.errorHandler(ctx, err)
		}
	}
}

// newWrapConfig assembles the wrap configuration with defaults applied.
func newWrapConfig[C Context](opts []WrapOption[C]) *wrapConfig[C] {
	cfg := &wrapConfig[C]{
		errorHandler: defaultErrorHandler[C],
		contextFactory: func(w http.ResponseWriter, r *http.Request) C {
			ctx := NewContext(w, r)
			if c, ok := any(ctx).(C); ok {
				return c
			}
			// This will panic if C is not compatible with the default Context
			panic("cannot use default context factory with custom context type - provide WithContextFactory")
		},
	}

	for _, opt := range opts {
		opt(cfg)
	}

	return cfg
}

// bindRequest picks the binder matching the request shape: query parameters
// for bodyless methods, JSON for JSON bodies, form encoding otherwise.
func bindRequest(r *http.Request, g *formkit.Group) error {
	if r.Method == http.MethodGet || r.Method == http.MethodHead {
		return binder.Query(r, g)
	}
	if strings.Contains(r.Header.Get("Content-Type"), "application/json") {
		return binder.JSON(r, g)
	}
	return binder.Form(r, g)
}

package handler

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/dmitrymomot/formkit"
	"github.com/dmitrymomot/formkit/logger"
)

// LivePresenter shapes the signal payload patched back after a live
// validation pass. Implementations typically localize error messages before
// they reach the page.
type LivePresenter func(r *http.Request, errs formkit.FormErrors) map[string]any

// LiveOption configures LiveValidate.
type LiveOption func(*liveConfig)

type liveConfig struct {
	log       *slog.Logger
	presenter LivePresenter
}

// WithLiveLogger sets the logger for signal decode and patch failures.
func WithLiveLogger(log *slog.Logger) LiveOption {
	return func(c *liveConfig) {
		if log != nil {
			c.log = log
		}
	}
}

// WithLivePresenter replaces the default signal payload.
func WithLivePresenter(p LivePresenter) LiveOption {
	return func(c *liveConfig) {
		if p != nil {
			c.presenter = p
		}
	}
}

// defaultLivePresenter exposes the raw error maps plus a validity flag.
// The page binds "errors.<field>.<kind>" expressions directly against it.
func defaultLivePresenter(_ *http.Request, errs formkit.FormErrors) map[string]any {
	signals := map[string]any{
		"valid": errs.IsEmpty(),
	}
	if errs == nil {
		// An explicit empty object clears stale error signals client-side.
		signals["errors"] = map[string]any{}
	} else {
		signals["errors"] = errs
	}
	return signals
}

// LiveValidate returns an http.HandlerFunc that validates form input as the
// user types. Each request rebuilds the form through newForm, applies the
// incoming DataStar signals, runs a full validation pass, and patches the
// outcome back as signals. Because the form is rebuilt and signals are
// applied through SetValue, watcher-driven re-validation links fire exactly
// as they would on a full submission, so conditional rules react to the
// latest checkbox and input state.
//
// Non-DataStar clients receive the same payload as a JSON envelope with
// status 200 or 422.
//
//	r.Post("/signup/validate", handler.LiveValidate(signup.NewFormGroup))
func LiveValidate(newForm func() *formkit.Group, opts ...LiveOption) http.HandlerFunc {
	cfg := &liveConfig{
		log:       slog.Default(),
		presenter: defaultLivePresenter,
	}
	for _, opt := range opts {
		opt(cfg)
	}

	return func(w http.ResponseWriter, r *http.Request) {
		form := newForm()

		values := map[string]any{}
		if IsDataStar(r) {
			if err := ReadSignals(r, &values); err != nil {
				cfg.log.WarnContext(r.Context(), "failed to read validation signals",
					logger.Error(err),
					logger.Component("live_validate"),
				)
				http.Error(w, "invalid signal payload", http.StatusBadRequest)
				return
			}
			if err := form.Apply(values); err != nil {
				cfg.log.WarnContext(r.Context(), "failed to apply validation signals",
					logger.Error(err),
					logger.Component("live_validate"),
				)
				http.Error(w, "invalid field value", http.StatusBadRequest)
				return
			}
		} else {
			if err := bindRequest(r, form); err != nil {
				resp := JSONError(err)
				_ = resp.Render(w, r)
				return
			}
		}

		var formErrs formkit.FormErrors
		if err := form.Validate(); err != nil {
			formErrs = formkit.ExtractFormErrors(err)
		}

		signals := cfg.presenter(r, formErrs)

		if IsDataStar(r) {
			data, err := json.Marshal(signals)
			if err != nil {
				cfg.log.ErrorContext(r.Context(), "failed to marshal validation signals",
					logger.Error(err),
					logger.Component("live_validate"),
				)
				http.Error(w, "internal error", http.StatusInternalServerError)
				return
			}
			sse := NewSSE(w, r)
			if err := sse.PatchSignals(data); err != nil {
				cfg.log.ErrorContext(r.Context(), "failed to patch validation signals",
					logger.Error(err),
					logger.Component("live_validate"),
				)
			}
			return
		}

		status := http.StatusOK
		if !formErrs.IsEmpty() {
			status = http.StatusUnprocessableEntity
		}
		resp := JSON(signals, WithJSONStatus(status))
		_ = resp.Render(w, r)
	}
}

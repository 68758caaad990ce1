package signup

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/google/uuid"

	"github.com/dmitrymomot/formkit"
	"github.com/dmitrymomot/formkit/binder"
	"github.com/dmitrymomot/formkit/draft"
	"github.com/dmitrymomot/formkit/handler"
	"github.com/dmitrymomot/formkit/logger"
	"github.com/dmitrymomot/formkit/submission"
)

// Mountable is the contract module routers mount services through.
type Mountable interface {
	Handle() http.Handler
}

var _ Mountable = (*Service)(nil)

// SubmissionAccepted is the success payload for an accepted signup.
type SubmissionAccepted struct {
	ID         uuid.UUID `json:"id"`
	ReceivedAt time.Time `json:"received_at"`
	AvatarURL  string    `json:"avatar_url,omitempty"`
}

// DraftSaved is the payload for a stored draft.
type DraftSaved struct {
	Token     string    `json:"token"`
	ExpiresAt time.Time `json:"expires_at"`
}

// FormDescriptor describes the signup form for clients that render it.
type FormDescriptor struct {
	Form   string            `json:"form"`
	Fields []FieldDescriptor `json:"fields"`
}

// FieldDescriptor describes a single input.
type FieldDescriptor struct {
	Name     string   `json:"name"`
	Label    string   `json:"label"`
	Type     string   `json:"type"`
	Value    any      `json:"value,omitempty"`
	Options  []string `json:"options,omitempty"`
	Required bool     `json:"required,omitempty"`
}

// Handle returns the signup HTTP surface:
//
//	GET  /form          form descriptor, optionally prefilled from a draft
//	POST /              accept a submission, form encoded, multipart, or JSON
//	POST /draft         save a partial form as a resumable draft
//	GET  /draft/{token} fetch a saved draft
//	POST /validate      live validation for DataStar pages
//
// Mount it under the path the form posts to:
//
//	r.Mount("/signup", svc.Handle())
func (s *Service) Handle() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)

	r.Get("/form", handler.Wrap(s.describeForm, s.wrapOpts()...))
	r.Post("/", handler.Wrap(s.submit, s.wrapOpts()...))
	r.Post("/draft", handler.WrapForm(NewFormGroup, s.saveDraft, s.wrapOpts()...))
	r.Get("/draft/{token}", handler.Wrap(s.resumeDraft, s.wrapOpts()...))
	r.Post("/validate", handler.LiveValidate(NewFormGroup,
		handler.WithLiveLogger(s.log),
		handler.WithLivePresenter(s.liveSignals),
	))

	return r
}

func (s *Service) wrapOpts() []handler.WrapOption[handler.Context] {
	return []handler.WrapOption[handler.Context]{
		handler.WithErrorHandler(s.errorHandler),
	}
}

// bindSubmission picks the binder by content type so the endpoint accepts
// browser form posts, multipart uploads, and JSON API clients alike.
func bindSubmission(r *http.Request, g *formkit.Group) error {
	if strings.Contains(r.Header.Get("Content-Type"), "application/json") {
		return binder.JSON(r, g)
	}
	return binder.Form(r, g)
}

func (s *Service) submit(ctx handler.Context) handler.Response {
	r := ctx.Request()

	form := NewForm()
	if err := bindSubmission(r, form.Fields); err != nil {
		return handler.JSONError(err)
	}
	avatar, err := binder.File(r, fieldAvatar)
	if err != nil {
		return handler.JSONError(err)
	}

	lang := s.negotiate(r)
	meta := submission.MetaFromRequest(r)
	meta.Locale = lang

	sub, att, err := s.accept(r.Context(), form, avatar, meta)
	if err != nil {
		if formErrs := formkit.ExtractFormErrors(err); formErrs != nil {
			var opts []handler.JSONOption
			if msgs := s.localize(lang, formErrs); msgs != nil {
				opts = append(opts, handler.WithJSONMeta(map[string]any{"messages": msgs}))
			}
			return handler.JSONError(formErrs, opts...)
		}
		s.log.ErrorContext(r.Context(), "signup submission failed",
			logger.Error(err),
			logger.Form(s.cfg.FormName),
		)
		return handler.JSONError(handler.NewHTTPError(http.StatusInternalServerError, "submission_failed"))
	}

	// A submitted draft is spent.
	if token := r.URL.Query().Get("draft"); token != "" && draft.ValidateToken(token) == nil {
		if err := s.drafts.Delete(r.Context(), token); err != nil {
			s.log.WarnContext(r.Context(), "failed to delete submitted draft",
				logger.Error(err),
				logger.Form(s.cfg.FormName),
			)
		}
	}

	resp := SubmissionAccepted{ID: sub.ID, ReceivedAt: sub.ReceivedAt}
	if att != nil {
		resp.AvatarURL = s.uploads.URL(att.Key)
	}
	return handler.JSON(resp, handler.WithJSONStatus(http.StatusCreated))
}

func (s *Service) saveDraft(ctx handler.Context, form *formkit.Group) handler.Response {
	d, err := s.storeDraft(ctx, form.Values())
	if err != nil {
		s.log.ErrorContext(ctx, "failed to save signup draft",
			logger.Error(err),
			logger.Form(s.cfg.FormName),
		)
		return handler.JSONError(handler.NewHTTPError(http.StatusInternalServerError, "draft_not_saved"))
	}
	return handler.JSON(DraftSaved{Token: d.Token, ExpiresAt: d.ExpiresAt}, handler.WithJSONStatus(http.StatusCreated))
}

func (s *Service) resumeDraft(ctx handler.Context) handler.Response {
	d, err := s.draftByToken(ctx, chi.URLParam(ctx.Request(), "token"))
	if err != nil {
		return s.draftError(ctx, err)
	}
	return handler.JSON(d)
}

func (s *Service) describeForm(ctx handler.Context) handler.Response {
	r := ctx.Request()
	form := NewForm()

	if token := r.URL.Query().Get("draft"); token != "" {
		d, err := s.draftByToken(r.Context(), token)
		if err != nil {
			return s.draftError(ctx, err)
		}
		if err := form.Fields.Apply(d.Values); err != nil {
			s.log.WarnContext(r.Context(), "draft values no longer fit the form",
				logger.Error(err),
				logger.Form(s.cfg.FormName),
			)
			return handler.JSONError(handler.NewHTTPError(http.StatusConflict, "draft_incompatible"))
		}
	}

	return handler.JSON(s.describe(form))
}

// draftError maps draft lookup failures onto transport statuses.
func (s *Service) draftError(ctx handler.Context, err error) handler.Response {
	switch {
	case errors.Is(err, draft.ErrInvalidToken):
		return handler.JSONError(handler.NewHTTPError(http.StatusBadRequest, "invalid_draft_token"))
	case errors.Is(err, draft.ErrNotFound):
		return handler.JSONError(handler.NewHTTPError(http.StatusNotFound, "draft_not_found"))
	case errors.Is(err, draft.ErrExpired):
		return handler.JSONError(handler.NewHTTPError(http.StatusGone, "draft_expired"))
	}
	s.log.ErrorContext(ctx, "draft lookup failed",
		logger.Error(err),
		logger.Form(s.cfg.FormName),
	)
	return handler.JSONError(handler.NewHTTPError(http.StatusInternalServerError, "draft_lookup_failed"))
}

// describe snapshots the form into a descriptor. Password fields never carry
// values; the avatar input appears only when upload storage is configured.
func (s *Service) describe(form *Form) FormDescriptor {
	fields := []FieldDescriptor{
		{Name: form.Name.Name(), Label: form.Name.Label(), Type: "text", Value: form.Name.Value(), Required: true},
		{Name: form.Password.Name(), Label: form.Password.Label(), Type: "password", Required: true},
		{Name: form.PasswordConfirm.Name(), Label: form.PasswordConfirm.Label(), Type: "password", Required: true},
		{Name: form.Plan.Name(), Label: form.Plan.Label(), Type: "select", Value: form.Plan.Value(), Options: planChoices},
		{Name: form.Newsletter.Name(), Label: form.Newsletter.Label(), Type: "checkbox", Value: form.Newsletter.Value()},
		{Name: form.ContactEmail.Name(), Label: form.ContactEmail.Label(), Type: "email", Value: form.ContactEmail.Value()},
		{Name: form.Terms.Name(), Label: form.Terms.Label(), Type: "checkbox", Required: true},
	}
	if s.uploads != nil {
		fields = append(fields, FieldDescriptor{Name: fieldAvatar, Label: "Avatar", Type: "file"})
	}
	return FormDescriptor{Form: s.cfg.FormName, Fields: fields}
}

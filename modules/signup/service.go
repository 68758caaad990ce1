package signup

import (
	"context"
	"fmt"
	"log/slog"
	"mime/multipart"
	"net/http"

	"golang.org/x/crypto/bcrypt"

	"github.com/dmitrymomot/formkit"
	"github.com/dmitrymomot/formkit/draft"
	"github.com/dmitrymomot/formkit/handler"
	"github.com/dmitrymomot/formkit/i18n"
	"github.com/dmitrymomot/formkit/logger"
	"github.com/dmitrymomot/formkit/notify"
	"github.com/dmitrymomot/formkit/submission"
	"github.com/dmitrymomot/formkit/upload"
)

// avatarAllowedTypes are the content types accepted for avatar uploads,
// sniffed from file content rather than trusted from the part header.
var avatarAllowedTypes = []string{"image/png", "image/jpeg", "image/webp"}

// Service accepts signups: it validates submissions, stores avatar
// attachments, hashes credentials, records accepted submissions, and notifies
// form owners. Persistence, storage, and delivery are pluggable; the zero
// configuration runs entirely in memory.
type Service struct {
	cfg          Config
	log          *slog.Logger
	translator   *i18n.Translator
	submissions  submission.Store
	drafts       draft.Store
	uploads      upload.Storage
	notifier     notify.Notifier
	errorHandler handler.ErrorHandler[handler.Context]
}

// Option configures a Service.
type Option func(*Service)

// WithLogger sets the service logger. The default discards everything.
func WithLogger(log *slog.Logger) Option {
	return func(s *Service) {
		if log != nil {
			s.log = log
		}
	}
}

// WithTranslator enables localized validation messages negotiated from the
// Accept-Language header.
func WithTranslator(t *i18n.Translator) Option {
	return func(s *Service) {
		if t != nil {
			s.translator = t
		}
	}
}

// WithSubmissionStore replaces the in-memory submission store.
func WithSubmissionStore(store submission.Store) Option {
	return func(s *Service) {
		if store != nil {
			s.submissions = store
		}
	}
}

// WithDraftStore replaces the in-memory draft store.
func WithDraftStore(store draft.Store) Option {
	return func(s *Service) {
		if store != nil {
			s.drafts = store
		}
	}
}

// WithUploadStorage enables the avatar input. Without storage the form still
// works and any posted avatar part is ignored.
func WithUploadStorage(storage upload.Storage) Option {
	return func(s *Service) {
		if storage != nil {
			s.uploads = storage
		}
	}
}

// WithNotifier sets the submission notifier. The default logs through the
// service logger.
func WithNotifier(n notify.Notifier) Option {
	return func(s *Service) {
		if n != nil {
			s.notifier = n
		}
	}
}

// WithErrorHandler overrides the transport error handler used for binding and
// rendering failures.
func WithErrorHandler(h handler.ErrorHandler[handler.Context]) Option {
	return func(s *Service) {
		if h != nil {
			s.errorHandler = h
		}
	}
}

// NewService creates the signup service. Every collaborator is optional: the
// defaults validate, accept, and draft entirely in memory and notify through
// the logger.
func NewService(cfg Config, opts ...Option) *Service {
	s := &Service{
		cfg:         cfg.withDefaults(),
		log:         slog.New(slog.DiscardHandler),
		submissions: submission.NewMemoryStore(),
		drafts:      draft.NewMemoryStore(0),
	}
	for _, opt := range opts {
		opt(s)
	}
	// The default notifier picks up whichever logger the options settled on.
	if s.notifier == nil {
		s.notifier = notify.NewLogNotifier(s.log)
	}
	return s
}

// accept runs the submission pipeline for a bound form: validation, avatar
// checks, credential hashing, persistence, and notification. Validation
// failures come back as formkit.FormErrors; everything else is an
// infrastructure error.
func (s *Service) accept(ctx context.Context, form *Form, avatar *multipart.FileHeader, meta submission.Meta) (*submission.Submission, *upload.Attachment, error) {
	formErrs := formkit.ExtractFormErrors(form.Fields.Validate())

	if avatar != nil && s.uploads == nil {
		s.log.DebugContext(ctx, "avatar part ignored, no upload storage configured",
			logger.Form(s.cfg.FormName),
		)
		avatar = nil
	}
	if avatar != nil {
		if errs := upload.Validate(avatar, s.avatarChecks()...); len(errs) > 0 {
			if formErrs == nil {
				formErrs = formkit.FormErrors{}
			}
			formErrs[fieldAvatar] = errs
		}
	}
	if len(formErrs) > 0 {
		return nil, nil, formErrs
	}

	// The raw password exists only inside the form; stored values carry the
	// hash.
	hash, err := bcrypt.GenerateFromPassword([]byte(form.Password.Value()), s.cfg.PasswordCost)
	if err != nil {
		return nil, nil, fmt.Errorf("hash password: %w", err)
	}

	values := form.Fields.Values()
	delete(values, fieldPassword)
	delete(values, fieldPasswordConfirm)
	values["password_hash"] = string(hash)

	var att *upload.Attachment
	if avatar != nil {
		att, err = s.uploads.Save(ctx, avatar, "avatars")
		if err != nil {
			return nil, nil, fmt.Errorf("store avatar: %w", err)
		}
		values[fieldAvatar] = att
	}

	sub := submission.New(s.cfg.FormName, values, meta)
	if err := s.submissions.Record(ctx, sub); err != nil {
		// A failed record must not leave an orphaned avatar behind.
		if att != nil {
			if delErr := s.uploads.Delete(ctx, att.Key); delErr != nil {
				s.log.WarnContext(ctx, "failed to delete orphaned avatar",
					logger.Error(delErr),
					logger.Form(s.cfg.FormName),
				)
			}
		}
		return nil, nil, fmt.Errorf("record submission: %w", err)
	}

	if err := s.notifier.SubmissionReceived(ctx, notify.Notice{
		Form:         sub.Form,
		SubmissionID: sub.ID,
		Values:       sub.Values,
		ClientIP:     sub.Meta.ClientIP,
		ReceivedAt:   sub.ReceivedAt,
	}); err != nil {
		// Delivery is best-effort; the submission is already recorded.
		s.log.WarnContext(ctx, "submission notification failed",
			logger.Error(err),
			logger.Form(sub.Form),
			logger.SubmissionID(sub.ID),
		)
	}

	return sub, att, nil
}

func (s *Service) avatarChecks() []upload.Check {
	return []upload.Check{
		upload.MaxSize(s.cfg.AvatarMaxSize),
		upload.AllowedTypes(avatarAllowedTypes...),
	}
}

// storeDraft snapshots bound form values into a new draft. Credentials never
// enter a draft, whatever the client posted.
func (s *Service) storeDraft(ctx context.Context, values map[string]any) (*draft.Draft, error) {
	delete(values, fieldPassword)
	delete(values, fieldPasswordConfirm)

	d := draft.New(values, s.cfg.DraftTTL)
	if err := s.drafts.Save(ctx, d); err != nil {
		return nil, fmt.Errorf("save draft: %w", err)
	}
	return d, nil
}

// draftByToken validates the token shape before the store lookup.
func (s *Service) draftByToken(ctx context.Context, token string) (*draft.Draft, error) {
	if err := draft.ValidateToken(token); err != nil {
		return nil, err
	}
	return s.drafts.Get(ctx, token)
}

// negotiate picks the response language from the request, or "" when no
// translator is configured.
func (s *Service) negotiate(r *http.Request) string {
	if s.translator == nil {
		return ""
	}
	return s.translator.Negotiate(r.Header.Get("Accept-Language"))
}

// localize translates per-field errors when a translator is configured.
func (s *Service) localize(lang string, errs formkit.FormErrors) map[string]map[string]string {
	if s.translator == nil || len(errs) == 0 {
		return nil
	}
	return s.translator.LocalizeForm(lang, errs)
}

// liveSignals shapes the live validation payload: raw error maps for signal
// bindings plus localized messages when a translator is configured. Empty
// objects rather than absent keys, so stale signals clear client-side.
func (s *Service) liveSignals(r *http.Request, errs formkit.FormErrors) map[string]any {
	signals := map[string]any{"valid": errs.IsEmpty()}
	if errs.IsEmpty() {
		signals["errors"] = map[string]any{}
		signals["messages"] = map[string]any{}
		return signals
	}
	signals["errors"] = errs
	if msgs := s.localize(s.negotiate(r), errs); msgs != nil {
		signals["messages"] = msgs
	} else {
		signals["messages"] = map[string]any{}
	}
	return signals
}

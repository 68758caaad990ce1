package notify

import (
	"context"
	"errors"
	"fmt"
	"html/template"
	"regexp"
	"strings"

	"github.com/mrz1836/postmark"
)

var emailRegex = regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[^@\s]+$`)

// Config holds Postmark notification settings. Tokens are optional in the
// environment so development setups can run on the log notifier instead.
type Config struct {
	PostmarkServerToken  string `env:"POSTMARK_SERVER_TOKEN"`
	PostmarkAccountToken string `env:"POSTMARK_ACCOUNT_TOKEN"`
	SenderEmail          string `env:"NOTIFY_SENDER_EMAIL"`
	RecipientEmail       string `env:"NOTIFY_RECIPIENT_EMAIL"`
}

// noticeTemplate renders the notification email body. Values are escaped by
// html/template, so raw form input never reaches the recipient's mail client
// as markup.
var noticeTemplate = template.Must(template.New("notice").Parse(`<h2>New {{.Form}} submission</h2>
<p>Received {{.ReceivedAt.Format "2006-01-02 15:04:05 MST"}}{{if .ClientIP}} from {{.ClientIP}}{{end}}.</p>
<table>
{{range $name, $value := .Values}}<tr><td><strong>{{$name}}</strong></td><td>{{$value}}</td></tr>
{{end}}</table>
<p>Submission ID: {{.SubmissionID}}</p>
`))

type postmarkNotifier struct {
	client *postmark.Client
	config Config
}

// NewPostmarkNotifier creates a Postmark-backed notifier. All four config
// values are required; missing tokens should route to NewLogNotifier instead.
func NewPostmarkNotifier(cfg Config) (Notifier, error) {
	if cfg.PostmarkServerToken == "" {
		return nil, fmt.Errorf("%w: PostmarkServerToken is required", ErrInvalidConfig)
	}
	if cfg.PostmarkAccountToken == "" {
		return nil, fmt.Errorf("%w: PostmarkAccountToken is required", ErrInvalidConfig)
	}
	if !emailRegex.MatchString(cfg.SenderEmail) {
		return nil, fmt.Errorf("%w: SenderEmail must be a valid email address", ErrInvalidConfig)
	}
	if !emailRegex.MatchString(cfg.RecipientEmail) {
		return nil, fmt.Errorf("%w: RecipientEmail must be a valid email address", ErrInvalidConfig)
	}

	return &postmarkNotifier{
		client: postmark.NewClient(cfg.PostmarkServerToken, cfg.PostmarkAccountToken),
		config: cfg,
	}, nil
}

// MustNewPostmarkNotifier creates a Postmark notifier that panics on invalid
// config, failing fast during initialization.
func MustNewPostmarkNotifier(cfg Config) Notifier {
	notifier, err := NewPostmarkNotifier(cfg)
	if err != nil {
		panic(err)
	}
	return notifier
}

// SubmissionReceived sends the notice through Postmark's transactional API.
func (n *postmarkNotifier) SubmissionReceived(ctx context.Context, notice Notice) error {
	var body strings.Builder
	if err := noticeTemplate.Execute(&body, notice); err != nil {
		return errors.Join(ErrFailedToSend, err)
	}

	resp, err := n.client.SendEmail(ctx, postmark.Email{
		From:     n.config.SenderEmail,
		To:       n.config.RecipientEmail,
		Subject:  fmt.Sprintf("New %s submission", notice.Form),
		Tag:      notice.Form,
		HTMLBody: body.String(),
	})
	if err != nil {
		return errors.Join(ErrFailedToSend, err)
	}
	if resp.ErrorCode > 0 {
		return errors.Join(
			ErrFailedToSend,
			fmt.Errorf("postmark error: %d - %s", resp.ErrorCode, resp.Message),
		)
	}
	return nil
}

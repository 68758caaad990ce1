package notify

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/google/uuid"
)

// eventSubmissionReceived names the event type in delivered payloads.
const eventSubmissionReceived = "submission.received"

// webhookEvent is the JSON payload delivered to webhook endpoints.
type webhookEvent struct {
	Event        string         `json:"event"`
	Form         string         `json:"form"`
	SubmissionID uuid.UUID      `json:"submission_id"`
	Values       map[string]any `json:"values"`
	ClientIP     string         `json:"client_ip,omitempty"`
	ReceivedAt   time.Time      `json:"received_at"`
}

type webhookNotifier struct {
	url        string
	secret     string
	client     *http.Client
	maxRetries int
	baseDelay  time.Duration
	maxDelay   time.Duration
}

// WebhookOption configures a webhook notifier.
type WebhookOption func(*webhookNotifier)

// WithWebhookClient overrides the HTTP client used for delivery.
func WithWebhookClient(client *http.Client) WebhookOption {
	return func(n *webhookNotifier) {
		if client != nil {
			n.client = client
		}
	}
}

// WithWebhookSecret enables HMAC-SHA256 signing of delivered payloads.
// Receivers authenticate deliveries with VerifyWebhookSignature.
func WithWebhookSecret(secret string) WebhookOption {
	return func(n *webhookNotifier) {
		n.secret = secret
	}
}

// WithWebhookRetries sets how many retries follow a failed delivery attempt.
func WithWebhookRetries(retries int) WebhookOption {
	return func(n *webhookNotifier) {
		if retries >= 0 {
			n.maxRetries = retries
		}
	}
}

// WithWebhookBackoff sets the retry delay curve: the delay starts at base,
// doubles per attempt, and never exceeds max.
func WithWebhookBackoff(base, max time.Duration) WebhookOption {
	return func(n *webhookNotifier) {
		if base > 0 {
			n.baseDelay = base
		}
		if max > 0 {
			n.maxDelay = max
		}
	}
}

// NewWebhookNotifier creates a notifier that POSTs each accepted submission
// to the given endpoint as a JSON event. Only http and https URLs are
// accepted.
func NewWebhookNotifier(webhookURL string, opts ...WebhookOption) (Notifier, error) {
	u, err := url.Parse(webhookURL)
	if err != nil {
		return nil, fmt.Errorf("%w: webhook URL: %v", ErrInvalidConfig, err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return nil, fmt.Errorf("%w: webhook URL must use http or https", ErrInvalidConfig)
	}
	if u.Host == "" {
		return nil, fmt.Errorf("%w: webhook URL must include a host", ErrInvalidConfig)
	}

	n := &webhookNotifier{
		url:        webhookURL,
		client:     &http.Client{Timeout: 30 * time.Second},
		maxRetries: 2,
		baseDelay:  time.Second,
		maxDelay:   30 * time.Second,
	}
	for _, opt := range opts {
		opt(n)
	}
	return n, nil
}

// SubmissionReceived delivers the notice as a signed JSON POST. Failed
// attempts retry with exponential backoff; 4xx responses other than 408, 425
// and 429 will not change on retry and fail immediately.
func (n *webhookNotifier) SubmissionReceived(ctx context.Context, notice Notice) error {
	payload, err := json.Marshal(webhookEvent{
		Event:        eventSubmissionReceived,
		Form:         notice.Form,
		SubmissionID: notice.SubmissionID,
		Values:       notice.Values,
		ClientIP:     notice.ClientIP,
		ReceivedAt:   notice.ReceivedAt,
	})
	if err != nil {
		return errors.Join(ErrFailedToSend, err)
	}

	var lastErr error
	for attempt := 0; attempt <= n.maxRetries; attempt++ {
		if attempt > 0 {
			select {
			case <-ctx.Done():
				return ctx.Err()
			case <-time.After(n.retryDelay(attempt)):
			}
		}

		permanent, err := n.deliver(ctx, payload)
		if err == nil {
			return nil
		}
		if permanent {
			return errors.Join(ErrFailedToSend, err)
		}
		lastErr = err
	}
	return errors.Join(ErrFailedToSend, fmt.Errorf("after %d attempts: %w", n.maxRetries+1, lastErr))
}

func (n *webhookNotifier) deliver(ctx context.Context, payload []byte) (permanent bool, err error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, n.url, bytes.NewReader(payload))
	if err != nil {
		return true, err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("User-Agent", "formkit-webhook/1.0")

	if n.secret != "" {
		for k, v := range signPayload(n.secret, payload, time.Now()).headers() {
			req.Header.Set(k, v)
		}
	}

	resp, err := n.client.Do(req)
	if err != nil {
		return false, err
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode >= 200 && resp.StatusCode < 300 {
		return false, nil
	}

	body, _ := io.ReadAll(io.LimitReader(resp.Body, 64<<10))
	return isPermanentStatus(resp.StatusCode), fmt.Errorf("endpoint returned %d: %s", resp.StatusCode, condense(body))
}

// retryDelay doubles the base delay per attempt, capped at maxDelay.
func (n *webhookNotifier) retryDelay(attempt int) time.Duration {
	delay := n.baseDelay << (attempt - 1)
	if delay <= 0 || delay > n.maxDelay {
		return n.maxDelay
	}
	return delay
}

// isPermanentStatus reports whether a status code will not change on retry.
// Rate limiting and server timing responses are temporary despite being 4xx.
func isPermanentStatus(code int) bool {
	switch code {
	case http.StatusRequestTimeout, http.StatusTooEarly, http.StatusTooManyRequests:
		return false
	}
	return code >= 400 && code < 500
}

// condense flattens a response body fragment into a single-line error detail.
func condense(body []byte) string {
	s := strings.ReplaceAll(string(body), "\n", " ")
	if len(s) > 200 {
		s = s[:200] + "..."
	}
	return s
}

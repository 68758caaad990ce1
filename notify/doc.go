// Package notify delivers submission notices to form owners.
//
// The Postmark notifier emails a rendered summary of each accepted
// submission through Postmark's transactional API. The log notifier writes
// the same notice to a structured logger for development environments where
// outbound email is disabled:
//
//	var notifier notify.Notifier
//	if cfg.PostmarkServerToken != "" {
//		notifier = notify.MustNewPostmarkNotifier(cfg)
//	} else {
//		notifier = notify.NewLogNotifier(log)
//	}
//
// The webhook notifier POSTs each submission as a JSON event to the owner's
// endpoint instead, with optional HMAC-SHA256 signing:
//
//	notifier, err := notify.NewWebhookNotifier("https://example.com/hooks/forms",
//		notify.WithWebhookSecret(cfg.WebhookSecret),
//	)
//
// Receivers authenticate deliveries with VerifyWebhookSignature against the
// raw request body.
//
// Delivery is best-effort: services typically log a failed notice and accept
// the submission anyway rather than bouncing a valid form on a mail outage.
package notify

package notify

import (
	"context"
	"log/slog"
)

// LogNotifier implements Notifier by writing notices to a structured logger.
// It stands in for the Postmark notifier in development and tests.
type LogNotifier struct {
	log *slog.Logger
}

// NewLogNotifier creates a notifier that logs instead of sending. A nil
// logger falls back to slog.Default.
func NewLogNotifier(log *slog.Logger) *LogNotifier {
	if log == nil {
		log = slog.Default()
	}
	return &LogNotifier{log: log}
}

// SubmissionReceived logs the notice and never fails.
func (n *LogNotifier) SubmissionReceived(ctx context.Context, notice Notice) error {
	n.log.InfoContext(ctx, "submission received",
		"form", notice.Form,
		"submission_id", notice.SubmissionID,
		"client_ip", notice.ClientIP,
		"received_at", notice.ReceivedAt,
		"fields", len(notice.Values),
	)
	return nil
}

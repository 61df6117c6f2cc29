package mail

import (
	"context"
	"log/slog"

	"github.com/google/uuid"
)

// LogSender is a development transport that writes each message to the
// logger instead of delivering it. The returned reference is a fresh UUID.
type LogSender struct {
	log *slog.Logger
}

// NewLogSender returns a LogSender writing to log.
func NewLogSender(log *slog.Logger) *LogSender {
	return &LogSender{log: log}
}

// Send logs msg at info level.
func (s *LogSender) Send(ctx context.Context, msg Message) (string, error) {
	if err := msg.Validate(); err != nil {
		return "", err
	}
	ref := "log-" + uuid.NewString()
	s.log.InfoContext(ctx, "mail captured",
		"delivery_ref", ref,
		"from", msg.From.String(),
		"to", msg.To.String(),
		"subject", msg.Subject,
		"text", msg.Text,
	)
	return ref, nil
}

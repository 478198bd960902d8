package mailer

import (
	"context"
	"log/slog"

	"braceria-backend/internal/usecase/notify"
)

// LogMailer stands in for SMTP when no relay is configured.
type LogMailer struct{}

func NewLogMailer() *LogMailer {
	return &LogMailer{}
}

func (LogMailer) Send(ctx context.Context, msg notify.Message) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	slog.Info("email not sent, smtp disabled",
		"kind", msg.Kind,
		"to", msg.To,
		"subject", msg.Subject)
	return nil
}

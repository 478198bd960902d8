package mailer

import (
	"context"
	"sync"

	"braceria-backend/internal/pkg/config"
	"braceria-backend/internal/pkg/errs"
	"braceria-backend/internal/usecase/notify"

	"github.com/wneessen/go-mail"
)

type SMTPMailer struct {
	client *mail.Client
	from   string
	mu     sync.Mutex
}

func NewSMTPMailer(cfg config.MailConfig) (*SMTPMailer, error) {
	opts := []mail.Option{
		mail.WithPort(cfg.Port),
		mail.WithTLSPolicy(tlsPolicy(cfg.TLSPolicy)),
		mail.WithTimeout(cfg.SendTimeout),
	}
	if cfg.Username != "" {
		opts = append(opts,
			mail.WithSMTPAuth(mail.SMTPAuthPlain),
			mail.WithUsername(cfg.Username),
			mail.WithPassword(cfg.Password),
		)
	}

	client, err := mail.NewClient(cfg.Host, opts...)
	if err != nil {
		return nil, errs.Wrap(err, "failed to create smtp client")
	}
	return &SMTPMailer{client: client, from: cfg.From}, nil
}

func (m *SMTPMailer) Send(ctx context.Context, msg notify.Message) error {
	em, err := m.build(msg)
	if err != nil {
		return err
	}

	// the client holds a single connection at a time
	m.mu.Lock()
	defer m.mu.Unlock()
	if err := m.client.DialAndSendWithContext(ctx, em); err != nil {
		return errs.Wrap(err, "smtp send failed")
	}
	return nil
}

func (m *SMTPMailer) build(msg notify.Message) (*mail.Msg, error) {
	em := mail.NewMsg()
	if err := em.From(m.from); err != nil {
		return nil, errs.Wrap(err, "invalid sender address")
	}
	if err := em.To(msg.To); err != nil {
		return nil, errs.Wrap(err, "invalid recipient address")
	}
	if msg.ReplyTo != "" {
		if err := em.ReplyTo(msg.ReplyTo); err != nil {
			return nil, errs.Wrap(err, "invalid reply-to address")
		}
	}
	em.Subject(msg.Subject)
	em.SetBodyString(mail.TypeTextPlain, msg.Text)
	if msg.HTML != "" {
		em.AddAlternativeString(mail.TypeTextHTML, msg.HTML)
	}
	return em, nil
}

func tlsPolicy(s string) mail.TLSPolicy {
	switch s {
	case "opportunistic":
		return mail.TLSOpportunistic
	case "none":
		return mail.NoTLS
	default:
		return mail.TLSMandatory
	}
}

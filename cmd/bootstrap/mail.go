package bootstrap

import (
	"context"
	"log/slog"

	"braceria-backend/internal/infra/mailer"
	"braceria-backend/internal/pkg/config"
	"braceria-backend/internal/usecase/commands"
	"braceria-backend/internal/usecase/notify"

	"go.uber.org/fx"
)

var MailModule = fx.Module("mail",
	fx.Provide(
		restaurantConfig,
		NewMailer,
		fx.Annotate(
			mailer.NewTemplateComposer,
			fx.As(new(notify.Composer)),
		),
		NewDispatcher,
		func(d *notify.Dispatcher) commands.Notifier { return d },
	),
)

func restaurantConfig(cfg config.Config) config.RestaurantConfig {
	return cfg.Restaurant
}

// Without an SMTP relay, messages are only logged.
func NewMailer(cfg config.Config, logger *slog.Logger) (notify.Mailer, error) {
	if !cfg.Mail.Enabled() {
		logger.Warn("SMTP_HOST not set, notifications will only be logged")
		return mailer.NewLogMailer(), nil
	}
	m, err := mailer.NewSMTPMailer(cfg.Mail)
	if err != nil {
		return nil, err
	}
	logger.Info("SMTP mailer configured", "host", cfg.Mail.Host, "port", cfg.Mail.Port)
	return m, nil
}

func NewDispatcher(lc fx.Lifecycle, cfg config.Config, m notify.Mailer, composer notify.Composer, recorder notify.Recorder) *notify.Dispatcher {
	d := notify.NewDispatcher(m, composer, recorder, notify.Options{
		QueueSize:   cfg.Mail.QueueSize,
		Workers:     cfg.Mail.Workers,
		SendTimeout: cfg.Mail.SendTimeout,
	})

	lc.Append(fx.Hook{
		OnStart: func(_ context.Context) error {
			d.Start()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			return d.Stop(ctx)
		},
	})
	return d
}

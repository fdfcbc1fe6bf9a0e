package mailer

import (
	"context"
	"log/slog"

	"onvacation-backend/internal/pkg/config"
	"onvacation-backend/internal/pkg/errs"
	"onvacation-backend/internal/usecase"

	"gopkg.in/gomail.v2"
)

// NewGateway picks the SMTP sender when a host is configured and the
// log-only sender otherwise, so local runs never need a mail account.
func NewGateway(cfg config.Config) usecase.EmailGateway {
	if cfg.SMTP.Host == "" {
		slog.Info("SMTP host not configured, using log-only email gateway")
		return &LogGateway{}
	}
	return NewSMTPGateway(cfg.SMTP)
}

type SMTPGateway struct {
	dialer *gomail.Dialer
	from   string
}

func NewSMTPGateway(cfg config.SMTPConfig) *SMTPGateway {
	return &SMTPGateway{
		dialer: gomail.NewDialer(cfg.Host, cfg.Port, cfg.User, cfg.Password),
		from:   cfg.From,
	}
}

// Send queues one message. gomail has no context support, so cancellation is
// only honored up front.
func (g *SMTPGateway) Send(ctx context.Context, msg usecase.EmailMessage) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	m := gomail.NewMessage()
	m.SetHeader("From", g.from)
	m.SetHeader("To", msg.To)
	m.SetHeader("Subject", msg.Subject)
	m.SetBody("text/html", msg.Body)

	if err := g.dialer.DialAndSend(m); err != nil {
		return errs.Wrap(err, "smtp send failed")
	}
	return nil
}

// LogGateway writes the payload to the log instead of delivering it.
type LogGateway struct{}

func (g *LogGateway) Send(_ context.Context, msg usecase.EmailMessage) error {
	slog.Info("email gateway (log only)",
		"to", msg.To,
		"subject", msg.Subject,
		"body_bytes", len(msg.Body),
	)
	return nil
}

package mail

import (
	"context"
	"log/slog"

	"shop/config"
	"shop/internal/domain/service"

	"github.com/pkg/errors"
	gomail "github.com/wneessen/go-mail"
)

// dialer is the part of *gomail.Client the sender needs.
type dialer interface {
	DialAndSendWithContext(ctx context.Context, messages ...*gomail.Msg) error
}

// SMTPSender delivers email through an SMTP relay.
type SMTPSender struct {
	from     string
	client   dialer
	renderer *renderer
	logger   *slog.Logger
}

// NewEmailSender returns an SMTP sender, or a log-only sender when SMTP is disabled.
func NewEmailSender(cfg *config.Config, logger *slog.Logger) (service.EmailSender, error) {
	r, err := newRenderer()
	if err != nil {
		return nil, err
	}

	smtpCfg := cfg.SMTP
	if smtpCfg == nil || !smtpCfg.Enabled {
		logger.Info("SMTP disabled, emails will only be logged")

		return &LogSender{renderer: r, logger: logger}, nil
	}

	opts := []gomail.Option{
		gomail.WithPort(smtpCfg.Port),
		gomail.WithTLSPortPolicy(gomail.TLSOpportunistic),
	}
	if smtpCfg.Username != "" {
		opts = append(opts,
			gomail.WithSMTPAuth(gomail.SMTPAuthPlain),
			gomail.WithUsername(smtpCfg.Username),
			gomail.WithPassword(smtpCfg.Password),
		)
	}

	client, err := gomail.NewClient(smtpCfg.Host, opts...)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create SMTP client")
	}

	return &SMTPSender{from: smtpCfg.From, client: client, renderer: r, logger: logger}, nil
}

func (s *SMTPSender) Send(ctx context.Context, email *service.Email) error {
	body, err := s.renderer.render(email.Template, email.Data)
	if err != nil {
		return err
	}

	msg := gomail.NewMsg()
	if err := msg.From(s.from); err != nil {
		return errors.Wrap(err, "invalid sender address")
	}
	if err := msg.To(email.To); err != nil {
		return errors.Wrap(err, "invalid recipient address")
	}
	msg.Subject(email.Subject)
	msg.SetBodyString(gomail.TypeTextHTML, body)

	if err := s.client.DialAndSendWithContext(ctx, msg); err != nil {
		return errors.Wrap(err, "failed to send email")
	}

	s.logger.Debug("Email sent",
		slog.String("to", email.To),
		slog.String("template", string(email.Template)),
	)

	return nil
}

// LogSender renders emails and logs them instead of delivering.
type LogSender struct {
	renderer *renderer
	logger   *slog.Logger
}

func (s *LogSender) Send(ctx context.Context, email *service.Email) error {
	body, err := s.renderer.render(email.Template, email.Data)
	if err != nil {
		return err
	}

	s.logger.InfoContext(ctx, "Email not delivered (SMTP disabled)",
		slog.String("to", email.To),
		slog.String("subject", email.Subject),
		slog.String("template", string(email.Template)),
		slog.Int("bodyBytes", len(body)),
	)

	return nil
}

package mailer

import (
	"context"
	"fmt"
	"time"

	"github.com/kagailawrence/modarflor/internal/domain/mail"
	"github.com/kagailawrence/modarflor/internal/pkg/config"
	"github.com/kagailawrence/modarflor/internal/pkg/logger"
	gomail "github.com/wneessen/go-mail"
)

// SMTPSender delivers messages through an SMTP relay
type SMTPSender struct {
	client  *gomail.Client
	from    string
	replyTo string
	logger  logger.Logger
}

// NewSMTPSender configures an SMTP client from the mail settings. No connection is opened until Send.
func NewSMTPSender(settings *config.MailSettings, logger logger.Logger) (*SMTPSender, error) {
	opts := []gomail.Option{
		gomail.WithPort(settings.Port),
		gomail.WithTimeout(sendTimeout(settings)),
	}
	if settings.UseTLS {
		opts = append(opts, gomail.WithTLSPolicy(gomail.TLSMandatory))
	} else {
		opts = append(opts, gomail.WithTLSPolicy(gomail.NoTLS))
	}
	if settings.Username != "" {
		opts = append(opts,
			gomail.WithSMTPAuth(gomail.SMTPAuthPlain),
			gomail.WithUsername(settings.Username),
			gomail.WithPassword(settings.Password),
		)
	}

	client, err := gomail.NewClient(settings.Host, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to create smtp client: %w", err)
	}

	return &SMTPSender{
		client:  client,
		from:    settings.From,
		replyTo: settings.ReplyTo,
		logger:  logger,
	}, nil
}

// Send dials the relay and delivers a single message
func (s *SMTPSender) Send(ctx context.Context, msg *mail.Message) error {
	m, err := s.buildMessage(msg)
	if err != nil {
		return err
	}

	if err := s.client.DialAndSendWithContext(ctx, m); err != nil {
		return fmt.Errorf("failed to send mail %q: %w", msg.Subject, err)
	}

	s.logger.Info("mail sent", "provider", config.MailProviderSMTP, "to", msg.To, "subject", msg.Subject)
	return nil
}

func (s *SMTPSender) buildMessage(msg *mail.Message) (*gomail.Msg, error) {
	if err := msg.Validate(); err != nil {
		return nil, err
	}

	m := gomail.NewMsg()
	if err := m.From(s.from); err != nil {
		return nil, fmt.Errorf("invalid from address %q: %w", s.from, err)
	}
	if err := m.To(msg.To...); err != nil {
		return nil, fmt.Errorf("invalid recipients %v: %w", msg.To, err)
	}
	if replyTo := firstNonEmpty(msg.ReplyTo, s.replyTo); replyTo != "" {
		if err := m.ReplyTo(replyTo); err != nil {
			return nil, fmt.Errorf("invalid reply-to address %q: %w", replyTo, err)
		}
	}
	m.Subject(msg.Subject)

	switch {
	case msg.HTML != "" && msg.Text != "":
		m.SetBodyString(gomail.TypeTextPlain, msg.Text)
		m.AddAlternativeString(gomail.TypeTextHTML, msg.HTML)
	case msg.HTML != "":
		m.SetBodyString(gomail.TypeTextHTML, msg.HTML)
	default:
		m.SetBodyString(gomail.TypeTextPlain, msg.Text)
	}

	return m, nil
}

func sendTimeout(settings *config.MailSettings) time.Duration {
	if settings.SendTimeout <= 0 {
		return 30 * time.Second
	}
	return time.Duration(settings.SendTimeout) * time.Second
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}

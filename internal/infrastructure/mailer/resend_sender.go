package mailer

import (
	"context"
	"fmt"

	"github.com/kagailawrence/modarflor/internal/domain/mail"
	"github.com/kagailawrence/modarflor/internal/pkg/config"
	"github.com/kagailawrence/modarflor/internal/pkg/logger"
	"github.com/resend/resend-go/v2"
)

// ResendSender delivers messages through the Resend HTTP API
type ResendSender struct {
	client  *resend.Client
	from    string
	replyTo string
	logger  logger.Logger
}

// NewResendSender creates a sender for the given api key and default from address
func NewResendSender(settings *config.MailSettings, logger logger.Logger) *ResendSender {
	return &ResendSender{
		client:  resend.NewClient(settings.ResendAPIKey),
		from:    settings.From,
		replyTo: settings.ReplyTo,
		logger:  logger,
	}
}

// Send queues a single message with Resend
func (s *ResendSender) Send(ctx context.Context, msg *mail.Message) error {
	if err := msg.Validate(); err != nil {
		return err
	}

	params := &resend.SendEmailRequest{
		From:    s.from,
		To:      msg.To,
		Subject: msg.Subject,
		Html:    msg.HTML,
		Text:    msg.Text,
	}
	if replyTo := firstNonEmpty(msg.ReplyTo, s.replyTo); replyTo != "" {
		params.ReplyTo = replyTo
	}

	sent, err := s.client.Emails.SendWithContext(ctx, params)
	if err != nil {
		return fmt.Errorf("resend send failed: %w", err)
	}

	s.logger.Info("mail sent", "provider", config.MailProviderResend, "message_id", sent.Id, "to", msg.To, "subject", msg.Subject)
	return nil
}

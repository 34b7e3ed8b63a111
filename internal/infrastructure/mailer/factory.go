// Package mailer implements outbound email: Handlebars templates plus SMTP, Resend and noop senders.
package mailer

import (
	"fmt"

	"github.com/kagailawrence/modarflor/internal/domain/mail"
	"github.com/kagailawrence/modarflor/internal/pkg/config"
	"github.com/kagailawrence/modarflor/internal/pkg/logger"
)

// NewSender returns the sender selected by settings.Provider
func NewSender(settings *config.MailSettings, logger logger.Logger) (mail.Sender, error) {
	if err := settings.Validate(); err != nil {
		return nil, err
	}

	switch settings.Provider {
	case config.MailProviderSMTP:
		return NewSMTPSender(settings, logger)
	case config.MailProviderResend:
		return NewResendSender(settings, logger), nil
	case config.MailProviderNoop:
		return NewNoopSender(logger), nil
	default:
		return nil, fmt.Errorf("unsupported mail provider: %s", settings.Provider)
	}
}

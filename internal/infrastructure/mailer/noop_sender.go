package mailer

import (
	"context"
	"sync"

	"github.com/kagailawrence/modarflor/internal/domain/mail"
	"github.com/kagailawrence/modarflor/internal/pkg/logger"
)

// NoopSender logs messages instead of sending them. It keeps a copy of everything it was asked
// to deliver, which local development and tests inspect through Sent.
type NoopSender struct {
	logger logger.Logger
	mu     sync.Mutex
	sent   []mail.Message
}

// NewNoopSender creates a sender that never leaves the process
func NewNoopSender(logger logger.Logger) *NoopSender {
	return &NoopSender{logger: logger}
}

// Send records the message
func (s *NoopSender) Send(_ context.Context, msg *mail.Message) error {
	if err := msg.Validate(); err != nil {
		return err
	}

	s.mu.Lock()
	s.sent = append(s.sent, *msg)
	s.mu.Unlock()

	s.logger.Info("mail skipped (noop provider)", "to", msg.To, "subject", msg.Subject)
	return nil
}

// Sent returns a copy of the recorded messages
func (s *NoopSender) Sent() []mail.Message {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]mail.Message, len(s.sent))
	copy(out, s.sent)
	return out
}

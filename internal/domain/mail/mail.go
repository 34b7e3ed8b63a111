// Package mail defines outbound email messages, templates and the sender contract.
package mail

import (
	"context"
	"fmt"
)

// Template names of the embedded email templates
const (
	TemplateContactAdmin     = "contact_admin"
	TemplateContactCustomer  = "contact_customer"
	TemplateScheduleAdmin    = "schedule_admin"
	TemplateScheduleCustomer = "schedule_customer"
	TemplateQuoteAdmin       = "quote_admin"
	TemplateQuoteCustomer    = "quote_customer"
)

// Message is a rendered email ready to be sent
type Message struct {
	To      []string
	ReplyTo string
	Subject string
	HTML    string
	Text    string
}

// Validate checks that the message can be delivered
func (m *Message) Validate() error {
	if len(m.To) == 0 {
		return fmt.Errorf("message has no recipients")
	}
	if m.Subject == "" {
		return fmt.Errorf("message has no subject")
	}
	if m.HTML == "" && m.Text == "" {
		return fmt.Errorf("message has no body")
	}
	return nil
}

// Sender delivers a message through a mail provider
type Sender interface {
	Send(ctx context.Context, msg *Message) error
}

// Renderer turns a named template and its data into a subject and HTML body
type Renderer interface {
	Render(name string, data map[string]interface{}) (subject string, html string, err error)
}

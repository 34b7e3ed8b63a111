package app

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/kagailawrence/modarflor/internal/domain/events"
	"github.com/kagailawrence/modarflor/internal/domain/leads"
	"github.com/kagailawrence/modarflor/internal/domain/mail"
	"github.com/kagailawrence/modarflor/internal/pkg/logger"
)

const (
	dateLayout     = "Monday, January 2, 2006"
	receivedLayout = "2006-01-02 15:04 MST"
)

// LeadNotifier sends the admin and customer emails of a stored lead and publishes a
// lead.created event. Every delivery runs in its own goroutine with a timeout.
type LeadNotifier struct {
	renderer        mail.Renderer
	sender          mail.Sender
	publisher       events.Publisher
	adminRecipients []string
	timeout         time.Duration
	logger          logger.Logger
	wg              sync.WaitGroup
}

// NewLeadNotifier creates a new LeadNotifier. Without admin recipients only the customer mail is sent.
func NewLeadNotifier(
	renderer mail.Renderer,
	sender mail.Sender,
	publisher events.Publisher,
	adminRecipients []string,
	timeout time.Duration,
	logger logger.Logger,
) *LeadNotifier {
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	return &LeadNotifier{
		renderer:        renderer,
		sender:          sender,
		publisher:       publisher,
		adminRecipients: adminRecipients,
		timeout:         timeout,
		logger:          logger,
	}
}

// notification is one lead fanned out to mail and the event stream
type notification struct {
	kind             leads.Kind
	id               uint
	customerEmail    string
	adminTemplate    string
	customerTemplate string
	data             map[string]interface{}
}

// ContactSubmitted notifies about a stored contact message
func (n *LeadNotifier) ContactSubmitted(contact *leads.Contact) {
	c := *contact
	n.dispatch(&notification{
		kind:             leads.KindContact,
		id:               c.ID,
		customerEmail:    c.Email,
		adminTemplate:    mail.TemplateContactAdmin,
		customerTemplate: mail.TemplateContactCustomer,
		data: map[string]interface{}{
			"id":       c.ID,
			"name":     c.Name,
			"email":    c.Email,
			"phone":    c.Phone,
			"subject":  c.Subject,
			"message":  c.Message,
			"status":   c.Status,
			"received": c.CreatedAt.UTC().Format(receivedLayout),
		},
	})
}

// ScheduleSubmitted notifies about a stored schedule request
func (n *LeadNotifier) ScheduleSubmitted(schedule *leads.Schedule) {
	s := *schedule
	n.dispatch(&notification{
		kind:             leads.KindSchedule,
		id:               s.ID,
		customerEmail:    s.Email,
		adminTemplate:    mail.TemplateScheduleAdmin,
		customerTemplate: mail.TemplateScheduleCustomer,
		data: map[string]interface{}{
			"id":             s.ID,
			"name":           s.Name,
			"email":          s.Email,
			"phone":          s.Phone,
			"address":        s.Address,
			"service_type":   s.ServiceType,
			"preferred_date": s.PreferredDate.Format(dateLayout),
			"preferred_time": s.PreferredTime,
			"notes":          s.Notes,
			"status":         s.Status,
			"received":       s.CreatedAt.UTC().Format(receivedLayout),
		},
	})
}

// QuoteSubmitted notifies about a stored quote request
func (n *LeadNotifier) QuoteSubmitted(quote *leads.Quote) {
	q := *quote
	data := map[string]interface{}{
		"id":            q.ID,
		"name":          q.Name,
		"email":         q.Email,
		"phone":         q.Phone,
		"flooring_type": q.FlooringTypeName,
		"area":          strconv.FormatFloat(q.AreaSqft, 'f', 2, 64),
		"rooms":         q.Rooms,
		"details":       q.Details,
		"status":        q.Status,
		"received":      q.CreatedAt.UTC().Format(receivedLayout),
	}
	if q.EstimatedCost != nil {
		data["estimated_cost"] = FormatMoney(*q.EstimatedCost)
	}

	n.dispatch(&notification{
		kind:             leads.KindQuote,
		id:               q.ID,
		customerEmail:    q.Email,
		adminTemplate:    mail.TemplateQuoteAdmin,
		customerTemplate: mail.TemplateQuoteCustomer,
		data:             data,
	})
}

// Wait blocks until every started delivery has finished or ctx is done
func (n *LeadNotifier) Wait(ctx context.Context) error {
	done := make(chan struct{})
	go func() {
		n.wg.Wait()
		close(done)
	}()

	select {
	case <-done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (n *LeadNotifier) dispatch(note *notification) {
	if len(n.adminRecipients) > 0 {
		n.run(note, "admin mail", func(ctx context.Context) error {
			return n.sendMail(ctx, note.adminTemplate, n.adminRecipients, note.customerEmail, note.data)
		})
	}
	n.run(note, "customer mail", func(ctx context.Context) error {
		return n.sendMail(ctx, note.customerTemplate, []string{note.customerEmail}, "", note.data)
	})
	n.run(note, "event", func(ctx context.Context) error {
		event := events.New(events.TypeLeadCreated, fmt.Sprintf("%s-%d", note.kind, note.id), map[string]interface{}{
			"kind": string(note.kind),
			"id":   note.id,
		})
		return n.publisher.Publish(ctx, event)
	})
}

func (n *LeadNotifier) run(note *notification, what string, deliver func(ctx context.Context) error) {
	n.wg.Add(1)
	go func() {
		defer n.wg.Done()
		defer func() {
			if r := recover(); r != nil {
				n.logger.Error("lead notification panicked", "kind", note.kind, "id", note.id, "delivery", what, "panic", r)
			}
		}()

		ctx, cancel := context.WithTimeout(context.Background(), n.timeout)
		defer cancel()

		if err := deliver(ctx); err != nil {
			n.logger.Error("lead notification failed", "kind", note.kind, "id", note.id, "delivery", what, "error", err)
			return
		}
		n.logger.Debug("lead notification delivered", "kind", note.kind, "id", note.id, "delivery", what)
	}()
}

func (n *LeadNotifier) sendMail(ctx context.Context, template string, to []string, replyTo string, data map[string]interface{}) error {
	subject, html, err := n.renderer.Render(template, data)
	if err != nil {
		return err
	}
	return n.sender.Send(ctx, &mail.Message{
		To:      to,
		ReplyTo: replyTo,
		Subject: subject,
		HTML:    html,
	})
}

// FormatMoney renders an amount as US dollars with thousands separators, e.g. $1,234.50
func FormatMoney(amount float64) string {
	sign := ""
	if amount < 0 {
		sign = "-"
		amount = -amount
	}

	s := strconv.FormatFloat(amount, 'f', 2, 64)
	whole, cents := s[:len(s)-3], s[len(s)-2:]

	var b strings.Builder
	for i, r := range whole {
		if i > 0 && (len(whole)-i)%3 == 0 {
			b.WriteByte(',')
		}
		b.WriteRune(r)
	}
	return sign + "$" + b.String() + "." + cents
}

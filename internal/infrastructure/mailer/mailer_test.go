//go:build unit
// +build unit

package mailer

import (
	"context"
	"strings"
	"testing"

	"github.com/kagailawrence/modarflor/internal/domain/mail"
	"github.com/kagailawrence/modarflor/internal/pkg/config"
	"github.com/kagailawrence/modarflor/internal/pkg/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTemplateRenderer_RenderAllTemplates(t *testing.T) {
	r, err := NewTemplateRenderer("Modarflor")
	require.NoError(t, err)

	data := map[string]interface{}{
		"id":             7,
		"name":           "Jane Doe",
		"email":          "jane@example.com",
		"phone":          "555-0101",
		"subject":        "Kitchen floor",
		"message":        "Hello there",
		"service_type":   "Consultation",
		"preferred_date": "2030-05-01",
		"preferred_time": "10:00",
		"area":           "120.00",
		"flooring_type":  "Oak Hardwood",
		"estimated_cost": "$1,500.00",
		"received":       "2030-04-01 09:00 UTC",
	}

	for name := range subjects {
		t.Run(name, func(t *testing.T) {
			subject, html, err := r.Render(name, data)
			require.NoError(t, err)
			assert.NotEmpty(t, subject)
			assert.Contains(t, html, "<!DOCTYPE html>")
			assert.Contains(t, html, "Modarflor")
			assert.Contains(t, html, "Jane Doe")
			assert.NotContains(t, subject, "{{")
		})
	}
}

func TestTemplateRenderer_EscapesBodyButNotSubject(t *testing.T) {
	r, err := NewTemplateRenderer("Modarflor")
	require.NoError(t, err)

	subject, html, err := r.Render(mail.TemplateContactAdmin, map[string]interface{}{
		"name":    "Tom & <Jerry>",
		"email":   "tom@example.com",
		"message": "<script>alert(1)</script>",
	})
	require.NoError(t, err)

	assert.Equal(t, "New contact message from Tom & <Jerry>", subject)
	assert.NotContains(t, html, "<script>")
	assert.Contains(t, html, "Tom &amp; &lt;Jerry&gt;")
}

func TestTemplateRenderer_QuoteWithoutEstimate(t *testing.T) {
	r, err := NewTemplateRenderer("Modarflor")
	require.NoError(t, err)

	_, html, err := r.Render(mail.TemplateQuoteCustomer, map[string]interface{}{
		"name": "Sam",
		"area": "80.00",
	})
	require.NoError(t, err)
	assert.Contains(t, html, "detailed quote shortly")
	assert.NotContains(t, html, "preliminary estimate")
}

func TestTemplateRenderer_UnknownTemplate(t *testing.T) {
	r, err := NewTemplateRenderer("Modarflor")
	require.NoError(t, err)

	_, _, err = r.Render("missing", nil)
	assert.ErrorContains(t, err, "unknown email template")
}

func TestNoopSender_RecordsMessages(t *testing.T) {
	s := NewNoopSender(testutil.SetupTestLogger(t))

	err := s.Send(context.Background(), &mail.Message{To: []string{"a@example.com"}, Subject: "Hi", HTML: "<p>hi</p>"})
	require.NoError(t, err)

	err = s.Send(context.Background(), &mail.Message{Subject: "no recipients", Text: "x"})
	assert.Error(t, err)

	sent := s.Sent()
	require.Len(t, sent, 1)
	assert.Equal(t, "Hi", sent[0].Subject)
}

func TestSMTPSender_BuildMessage(t *testing.T) {
	settings := &config.MailSettings{
		Provider:    config.MailProviderSMTP,
		Host:        "localhost",
		Port:        2525,
		From:        "Modarflor <noreply@modarflor.com>",
		ReplyTo:     "office@modarflor.com",
		CompanyName: "Modarflor",
	}
	s, err := NewSMTPSender(settings, testutil.SetupTestLogger(t))
	require.NoError(t, err)

	m, err := s.buildMessage(&mail.Message{
		To:      []string{"jane@example.com"},
		Subject: "Your quote",
		HTML:    "<p>Thanks</p>",
		Text:    "Thanks",
	})
	require.NoError(t, err)

	var buf strings.Builder
	_, err = m.WriteTo(&buf)
	require.NoError(t, err)
	raw := buf.String()
	assert.Contains(t, raw, "jane@example.com")
	assert.Contains(t, raw, "Subject: Your quote")
	assert.Contains(t, raw, "Reply-To:")
	assert.Contains(t, raw, "office@modarflor.com")
	assert.Contains(t, raw, "text/html")
	assert.Contains(t, raw, "text/plain")
}

func TestSMTPSender_BuildMessageRejectsInvalid(t *testing.T) {
	s, err := NewSMTPSender(&config.MailSettings{Host: "localhost", Port: 25, From: "noreply@modarflor.com"}, testutil.SetupTestLogger(t))
	require.NoError(t, err)

	_, err = s.buildMessage(&mail.Message{To: []string{"not-an-address"}, Subject: "x", Text: "x"})
	assert.Error(t, err)

	_, err = s.buildMessage(&mail.Message{To: []string{"a@example.com"}})
	assert.Error(t, err)
}

func TestNewSender(t *testing.T) {
	log := testutil.SetupTestLogger(t)
	base := config.MailSettings{From: "noreply@modarflor.com", CompanyName: "Modarflor"}

	noop := base
	noop.Provider = config.MailProviderNoop
	s, err := NewSender(&noop, log)
	require.NoError(t, err)
	assert.IsType(t, &NoopSender{}, s)

	resendSettings := base
	resendSettings.Provider = config.MailProviderResend
	resendSettings.ResendAPIKey = "re_test"
	s, err = NewSender(&resendSettings, log)
	require.NoError(t, err)
	assert.IsType(t, &ResendSender{}, s)

	smtp := base
	smtp.Provider = config.MailProviderSMTP
	smtp.Host = "localhost"
	smtp.Port = 587
	s, err = NewSender(&smtp, log)
	require.NoError(t, err)
	assert.IsType(t, &SMTPSender{}, s)

	smtp.Host = ""
	_, err = NewSender(&smtp, log)
	assert.Error(t, err)
}

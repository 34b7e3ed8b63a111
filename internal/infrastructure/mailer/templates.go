package mailer

import (
	"embed"
	"fmt"
	"strings"
	"time"

	"github.com/aymerick/raymond"
	"github.com/kagailawrence/modarflor/internal/domain/mail"
)

//go:embed templates/*.hbs
var templateFS embed.FS

var subjects = map[string]string{
	mail.TemplateContactAdmin:     "New contact message from {{name}}",
	mail.TemplateContactCustomer:  "We received your message - {{company}}",
	mail.TemplateScheduleAdmin:    "New consultation request: {{service_type}} on {{preferred_date}}",
	mail.TemplateScheduleCustomer: "Your {{company}} appointment request",
	mail.TemplateQuoteAdmin:       "New quote request from {{name}} ({{area}} sq ft)",
	mail.TemplateQuoteCustomer:    "Your {{company}} flooring quote",
}

// TemplateRenderer renders the embedded Handlebars email templates inside a shared layout.
type TemplateRenderer struct {
	company  string
	layout   *raymond.Template
	bodies   map[string]*raymond.Template
	subjects map[string]*raymond.Template
}

// NewTemplateRenderer parses every embedded template once.
func NewTemplateRenderer(company string) (mail.Renderer, error) {
	layoutSrc, err := templateFS.ReadFile("templates/layout.hbs")
	if err != nil {
		return nil, fmt.Errorf("failed to read layout template: %w", err)
	}
	layout, err := raymond.Parse(string(layoutSrc))
	if err != nil {
		return nil, fmt.Errorf("failed to parse layout template: %w", err)
	}

	r := &TemplateRenderer{
		company:  company,
		layout:   layout,
		bodies:   make(map[string]*raymond.Template, len(subjects)),
		subjects: make(map[string]*raymond.Template, len(subjects)),
	}

	for name, subjectSrc := range subjects {
		bodySrc, err := templateFS.ReadFile("templates/" + name + ".hbs")
		if err != nil {
			return nil, fmt.Errorf("failed to read template %s: %w", name, err)
		}
		if r.bodies[name], err = raymond.Parse(string(bodySrc)); err != nil {
			return nil, fmt.Errorf("failed to parse template %s: %w", name, err)
		}
		if r.subjects[name], err = raymond.Parse(subjectSrc); err != nil {
			return nil, fmt.Errorf("failed to parse subject of %s: %w", name, err)
		}
	}

	return r, nil
}

// Render executes the named template with data. "company" and "year" are always available.
func (r *TemplateRenderer) Render(name string, data map[string]interface{}) (string, string, error) {
	body, ok := r.bodies[name]
	if !ok {
		return "", "", fmt.Errorf("unknown email template %q", name)
	}

	ctx := make(map[string]interface{}, len(data)+3)
	for k, v := range data {
		ctx[k] = v
	}
	ctx["company"] = r.company
	ctx["year"] = time.Now().Year()

	subject, err := r.subjects[name].Exec(ctx)
	if err != nil {
		return "", "", fmt.Errorf("failed to render subject of %s: %w", name, err)
	}
	// Subjects are plain text; undo the HTML escaping raymond applies to {{ }}.
	subject = unescape(strings.TrimSpace(subject))
	ctx["subject"] = subject

	html, err := body.Exec(ctx)
	if err != nil {
		return "", "", fmt.Errorf("failed to render template %s: %w", name, err)
	}
	ctx["body"] = html

	page, err := r.layout.Exec(ctx)
	if err != nil {
		return "", "", fmt.Errorf("failed to render layout for %s: %w", name, err)
	}

	return subject, page, nil
}

var htmlUnescaper = strings.NewReplacer("&amp;", "&", "&lt;", "<", "&gt;", ">", "&#34;", `"`, "&quot;", `"`, "&#39;", "'", "&apos;", "'")

func unescape(s string) string {
	return htmlUnescaper.Replace(s)
}

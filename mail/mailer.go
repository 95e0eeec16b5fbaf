// Package mail sends contact form notifications through Resend.
package mail

import (
	"bytes"
	"fmt"
	"html/template"

	"portfolio/config"
	"portfolio/models"

	"github.com/resend/resend-go/v2"
)

const notificationTemplate = `
<div style="font-family: Arial, sans-serif; max-width: 600px; margin: 0 auto;">
  <h2>New contact form message</h2>
  <p><strong>Name:</strong> {{.Name}}</p>
  <p><strong>Email:</strong> <a href="mailto:{{.Email}}">{{.Email}}</a></p>
  <p><strong>Received:</strong> {{.CreatedAt.Format "2006-01-02 15:04:05 MST"}}</p>
  <hr>
  <p style="white-space: pre-wrap;">{{.Message}}</p>
</div>
`

var notificationTmpl = template.Must(template.New("notification").Parse(notificationTemplate))

// Mailer wraps the Resend client for contact notifications.
type Mailer struct {
	client *resend.Client
	from   string
	to     string
}

// New creates a Mailer from cfg. It returns nil when the API key or
// recipient is unset, which disables notifications entirely.
func New(cfg *config.Config) *Mailer {
	if cfg.ResendAPIKey == "" || cfg.EmailTo == "" {
		return nil
	}

	from := cfg.EmailFrom
	if from == "" {
		from = "Portfolio Contact Form <onboarding@resend.dev>"
	}

	return &Mailer{
		client: resend.NewClient(cfg.ResendAPIKey),
		from:   from,
		to:     cfg.EmailTo,
	}
}

// SendContactNotification emails the site owner about a stored contact message.
func (m *Mailer) SendContactNotification(msg *models.ContactMessage) error {
	var body bytes.Buffer
	if err := notificationTmpl.Execute(&body, msg); err != nil {
		return fmt.Errorf("failed to render notification template: %w", err)
	}

	params := &resend.SendEmailRequest{
		From:    m.from,
		To:      []string{m.to},
		Subject: fmt.Sprintf("New contact form message from %s", msg.Name),
		Html:    body.String(),
		ReplyTo: msg.Email,
	}

	if _, err := m.client.Emails.Send(params); err != nil {
		return fmt.Errorf("failed to send contact notification: %w", err)
	}
	return nil
}

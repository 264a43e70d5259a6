package service

import (
	"broadwaylounge/internal/config"
	"broadwaylounge/internal/entities"
	"context"
	"fmt"
	"log/slog"

	"github.com/sendgrid/sendgrid-go"
	"github.com/sendgrid/sendgrid-go/helpers/mail"
)

// SendGridSender posts mail through the SendGrid v3 API. It is the driver
// for deployments that hold an API key instead of SMTP credentials.
type SendGridSender struct {
	cfg config.Mail
}

func NewSendGridSender(cfg config.Mail) *SendGridSender {
	return &SendGridSender{cfg: cfg}
}

// Send submits one message to the API under the caller's context.
func (s *SendGridSender) Send(ctx context.Context, msg entities.EmailMessage) error {
	m := mail.NewV3Mail()
	m.SetFrom(mail.NewEmail(msg.FromName, msg.From))
	m.Subject = msg.Subject

	p := mail.NewPersonalization()
	p.AddTos(mail.NewEmail("", msg.To))
	m.AddPersonalizations(p)
	m.AddContent(mail.NewContent("text/html", msg.HTMLBody))

	client := sendgrid.NewSendClient(s.cfg.SendGridAPIKey)
	response, err := client.SendWithContext(ctx, m)
	if err != nil {
		return fmt.Errorf("sending via SendGrid: %w", err)
	}
	if response.StatusCode < 200 || response.StatusCode >= 300 {
		return fmt.Errorf("SendGrid returned status %d: %s", response.StatusCode, response.Body)
	}

	slog.Debug("SendGrid accepted message", "subject", msg.Subject, "status", response.StatusCode)
	return nil
}

// internal/adapters/out/mail/contact_mailer.go
package mail

import (
	"context"
	"errors"
	"fmt"
	"strings"
)

// ContactMessage is a storefront contact-form submission.
type ContactMessage struct {
	Name    string
	Email   string
	Subject string
	Body    string
}

func (m ContactMessage) validate() error {
	if strings.TrimSpace(m.Email) == "" {
		return errors.New("contact_mailer: sender email is empty")
	}
	if strings.TrimSpace(m.Body) == "" {
		return errors.New("contact_mailer: message body is empty")
	}
	return nil
}

// ContactMailerPort is the outbound port used by the contact handler.
type ContactMailerPort interface {
	SendContactMessage(ctx context.Context, m ContactMessage) error
}

// ContactMailer forwards contact-form submissions to the shop inbox via an
// EmailClient.
type ContactMailer struct {
	client      EmailClient
	fromAddress string
	toAddress   string
}

func NewContactMailer(client EmailClient, fromAddress, toAddress string) *ContactMailer {
	return &ContactMailer{
		client:      client,
		fromAddress: strings.TrimSpace(fromAddress),
		toAddress:   strings.TrimSpace(toAddress),
	}
}

func (m *ContactMailer) SendContactMessage(ctx context.Context, msg ContactMessage) error {
	if m == nil || m.client == nil {
		return errors.New("contact_mailer: client is nil")
	}
	if err := msg.validate(); err != nil {
		return err
	}

	subject := strings.TrimSpace(msg.Subject)
	if subject == "" {
		subject = "Contact form message"
	}
	subject = "[Natural Glow] " + subject

	body := fmt.Sprintf(
		"From: %s <%s>\n\n%s\n",
		strings.TrimSpace(msg.Name),
		strings.TrimSpace(msg.Email),
		msg.Body,
	)

	return m.client.Send(ctx, m.fromAddress, m.toAddress, subject, body)
}

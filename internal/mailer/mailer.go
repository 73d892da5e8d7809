package mailer

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/resend/resend-go/v2"
)

var ErrInvalidEmail = errors.New("email is missing a sender, recipient or subject")

// Email is a plaintext transactional message.
type Email struct {
	From    string
	To      string
	ReplyTo string
	Subject string
	Text    string
}

func (e Email) Validate() error {
	if strings.TrimSpace(e.From) == "" || strings.TrimSpace(e.To) == "" || strings.TrimSpace(e.Subject) == "" {
		return ErrInvalidEmail
	}
	return nil
}

// Mailer sends one email and returns the provider message ID.
type Mailer interface {
	Send(ctx context.Context, email Email) (string, error)
}

type resendMailer struct {
	client *resend.Client
}

// NewResendMailer returns a Mailer backed by the Resend API.
func NewResendMailer(apiKey string) Mailer {
	return NewResendMailerWithClient(resend.NewClient(apiKey))
}

// NewResendMailerWithClient is used when the client needs a custom base URL or transport.
func NewResendMailerWithClient(client *resend.Client) Mailer {
	return &resendMailer{client: client}
}

func (m *resendMailer) Send(ctx context.Context, email Email) (string, error) {
	if err := email.Validate(); err != nil {
		return "", err
	}

	params := &resend.SendEmailRequest{
		From:    email.From,
		To:      []string{email.To},
		Subject: email.Subject,
		Text:    email.Text,
		ReplyTo: email.ReplyTo,
	}

	sent, err := m.client.Emails.SendWithContext(ctx, params)
	if err != nil {
		return "", fmt.Errorf("resend send: %w", err)
	}
	return sent.Id, nil
}

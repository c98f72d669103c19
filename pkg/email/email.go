// Package email sends transactional mail through Resend.
package email

import (
	"errors"

	"github.com/resend/resend-go/v2"
)

// Sender delivers HTML mail. The zero client (no API key) reports itself
// as disabled so callers can skip sending in development.
type Sender struct {
	client *resend.Client
	from   string
}

// NewSender builds a Sender; an empty apiKey yields a disabled sender.
func NewSender(apiKey, from string) *Sender {
	s := &Sender{from: from}
	if apiKey != "" {
		s.client = resend.NewClient(apiKey)
	}
	return s
}

// Enabled reports whether an API key was configured.
func (s *Sender) Enabled() bool { return s.client != nil }

// Send delivers one HTML email to a single recipient.
func (s *Sender) Send(to, subject, html string) error {
	if s.client == nil {
		return errors.New("email sender is not configured")
	}
	_, err := s.client.Emails.Send(&resend.SendEmailRequest{
		From:    s.from,
		To:      []string{to},
		Subject: subject,
		Html:    html,
	})
	return err
}

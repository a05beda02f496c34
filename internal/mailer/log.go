package mailer

import (
	"context"
	"log"
)

// LogMailer is a development implementation that logs codes instead of
// sending mail. Used when no SMTP host is configured.
type LogMailer struct{}

// NewLogMailer creates a new LogMailer.
func NewLogMailer() *LogMailer {
	return &LogMailer{}
}

// SendVerificationCode logs a signup verification code.
func (m *LogMailer) SendVerificationCode(ctx context.Context, email, code string) error {
	log.Printf("[mail] verification code for %s: %s", email, code)
	return nil
}

// SendProfileUpdateCode logs a profile-update verification code.
func (m *LogMailer) SendProfileUpdateCode(ctx context.Context, email, code string) error {
	log.Printf("[mail] profile update code for %s: %s", email, code)
	return nil
}

// Ensure LogMailer implements Mailer interface
var _ Mailer = (*LogMailer)(nil)

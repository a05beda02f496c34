package mailer

import (
	"context"
	"fmt"
	"net/smtp"
)

// SMTPMailer sends verification codes over plain SMTP.
type SMTPMailer struct {
	host     string
	port     string
	username string
	password string
	from     string
}

// NewSMTPMailer creates a mailer for the given SMTP server.
func NewSMTPMailer(host, port, username, password, from string) *SMTPMailer {
	return &SMTPMailer{
		host:     host,
		port:     port,
		username: username,
		password: password,
		from:     from,
	}
}

// SendVerificationCode emails a signup verification code.
func (m *SMTPMailer) SendVerificationCode(ctx context.Context, email, code string) error {
	body := fmt.Sprintf(
		"Welcome to TrekHeaven!\r\n\r\n"+
			"Your verification code is: %s\r\n\r\n"+
			"This code will expire in 10 minutes.\r\n"+
			"If you didn't request this verification, please ignore this email.\r\n",
		code,
	)
	return m.send(ctx, email, "Email Verification - TrekHeaven", body)
}

// SendProfileUpdateCode emails a profile-update verification code.
func (m *SMTPMailer) SendProfileUpdateCode(ctx context.Context, email, code string) error {
	body := fmt.Sprintf(
		"Profile Update Request\r\n\r\n"+
			"Your verification code for profile update is: %s\r\n\r\n"+
			"This code will expire in 10 minutes.\r\n"+
			"If you didn't request this change, please secure your account immediately.\r\n",
		code,
	)
	return m.send(ctx, email, "Profile Update Verification - TrekHeaven", body)
}

func (m *SMTPMailer) send(ctx context.Context, to, subject, body string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	msg := []byte(fmt.Sprintf(
		"From: %s\r\nTo: %s\r\nSubject: %s\r\nContent-Type: text/plain; charset=UTF-8\r\n\r\n%s",
		m.from, to, subject, body,
	))

	addr := m.host + ":" + m.port
	var auth smtp.Auth
	if m.username != "" {
		auth = smtp.PlainAuth("", m.username, m.password, m.host)
	}

	if err := smtp.SendMail(addr, auth, m.from, []string{to}, msg); err != nil {
		return fmt.Errorf("failed to send verification email: %w", err)
	}
	return nil
}

// Ensure SMTPMailer implements Mailer interface
var _ Mailer = (*SMTPMailer)(nil)

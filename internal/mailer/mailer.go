// Package mailer delivers verification-code emails.
package mailer

import "context"

// Mailer defines the interface for outbound verification mail.
type Mailer interface {
	// SendVerificationCode emails a signup verification code.
	SendVerificationCode(ctx context.Context, email, code string) error
	// SendProfileUpdateCode emails a profile-update verification code.
	SendProfileUpdateCode(ctx context.Context, email, code string) error
}

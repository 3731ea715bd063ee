package service

import "context"

// Mailer is the outgoing mail collaborator. Delivery failures are reported to
// the caller; state already persisted before dispatch is not rolled back.
type Mailer interface {
	// Send attempts to deliver one HTML email.
	Send(ctx context.Context, to, subject, htmlBody string) error
}

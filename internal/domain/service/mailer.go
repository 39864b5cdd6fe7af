package service

import "context"

// Mailer delivers transactional mail. The transport is a black box.
type Mailer interface {
	// Send delivers a single message to one recipient.
	Send(ctx context.Context, to, subject, htmlBody string) error
}

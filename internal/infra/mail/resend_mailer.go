// Package mail provides the transactional mail adapter.
package mail

import (
	"context"
	"log/slog"

	"github.com/pkg/errors"
	"github.com/resend/resend-go/v2"

	"roster/config"
	"roster/internal/domain/service"
)

// resendMailer delivers mail through the Resend API.
type resendMailer struct {
	client *resend.Client
	from   string
	logger *slog.Logger
}

// NewResendMailer is the constructor for resendMailer.
func NewResendMailer(cfg *config.Config, logger *slog.Logger) (service.Mailer, error) {
	if cfg.Mail.APIKey == "" {
		return nil, errors.New("mail api key must be provided")
	}

	return &resendMailer{
		client: resend.NewClient(cfg.Mail.APIKey),
		from:   cfg.Mail.From,
		logger: logger,
	}, nil
}

// Send delivers a single message to one recipient.
func (m *resendMailer) Send(ctx context.Context, to, subject, htmlBody string) error {
	params := &resend.SendEmailRequest{
		From:    m.from,
		To:      []string{to},
		Subject: subject,
		Html:    htmlBody,
	}

	sent, err := m.client.Emails.SendWithContext(ctx, params)
	if err != nil {
		return errors.Wrap(err, "failed to send mail")
	}
	m.logger.Debug("Mail sent", "id", sent.Id, "to", to)

	return nil
}

// Package mail implements the outgoing-mail collaborator over plain SMTP.
package mail

import (
	"context"
	"fmt"
	"log/slog"
	"net"
	"net/smtp"
	"strconv"

	"github.com/pkg/errors"

	"backoffice/config"
	"backoffice/internal/domain/service"
)

type smtpMailer struct {
	addr   string
	from   string
	auth   smtp.Auth
	logger *slog.Logger
}

// NewSMTPMailer builds a Mailer from the SMTP section of the configuration.
// When no username is configured the connection is unauthenticated, which is
// what local relays like MailHog expect.
func NewSMTPMailer(cfg *config.Config, logger *slog.Logger) (service.Mailer, error) {
	if cfg.SMTP == nil || cfg.SMTP.Host == "" {
		return nil, errors.New("smtp configuration must be provided")
	}

	var auth smtp.Auth
	if cfg.SMTP.Username != "" {
		auth = smtp.PlainAuth("", cfg.SMTP.Username, cfg.SMTP.Password, cfg.SMTP.Host)
	}

	return &smtpMailer{
		addr:   net.JoinHostPort(cfg.SMTP.Host, strconv.Itoa(cfg.SMTP.Port)),
		from:   cfg.SMTP.From,
		auth:   auth,
		logger: logger,
	}, nil
}

// Send delivers a single HTML email. The context is accepted for interface
// symmetry; net/smtp has no native cancellation once the dial has started.
func (m *smtpMailer) Send(_ context.Context, to, subject, htmlBody string) error {
	msg := fmt.Sprintf(
		"From: %s\r\nTo: %s\r\nSubject: %s\r\nMIME-Version: 1.0\r\nContent-Type: text/html; charset=utf-8\r\n\r\n%s",
		m.from, to, subject, htmlBody,
	)

	if err := smtp.SendMail(m.addr, m.auth, m.from, []string{to}, []byte(msg)); err != nil {
		m.logger.Error("Failed to send email", slog.String("to", to), slog.Any("error", err))

		return errors.Wrap(err, "smtp send failed")
	}

	return nil
}

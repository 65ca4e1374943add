// Package mail provides Notifier implementations for the application
// workflow's post-commit notifications.
package mail

import (
	"context"
	"fmt"
	"log/slog"
	"net/smtp"
)

// SMTPConfig holds the relay configuration for the SMTP notifier.
type SMTPConfig struct {
	Host     string
	Port     string
	Username string
	Password string
	From     string
}

// SMTPNotifier sends notifications through an SMTP relay.
type SMTPNotifier struct {
	cfg SMTPConfig
}

// NewSMTPNotifier creates a new SMTPNotifier for the given relay.
func NewSMTPNotifier(cfg SMTPConfig) *SMTPNotifier {
	return &SMTPNotifier{cfg: cfg}
}

// Notify sends a single plain-text message to the recipient.
// Failures are returned to the caller; the workflow decides the policy.
func (n *SMTPNotifier) Notify(ctx context.Context, recipient, subject, body string) error {
	msg := fmt.Sprintf("From: %s\r\nTo: %s\r\nSubject: %s\r\n\r\n%s\r\n",
		n.cfg.From, recipient, subject, body)

	addr := n.cfg.Host + ":" + n.cfg.Port
	var auth smtp.Auth
	if n.cfg.Username != "" {
		auth = smtp.PlainAuth("", n.cfg.Username, n.cfg.Password, n.cfg.Host)
	}

	if err := smtp.SendMail(addr, auth, n.cfg.From, []string{recipient}, []byte(msg)); err != nil {
		return fmt.Errorf("failed to send notification to %s: %w", recipient, err)
	}
	return nil
}

// LogNotifier writes notifications to the structured log instead of
// delivering them. Used when no SMTP relay is configured so development
// environments keep the full workflow observable.
type LogNotifier struct{}

// NewLogNotifier creates a new LogNotifier.
func NewLogNotifier() *LogNotifier {
	return &LogNotifier{}
}

// Notify logs the notification and always succeeds.
func (n *LogNotifier) Notify(ctx context.Context, recipient, subject, body string) error {
	slog.Info("notification", "recipient", recipient, "subject", subject, "body", body)
	return nil
}

// Package notify delivers booking and payment notifications.
package notify

import (
	"context"
	"fmt"
	"log/slog"
	"net/smtp"
	"strings"

	"beautify-api/internal/pkg/config"
	"beautify-api/internal/pkg/errs"
	"beautify-api/internal/usecase"
)

// Notifier sends email over SMTP when a host is configured and degrades to
// structured logging otherwise, so local development needs no mail server.
// SMS delivery has no configured gateway yet and is always logged.
type Notifier struct {
	cfg config.SMTPConfig
}

func NewNotifier(cfg config.SMTPConfig) *Notifier {
	return &Notifier{cfg: cfg}
}

var _ usecase.Notifier = (*Notifier)(nil)

func (n *Notifier) Send(ctx context.Context, recipient, subject, body string) error {
	if n.cfg.Host == "" {
		slog.InfoContext(ctx, "email notification (no smtp host configured)",
			"recipient", recipient, "subject", subject)
		return nil
	}

	msg := buildMessage(n.cfg.From, recipient, subject, body)
	addr := n.cfg.Host + ":" + n.cfg.Port

	var auth smtp.Auth
	if n.cfg.User != "" {
		auth = smtp.PlainAuth("", n.cfg.User, n.cfg.Password, n.cfg.Host)
	}

	if err := smtp.SendMail(addr, auth, n.cfg.From, []string{recipient}, msg); err != nil {
		return errs.Wrap(err, "failed to send email")
	}
	return nil
}

func (n *Notifier) SendSMS(ctx context.Context, phone, message string) error {
	slog.InfoContext(ctx, "sms notification", "phone", phone, "message", message)
	return nil
}

func buildMessage(from, to, subject, body string) []byte {
	var b strings.Builder
	fmt.Fprintf(&b, "From: %s\r\n", from)
	fmt.Fprintf(&b, "To: %s\r\n", to)
	fmt.Fprintf(&b, "Subject: %s\r\n", subject)
	b.WriteString("MIME-Version: 1.0\r\nContent-Type: text/plain; charset=\"UTF-8\"\r\n\r\n")
	b.WriteString(body)
	return []byte(b.String())
}

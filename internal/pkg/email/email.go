// Package email sends report artifacts as mail attachments over SMTP.
package email

import (
	"crypto/tls"
	"fmt"
	"log/slog"

	"github.com/go-gomail/gomail"
	"github.com/slipsalary/payroll-backend-go/internal/config"
)

// Message is a single-recipient mail with one file attached.
type Message struct {
	To             string
	Subject        string
	Body           string
	AttachmentPath string
	MIMEType       string
}

// Mailer is the transport the dispatch services depend on.
type Mailer interface {
	Send(msg Message) error
}

type smtpMailer struct {
	cfg config.SMTPConfig
}

// NewMailer creates an SMTP-backed Mailer. UseSSL selects an implicit-TLS
// session; otherwise STARTTLS is negotiated whenever the server offers it.
// When no credentials are configured no authentication step is attempted.
func NewMailer(cfg config.SMTPConfig) Mailer {
	return &smtpMailer{cfg: cfg}
}

func (s *smtpMailer) Send(msg Message) error {
	m := gomail.NewMessage()
	m.SetHeader("From", s.cfg.From)
	m.SetHeader("To", msg.To)
	m.SetHeader("Subject", msg.Subject)
	m.SetBody("text/plain", msg.Body)
	m.Attach(msg.AttachmentPath, gomail.SetHeader(map[string][]string{
		"Content-Type": {msg.MIMEType},
	}))

	d := gomail.NewDialer(s.cfg.Host, s.cfg.Port, s.cfg.Username, s.cfg.Password)
	d.SSL = s.cfg.UseSSL
	if !s.cfg.UseSSL && s.cfg.UseTLS {
		d.TLSConfig = &tls.Config{ServerName: s.cfg.Host}
	}

	if err := d.DialAndSend(m); err != nil {
		return fmt.Errorf("failed to send email to %s: %w", msg.To, err)
	}

	slog.Info("email sent", "to", msg.To, "subject", msg.Subject)
	return nil
}

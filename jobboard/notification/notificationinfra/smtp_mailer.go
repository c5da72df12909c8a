package notificationinfra

import (
	"context"
	"fmt"
	"net/smtp"
	"strings"

	"github.com/Makanak1/Job-Board-Platform/jobboard/notification"
)

// SMTPMailer implements notification.EmailSender over plain SMTP
type SMTPMailer struct {
	host     string
	port     int
	username string
	password string
	from     string
}

// NewSMTPMailer creates a new SMTP mailer
func NewSMTPMailer(host string, port int, username, password, from string) *SMTPMailer {
	return &SMTPMailer{
		host:     host,
		port:     port,
		username: username,
		password: password,
		from:     from,
	}
}

// Send delivers a single message
func (m *SMTPMailer) Send(ctx context.Context, msg *notification.EmailMessage) error {
	var b strings.Builder
	fmt.Fprintf(&b, "From: %s\r\n", m.from)
	fmt.Fprintf(&b, "To: %s\r\n", msg.To)
	fmt.Fprintf(&b, "Subject: %s\r\n", msg.Subject)
	b.WriteString("MIME-Version: 1.0\r\n")
	b.WriteString("Content-Type: text/plain; charset=\"utf-8\"\r\n")
	b.WriteString("\r\n")
	b.WriteString(msg.Body)

	addr := fmt.Sprintf("%s:%d", m.host, m.port)

	var auth smtp.Auth
	if m.username != "" {
		auth = smtp.PlainAuth("", m.username, m.password, m.host)
	}

	if err := smtp.SendMail(addr, auth, m.from, []string{msg.To}, []byte(b.String())); err != nil {
		return fmt.Errorf("send email to %s: %w", msg.To, err)
	}

	return nil
}

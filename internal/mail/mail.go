// Package mail delivers outgoing notification emails
package mail

import (
	"context"

	"github.com/hashicorp/go-hclog"
	"gopkg.in/gomail.v2"
)

// Message is a single HTML email
type Message struct {
	To      string
	Subject string
	HTML    string
}

// SMTPSender sends messages through an authenticated SMTP relay. A new
// connection is dialed for every message.
type SMTPSender struct {
	dialer *gomail.Dialer
	from   string
}

func NewSMTPSender(host string, port int, user, password string) *SMTPSender {
	return &SMTPSender{
		dialer: gomail.NewDialer(host, port, user, password),
		from:   user,
	}
}

func (s *SMTPSender) Send(ctx context.Context, msg Message) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	m := gomail.NewMessage()
	m.SetHeader("From", s.from)
	m.SetHeader("To", msg.To)
	m.SetHeader("Subject", msg.Subject)
	m.SetBody("text/html", msg.HTML)

	return s.dialer.DialAndSend(m)
}

// LogSender writes messages to the log instead of sending them. It stands in
// for SMTP when no relay is configured.
type LogSender struct {
	logger hclog.Logger
}

func NewLogSender(logger hclog.Logger) *LogSender {
	return &LogSender{logger: logger}
}

func (s *LogSender) Send(ctx context.Context, msg Message) error {
	s.logger.Info("Email not sent, SMTP is not configured", "to", msg.To, "subject", msg.Subject)
	s.logger.Debug("Email body", "html", msg.HTML)
	return nil
}

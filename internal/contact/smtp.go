package contact

import (
	"context"
	"fmt"
	"net/smtp"
	"strings"
)

// SMTPConfig holds credentials for a plain SMTP relay.
type SMTPConfig struct {
	Host string
	Port string
	User string
	Pass string
}

// SMTPSender delivers messages through an authenticated SMTP relay.
type SMTPSender struct {
	cfg      SMTPConfig
	sendMail func(addr string, a smtp.Auth, from string, to []string, msg []byte) error
}

func NewSMTPSender(cfg SMTPConfig) *SMTPSender {
	return &SMTPSender{cfg: cfg, sendMail: smtp.SendMail}
}

func (s *SMTPSender) Ready() error {
	var names []string
	if s.cfg.Host == "" {
		names = append(names, "SMTP_HOST")
	}
	if s.cfg.User == "" {
		names = append(names, "SMTP_USER")
	}
	if s.cfg.Pass == "" {
		names = append(names, "SMTP_PASS")
	}
	if len(names) > 0 {
		return missing(names...)
	}
	return nil
}

// Send ignores ctx once the SMTP exchange has started; net/smtp has no
// cancellation.
func (s *SMTPSender) Send(ctx context.Context, msg Message) error {
	if err := s.Ready(); err != nil {
		return err
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	to := msg.To
	if to == "" {
		to = s.cfg.User
	}

	auth := smtp.PlainAuth("", s.cfg.User, s.cfg.Pass, s.cfg.Host)
	if err := s.sendMail(s.cfg.Host+":"+s.cfg.Port, auth, s.cfg.User, []string{to}, compose(s.cfg.User, to, msg)); err != nil {
		return fmt.Errorf("smtp send: %w", err)
	}
	return nil
}

func compose(from, to string, msg Message) []byte {
	subject := fmt.Sprintf("Portfolio Contact: %s", headerSafe(msg.FromName))
	body := fmt.Sprintf(`
New contact form submission from your portfolio:

Name: %s
Email: %s
Message:
%s

---
Sent from your portfolio contact form
`, headerSafe(msg.FromName), headerSafe(msg.FromEmail), msg.Body)

	return []byte("To: " + to + "\r\n" +
		"Subject: " + subject + "\r\n" +
		"From: " + from + "\r\n" +
		"Reply-To: " + headerSafe(msg.ReplyTo) + "\r\n" +
		"\r\n" +
		body + "\r\n")
}

var headerReplacer = strings.NewReplacer("\r", " ", "\n", " ")

// headerSafe keeps user input from starting a new header line.
func headerSafe(s string) string {
	return headerReplacer.Replace(s)
}

package mailer

import (
	"fmt"

	"gopkg.in/gomail.v2"
)

const (
	// DefaultHost is the default SMTP host.
	DefaultHost = "smtp.gmail.com"

	// DefaultPort is the default SMTP submission port.
	DefaultPort = 587
)

// Mailer sends email over SMTP.
type Mailer struct {
	dialer    *gomail.Dialer
	from      string
	recipient string
}

// New creates a new SMTP mailer.
func New(cfg Config) (*Mailer, error) {
	if cfg.Username == "" {
		return nil, fmt.Errorf("mailer: username is required")
	}
	if cfg.Password == "" {
		return nil, fmt.Errorf("mailer: password is required")
	}
	if cfg.Host == "" {
		cfg.Host = DefaultHost
	}
	if cfg.Port == 0 {
		cfg.Port = DefaultPort
	}

	return &Mailer{
		dialer:    gomail.NewDialer(cfg.Host, cfg.Port, cfg.Username, cfg.Password),
		from:      cfg.Username,
		recipient: cfg.Recipient,
	}, nil
}

// Send delivers a single message. A transport failure is returned once and
// never retried here.
func (m *Mailer) Send(msg Message) error {
	to := msg.To
	if to == "" {
		to = m.recipient
	}
	if to == "" {
		return fmt.Errorf("mailer: no recipient configured")
	}

	mail := gomail.NewMessage()
	mail.SetHeader("From", m.from)
	mail.SetHeader("To", to)
	mail.SetHeader("Subject", msg.Subject)
	mail.SetBody("text/plain", msg.Body)

	if err := m.dialer.DialAndSend(mail); err != nil {
		return fmt.Errorf("mailer: failed to send message: %w", err)
	}

	return nil
}

package mail

import (
	"context"
	"errors"
	"fmt"
	"io"

	gomail "gopkg.in/gomail.v2"
)

// Config holds configuration for the SMTP transport
type Config struct {
	// Host is the SMTP server hostname
	Host string

	// Port is the SMTP server port
	Port int

	// Username for SMTP authentication
	Username string

	// Password for SMTP authentication
	Password string

	// From is the sender address on outgoing messages
	From string
}

// smtpTransport implements the Transport interface over SMTP
type smtpTransport struct {
	dialer *gomail.Dialer
	from   string
}

// NewSMTP creates a new SMTP-backed mail transport
func NewSMTP(cfg *Config) (*smtpTransport, error) {
	// Validate config
	if cfg == nil {
		return nil, errors.New("config cannot be nil")
	}

	if cfg.Host == "" || cfg.Port == 0 {
		return nil, errors.New("smtp host and port are required")
	}

	if cfg.From == "" {
		return nil, errors.New("from address is required")
	}

	return &smtpTransport{
		dialer: gomail.NewDialer(cfg.Host, cfg.Port, cfg.Username, cfg.Password),
		from:   cfg.From,
	}, nil
}

// Send delivers one message over SMTP. The underlying dialer blocks,
// so the send runs in its own goroutine and the context deadline wins
// the race against it.
func (t *smtpTransport) Send(ctx context.Context, msg *Message) error {
	if msg == nil || msg.To == "" {
		return errors.New("message and recipient cannot be empty")
	}

	m := gomail.NewMessage()
	m.SetHeader("From", t.from)
	m.SetHeader("To", msg.To)
	m.SetHeader("Subject", msg.Subject)
	m.SetBody("text/html", msg.HTMLBody)

	for _, a := range msg.Attachments {
		a := a
		settings := []gomail.FileSetting{
			gomail.SetCopyFunc(func(w io.Writer) error {
				_, err := w.Write(a.Bytes)
				return err
			}),
		}
		if a.MIMEType != "" {
			settings = append(settings, gomail.SetHeader(map[string][]string{
				"Content-Type": {a.MIMEType},
			}))
		}
		m.Attach(a.Filename, settings...)
	}

	done := make(chan error, 1)
	go func() {
		done <- t.dialer.DialAndSend(m)
	}()

	select {
	case err := <-done:
		if err != nil {
			return fmt.Errorf("failed to send message to %s: %w", msg.To, err)
		}
		return nil
	case <-ctx.Done():
		return fmt.Errorf("send to %s aborted: %w", msg.To, ctx.Err())
	}
}

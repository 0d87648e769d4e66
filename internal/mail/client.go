// Package mail provides the SMTP message transport. The client is an
// explicit value constructed once from configuration and passed to the
// dispatcher, never read from ambient process state at send time.
package mail

import (
	"context"
	"fmt"

	gomail "github.com/wneessen/go-mail"
)

// Config holds SMTP connection parameters.
type Config struct {
	Host     string
	Port     int
	Username string
	Password string
	From     string
}

// DefaultSMTPPort matches the common submission port used by transactional
// mail sandboxes.
const DefaultSMTPPort = 2525

// Validate checks that the configuration can produce a usable client.
func (c *Config) Validate() error {
	if c.Host == "" {
		return fmt.Errorf("smtp config error: 'host' is required")
	}
	if c.From == "" && c.Username == "" {
		return fmt.Errorf("smtp config error: 'from' or 'username' is required")
	}
	if c.Port < 0 {
		return fmt.Errorf("smtp config error: 'port' must be non-negative")
	}
	return nil
}

// Sender returns the From address, falling back to the SMTP username.
func (c *Config) Sender() string {
	if c.From != "" {
		return c.From
	}
	return c.Username
}

// Client sends plain-text messages over SMTP.
type Client struct {
	smtp *gomail.Client
	from string
}

// NewClient builds an SMTP client from explicit configuration.
func NewClient(cfg Config) (*Client, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	port := cfg.Port
	if port == 0 {
		port = DefaultSMTPPort
	}

	opts := []gomail.Option{
		gomail.WithPort(port),
		gomail.WithTLSPolicy(gomail.TLSOpportunistic),
	}
	if cfg.Username != "" {
		opts = append(opts,
			gomail.WithSMTPAuth(gomail.SMTPAuthPlain),
			gomail.WithUsername(cfg.Username),
			gomail.WithPassword(cfg.Password),
		)
	}

	smtp, err := gomail.NewClient(cfg.Host, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to create SMTP client: %w", err)
	}

	return &Client{smtp: smtp, from: cfg.Sender()}, nil
}

// Send delivers one plain-text message to one address. The call is bounded
// by ctx; it is never retried here.
func (c *Client) Send(ctx context.Context, to, subject, body string) error {
	msg := gomail.NewMsg()
	if err := msg.From(c.from); err != nil {
		return fmt.Errorf("invalid from address %q: %w", c.from, err)
	}
	if err := msg.To(to); err != nil {
		return fmt.Errorf("invalid recipient address %q: %w", to, err)
	}
	msg.Subject(subject)
	msg.SetBodyString(gomail.TypeTextPlain, body)

	if err := c.smtp.DialAndSendWithContext(ctx, msg); err != nil {
		return fmt.Errorf("failed to send message to %s: %w", to, err)
	}
	return nil
}

package service

import (
	"broadwaylounge/internal/config"
	"broadwaylounge/internal/entities"
	"context"
	"crypto/tls"
	"fmt"
	"mime"
	"net"
	"net/mail"
	"strings"
	"time"

	"github.com/emersion/go-sasl"
	"github.com/emersion/go-smtp"
)

// SMTPSender delivers mail through the configured relay. With UseTLS set
// it opens an implicit-TLS connection (port 465 semantics); without it a
// plaintext one, which local catch-all relays speak. An empty password
// skips the AUTH exchange entirely.
type SMTPSender struct {
	cfg config.Mail
}

func NewSMTPSender(cfg config.Mail) *SMTPSender {
	return &SMTPSender{cfg: cfg}
}

// Send performs one delivery attempt bounded by the caller's context.
func (s *SMTPSender) Send(ctx context.Context, msg entities.EmailMessage) error {
	conn, err := s.dial(ctx)
	if err != nil {
		return fmt.Errorf("connecting to %s: %w", s.cfg.Addr(), err)
	}

	c := smtp.NewClient(conn)
	defer c.Close()

	// An expired context closes the socket, which fails whichever
	// command is in flight.
	stop := context.AfterFunc(ctx, func() { conn.Close() })
	defer stop()

	if err := s.transmit(c, msg); err != nil {
		if ctx.Err() != nil {
			return fmt.Errorf("sending %q: %w", msg.Subject, ctx.Err())
		}
		return err
	}
	return nil
}

func (s *SMTPSender) transmit(c *smtp.Client, msg entities.EmailMessage) error {
	if s.cfg.Password != "" {
		auth := sasl.NewPlainClient("", s.cfg.SenderEmail, s.cfg.Password)
		if err := c.Auth(auth); err != nil {
			return fmt.Errorf("authenticating as %s: %w", s.cfg.SenderEmail, err)
		}
	}

	if err := c.Mail(msg.From, nil); err != nil {
		return fmt.Errorf("MAIL FROM: %w", err)
	}
	if err := c.Rcpt(msg.To, nil); err != nil {
		return fmt.Errorf("RCPT TO: %w", err)
	}

	wc, err := c.Data()
	if err != nil {
		return fmt.Errorf("DATA: %w", err)
	}
	if _, err := wc.Write(buildMessage(msg)); err != nil {
		wc.Close()
		return fmt.Errorf("writing message: %w", err)
	}
	if err := wc.Close(); err != nil {
		return fmt.Errorf("finishing message: %w", err)
	}

	return c.Quit()
}

func (s *SMTPSender) dial(ctx context.Context) (net.Conn, error) {
	d := &net.Dialer{}
	if s.cfg.UseTLS {
		td := &tls.Dialer{NetDialer: d, Config: &tls.Config{ServerName: s.cfg.Host}}
		return td.DialContext(ctx, "tcp", s.cfg.Addr())
	}
	return d.DialContext(ctx, "tcp", s.cfg.Addr())
}

// buildMessage assembles the RFC 5322 bytes for one HTML mail.
func buildMessage(msg entities.EmailMessage) []byte {
	from := mail.Address{Name: msg.FromName, Address: msg.From}

	var b strings.Builder
	fmt.Fprintf(&b, "From: %s\r\n", from.String())
	fmt.Fprintf(&b, "To: %s\r\n", msg.To)
	fmt.Fprintf(&b, "Subject: %s\r\n", mime.QEncoding.Encode("utf-8", msg.Subject))
	fmt.Fprintf(&b, "Date: %s\r\n", time.Now().Format(time.RFC1123Z))
	b.WriteString("MIME-Version: 1.0\r\n")
	b.WriteString("Content-Type: text/html; charset=\"UTF-8\"\r\n")
	b.WriteString("\r\n")
	b.WriteString(msg.HTMLBody)
	return []byte(b.String())
}

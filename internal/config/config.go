package config

import (
	"fmt"
	"net"
	"os"
	"strconv"
	"time"
)

// Mail driver names accepted in MAIL_DRIVER.
const (
	DriverSMTP     = "smtp"
	DriverSendGrid = "sendgrid"
)

// Mail holds everything the mail senders and the dispatch queue need.
// An empty Password disables the AUTH exchange, which local catch-all
// relays like Mailhog expect.
type Mail struct {
	SenderEmail    string
	ReceiverEmail  string
	Password       string
	Host           string
	Port           string
	UseTLS         bool
	Driver         string
	SendGridAPIKey string
	FromName       string
	Timeout        time.Duration
	QueueSize      int
}

// Addr returns the relay address in host:port form.
func (m Mail) Addr() string {
	return net.JoinHostPort(m.Host, m.Port)
}

// Config is assembled once at startup and injected into the components
// that need it. Nothing reads the environment after FromEnv returns.
type Config struct {
	Port            string
	TemplatesDir    string
	StaticDir       string
	TemplateRefresh string
	Mail            Mail
}

// FromEnv builds the configuration from the process environment.
// HOST_EMAIL is the only required variable; it is used as both the
// sender and the receiver address of submission mail.
func FromEnv() (*Config, error) {
	hostEmail := os.Getenv("HOST_EMAIL")
	if hostEmail == "" {
		return nil, fmt.Errorf("HOST_EMAIL not set")
	}

	mail := Mail{
		SenderEmail:    hostEmail,
		ReceiverEmail:  hostEmail,
		Password:       os.Getenv("HOST_PASSWORD"),
		Host:           getenv("SMTP_HOST", "mail.privateemail.com"),
		Port:           getenv("SMTP_PORT", "465"),
		Driver:         getenv("MAIL_DRIVER", DriverSMTP),
		SendGridAPIKey: os.Getenv("SENDGRID_API_KEY"),
		FromName:       getenv("MAIL_FROM_NAME", "Broadway Lounge"),
	}

	var err error
	if mail.UseTLS, err = boolEnv("SMTP_TLS", true); err != nil {
		return nil, err
	}
	if mail.Timeout, err = durationEnv("MAIL_TIMEOUT", 15*time.Second); err != nil {
		return nil, err
	}
	if mail.QueueSize, err = intEnv("MAIL_QUEUE_SIZE", 64); err != nil {
		return nil, err
	}

	switch mail.Driver {
	case DriverSMTP:
	case DriverSendGrid:
		if mail.SendGridAPIKey == "" {
			return nil, fmt.Errorf("MAIL_DRIVER=sendgrid requires SENDGRID_API_KEY")
		}
	default:
		return nil, fmt.Errorf("unknown MAIL_DRIVER %q", mail.Driver)
	}

	// Setting TEMPLATE_REFRESH to an empty string disables the reload job,
	// so the unset case has to be told apart from the empty one.
	refresh := "@hourly"
	if v, ok := os.LookupEnv("TEMPLATE_REFRESH"); ok {
		refresh = v
	}

	return &Config{
		Port:            getenv("PORT", "8080"),
		TemplatesDir:    getenv("TEMPLATES_DIR", "./web/templates"),
		StaticDir:       getenv("STATIC_DIR", "./web/static"),
		TemplateRefresh: refresh,
		Mail:            mail,
	}, nil
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func boolEnv(key string, fallback bool) (bool, error) {
	v := os.Getenv(key)
	if v == "" {
		return fallback, nil
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return false, fmt.Errorf("invalid %s %q: %w", key, v, err)
	}
	return b, nil
}

func intEnv(key string, fallback int) (int, error) {
	v := os.Getenv(key)
	if v == "" {
		return fallback, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil || n <= 0 {
		return 0, fmt.Errorf("invalid %s %q: must be a positive integer", key, v)
	}
	return n, nil
}

func durationEnv(key string, fallback time.Duration) (time.Duration, error) {
	v := os.Getenv(key)
	if v == "" {
		return fallback, nil
	}
	d, err := time.ParseDuration(v)
	if err != nil || d <= 0 {
		return 0, fmt.Errorf("invalid %s %q: must be a positive duration", key, v)
	}
	return d, nil
}

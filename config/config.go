package config

import (
	"os"
	"strings"
	"time"

	log "github.com/sirupsen/logrus"
)

// Config holds process settings read from the environment.
type Config struct {
	Port         string
	LogLevel     string
	DatabaseURL  string
	DatabaseName string

	InstagramUsername string
	FacebookPage      string

	Twilio   TwilioConfig
	SendGrid SendGridConfig

	// Where salon staff receive notifications.
	NotifyPhone string
	NotifyEmail string

	DigestSchedule       string
	SlowRequestThreshold time.Duration
}

type TwilioConfig struct {
	AccountSID string
	AuthToken  string
	FromNumber string
}

func (t TwilioConfig) Enabled() bool {
	return t.AccountSID != "" && t.AuthToken != "" && t.FromNumber != ""
}

type SendGridConfig struct {
	APIKey    string
	FromEmail string
	FromName  string
}

func (s SendGridConfig) Enabled() bool {
	return s.APIKey != "" && s.FromEmail != ""
}

// SocialConfig is the public social-media configuration; unset values are nil.
type SocialConfig struct {
	InstagramUsername *string `json:"instagram_username"`
	FacebookPage      *string `json:"facebook_page"`
}

func (c Config) Social() SocialConfig {
	return SocialConfig{
		InstagramUsername: optional(c.InstagramUsername),
		FacebookPage:      optional(c.FacebookPage),
	}
}

func optional(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

// Load reads the configuration from the environment. Call godotenv.Load first to pick up .env.
func Load() Config {
	cfg := Config{
		Port:              getenv("PORT", "8000"),
		LogLevel:          getenv("LOG_LEVEL", "info"),
		DatabaseURL:       strings.TrimSpace(os.Getenv("DATABASE_URL")),
		DatabaseName:      getenv("DATABASE_NAME", "salon"),
		InstagramUsername: os.Getenv("INSTAGRAM_USERNAME"),
		FacebookPage:      os.Getenv("FACEBOOK_PAGE"),
		Twilio: TwilioConfig{
			AccountSID: os.Getenv("TWILIO_ACCOUNT_SID"),
			AuthToken:  os.Getenv("TWILIO_AUTH_TOKEN"),
			FromNumber: os.Getenv("TWILIO_FROM_NUMBER"),
		},
		SendGrid: SendGridConfig{
			APIKey:    os.Getenv("SENDGRID_API_KEY"),
			FromEmail: os.Getenv("SENDGRID_FROM_EMAIL"),
			FromName:  getenv("SENDGRID_FROM_NAME", "Prestige Beauty Salon"),
		},
		NotifyPhone:          os.Getenv("SALON_NOTIFY_PHONE"),
		NotifyEmail:          os.Getenv("SALON_NOTIFY_EMAIL"),
		DigestSchedule:       getenv("DIGEST_SCHEDULE", "0 9 * * *"),
		SlowRequestThreshold: 200 * time.Millisecond,
	}
	if v := os.Getenv("SLOW_REQUEST_THRESHOLD"); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			cfg.SlowRequestThreshold = d
		} else {
			log.WithError(err).Warnf("ignoring invalid SLOW_REQUEST_THRESHOLD %q", v)
		}
	}
	return cfg
}

func getenv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

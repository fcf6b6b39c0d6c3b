package config

import "time"

// Config is the full service configuration. Credentials and the contact
// directory location live here and are injected at construction time;
// no component reads ambient process state.
type Config struct {
	App            AppConfig            `mapstructure:"app"`
	HTTP           HTTPConfig           `mapstructure:"http"`
	Redis          RedisConfig          `mapstructure:"redis"`
	Logging        LoggingConfig        `mapstructure:"logging"`
	Dialogue       DialogueConfig       `mapstructure:"dialogue"`
	Contacts       ContactsConfig       `mapstructure:"contacts"`
	Notification   NotificationConfig   `mapstructure:"notification"`
	Telephony      TelephonyConfig      `mapstructure:"telephony"`
	Prometheus     PrometheusConfig     `mapstructure:"prometheus"`
	CircuitBreaker CircuitBreakerConfig `mapstructure:"circuit_breaker"`
}

type AppConfig struct {
	Name        string `mapstructure:"name"`
	Version     string `mapstructure:"version"`
	Environment string `mapstructure:"environment"`
}

type HTTPConfig struct {
	Port         int           `mapstructure:"port"`
	ReadTimeout  time.Duration `mapstructure:"read_timeout"`
	WriteTimeout time.Duration `mapstructure:"write_timeout"`
	IdleTimeout  time.Duration `mapstructure:"idle_timeout"`
}

type RedisConfig struct {
	// URL enables the shared dedup store; empty falls back to the
	// in-process cache.
	URL string `mapstructure:"url"`
}

type LoggingConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

type DialogueConfig struct {
	// TimeKeywords classify an utterance as an availability statement.
	// Empty uses the built-in defaults.
	TimeKeywords []string `mapstructure:"time_keywords"`
}

type ContactsConfig struct {
	// Path of the CSV contact list with phone and name columns.
	Path string `mapstructure:"path"`
}

type NotificationConfig struct {
	// OwnerEmail receives lead notifications.
	OwnerEmail string      `mapstructure:"owner_email"`
	Email      EmailConfig `mapstructure:"email"`
	// DedupWindow suppresses repeated lead reports for the same caller.
	DedupWindow time.Duration `mapstructure:"dedup_window"`
	// Timeout bounds the notification transport call.
	Timeout time.Duration `mapstructure:"timeout"`
}

type EmailConfig struct {
	Provider string `mapstructure:"provider"` // "sendgrid" or "smtp"
	APIKey   string `mapstructure:"api_key"`
	From     string `mapstructure:"from"`
	FromName string `mapstructure:"from_name"`

	SMTPHost     string `mapstructure:"smtp_host"`
	SMTPPort     int    `mapstructure:"smtp_port"`
	SMTPUsername string `mapstructure:"smtp_username"`
	SMTPPassword string `mapstructure:"smtp_password"`
	SMTPUseTLS   bool   `mapstructure:"smtp_use_tls"`
}

type TelephonyConfig struct {
	Provider   string `mapstructure:"provider"` // "exotel" or "twilio"
	AccountSID string `mapstructure:"account_sid"`
	AuthToken  string `mapstructure:"auth_token"`
	CallerID   string `mapstructure:"caller_id"`
	// WebhookURL is the public callback the provider posts each turn to.
	WebhookURL string `mapstructure:"webhook_url"`
	// CallGap is the fixed delay between outbound campaign calls so two
	// live calls never overlap on the same caller line.
	CallGap time.Duration `mapstructure:"call_gap"`
}

type PrometheusConfig struct {
	Enabled bool   `mapstructure:"enabled"`
	Path    string `mapstructure:"path"`
}

type CircuitBreakerConfig struct {
	Enabled bool `mapstructure:"enabled"`
}

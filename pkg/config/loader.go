package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Load reads config.yaml plus environment overrides and applies
// defaults for everything a local run can do without.
func Load() (*Config, error) {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath("./configs")
	viper.AddConfigPath(".")
	viper.AddConfigPath("/app/configs")

	viper.SetEnvPrefix("APP")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	// Common env vars without the APP_ prefix for Docker/PaaS deploys
	viper.BindEnv("http.port", "PORT", "HTTP_PORT", "APP_HTTP_PORT")
	viper.BindEnv("redis.url", "REDIS_URL", "APP_REDIS_URL")
	viper.BindEnv("logging.level", "LOG_LEVEL")
	viper.BindEnv("contacts.path", "CONTACTS_CSV", "APP_CONTACTS_PATH")
	viper.BindEnv("notification.owner_email", "OWNER_EMAIL")
	viper.BindEnv("notification.email.api_key", "SENDGRID_API_KEY")
	viper.BindEnv("telephony.account_sid", "EXOTEL_SID", "TWILIO_ACCOUNT_SID")
	viper.BindEnv("telephony.auth_token", "EXOTEL_TOKEN", "TWILIO_AUTH_TOKEN")
	viper.BindEnv("telephony.caller_id", "EXOTEL_CALLER_ID", "TWILIO_CALLER_ID")
	viper.BindEnv("telephony.webhook_url", "WEBHOOK_URL")

	setDefaults()

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
		// No config file: env vars and defaults only.
	}

	var cfg Config
	if err := viper.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	return &cfg, nil
}

func setDefaults() {
	viper.SetDefault("app.name", "solar-ivr")
	viper.SetDefault("app.version", "v1.0.0")
	viper.SetDefault("app.environment", "development")
	viper.SetDefault("http.port", 8000)
	viper.SetDefault("http.read_timeout", 10*time.Second)
	viper.SetDefault("http.write_timeout", 10*time.Second)
	viper.SetDefault("http.idle_timeout", time.Minute)
	viper.SetDefault("logging.level", "info")
	viper.SetDefault("contacts.path", "contacts.csv")
	viper.SetDefault("notification.email.provider", "smtp")
	viper.SetDefault("notification.email.from", "onboarding@sunrise-solar.dev")
	viper.SetDefault("notification.email.from_name", "Solar AI")
	viper.SetDefault("notification.email.smtp_host", "localhost")
	viper.SetDefault("notification.email.smtp_port", 1025)
	viper.SetDefault("notification.dedup_window", 5*time.Minute)
	viper.SetDefault("notification.timeout", 5*time.Second)
	viper.SetDefault("telephony.provider", "exotel")
	viper.SetDefault("telephony.call_gap", 90*time.Second)
	viper.SetDefault("prometheus.enabled", true)
	viper.SetDefault("prometheus.path", "/metrics")
	viper.SetDefault("circuit_breaker.enabled", true)
}

// Package config manages environment variables.
//
// It reads variables from the process environment (optionally seeded
// from a `.env` file), loads them into structured Go types, and
// validates that required values are present so they can be reused
// across the application runtime.
//
// Upstream provider credentials (Stripe, Resend, Clerk) are deliberately
// NOT validated at startup: handlers check for them lazily per request
// and answer with a configuration-error envelope when one is missing.
package config

import (
	"strings"

	"github.com/go-playground/validator/v10"
	// Side-effect import: loads a `.env` file into the process env, if
	// present, before any variable is read.
	_ "github.com/joho/godotenv/autoload"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/v2"
	"github.com/pkg/errors"
)

// Config is the root configuration object for the application.
//
// Env vars are read with the LEAGUELINK_ prefix and mapped to nested
// fields via "." delimiting, e.g. LEAGUELINK_SERVER.PORT -> server.port.
type Config struct {
	Primary  Primary        `koanf:"primary" validate:"required"`
	Server   ServerConfig   `koanf:"server" validate:"required"`
	Database DatabaseConfig `koanf:"database" validate:"required"`
	Auth     AuthConfig     `koanf:"auth"`
	Stripe   StripeConfig   `koanf:"stripe"`
	Email    EmailConfig    `koanf:"email"`
}

// Primary holds top-level information about the runtime environment,
// used to tag logs and switch behavior (pretty logging, SQL tracing).
type Primary struct {
	Env string `koanf:"env" validate:"required"`
}

// ServerConfig groups settings for the HTTP server runtime.
// Timeouts are seconds.
type ServerConfig struct {
	Port               string   `koanf:"port" validate:"required"`
	ReadTimeout        int      `koanf:"read_timeout" validate:"required"`
	WriteTimeout       int      `koanf:"write_timeout" validate:"required"`
	IdleTimeout        int      `koanf:"idle_timeout" validate:"required"`
	CORSAllowedOrigins []string `koanf:"cors_allowed_origins" validate:"required"`
}

// DatabaseConfig contains PostgreSQL connection parameters and pool tuning.
type DatabaseConfig struct {
	Host            string `koanf:"host" validate:"required"`
	Port            int    `koanf:"port" validate:"required"`
	User            string `koanf:"user" validate:"required"`
	Password        string `koanf:"password" validate:"required"`
	Name            string `koanf:"name" validate:"required"`
	SSLMode         string `koanf:"ssl_mode" validate:"required"`
	MaxOpenConns    int    `koanf:"max_open_conns" validate:"required"`
	MaxIdleConns    int    `koanf:"max_idle_conns" validate:"required"`
	ConnMaxLifetime int    `koanf:"conn_max_lifetime" validate:"required"`
	ConnMaxIdleTime int    `koanf:"conn_max_idle_time" validate:"required"`
}

// AuthConfig stores the Clerk secret key and the location the
// password-reset email links back to. Both are optional at startup;
// auth-dependent handlers check for the key per request.
type AuthConfig struct {
	SecretKey        string `koanf:"secret_key"`
	APIBaseURL       string `koanf:"api_base_url"`
	PasswordResetURL string `koanf:"password_reset_url"`
}

// StripeConfig stores the payments provider credential. APIBaseURL is
// overridable so tests can point the billing client at a stub server.
type StripeConfig struct {
	SecretKey  string `koanf:"secret_key"`
	APIBaseURL string `koanf:"api_base_url"`
}

// EmailConfig stores the email delivery provider credential and the
// sender identity used for every outbound message.
type EmailConfig struct {
	ResendAPIKey string `koanf:"resend_api_key"`
	FromName     string `koanf:"from_name"`
	FromAddress  string `koanf:"from_address"`
}

// Load reads configuration from the environment, unmarshals it into
// Config, validates the required blocks, and applies defaults for the
// optional ones.
func Load() (*Config, error) {
	k := koanf.New(".")

	err := k.Load(env.Provider("LEAGUELINK_", ".", func(s string) string {
		return strings.ToLower(strings.TrimPrefix(s, "LEAGUELINK_"))
	}), nil)
	if err != nil {
		return nil, errors.Wrap(err, "loading environment variables")
	}

	cfg := &Config{}
	if err := k.Unmarshal("", cfg); err != nil {
		return nil, errors.Wrap(err, "unmarshalling config")
	}

	validate := validator.New()
	if err := validate.Struct(cfg); err != nil {
		return nil, errors.Wrap(err, "validating config")
	}

	applyDefaults(cfg)

	return cfg, nil
}

func applyDefaults(cfg *Config) {
	if cfg.Email.FromName == "" {
		cfg.Email.FromName = "LeagueLink"
	}
	if cfg.Email.FromAddress == "" {
		cfg.Email.FromAddress = "notifications@leaguelink.app"
	}
	if cfg.Auth.PasswordResetURL == "" {
		cfg.Auth.PasswordResetURL = "https://leaguelink.app/reset-password"
	}
	// Upstream API base URLs default inside their clients; they are only
	// carried here so deployments and tests can override them.
}

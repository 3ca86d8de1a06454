// Package config provides application configuration from the environment.
package config

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
)

// Config holds all application configuration.
type Config struct {
	Port           string `env:"PORT" envDefault:"3000"`
	AccessCode     string `env:"ACCESS_CODE" envDefault:"FETHINK-EMAIL-02"`
	CookieSecret   string `env:"COOKIE_SECRET"`
	SessionMinutes int    `env:"SESSION_MINUTES" envDefault:"120"`
	CourseBackURL  string `env:"COURSE_BACK_URL"`
	NextLessonURL  string `env:"NEXT_LESSON_URL"`
	FrontendURL    string `env:"FRONTEND_URL"`
	PublicDir      string `env:"PUBLIC_DIR" envDefault:"./public"`

	generatedSecret bool
}

// Load reads configuration from environment variables. When no cookie secret
// is configured a fresh random one is generated, which invalidates every
// session issued before the restart.
func Load() (*Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return nil, fmt.Errorf("failed to parse environment: %w", err)
	}

	if cfg.CookieSecret == "" {
		secret, err := randomSecret()
		if err != nil {
			return nil, fmt.Errorf("failed to generate cookie secret: %w", err)
		}
		cfg.CookieSecret = secret
		cfg.generatedSecret = true
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return &cfg, nil
}

// Validate checks that all required configuration fields are usable.
func (c *Config) Validate() error {
	if c.Port == "" {
		return fmt.Errorf("PORT cannot be empty")
	}
	if c.AccessCode == "" {
		return fmt.Errorf("ACCESS_CODE cannot be empty")
	}
	if c.SessionMinutes <= 0 {
		return fmt.Errorf("SESSION_MINUTES must be > 0")
	}
	return nil
}

// SessionLifetime returns the configured session duration.
func (c *Config) SessionLifetime() time.Duration {
	return time.Duration(c.SessionMinutes) * time.Minute
}

// SecretBytes returns the cookie-signing secret as raw bytes.
func (c *Config) SecretBytes() []byte {
	return []byte(c.CookieSecret)
}

// SecretGenerated reports whether the cookie secret was generated at startup
// rather than configured.
func (c *Config) SecretGenerated() bool {
	return c.generatedSecret
}

func randomSecret() (string, error) {
	buf := make([]byte, 32)
	if _, err := rand.Read(buf); err != nil {
		return "", err
	}
	return hex.EncodeToString(buf), nil
}

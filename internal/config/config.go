// Package config loads server configuration from the environment.
package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v8"
	"github.com/joho/godotenv"
)

// Config holds every runtime setting. It is constructed once in main and
// passed explicitly to the components that need it; nothing reads the
// environment after Load returns.
type Config struct {
	Port   int    `env:"PORT" envDefault:"8080"`
	DBPath string `env:"DB_PATH" envDefault:"./data/spendwise.db"`

	JWTSecret   string        `env:"JWT_SECRET,required"`
	JWTIssuer   string        `env:"JWT_ISSUER" envDefault:"spendwise"`
	JWTAudience string        `env:"JWT_AUDIENCE" envDefault:"spendwise-web"`
	TokenTTL    time.Duration `env:"TOKEN_TTL" envDefault:"24h"`

	LogLevel       string   `env:"LOG_LEVEL" envDefault:"info"`
	AllowedOrigins []string `env:"ALLOWED_ORIGINS" envSeparator:"," envDefault:"*"`
}

// Load reads .env (if present) and parses the environment into a Config.
func Load() (*Config, error) {
	// Missing .env is fine; real environments set variables directly.
	_ = godotenv.Load()

	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	if cfg.Port < 1 || cfg.Port > 65535 {
		return nil, fmt.Errorf("invalid port %d: must be between 1 and 65535", cfg.Port)
	}
	if len(cfg.JWTSecret) < 16 {
		return nil, fmt.Errorf("JWT_SECRET must be at least 16 characters")
	}

	return cfg, nil
}

package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
)

// Config holds all application configuration values
type Config struct {
	Port    string `env:"PORT" envDefault:"8080"`
	GinMode string `env:"GIN_MODE" envDefault:"debug"`

	// How long an unfinished onboarding flow is kept in memory
	SessionTTL time.Duration `env:"ONBOARDING_SESSION_TTL" envDefault:"30m"`

	FPLLookupEnabled bool          `env:"FPL_LOOKUP_ENABLED" envDefault:"false"`
	FPLBaseURL       string        `env:"FPL_BASE_URL" envDefault:"https://fantasy.premierleague.com/api"`
	FPLTimeout       time.Duration `env:"FPL_TIMEOUT" envDefault:"10s"`

	AllowedOrigins []string `env:"CORS_ALLOWED_ORIGINS" envSeparator:","`
}

// LoadConfig reads configuration from environment variables
func LoadConfig() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("error parsing environment: %w", err)
	}
	if cfg.SessionTTL <= 0 {
		return nil, fmt.Errorf("ONBOARDING_SESSION_TTL must be positive, got %s", cfg.SessionTTL)
	}
	return cfg, nil
}

// Package config reads runtime settings for the automates binary from the environment.
package config

import (
	"errors"
	"fmt"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// ErrParsingConfig is returned when the environment holds malformed values.
var ErrParsingConfig = errors.New("failed to parse configuration")

// Config holds the environment-driven settings.
// Command-line flags take precedence over every field.
type Config struct {
	Port         int    `env:"AUTOMATES_PORT" envDefault:"8080"`
	LogLevel     string `env:"AUTOMATES_LOG_LEVEL"` // empty keeps warnings and errors only
	MaxInputSize int    `env:"AUTOMATES_MAX_INPUT_SIZE" envDefault:"4096"`
	Metrics      bool   `env:"AUTOMATES_METRICS" envDefault:"true"`
}

// Load parses the environment into a Config.
// A .env file in the working directory is honoured when present.
func Load() (Config, error) {
	// Ignore errors - the .env file might not exist and that's ok
	_ = godotenv.Load()

	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, errors.Join(ErrParsingConfig, err)
	}
	if cfg.Port <= 0 || cfg.Port > 65535 {
		return Config{}, fmt.Errorf("%w: port %d out of range", ErrParsingConfig, cfg.Port)
	}
	if cfg.MaxInputSize <= 0 {
		return Config{}, fmt.Errorf("%w: max input size must be positive", ErrParsingConfig)
	}
	return cfg, nil
}

package app

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// Backend names accepted by Config.Backend.
const (
	BackendFile = "file"
	BackendBolt = "bolt"
)

// Config holds runtime wiring options for building the app. Flags override
// the environment.
type Config struct {
	Home    string `env:"GRADEBOOK_HOME"`                      // data directory, e.g. $HOME/.gradebook
	Backend string `env:"GRADEBOOK_BACKEND" envDefault:"file"` // "file" or "bolt"
}

// FromEnv loads configuration from environment variables.
func FromEnv() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	return cfg, nil
}

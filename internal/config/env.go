package config

import (
	"fmt"
	"os"

	"github.com/caarlos0/env/v11"
)

// Backend names accepted by Settings.Backend.
const (
	BackendWindow   = "window"
	BackendTerminal = "terminal"
)

// Settings holds runtime options read from the environment.
type Settings struct {
	Backend string  `env:"METABOLISM_BACKEND" envDefault:"window"`
	Seed    int64   `env:"METABOLISM_SEED" envDefault:"0"`
	Mute    bool    `env:"METABOLISM_MUTE" envDefault:"false"`
	Scale   float64 `env:"METABOLISM_SCALE" envDefault:"1"`
	LogFile string  `env:"METABOLISM_LOG_FILE"`
}

// Load parses Settings from the environment and validates them.
func Load() (Settings, error) {
	var s Settings
	if err := env.Parse(&s); err != nil {
		return Settings{}, fmt.Errorf("parse env: %w", err)
	}
	if err := s.Validate(); err != nil {
		return Settings{}, err
	}
	return s, nil
}

// Validate reports unusable combinations.
func (s Settings) Validate() error {
	switch s.Backend {
	case BackendWindow, BackendTerminal:
	default:
		return fmt.Errorf("unknown backend %q", s.Backend)
	}
	if s.Scale <= 0 {
		return fmt.Errorf("scale must be positive, got %v", s.Scale)
	}
	return nil
}

// Exitf writes a formatted error message to stderr and exits with code 1.
func Exitf(format string, args ...any) {
	fmt.Fprintf(os.Stderr, format+"\n", args...)
	os.Exit(1)
}

package config

import (
	"fmt"
	"strings"

	"github.com/caarlos0/env/v11"
)

// Config holds the runtime settings of the desktop application.
type Config struct {
	AssetRoot    string  `env:"MATH_HELPER_ASSET_ROOT" envDefault:"images"`
	LogLevel     string  `env:"LOG_LEVEL"`
	Debug        bool    `env:"DEBUG"`
	WindowWidth  float32 `env:"MATH_HELPER_WINDOW_WIDTH" envDefault:"1000"`
	WindowHeight float32 `env:"MATH_HELPER_WINDOW_HEIGHT" envDefault:"700"`
}

// Load parses Config from the process environment.
func Load() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate reports settings the application cannot start with.
func (c Config) Validate() error {
	if strings.TrimSpace(c.AssetRoot) == "" {
		return fmt.Errorf("config: asset root is empty")
	}
	if c.WindowWidth <= 0 || c.WindowHeight <= 0 {
		return fmt.Errorf("config: window size %.0fx%.0f is not positive", c.WindowWidth, c.WindowHeight)
	}
	return nil
}

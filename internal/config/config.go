package config

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// Config holds presentation settings. None of them change how the list behaves.
type Config struct {
	Theme    string `env:"TODO_THEME" envDefault:"classic"`
	Color    string `env:"TODO_COLOR" envDefault:"auto"`
	UI       string `env:"TODO_UI" envDefault:"menu"`
	LogLevel string `env:"TODO_LOG_LEVEL" envDefault:"warn"`
}

// Front-ends accepted for UI.
const (
	UIMenu = "menu"
	UITUI  = "tui"
)

// Load reads dotenv (when it exists) into the process environment without
// overriding variables already set, then parses the environment.
func Load(dotenv string) (Config, error) {
	if dotenv != "" {
		if err := godotenv.Load(dotenv); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return Config{}, fmt.Errorf("load %s: %w", dotenv, err)
		}
	}
	var cfg Config
	if err := ParseEnv(&cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// ParseEnv loads configuration from environment variables.
func ParseEnv(target any) error {
	if err := env.Parse(target); err != nil {
		return fmt.Errorf("parse env: %w", err)
	}
	return nil
}

// Validate checks the fields the ui and logging packages do not check themselves.
func (c Config) Validate() error {
	switch strings.ToLower(c.UI) {
	case UIMenu, UITUI:
		return nil
	}
	return fmt.Errorf("unknown ui %q (want %s or %s)", c.UI, UIMenu, UITUI)
}

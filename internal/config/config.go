// Package config loads runtime settings from the environment and an
// optional .env file.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// MaxQuestions caps the quiz length.
const MaxQuestions = 50

// Config holds the settings shared by every command. Empty paths are
// resolved to the data directory by the caller.
type Config struct {
	DBPath    string `env:"MATHQUEST_DB"`
	Language  string `env:"MATHQUEST_LANG"`
	Questions int    `env:"MATHQUEST_QUESTIONS" envDefault:"10"`
	LogLevel  string `env:"MATHQUEST_LOG_LEVEL" envDefault:"info"`
	LogFile   string `env:"MATHQUEST_LOG_FILE"`
}

// Load reads the given dotenv files (".env" when none are named), then parses
// the environment. Missing dotenv files are skipped and variables already
// set in the environment win over file values.
func Load(dotenv ...string) (Config, error) {
	if len(dotenv) == 0 {
		dotenv = []string{".env"}
	}
	for _, path := range dotenv {
		if _, err := os.Stat(path); errors.Is(err, fs.ErrNotExist) {
			continue
		}
		if err := godotenv.Load(path); err != nil {
			return Config{}, fmt.Errorf("load %s: %w", path, err)
		}
	}

	var cfg Config
	if err := ParseEnv(&cfg); err != nil {
		return Config{}, err
	}
	if err := cfg.Validate(); err != nil {
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

// Validate checks value ranges the struct tags can't express.
func (c Config) Validate() error {
	if c.Questions < 1 || c.Questions > MaxQuestions {
		return fmt.Errorf("MATHQUEST_QUESTIONS must be between 1 and %d, got %d", MaxQuestions, c.Questions)
	}
	if _, err := c.Level(); err != nil {
		return err
	}
	return nil
}

// Level parses LogLevel ("debug", "info", "warn", "error").
func (c Config) Level() (slog.Level, error) {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(c.LogLevel)); err != nil {
		return slog.LevelInfo, fmt.Errorf("MATHQUEST_LOG_LEVEL: %w", err)
	}
	return lvl, nil
}

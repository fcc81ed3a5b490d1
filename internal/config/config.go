// Package config loads runtime settings from the environment and an
// optional .env file in the working directory.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// Config holds process-level settings. Learner preferences live in the
// profile, not here.
type Config struct {
	DBPath  string        `env:"TERMCOMMANDER_DB"`
	LogDir  string        `env:"TERMCOMMANDER_LOG_DIR"`
	OS      string        `env:"TERMCOMMANDER_OS"`
	Debug   bool          `env:"TERMCOMMANDER_DEBUG" envDefault:"false"`
	NoDelay bool          `env:"TERMCOMMANDER_NO_DELAY" envDefault:"false"`
	Delay   time.Duration `env:"TERMCOMMANDER_DELAY" envDefault:"1s"`
}

// Load reads .env (if present) and then the process environment.
// Variables already set in the environment win over .env entries.
func Load() (Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return Config{}, fmt.Errorf("load .env: %w", err)
	}
	return Parse()
}

// Parse reads the process environment only.
func Parse() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	if cfg.LogDir == "" {
		dir, err := DefaultLogDir()
		if err != nil {
			return Config{}, err
		}
		cfg.LogDir = dir
	}
	return cfg, nil
}

// Validate checks enum and range fields.
func (c Config) Validate() error {
	switch c.OS {
	case "", "linux", "windows", "mac":
	default:
		return fmt.Errorf("invalid TERMCOMMANDER_OS %q (want linux, windows or mac)", c.OS)
	}
	if c.Delay < 0 {
		return fmt.Errorf("invalid TERMCOMMANDER_DELAY %s: must not be negative", c.Delay)
	}
	return nil
}

// PaceDelay is the "checking your answer" pause applied by the challenge
// engine. Zero disables it.
func (c Config) PaceDelay() time.Duration {
	if c.NoDelay {
		return 0
	}
	return c.Delay
}

// DefaultLogDir resolves the log directory:
// 1. $XDG_STATE_HOME/termcommander
// 2. ~/.local/state/termcommander
func DefaultLogDir() (string, error) {
	stateHome := os.Getenv("XDG_STATE_HOME")
	if stateHome == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home dir: %w", err)
		}
		stateHome = filepath.Join(home, ".local", "state")
	}
	return filepath.Join(stateHome, "termcommander"), nil
}

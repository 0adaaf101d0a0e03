// Package config loads host and engine options from a TOML file.
package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/BurntSushi/toml"
)

// Config holds the tunable options for the interactive host and the engine.
type Config struct {
	// HashMB is the transposition table size in megabytes.
	HashMB int `toml:"hash_mb"`
	// MaxDepth caps iterative deepening.
	MaxDepth int `toml:"max_depth"`
	// MoveTimeMs is the per-move thinking budget in milliseconds.
	MoveTimeMs int `toml:"move_time_ms"`
	// LogFile receives per-move search summaries; empty disables logging.
	LogFile string `toml:"log_file"`
	// Colors toggles coloured board rendering in the terminal.
	Colors bool `toml:"colors"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		HashMB:     64,
		MaxDepth:   14,
		MoveTimeMs: 2000,
		LogFile:    "",
		Colors:     true,
	}
}

// Load reads the file at path over the defaults. A missing file is not an
// error: the defaults are returned as-is.
func Load(path string) (Config, error) {
	cfg := Default()

	if _, err := os.Stat(path); errors.Is(err, os.ErrNotExist) {
		return cfg, nil
	}

	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return Default(), fmt.Errorf("config: %w", err)
	}

	if err := cfg.validate(); err != nil {
		return Default(), err
	}
	return cfg, nil
}

func (c Config) validate() error {
	if c.HashMB <= 0 {
		return fmt.Errorf("config: hash_mb must be positive, got %d", c.HashMB)
	}
	if c.MaxDepth < 1 || c.MaxDepth > 64 {
		return fmt.Errorf("config: max_depth must be in 1..64, got %d", c.MaxDepth)
	}
	if c.MoveTimeMs < 1 {
		return fmt.Errorf("config: move_time_ms must be positive, got %d", c.MoveTimeMs)
	}
	return nil
}

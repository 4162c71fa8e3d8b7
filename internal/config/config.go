// Package config reads runtime configuration from environment variables.
package config

import (
	"fmt"
	"os"
	"path/filepath"
)

// Config holds all configuration for the attune binary.
type Config struct {
	// DBPath is the SQLite database file path.
	DBPath string
	// Addr is the listen address for the HTTP server.
	Addr string
	// ModelTag is recorded on every routing decision row.
	ModelTag string
	// LogJSON enables structured JSON telemetry on stderr.
	LogJSON bool
}

// Default returns a Config with sensible defaults. The database lives under
// ~/.attune unless overridden.
func Default() (Config, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return Config{}, fmt.Errorf("finding home directory: %w", err)
	}
	return Config{
		DBPath: filepath.Join(home, ".attune", "attune.db"),
		Addr:   ":8787",
	}, nil
}

// Load reads configuration from environment variables, falling back to
// defaults for any unset values.
func Load() (Config, error) {
	cfg, err := Default()
	if err != nil {
		return Config{}, err
	}

	if v := os.Getenv("ATTUNE_DB"); v != "" {
		cfg.DBPath = v
	}
	if v := os.Getenv("ATTUNE_ADDR"); v != "" {
		cfg.Addr = v
	}
	if v := os.Getenv("ATTUNE_MODEL_TAG"); v != "" {
		cfg.ModelTag = v
	}
	if v := os.Getenv("ATTUNE_LOG"); v == "json" {
		cfg.LogJSON = true
	}

	return cfg, nil
}

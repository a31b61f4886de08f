// Package config loads CLI settings from the environment.
package config

import (
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/joeshaw/envdecode"
)

// Config holds settings the CLI reads before parsing flags. Flags override
// every value.
type Config struct {
	SchemaFile  string `env:"URLGEN_SCHEMA_FILE"`
	Schema      string `env:"URLGEN_SCHEMA"`
	LogLevel    string `env:"URLGEN_LOG_LEVEL,default=info"`
	Interactive bool   `env:"URLGEN_INTERACTIVE,default=false"`
}

// Load decodes Config from the environment. Unset variables keep their
// defaults.
func Load() (Config, error) {
	var cfg Config
	if err := envdecode.Decode(&cfg); err != nil && !errors.Is(err, envdecode.ErrNoTargetFieldsAreSet) {
		return Config{}, fmt.Errorf("config: decode environment: %w", err)
	}
	if cfg.LogLevel == "" {
		cfg.LogLevel = "info"
	}
	return cfg, nil
}

// Level maps LogLevel onto a slog level.
func (c Config) Level() (slog.Level, error) {
	switch strings.ToLower(strings.TrimSpace(c.LogLevel)) {
	case "debug":
		return slog.LevelDebug, nil
	case "", "info":
		return slog.LevelInfo, nil
	case "warn", "warning":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	default:
		return slog.LevelInfo, fmt.Errorf("config: unknown log level %q", c.LogLevel)
	}
}

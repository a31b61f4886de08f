package config_test

import (
	"log/slog"
	"os"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-urlgen/internal/config"
)

func TestLoad_FromEnvironment(t *testing.T) {
	t.Setenv("URLGEN_SCHEMA_FILE", "schemas.yaml")
	t.Setenv("URLGEN_SCHEMA", "Impression")
	t.Setenv("URLGEN_LOG_LEVEL", "debug")
	t.Setenv("URLGEN_INTERACTIVE", "true")

	cfg, err := config.Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	want := config.Config{SchemaFile: "schemas.yaml", Schema: "Impression", LogLevel: "debug", Interactive: true}
	if diff := cmp.Diff(want, cfg); diff != "" {
		t.Fatalf("config mismatch (-want +got):\n%s", diff)
	}
	level, err := cfg.Level()
	if err != nil || level != slog.LevelDebug {
		t.Fatalf("level = %v, %v", level, err)
	}
}

func TestLoad_Defaults(t *testing.T) {
	for _, key := range []string{"URLGEN_SCHEMA_FILE", "URLGEN_SCHEMA", "URLGEN_LOG_LEVEL", "URLGEN_INTERACTIVE"} {
		t.Setenv(key, "")
		os.Unsetenv(key)
	}

	cfg, err := config.Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.LogLevel != "info" || cfg.Interactive {
		t.Fatalf("unexpected defaults: %+v", cfg)
	}
}

func TestLevel_Unknown(t *testing.T) {
	if _, err := (config.Config{LogLevel: "loud"}).Level(); err == nil {
		t.Fatalf("expected error for unknown level")
	}
}

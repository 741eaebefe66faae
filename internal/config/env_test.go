package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

type envTestConfig struct {
	Port int `env:"ANYPANG_TEST_PORT" envDefault:"123"`
}

func TestParseEnvDefaults(t *testing.T) {
	var cfg envTestConfig

	if err := ParseEnv(&cfg); err != nil {
		t.Fatalf("parse env: %v", err)
	}
	if cfg.Port != 123 {
		t.Fatalf("expected default port 123, got %d", cfg.Port)
	}
}

func TestParseEnvError(t *testing.T) {
	var cfg envTestConfig
	t.Setenv("ANYPANG_TEST_PORT", "not-an-int")

	err := ParseEnv(&cfg)
	if err == nil {
		t.Fatal("expected error")
	}
	if !strings.Contains(err.Error(), "parse env:") {
		t.Fatalf("expected parse env prefix, got %v", err)
	}
}

func TestLoadEnvDefaults(t *testing.T) {
	t.Chdir(t.TempDir())

	cfg, err := LoadEnv()
	if err != nil {
		t.Fatalf("LoadEnv() error: %v", err)
	}
	if cfg.FPS != 60 {
		t.Errorf("FPS = %d, expected 60", cfg.FPS)
	}
	if cfg.SSHAddr != ":23234" {
		t.Errorf("SSHAddr = %q, expected :23234", cfg.SSHAddr)
	}
	if !cfg.OTelEnabled {
		t.Error("OTelEnabled should default to true")
	}
}

func TestLoadEnvOverrides(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv("ANYPANG_SEED", "42")
	t.Setenv("ANYPANG_FPS", "30")
	t.Setenv("ANYPANG_OTEL_ENABLED", "false")

	cfg, err := LoadEnv()
	if err != nil {
		t.Fatalf("LoadEnv() error: %v", err)
	}
	if cfg.Seed != 42 || cfg.FPS != 30 || cfg.OTelEnabled {
		t.Errorf("LoadEnv() = %+v", cfg)
	}
}

func TestLoadEnvDotenvFile(t *testing.T) {
	// Register the variable so t.Setenv restores it, then clear it so the
	// dotenv file is allowed to set it.
	t.Setenv("ANYPANG_SSH_ADDR", "")
	os.Unsetenv("ANYPANG_SSH_ADDR")
	t.Setenv("ANYPANG_DB", "/from/process.db")

	path := filepath.Join(t.TempDir(), "test.env")
	content := "ANYPANG_SSH_ADDR=:2222\nANYPANG_DB=/from/dotenv.db\n"
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("write: %v", err)
	}

	cfg, err := LoadEnv(path)
	if err != nil {
		t.Fatalf("LoadEnv() error: %v", err)
	}
	if cfg.SSHAddr != ":2222" {
		t.Errorf("SSHAddr = %q, expected :2222 from dotenv", cfg.SSHAddr)
	}
	if cfg.DBPath != "/from/process.db" {
		t.Errorf("DBPath = %q, process env should win", cfg.DBPath)
	}
}

func TestLoadEnvInvalidFPS(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv("ANYPANG_FPS", "0")

	if _, err := LoadEnv(); err == nil {
		t.Error("expected error for zero FPS")
	}
}

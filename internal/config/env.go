package config

import (
	"errors"
	"fmt"
	"io/fs"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// EnvConfig holds process-level settings taken from the environment.
// Values become the defaults of the matching CLI flags.
type EnvConfig struct {
	Seed       int64  `env:"ANYPANG_SEED" envDefault:"0"`
	FPS        int    `env:"ANYPANG_FPS" envDefault:"60"`
	DBPath     string `env:"ANYPANG_DB"`
	ConfigPath string `env:"ANYPANG_CONFIG"`
	SSHAddr    string `env:"ANYPANG_SSH_ADDR" envDefault:":23234"`

	OTelEndpoint string `env:"ANYPANG_OTEL_ENDPOINT"`
	OTelEnabled  bool   `env:"ANYPANG_OTEL_ENABLED" envDefault:"true"`
}

// ParseEnv loads configuration from environment variables.
func ParseEnv(target any) error {
	if err := env.Parse(target); err != nil {
		return fmt.Errorf("parse env: %w", err)
	}
	return nil
}

// LoadEnv loads optional dotenv files and parses EnvConfig.
// Variables already set in the process win over dotenv values.
func LoadEnv(files ...string) (EnvConfig, error) {
	if len(files) == 0 {
		files = []string{".env"}
	}
	for _, f := range files {
		if err := godotenv.Load(f); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return EnvConfig{}, fmt.Errorf("load %s: %w", f, err)
		}
	}

	var cfg EnvConfig
	if err := ParseEnv(&cfg); err != nil {
		return EnvConfig{}, err
	}
	if cfg.FPS <= 0 {
		return EnvConfig{}, fmt.Errorf("ANYPANG_FPS must be positive, got %d: %w", cfg.FPS, ErrInvalidConfig)
	}
	return cfg, nil
}

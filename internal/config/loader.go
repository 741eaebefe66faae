package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// AppDir is the per-user data directory name below $HOME.
const AppDir = ".anypang"

// LoadAnyPang loads AnyPang configuration.
// Search order: customPath -> ~/.anypang/configs/anypang.yaml -> ./configs/anypang.yaml -> embedded default
// Files are decoded over the defaults, so a partial file only overrides
// the keys it sets.
func LoadAnyPang(customPath string) (AnyPangConfig, error) {
	cfg := DefaultAnyPangConfig()

	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return cfg, fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		if err := cfg.Validate(); err != nil {
			return cfg, fmt.Errorf("config %s: %w", customPath, err)
		}
		return cfg, nil
	}

	candidates := []string{userConfigPath("anypang.yaml"), filepath.Join("configs", "anypang.yaml")}
	for _, path := range candidates {
		if path == "" {
			continue
		}
		if loaded, ok := tryLoad(path); ok {
			return loaded, nil
		}
	}

	// Use embedded default YAML
	var embedded AnyPangConfig
	if err := yaml.Unmarshal(defaultAnyPangYAML, &embedded); err != nil || embedded.Validate() != nil {
		return DefaultAnyPangConfig(), nil // Fallback to hardcoded if embed fails
	}
	return embedded, nil
}

// tryLoad reads an optional config file. Missing or invalid files are skipped.
func tryLoad(path string) (AnyPangConfig, bool) {
	data, err := os.ReadFile(path)
	if err != nil {
		return AnyPangConfig{}, false
	}
	cfg := DefaultAnyPangConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return AnyPangConfig{}, false
	}
	if cfg.Validate() != nil {
		return AnyPangConfig{}, false
	}
	return cfg, true
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, AppDir, "configs", filename)
}

// DataPath returns a path inside ~/.anypang, or a relative .anypang path
// when the home directory is unknown.
func DataPath(elem ...string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		home = "."
	}
	return filepath.Join(append([]string{home, AppDir}, elem...)...)
}

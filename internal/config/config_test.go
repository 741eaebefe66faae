package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"gopkg.in/yaml.v3"
)

// isolate points HOME and the working directory at empty temp dirs so the
// search order only sees what the test writes.
func isolate(t *testing.T) (home, wd string) {
	t.Helper()
	home = t.TempDir()
	wd = t.TempDir()
	t.Setenv("HOME", home)
	t.Chdir(wd)
	return home, wd
}

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("write: %v", err)
	}
}

func TestEmbeddedDefaultMatchesHardcoded(t *testing.T) {
	var cfg AnyPangConfig
	if err := yaml.Unmarshal(GetDefaultYAML("anypang"), &cfg); err != nil {
		t.Fatalf("embedded yaml: %v", err)
	}
	if cfg != DefaultAnyPangConfig() {
		t.Errorf("embedded = %+v, expected %+v", cfg, DefaultAnyPangConfig())
	}
	if GetDefaultYAML("unknown") != nil {
		t.Error("GetDefaultYAML(unknown) should be nil")
	}
}

func TestLoadAnyPangEmbedded(t *testing.T) {
	isolate(t)

	cfg, err := LoadAnyPang("")
	if err != nil {
		t.Fatalf("LoadAnyPang() error: %v", err)
	}
	if cfg != DefaultAnyPangConfig() {
		t.Errorf("LoadAnyPang() = %+v, expected defaults", cfg)
	}
}

func TestLoadAnyPangSearchOrder(t *testing.T) {
	home, wd := isolate(t)

	writeFile(t, filepath.Join(wd, "configs", "anypang.yaml"), "animation:\n  fall_ticks: 20\n")
	cfg, err := LoadAnyPang("")
	if err != nil {
		t.Fatalf("LoadAnyPang() error: %v", err)
	}
	if cfg.Animation.FallTicks != 20 {
		t.Errorf("local config: fall_ticks = %d, expected 20", cfg.Animation.FallTicks)
	}
	if cfg.Animation.FallRows != 10 {
		t.Errorf("partial file lost defaults: fall_rows = %g", cfg.Animation.FallRows)
	}

	writeFile(t, filepath.Join(home, AppDir, "configs", "anypang.yaml"), "animation:\n  fall_ticks: 40\n")
	cfg, err = LoadAnyPang("")
	if err != nil {
		t.Fatalf("LoadAnyPang() error: %v", err)
	}
	if cfg.Animation.FallTicks != 40 {
		t.Errorf("user config: fall_ticks = %d, expected 40", cfg.Animation.FallTicks)
	}

	custom := filepath.Join(t.TempDir(), "custom.yaml")
	writeFile(t, custom, "scoring:\n  combo_bonus: 50\n")
	cfg, err = LoadAnyPang(custom)
	if err != nil {
		t.Fatalf("LoadAnyPang(custom) error: %v", err)
	}
	if cfg.Scoring.ComboBonus != 50 || cfg.Animation.FallTicks != 30 {
		t.Errorf("custom config = %+v", cfg)
	}
}

func TestLoadAnyPangSkipsInvalidUserConfig(t *testing.T) {
	home, _ := isolate(t)
	writeFile(t, filepath.Join(home, AppDir, "configs", "anypang.yaml"), "animation:\n  fall_ticks: -1\n")

	cfg, err := LoadAnyPang("")
	if err != nil {
		t.Fatalf("LoadAnyPang() error: %v", err)
	}
	if cfg.Animation.FallTicks != 30 {
		t.Errorf("fall_ticks = %d, expected embedded default", cfg.Animation.FallTicks)
	}
}

func TestLoadAnyPangCustomErrors(t *testing.T) {
	isolate(t)
	dir := t.TempDir()

	if _, err := LoadAnyPang(filepath.Join(dir, "missing.yaml")); err == nil {
		t.Error("missing custom file: expected error")
	}

	bad := filepath.Join(dir, "bad.yaml")
	writeFile(t, bad, "animation: [\n")
	if _, err := LoadAnyPang(bad); err == nil {
		t.Error("malformed custom file: expected error")
	}

	invalid := filepath.Join(dir, "invalid.yaml")
	writeFile(t, invalid, "hint:\n  enabled: true\n  idle_ticks: 0\n")
	if _, err := LoadAnyPang(invalid); !errors.Is(err, ErrInvalidConfig) {
		t.Errorf("invalid custom file: error = %v, expected ErrInvalidConfig", err)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*AnyPangConfig)
		wantErr bool
	}{
		{"defaults", func(*AnyPangConfig) {}, false},
		{"zero fall ticks", func(c *AnyPangConfig) { c.Animation.FallTicks = 0 }, true},
		{"zero fall rows", func(c *AnyPangConfig) { c.Animation.FallRows = 0 }, true},
		{"negative flash", func(c *AnyPangConfig) { c.Animation.FlashTicks = -1 }, true},
		{"negative combo", func(c *AnyPangConfig) { c.Scoring.ComboBonus = -5 }, true},
		{"hint disabled ignores idle", func(c *AnyPangConfig) { c.Hint.Enabled = false; c.Hint.IdleTicks = 0 }, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultAnyPangConfig()
			tt.mutate(&cfg)
			err := cfg.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestDataPath(t *testing.T) {
	home, _ := isolate(t)
	want := filepath.Join(home, AppDir, "scores.db")
	if got := DataPath("scores.db"); got != want {
		t.Errorf("DataPath() = %q, expected %q", got, want)
	}
}

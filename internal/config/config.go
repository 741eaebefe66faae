// Package config provides YAML-based game configuration loading and
// environment overrides for AnyPang.
package config

import (
	"errors"
	"fmt"
)

// ErrInvalidConfig is returned by Validate for out-of-range values.
var ErrInvalidConfig = errors.New("config: invalid value")

// AnyPangConfig contains all tunables for the AnyPang game.
type AnyPangConfig struct {
	Animation AnimationConfig `yaml:"animation"`
	Scoring   ScoringConfig   `yaml:"scoring"`
	Hint      HintConfig      `yaml:"hint"`
	Rules     RulesConfig     `yaml:"rules"`
}

// AnimationConfig controls the fall and flash timings, in simulation ticks.
type AnimationConfig struct {
	FallTicks  int     `yaml:"fall_ticks"`
	FallRows   float64 `yaml:"fall_rows"` // rows covered at t = FallTicks
	FlashTicks int     `yaml:"flash_ticks"`
	SwapTicks  int     `yaml:"swap_ticks"`
}

// ScoringConfig controls how removed groups are scored.
type ScoringConfig struct {
	Square     bool `yaml:"square"`      // len^2 per group, otherwise len
	ComboBonus int  `yaml:"combo_bonus"` // percent per chain step
}

// HintConfig controls the idle hint.
type HintConfig struct {
	Enabled   bool `yaml:"enabled"`
	IdleTicks int  `yaml:"idle_ticks"`
}

// RulesConfig holds mode rules.
type RulesConfig struct {
	EndlessReshuffle bool `yaml:"endless_reshuffle"`
}

// Validate checks that every value is usable.
func (c AnyPangConfig) Validate() error {
	switch {
	case c.Animation.FallTicks <= 0:
		return fmt.Errorf("animation.fall_ticks must be positive, got %d: %w", c.Animation.FallTicks, ErrInvalidConfig)
	case c.Animation.FallRows <= 0:
		return fmt.Errorf("animation.fall_rows must be positive, got %g: %w", c.Animation.FallRows, ErrInvalidConfig)
	case c.Animation.FlashTicks < 0:
		return fmt.Errorf("animation.flash_ticks must not be negative: %w", ErrInvalidConfig)
	case c.Animation.SwapTicks < 0:
		return fmt.Errorf("animation.swap_ticks must not be negative: %w", ErrInvalidConfig)
	case c.Scoring.ComboBonus < 0:
		return fmt.Errorf("scoring.combo_bonus must not be negative: %w", ErrInvalidConfig)
	case c.Hint.Enabled && c.Hint.IdleTicks <= 0:
		return fmt.Errorf("hint.idle_ticks must be positive when hints are enabled: %w", ErrInvalidConfig)
	}
	return nil
}

package config

import (
	_ "embed"
)

//go:embed defaults/anypang.yaml
var defaultAnyPangYAML []byte

// DefaultAnyPangConfig returns the hardcoded AnyPang configuration.
// Fall timing follows half a second at 60 ticks per second.
func DefaultAnyPangConfig() AnyPangConfig {
	return AnyPangConfig{
		Animation: AnimationConfig{
			FallTicks:  30,
			FallRows:   10,
			FlashTicks: 12,
			SwapTicks:  8,
		},
		Scoring: ScoringConfig{
			Square:     true,
			ComboBonus: 0,
		},
		Hint: HintConfig{
			Enabled:   true,
			IdleTicks: 600,
		},
		Rules: RulesConfig{
			EndlessReshuffle: true,
		},
	}
}

// GetDefaultYAML returns the embedded default YAML for a game.
func GetDefaultYAML(gameID string) []byte {
	switch gameID {
	case "anypang", "anypang_endless":
		return defaultAnyPangYAML
	default:
		return nil
	}
}

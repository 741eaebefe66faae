package anypang

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/vovakirdan/anypang/internal/config"
	pang "github.com/vovakirdan/anypang/internal/games/anypang/core"
)

var printer = message.NewPrinter(language.English)

// GroupScore returns the points for one removed group.
func GroupScore(g pang.Group, square bool) int {
	n := g.Len()
	if square {
		return n * n
	}
	return n
}

// TickScore returns the points for one productive tick. combo is the
// 1-based position of the tick in its chain; every step past the first adds
// ComboBonus percent.
func TickScore(groups []pang.Group, combo int, cfg config.ScoringConfig) int {
	base := 0
	for _, g := range groups {
		base += GroupScore(g, cfg.Square)
	}
	if combo > 1 && cfg.ComboBonus > 0 {
		base += base * cfg.ComboBonus * (combo - 1) / 100
	}
	return base
}

// FormatScore formats n with thousands separators.
func FormatScore(n int) string {
	return printer.Sprintf("%d", n)
}

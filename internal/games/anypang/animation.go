package anypang

import (
	"math"

	"github.com/vovakirdan/anypang/internal/core"
	pang "github.com/vovakirdan/anypang/internal/games/anypang/core"
)

// fallDistance returns how many rows every token has dropped after t ticks
// of a fall animation lasting fallTicks ticks. The fall accelerates:
// rows * (t/T)^2.
func fallDistance(t, fallTicks int, rows float64) float64 {
	if fallTicks <= 0 {
		return math.Inf(1)
	}
	x := float64(t) / float64(fallTicks)
	return x * x * rows
}

// displayRow returns the row a cell is drawn at. Tokens never pass their
// resting row; fresh tokens start above the board.
func displayRow(c pang.Cell, distance float64) float64 {
	if !c.Fell() {
		return float64(c.Y)
	}
	return core.ClampF(float64(c.PreviousRow)-distance, float64(c.Y), float64(max(c.PreviousRow, c.Y)))
}

// animating reports whether a fall animation is in progress.
func (g *Game) animating() bool {
	return g.phase == phaseFall
}

// currentFall returns the fall distance for this frame.
func (g *Game) currentFall() float64 {
	if !g.animating() {
		return math.Inf(1)
	}
	return fallDistance(g.phaseTicks, g.cfg.Animation.FallTicks, g.cfg.Animation.FallRows)
}

// flashingAt reports whether c was removed by the last tick and still
// flashes, and returns the removed type.
func (g *Game) flashingAt(c pang.Coord) (pang.Type, bool) {
	if !g.animating() || g.phaseTicks >= g.cfg.Animation.FlashTicks {
		return 0, false
	}
	for _, grp := range g.flashing {
		if grp.Contains(c) {
			return grp.Type(), true
		}
	}
	return 0, false
}

package anypang

import (
	pang "github.com/vovakirdan/anypang/internal/games/anypang/core"
)

// GameStateType represents the current game state.
type GameStateType string

const (
	StatePlaying     GameStateType = "playing"
	StateAnimating   GameStateType = "animating"
	StateGameOver    GameStateType = "game_over"
	StateFailed      GameStateType = "failed"
	StatePaused      GameStateType = "paused"
	StatePausedSmall GameStateType = "paused_small_window"
)

// Snapshot captures the complete game state for determinism testing and replay.
type Snapshot struct {
	Tick       uint64
	Mode       string // "classic" or "endless"
	Seed       int64
	Score      int
	Moves      int
	Combo      int
	BestChain  int
	Reshuffles int
	Cursor     pang.Coord
	Board      [pang.Size]string // top row first
	Hash       uint64
	State      GameStateType
}

// Snapshot returns the current game snapshot for determinism verification.
func (g *Game) Snapshot() Snapshot {
	state := StatePlaying
	switch {
	case g.tooSmall:
		state = StatePausedSmall
	case g.err != nil:
		state = StateFailed
	case g.gameOver:
		state = StateGameOver
	case g.paused:
		state = StatePaused
	case g.phase != phaseIdle:
		state = StateAnimating
	}

	s := Snapshot{
		Tick:       g.tick,
		Mode:       string(g.mode),
		Seed:       g.seed,
		Score:      g.score,
		Combo:      g.combo,
		BestChain:  g.bestChain,
		Reshuffles: g.reshuffles,
		Cursor:     g.cursor,
		State:      state,
	}
	if g.state != nil {
		s.Moves = g.state.Swaps()
		s.Hash = g.state.Hash()
		copy(s.Board[:], g.state.Board().Rows())
	}
	return s
}

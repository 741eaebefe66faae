package anypang

import (
	"fmt"

	"github.com/vovakirdan/anypang/internal/config"
	pang "github.com/vovakirdan/anypang/internal/games/anypang/core"
)

// Turn is one headless step: an optional swap and the chain it caused.
type Turn struct {
	Move    pang.Move
	Swapped bool
	Chain   [][]pang.Group // groups per productive tick, in order
	Gain    int
}

// Autoplayer drives a state without rendering: it plays the first
// productive swap and resolves the cascade, scoring like the game does.
type Autoplayer struct {
	state     *pang.State
	scoring   config.ScoringConfig
	score     int
	bestChain int
}

// NewAutoplayer creates a driver over st.
func NewAutoplayer(st *pang.State, scoring config.ScoringConfig) *Autoplayer {
	return &Autoplayer{state: st, scoring: scoring}
}

// Score returns the points collected so far.
func (a *Autoplayer) Score() int {
	return a.score
}

// BestChain returns the longest chain so far.
func (a *Autoplayer) BestChain() int {
	return a.bestChain
}

// State returns the driven state.
func (a *Autoplayer) State() *pang.State {
	return a.state
}

// Settle resolves runs already on the board, as a fresh game does before
// the first swap.
func (a *Autoplayer) Settle() (Turn, error) {
	var t Turn
	err := a.cascade(&t)
	return t, err
}

// Next plays the first productive swap and resolves its chain.
// It reports false when the board has no productive swap.
func (a *Autoplayer) Next() (Turn, bool, error) {
	m, ok := pang.FirstMove(a.state.Board())
	if !ok {
		return Turn{}, false, nil
	}

	t := Turn{Move: m}
	res, err := a.state.TrySwap(m.A, m.B)
	if err != nil {
		return t, true, fmt.Errorf("anypang: swap %v-%v: %w", m.A, m.B, err)
	}
	if !res.Swapped {
		// FindMoves and TrySwap disagree only if the core is broken.
		return t, true, fmt.Errorf("anypang: swap %v-%v was not kept", m.A, m.B)
	}
	t.Swapped = true
	a.record(&t, res.Groups)

	err = a.cascade(&t)
	return t, true, err
}

func (a *Autoplayer) cascade(t *Turn) error {
	for {
		groups, err := a.state.Tick()
		if err != nil {
			return fmt.Errorf("anypang: tick: %w", err)
		}
		if groups == nil {
			return nil
		}
		a.record(t, groups)
	}
}

func (a *Autoplayer) record(t *Turn, groups []pang.Group) {
	t.Chain = append(t.Chain, groups)
	gain := TickScore(groups, len(t.Chain), a.scoring)
	t.Gain += gain
	a.score += gain
	a.bestChain = max(a.bestChain, len(t.Chain))
}

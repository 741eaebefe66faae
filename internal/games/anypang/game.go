// Package anypang implements the AnyPang match-3 game on top of the
// UI-agnostic board core in anypang/core.
package anypang

import (
	"context"
	"fmt"

	"github.com/vovakirdan/anypang/internal/config"
	"github.com/vovakirdan/anypang/internal/core"
	pang "github.com/vovakirdan/anypang/internal/games/anypang/core"
	"github.com/vovakirdan/anypang/internal/games/anypang/layouts"
	"github.com/vovakirdan/anypang/internal/registry"
)

// Mode represents the game mode.
type Mode string

const (
	ModeClassic Mode = "classic" // ends when no productive swap is left
	ModeEndless Mode = "endless" // redraws the board when stuck
)

// phase is the step of the swap and cascade pipeline the game is in.
type phase int

const (
	phaseResolve phase = iota // run one Tick on the next step
	phaseFall                 // animating the last removal
	phaseIdle                 // stable board, waiting for the player
)

// configPath stores the custom config path set via CLI
var configPath string

// startLayout is the fixed starting board set via CLI
var startLayout *layouts.Layout

// SetConfigPath sets the custom config path for loading.
func SetConfigPath(path string) {
	configPath = path
}

// SetLayout sets the starting board for new games. nil restores random boards.
func SetLayout(l *layouts.Layout) {
	startLayout = l
}

// Game implements AnyPang.
type Game struct {
	mode     Mode
	cfg      config.AnyPangConfig
	override *config.AnyPangConfig
	layout   *layouts.Layout

	// sourceFor builds the refill source for a seed.
	sourceFor func(seed int64) pang.Source

	// ctx parents the swap spans.
	ctx context.Context

	state *pang.State
	seed  int64
	tick  uint64

	score      int
	combo      int // productive ticks in the current chain
	bestChain  int
	lastGain   int
	reshuffles int

	phase      phase
	phaseTicks int
	flashing   []pang.Group

	cursor    pang.Coord
	selected  pang.Coord
	selecting bool
	hint      pang.Move
	hinting   bool
	idleTicks int

	rejected    pang.Move
	rejectTicks int

	screenW int
	screenH int

	gameOver bool
	paused   bool
	tooSmall bool
	err      error
}

// New creates a classic mode game.
func New() *Game {
	return &Game{mode: ModeClassic}
}

// NewEndless creates an endless mode game.
func NewEndless() *Game {
	return &Game{mode: ModeEndless}
}

func init() {
	registry.Register("anypang", func() registry.Game {
		return New()
	})
	registry.Register("anypang_endless", func() registry.Game {
		return NewEndless()
	})
}

// WithConfig makes the game use cfg instead of loading the config file.
func (g *Game) WithConfig(cfg config.AnyPangConfig) *Game {
	g.override = &cfg
	return g
}

// WithLayout makes the game start from a fixed board.
func (g *Game) WithLayout(l layouts.Layout) *Game {
	g.layout = &l
	return g
}

// BindContext sets the context swap spans are started from.
func (g *Game) BindContext(ctx context.Context) {
	g.ctx = ctx
}

// ID returns the game identifier.
func (g *Game) ID() string {
	if g.mode == ModeEndless {
		return "anypang_endless"
	}
	return "anypang"
}

// Title returns the display name.
func (g *Game) Title() string {
	if g.mode == ModeEndless {
		return "AnyPang (Endless)"
	}
	return "AnyPang"
}

// Description summarises the mode for menus.
func (g *Game) Description() string {
	if g.mode == ModeEndless {
		return "The board reshuffles when no swap is left"
	}
	return "Play until no productive swap is left"
}

// Seed returns the seed the current board refills from.
func (g *Game) Seed() int64 {
	return g.seed
}

// Reset initializes/restarts the game.
func (g *Game) Reset(cfg core.RuntimeConfig) {
	g.cfg = g.loadConfig()
	g.seed = cfg.Seed
	g.tick = 0
	g.score = 0
	g.combo = 0
	g.bestChain = 0
	g.lastGain = 0
	g.reshuffles = 0
	g.phase = phaseResolve
	g.phaseTicks = 0
	g.flashing = nil
	g.cursor = pang.C(pang.Size/2, pang.Size/2)
	g.selecting = false
	g.hinting = false
	g.idleTicks = 0
	g.rejectTicks = 0
	g.gameOver = false
	g.paused = false
	g.err = nil
	g.screenW = cfg.ScreenW
	g.screenH = cfg.ScreenH

	if err := g.newBoard(); err != nil {
		g.fail(err)
	}

	g.checkScreenSize()
}

// loadConfig returns the override when set, otherwise the config file.
// A broken config file falls back to the defaults.
func (g *Game) loadConfig() config.AnyPangConfig {
	if g.override != nil {
		return *g.override
	}
	cfg, err := config.LoadAnyPang(configPath)
	if err != nil {
		return config.DefaultAnyPangConfig()
	}
	return cfg
}

// newBoard builds the starting state from the layout or from the seed.
func (g *Game) newBoard() error {
	if g.sourceFor == nil {
		g.sourceFor = func(seed int64) pang.Source {
			return pang.NewRandSource(seed)
		}
	}

	l := g.layout
	if l == nil {
		l = startLayout
	}
	if l == nil {
		st, err := pang.NewState(g.sourceFor(g.seed))
		if err != nil {
			return fmt.Errorf("anypang: new board: %w", err)
		}
		g.state = st
		return nil
	}

	if l.HasSeed {
		g.seed = l.Seed
	}
	b, err := l.NewBoard()
	if err != nil {
		return fmt.Errorf("anypang: layout %s: %w", l.ID, err)
	}
	g.state = pang.NewStateWithBoard(b, g.sourceFor(g.seed))
	return nil
}

// Resize adapts the layout to a new screen size. The run continues.
func (g *Game) Resize(w, h int) {
	g.screenW = w
	g.screenH = h
	g.checkScreenSize()
}

// checkScreenSize checks if the screen is large enough.
func (g *Game) checkScreenSize() {
	g.tooSmall = g.screenW < minScreenW || g.screenH < minScreenH
}

// Step advances the game by one tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	g.tick++

	if g.tooSmall {
		return g.result()
	}

	if in.Has(core.ActionPause) && !g.gameOver {
		g.paused = !g.paused
	}
	if g.paused || g.gameOver {
		// Restart is handled by the platform
		return g.result()
	}

	g.handleInput(in)
	if !g.gameOver {
		g.advance(in.Empty())
	}
	return g.result()
}

func (g *Game) result() core.StepResult {
	return core.StepResult{State: g.State(), Err: g.err}
}

// handleInput replays the frame's actions in arrival order.
func (g *Game) handleInput(in core.InputFrame) {
	for _, a := range in.Order {
		if g.gameOver {
			return
		}
		if a != core.ActionHint && a != core.ActionPause {
			g.idleTicks = 0
			g.hinting = false
		}

		if dx, dy, ok := a.Direction(); ok {
			g.move(dx, dy)
			continue
		}

		switch a {
		case core.ActionConfirm:
			g.confirm()
		case core.ActionCancel:
			g.selecting = false
		case core.ActionHint:
			if g.phase == phaseIdle {
				g.showHint()
			}
		}
	}
}

// move shifts the cursor, or swaps the selection toward its neighbour.
func (g *Game) move(dx, dy int) {
	if g.selecting && g.phase == phaseIdle {
		target := g.selected.Add(dx, dy)
		if !target.InBounds() {
			return
		}
		g.attemptSwap(g.selected, target)
		g.cursor = target
		return
	}
	g.cursor = pang.C(
		core.Clamp(g.cursor.X+dx, 0, pang.Size-1),
		core.Clamp(g.cursor.Y+dy, 0, pang.Size-1),
	)
}

// confirm toggles the selection on the cursor cell.
// Nothing can be selected while the board is moving.
func (g *Game) confirm() {
	if g.phase != phaseIdle {
		return
	}
	if g.selecting && g.selected == g.cursor {
		g.selecting = false
		return
	}
	g.selected = g.cursor
	g.selecting = true
}

// attemptSwap runs a swap through the core and starts the chain when it
// is kept. The selection is always dropped.
func (g *Game) attemptSwap(a, b pang.Coord) {
	g.selecting = false

	res, err := g.trySwap(a, b)
	if err != nil {
		g.fail(err)
		return
	}
	if !res.Swapped {
		g.rejected = pang.Move{A: a, B: b}
		g.rejectTicks = g.cfg.Animation.SwapTicks
		return
	}
	g.applyGroups(res.Groups)
}

// advance runs the animation and cascade pipeline for one step.
func (g *Game) advance(idle bool) {
	if g.rejectTicks > 0 {
		g.rejectTicks--
	}

	if g.phase == phaseFall {
		g.phaseTicks++
		if g.phaseTicks < g.cfg.Animation.FallTicks {
			return
		}
		g.phase = phaseResolve
		g.flashing = nil
	}

	if g.phase == phaseResolve {
		g.resolve()
		return
	}

	if !idle {
		return
	}
	g.idleTicks++
	if g.cfg.Hint.Enabled && !g.hinting && g.idleTicks >= g.cfg.Hint.IdleTicks {
		g.showHint()
	}
}

// resolve runs one Tick and either continues the chain or ends it.
func (g *Game) resolve() {
	groups, err := g.state.Tick()
	if err != nil {
		g.fail(err)
		return
	}
	if groups != nil {
		g.applyGroups(groups)
		return
	}
	g.endChain()
}

// applyGroups scores one productive tick and starts its fall animation.
func (g *Game) applyGroups(groups []pang.Group) {
	g.combo++
	g.bestChain = max(g.bestChain, g.combo)
	g.lastGain = TickScore(groups, g.combo, g.cfg.Scoring)
	g.score += g.lastGain
	g.flashing = groups
	g.phase = phaseFall
	g.phaseTicks = 0
	g.hinting = false
}

// endChain is called when a Tick reports no group.
func (g *Game) endChain() {
	g.combo = 0
	g.flashing = nil
	g.phase = phaseIdle
	g.idleTicks = 0

	if pang.HasMoves(g.state.Board()) {
		return
	}
	if g.mode == ModeEndless && g.cfg.Rules.EndlessReshuffle {
		if err := g.state.Reshuffle(); err != nil {
			g.fail(err)
			return
		}
		g.reshuffles++
		g.selecting = false
		g.phase = phaseResolve
		return
	}
	g.gameOver = true
}

func (g *Game) showHint() {
	if m, ok := pang.FirstMove(g.state.Board()); ok {
		g.hint = m
		g.hinting = true
	}
}

// fail ends the run on an unrecoverable board error.
func (g *Game) fail(err error) {
	g.err = err
	g.gameOver = true
	g.selecting = false
	g.hinting = false
}

// Err returns the error that ended the run, if any.
func (g *Game) Err() error {
	return g.err
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	moves := 0
	if g.state != nil {
		moves = g.state.Swaps()
	}
	return core.GameState{
		Score:     g.score,
		Moves:     moves,
		BestChain: g.bestChain,
		GameOver:  g.gameOver,
		Paused:    g.paused || g.tooSmall,
	}
}

// Board returns the current board for read access.
func (g *Game) Board() *pang.Board {
	if g.state == nil {
		return nil
	}
	return g.state.Board()
}

// Controls returns the control hints for the game.
func (g *Game) Controls() string {
	return "Arrows/WASD: Move | Space: Select | H: Hint | X: Drop | P: Pause | Q: Quit"
}

package tui

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/anypang/internal/config"
	"github.com/vovakirdan/anypang/internal/core"
	"github.com/vovakirdan/anypang/internal/registry"
	"github.com/vovakirdan/anypang/internal/storage"
)

// Model is the Bubble Tea model for running a game.
type Model struct {
	game       registry.Game
	screen     *core.Screen
	store      *storage.Store
	config     core.RuntimeConfig
	keyMapper  *KeyMapper
	inputFrame core.InputFrame
	gameState  core.GameState
	quitting   bool
	backToMenu bool
	scoreSaved bool  // Whether the run has been saved for current game over
	saveErr    error // last failed save, reported by the caller
	gameErr    error // error that ended the run, if any
}

// NewModel creates a new Bubble Tea model for the given game.
func NewModel(game registry.Game, store *storage.Store, cfg core.RuntimeConfig) Model {
	// Use time-based seed if not specified
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	if cfg.TickRate <= 0 {
		cfg.TickRate = core.DefaultConfig().TickRate
	}

	return Model{
		game:       game,
		screen:     core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		store:      store,
		config:     cfg,
		keyMapper:  NewKeyMapper(),
		inputFrame: core.NewInputFrame(),
	}
}

// WithContext hands ctx to games that trace their work.
func (m Model) WithContext(ctx context.Context) Model {
	if t, ok := m.game.(registry.Traced); ok {
		t.BindContext(ctx)
	}
	return m
}

// Init initializes the model and starts the game.
func (m Model) Init() tea.Cmd {
	m.game.Reset(m.config)
	// Note: gameState will be set on first tick (value receiver limitation)

	return tickCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+s" {
		m.saveScreenshot()
		return m, nil
	}

	action, isQuit := m.keyMapper.MapKey(msg)
	switch {
	case isQuit:
		m.quitting = true
		return m, tea.Quit
	case action == core.ActionBack:
		m.backToMenu = true
		m.saveRun()
		return m, tea.Quit
	case action == core.ActionRestart && !m.gameState.GameOver:
		return m, nil
	case action != core.ActionNone:
		m.inputFrame.Set(action)
	}

	return m, nil
}

// handleResize processes window resize events.
// The board survives a resize; only the layout is recomputed.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.screen.Resize(msg.Width, msg.Height)

	if r, ok := m.game.(registry.Resizable); ok {
		r.Resize(msg.Width, msg.Height)
	}

	return m, nil
}

// handleTick processes simulation ticks.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	// Check for restart
	if m.inputFrame.Has(core.ActionRestart) && m.gameState.GameOver {
		// Reset seed for new game
		m.config.Seed = time.Now().UnixNano()
		m.game.Reset(m.config)
		m.gameState = m.game.State()
		m.scoreSaved = false
		m.gameErr = nil
		m.inputFrame.Clear()
		return m, tickCmd(m.config.TickRate)
	}

	result := m.game.Step(m.inputFrame)
	m.gameState = result.State
	if result.Err != nil {
		m.gameErr = result.Err
	}

	// Save the run on game over (once)
	if m.gameState.GameOver {
		m.saveRun()
	}

	// Clear input for next frame
	m.inputFrame.Clear()

	return m, tickCmd(m.config.TickRate)
}

// saveRun stores the current run once. Empty runs are not stored.
func (m *Model) saveRun() {
	if m.scoreSaved || m.gameState.Score == 0 {
		return
	}
	m.scoreSaved = true
	if m.store == nil {
		return
	}

	run := storage.Run{
		GameID:    m.game.ID(),
		Seed:      m.config.Seed,
		Score:     m.gameState.Score,
		Moves:     m.gameState.Moves,
		BestChain: m.gameState.BestChain,
	}
	if s, ok := m.game.(registry.Seeded); ok {
		run.Seed = s.Seed()
	}
	if _, err := m.store.SaveRun(run); err != nil {
		m.saveErr = err
	}
}

// saveScreenshot saves the current screen to a file.
func (m *Model) saveScreenshot() {
	m.game.Render(m.screen)

	dir := config.DataPath("screenshots")
	//nolint:errcheck // Best-effort directory creation
	os.MkdirAll(dir, 0o755)

	timestamp := time.Now().Format("20060102_150405")
	filename := fmt.Sprintf("%s_%s.txt", m.game.ID(), timestamp)
	path := filepath.Join(dir, filename)

	//nolint:errcheck // Best-effort save, game continues regardless
	os.WriteFile(path, []byte(m.screen.String()), 0o600)
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.game.Render(m.screen)
	return RenderScreen(m.screen)
}

// BackToMenu reports whether the player asked to return to the menu.
func (m Model) BackToMenu() bool {
	return m.backToMenu
}

// SaveErr returns the last score save failure, if any.
func (m Model) SaveErr() error {
	return m.saveErr
}

// GameErr returns the error that ended the last run, if any.
func (m Model) GameErr() error {
	return m.gameErr
}

// RunResult describes how a game session ended.
type RunResult struct {
	BackToMenu bool
	SaveErr    error
	GameErr    error
}

// Run starts the Bubble Tea program with the given model.
func Run(game registry.Game, store *storage.Store, cfg core.RuntimeConfig) (RunResult, error) {
	model := NewModel(game, store, cfg)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(), // Use alternate screen buffer
	)

	final, err := p.Run()
	if err != nil {
		return RunResult{}, err
	}
	m, ok := final.(Model)
	if !ok {
		return RunResult{}, nil
	}
	return RunResult{BackToMenu: m.BackToMenu(), SaveErr: m.SaveErr(), GameErr: m.GameErr()}, nil
}

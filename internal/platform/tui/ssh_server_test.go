package tui

import (
	"context"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/anypang/internal/core"
	"github.com/vovakirdan/anypang/internal/registry"
)

type ctxKey struct{}

// tracedGame records the context it was bound to.
type tracedGame struct {
	scriptedGame
	ctx context.Context
}

func (g *tracedGame) BindContext(ctx context.Context) { g.ctx = ctx }

var lastTraced *tracedGame

func init() {
	registry.Register("zz_test_traced", func() registry.Game {
		lastTraced = &tracedGame{scriptedGame: scriptedGame{limit: 100}}
		return lastTraced
	})
}

func TestModelWithContextBindsTracedGame(t *testing.T) {
	game := &tracedGame{scriptedGame: scriptedGame{limit: 3}}
	ctx := context.WithValue(context.Background(), ctxKey{}, "session")

	NewModel(game, nil, core.DefaultConfig()).WithContext(ctx)

	if game.ctx == nil || game.ctx.Value(ctxKey{}) != "session" {
		t.Fatal("WithContext did not bind the context to the game")
	}
}

func TestModelWithContextIgnoresUntracedGame(t *testing.T) {
	game := &scriptedGame{limit: 3}
	m := NewModel(game, nil, core.DefaultConfig()).WithContext(context.Background())
	if m.game != game {
		t.Fatal("WithContext replaced the game")
	}
}

func TestSessionBindsContextToStartedGame(t *testing.T) {
	ctx := context.WithValue(context.Background(), ctxKey{}, "session")
	m := NewSessionModel(nil, core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 60}, "tester")
	m.ctx = ctx

	var target int
	for i, item := range m.menu.items {
		if item.GameID == "zz_test_traced" {
			target = i
		}
	}
	for range target {
		next, _ := m.Update(tea.KeyMsg{Type: tea.KeyDown})
		m = next.(SessionModel)
	}
	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	m = next.(SessionModel)

	if m.gameModel == nil {
		t.Fatal("selecting a mode did not start a game")
	}
	if m.gameModel.game.ID() != "scripted" {
		t.Fatalf("started %q", m.gameModel.game.ID())
	}
	if lastTraced == nil || lastTraced.ctx == nil || lastTraced.ctx.Value(ctxKey{}) != "session" {
		t.Fatal("session context was not bound to the game")
	}
}

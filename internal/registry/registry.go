// Package registry provides a global registry for game factories.
// Game modes register themselves in init() functions, so the CLI and the
// SSH server can list and create them without hardcoded dependencies.
package registry

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"github.com/vovakirdan/anypang/internal/core"
)

// Game is the interface every registered game mode implements.
// Games hold pure logic with no Bubble Tea dependency; the platform handles
// input mapping, timing and rendering.
type Game interface {
	// ID returns a unique identifier (e.g. "anypang", "anypang_endless").
	// Used for CLI commands and score storage.
	ID() string

	// Title returns a human-readable name for display.
	Title() string

	// Reset starts a new run. The RuntimeConfig carries the screen size and
	// RNG seed.
	Reset(cfg core.RuntimeConfig)

	// Step advances the simulation by one fixed tick.
	Step(in core.InputFrame) core.StepResult

	// Render draws the current game state into a pre-cleared screen buffer.
	Render(dst *core.Screen)

	// State returns the current score and status.
	State() core.GameState
}

// Seeded is implemented by games that can report the seed of the current run.
type Seeded interface {
	Seed() int64
}

// Resizable is implemented by games that adapt to a new screen size
// without restarting the run.
type Resizable interface {
	Resize(w, h int)
}

// Described is implemented by games with a one-line summary for menus.
type Described interface {
	Description() string
}

// Traced is implemented by games that start spans. BindContext sets the
// parent for those spans, such as the span of an SSH session.
type Traced interface {
	BindContext(ctx context.Context)
}

// GameInfo contains metadata about a registered game.
type GameInfo struct {
	ID          string
	Title       string
	Description string
}

// Factory creates a new instance of a game.
type Factory func() Game

var (
	factories = make(map[string]Factory)
	infos     = make(map[string]GameInfo)
	mu        sync.RWMutex
)

// Register adds a game factory to the registry.
// Panics if a game with the same ID is already registered.
func Register(id string, f Factory) {
	mu.Lock()
	defer mu.Unlock()

	if _, exists := factories[id]; exists {
		panic(fmt.Sprintf("registry: game %q already registered", id))
	}
	factories[id] = f

	g := f()
	info := GameInfo{ID: id, Title: g.Title()}
	if d, ok := g.(Described); ok {
		info.Description = d.Description()
	}
	infos[id] = info
}

// List returns information about all registered games, sorted by ID.
func List() []GameInfo {
	mu.RLock()
	defer mu.RUnlock()

	result := make([]GameInfo, 0, len(factories))
	for _, info := range infos {
		result = append(result, info)
	}
	sort.Slice(result, func(i, j int) bool {
		return result[i].ID < result[j].ID
	})
	return result
}

// Create instantiates a new game by its ID.
func Create(id string) (Game, error) {
	mu.RLock()
	defer mu.RUnlock()

	f, ok := factories[id]
	if !ok {
		return nil, fmt.Errorf("registry: unknown game %q", id)
	}
	return f(), nil
}

// Exists checks if a game with the given ID is registered.
func Exists(id string) bool {
	mu.RLock()
	defer mu.RUnlock()

	_, ok := factories[id]
	return ok
}

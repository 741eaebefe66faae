package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/anypang/internal/core"
	"github.com/vovakirdan/anypang/internal/games/anypang"
	"github.com/vovakirdan/anypang/internal/games/anypang/layouts"
	"github.com/vovakirdan/anypang/internal/platform/tui"
	"github.com/vovakirdan/anypang/internal/registry"
	"github.com/vovakirdan/anypang/internal/storage"
)

var (
	flagConfig string
	flagLayout string
)

var playCmd = &cobra.Command{
	Use:   "play [mode]",
	Short: "Play a mode",
	Long: `Start playing the specified mode (default: anypang).

Controls:
  Arrows/WASD   - Move cursor, or swap the selected token
  Space/Enter   - Select / unselect the token under the cursor
  X/Backspace   - Drop the selection
  H/?           - Show a productive swap
  P             - Pause
  R             - Restart (after game over)
  B/Esc         - Back
  Q/Ctrl+C      - Quit
  Ctrl+S        - Save a screenshot

Examples:
  anypang play
  anypang play anypang_endless
  anypang play --seed 42
  anypang play --layout ./layouts/cross.yaml
  anypang play --config ./my-anypang.yaml`,
	Args: cobra.MaximumNArgs(1),
	RunE: runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagConfig, "config", env.ConfigPath, "Path to custom game config YAML")
	playCmd.Flags().StringVar(&flagLayout, "layout", "", "Path to a starting board layout (YAML)")
	menuCmd.Flags().StringVar(&flagConfig, "config", env.ConfigPath, "Path to custom game config YAML")
}

func runPlay(_ *cobra.Command, args []string) error {
	gameID := "anypang"
	if len(args) == 1 {
		gameID = args[0]
	}
	if !registry.Exists(gameID) {
		return fmt.Errorf("unknown mode %q (run 'anypang list' to see available modes)", gameID)
	}

	anypang.SetConfigPath(flagConfig)
	if flagLayout != "" {
		l, err := layouts.LoadFile(flagLayout)
		if err != nil {
			return fmt.Errorf("load layout: %w", err)
		}
		anypang.SetLayout(&l)
	}

	game, err := registry.Create(gameID)
	if err != nil {
		return fmt.Errorf("create game: %w", err)
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		logger.Warn("could not open scores database", "error", err)
		// Continue without storage - the game still works
		store = nil
	}

	res, runErr := tui.Run(game, store, runtimeConfig())

	if store != nil {
		if err := store.Close(); err != nil {
			logger.Warn("closing scores database", "error", err)
		}
	}
	reportRun(gameID, res)

	if runErr != nil {
		return fmt.Errorf("run game: %w", runErr)
	}
	return nil
}

// runtimeConfig builds the runtime config from the flags and the terminal size.
func runtimeConfig() core.RuntimeConfig {
	width, height := 80, 24
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		width = w
		height = h
	}
	return core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}
}

func reportRun(gameID string, res tui.RunResult) {
	if res.GameErr != nil {
		logger.Error("run ended on a board error", "mode", gameID, "error", res.GameErr)
	}
	if res.SaveErr != nil {
		logger.Warn("score not saved", "mode", gameID, "error", res.SaveErr)
	}
}

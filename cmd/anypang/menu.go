package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/anypang/internal/games/anypang"
	"github.com/vovakirdan/anypang/internal/platform/tui"
	"github.com/vovakirdan/anypang/internal/registry"
	"github.com/vovakirdan/anypang/internal/storage"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Start AnyPang with a mode picker",
	Long: `Start AnyPang in interactive menu mode.

Use arrow keys or j/k to navigate, Enter to pick a mode.
After a run ends, you return to the menu to play again.

Controls:
  Up/Down/j/k  - Navigate menu
  Enter/Space  - Select mode
  Tab          - High scores
  Q            - Quit

Examples:
  anypang menu
  anypang menu --fps 30
  anypang menu --db ./scores.db`,
	RunE: runMenu,
}

func runMenu(_ *cobra.Command, _ []string) error {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		logger.Warn("could not open scores database", "error", err)
		store = nil
	}
	defer func() {
		if store == nil {
			return
		}
		if err := store.Close(); err != nil {
			logger.Warn("closing scores database", "error", err)
		}
	}()

	anypang.SetConfigPath(flagConfig)
	cfg := runtimeConfig()

	for {
		menuResult, err := tui.RunMenu(store, cfg)
		if err != nil {
			return fmt.Errorf("menu: %w", err)
		}
		// Keep any size changes for the next screen
		cfg = menuResult.Config

		if menuResult.Quit {
			return nil
		}

		if menuResult.WantsScoreboard {
			goBack, sbErr := tui.RunScoreboard(store, cfg.ScreenW, cfg.ScreenH)
			if sbErr != nil {
				return fmt.Errorf("scoreboard: %w", sbErr)
			}
			if goBack {
				continue
			}
			return nil
		}

		gameID := menuResult.GameID
		if gameID == "" {
			return nil
		}

		game, err := registry.Create(gameID)
		if err != nil {
			logger.Error("could not create game", "mode", gameID, "error", err)
			continue
		}

		// A fixed --seed replays the same board every run
		cfg.Seed = flagSeed

		res, err := tui.Run(game, store, cfg)
		if err != nil {
			return fmt.Errorf("run game: %w", err)
		}
		reportRun(gameID, res)
	}
}

// anypang is a terminal match-3 game.
//
// Usage:
//
//	anypang list              - List available modes
//	anypang play [mode]       - Play a mode (default: anypang)
//	anypang menu              - Start the mode picker
//	anypang serve             - Start SSH server for remote play
//	anypang scores [mode]     - Show high scores for a mode
//	anypang simulate          - Play a board headlessly and print the result
//
// Global flags:
//
//	--fps <rate>    - Set tick rate (default: 60, or ANYPANG_FPS)
//	--seed <value>  - Set RNG seed for reproducible boards (or ANYPANG_SEED)
//	--db <path>     - Set database path (default: ~/.anypang/scores.db, or ANYPANG_DB)
package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/anypang/internal/config"
	// Import the game to register its modes
	_ "github.com/vovakirdan/anypang/internal/games/anypang"
	"github.com/vovakirdan/anypang/internal/platform/telemetry"
)

var (
	// Global flags
	flagFPS    int
	flagSeed   int64
	flagDBPath string

	env, envErr = loadEnv()

	logger = log.NewWithOptions(os.Stderr, log.Options{Prefix: "anypang"})

	shutdownTelemetry = func(context.Context) error { return nil }
)

func main() {
	err := rootCmd.Execute()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	if shutdownErr := shutdownTelemetry(ctx); shutdownErr != nil {
		logger.Warn("flushing traces", "error", shutdownErr)
	}
	cancel()

	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "anypang",
	Short: "AnyPang - match-3 in your terminal",
	Long: `AnyPang is a match-3 puzzle for the terminal. Swap neighbouring
tokens to line up three or more of a kind; cleared tokens fall and
new ones drop in from the top.

Available commands:
  list      - Show the available modes
  play      - Play a mode directly
  menu      - Interactive mode picker
  serve     - Start SSH server for remote play
  scores    - View high scores
  simulate  - Autoplay a board and print every cascade

Examples:
  anypang play
  anypang play anypang_endless --seed 42
  anypang menu
  anypang serve --ssh :2222
  anypang simulate --seed 7 --moves 10`,
	SilenceUsage:      true,
	PersistentPreRunE: setup,
}

// loadEnv reads .env and ANYPANG_* variables. They only provide flag
// defaults, so a broken environment still yields usable values.
func loadEnv() (config.EnvConfig, error) {
	cfg, err := config.LoadEnv()
	if err != nil {
		cfg = config.EnvConfig{FPS: 60, SSHAddr: ":23234"}
	}
	if cfg.DBPath == "" {
		cfg.DBPath = config.DataPath("scores.db")
	}
	return cfg, err
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", env.FPS, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", env.Seed, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", env.DBPath, "Path to scores database")

	// Add subcommands
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(simulateCmd)
}

// setup reports environment errors and starts tracing for the command.
func setup(cmd *cobra.Command, _ []string) error {
	if envErr != nil {
		return fmt.Errorf("environment: %w", envErr)
	}
	if flagFPS <= 0 {
		return fmt.Errorf("--fps must be positive, got %d", flagFPS)
	}

	service := "anypang"
	if cmd == serveCmd {
		service = "anypang-ssh"
	}
	shutdown, err := telemetry.Setup(cmd.Context(), service, telemetry.Options{
		Endpoint: env.OTelEndpoint,
		Enabled:  env.OTelEnabled,
	})
	if err != nil {
		// Tracing is optional, the game runs without it
		logger.Warn("tracing disabled", "error", err)
		return nil
	}
	shutdownTelemetry = shutdown
	return nil
}

package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/anypang/internal/games/anypang"
	"github.com/vovakirdan/anypang/internal/platform/tui"
)

var (
	flagSSHAddr     string
	flagHostKey     string
	flagIdleTimeout int
	flagServeConfig string
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the AnyPang SSH server",
	Long: `Start an SSH server that lets users connect and play.

Each SSH connection gets its own session with its own board.
Scores are stored per-server (all users share the same leaderboard).

Host key handling:
  - If --host-key is provided, uses that key file
  - Otherwise, auto-generates a key at ~/.anypang/host_key

Tracing:
  Set ANYPANG_OTEL_ENDPOINT (e.g. http://localhost:4318) to export
  one span per session and per swap over OTLP/HTTP.

Examples:
  anypang serve                           # Listen on :23234 with auto-generated key
  anypang serve --ssh :2222               # Listen on port 2222
  anypang serve --host-key ./my_host_key  # Use specific host key
  anypang serve --db ./scores.db          # Use specific database

Users can connect with:
  ssh localhost -p 23234`,
	RunE: runServe,
}

func init() {
	serveCmd.Flags().StringVar(&flagSSHAddr, "ssh", env.SSHAddr, "SSH server address (host:port)")
	serveCmd.Flags().StringVar(&flagHostKey, "host-key", "", "Path to host key file (auto-generated if not specified)")
	serveCmd.Flags().IntVar(&flagIdleTimeout, "idle-timeout", 30, "Idle timeout in minutes before disconnecting")
	serveCmd.Flags().StringVar(&flagServeConfig, "config", env.ConfigPath, "Path to custom game config YAML")
}

func runServe(_ *cobra.Command, _ []string) error {
	anypang.SetConfigPath(flagServeConfig)

	cfg := tui.SSHServerConfig{
		Address:     flagSSHAddr,
		HostKeyPath: flagHostKey,
		DBPath:      flagDBPath,
		TickRate:    flagFPS,
		IdleTimeout: time.Duration(flagIdleTimeout) * time.Minute,
	}

	server, err := tui.NewSSHServer(cfg)
	if err != nil {
		return fmt.Errorf("create server: %w", err)
	}

	fmt.Printf("Starting AnyPang SSH server on %s\n", cfg.Address)
	fmt.Println("Press Ctrl+C to stop")

	if err := server.ListenAndServe(); err != nil {
		return fmt.Errorf("server: %w", err)
	}
	return nil
}

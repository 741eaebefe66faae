package main

import (
	"fmt"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/anypang/internal/config"
	"github.com/vovakirdan/anypang/internal/games/anypang"
	pang "github.com/vovakirdan/anypang/internal/games/anypang/core"
	"github.com/vovakirdan/anypang/internal/games/anypang/layouts"
)

var (
	flagMoves      int
	flagSimLayout  string
	flagSimConfig  string
	flagSimVerbose bool
)

var simulateCmd = &cobra.Command{
	Use:   "simulate",
	Short: "Autoplay a board and print every cascade",
	Long: `Play a board without a terminal UI. Each turn swaps the first
productive pair (scanning from the bottom-left) and resolves the whole
chain. The same seed always prints the same game.

Examples:
  anypang simulate --seed 7
  anypang simulate --seed 7 --moves 50 --verbose
  anypang simulate --layout ./layouts/cross.yaml`,
	Args: cobra.NoArgs,
	RunE: runSimulate,
}

func init() {
	simulateCmd.Flags().IntVar(&flagMoves, "moves", 20, "Maximum number of swaps to play")
	simulateCmd.Flags().StringVar(&flagSimLayout, "layout", "", "Path to a starting board layout (YAML)")
	simulateCmd.Flags().StringVar(&flagSimConfig, "config", env.ConfigPath, "Path to custom game config YAML")
	simulateCmd.Flags().BoolVarP(&flagSimVerbose, "verbose", "v", false, "Log every removed group")
}

func runSimulate(_ *cobra.Command, _ []string) error {
	if flagSimVerbose {
		logger.SetLevel(log.DebugLevel)
	}

	cfg, err := config.LoadAnyPang(flagSimConfig)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	seed := flagSeed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	var st *pang.State
	if flagSimLayout != "" {
		l, err := layouts.LoadFile(flagSimLayout)
		if err != nil {
			return fmt.Errorf("load layout: %w", err)
		}
		if l.HasSeed {
			seed = l.Seed
		}
		if st, err = l.NewState(seed); err != nil {
			return fmt.Errorf("layout %s: %w", l.ID, err)
		}
	} else if st, err = pang.NewState(pang.NewRandSource(seed)); err != nil {
		return fmt.Errorf("new board: %w", err)
	}

	fmt.Printf("Seed: %d\n", seed)
	fmt.Println(st.Board())
	fmt.Println()

	a := anypang.NewAutoplayer(st, cfg.Scoring)
	turn, err := a.Settle()
	if err != nil {
		return err
	}
	if len(turn.Chain) > 0 {
		printTurn(0, turn)
	}

	played := 0
	for played < flagMoves {
		turn, ok, err := a.Next()
		if err != nil {
			return err
		}
		if !ok {
			fmt.Println("No productive swap left.")
			break
		}
		played++
		printTurn(played, turn)
	}

	fmt.Println()
	fmt.Println(a.State().Board())
	fmt.Println()
	fmt.Printf("Swaps:      %d\n", a.State().Swaps())
	fmt.Printf("Ticks:      %d\n", a.State().Ticks())
	fmt.Printf("Score:      %s\n", anypang.FormatScore(a.Score()))
	fmt.Printf("Best chain: x%d\n", a.BestChain())
	fmt.Printf("Hash:       %016x\n", a.State().Hash())
	return nil
}

func printTurn(n int, t anypang.Turn) {
	if t.Swapped {
		fmt.Printf("#%-3d %s <-> %s  chain x%d  +%s\n",
			n, t.Move.A, t.Move.B, len(t.Chain), anypang.FormatScore(t.Gain))
	} else {
		fmt.Printf("#%-3d settle        chain x%d  +%s\n",
			n, len(t.Chain), anypang.FormatScore(t.Gain))
	}
	for i, groups := range t.Chain {
		for _, g := range groups {
			logger.Debug("removed", "step", i+1, "type", g.Type(), "len", g.Len(), "cells", g)
		}
	}
}

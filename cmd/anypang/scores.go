package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/vovakirdan/anypang/internal/registry"
	"github.com/vovakirdan/anypang/internal/storage"
)

var (
	flagLimit   int
	flagClear   bool
	flagSummary bool
)

var scoresCmd = &cobra.Command{
	Use:   "scores [mode]",
	Short: "Show high scores for a mode",
	Long: `Display the top scores and run statistics for a mode (default: anypang).
The seed column replays a run: anypang play <mode> --seed <seed>.

Examples:
  anypang scores
  anypang scores anypang_endless --limit 20
  anypang scores --limit 0          # every recorded run
  anypang scores --summary          # one line per mode
  anypang scores anypang --clear`,
	Args: cobra.MaximumNArgs(1),
	RunE: runScores,
}

func init() {
	scoresCmd.Flags().IntVar(&flagLimit, "limit", 10, "Number of runs to show (0 = all)")
	scoresCmd.Flags().BoolVar(&flagClear, "clear", false, "Delete all recorded runs for the mode")
	scoresCmd.Flags().BoolVar(&flagSummary, "summary", false, "Show one summary line per mode")
}

var printer = message.NewPrinter(language.English)

func runScores(_ *cobra.Command, args []string) error {
	gameID := "anypang"
	if len(args) == 1 {
		gameID = args[0]
	}
	if !registry.Exists(gameID) {
		return fmt.Errorf("unknown mode %q (run 'anypang list' to see available modes)", gameID)
	}

	game, err := registry.Create(gameID)
	if err != nil {
		return fmt.Errorf("create game: %w", err)
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		return fmt.Errorf("open scores database: %w", err)
	}
	defer func() {
		if err := store.Close(); err != nil {
			logger.Warn("closing scores database", "error", err)
		}
	}()

	if flagSummary {
		return printSummary(store)
	}

	if flagClear {
		if err := store.ClearScores(gameID); err != nil {
			return err
		}
		fmt.Printf("Cleared scores for %s.\n", game.Title())
		return nil
	}

	var scores []storage.Run
	if flagLimit > 0 {
		scores, err = store.TopScores(gameID, flagLimit)
	} else {
		scores, err = store.AllScores(gameID)
	}
	if err != nil {
		return fmt.Errorf("retrieve scores: %w", err)
	}

	fmt.Printf("High Scores - %s\n\n", game.Title())
	if len(scores) == 0 {
		fmt.Println("No scores recorded yet.")
		fmt.Println()
		fmt.Printf("Play 'anypang play %s' to set the first high score!\n", gameID)
		return nil
	}

	fmt.Printf("  %-4s  %-10s  %-5s  %-5s  %-20s  %s\n", "Rank", "Score", "Chain", "Moves", "Seed", "Date")
	fmt.Printf("  %-4s  %-10s  %-5s  %-5s  %-20s  %s\n", "----", "-----", "-----", "-----", "----", "----")
	for i, r := range scores {
		// Seeds are printed raw so they can be pasted into --seed
		printer.Printf("  %-4d  %-10d  x%-4d  %-5d  ", i+1, r.Score, r.BestChain, r.Moves)
		fmt.Printf("%-20d  %s\n", r.Seed, r.CreatedAt.Format("2006-01-02 15:04"))
	}

	fmt.Println()
	if best, err := store.HighScore(gameID); err == nil {
		printer.Printf("Best: %d\n", best)
	}
	stats, err := store.GetGameStats(gameID)
	if err != nil {
		logger.Warn("could not load statistics", "error", err)
		return nil
	}
	printer.Printf("Runs: %d  Average: %.0f  Longest chain: x%d  Swaps: %d\n",
		stats.GamesCount, stats.AvgScore, stats.BestChain, stats.TotalMoves)
	return nil
}

// printSummary prints one line per mode that has recorded runs.
func printSummary(store *storage.Store) error {
	stats, err := store.GetAllGamesStats()
	if err != nil {
		return fmt.Errorf("retrieve statistics: %w", err)
	}
	if len(stats) == 0 {
		fmt.Println("No scores recorded yet.")
		return nil
	}

	fmt.Printf("  %-18s  %-5s  %-10s  %-8s  %-5s  %s\n", "Mode", "Runs", "Best", "Average", "Chain", "Last played")
	fmt.Printf("  %-18s  %-5s  %-10s  %-8s  %-5s  %s\n", "----", "----", "----", "-------", "-----", "-----------")
	for _, g := range registry.List() {
		s, ok := stats[g.ID]
		if !ok {
			continue
		}
		printer.Printf("  %-18s  %-5d  %-10d  %-8.0f  x%-4d  %s\n",
			g.Title, s.GamesCount, s.HighScore, s.AvgScore, s.BestChain, s.LastPlayed.Format("2006-01-02 15:04"))
	}
	return nil
}

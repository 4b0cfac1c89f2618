package main

import (
	"fmt"
	"os"
	"sort"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/blockfall/internal/platform/tui"
	"github.com/vovakirdan/blockfall/internal/registry"
	"github.com/vovakirdan/blockfall/internal/storage"
)

var (
	flagScoresLimit  int
	flagScoresPlayer string
	flagScoresStats  bool
	flagScoresClear  bool
)

var scoresCmd = &cobra.Command{
	Use:   "scores [mode]",
	Short: "Show high scores",
	Long: `Display the best runs for a mode (default: blockfall).

Examples:
  blockfall scores
  blockfall scores blockfall_endless --limit 20
  blockfall scores --player alice
  blockfall scores --stats
  blockfall scores blockfall --clear`,
	Args: cobra.MaximumNArgs(1),
	Run:  runScores,
}

func init() {
	scoresCmd.Flags().IntVar(&flagScoresLimit, "limit", 10, "Number of runs to show")
	scoresCmd.Flags().StringVar(&flagScoresPlayer, "player", "", "Show one player's best runs across modes")
	scoresCmd.Flags().BoolVar(&flagScoresStats, "stats", false, "Show aggregated statistics per mode")
	scoresCmd.Flags().BoolVar(&flagScoresClear, "clear", false, "Delete all scores of the mode")
}

func runScores(_ *cobra.Command, args []string) {
	gameID := "blockfall"
	if len(args) > 0 {
		gameID = args[0]
	}

	info, ok := registry.Info(gameID)
	if !ok {
		fmt.Fprintf(os.Stderr, "Error: unknown mode %q\n", gameID)
		fmt.Fprintln(os.Stderr, "Run 'blockfall list' to see available modes.")
		os.Exit(1)
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening scores database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	switch {
	case flagScoresClear:
		err = store.ClearScores(gameID)
		if err == nil {
			fmt.Printf("Cleared scores for %s.\n", info.Title)
		}
	case flagScoresStats:
		err = printStats(store)
	case flagScoresPlayer != "":
		err = printPlayerScores(store, flagScoresPlayer)
	default:
		err = printTopScores(store, info)
	}
	if err != nil {
		store.Close()
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func printTopScores(store *storage.Store, info registry.GameInfo) error {
	scores, err := store.TopScores(info.ID, flagScoresLimit)
	if err != nil {
		return err
	}

	fmt.Printf("High Scores - %s\n", info.Title)
	fmt.Println()

	if len(scores) == 0 {
		fmt.Println("No runs recorded yet.")
		fmt.Println()
		fmt.Printf("Play 'blockfall play %s' to set the first high score!\n", info.ID)
		return nil
	}

	printEntries(scores, false)
	return nil
}

func printPlayerScores(store *storage.Store, player string) error {
	scores, err := store.PlayerScores(player, flagScoresLimit)
	if err != nil {
		return err
	}

	fmt.Printf("Best runs - %s\n", player)
	fmt.Println()
	if len(scores) == 0 {
		fmt.Println("No runs recorded yet.")
		return nil
	}
	printEntries(scores, true)
	return nil
}

func printEntries(scores []storage.ScoreEntry, withMode bool) {
	if withMode {
		fmt.Printf("  %-4s  %-18s  %-8s  %-5s  %-3s  %-6s  %s\n", "Rank", "Mode", "Score", "Lines", "Lvl", "Time", "Date")
	} else {
		fmt.Printf("  %-4s  %-8s  %-5s  %-3s  %-6s  %-10s  %s\n", "Rank", "Score", "Lines", "Lvl", "Time", "Player", "Date")
	}

	for i, e := range scores {
		date := e.CreatedAt.Format("2006-01-02 15:04")
		dur := tui.FormatDuration(e.Duration)
		if withMode {
			fmt.Printf("  %-4d  %-18s  %-8d  %-5d  %-3d  %-6s  %s\n", i+1, e.GameID, e.Score, e.Lines, e.Level, dur, date)
		} else {
			fmt.Printf("  %-4d  %-8d  %-5d  %-3d  %-6s  %-10s  %s\n", i+1, e.Score, e.Lines, e.Level, dur, e.Player, date)
		}
	}
}

func printStats(store *storage.Store) error {
	all, err := store.GetAllGamesStats()
	if err != nil {
		return err
	}
	if len(all) == 0 {
		fmt.Println("No runs recorded yet.")
		return nil
	}

	ids := make([]string, 0, len(all))
	for id := range all {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	fmt.Printf("  %-18s  %-5s  %-8s  %-8s  %-6s  %-4s  %-8s  %s\n",
		"Mode", "Runs", "Best", "Average", "Lines", "Lvl", "Played", "Last")
	for _, id := range ids {
		s := all[id]
		fmt.Printf("  %-18s  %-5d  %-8d  %-8.0f  %-6d  %-4d  %-8s  %s\n",
			id, s.GamesCount, s.HighScore, s.AvgScore, s.TotalLines, s.BestLevel,
			tui.FormatDuration(s.PlayTime), s.LastPlayed.Format("2006-01-02"))
	}
	return nil
}

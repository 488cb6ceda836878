package main

import (
	"errors"
	"fmt"
	"slices"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/popstar/internal/platform/tui"
	"github.com/vovakirdan/popstar/internal/registry"
	"github.com/vovakirdan/popstar/internal/storage"
)

var (
	flagScoresLimit int
	flagScoresTUI   bool
	flagScoresClear bool
	flagScoresAll   bool
)

var scoresCmd = &cobra.Command{
	Use:   "scores [board]",
	Short: "Show high scores for a board",
	Long: `Display the top scores and session statistics for a board.

Examples:
  popstar scores
  popstar scores popstar_mini --limit 20
  popstar scores --interactive
  popstar scores --all`,
	Args: cobra.MaximumNArgs(1),
	RunE: runScores,
}

func init() {
	scoresCmd.Flags().IntVar(&flagScoresLimit, "limit", 10, "Number of scores to show")
	scoresCmd.Flags().BoolVarP(&flagScoresTUI, "interactive", "i", false, "Browse scores in the interactive scoreboard")
	scoresCmd.Flags().BoolVar(&flagScoresClear, "clear", false, "Delete all scores for the board")
	scoresCmd.Flags().BoolVar(&flagScoresAll, "all", false, "Summarize every board that has been played")
}

func runScores(_ *cobra.Command, args []string) error {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		return fmt.Errorf("opening scores database: %w", err)
	}
	defer store.Close()

	if flagScoresTUI {
		rc := terminalConfig()
		return tui.RunScoreboard(store, rc.ScreenW, rc.ScreenH)
	}

	if flagScoresAll {
		return printAllStats(store)
	}

	gameID := "popstar"
	if len(args) == 1 {
		gameID = args[0]
	}
	if !registry.Exists(gameID) {
		return fmt.Errorf("unknown board %q, run 'popstar list' to see available boards", gameID)
	}
	if flagScoresLimit <= 0 {
		return errors.New("--limit must be positive")
	}

	if flagScoresClear {
		if err := store.ClearScores(gameID); err != nil {
			return err
		}
		fmt.Printf("Cleared scores for %s.\n", registry.Title(gameID))
		return nil
	}

	scores, err := store.TopScores(gameID, flagScoresLimit)
	if err != nil {
		return err
	}

	title := registry.Title(gameID)
	fmt.Printf("High scores for %s:\n\n", title)
	if len(scores) == 0 {
		fmt.Println("  No scores yet. Be the first to play!")
		fmt.Printf("\nRun 'popstar play %s' to start.\n", gameID)
		return nil
	}

	fmt.Printf("  %-4s  %-8s  %-12s  %s\n", "Rank", "Score", "Player", "Date")
	fmt.Printf("  %-4s  %-8s  %-12s  %s\n", "----", "-----", "------", "----")
	for i, s := range scores {
		player := s.Player
		if player == "" {
			player = "local"
		}
		fmt.Printf("  %-4d  %-8d  %-12s  %s\n", i+1, s.Score, player, s.CreatedAt.Format("2006-01-02 15:04"))
	}

	stats, err := store.GetGameStats(gameID)
	if err != nil {
		return err
	}
	if stats != nil && stats.GamesCount > 0 {
		fmt.Println()
		fmt.Printf("  Sessions: %d  Average: %.0f  Best group: %d  Board clears: %d  Stars popped: %d\n",
			stats.GamesCount, stats.AvgScore, stats.BestGroup, stats.BoardClears, stats.StarsCleared)
	}
	return nil
}

func printAllStats(store *storage.Store) error {
	all, err := store.GetAllGamesStats()
	if err != nil {
		return err
	}
	if len(all) == 0 {
		fmt.Println("No sessions recorded yet.")
		return nil
	}

	ids := make([]string, 0, len(all))
	for id := range all {
		ids = append(ids, id)
	}
	slices.Sort(ids)

	fmt.Printf("  %-16s  %-8s  %-6s  %-7s  %-5s  %s\n", "Board", "Sessions", "Best", "Average", "Group", "Last played")
	fmt.Printf("  %-16s  %-8s  %-6s  %-7s  %-5s  %s\n", "-----", "--------", "----", "-------", "-----", "-----------")
	for _, id := range ids {
		st := all[id]
		fmt.Printf("  %-16s  %-8d  %-6d  %-7.0f  %-5d  %s\n",
			registry.Title(id), st.GamesCount, st.HighScore, st.AvgScore, st.BestGroup,
			st.LastPlayed.Format("2006-01-02 15:04"))
	}
	return nil
}

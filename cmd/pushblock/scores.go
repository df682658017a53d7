package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/pushblock/internal/games/pushblock"
	"github.com/vovakirdan/pushblock/internal/storage"
)

var (
	flagScoresLimit int
	flagScoresClear bool
)

var scoresCmd = &cobra.Command{
	Use:   "scores",
	Short: "Show the score history",
	Long: `Display the top scores and play statistics.

Examples:
  pushblock scores
  pushblock scores --limit 20
  pushblock scores --clear`,
	Args: cobra.NoArgs,
	RunE: runScores,
}

func init() {
	scoresCmd.Flags().IntVar(&flagScoresLimit, "limit", 10, "Number of scores to show")
	scoresCmd.Flags().BoolVar(&flagScoresClear, "clear", false, "Delete the score history")
}

func runScores(_ *cobra.Command, _ []string) error {
	// Open score storage
	store, err := storage.Open(flagDBPath)
	if err != nil {
		return fmt.Errorf("opening scores database: %w", err)
	}
	defer store.Close()

	if flagScoresClear {
		if err := store.ClearScores(pushblock.GameID); err != nil {
			return err
		}
		fmt.Println("Score history cleared.")
		return nil
	}

	scores, err := store.TopScores(pushblock.GameID, flagScoresLimit)
	if err != nil {
		return fmt.Errorf("retrieving scores: %w", err)
	}

	fmt.Println("High Scores - Push Block")
	fmt.Println()

	if len(scores) == 0 {
		fmt.Println("No scores recorded yet.")
		fmt.Println()
		fmt.Println("Play 'pushblock play' to set the first high score!")
		return nil
	}

	// Print header
	fmt.Printf("  %-4s  %-8s  %-3s  %-10s  %-10s  %s\n", "Rank", "Score", "Lv", "Stage", "Player", "Date")
	fmt.Printf("  %-4s  %-8s  %-3s  %-10s  %-10s  %s\n", "----", "-----", "--", "-----", "------", "----")

	for i, entry := range scores {
		player := entry.Player
		if player == "" {
			player = "-"
		}
		dateStr := entry.CreatedAt.Format("2006-01-02 15:04")
		fmt.Printf("  %-4d  %-8d  %-3d  %-10s  %-10s  %s\n", i+1, entry.Score, entry.Level, entry.Stage, player, dateStr)
	}

	fmt.Println()
	best, err := store.ReadInt(storage.KeyHighScore, 0)
	if err == nil {
		fmt.Printf("High score: %d\n", best)
	}
	// The high score survives --clear, the history best does not.
	if top, err := store.HighScore(pushblock.GameID); err == nil {
		fmt.Printf("Best in history: %d\n", top)
	}
	if stats, err := store.GetGameStats(pushblock.GameID); err == nil {
		fmt.Printf("Runs: %d  Average: %.1f  Best level: %d\n", stats.GamesCount, stats.AvgScore, stats.BestLevel)
	}
	return nil
}

package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/gridsnake/internal/registry"
	"github.com/vovakirdan/gridsnake/internal/storage"
)

var (
	flagScoresLimit int
	flagClearScores bool
)

var scoresCmd = &cobra.Command{
	Use:   "scores [variant]",
	Short: "Show high scores",
	Long: `Display the top scores for a variant, or a summary of every variant.

Examples:
  gridsnake scores
  gridsnake scores classic
  gridsnake scores relaxed --limit 20
  gridsnake scores classic --clear`,
	Args: cobra.MaximumNArgs(1),
	RunE: runScores,
}

func init() {
	scoresCmd.Flags().IntVar(&flagScoresLimit, "limit", 10, "Number of scores to show")
	scoresCmd.Flags().BoolVar(&flagClearScores, "clear", false, "Delete all scores for the variant")
}

func runScores(_ *cobra.Command, args []string) error {
	store, err := storage.Open(app.DBPath)
	if err != nil {
		return err
	}
	defer store.Close()

	if len(args) == 0 {
		if flagClearScores {
			return errors.New("--clear needs a variant")
		}
		return printSummary(store)
	}

	variant := args[0]
	if !registry.Exists(variant) {
		return fmt.Errorf("unknown variant %q, run 'gridsnake variants' to list them", variant)
	}

	if flagClearScores {
		if err := store.ClearScores(variant); err != nil {
			return err
		}
		fmt.Printf("Cleared scores for %s\n", variant)
		return nil
	}

	scores, err := store.TopScores(variant, flagScoresLimit)
	if err != nil {
		return err
	}

	fmt.Printf("High Scores - %s\n", variant)
	fmt.Println()

	if len(scores) == 0 {
		fmt.Println("No scores recorded yet.")
		fmt.Println()
		fmt.Printf("Play 'gridsnake play %s' to set the first high score!\n", variant)
		return nil
	}

	fmt.Printf("  %-4s  %-8s  %-6s  %s\n", "Rank", "Score", "Length", "Date")
	fmt.Printf("  %-4s  %-8s  %-6s  %s\n", "----", "-----", "------", "----")
	for i, entry := range scores {
		fmt.Printf("  %-4d  %-8d  %-6d  %s\n", i+1, entry.Score, entry.Length, entry.CreatedAt.Format("2006-01-02 15:04"))
	}
	return nil
}

func printSummary(store *storage.Store) error {
	stats, err := store.AllStats()
	if err != nil {
		return err
	}

	if len(stats) == 0 {
		fmt.Println("No scores recorded yet.")
		return nil
	}

	fmt.Printf("  %-10s  %-6s  %-6s  %-8s  %s\n", "Variant", "Games", "Best", "Average", "Longest")
	for _, v := range registry.List() {
		st, ok := stats[v.ID]
		if !ok {
			continue
		}
		fmt.Printf("  %-10s  %-6d  %-6d  %-8.1f  %d\n", v.ID, st.GamesCount, st.HighScore, st.AvgScore, st.MaxLength)
	}
	return nil
}

package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/juan-ignacio-sanchez/the-alchemist/internal/storage"
)

var (
	flagLimit  int
	flagRecent bool
	flagClear  bool
)

var scoresCmd = &cobra.Command{
	Use:   "scores",
	Short: "Show the run history",
	Long: `Display the best runs: furthest level first, then most potions.

Examples:
  alchemist scores
  alchemist scores --recent --limit 20
  alchemist scores --clear`,
	Args: cobra.NoArgs,
	RunE: runScores,
}

func init() {
	scoresCmd.Flags().IntVar(&flagLimit, "limit", 10, "Number of runs to show")
	scoresCmd.Flags().BoolVar(&flagRecent, "recent", false, "Show the latest runs instead of the best")
	scoresCmd.Flags().BoolVar(&flagClear, "clear", false, "Delete the whole run history")
}

func runScores(cmd *cobra.Command, _ []string) error {
	s, err := resolveSettings(cmd)
	if err != nil {
		return err
	}
	store, err := storage.Open(s.dbPath)
	if err != nil {
		return err
	}
	defer store.Close()

	if flagClear {
		if err := store.ClearRuns(); err != nil {
			return err
		}
		fmt.Println("Run history cleared.")
		return nil
	}

	var runs []storage.Run
	title := "Best runs"
	if flagRecent {
		title = "Recent runs"
		runs, err = store.RecentRuns(flagLimit)
	} else {
		runs, err = store.BestRuns(flagLimit)
	}
	if err != nil {
		return err
	}

	fmt.Printf("The Alchemist - %s\n\n", title)
	if len(runs) == 0 {
		fmt.Println("No runs recorded yet.")
		fmt.Println()
		fmt.Println("Play 'alchemist play' to record the first one!")
		return nil
	}

	fmt.Printf("  %-4s  %-7s  %-24s  %-7s  %-6s  %s\n", "Rank", "Outcome", "Level", "Potions", "Time", "Date")
	fmt.Printf("  %-4s  %-7s  %-24s  %-7s  %-6s  %s\n", "----", "-------", "-----", "-------", "----", "----")
	for i, r := range runs {
		lvl := fmt.Sprintf("%d %s", r.Level, r.Title)
		d := r.Duration.Round(time.Second)
		fmt.Printf("  %-4d  %-7s  %-24s  %-7d  %-6s  %s\n",
			i+1, r.Outcome, lvl, r.Potions, d, r.CreatedAt.Format("2006-01-02 15:04"))
	}

	if stats, err := store.Stats(); err == nil {
		fmt.Println()
		fmt.Printf("Runs: %d  Wins: %d  Potions collected: %d\n", stats.Runs, stats.Wins, stats.TotalPotions)
	}
	return nil
}

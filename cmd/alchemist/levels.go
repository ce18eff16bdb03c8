package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

var levelsCmd = &cobra.Command{
	Use:   "levels",
	Short: "List the level catalog",
	Long: `Shows the levels of the active configuration in play order, with the
potions each one asks for and what it throws at you.`,
	Args: cobra.NoArgs,
	RunE: runLevels,
}

func runLevels(cmd *cobra.Command, _ []string) error {
	s, err := resolveSettings(cmd)
	if err != nil {
		return err
	}
	cfg, err := loadGameConfig(s)
	if err != nil {
		return err
	}

	maxTitle := len("Title")
	for _, l := range cfg.Levels {
		maxTitle = max(maxTitle, len(l.Title))
	}

	fmt.Printf("  %-3s  %-*s  %-7s  %-18s  %s\n", "#", maxTitle, "Title", "Potions", "Colors", "Enemies")
	fmt.Printf("  %-3s  %-*s  %-7s  %-18s  %s\n", "-", maxTitle, "-----", "-------", "------", "-------")
	for i, l := range cfg.Levels {
		fmt.Printf("  %-3d  %-*s  %-7d  %-18s  %s\n",
			i+1, maxTitle, l.Title, l.Target, strings.Join(l.Potions, ","), strings.Join(l.Enemies, ", "))
	}
	fmt.Println()
	fmt.Printf("Difficulty %s: enemies take %d hits.\n", s.difficulty, cfg.Combat.Hearts)
	return nil
}

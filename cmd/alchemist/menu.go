package main

import (
	"github.com/spf13/cobra"

	"github.com/juan-ignacio-sanchez/the-alchemist/internal/platform/tui"
)

// runMenu shows the main menu in a loop: each run or history visit
// returns to it until the player quits.
func runMenu(cmd *cobra.Command, _ []string) error {
	s, err := openSession(cmd)
	if err != nil {
		return err
	}
	defer s.Close()

	// Fail early on a broken catalog instead of inside the first run.
	cfg, err := loadGameConfig(s.settings)
	if err != nil {
		return err
	}
	levels := cfg.Levels

	difficulty := s.settings.difficulty
	for {
		result, err := tui.RunMenu(s.runtime, difficulty, levels)
		if err != nil {
			return err
		}
		s.runtime.ScreenW = result.Config.ScreenW
		s.runtime.ScreenH = result.Config.ScreenH

		switch result.Choice {
		case tui.ChoicePlay:
			difficulty = result.Difficulty
			if err := s.play(difficulty); err != nil {
				return err
			}
		case tui.ChoiceHistory:
			back, err := tui.RunHistory(s.store, s.runtime.ScreenW, s.runtime.ScreenH)
			if err != nil {
				return err
			}
			if !back {
				return nil
			}
		default:
			return nil
		}
	}
}

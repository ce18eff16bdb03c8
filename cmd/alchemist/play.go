package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/juan-ignacio-sanchez/the-alchemist/internal/audio"
	"github.com/juan-ignacio-sanchez/the-alchemist/internal/config"
	"github.com/juan-ignacio-sanchez/the-alchemist/internal/core"
	"github.com/juan-ignacio-sanchez/the-alchemist/internal/games/alchemist"
	"github.com/juan-ignacio-sanchez/the-alchemist/internal/platform/tui"
	"github.com/juan-ignacio-sanchez/the-alchemist/internal/registry"
	"github.com/juan-ignacio-sanchez/the-alchemist/internal/storage"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Start a run",
	Long: `Start a run from the first level.

Controls:
  WASD/Arrows - Walk
  Space       - Swing the sword (after a blue potion)
  P           - Pause
  R           - Restart the level (a new run once stopped)
  Esc         - End the run
  Q/Ctrl+C    - Quit
  Ctrl+S      - Save a screenshot

Potions:
  green - just a potion
  red   - a new enemy appears behind you
  blue  - your sword wakes up

Examples:
  alchemist play
  alchemist play --difficulty hard
  alchemist play --seed 42 --mute
  alchemist play --config ./my-levels.yaml`,
	Args: cobra.NoArgs,
	RunE: runPlay,
}

// session bundles what a run needs besides the game.
type session struct {
	settings settings
	logger   *log.Logger
	closeLog func()
	store    *storage.Store
	runtime  core.RuntimeConfig
}

// openSession resolves settings, the logger and the run history store.
func openSession(cmd *cobra.Command) (*session, error) {
	s, err := resolveSettings(cmd)
	if err != nil {
		return nil, err
	}
	logger, closeLog, err := newLogger(s)
	if err != nil {
		return nil, err
	}

	store, err := storage.Open(s.dbPath)
	if err != nil {
		// The game still works without history.
		logger.Warn("run history unavailable", "error", err)
		fmt.Fprintf(os.Stderr, "Warning: could not open run history: %v\n", err)
		store = nil
	}

	width, height := 80, 24
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width, height = w, h
	}

	return &session{
		settings: s,
		logger:   logger,
		closeLog: closeLog,
		store:    store,
		runtime: core.RuntimeConfig{
			ScreenW:  width,
			ScreenH:  height,
			TickRate: s.fps,
			Seed:     s.seed,
		},
	}, nil
}

func (s *session) Close() {
	if s.store != nil {
		s.store.Close()
	}
	s.closeLog()
}

// play runs one game session until the player quits.
func (s *session) play(difficulty config.DifficultyPreset) error {
	st := s.settings
	st.difficulty = difficulty
	cfg, err := loadGameConfig(st)
	if err != nil {
		return err
	}

	sound := audio.New(cfg.Audio, s.logger)
	defer audio.Close(sound)

	alchemist.Configure(cfg, alchemist.WithAudio(sound), alchemist.WithLogger(s.logger))
	game, err := registry.Create(alchemist.ID)
	if err != nil {
		return err
	}

	s.logger.Info("session started", "difficulty", difficulty, "levels", len(cfg.Levels), "seed", s.runtime.Seed)
	err = tui.Run(game, s.store, s.runtime, tui.Options{
		HoldTimeout: cfg.Input.HoldTimeout,
		Difficulty:  string(difficulty),
		Logger:      s.logger,
	})
	s.logger.Info("session ended")
	return err
}

func runPlay(cmd *cobra.Command, _ []string) error {
	s, err := openSession(cmd)
	if err != nil {
		return err
	}
	defer s.Close()
	return s.play(s.settings.difficulty)
}

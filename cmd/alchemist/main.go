// alchemist runs The Alchemist in the terminal.
//
// Usage:
//
//	alchemist                - Start the main menu
//	alchemist play           - Start a run right away
//	alchemist scores         - Show the run history
//	alchemist levels         - List the level catalog
//
// Global flags:
//
//	--fps <rate>          - Set tick rate (default: 60)
//	--seed <value>        - Set RNG seed for reproducible runs
//	--db <path>           - Set database path (default: ~/.alchemist/runs.db)
//	--config <path>       - Load tuning and levels from a YAML file
//	--difficulty <name>   - easy, normal or hard
//	--mute                - Play without sound
//	--log-file <path>     - Write logs to a file (default: no logs)
//	--log-level <level>   - debug, info, warn or error
//
// Every flag can also be set with an ALCHEMIST_* environment variable or
// in a .env file; flags win.
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/juan-ignacio-sanchez/the-alchemist/internal/config"
)

const defaultDBPath = "~/.alchemist/runs.db"

var (
	// Global flags
	flagFPS        int
	flagSeed       int64
	flagDBPath     string
	flagConfig     string
	flagDifficulty string
	flagMute       bool
	flagLogFile    string
	flagLogLevel   string
)

// settings is the merged result of environment and flags.
type settings struct {
	env        config.Env
	fps        int
	seed       int64
	dbPath     string
	configPath string
	difficulty config.DifficultyPreset
	mute       bool
	logFile    string
	logLevel   string
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "alchemist",
	Short: "The Alchemist - collect potions, flee the monsters",
	Long: `The Alchemist is a top-down arcade game for the terminal.

Walk the arena, pick up potions and stay away from the creatures that
chase you. Each level asks for a number of potions; clear them all to keep
your home safe.

Available commands:
  play     - Start a run right away
  scores   - Show the run history
  levels   - List the level catalog

Running without a command opens the main menu.`,
	SilenceUsage: true,
	RunE:         runMenu,
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", defaultDBPath, "Path to the run history database")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to a custom tuning/level YAML")
	rootCmd.PersistentFlags().StringVar(&flagDifficulty, "difficulty", "normal", "Difficulty preset: easy, normal, hard")
	rootCmd.PersistentFlags().BoolVar(&flagMute, "mute", false, "Disable sound")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Append logs to this file")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(levelsCmd)
}

// resolveSettings merges the environment with the flags the user set.
func resolveSettings(cmd *cobra.Command) (settings, error) {
	e, err := config.LoadEnv()
	if err != nil {
		return settings{}, err
	}

	s := settings{
		env:        e,
		fps:        e.FPS,
		seed:       e.Seed,
		dbPath:     e.DBPath,
		configPath: e.ConfigPath,
		mute:       e.Mute,
		logFile:    e.LogFile,
		logLevel:   e.LogLevel,
	}
	difficulty := e.Difficulty

	flags := cmd.Flags()
	if flags.Changed("fps") {
		s.fps = flagFPS
	}
	if flags.Changed("seed") {
		s.seed = flagSeed
	}
	if flags.Changed("db") || s.dbPath == "" {
		s.dbPath = flagDBPath
	}
	if flags.Changed("config") {
		s.configPath = flagConfig
	}
	if flags.Changed("difficulty") {
		difficulty = flagDifficulty
	}
	if flags.Changed("mute") {
		s.mute = flagMute
	}
	if flags.Changed("log-file") {
		s.logFile = flagLogFile
	}
	if flags.Changed("log-level") || s.logLevel == "" {
		s.logLevel = flagLogLevel
	}

	if s.fps <= 0 {
		return settings{}, fmt.Errorf("fps must be positive, got %d", s.fps)
	}
	if s.difficulty, err = config.ParsePreset(difficulty); err != nil {
		return settings{}, err
	}
	return s, nil
}

// newLogger builds the file logger. The terminal belongs to the game, so
// without a log file everything is discarded.
func newLogger(s settings) (*log.Logger, func(), error) {
	if s.logFile == "" {
		return log.New(io.Discard), func() {}, nil
	}
	level, err := log.ParseLevel(s.logLevel)
	if err != nil {
		return nil, nil, fmt.Errorf("invalid log level %q: %w", s.logLevel, err)
	}
	f, err := os.OpenFile(s.logFile, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		return nil, nil, fmt.Errorf("cannot open log file: %w", err)
	}
	logger := log.NewWithOptions(f, log.Options{
		ReportTimestamp: true,
		Prefix:          "alchemist",
		Level:           level,
	})
	return logger, func() { f.Close() }, nil
}

// loadGameConfig loads the tuning and applies difficulty and environment
// overrides.
func loadGameConfig(s settings) (config.AlchemistConfig, error) {
	cfg, err := config.LoadAlchemist(s.configPath)
	if err != nil {
		return config.AlchemistConfig{}, err
	}
	config.ApplyPreset(&cfg, s.difficulty)
	config.ApplyEnv(&cfg, s.env)
	if s.mute {
		cfg.Audio.Enabled = false
	}
	return cfg, nil
}

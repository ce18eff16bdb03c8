package config

import (
	"errors"
	"fmt"
	"io/fs"
	"maps"
	"os"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// Env holds the settings that may come from the environment. Command line
// flags take precedence over these values.
type Env struct {
	FPS        int           `env:"ALCHEMIST_FPS" envDefault:"60"`
	Seed       int64         `env:"ALCHEMIST_SEED"`
	DBPath     string        `env:"ALCHEMIST_DB"`
	ConfigPath string        `env:"ALCHEMIST_CONFIG"`
	Difficulty string        `env:"ALCHEMIST_DIFFICULTY" envDefault:"normal"`
	Mute       bool          `env:"ALCHEMIST_MUTE"`
	LogFile    string        `env:"ALCHEMIST_LOG_FILE"`
	LogLevel   string        `env:"ALCHEMIST_LOG_LEVEL" envDefault:"info"`
	LeaveDelay time.Duration `env:"ALCHEMIST_LEAVE_DELAY"`
}

// DotEnvFile is read by LoadEnv when present in the working directory.
const DotEnvFile = ".env"

// LoadEnv parses an Env from the process environment, falling back to
// values from a .env file in the working directory.
func LoadEnv() (Env, error) {
	return LoadEnvFiles(DotEnvFile)
}

// LoadEnvFiles parses an Env from the given dotenv files and the process
// environment. Later files win over earlier ones and the process
// environment wins over every file. Missing files are skipped.
func LoadEnvFiles(files ...string) (Env, error) {
	vars := make(map[string]string)
	for _, f := range files {
		m, err := godotenv.Read(f)
		if errors.Is(err, fs.ErrNotExist) {
			continue
		}
		if err != nil {
			return Env{}, fmt.Errorf("config: read %s: %w", f, err)
		}
		maps.Copy(vars, m)
	}
	maps.Copy(vars, env.ToMap(os.Environ()))

	var e Env
	if err := env.ParseWithOptions(&e, env.Options{Environment: vars}); err != nil {
		return Env{}, fmt.Errorf("config: parse env: %w", err)
	}
	return e, nil
}

// ApplyEnv copies tuning overrides from the environment into cfg.
func ApplyEnv(cfg *AlchemistConfig, e Env) {
	if e.LeaveDelay > 0 {
		cfg.Timing.LeaveDelay = e.LeaveDelay
	}
	if e.Mute {
		cfg.Audio.Enabled = false
	}
}

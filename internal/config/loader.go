package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// ErrNoLevels is returned when a configuration has an empty level catalog.
var ErrNoLevels = errors.New("config: level catalog is empty")

// Potion colors accepted in level specs.
var PotionColors = []string{"red", "green", "blue"}

// LoadAlchemist loads The Alchemist configuration.
// Search order: customPath -> ~/.alchemist/configs/alchemist.yaml -> ./configs/alchemist.yaml -> embedded default
func LoadAlchemist(customPath string) (AlchemistConfig, error) {
	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return AlchemistConfig{}, fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		cfg, err := Parse(data)
		if err != nil {
			return AlchemistConfig{}, fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		return cfg, nil
	}

	// Try user config directory
	if userCfgPath := userConfigPath("alchemist.yaml"); userCfgPath != "" {
		if data, err := os.ReadFile(userCfgPath); err == nil {
			if cfg, err := Parse(data); err == nil {
				return cfg, nil
			}
		}
	}

	// Try local configs directory
	if data, err := os.ReadFile("configs/alchemist.yaml"); err == nil {
		if cfg, err := Parse(data); err == nil {
			return cfg, nil
		}
	}

	// Use embedded default YAML
	cfg, err := Parse(defaultAlchemistYAML)
	if err != nil {
		return DefaultAlchemistConfig(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

// Parse decodes a YAML document on top of the embedded defaults, so a
// partial file only overrides what it names, then validates the result.
// Lists such as the level catalog are replaced wholesale.
func Parse(data []byte) (AlchemistConfig, error) {
	cfg := embeddedBase()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return AlchemistConfig{}, err
	}
	if err := cfg.Validate(); err != nil {
		return AlchemistConfig{}, err
	}
	return cfg, nil
}

func embeddedBase() AlchemistConfig {
	cfg := DefaultAlchemistConfig()
	if err := yaml.Unmarshal(defaultAlchemistYAML, &cfg); err != nil {
		return DefaultAlchemistConfig()
	}
	return cfg
}

// Validate checks the level catalog against the enemy catalog. Every level
// must name at least one known enemy kind and one known potion color.
func (c AlchemistConfig) Validate() error {
	if len(c.Levels) == 0 {
		return ErrNoLevels
	}
	for i, l := range c.Levels {
		if l.Target <= 0 {
			return fmt.Errorf("config: level %d (%s): target must be positive", i+1, l.Title)
		}
		if len(l.Enemies) == 0 {
			return fmt.Errorf("config: level %d (%s): no enemy kinds allowed", i+1, l.Title)
		}
		for _, name := range l.Enemies {
			if _, ok := c.EnemyKindByName(name); !ok {
				return fmt.Errorf("config: level %d (%s): unknown enemy kind %q", i+1, l.Title, name)
			}
		}
		if len(l.Potions) == 0 {
			return fmt.Errorf("config: level %d (%s): no potion colors allowed", i+1, l.Title)
		}
		for _, color := range l.Potions {
			if !isPotionColor(color) {
				return fmt.Errorf("config: level %d (%s): unknown potion color %q", i+1, l.Title, color)
			}
		}
	}
	return nil
}

func isPotionColor(name string) bool {
	for _, c := range PotionColors {
		if c == name {
			return true
		}
	}
	return false
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".alchemist", "configs", filename)
}

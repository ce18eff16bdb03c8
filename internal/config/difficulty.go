package config

import "fmt"

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
)

// Presets lists the presets from easiest to hardest.
func Presets() []DifficultyPreset {
	return []DifficultyPreset{DifficultyEasy, DifficultyNormal, DifficultyHard}
}

// ParsePreset validates a preset name. The empty string means normal.
func ParsePreset(name string) (DifficultyPreset, error) {
	switch p := DifficultyPreset(name); p {
	case "":
		return DifficultyNormal, nil
	case DifficultyEasy, DifficultyNormal, DifficultyHard:
		return p, nil
	default:
		return "", fmt.Errorf("config: unknown difficulty %q (want easy, normal or hard)", name)
	}
}

// ApplyPreset adjusts combat tuning for a difficulty preset. Normal keeps
// the authored values.
func ApplyPreset(cfg *AlchemistConfig, preset DifficultyPreset) {
	switch preset {
	case DifficultyEasy:
		cfg.Combat.Hearts = 2
		cfg.Combat.RedSpawnDistance *= 2
		cfg.Combat.PickupRatio = 0.85
	case DifficultyHard:
		cfg.Combat.Hearts = 4
		cfg.Combat.PickupRatio = 0.6
		cfg.Physics.PursuitBoost = 4
	}
}

package config

import (
	_ "embed"
	"time"
)

//go:embed defaults/alchemist.yaml
var defaultAlchemistYAML []byte

// DefaultYAML returns the embedded default configuration document.
func DefaultYAML() []byte {
	return defaultAlchemistYAML
}

// DefaultAlchemistConfig returns the hard-coded configuration used when the
// embedded YAML cannot be parsed.
func DefaultAlchemistConfig() AlchemistConfig {
	return AlchemistConfig{
		Arena: ArenaConfig{
			CellWidth:    16,
			CellHeight:   32,
			TopMargin:    70,
			BottomMargin: 20,
		},
		Physics: PhysicsConfig{
			BounceDamping:    0.2,
			PlayerForce:      1.5,
			PlayerFriction:   0.10,
			ParticleFriction: 0.99,
			PursuitMin:       0.005,
			PursuitMax:       0.1,
			PursuitBoost:     3,
		},
		Player: PlayerConfig{
			Width:       72,
			Height:      96,
			StartX:      70,
			StartOffset: 70,
			WalkFrame:   200 * time.Millisecond,
		},
		Weapon: WeaponConfig{
			Width:    60,
			Height:   126,
			MaxAngle: 170,
			BaseStep: 1,
			Ramp:     9,
		},
		Combat: CombatConfig{
			Hearts:           3,
			Invulnerability:  150 * time.Millisecond,
			Knockback:        15,
			PickupRatio:      0.7,
			RedSpawnDistance: 70,
			FreezeNudge:      0.01,
			SpawnX:           -1,
			SpawnY:           60,
		},
		Particles: ParticleConfig{
			PieceSize:   18,
			HurtStride:  4,
			DeathStride: 1,
		},
		Items: ItemConfig{
			Width:  45,
			Height: 55,
			Margin: 100,
		},
		Timing: TimingConfig{
			PauseDebounce:   500 * time.Millisecond,
			RestartDebounce: 500 * time.Millisecond,
			LeaveDelay:      5 * time.Second,
			Transition:      time.Second,
			Banner:          2 * time.Second,
			MusicFade:       2 * time.Second,
		},
		Audio: AudioConfig{
			Enabled:    true,
			Volume:     0.1,
			SampleRate: 44100,
		},
		Input: InputConfig{
			HoldTimeout: 500 * time.Millisecond,
		},
		Enemies: []EnemyKind{
			{Name: "big_troll", Width: 120, Height: 156, Glyph: "T", Color: "orange"},
		},
		Levels: []LevelSpec{
			{Title: "Apprentice", Target: 3, Enemies: []string{"big_troll"}, Potions: []string{"green", "red", "blue"}},
		},
	}
}

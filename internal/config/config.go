// Package config provides YAML-based tuning and level catalog loading for
// The Alchemist, plus difficulty presets and environment overrides.
package config

import "time"

// AlchemistConfig contains every tunable of the simulation. It is loaded once
// and passed by value into the constructors that need it.
type AlchemistConfig struct {
	Arena     ArenaConfig    `yaml:"arena"`
	Physics   PhysicsConfig  `yaml:"physics"`
	Player    PlayerConfig   `yaml:"player"`
	Weapon    WeaponConfig   `yaml:"weapon"`
	Combat    CombatConfig   `yaml:"combat"`
	Particles ParticleConfig `yaml:"particles"`
	Items     ItemConfig     `yaml:"items"`
	Timing    TimingConfig   `yaml:"timing"`
	Audio     AudioConfig    `yaml:"audio"`
	Input     InputConfig    `yaml:"input"`
	Enemies   []EnemyKind    `yaml:"enemies"`
	Levels    []LevelSpec    `yaml:"levels"`
}

// ArenaConfig maps terminal cells to arena units.
type ArenaConfig struct {
	CellWidth    float64 `yaml:"cell_width"`
	CellHeight   float64 `yaml:"cell_height"`
	TopMargin    float64 `yaml:"top_margin"`
	BottomMargin float64 `yaml:"bottom_margin"`
}

// PhysicsConfig defines the force model.
type PhysicsConfig struct {
	BounceDamping    float64 `yaml:"bounce_damping"`
	PlayerForce      float64 `yaml:"player_force"`
	PlayerFriction   float64 `yaml:"player_friction"`
	ParticleFriction float64 `yaml:"particle_friction"`
	PursuitMin       float64 `yaml:"pursuit_min"`
	PursuitMax       float64 `yaml:"pursuit_max"`
	PursuitBoost     float64 `yaml:"pursuit_boost"`
}

// PlayerConfig defines the player sprite and spawn point.
type PlayerConfig struct {
	Width       float64       `yaml:"width"`
	Height      float64       `yaml:"height"`
	StartX      float64       `yaml:"start_x"`
	StartOffset float64       `yaml:"start_offset"` // distance from the bottom edge
	WalkFrame   time.Duration `yaml:"walk_frame"`
}

// WeaponConfig defines the sword and its swing.
type WeaponConfig struct {
	Width    float64 `yaml:"width"`
	Height   float64 `yaml:"height"`
	MaxAngle float64 `yaml:"max_angle"`
	BaseStep float64 `yaml:"base_step"`
	Ramp     float64 `yaml:"ramp"`
}

// CombatConfig defines hit and spawn reactions.
type CombatConfig struct {
	Hearts           int           `yaml:"hearts"`
	Invulnerability  time.Duration `yaml:"invulnerability"`
	Knockback        float64       `yaml:"knockback"`
	PickupRatio      float64       `yaml:"pickup_ratio"`
	RedSpawnDistance float64       `yaml:"red_spawn_distance"`
	FreezeNudge      float64       `yaml:"freeze_nudge"`
	SpawnX           float64       `yaml:"spawn_x"` // negative means right edge
	SpawnY           float64       `yaml:"spawn_y"`
}

// ParticleConfig defines how sprites are sliced into fragments.
type ParticleConfig struct {
	PieceSize   float64 `yaml:"piece_size"`
	HurtStride  int     `yaml:"hurt_stride"`
	DeathStride int     `yaml:"death_stride"`
}

// ItemConfig defines potion sprites and spawn area.
type ItemConfig struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
	Margin float64 `yaml:"margin"`
}

// TimingConfig groups every wall-clock window of the state machine.
type TimingConfig struct {
	PauseDebounce   time.Duration `yaml:"pause_debounce"`
	RestartDebounce time.Duration `yaml:"restart_debounce"`
	LeaveDelay      time.Duration `yaml:"leave_delay"`
	Transition      time.Duration `yaml:"transition"`
	Banner          time.Duration `yaml:"banner"`
	MusicFade       time.Duration `yaml:"music_fade"`
}

// AudioConfig controls the synthesized sound backend.
type AudioConfig struct {
	Enabled    bool    `yaml:"enabled"`
	Volume     float64 `yaml:"volume"` // 0.0 to 1.0
	SampleRate int     `yaml:"sample_rate"`
}

// InputConfig tunes key-up synthesis for terminals without release events.
type InputConfig struct {
	HoldTimeout time.Duration `yaml:"hold_timeout"`
}

// EnemyKind describes one enemy sprite.
type EnemyKind struct {
	Name   string  `yaml:"name"`
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
	Glyph  string  `yaml:"glyph"`
	Color  string  `yaml:"color"`
}

// LevelSpec is one entry of the level catalog.
type LevelSpec struct {
	Title   string   `yaml:"title"`
	Target  int      `yaml:"target"`
	Enemies []string `yaml:"enemies"`
	Potions []string `yaml:"potions"`
}

// EnemyKindByName finds an enemy kind in the catalog.
func (c AlchemistConfig) EnemyKindByName(name string) (EnemyKind, bool) {
	for _, k := range c.Enemies {
		if k.Name == name {
			return k, true
		}
	}
	return EnemyKind{}, false
}

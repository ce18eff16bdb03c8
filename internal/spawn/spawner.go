// Package spawn places new players, enemies and potions in the arena,
// drawing kinds and colors only from what the current level allows.
package spawn

import (
	"errors"
	"fmt"

	"github.com/juan-ignacio-sanchez/the-alchemist/internal/config"
	"github.com/juan-ignacio-sanchez/the-alchemist/internal/entity"
	"github.com/juan-ignacio-sanchez/the-alchemist/internal/level"
	"github.com/juan-ignacio-sanchez/the-alchemist/internal/physics"
)

// ErrEmptyPool is returned when a level allows nothing to spawn.
var ErrEmptyPool = errors.New("spawn: empty pool")

// Spawner creates entities for a w x h arena.
type Spawner struct {
	cfg    config.AlchemistConfig
	w, h   float64
	bounds physics.Bounds
	rng    entity.Rand
}

// New creates a spawner for an arena of the given size.
func New(cfg config.AlchemistConfig, w, h float64, rng entity.Rand) *Spawner {
	return &Spawner{
		cfg: cfg,
		w:   w,
		h:   h,
		bounds: physics.Bounds{
			Min: physics.V(0, cfg.Arena.TopMargin),
			Max: physics.V(w, h-cfg.Arena.BottomMargin),
		},
		rng: rng,
	}
}

// Bounds returns the playable area bodies are kept in.
func (s *Spawner) Bounds() physics.Bounds { return s.bounds }

// Surface returns the whole drawable area.
func (s *Spawner) Surface() physics.Box {
	return physics.BoxAt(physics.V(s.w/2, s.h/2), s.w, s.h)
}

// Player creates the player at its start point near the bottom-left corner.
func (s *Spawner) Player() *entity.Player {
	pos := physics.V(s.cfg.Player.StartX, s.h-s.cfg.Player.StartOffset)
	return entity.NewPlayer(s.cfg, s.bounds.Clamp(pos), s.bounds)
}

// Weapon creates the sword for owner.
func (s *Spawner) Weapon(owner *entity.Player) *entity.Weapon {
	return entity.NewWeapon(s.cfg, owner)
}

// Enemy creates an enemy of a random allowed kind at the entry point on
// the right edge.
func (s *Spawner) Enemy(l *level.Level) (*entity.Enemy, error) {
	x := s.cfg.Combat.SpawnX
	if x < 0 {
		x = s.w
	}
	return s.EnemyAt(l, physics.V(x, s.cfg.Combat.SpawnY))
}

// EnemyAt creates an enemy of a random allowed kind at pos, clamped into
// the arena.
func (s *Spawner) EnemyAt(l *level.Level, pos physics.Vec) (*entity.Enemy, error) {
	if len(l.Enemies) == 0 {
		return nil, fmt.Errorf("%w: level %d (%s) allows no enemy kind", ErrEmptyPool, l.Ordinal, l.Title)
	}
	kind := l.Enemies[s.rng.Intn(len(l.Enemies))]
	return entity.NewEnemy(s.cfg, kind, pos, s.bounds), nil
}

// EnemyBehind creates an enemy trailing the player: it appears where the
// player would be if it walked backwards for a while.
func (s *Spawner) EnemyBehind(l *level.Level, p *entity.Player) (*entity.Enemy, error) {
	pos := p.Pos().Add(p.Body().Vel.Scale(-s.cfg.Combat.RedSpawnDistance))
	return s.EnemyAt(l, pos)
}

// Item creates a potion of a random allowed color at a random position
// away from the arena edges.
func (s *Spawner) Item(l *level.Level) (*entity.Item, error) {
	if len(l.Potions) == 0 {
		return nil, fmt.Errorf("%w: level %d (%s) allows no potion color", ErrEmptyPool, l.Ordinal, l.Title)
	}
	color := l.Potions[s.rng.Intn(len(l.Potions))]
	pos := physics.V(
		s.within(s.cfg.Items.Margin, s.w-s.cfg.Items.Margin),
		s.within(max(s.cfg.Items.Margin, s.bounds.Min.Y), s.h-s.cfg.Items.Margin),
	)
	return entity.NewItem(color, pos, s.cfg.Items.Width, s.cfg.Items.Height), nil
}

func (s *Spawner) within(lo, hi float64) float64 {
	if hi <= lo {
		return (lo + hi) / 2
	}
	return lo + s.rng.Float64()*(hi-lo)
}

// Package combat resolves the contacts of one tick: enemies catching the
// player, the sword hitting enemies, and the player picking up potions.
package combat

import (
	"fmt"
	"time"

	"github.com/juan-ignacio-sanchez/the-alchemist/internal/config"
	"github.com/juan-ignacio-sanchez/the-alchemist/internal/entity"
	"github.com/juan-ignacio-sanchez/the-alchemist/internal/level"
	"github.com/juan-ignacio-sanchez/the-alchemist/internal/spawn"
)

// Report lists what happened during one resolution pass. The game turns it
// into cues, banners and state transitions.
type Report struct {
	PlayerKilled    bool
	Hits            int
	Pickups         []entity.PotionColor
	EnemiesSpawned  int
	Banished        int
	WeaponActivated bool
	LevelWon        bool
}

// Resolver applies combat rules to an entity set.
type Resolver struct {
	combat  config.CombatConfig
	spawner *spawn.Spawner
	rng     entity.Rand
}

// NewResolver creates a resolver that spawns through spawner.
func NewResolver(cfg config.AlchemistConfig, spawner *spawn.Spawner, rng entity.Rand) *Resolver {
	return &Resolver{combat: cfg.Combat, spawner: spawner, rng: rng}
}

// Resolve runs every rule once, in order: the player being caught, sword
// hits, then potion pickups. It only acts while the player is alive.
func (r *Resolver) Resolve(set *entity.Set, l *level.Level, now time.Time) (Report, error) {
	var rep Report
	if set.Player == nil || !set.Player.Alive() {
		return rep, nil
	}

	if r.TryHitPlayer(set) {
		rep.PlayerKilled = true
		return rep, nil
	}
	if set.Weapon != nil {
		rep.Hits = r.TryHitEnemies(set, now)
	}
	if err := r.collect(set, l, now, &rep); err != nil {
		return rep, err
	}
	return rep, nil
}

// TryHitPlayer kills the player if any live enemy overlaps it. Every enemy
// is then frozen in place with a small symmetric drift.
func (r *Resolver) TryHitPlayer(set *entity.Set) bool {
	p := set.Player
	if !p.Alive() {
		return false
	}
	box := p.HitBox()
	caught := false
	for _, e := range set.Enemies {
		if e.Alive() && e.HitBox().Intersects(box) {
			caught = true
			break
		}
	}
	if !caught {
		return false
	}

	p.Kill()
	for _, e := range set.Enemies {
		e.Freeze(r.combat.FreezeNudge)
	}
	return true
}

// TryHitEnemies hurts every enemy the swinging sword overlaps and returns
// the number of hits that landed. Nothing is tested while the sword rests.
func (r *Resolver) TryHitEnemies(set *entity.Set, now time.Time) int {
	w := set.Weapon
	if !w.Armed() {
		return 0
	}
	box := w.HitBox()
	player := set.Player.Pos()
	hits := 0
	for _, e := range set.Enemies {
		if !e.Alive() || !e.HitBox().Intersects(box) {
			continue
		}
		fragments, landed := e.Hurt(player, now, r.rng)
		if landed {
			hits++
			set.AddParticles(fragments)
		}
	}
	return hits
}

func (r *Resolver) collect(set *entity.Set, l *level.Level, now time.Time, rep *Report) error {
	p := set.Player
	box := p.HitBox()

	for _, item := range set.Items {
		if !item.Alive() || !item.PickupBox(r.combat.PickupRatio).Intersects(box) {
			continue
		}
		item.Consume()
		l.Score.Increase(now)
		rep.Pickups = append(rep.Pickups, item.Color)

		if !l.Score.Won() {
			next, err := r.spawner.Item(l)
			if err != nil {
				return fmt.Errorf("combat: respawn potion: %w", err)
			}
			set.AddItem(next)
		}

		switch item.Color {
		case entity.PotionRed:
			e, err := r.spawner.EnemyBehind(l, p)
			if err != nil {
				return fmt.Errorf("combat: red potion: %w", err)
			}
			set.AddEnemy(e)
			rep.EnemiesSpawned++
		case entity.PotionBlue:
			if set.Weapon != nil && !set.Weapon.Active {
				set.Weapon.Activate()
				rep.WeaponActivated = true
			}
		}

		if l.Score.Won() {
			rep.LevelWon = true
			rep.Banished += r.banishAll(set)
			break
		}
	}
	return nil
}

// banishAll kills every enemy, staged ones included, when the level is won.
func (r *Resolver) banishAll(set *entity.Set) int {
	player := set.Player.Pos()
	n := 0
	kill := func(e *entity.Enemy) {
		if e.Alive() {
			set.AddParticles(e.Die(player, r.rng))
			n++
		}
	}
	for _, e := range set.Enemies {
		kill(e)
	}
	set.EachStagedEnemy(kill)
	return n
}

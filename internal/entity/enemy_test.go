package entity

import (
	"math"
	"math/rand"
	"testing"
	"time"

	"github.com/juan-ignacio-sanchez/the-alchemist/internal/config"
	"github.com/juan-ignacio-sanchez/the-alchemist/internal/physics"
)

var t0 = time.Unix(1_700_000_000, 0)

func testEnemy(pos physics.Vec) *Enemy {
	cfg := config.DefaultAlchemistConfig()
	kind, _ := cfg.EnemyKindByName("big_troll")
	return NewEnemy(cfg, kind, pos, physics.ArenaBounds(1280, 768))
}

func TestEnemyHurtDebounce(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	e := testEnemy(physics.V(600, 400))
	player := physics.V(500, 400)

	if _, landed := e.Hurt(player, t0, rng); !landed {
		t.Fatal("first hit should land")
	}
	if _, landed := e.Hurt(player, t0.Add(149*time.Millisecond), rng); landed {
		t.Error("hit inside the invulnerability window should be ignored")
	}
	if e.Hearts != 2 {
		t.Errorf("hearts = %d, expected 2", e.Hearts)
	}
}

func TestEnemyHurtPushesAway(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	e := testEnemy(physics.V(600, 400))
	e.Body().Vel = physics.V(-3, 2)

	fragments, landed := e.Hurt(physics.V(500, 400), t0, rng)
	if !landed {
		t.Fatal("hit should land")
	}
	if len(fragments) == 0 {
		t.Error("a landed hit should chip fragments off the sprite")
	}
	if e.Image != ImageHurt {
		t.Errorf("image state = %v, expected hurt", e.Image)
	}

	e.Body().Integrate()
	if v := e.Body().Vel; v.X != 15 || v.Y != 0 {
		t.Errorf("velocity after knockback = %v, expected (15, 0)", v)
	}
}

// Hits at 0, 100, 200 and 400 ms: the 100 ms hit falls inside the window
// of the first one, the other three land and the enemy dies once its last
// window lapses.
func TestEnemyHitSequenceKills(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	e := testEnemy(physics.V(600, 400))
	player := physics.V(500, 400)

	for _, ms := range []int{0, 100, 200} {
		e.Hurt(player, t0.Add(time.Duration(ms)*time.Millisecond), rng)
	}
	if e.Hearts != 1 {
		t.Fatalf("hearts after 0/100/200 ms = %d, expected 1 (two lost)", e.Hearts)
	}

	if _, landed := e.Hurt(player, t0.Add(400*time.Millisecond), rng); !landed {
		t.Fatal("hit at 400 ms should land")
	}
	if e.Hearts != 0 {
		t.Fatalf("hearts = %d, expected 0", e.Hearts)
	}

	fragments, _ := e.Update(player, t0.Add(450*time.Millisecond), rng)
	if fragments != nil || !e.Alive() {
		t.Fatal("enemy should not die inside its invulnerability window")
	}

	fragments, _ = e.Update(player, t0.Add(600*time.Millisecond), rng)
	if e.Alive() {
		t.Fatal("enemy should die once the window lapses")
	}
	if len(fragments) == 0 {
		t.Error("death should produce particles")
	}
}

func TestEnemyImageStateRecovers(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	e := testEnemy(physics.V(600, 400))
	player := physics.V(100, 400)
	e.Hurt(player, t0, rng)

	e.Update(player, t0.Add(100*time.Millisecond), rng)
	if e.Image != ImageHurt {
		t.Errorf("image = %v, expected hurt during the window", e.Image)
	}
	e.Update(player, t0.Add(200*time.Millisecond), rng)
	if e.Image != ImageReturningToNormal {
		t.Errorf("image = %v, expected returning to normal", e.Image)
	}
	e.Update(player, t0.Add(216*time.Millisecond), rng)
	if e.Image != ImageNormal {
		t.Errorf("image = %v, expected normal", e.Image)
	}
}

func TestEnemyPursuitForceClamped(t *testing.T) {
	for _, d := range []float64{1, 100, 100000} {
		e := testEnemy(physics.V(0, 0))
		e.Body().Pos = physics.V(0, 0)
		f := e.PursuitForce(physics.V(d, 0))
		if m := f.Len(); m < 0.005-1e-12 || m > 0.1+1e-12 {
			t.Errorf("distance %g: force magnitude %f outside [0.005, 0.1]", d, m)
		}
		if f.X <= 0 {
			t.Errorf("distance %g: force %v should point at the target", d, f)
		}
	}

	e := testEnemy(physics.V(0, 0))
	e.Body().Pos = physics.V(0, 0)
	if m := e.PursuitForce(physics.V(0.001, 0)).Len(); math.Abs(m-0.005) > 1e-12 {
		t.Errorf("very close target: magnitude %f, expected 0.005", m)
	}
}

func TestEnemyPursuitBoostWhenMovingAway(t *testing.T) {
	e := testEnemy(physics.V(600, 400))
	e.Body().Vel = physics.V(-1, 0)
	f := e.PursuitForce(physics.V(900, 400))
	if m := f.Len(); math.Abs(m-0.3) > 1e-9 {
		t.Errorf("boosted magnitude = %f, expected 0.3", m)
	}
}

func TestEnemyFreeze(t *testing.T) {
	e := testEnemy(physics.V(600, 400))
	e.Body().Vel = physics.V(4, -2)
	e.Freeze(0.01)
	if !e.Body().Vel.IsZero() {
		t.Errorf("frozen velocity = %v, expected zero", e.Body().Vel)
	}
	if e.Body().Force.IsZero() {
		t.Error("frozen enemy should keep a small drift force")
	}
}

func TestEnemyDieOnce(t *testing.T) {
	rng := rand.New(rand.NewSource(3))
	e := testEnemy(physics.V(600, 400))
	if len(e.Die(physics.V(0, 0), rng)) == 0 {
		t.Error("first death should produce particles")
	}
	if e.Die(physics.V(0, 0), rng) != nil {
		t.Error("second death should be a no-op")
	}
}

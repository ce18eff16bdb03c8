package spawn

import (
	"errors"
	"math/rand"
	"testing"

	"github.com/juan-ignacio-sanchez/the-alchemist/internal/config"
	"github.com/juan-ignacio-sanchez/the-alchemist/internal/entity"
	"github.com/juan-ignacio-sanchez/the-alchemist/internal/level"
	"github.com/juan-ignacio-sanchez/the-alchemist/internal/physics"
)

func setup(t *testing.T) (*Spawner, *level.Level) {
	t.Helper()
	cfg, err := config.Parse(config.DefaultYAML())
	if err != nil {
		t.Fatal(err)
	}
	first, err := level.NewChain(cfg)
	if err != nil {
		t.Fatal(err)
	}
	return New(cfg, 1280, 768, rand.New(rand.NewSource(42))), first
}

func TestItemsComeFromAllowedColors(t *testing.T) {
	s, first := setup(t)
	blacksmith := first.Next

	for i := 0; i < 50; i++ {
		item, err := s.Item(blacksmith)
		if err != nil {
			t.Fatal(err)
		}
		if item.Color != entity.PotionBlue {
			t.Fatalf("Blacksmith spawned a %s potion", item.Color)
		}
		if item.Pos.X < 100 || item.Pos.X > 1180 || item.Pos.Y < 100 || item.Pos.Y > 668 {
			t.Fatalf("potion at %v outside the safe margin", item.Pos)
		}
	}
}

func TestEnemiesComeFromAllowedKinds(t *testing.T) {
	s, first := setup(t)
	allowed := map[string]bool{}
	for _, k := range first.Enemies {
		allowed[k.Name] = true
	}

	for i := 0; i < 50; i++ {
		e, err := s.Enemy(first)
		if err != nil {
			t.Fatal(err)
		}
		if !allowed[e.Spec.Name] {
			t.Fatalf("spawned %q, not allowed on %s", e.Spec.Name, first.Title)
		}
		if !s.Bounds().Contains(e.Pos()) {
			t.Fatalf("enemy spawned outside the arena at %v", e.Pos())
		}
		if e.Facing != entity.FacingWest {
			t.Error("enemies enter facing west")
		}
	}
}

func TestEmptyPoolIsAnError(t *testing.T) {
	s, first := setup(t)
	broken := *first
	broken.Enemies = nil
	broken.Potions = nil

	if _, err := s.Enemy(&broken); !errors.Is(err, ErrEmptyPool) {
		t.Errorf("Enemy() error = %v, expected ErrEmptyPool", err)
	}
	if _, err := s.Item(&broken); !errors.Is(err, ErrEmptyPool) {
		t.Errorf("Item() error = %v, expected ErrEmptyPool", err)
	}
}

func TestEnemyBehindPlayer(t *testing.T) {
	s, first := setup(t)
	p := s.Player()
	p.Body().Pos = physics.V(600, 400)
	p.Body().Vel = physics.V(-1, 0)

	e, err := s.EnemyBehind(first, p)
	if err != nil {
		t.Fatal(err)
	}
	if e.Pos() != physics.V(670, 400) {
		t.Errorf("enemy at %v, expected (670, 400)", e.Pos())
	}
}

func TestPlayerStartsBottomLeft(t *testing.T) {
	s, _ := setup(t)
	p := s.Player()
	if p.Pos() != physics.V(70, 698) {
		t.Errorf("player starts at %v, expected (70, 698)", p.Pos())
	}
}

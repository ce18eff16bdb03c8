package entity

import (
	"math/rand"
	"testing"

	"github.com/juan-ignacio-sanchez/the-alchemist/internal/physics"
)

func TestSetStagesUntilSweep(t *testing.T) {
	var s Set
	e := testEnemy(physics.V(600, 400))
	s.AddEnemy(e)
	s.AddItem(NewItem(PotionRed, physics.V(100, 100), 45, 55))

	if len(s.Enemies) != 0 || len(s.Items) != 0 {
		t.Fatal("staged entities should not be visible before Sweep")
	}
	if s.LiveEnemies() != 1 || s.LiveItems() != 1 {
		t.Error("live counts should include staged entities")
	}

	s.Sweep()
	if len(s.Enemies) != 1 || len(s.Items) != 1 {
		t.Fatalf("Sweep should admit staged entities, got %d enemies %d items", len(s.Enemies), len(s.Items))
	}

	e.Die(physics.V(0, 0), rand.New(rand.NewSource(1)))
	if len(s.Enemies) != 1 {
		t.Error("a dead enemy should stay visible until the end of the tick")
	}
	s.Sweep()
	if len(s.Enemies) != 0 {
		t.Error("Sweep should drop dead enemies")
	}
}

func TestSetEachDrawOrder(t *testing.T) {
	var s Set
	s.Player = testPlayer()
	s.Items = []*Item{NewItem(PotionGreen, physics.V(1, 1), 1, 1)}
	s.Enemies = []*Enemy{testEnemy(physics.V(600, 400))}

	var kinds []Kind
	s.Each(func(e Entity) { kinds = append(kinds, e.Kind()) })

	want := []Kind{KindItem, KindEnemy, KindPlayer}
	if len(kinds) != len(want) {
		t.Fatalf("visited %v, expected %v", kinds, want)
	}
	for i := range want {
		if kinds[i] != want[i] {
			t.Errorf("visit %d = %v, expected %v", i, kinds[i], want[i])
		}
	}
}

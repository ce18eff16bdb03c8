package level

import (
	"strings"
	"testing"
	"time"

	"github.com/juan-ignacio-sanchez/the-alchemist/internal/config"
	"github.com/juan-ignacio-sanchez/the-alchemist/internal/entity"
)

func loadCatalog(t *testing.T) config.AlchemistConfig {
	t.Helper()
	cfg, err := config.Parse(config.DefaultYAML())
	if err != nil {
		t.Fatalf("default config: %v", err)
	}
	return cfg
}

func TestNewChainFromCatalog(t *testing.T) {
	first, err := NewChain(loadCatalog(t))
	if err != nil {
		t.Fatalf("NewChain: %v", err)
	}
	if first.Len() != 9 {
		t.Errorf("chain length = %d, expected 9", first.Len())
	}

	second := first.Next
	if second.Ordinal != 2 || second.Title != "Blacksmith" {
		t.Errorf("second level = %d %q", second.Ordinal, second.Title)
	}
	if len(second.Potions) != 1 || second.Potions[0] != entity.PotionBlue {
		t.Errorf("Blacksmith potions = %v, expected [blue]", second.Potions)
	}
	if len(second.Enemies) != 2 || second.Enemies[1].Name != "blood_crying" {
		t.Errorf("Blacksmith enemies = %+v", second.Enemies)
	}

	last := first
	for !last.IsFinal() {
		last = last.Next
	}
	if last.Title != "This is Hell" {
		t.Errorf("final level = %q", last.Title)
	}
}

func TestNewChainRejectsEmptyPools(t *testing.T) {
	cfg := loadCatalog(t)
	cfg.Levels = append([]config.LevelSpec(nil), cfg.Levels...)
	cfg.Levels[2].Enemies = nil

	_, err := NewChain(cfg)
	if err == nil || !strings.Contains(err.Error(), "no enemy kinds") {
		t.Errorf("NewChain = %v, expected an empty enemy pool error", err)
	}
}

func TestLevelPhases(t *testing.T) {
	first, err := NewChain(loadCatalog(t))
	if err != nil {
		t.Fatal(err)
	}
	l := first

	if l.Phase() != PhaseNotStarted {
		t.Fatalf("initial phase = %v", l.Phase())
	}
	if l.MarkWon() || l.ClaimAnnounce() {
		t.Fatal("a level that has not started cannot be won")
	}

	l.Start(t0)
	if l.Phase() != PhaseAnnounced || !l.BannerVisible(t0.Add(time.Second)) {
		t.Fatal("started level should show its banner")
	}
	if l.BannerVisible(t0.Add(2 * time.Second)) {
		t.Error("banner should hide after 2s")
	}
	if a, b := l.Banner(); a != "Level 1" || b != "Apprentice" {
		t.Errorf("banner = %q / %q", a, b)
	}

	if l.MarkWon() {
		t.Fatal("MarkWon before the target should be a no-op")
	}
	for i := 0; i < l.Score.Target; i++ {
		l.Score.Increase(t0)
	}
	if !l.MarkWon() || l.Phase() != PhaseWon {
		t.Fatal("level should be won")
	}
	if !l.ClaimAnnounce() {
		t.Fatal("first announce claim should succeed")
	}
	if l.ClaimAnnounce() {
		t.Error("announce must fire only once")
	}
	if l.Phase() != PhaseTransitioning {
		t.Errorf("phase = %v, expected transitioning", l.Phase())
	}

	l.Reset()
	if l.Phase() != PhaseNotStarted || l.Score.Value != 0 {
		t.Error("Reset should rewind the level")
	}
}

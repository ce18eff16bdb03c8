// Package level models the progression chain: each level carries its score
// target, the enemy kinds and potion colors it allows, and a small phase
// state machine that makes its one-shot announcements auditable.
package level

import (
	"fmt"
	"time"

	"github.com/juan-ignacio-sanchez/the-alchemist/internal/config"
	"github.com/juan-ignacio-sanchez/the-alchemist/internal/entity"
)

// Phase is the lifecycle of a level within a run.
type Phase int

const (
	// PhaseNotStarted: the level has not been entered yet.
	PhaseNotStarted Phase = iota
	// PhaseAnnounced: the level was entered and its title banner shown.
	PhaseAnnounced
	// PhaseWon: the score target was reached.
	PhaseWon
	// PhaseTransitioning: the win cue fired; waiting for the leave delay.
	PhaseTransitioning
)

// String returns a human-readable name for the phase.
func (p Phase) String() string {
	switch p {
	case PhaseNotStarted:
		return "not-started"
	case PhaseAnnounced:
		return "announced"
	case PhaseWon:
		return "won"
	case PhaseTransitioning:
		return "transitioning"
	default:
		return "unknown"
	}
}

// Level is one node of the progression chain.
type Level struct {
	Title   string
	Ordinal int
	Enemies []config.EnemyKind
	Potions []entity.PotionColor
	Next    *Level
	Score   *ScoreTracker

	phase     Phase
	startedAt time.Time
	banner    time.Duration
}

// Phase returns the level's lifecycle phase.
func (l *Level) Phase() Phase { return l.phase }

// IsFinal reports whether the level ends the chain.
func (l *Level) IsFinal() bool { return l.Next == nil }

// Start enters the level: the score is cleared and the title banner begins.
func (l *Level) Start(now time.Time) {
	l.Score.Reset()
	l.phase = PhaseAnnounced
	l.startedAt = now
}

// BannerVisible reports whether the title banner is still on screen.
func (l *Level) BannerVisible(now time.Time) bool {
	return l.phase != PhaseNotStarted && now.Sub(l.startedAt) < l.banner
}

// Banner returns the two lines of the level title banner.
func (l *Level) Banner() (string, string) {
	return fmt.Sprintf("Level %d", l.Ordinal), l.Title
}

// MarkWon moves an announced level to Won once its target is reached.
// It reports whether the phase changed.
func (l *Level) MarkWon() bool {
	if l.phase != PhaseAnnounced || !l.Score.Won() {
		return false
	}
	l.phase = PhaseWon
	return true
}

// ClaimAnnounce moves a won level to Transitioning. It returns true exactly
// once per level run, for the caller to fire the win cue.
func (l *Level) ClaimAnnounce() bool {
	if l.phase != PhaseWon {
		return false
	}
	l.phase = PhaseTransitioning
	return true
}

// Reset returns the level to NotStarted with an empty score.
func (l *Level) Reset() {
	l.Score.Reset()
	l.phase = PhaseNotStarted
	l.startedAt = time.Time{}
}

// NewChain builds the linked level chain from the catalog. A level that
// allows no enemy kind or no potion color is rejected here, before play.
func NewChain(cfg config.AlchemistConfig) (*Level, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("level: %w", err)
	}

	var first, prev *Level
	for i, spec := range cfg.Levels {
		l := &Level{
			Title:   spec.Title,
			Ordinal: i + 1,
			Score:   NewScoreTracker(spec.Target, cfg.Timing.LeaveDelay, cfg.Timing.Transition),
			banner:  cfg.Timing.Banner,
		}
		for _, name := range spec.Enemies {
			kind, _ := cfg.EnemyKindByName(name)
			l.Enemies = append(l.Enemies, kind)
		}
		for _, c := range spec.Potions {
			l.Potions = append(l.Potions, entity.PotionColor(c))
		}

		if prev == nil {
			first = l
		} else {
			prev.Next = l
		}
		prev = l
	}
	return first, nil
}

// Len counts the levels from l to the end of the chain.
func (l *Level) Len() int {
	n := 0
	for cur := l; cur != nil; cur = cur.Next {
		n++
	}
	return n
}

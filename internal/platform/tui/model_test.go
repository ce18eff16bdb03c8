package tui

import (
	"path/filepath"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/juan-ignacio-sanchez/the-alchemist/internal/core"
	"github.com/juan-ignacio-sanchez/the-alchemist/internal/storage"
)

// scriptedGame reports whatever state the test sets.
type scriptedGame struct {
	state  core.GameState
	resets int
	frames []core.InputFrame
}

func (g *scriptedGame) ID() string    { return "scripted" }
func (g *scriptedGame) Title() string { return "Scripted" }

func (g *scriptedGame) Reset(core.RuntimeConfig) {
	g.resets++
	g.state = core.GameState{Level: 1}
}

func (g *scriptedGame) Step(in core.InputFrame) core.StepResult {
	g.frames = append(g.frames, in)
	return core.StepResult{State: g.state}
}

func (g *scriptedGame) Render(dst *core.Screen) { dst.DrawText(0, 0, "scripted") }
func (g *scriptedGame) State() core.GameState   { return g.state }

func openStore(t *testing.T) *storage.Store {
	t.Helper()
	store, err := storage.Open(filepath.Join(t.TempDir(), "runs.db"))
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func tick(m Model, at time.Time) Model {
	next, _ := m.handleTick(at)
	return next.(Model)
}

func TestModelSavesFinishedRunOnce(t *testing.T) {
	store := openStore(t)
	game := &scriptedGame{}
	m := NewModel(game, store, core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 60, Seed: 7}, Options{Difficulty: "hard"})
	m.Init()

	start := time.Unix(1000, 0)
	m = tick(m, start)

	game.state = core.GameState{Level: 3, Score: 12, GameOver: true, Outcome: core.OutcomeKilled}
	for i := 1; i <= 5; i++ {
		m = tick(m, start.Add(time.Duration(i)*time.Second/60))
	}

	runs, err := store.RecentRuns(10)
	if err != nil {
		t.Fatalf("RecentRuns failed: %v", err)
	}
	if len(runs) != 1 {
		t.Fatalf("saved %d runs, want 1", len(runs))
	}
	r := runs[0]
	if r.Outcome != core.OutcomeKilled || r.Level != 3 || r.Potions != 12 {
		t.Errorf("saved run = %+v", r)
	}
	if r.Difficulty != "hard" || r.Seed != 7 {
		t.Errorf("difficulty/seed = %q/%d, want hard/7", r.Difficulty, r.Seed)
	}

	// A new run that ends again is recorded separately.
	game.state = core.GameState{Level: 1}
	m = tick(m, start.Add(time.Second))
	game.state = core.GameState{Level: 1, Score: 2, GameOver: true, Outcome: core.OutcomeQuit}
	tick(m, start.Add(2*time.Second))

	runs, _ = store.RecentRuns(10)
	if len(runs) != 2 {
		t.Errorf("saved %d runs after a second run, want 2", len(runs))
	}
}

func TestModelPassesFrameTime(t *testing.T) {
	game := &scriptedGame{}
	m := NewModel(game, nil, core.DefaultConfig(), Options{HoldTimeout: 500 * time.Millisecond})
	m.Init()

	at := time.Unix(2000, 0)
	next, _ := m.handleKey(runeKey("d"))
	m = next.(Model)
	tick(m, at)

	if len(game.frames) != 1 {
		t.Fatalf("got %d frames, want 1", len(game.frames))
	}
	f := game.frames[0]
	if !f.Time.Equal(at) {
		t.Errorf("frame time = %v, want %v", f.Time, at)
	}
	if !f.Actions[core.ActionRight] || !f.Held[core.ActionRight] {
		t.Errorf("d should press and hold Right, got %+v", f)
	}
}

func TestModelResizeRestarts(t *testing.T) {
	game := &scriptedGame{}
	m := NewModel(game, nil, core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 60}, Options{})
	m.Init()

	next, _ := m.Update(tea.WindowSizeMsg{Width: 80, Height: 24})
	m = next.(Model)
	if game.resets != 1 {
		t.Errorf("same size should not restart, resets = %d", game.resets)
	}

	next, _ = m.Update(tea.WindowSizeMsg{Width: 100, Height: 30})
	m = next.(Model)
	if game.resets != 2 {
		t.Errorf("new size should restart, resets = %d", game.resets)
	}
	if m.screen.Width() != 100 || m.screen.Height() != 30 {
		t.Errorf("screen = %dx%d, want 100x30", m.screen.Width(), m.screen.Height())
	}
}

func TestModelGameOverHint(t *testing.T) {
	game := &scriptedGame{}
	m := NewModel(game, nil, core.DefaultConfig(), Options{})
	m.Init()

	game.state = core.GameState{Level: 9, Score: 80, GameOver: true, Outcome: core.OutcomeWon}
	m = tick(m, time.Unix(3000, 0))

	if view := m.View(); !strings.Contains(view, "Run over (won) with 80 potions") {
		t.Errorf("view missing game over hint:\n%s", view)
	}
}

func TestModelQuit(t *testing.T) {
	m := NewModel(&scriptedGame{}, nil, core.DefaultConfig(), Options{})

	next, cmd := m.handleKey(runeKey("q"))
	if cmd == nil {
		t.Fatal("q should return tea.Quit")
	}
	if next.(Model).View() != "" {
		t.Error("view should be empty after quitting")
	}
}

package alchemist

import (
	"strings"
	"testing"
	"time"

	"github.com/juan-ignacio-sanchez/the-alchemist/internal/config"
	"github.com/juan-ignacio-sanchez/the-alchemist/internal/core"
	"github.com/juan-ignacio-sanchez/the-alchemist/internal/entity"
	"github.com/juan-ignacio-sanchez/the-alchemist/internal/level"
	"github.com/juan-ignacio-sanchez/the-alchemist/internal/physics"
)

// recordingAudio remembers every request in order.
type recordingAudio struct {
	calls []string
}

func (a *recordingAudio) record(op string, c core.Cue) { a.calls = append(a.calls, op+":"+string(c)) }

func (a *recordingAudio) Play(c core.Cue)                     { a.record("play", c) }
func (a *recordingAudio) Loop(c core.Cue)                     { a.record("loop", c) }
func (a *recordingAudio) Stop(c core.Cue)                     { a.record("stop", c) }
func (a *recordingAudio) FadeOut(c core.Cue, _ time.Duration) { a.record("fade", c) }
func (a *recordingAudio) Pause()                              { a.calls = append(a.calls, "pause") }
func (a *recordingAudio) Resume()                             { a.calls = append(a.calls, "resume") }

func (a *recordingAudio) count(call string) int {
	n := 0
	for _, c := range a.calls {
		if c == call {
			n++
		}
	}
	return n
}

var epoch = time.Unix(1_000, 0)

func runtimeConfig() core.RuntimeConfig {
	return core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 60, Seed: 42}
}

func levelsConfig(specs ...config.LevelSpec) config.AlchemistConfig {
	cfg := config.DefaultAlchemistConfig()
	cfg.Levels = specs
	return cfg
}

func greenLevel(title string, target int) config.LevelSpec {
	return config.LevelSpec{Title: title, Target: target, Enemies: []string{"big_troll"}, Potions: []string{"green"}}
}

func newGame(t *testing.T, cfg config.AlchemistConfig) (*Game, *recordingAudio) {
	t.Helper()
	audio := &recordingAudio{}
	g := New(cfg, WithAudio(audio))
	g.Reset(runtimeConfig())
	if err := g.Err(); err != nil {
		t.Fatalf("Reset failed: %v", err)
	}
	return g, audio
}

func step(g *Game, at time.Duration, actions ...core.Action) {
	in := core.NewInputFrame(epoch.Add(at))
	for _, a := range actions {
		in.Set(a)
	}
	g.Step(in)
}

// pickupUnderPlayer moves every potion onto the player.
func pickupUnderPlayer(g *Game) {
	for _, item := range g.set.Items {
		item.Pos = g.set.Player.Pos()
	}
}

func TestDeterminism(t *testing.T) {
	g1, _ := newGame(t, config.DefaultAlchemistConfig())
	g2, _ := newGame(t, config.DefaultAlchemistConfig())

	for i := 0; i < 300; i++ {
		var actions []core.Action
		switch {
		case i < 60:
			actions = append(actions, core.ActionUp)
		case i < 120:
			actions = append(actions, core.ActionRight)
		}
		if i%45 == 0 {
			actions = append(actions, core.ActionAttack)
		}
		at := time.Duration(i) * time.Second / 60
		step(g1, at, actions...)
		step(g2, at, actions...)
	}

	if s1, s2 := g1.Snapshot(), g2.Snapshot(); s1 != s2 {
		t.Errorf("Snapshots diverged:\n%+v\n%+v", s1, s2)
	}
}

func TestStartPopulatesLevel(t *testing.T) {
	g, audio := newGame(t, config.DefaultAlchemistConfig())
	step(g, 0)

	s := g.Snapshot()
	if s.Status != StatusRunning {
		t.Errorf("Expected running, got %v", s.Status)
	}
	if s.Level != 1 || s.Target != 3 {
		t.Errorf("Expected level 1 with target 3, got level %d target %d", s.Level, s.Target)
	}
	if s.Enemies != 1 || s.Items != 1 {
		t.Errorf("Expected one enemy and one potion, got %d and %d", s.Enemies, s.Items)
	}
	if !s.Alive || s.Armed {
		t.Errorf("Expected a living unarmed player, got alive=%v armed=%v", s.Alive, s.Armed)
	}
	if audio.count("loop:background") != 1 {
		t.Errorf("Expected background music to start once, calls: %v", audio.calls)
	}
	if !g.Level().BannerVisible(g.now) {
		t.Error("Expected the level banner at start")
	}
}

func TestClockWithoutTimestamps(t *testing.T) {
	g, _ := newGame(t, config.DefaultAlchemistConfig())
	for i := 0; i < 61; i++ {
		g.Step(core.InputFrame{})
	}
	if got, want := g.Elapsed(), 60*(time.Second/60); got != want {
		t.Errorf("Expected 60 untimed ticks to span %v, got %v", want, got)
	}
}

func TestPlayerCaughtKeepsRunning(t *testing.T) {
	g, audio := newGame(t, config.DefaultAlchemistConfig())
	step(g, 0)

	enemy := g.set.Enemies[0]
	enemy.Body().Pos = g.set.Player.Pos()
	step(g, 16*time.Millisecond)

	if g.set.Player.Alive() {
		t.Fatal("Expected the player to be killed")
	}
	if g.Status() != StatusRunning {
		t.Errorf("Expected the run to stay running, got %v", g.Status())
	}
	if !g.killed {
		t.Error("Expected the killed banner")
	}
	if !enemy.Body().Vel.IsZero() {
		t.Errorf("Expected frozen enemy velocity, got %v", enemy.Body().Vel)
	}
	if enemy.Body().Force.IsZero() {
		t.Error("Expected a nudge force on the frozen enemy")
	}
	if audio.count("play:killed") != 1 || audio.count("loop:ending") != 1 {
		t.Errorf("Expected killed and ending cues, calls: %v", audio.calls)
	}

	step(g, 32*time.Millisecond, core.ActionStop)
	if g.Status() != StatusStopped {
		t.Fatalf("Expected stopped after escape, got %v", g.Status())
	}
	if g.State().Outcome != core.OutcomeKilled {
		t.Errorf("Expected outcome killed, got %q", g.State().Outcome)
	}
}

func TestDeadPlayerCannotSwing(t *testing.T) {
	g, audio := newGame(t, config.DefaultAlchemistConfig())
	step(g, 0)
	g.set.Weapon.Activate()

	g.set.Enemies[0].Body().Pos = g.set.Player.Pos()
	step(g, 16*time.Millisecond)
	if g.set.Player.Alive() {
		t.Fatal("Expected the player to be killed")
	}

	step(g, 32*time.Millisecond, core.ActionAttack)
	if n := audio.count("play:sword"); n != 0 {
		t.Errorf("Expected no sword cue after death, got %d", n)
	}
	if g.set.Weapon.State != entity.SwingStatic {
		t.Errorf("Expected a static sword, got %v", g.set.Weapon.State)
	}
}

func TestFinalLevelStopsOnce(t *testing.T) {
	g, audio := newGame(t, levelsConfig(greenLevel("Last", 1)))
	step(g, 0)
	pickupUnderPlayer(g)
	step(g, 16*time.Millisecond)

	if g.Status() != StatusWonTransition {
		t.Fatalf("Expected won transition, got %v", g.Status())
	}
	if g.Snapshot().Enemies != 0 {
		t.Error("Expected every enemy banished on the win")
	}

	stops := 0
	winCueBeforeStop := false
	prev := g.Status()
	for at := 32 * time.Millisecond; at <= 7*time.Second; at += 100 * time.Millisecond {
		step(g, at)
		if g.Status() == StatusStopped && prev != StatusStopped {
			stops++
			winCueBeforeStop = audio.count("play:win") == 1
		}
		prev = g.Status()
	}

	if stops != 1 {
		t.Errorf("Expected exactly one transition to stopped, got %d", stops)
	}
	if !winCueBeforeStop {
		t.Error("Expected the win cue to fire before the run stopped")
	}
	if n := audio.count("play:win"); n != 1 {
		t.Errorf("Expected the win cue once, got %d", n)
	}
	if !g.finalWin {
		t.Error("Expected the end banner")
	}
	state := g.State()
	if !state.GameOver || state.Outcome != core.OutcomeWon || state.Score != 1 {
		t.Errorf("Unexpected final state %+v", state)
	}
}

func TestWonLevelAdvances(t *testing.T) {
	g, audio := newGame(t, levelsConfig(greenLevel("First", 1), greenLevel("Second", 2)))
	step(g, 0)
	pickupUnderPlayer(g)
	step(g, 16*time.Millisecond)

	step(g, time.Second)
	if g.Level().Phase() != level.PhaseTransitioning {
		t.Errorf("Expected transitioning phase, got %v", g.Level().Phase())
	}
	if audio.count("play:interlude") != 1 {
		t.Errorf("Expected the interlude cue, calls: %v", audio.calls)
	}

	step(g, 4500*time.Millisecond)
	if !g.Fading() {
		t.Error("Expected the screen to fade in the last second")
	}

	step(g, 5100*time.Millisecond)
	s := g.Snapshot()
	if s.Level != 2 || s.Status != StatusRunning {
		t.Fatalf("Expected to run level 2, got level %d %v", s.Level, s.Status)
	}
	if s.Potions != 1 || s.Score != 0 {
		t.Errorf("Expected 1 banked potion and a fresh score, got %d and %d", s.Potions, s.Score)
	}
	if s.Enemies != 1 || s.Items != 1 {
		t.Errorf("Expected a freshly populated level, got %d enemies %d potions", s.Enemies, s.Items)
	}
	if audio.count("play:interlude") != 1 {
		t.Error("Expected the interlude cue only once")
	}
}

func TestPauseDebounce(t *testing.T) {
	g, audio := newGame(t, config.DefaultAlchemistConfig())
	step(g, 0)

	tests := []struct {
		at   time.Duration
		want Status
	}{
		{time.Second, StatusPaused},
		{1200 * time.Millisecond, StatusPaused},
		{1400 * time.Millisecond, StatusPaused},
		{1600 * time.Millisecond, StatusRunning},
	}
	for _, tt := range tests {
		step(g, tt.at, core.ActionPause)
		if g.Status() != tt.want {
			t.Errorf("At %v: expected %v, got %v", tt.at, tt.want, g.Status())
		}
	}
	if audio.count("pause") != 1 || audio.count("resume") != 1 {
		t.Errorf("Expected one pause and one resume, calls: %v", audio.calls)
	}
}

func TestPausedFreezesWorld(t *testing.T) {
	g, _ := newGame(t, config.DefaultAlchemistConfig())
	step(g, 0)
	step(g, time.Second, core.ActionPause)

	before := g.Snapshot()
	for i := 1; i <= 10; i++ {
		step(g, time.Second+time.Duration(i)*16*time.Millisecond, core.ActionRight)
	}
	after := g.Snapshot()
	if before.PlayerX != after.PlayerX || before.PlayerY != after.PlayerY {
		t.Error("Expected the player to stay put while paused")
	}
	if !g.State().Paused {
		t.Error("Expected paused state")
	}
}

func TestRestartLevel(t *testing.T) {
	g, _ := newGame(t, config.DefaultAlchemistConfig())
	step(g, 0)
	pickupUnderPlayer(g)
	step(g, 16*time.Millisecond)
	if g.Snapshot().Score != 1 {
		t.Fatalf("Expected one potion collected, got %d", g.Snapshot().Score)
	}

	step(g, time.Second, core.ActionRestart)
	s := g.Snapshot()
	if s.Score != 0 || s.Status != StatusRunning || s.Level != 1 {
		t.Errorf("Expected a fresh level 1, got %+v", s)
	}

	// A second press inside the debounce window is ignored.
	pickupUnderPlayer(g)
	step(g, time.Second+16*time.Millisecond)
	step(g, time.Second+200*time.Millisecond, core.ActionRestart)
	if g.Snapshot().Score != 1 {
		t.Errorf("Expected the debounced restart to be ignored, score %d", g.Snapshot().Score)
	}
}

func TestEscapeThenRestartRun(t *testing.T) {
	g, _ := newGame(t, levelsConfig(greenLevel("First", 1), greenLevel("Second", 1)))
	step(g, 0)
	pickupUnderPlayer(g)
	step(g, 16*time.Millisecond)
	step(g, 5100*time.Millisecond)
	if g.Level().Ordinal != 2 {
		t.Fatalf("Expected level 2, got %d", g.Level().Ordinal)
	}

	step(g, 6*time.Second, core.ActionStop)
	if g.Status() != StatusStopped || g.State().Outcome != core.OutcomeQuit {
		t.Fatalf("Expected a quit run, got %v %q", g.Status(), g.State().Outcome)
	}

	// Stopped runs ignore everything but restart.
	step(g, 7*time.Second, core.ActionPause)
	if g.Status() != StatusStopped {
		t.Errorf("Expected stopped, got %v", g.Status())
	}

	step(g, 8*time.Second, core.ActionRestart)
	s := g.Snapshot()
	if s.Status != StatusRunning || s.Level != 1 || s.Potions != 0 {
		t.Errorf("Expected a new run from level 1, got %+v", s)
	}
	if g.State().Outcome != core.OutcomeNone {
		t.Errorf("Expected the outcome cleared, got %q", g.State().Outcome)
	}
}

func TestBadCatalogStopsRun(t *testing.T) {
	cfg := levelsConfig(config.LevelSpec{Title: "Broken", Target: 1, Enemies: []string{"nobody"}, Potions: []string{"green"}})
	g := New(cfg)
	g.Reset(runtimeConfig())

	if g.Err() == nil {
		t.Fatal("Expected an error for an unknown enemy kind")
	}
	step(g, 0)
	if !g.State().GameOver {
		t.Error("Expected the run to be over")
	}

	screen := core.NewScreen(80, 24)
	g.Render(screen)
	if !strings.Contains(screen.String(), "cannot be played") {
		t.Error("Expected the error to be rendered")
	}
}

func TestRenderBanners(t *testing.T) {
	g, _ := newGame(t, config.DefaultAlchemistConfig())
	step(g, 0)

	screen := core.NewScreen(80, 24)
	g.Render(screen)
	out := screen.String()
	for _, want := range []string{"Potions left: 3", "Level 1", "Apprentice"} {
		if !strings.Contains(out, want) {
			t.Errorf("Expected %q on screen", want)
		}
	}

	g.set.Enemies[0].Body().Pos = g.set.Player.Pos()
	step(g, 3*time.Second)
	screen.Clear()
	g.Render(screen)
	if !strings.Contains(screen.String(), killedMain) {
		t.Error("Expected the killed banner")
	}

	step(g, 4*time.Second, core.ActionPause)
	screen.Clear()
	g.Render(screen)
	out = screen.String()
	if !strings.Contains(out, pausedMain) || strings.Contains(out, killedMain) {
		t.Error("Expected the pause banner to replace the killed banner")
	}
}

func TestHUDDimsUnderPlayer(t *testing.T) {
	g, _ := newGame(t, config.DefaultAlchemistConfig())
	step(g, 0)
	if g.HUDHidden() {
		t.Fatal("Expected the HUD visible at the start position")
	}
	g.set.Player.Body().Pos.X = 60
	g.set.Player.Body().Pos.Y = 20
	if !g.HUDHidden() {
		t.Error("Expected the HUD to dim with the player underneath")
	}
}

func TestBladeGlyph(t *testing.T) {
	tests := []struct {
		angle float64
		want  rune
	}{
		{0, '|'},
		{45, '/'},
		{90, '-'},
		{135, '\\'},
		{-45, '\\'},
	}
	for _, tt := range tests {
		axis := physics.V(0, -1).Rotate(tt.angle)
		if got := bladeGlyph(axis); got != tt.want {
			t.Errorf("bladeGlyph(%v) = %q, want %q", tt.angle, got, tt.want)
		}
	}
}

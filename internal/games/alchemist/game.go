// Package alchemist implements The Alchemist: an arena where the player
// collects potions while blood-crying spirits, trolls and devils give
// chase, level after level.
package alchemist

import (
	"fmt"
	"io"
	"math/rand"
	"time"

	"github.com/charmbracelet/log"

	"github.com/juan-ignacio-sanchez/the-alchemist/internal/combat"
	"github.com/juan-ignacio-sanchez/the-alchemist/internal/config"
	"github.com/juan-ignacio-sanchez/the-alchemist/internal/core"
	"github.com/juan-ignacio-sanchez/the-alchemist/internal/entity"
	"github.com/juan-ignacio-sanchez/the-alchemist/internal/level"
	"github.com/juan-ignacio-sanchez/the-alchemist/internal/registry"
	"github.com/juan-ignacio-sanchez/the-alchemist/internal/spawn"
)

// ID is the registry identifier of the game.
const ID = "alchemist"

// Status is the state of the run.
type Status int

const (
	StatusRunning Status = iota
	StatusPaused
	StatusWonTransition
	StatusStopped
)

// String returns a human-readable name for the status.
func (s Status) String() string {
	switch s {
	case StatusRunning:
		return "running"
	case StatusPaused:
		return "paused"
	case StatusWonTransition:
		return "won-transition"
	case StatusStopped:
		return "stopped"
	default:
		return "unknown"
	}
}

// Option customizes a Game.
type Option func(*Game)

// WithAudio sets the sound collaborator.
func WithAudio(a core.Audio) Option {
	return func(g *Game) { g.audio = a }
}

// WithLogger sets the logger.
func WithLogger(l *log.Logger) Option {
	return func(g *Game) { g.log = l }
}

// Package-level defaults for games created through the registry, set by
// the command line before the platform starts.
var (
	defaultConfig = config.DefaultAlchemistConfig()
	defaultOpts   []Option
)

// Configure sets the configuration and options used by the registry
// factory.
func Configure(cfg config.AlchemistConfig, opts ...Option) {
	defaultConfig = cfg
	defaultOpts = opts
}

func init() {
	registry.Register(ID, func() registry.Game {
		return New(defaultConfig, defaultOpts...)
	})
}

// Game implements registry.Game.
type Game struct {
	cfg   config.AlchemistConfig
	audio core.Audio
	log   *log.Logger

	rng      *rand.Rand
	tick     uint64
	interval time.Duration
	now      time.Time

	screenW, screenH int
	arenaW, arenaH   float64

	first    *level.Level
	current  *level.Level
	set      entity.Set
	spawner  *spawn.Spawner
	resolver *combat.Resolver

	status    Status
	started   bool
	pauseCD   core.Cooldown
	restartCD core.Cooldown

	killed   bool // player caught, killed banner up
	finalWin bool // end banner up
	banked   int  // potions from levels already cleared
	runStart time.Time
	outcome  core.Outcome
	err      error
}

// New creates a game with the given tuning.
func New(cfg config.AlchemistConfig, opts ...Option) *Game {
	g := &Game{
		cfg:       cfg,
		audio:     core.NopAudio{},
		log:       log.New(io.Discard),
		pauseCD:   core.NewCooldown(cfg.Timing.PauseDebounce),
		restartCD: core.NewCooldown(cfg.Timing.RestartDebounce),
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// ID returns the game identifier.
func (g *Game) ID() string { return ID }

// Title returns the display name.
func (g *Game) Title() string { return "The Alchemist" }

// Reset builds a fresh run from the first level.
func (g *Game) Reset(cfg core.RuntimeConfig) {
	g.rng = rand.New(rand.NewSource(cfg.Seed))
	g.tick = 0
	g.interval = cfg.TickInterval()
	g.screenW = cfg.ScreenW
	g.screenH = cfg.ScreenH
	g.arenaW = float64(cfg.ScreenW) * g.cfg.Arena.CellWidth
	g.arenaH = float64(cfg.ScreenH) * g.cfg.Arena.CellHeight

	g.spawner = spawn.New(g.cfg, g.arenaW, g.arenaH, g.rng)
	g.resolver = combat.NewResolver(g.cfg, g.spawner, g.rng)
	g.pauseCD.Reset()
	g.restartCD.Reset()
	g.banked = 0
	g.outcome = core.OutcomeNone
	g.err = nil
	g.started = false

	first, err := level.NewChain(g.cfg)
	if err != nil {
		g.fail(err)
		return
	}
	g.first = first
	g.current = first
	g.populate()
}

// Err returns the error that stopped the run, if any.
func (g *Game) Err() error { return g.err }

func (g *Game) fail(err error) {
	g.err = err
	g.status = StatusStopped
	g.outcome = core.OutcomeQuit
	g.set.Clear()
	g.log.Error("run aborted", "error", err)
}

// populate replaces every entity with the opening cast of the current
// level: the player, the sword, one enemy and one potion. It reports
// whether the level could be populated.
func (g *Game) populate() bool {
	g.set.Clear()
	g.set.Player = g.spawner.Player()
	g.set.Weapon = g.spawner.Weapon(g.set.Player)

	e, err := g.spawner.Enemy(g.current)
	if err != nil {
		g.fail(fmt.Errorf("alchemist: opening enemy: %w", err))
		return false
	}
	item, err := g.spawner.Item(g.current)
	if err != nil {
		g.fail(fmt.Errorf("alchemist: opening potion: %w", err))
		return false
	}
	g.set.AddEnemy(e)
	g.set.AddItem(item)
	g.set.Sweep()

	g.status = StatusRunning
	g.killed = false
	g.finalWin = false
	g.current.Reset()
	return true
}

// begin enters the current level at now.
func (g *Game) begin(now time.Time) {
	if !g.started {
		g.runStart = now
	}
	g.started = true
	g.current.Start(now)
	g.audio.Loop(core.CueBackground)
	g.log.Info("level started", "level", g.current.Ordinal, "title", g.current.Title, "target", g.current.Score.Target)
}

// Step advances the game by one tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	g.tick++
	g.now = g.clock(in)
	now := g.now

	if g.err != nil {
		return core.StepResult{State: g.State()}
	}
	if !g.started {
		g.begin(now)
	}

	if g.status == StatusStopped {
		if in.Has(core.ActionRestart) && g.restartCD.TryFire(now) {
			g.restartRun(now)
		}
		return core.StepResult{State: g.State()}
	}

	switch {
	case in.Has(core.ActionStop):
		g.outcome = core.OutcomeQuit
		if g.killed {
			g.outcome = core.OutcomeKilled
		}
		g.stop(false)
		return core.StepResult{State: g.State()}
	case in.Has(core.ActionRestart):
		if g.restartCD.TryFire(now) {
			g.restartLevel(now)
		}
		return core.StepResult{State: g.State()}
	case in.Has(core.ActionPause):
		g.togglePause(now)
	}

	switch g.status {
	case StatusRunning:
		g.runTick(in, now)
	case StatusWonTransition:
		g.transitionTick(in, now)
	}

	return core.StepResult{State: g.State()}
}

// clock returns the frame time. Frames without a timestamp advance the
// game clock by one tick period.
func (g *Game) clock(in core.InputFrame) time.Time {
	if !in.Time.IsZero() {
		return in.Time
	}
	if g.now.IsZero() {
		return time.Unix(0, 0)
	}
	return g.now.Add(g.interval)
}

func (g *Game) togglePause(now time.Time) {
	if g.status != StatusRunning && g.status != StatusPaused {
		return
	}
	if !g.pauseCD.TryFire(now) {
		return
	}
	if g.status == StatusPaused {
		g.status = StatusRunning
		g.audio.Resume()
		return
	}
	g.status = StatusPaused
	g.audio.Pause()
}

// runTick is one Running frame: input, integration, combat, level check,
// then the end-of-tick sweep.
func (g *Game) runTick(in core.InputFrame, now time.Time) {
	p := g.set.Player
	switch p.Steer(in) {
	case entity.WalkStarted:
		g.audio.Loop(core.CueFootsteps)
	case entity.WalkStopped:
		g.audio.Stop(core.CueFootsteps)
	}
	if g.set.Weapon.Trigger(in) {
		g.audio.Play(core.CueSword)
	}

	g.integrate(now, true)

	rep, err := g.resolver.Resolve(&g.set, g.current, now)
	if err != nil {
		g.fail(err)
		return
	}
	g.react(rep)

	if g.current.MarkWon() {
		g.status = StatusWonTransition
		g.banked += g.current.Score.Value
		g.log.Info("level won", "level", g.current.Ordinal, "title", g.current.Title)
	}
	g.set.Sweep()
}

// integrate moves every body one tick. Enemies only move when withEnemies
// is set.
func (g *Game) integrate(now time.Time, withEnemies bool) {
	p := g.set.Player
	knocked := false
	if p.Alive() {
		knocked = p.Update(now)
	}
	g.set.Weapon.Update()

	if withEnemies {
		for _, e := range g.set.Enemies {
			fragments, k := e.Update(p.Pos(), now, g.rng)
			if fragments != nil {
				g.set.AddParticles(fragments)
				g.audio.Play(core.CueBanish)
			}
			knocked = knocked || k
		}
	}

	surface := g.spawner.Surface()
	for _, part := range g.set.Particles {
		part.Update(surface)
	}
	if knocked {
		g.audio.Play(core.CueKnock)
	}
}

func (g *Game) react(rep combat.Report) {
	if rep.PlayerKilled {
		g.killed = true
		g.audio.Stop(core.CueFootsteps)
		g.audio.Play(core.CueKilled)
		g.audio.Stop(core.CueBackground)
		g.audio.Loop(core.CueEnding)
		g.log.Info("player caught", "level", g.current.Ordinal, "potions", g.current.Score.Value)
		return
	}
	if rep.Hits > 0 {
		g.audio.Play(core.CueHit)
	}
	if len(rep.Pickups) > 0 {
		g.audio.Play(core.CuePotion)
	}
	if rep.EnemiesSpawned > 0 {
		g.audio.Play(core.CueSpawn)
	}
	if rep.Banished > 0 {
		g.audio.Play(core.CueBanish)
	}
	if rep.WeaponActivated {
		g.log.Debug("sword activated")
	}
}

// transitionTick runs the won-level sequence. Only the player, the sword
// and leftover particles keep moving; during the final fade nothing does.
func (g *Game) transitionTick(in core.InputFrame, now time.Time) {
	score := g.current.Score

	if !score.QuitTransition(now) {
		p := g.set.Player
		switch p.Steer(in) {
		case entity.WalkStarted:
			g.audio.Loop(core.CueFootsteps)
		case entity.WalkStopped:
			g.audio.Stop(core.CueFootsteps)
		}
		g.integrate(now, false)
		g.set.Sweep()
	}

	next := g.current.Next
	switch {
	case next != nil && score.IsTimeToLeave(now):
		g.log.Info("advancing", "from", g.current.Ordinal, "to", next.Ordinal)
		g.stop(true)
		g.current = next
		if g.populate() {
			g.begin(now)
		}
	case next != nil && g.current.ClaimAnnounce():
		g.audio.FadeOut(core.CueBackground, g.cfg.Timing.MusicFade)
		g.audio.Play(core.CueInterlude)
	case next == nil && g.current.ClaimAnnounce():
		g.audio.FadeOut(core.CueBackground, g.cfg.Timing.MusicFade)
		g.audio.Play(core.CueWin)
		g.finalWin = true
		g.log.Info("run won", "potions", g.banked)
	case next == nil && score.IsTimeToLeave(now):
		g.outcome = core.OutcomeWon
		g.stop(false)
	}
}

// stop ends the run's sound. The run itself only ends when instantly is
// false.
func (g *Game) stop(instantly bool) {
	fade := g.cfg.Timing.Transition
	if instantly {
		fade = 0
	}
	g.audio.Stop(core.CueFootsteps)
	g.audio.FadeOut(core.CueBackground, fade)
	g.audio.FadeOut(core.CueEnding, fade)
	if instantly {
		return
	}
	g.status = StatusStopped
	g.log.Info("run stopped", "outcome", g.outcome, "level", g.current.Ordinal, "potions", g.Potions())
	g.log.Debug("final state", "snapshot", fmt.Sprintf("%+v", g.Snapshot()))
}

// restartLevel replays the current level from scratch.
func (g *Game) restartLevel(now time.Time) {
	g.log.Info("level restarted", "level", g.current.Ordinal)
	g.stop(true)
	if g.status == StatusWonTransition {
		g.banked -= g.current.Score.Value
	}
	g.audio.Resume()
	if g.populate() {
		g.begin(now)
	}
}

// restartRun starts over from the first level after a stopped run.
func (g *Game) restartRun(now time.Time) {
	g.log.Info("run restarted")
	g.stop(true)
	g.audio.Resume()
	g.banked = 0
	g.outcome = core.OutcomeNone
	g.runStart = now
	for l := g.first; l != nil; l = l.Next {
		l.Reset()
	}
	g.current = g.first
	if g.populate() {
		g.begin(now)
	}
}

// Potions returns the potions collected during the run.
func (g *Game) Potions() int {
	if g.current == nil {
		return g.banked
	}
	if g.current.Phase() >= level.PhaseWon {
		return g.banked
	}
	return g.banked + g.current.Score.Value
}

// Elapsed returns how long the run has lasted.
func (g *Game) Elapsed() time.Duration {
	if !g.started {
		return 0
	}
	return g.now.Sub(g.runStart)
}

// Status returns the state of the run.
func (g *Game) Status() Status { return g.status }

// Level returns the level being played.
func (g *Game) Level() *level.Level { return g.current }

// Entities exposes the live entity set, read-only by convention.
func (g *Game) Entities() *entity.Set { return &g.set }

// State returns the current game state.
func (g *Game) State() core.GameState {
	lvl := 0
	if g.current != nil {
		lvl = g.current.Ordinal
	}
	return core.GameState{
		Score:    g.Potions(),
		Level:    lvl,
		GameOver: g.status == StatusStopped,
		Paused:   g.status == StatusPaused,
		Outcome:  g.outcome,
	}
}


package tui

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/juan-ignacio-sanchez/the-alchemist/internal/core"
	"github.com/juan-ignacio-sanchez/the-alchemist/internal/level"
	"github.com/juan-ignacio-sanchez/the-alchemist/internal/registry"
	"github.com/juan-ignacio-sanchez/the-alchemist/internal/storage"
)

const defaultHoldTimeout = 500 * time.Millisecond

// Options tunes the play loop.
type Options struct {
	HoldTimeout time.Duration
	Difficulty  string
	Logger      *log.Logger
}

// runInfo is implemented by games that can describe the run for the
// history.
type runInfo interface {
	Elapsed() time.Duration
	Level() *level.Level
}

// Model is the Bubble Tea model for running the game.
type Model struct {
	game      registry.Game
	screen    *core.Screen
	store     *storage.Store
	config    core.RuntimeConfig
	opts      Options
	keys      *KeyMapper
	hold      *HoldTracker
	gameState core.GameState
	quitting  bool
	runSaved  bool // Whether the finished run has been recorded
}

// NewModel creates a new Bubble Tea model for the given game.
func NewModel(game registry.Game, store *storage.Store, cfg core.RuntimeConfig, opts Options) Model {
	// Use time-based seed if not specified
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	if opts.HoldTimeout <= 0 {
		opts.HoldTimeout = defaultHoldTimeout
	}
	if opts.Logger == nil {
		opts.Logger = log.New(io.Discard)
	}

	return Model{
		game:   game,
		screen: core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		store:  store,
		config: cfg,
		opts:   opts,
		keys:   NewKeyMapper(),
		hold:   NewHoldTracker(opts.HoldTimeout),
	}
}

// Init initializes the model and starts the game.
func (m Model) Init() tea.Cmd {
	m.game.Reset(m.config)
	// Note: gameState will be set on first tick (value receiver limitation)
	return tickCmd(m.config.TickInterval())
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick(time.Time(msg))
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+s" {
		m.saveScreenshot()
		return m, nil
	}

	action, isQuit := m.keys.MapKey(msg)
	if isQuit {
		m.quitting = true
		return m, tea.Quit
	}
	m.hold.Press(action, time.Now())
	return m, nil
}

// handleResize processes window resize events. The arena is sized from
// the terminal, so a new size starts the run over.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	if msg.Width == m.config.ScreenW && msg.Height == m.config.ScreenH {
		return m, nil
	}
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.screen.Resize(msg.Width, msg.Height)

	if !m.gameState.GameOver {
		m.opts.Logger.Debug("terminal resized, restarting run", "width", msg.Width, "height", msg.Height)
		m.game.Reset(m.config)
		m.hold.Reset()
	}

	return m, nil
}

// handleTick processes simulation ticks.
func (m Model) handleTick(now time.Time) (tea.Model, tea.Cmd) {
	result := m.game.Step(m.hold.Frame(now))
	m.gameState = result.State

	switch {
	case m.gameState.GameOver && !m.runSaved:
		m.saveRun()
		m.runSaved = true
	case !m.gameState.GameOver:
		m.runSaved = false
	}

	return m, tickCmd(m.config.TickInterval())
}

// saveRun records the finished run, best-effort.
func (m Model) saveRun() {
	if m.store == nil || m.gameState.Outcome == core.OutcomeNone {
		return
	}
	run := storage.Run{
		Outcome:    m.gameState.Outcome,
		Level:      m.gameState.Level,
		Potions:    m.gameState.Score,
		Difficulty: m.opts.Difficulty,
		Seed:       m.config.Seed,
	}
	if info, ok := m.game.(runInfo); ok {
		run.Duration = info.Elapsed()
		if l := info.Level(); l != nil {
			run.Title = l.Title
		}
	}
	if _, err := m.store.SaveRun(run); err != nil {
		m.opts.Logger.Warn("cannot save run", "error", err)
		return
	}
	m.opts.Logger.Info("run saved", "outcome", run.Outcome, "level", run.Level, "potions", run.Potions)
}

// saveScreenshot saves the current screen to a file.
func (m *Model) saveScreenshot() {
	m.screen.Clear()
	m.game.Render(m.screen)

	dir := filepath.Join(os.Getenv("HOME"), ".alchemist", "screenshots")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		m.opts.Logger.Warn("cannot create screenshot directory", "error", err)
		return
	}

	timestamp := time.Now().Format("20060102_150405")
	path := filepath.Join(dir, fmt.Sprintf("%s_%s.txt", m.game.ID(), timestamp))
	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		m.opts.Logger.Warn("cannot save screenshot", "error", err)
		return
	}
	m.opts.Logger.Info("screenshot saved", "path", path)
}

// gameOverHint is shown at the bottom of a stopped run.
func gameOverHint(state core.GameState) string {
	return fmt.Sprintf(" Run over (%s) with %d potions. R: play again  Q: quit ", state.Outcome, state.Score)
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.screen.Clear()
	m.game.Render(m.screen)
	switch {
	case m.gameState.GameOver:
		m.screen.DrawTextCenteredColored(m.screen.Height()-1, gameOverHint(m.gameState), core.ColorBrightWhite)
	case m.gameState.Paused:
		m.screen.DrawTextCenteredColored(m.screen.Height()-1, m.keys.ControlsHint(), core.ColorGray)
	}

	return RenderScreen(m.screen)
}

// Run starts the Bubble Tea program with the given model.
func Run(game registry.Game, store *storage.Store, cfg core.RuntimeConfig, opts Options) error {
	model := NewModel(game, store, cfg, opts)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(), // Use alternate screen buffer
	)

	_, err := p.Run()
	return err
}

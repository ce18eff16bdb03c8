package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/juan-ignacio-sanchez/the-alchemist/internal/core"
)

// GameKeyMap binds keys to the in-game actions.
type GameKeyMap struct {
	Up      key.Binding
	Down    key.Binding
	Left    key.Binding
	Right   key.Binding
	Attack  key.Binding
	Pause   key.Binding
	Restart key.Binding
	Stop    key.Binding
	Quit    key.Binding
}

// DefaultGameKeyMap returns WASD/arrow bindings.
func DefaultGameKeyMap() GameKeyMap {
	return GameKeyMap{
		Up:      key.NewBinding(key.WithKeys("w", "up"), key.WithHelp("w/↑", "up")),
		Down:    key.NewBinding(key.WithKeys("s", "down"), key.WithHelp("s/↓", "down")),
		Left:    key.NewBinding(key.WithKeys("a", "left"), key.WithHelp("a/←", "left")),
		Right:   key.NewBinding(key.WithKeys("d", "right"), key.WithHelp("d/→", "right")),
		Attack:  key.NewBinding(key.WithKeys(" "), key.WithHelp("space", "swing")),
		Pause:   key.NewBinding(key.WithKeys("p"), key.WithHelp("p", "pause")),
		Restart: key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "restart")),
		Stop:    key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "end run")),
		Quit:    key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

// ShortHelp lists the bindings worth showing on the pause screen.
func (k GameKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Attack, k.Pause, k.Restart, k.Stop, k.Quit}
}

// KeyMapper translates Bubble Tea key messages to game and menu actions.
type KeyMapper struct {
	game     GameKeyMap
	bindings []boundAction
}

type boundAction struct {
	binding key.Binding
	action  core.Action
}

// NewKeyMapper creates a key mapper with the default bindings.
func NewKeyMapper() *KeyMapper {
	return NewKeyMapperWith(DefaultGameKeyMap())
}

// NewKeyMapperWith creates a key mapper for custom game bindings.
func NewKeyMapperWith(k GameKeyMap) *KeyMapper {
	return &KeyMapper{
		game: k,
		bindings: []boundAction{
			{k.Up, core.ActionUp},
			{k.Down, core.ActionDown},
			{k.Left, core.ActionLeft},
			{k.Right, core.ActionRight},
			{k.Attack, core.ActionAttack},
			{k.Pause, core.ActionPause},
			{k.Restart, core.ActionRestart},
			{k.Stop, core.ActionStop},
		},
	}
}

// MapKey returns the action for msg (ActionNone if unbound) and whether
// it asks to leave the program.
func (km *KeyMapper) MapKey(msg tea.KeyMsg) (action core.Action, isQuit bool) {
	if key.Matches(msg, km.game.Quit) {
		return core.ActionQuit, true
	}
	for _, b := range km.bindings {
		if key.Matches(msg, b.binding) {
			return b.action, false
		}
	}
	return core.ActionNone, false
}

// ControlsHint renders the short help as one plain line for the screen
// buffer.
func (km *KeyMapper) ControlsHint() string {
	parts := make([]string, 0, len(km.game.ShortHelp()))
	for _, b := range km.game.ShortHelp() {
		h := b.Help()
		parts = append(parts, h.Key+" "+h.Desc)
	}
	return " " + strings.Join(parts, "  ") + " "
}

// MenuAction represents a menu-specific action derived from input.
type MenuAction int

const (
	MenuActionNone MenuAction = iota
	MenuActionUp
	MenuActionDown
	MenuActionLeft
	MenuActionRight
	MenuActionSelect
	MenuActionBack
	MenuActionQuit
)

// MapKeyToMenuAction translates a key to a menu action. Menus also accept
// vim keys.
func (km *KeyMapper) MapKeyToMenuAction(msg tea.KeyMsg) MenuAction {
	switch msg.String() {
	case "ctrl+c", "q":
		return MenuActionQuit
	case "w", "up", "k":
		return MenuActionUp
	case "s", "down", "j":
		return MenuActionDown
	case "a", "left", "h":
		return MenuActionLeft
	case "d", "right", "l":
		return MenuActionRight
	case "enter", " ":
		return MenuActionSelect
	case "b", "esc":
		return MenuActionBack
	}
	return MenuActionNone
}

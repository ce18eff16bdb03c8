// Package registry maps game identifiers to factories so the front ends
// (terminal UI, CLI) can build a simulation without importing its package
// directly. Simulations register themselves from init.
package registry

import (
	"errors"
	"fmt"
	"sort"
	"sync"

	"github.com/juan-ignacio-sanchez/the-alchemist/internal/core"
)

// ErrUnknownGame is returned by Create for an unregistered identifier.
var ErrUnknownGame = errors.New("registry: unknown game")

// Game is a fixed-step simulation driven by the platform loop.
//
// The platform owns timing, input mapping and drawing; a Game only turns
// input frames into state. Nothing here may import Bubble Tea.
type Game interface {
	// ID is the stable identifier used on the command line and in run history.
	ID() string

	// Title is the display name.
	Title() string

	// Reset starts a fresh run for the given screen and seed.
	Reset(cfg core.RuntimeConfig)

	// Step advances one tick using the actions and timestamp in the frame.
	Step(in core.InputFrame) core.StepResult

	// Render draws into a pre-cleared screen.
	Render(dst *core.Screen)

	// State reports the current run state.
	State() core.GameState
}

// GameInfo describes a registered game.
type GameInfo struct {
	ID    string
	Title string
}

// Factory builds a new, not yet reset, game.
type Factory func() Game

type entry struct {
	factory Factory
	title   string
}

var (
	mu      sync.RWMutex
	entries = make(map[string]entry)
)

// Register adds a factory under id. Registering the same id twice panics.
func Register(id string, f Factory) {
	if f == nil {
		panic(fmt.Sprintf("registry: nil factory for %q", id))
	}

	mu.Lock()
	defer mu.Unlock()

	if _, exists := entries[id]; exists {
		panic(fmt.Sprintf("registry: game %q already registered", id))
	}
	entries[id] = entry{factory: f, title: f().Title()}
}

// List returns the registered games sorted by ID.
func List() []GameInfo {
	mu.RLock()
	defer mu.RUnlock()

	result := make([]GameInfo, 0, len(entries))
	for id, e := range entries {
		result = append(result, GameInfo{ID: id, Title: e.title})
	}
	sort.Slice(result, func(i, j int) bool {
		return result[i].ID < result[j].ID
	})
	return result
}

// Create builds a game by id.
func Create(id string) (Game, error) {
	mu.RLock()
	e, ok := entries[id]
	mu.RUnlock()

	if !ok {
		return nil, fmt.Errorf("%w %q", ErrUnknownGame, id)
	}
	return e.factory(), nil
}

// Exists reports whether id is registered.
func Exists(id string) bool {
	mu.RLock()
	defer mu.RUnlock()

	_, ok := entries[id]
	return ok
}

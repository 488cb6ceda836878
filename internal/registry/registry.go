// Package registry keeps the set of playable board variants.
// Variants register a factory from init(), so front ends (terminal, SSH,
// web) can list and create them without importing game packages directly.
package registry

import (
	"fmt"
	"slices"
	"strings"
	"sync"

	"github.com/vovakirdan/popstar/internal/core"
)

// Game is the interface every playable variant implements.
// Implementations are pure simulation: the platform owns timing, input
// mapping and terminal output.
type Game interface {
	// ID returns a unique identifier, used for CLI arguments and score storage.
	ID() string

	// Title returns a human-readable name for display.
	Title() string

	// Reset deals a new board sized for the screen in cfg.
	Reset(cfg core.RuntimeConfig)

	// Step advances the simulation by one fixed tick.
	Step(in core.InputFrame) core.StepResult

	// Render draws the current state into the pre-cleared screen buffer.
	Render(dst *core.Screen)

	// State returns the current score and status.
	State() core.GameState
}

// StatsReporter is implemented by games that track session statistics.
type StatsReporter interface {
	SessionStats() core.SessionStats
}

// Describer is implemented by games that can summarize their board,
// for example "10x10, 5 colors". The menu shows it next to the title.
type Describer interface {
	Describe() string
}

// GameInfo contains metadata about a registered game.
type GameInfo struct {
	ID          string
	Title       string
	Description string // Empty unless the game implements Describer
}

// Factory is a function that creates a new instance of a game.
type Factory func() Game

type entry struct {
	factory Factory
	title   string
}

var (
	mu      sync.RWMutex
	entries = make(map[string]entry)
)

// Register adds a game factory to the registry. It is meant to be called
// from init and panics on an empty or duplicate ID.
func Register(id string, f Factory) {
	if id == "" {
		panic("registry: empty game id")
	}

	mu.Lock()
	defer mu.Unlock()
	if _, dup := entries[id]; dup {
		panic(fmt.Sprintf("registry: game %q already registered", id))
	}
	entries[id] = entry{factory: f, title: f().Title()}
}

// List returns all registered games sorted by ID. Descriptions are taken
// from a fresh instance so they reflect the current configuration.
func List() []GameInfo {
	mu.RLock()
	defer mu.RUnlock()

	out := make([]GameInfo, 0, len(entries))
	for id, e := range entries {
		info := GameInfo{ID: id, Title: e.title}
		if d, ok := e.factory().(Describer); ok {
			info.Description = d.Describe()
		}
		out = append(out, info)
	}
	slices.SortFunc(out, func(a, b GameInfo) int {
		return strings.Compare(a.ID, b.ID)
	})
	return out
}

// Create instantiates a new game by its ID.
func Create(id string) (Game, error) {
	mu.RLock()
	e, ok := entries[id]
	mu.RUnlock()

	if !ok {
		return nil, fmt.Errorf("registry: unknown game %q", id)
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

// Title returns the display title of a registered game, or the ID itself.
func Title(id string) string {
	mu.RLock()
	defer mu.RUnlock()
	if e, ok := entries[id]; ok {
		return e.title
	}
	return id
}

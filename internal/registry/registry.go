// Package registry keeps the factories for the playable snake variants.
// Variants register themselves in init() functions so the platform can list
// and create them without hardcoded dependencies.
package registry

import (
	"errors"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/vovakirdan/gridsnake/internal/core"
)

// ErrUnknownVariant is returned by Create for an unregistered id.
var ErrUnknownVariant = errors.New("registry: unknown variant")

// Game is the contract between an engine and its controllers.
// Engines hold pure logic. Timing, input mapping and rendering live in the
// platform layer.
type Game interface {
	// ID returns the variant identifier (e.g. "classic"). Used for score storage.
	ID() string

	// Title returns a human-readable name.
	Title() string

	// SetPendingDirection requests the direction for the next tick.
	SetPendingDirection(d core.Direction)

	// Tick advances the simulation by one cell.
	Tick() core.StepResult

	// Restart resets the game to a fresh state.
	Restart()

	Snake() []core.Cell
	Food() core.Cell
	Score() int
	GameOver() bool
	BoardSize() int
	Direction() core.Direction
	Speed() time.Duration
	State() core.GameState
	Snapshot() core.Snapshot
}

// VariantInfo describes a registered variant.
type VariantInfo struct {
	ID    string
	Title string
}

// Factory creates a new game from the runtime config.
type Factory func(cfg core.RuntimeConfig) Game

type entry struct {
	title   string
	factory Factory
}

var (
	variants = make(map[string]entry)
	mu       sync.RWMutex
)

// Register adds a variant factory. Panics on a duplicate id.
func Register(id, title string, f Factory) {
	mu.Lock()
	defer mu.Unlock()

	if _, exists := variants[id]; exists {
		panic(fmt.Sprintf("registry: variant %q already registered", id))
	}
	variants[id] = entry{title: title, factory: f}
}

// List returns all registered variants sorted by id.
func List() []VariantInfo {
	mu.RLock()
	defer mu.RUnlock()

	result := make([]VariantInfo, 0, len(variants))
	for id, e := range variants {
		result = append(result, VariantInfo{ID: id, Title: e.title})
	}

	sort.Slice(result, func(i, j int) bool {
		return result[i].ID < result[j].ID
	})
	return result
}

// Create instantiates a variant by id.
func Create(id string, cfg core.RuntimeConfig) (Game, error) {
	mu.RLock()
	e, ok := variants[id]
	mu.RUnlock()

	if !ok {
		return nil, fmt.Errorf("%w %q", ErrUnknownVariant, id)
	}
	return e.factory(cfg), nil
}

// Exists reports whether a variant with the given id is registered.
func Exists(id string) bool {
	mu.RLock()
	defer mu.RUnlock()

	_, ok := variants[id]
	return ok
}

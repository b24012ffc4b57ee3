package rules

import (
	"fmt"
	"sort"
	"sync"

	"github.com/goldchip/pocketcasino/internal/types"
)

// Sheet is the presentable rule text for one game.
type Sheet struct {
	Title     string
	Objective string
	Rules     []string
	Strategy  []string
}

// Registry maps game identifiers to rule sheets.
type Registry struct {
	mu     sync.RWMutex
	sheets map[string]*Sheet
}

// NewRegistry creates a registry preloaded with the built-in games.
func NewRegistry() *Registry {
	r := &Registry{
		sheets: make(map[string]*Sheet),
	}
	for id, sheet := range builtinSheets {
		r.sheets[id] = sheet
	}
	return r
}

// Register adds a rule sheet for a game identifier.
func (r *Registry) Register(id string, sheet *Sheet) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.sheets[id]; exists {
		return types.NewGameError(types.ErrInvalidAction, fmt.Sprintf("rules for %s are already registered", id))
	}

	r.sheets[id] = sheet
	return nil
}

// Get returns the rule sheet for a game, or a GAME_NOT_FOUND error for
// unknown identifiers.
func (r *Registry) Get(id string) (*Sheet, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	sheet, exists := r.sheets[id]
	if !exists {
		return nil, types.NewGameError(types.ErrGameNotFound, fmt.Sprintf("game rules not found: %s", id))
	}

	return sheet, nil
}

// List returns the registered game identifiers in sorted order.
func (r *Registry) List() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	ids := make([]string, 0, len(r.sheets))
	for id := range r.sheets {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

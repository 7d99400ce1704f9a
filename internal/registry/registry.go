// Package registry provides a global registry for built-in puzzle pictures.
// Pictures register themselves in init() functions, allowing the platform
// to discover them without hardcoded dependencies.
package registry

import (
	"fmt"
	"sort"
	"sync"

	"github.com/vovakirdan/tui-slide/internal/core"
)

// Picture is the image shown across the back side of the tiles.
// Implementations are immutable and safe for concurrent use.
type Picture interface {
	// ID returns a unique identifier (e.g., "rings").
	ID() string

	// Title returns a human-readable name for display.
	Title() string

	// Credits names the author of the picture, if any.
	Credits() string

	// ColorAt samples the picture at normalized coordinates u, v in [0, 1).
	// The whole board maps onto the unit square.
	ColorAt(u, v float64) core.Color
}

// PictureInfo contains metadata about a registered picture.
type PictureInfo struct {
	ID    string
	Title string
}

// Factory is a function that creates a picture.
type Factory func() Picture

var (
	factories = make(map[string]Factory)
	titles    = make(map[string]string)
	mu        sync.RWMutex
)

// Register adds a picture factory to the registry.
// Typically called from an init() function.
// Panics if a picture with the same ID is already registered.
func Register(id string, f Factory) {
	mu.Lock()
	defer mu.Unlock()

	if _, exists := factories[id]; exists {
		panic(fmt.Sprintf("registry: picture %q already registered", id))
	}

	factories[id] = f
	titles[id] = f().Title()
}

// List returns information about all registered pictures, sorted by ID.
func List() []PictureInfo {
	mu.RLock()
	defer mu.RUnlock()

	result := make([]PictureInfo, 0, len(factories))
	for id := range factories {
		result = append(result, PictureInfo{
			ID:    id,
			Title: titles[id],
		})
	}

	sort.Slice(result, func(i, j int) bool {
		return result[i].ID < result[j].ID
	})

	return result
}

// Create instantiates a picture by its ID.
// Returns an error if the ID is not registered.
func Create(id string) (Picture, error) {
	mu.RLock()
	defer mu.RUnlock()

	f, ok := factories[id]
	if !ok {
		return nil, fmt.Errorf("registry: unknown picture %q", id)
	}

	return f(), nil
}

// Exists checks if a picture with the given ID is registered.
func Exists(id string) bool {
	mu.RLock()
	defer mu.RUnlock()

	_, ok := factories[id]
	return ok
}

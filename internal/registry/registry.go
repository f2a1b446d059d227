// Package registry provides a global registry of rendering themes.
// Themes register themselves in init() functions so the CLI and the
// SSH server can look them up by name.
package registry

import (
	"fmt"
	"sort"
	"sync"

	"github.com/vovakirdan/tui-snake/internal/snake"
)

// Theme is a named glyph and color set for the board.
type Theme struct {
	Name        string
	Description string
	Style       snake.Style
}

var (
	themes = make(map[string]Theme)
	mu     sync.RWMutex
)

// Register adds a theme to the registry.
// Panics if a theme with the same name is already registered.
func Register(t Theme) {
	mu.Lock()
	defer mu.Unlock()

	if t.Name == "" {
		panic("registry: theme without a name")
	}
	if _, exists := themes[t.Name]; exists {
		panic(fmt.Sprintf("registry: theme %q already registered", t.Name))
	}

	themes[t.Name] = t
}

// List returns all registered themes, sorted by name.
func List() []Theme {
	mu.RLock()
	defer mu.RUnlock()

	result := make([]Theme, 0, len(themes))
	for _, t := range themes {
		result = append(result, t)
	}

	sort.Slice(result, func(i, j int) bool {
		return result[i].Name < result[j].Name
	})

	return result
}

// Get looks up a theme by name.
// Returns an error if the name is not registered.
func Get(name string) (Theme, error) {
	mu.RLock()
	defer mu.RUnlock()

	t, ok := themes[name]
	if !ok {
		return Theme{}, fmt.Errorf("registry: unknown theme %q", name)
	}

	return t, nil
}

// Exists checks if a theme with the given name is registered.
func Exists(name string) bool {
	mu.RLock()
	defer mu.RUnlock()

	_, ok := themes[name]
	return ok
}

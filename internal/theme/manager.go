package theme

import (
	"fmt"
	"sort"
	"strings"
	"sync"

	appErrors "inkwell/internal/errors"
)

var globalManager = &manager{
	palettes: make(map[string]Palette),
}

type manager struct {
	mu          sync.RWMutex
	palettes    map[string]Palette
	currentName string
}

// RegisterPalette adds a palette to the registry under p.Name.
// The first registered palette becomes the active one. Palettes that fail
// Validate, have no name, or reuse a registered name are rejected with
// CodeInvalidPalette and leave the registry unchanged.
func RegisterPalette(p Palette) error {
	if strings.TrimSpace(p.Name) == "" {
		return appErrors.New(appErrors.CodeInvalidPalette, "palette name is empty", nil)
	}
	if err := p.Validate(); err != nil {
		return err
	}

	globalManager.mu.Lock()
	defer globalManager.mu.Unlock()
	if _, exists := globalManager.palettes[p.Name]; exists {
		return appErrors.New(appErrors.CodeInvalidPalette,
			fmt.Sprintf("palette %q already registered", p.Name), nil)
	}
	globalManager.palettes[p.Name] = p
	if globalManager.currentName == "" {
		globalManager.currentName = p.Name
	}
	return nil
}

// SetPalette switches to a registered palette by name.
// Returns true if the palette was found and set.
func SetPalette(name string) bool {
	globalManager.mu.Lock()
	defer globalManager.mu.Unlock()
	if _, ok := globalManager.palettes[name]; ok {
		globalManager.currentName = name
		return true
	}
	return false
}

// Lookup returns a registered palette without selecting it.
func Lookup(name string) (Palette, bool) {
	globalManager.mu.RLock()
	defer globalManager.mu.RUnlock()
	p, ok := globalManager.palettes[name]
	return p, ok
}

// Current returns the active palette.
func Current() Palette {
	globalManager.mu.RLock()
	defer globalManager.mu.RUnlock()
	return globalManager.palettes[globalManager.currentName]
}

// CurrentName returns the name of the active palette.
func CurrentName() string {
	globalManager.mu.RLock()
	defer globalManager.mu.RUnlock()
	return globalManager.currentName
}

// Available returns all registered palette names in sorted order.
func Available() []string {
	globalManager.mu.RLock()
	defer globalManager.mu.RUnlock()
	return globalManager.sortedNames()
}

// CyclePalette switches to the next palette in the sorted list.
// Returns the name of the new active palette.
func CyclePalette() string {
	globalManager.mu.Lock()
	defer globalManager.mu.Unlock()

	names := globalManager.sortedNames()
	if len(names) == 0 {
		return ""
	}

	currentIdx := 0
	for i, name := range names {
		if name == globalManager.currentName {
			currentIdx = i
			break
		}
	}

	next := names[(currentIdx+1)%len(names)]
	globalManager.currentName = next
	return next
}

func (m *manager) sortedNames() []string {
	names := make([]string, 0, len(m.palettes))
	for name := range m.palettes {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

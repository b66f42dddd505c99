package theme

import (
	"testing"

	appErrors "inkwell/internal/errors"
)

// TestAllPalettesRegistered verifies that all built-in palettes are registered.
func TestAllPalettesRegistered(t *testing.T) {
	expected := []string{"default", "dracula", "github", "nord", "solarized"}

	availableMap := make(map[string]bool)
	for _, name := range Available() {
		availableMap[name] = true
	}

	for _, name := range expected {
		if !availableMap[name] {
			t.Errorf("expected palette %q to be registered, but it was not found", name)
		}
	}
}

// TestSetPalette verifies that palette switching works.
func TestSetPalette(t *testing.T) {
	t.Cleanup(func() { SetPalette("default") })

	for _, name := range []string{"dracula", "nord", "solarized", "default"} {
		if !SetPalette(name) {
			t.Errorf("SetPalette(%q) returned false, expected true", name)
			continue
		}
		if CurrentName() != name {
			t.Errorf("CurrentName() = %q, expected %q", CurrentName(), name)
		}
		if Current().Name != name {
			t.Errorf("Current().Name = %q, expected %q", Current().Name, name)
		}
	}
}

// TestSetInvalidPalette verifies that setting an unknown palette is rejected
// and leaves the active palette alone.
func TestSetInvalidPalette(t *testing.T) {
	before := CurrentName()
	if SetPalette("nonexistent-palette") {
		t.Error("SetPalette(\"nonexistent-palette\") returned true, expected false")
	}
	if CurrentName() != before {
		t.Errorf("CurrentName() changed to %q after failed SetPalette", CurrentName())
	}
}

// TestCyclePalette verifies that cycling visits every palette and wraps around.
func TestCyclePalette(t *testing.T) {
	t.Cleanup(func() { SetPalette("default") })
	SetPalette("default")

	names := Available()
	seen := map[string]bool{CurrentName(): true}
	for i := 0; i < len(names); i++ {
		seen[CyclePalette()] = true
	}

	if len(seen) != len(names) {
		t.Errorf("expected to cycle through %d palettes, saw %d", len(names), len(seen))
	}
	if CurrentName() != "default" {
		t.Errorf("after a full cycle CurrentName() = %q, expected wraparound to default", CurrentName())
	}
}

// TestPalettesComplete verifies every built-in palette defines every role in
// both modes.
func TestPalettesComplete(t *testing.T) {
	for _, name := range Available() {
		p, ok := Lookup(name)
		if !ok {
			t.Fatalf("Lookup(%q) failed", name)
		}
		if err := p.Validate(); err != nil {
			t.Errorf("palette %q: %v", name, err)
		}
		for _, role := range Roles() {
			if p.Light[role] == "" || p.Dark[role] == "" {
				t.Errorf("palette %q: role %q missing a light or dark value", name, role)
			}
		}
	}
}

// TestAvailableSorted verifies that Available returns sorted names.
func TestAvailableSorted(t *testing.T) {
	available := Available()
	for i := 1; i < len(available); i++ {
		if available[i-1] > available[i] {
			t.Errorf("Available() not sorted: %q > %q at index %d", available[i-1], available[i], i-1)
		}
	}
}

// TestRegisterPaletteRejects verifies that duplicate, unnamed and incomplete
// palettes are refused without touching the registry.
func TestRegisterPaletteRejects(t *testing.T) {
	before := Available()
	current := CurrentName()

	broken := Palette{
		Name:  "broken",
		Light: map[Role]string{RoleText: "#000"},
		Dark:  map[Role]string{},
	}
	replacement := Palette{Name: "default", Light: map[Role]string{}, Dark: Default.Dark}
	for role, color := range Default.Light {
		replacement.Light[role] = color
	}
	replacement.Light[RoleText] = "#123456"

	tests := []struct {
		name string
		p    Palette
	}{
		{"duplicate name", Nord},
		{"empty name", Palette{Light: Default.Light, Dark: Default.Dark}},
		{"missing dark role", broken},
		{"overwrite default", replacement},
	}
	for _, tt := range tests {
		err := RegisterPalette(tt.p)
		if err == nil {
			t.Errorf("%s: RegisterPalette succeeded, expected an error", tt.name)
			continue
		}
		if !appErrors.IsCode(err, appErrors.CodeInvalidPalette) {
			t.Errorf("%s: error code = %q, expected %q", tt.name, appErrors.CodeOf(err), appErrors.CodeInvalidPalette)
		}
	}

	if got := Available(); len(got) != len(before) {
		t.Errorf("Available() = %v after rejected registrations, expected %v", got, before)
	}
	if CurrentName() != current {
		t.Errorf("CurrentName() = %q, expected %q", CurrentName(), current)
	}
	if p, _ := Lookup("default"); p.Light[RoleText] != "#11181C" {
		t.Errorf("default palette was overwritten: text = %q", p.Light[RoleText])
	}
}

package theme

import (
	"fmt"
	"strings"
	"sync/atomic"

	appErrors "inkwell/internal/errors"

	"github.com/charmbracelet/lipgloss"
)

// Mode is the light/dark appearance preference.
type Mode int

const (
	Light Mode = iota
	Dark
)

// String returns the config spelling of the mode.
func (m Mode) String() string {
	if m == Dark {
		return "dark"
	}
	return "light"
}

// ModeAuto is the config value that defers to terminal detection.
const ModeAuto = "auto"

// ParseMode converts "light" or "dark" (any case) into a Mode.
func ParseMode(s string) (Mode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "light":
		return Light, nil
	case "dark":
		return Dark, nil
	}
	return Light, appErrors.New(appErrors.CodeInvalidMode,
		fmt.Sprintf("invalid mode %q (want light or dark)", s), nil)
}

// ResolveModeSetting maps a config value (light, dark, auto or empty) to a Mode.
// The detect func is only consulted for auto.
func ResolveModeSetting(setting string, detect func() Mode) (Mode, error) {
	s := strings.ToLower(strings.TrimSpace(setting))
	if s == "" || s == ModeAuto {
		if detect == nil {
			return Light, nil
		}
		return detect(), nil
	}
	return ParseMode(s)
}

// DetectMode probes the terminal background.
func DetectMode() Mode {
	if lipgloss.HasDarkBackground() {
		return Dark
	}
	return Light
}

// ModeFunc reports the current mode. Resolvers read it once per call.
type ModeFunc func() Mode

// Fixed returns a ModeFunc that always reports m.
func Fixed(m Mode) ModeFunc {
	return func() Mode { return m }
}

// ModeFlag is process-wide mode state. Readers take a snapshot; writers are
// whatever owns the preference (config, terminal probe, a UI toggle).
type ModeFlag struct {
	v atomic.Int32
}

// NewModeFlag returns a flag initialised to m.
func NewModeFlag(m Mode) *ModeFlag {
	f := &ModeFlag{}
	f.Set(m)
	return f
}

// Get returns the current mode. It satisfies ModeFunc.
func (f *ModeFlag) Get() Mode {
	return Mode(f.v.Load())
}

// Set stores m.
func (f *ModeFlag) Set(m Mode) {
	f.v.Store(int32(m))
}

// Toggle flips between light and dark and returns the new mode.
func (f *ModeFlag) Toggle() Mode {
	for {
		old := f.v.Load()
		next := int32(Dark)
		if Mode(old) == Dark {
			next = int32(Light)
		}
		if f.v.CompareAndSwap(old, next) {
			return Mode(next)
		}
	}
}

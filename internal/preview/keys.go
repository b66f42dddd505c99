package preview

import "github.com/charmbracelet/bubbles/key"

// KeyMap defines the gallery's keyboard shortcuts.
type KeyMap struct {
	Mode    key.Binding
	Palette key.Binding
	Copy    key.Binding
	Help    key.Binding
	Quit    key.Binding
}

// DefaultKeyMap returns the default gallery bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Mode: key.NewBinding(
			key.WithKeys("m"),
			key.WithHelp("m", "toggle light/dark"),
		),
		Palette: key.NewBinding(
			key.WithKeys("p", "tab"),
			key.WithHelp("p/tab", "next palette"),
		),
		Copy: key.NewBinding(
			key.WithKeys("y"),
			key.WithHelp("y", "copy text"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "more help"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c", "esc"),
			key.WithHelp("q", "quit"),
		),
	}
}

// ShortHelp implements help.KeyMap.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Mode, k.Palette, k.Help, k.Quit}
}

// FullHelp implements help.KeyMap.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Mode, k.Palette},
		{k.Copy, k.Help, k.Quit},
	}
}

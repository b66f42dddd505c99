// Package preview is an interactive gallery that renders every text variant
// with the active palette and lets the user flip the mode flag live.
package preview

import (
	"fmt"
	"strings"

	"inkwell/internal/term"
	"inkwell/internal/text"
	"inkwell/internal/theme"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/rs/zerolog"
)

// DefaultSample is shown for each variant when no sample is configured.
const DefaultSample = "The quick brown fox jumps over the lazy dog"

// Config wires the gallery to its collaborators.
type Config struct {
	Flag     *theme.ModeFlag
	Renderer *term.Renderer
	Sample   string
	// Copy defaults to the system clipboard.
	Copy   func(string) error
	Logger zerolog.Logger
}

// Model is the bubbletea model for the gallery.
type Model struct {
	flag     *theme.ModeFlag
	renderer *term.Renderer
	txt      *text.Text
	sample   string
	copyFn   func(string) error
	log      zerolog.Logger

	keys   KeyMap
	help   help.Model
	width  int
	status string
}

// New builds the gallery. Colors come from whichever palette is active in the
// theme registry, so cycling palettes takes effect on the next frame.
func New(cfg Config) *Model {
	flag := cfg.Flag
	if flag == nil {
		flag = theme.NewModeFlag(theme.DetectMode())
	}
	r := cfg.Renderer
	if r == nil {
		r = term.Default()
	}
	sample := cfg.Sample
	if strings.TrimSpace(sample) == "" {
		sample = DefaultSample
	}
	copyFn := cfg.Copy
	if copyFn == nil {
		copyFn = clipboard.WriteAll
	}
	return &Model{
		flag:     flag,
		renderer: r,
		txt:      text.New(theme.NewRegistryResolver(flag.Get), r),
		sample:   sample,
		copyFn:   copyFn,
		log:      cfg.Logger,
		keys:     DefaultKeyMap(),
		help:     help.New(),
	}
}

// Init implements tea.Model.
func (m *Model) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.help.Width = msg.Width
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			return m, tea.Quit
		case key.Matches(msg, m.keys.Mode):
			mode := m.flag.Toggle()
			m.status = "mode: " + mode.String()
			m.log.Debug().Str("mode", mode.String()).Msg("mode toggled")
		case key.Matches(msg, m.keys.Palette):
			name := theme.CyclePalette()
			m.status = "palette: " + name
			m.log.Debug().Str("palette", name).Msg("palette cycled")
		case key.Matches(msg, m.keys.Copy):
			if err := m.copyFn(m.PlainText()); err != nil {
				m.status = fmt.Sprintf("copy failed: %v", err)
				m.log.Warn().Err(err).Msg("copy to clipboard failed")
			} else {
				m.status = "copied gallery text"
			}
		case key.Matches(msg, m.keys.Help):
			m.help.ShowAll = !m.help.ShowAll
		}
	}
	return m, nil
}

// View implements tea.Model.
func (m *Model) View() string {
	var b strings.Builder

	header := fmt.Sprintf("palette %s · %s mode", theme.CurrentName(), m.flag.Get())
	b.WriteString(m.txt.Render(header, text.Props{Variant: text.VariantSubtitle}))
	b.WriteString("\n\n")

	muted := theme.Current().Adaptive(theme.RoleIcon)
	labelStyle := m.renderer.Lipgloss().NewStyle().Width(18).Foreground(muted)
	for _, v := range text.AllVariants() {
		b.WriteString(labelStyle.Render(string(v)))
		b.WriteString(m.txt.Render(m.sample, m.sampleProps(v)))
		b.WriteString("\n")
	}

	if m.status != "" {
		b.WriteString("\n")
		b.WriteString(m.txt.Render(m.status, text.Props{Variant: text.VariantDefaultSemiBold}))
		b.WriteString("\n")
	}
	b.WriteString("\n")
	b.WriteString(m.help.View(m.keys))
	return b.String()
}

func (m *Model) sampleProps(v text.Variant) text.Props {
	p := text.Props{Variant: v}
	if m.width > 20 {
		p.Attrs = text.Attrs{term.AttrWidth: m.width - 18, term.AttrNumberOfLines: 1}
	}
	return p
}

// PlainText is the gallery content without styling, one variant per line.
func (m *Model) PlainText() string {
	lines := make([]string, 0, len(text.AllVariants()))
	for _, v := range text.AllVariants() {
		lines = append(lines, fmt.Sprintf("%s: %s", v, m.txt.Element(m.sample, text.Props{Variant: v}).Text))
	}
	return strings.Join(lines, "\n")
}

// Mode reports the current mode flag value.
func (m *Model) Mode() theme.Mode {
	return m.flag.Get()
}

// Status returns the last status line.
func (m *Model) Status() string {
	return m.status
}

// Package term is the terminal host primitive for themed text. It turns a
// text.Element into an ANSI string with lipgloss.
package term

import (
	"io"
	"strings"

	"inkwell/internal/text"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
	"github.com/muesli/reflow/wordwrap"
	"github.com/muesli/termenv"
	"github.com/spf13/cast"
)

// Host attributes understood by Draw. Anything else in the bag is ignored.
const (
	AttrWidth         = "width"
	AttrNumberOfLines = "numberOfLines"
	AttrEllipsizeMode = "ellipsizeMode"
)

// Ellipsize modes for AttrEllipsizeMode.
const (
	EllipsizeTail = "tail"
	EllipsizeHead = "head"
	EllipsizeClip = "clip"
)

const ellipsis = "…"

// Renderer draws elements with a lipgloss renderer bound to one output.
type Renderer struct {
	lg *lipgloss.Renderer
}

// NewRenderer creates a renderer for w. Options are passed to termenv, e.g.
// termenv.WithProfile to pin the color profile.
func NewRenderer(w io.Writer, opts ...termenv.OutputOption) *Renderer {
	return &Renderer{lg: lipgloss.NewRenderer(w, opts...)}
}

// Default wraps lipgloss's process-wide renderer (stdout).
func Default() *Renderer {
	return &Renderer{lg: lipgloss.DefaultRenderer()}
}

// Lipgloss exposes the underlying renderer for callers composing their own
// styles on the same output.
func (r *Renderer) Lipgloss() *lipgloss.Renderer {
	return r.lg
}

// SetColorProfile pins the color profile, mainly for tests and --no-color.
func (r *Renderer) SetColorProfile(p termenv.Profile) {
	r.lg.SetColorProfile(p)
}

// HasDarkBackground reports the terminal background this renderer detected.
func (r *Renderer) HasDarkBackground() bool {
	return r.lg.HasDarkBackground()
}

// Draw renders e. Empty text draws nothing.
func (r *Renderer) Draw(e text.Element) string {
	if e.Text == "" {
		return ""
	}
	body := layout(e.Text, e.Attrs)
	return r.Style(e.Flatten()).Render(body)
}

// Style converts a flattened text style into a lipgloss style. Font size and
// line height have no terminal equivalent.
func (r *Renderer) Style(s text.Style) lipgloss.Style {
	st := r.lg.NewStyle()
	if s.Color != "" {
		st = st.Foreground(lipgloss.Color(s.Color))
	}
	if s.BackgroundColor != "" {
		st = st.Background(lipgloss.Color(s.BackgroundColor))
	}
	if isBold(s.FontWeight) {
		st = st.Bold(true)
	}
	if s.Italic != nil {
		st = st.Italic(*s.Italic)
	}
	if s.Underline != nil {
		st = st.Underline(*s.Underline)
	}
	if s.MarginTop != nil {
		st = st.MarginTop(*s.MarginTop)
	}
	if s.MarginBottom != nil {
		st = st.MarginBottom(*s.MarginBottom)
	}
	if s.MarginLeft != nil {
		st = st.MarginLeft(*s.MarginLeft)
	}
	if s.MarginRight != nil {
		st = st.MarginRight(*s.MarginRight)
	}
	return st
}

func isBold(w text.FontWeight) bool {
	switch w {
	case "", text.WeightNormal:
		return false
	case text.WeightBold:
		return true
	}
	n, err := cast.ToIntE(string(w))
	return err == nil && n >= 600
}

// layout applies the width and line-limit attributes.
func layout(s string, attrs text.Attrs) string {
	width := intAttr(attrs, AttrWidth)
	if width > 0 {
		s = wordwrap.String(s, width)
	}

	limit := intAttr(attrs, AttrNumberOfLines)
	if limit <= 0 {
		return s
	}
	lines := strings.Split(s, "\n")
	if len(lines) <= limit {
		return s
	}

	mode, _ := attrs[AttrEllipsizeMode].(string)
	switch mode {
	case EllipsizeClip:
		lines = lines[:limit]
	case EllipsizeHead:
		lines = lines[len(lines)-limit:]
		lines[0] = headEllipsis(lines[0], width)
	default:
		lines = lines[:limit]
		lines[limit-1] = tailEllipsis(lines[limit-1], width)
	}
	return strings.Join(lines, "\n")
}

func tailEllipsis(line string, width int) string {
	if width > 0 && ansi.StringWidth(line)+1 > width {
		line = ansi.Truncate(line, width-1, "")
	}
	return line + ellipsis
}

func headEllipsis(line string, width int) string {
	if w := ansi.StringWidth(line); width > 0 && w+1 > width {
		line = ansi.TruncateLeft(line, w-(width-1), "")
	}
	return ellipsis + line
}

func intAttr(attrs text.Attrs, key string) int {
	v, ok := attrs[key]
	if !ok {
		return 0
	}
	n, err := cast.ToIntE(v)
	if err != nil {
		return 0
	}
	return n
}

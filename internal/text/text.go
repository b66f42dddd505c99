// Package text implements the themed text component: it resolves the text
// color for the active mode, stacks it under the variant's style block and any
// caller style, and hands the result to a host primitive untouched.
package text

import (
	"fmt"

	"inkwell/internal/theme"

	"github.com/spf13/cast"
)

// Attrs is an open bag of host attributes (numberOfLines, testID, handlers,
// ...). The component forwards it without looking inside.
type Attrs map[string]any

// Props configures a single render.
type Props struct {
	Variant    Variant
	LightColor string
	DarkColor  string
	// Style is applied last and may override anything, including color.
	Style *Style
	Attrs Attrs
}

// Element is what the host primitive receives.
type Element struct {
	Text string
	// Styles is the ordered composition: resolved color, variant block,
	// then the caller's style when given.
	Styles []Style
	Attrs  Attrs
}

// Flatten merges Styles with last-write-wins.
func (e Element) Flatten() Style {
	return Merge(e.Styles...)
}

// ColorResolver is satisfied by *theme.Resolver.
type ColorResolver interface {
	Resolve(o theme.Overrides, role theme.Role) string
}

// Primitive draws an element, e.g. to a terminal.
type Primitive interface {
	Draw(e Element) string
}

// Text is the themed text component. It holds no per-render state.
type Text struct {
	resolver ColorResolver
	host     Primitive
}

// New returns a component resolving colors with r and drawing with host.
func New(r ColorResolver, host Primitive) *Text {
	return &Text{resolver: r, host: host}
}

// Element builds the host element for content without drawing it.
func (t *Text) Element(content any, p Props) Element {
	color := t.resolver.Resolve(theme.Overrides{Light: p.LightColor, Dark: p.DarkColor}, theme.RoleText)

	styles := []Style{{Color: color}, VariantStyle(p.Variant)}
	if p.Style != nil {
		styles = append(styles, Merge(*p.Style))
	}

	return Element{
		Text:   Content(content),
		Styles: styles,
		Attrs:  p.Attrs,
	}
}

// Render builds the element and draws it with the host primitive.
func (t *Text) Render(content any, p Props) string {
	return t.host.Draw(t.Element(content, p))
}

// Content coerces a content payload to text. nil renders as empty; numbers and
// bools use their textual form.
func Content(content any) string {
	switch v := content.(type) {
	case nil:
		return ""
	case string:
		return v
	case fmt.Stringer:
		return v.String()
	}
	s, err := cast.ToStringE(content)
	if err != nil {
		return fmt.Sprint(content)
	}
	return s
}

// Package theme provides the role-keyed color palettes and the light/dark
// color resolver shared by every themed primitive.
package theme

import (
	"fmt"
	"sort"
	"strings"

	appErrors "inkwell/internal/errors"

	"github.com/charmbracelet/lipgloss"
)

// Role names a color purpose independent of mode.
type Role string

const (
	RoleText            Role = "text"
	RoleBackground      Role = "background"
	RoleTint            Role = "tint"
	RoleIcon            Role = "icon"
	RoleTabIconDefault  Role = "tabIconDefault"
	RoleTabIconSelected Role = "tabIconSelected"
)

// Roles lists the roles every built-in palette defines, in display order.
func Roles() []Role {
	return []Role{
		RoleText,
		RoleBackground,
		RoleTint,
		RoleIcon,
		RoleTabIconDefault,
		RoleTabIconSelected,
	}
}

// Palette maps mode x role to a color string.
// Palettes are treated as immutable once registered.
type Palette struct {
	Name  string
	Light map[Role]string
	Dark  map[Role]string
}

// Color returns the palette entry for role in mode m.
func (p Palette) Color(m Mode, role Role) string {
	if m == Dark {
		return p.Dark[role]
	}
	return p.Light[role]
}

// Adaptive exposes a role as a lipgloss.AdaptiveColor so it can be used
// directly in styles that pick light/dark from the terminal.
func (p Palette) Adaptive(role Role) lipgloss.AdaptiveColor {
	return lipgloss.AdaptiveColor{Light: p.Light[role], Dark: p.Dark[role]}
}

// Lookup is the checked form of Adaptive.
func (p Palette) Lookup(role Role) (lipgloss.AdaptiveColor, error) {
	light, okLight := p.Light[role]
	dark, okDark := p.Dark[role]
	if !okLight || !okDark {
		return lipgloss.AdaptiveColor{}, appErrors.New(appErrors.CodeUnknownRole,
			fmt.Sprintf("palette %q has no role %q", p.Name, role), nil)
	}
	return lipgloss.AdaptiveColor{Light: light, Dark: dark}, nil
}

// RoleNames returns every role defined by the palette, sorted.
func (p Palette) RoleNames() []Role {
	seen := make(map[Role]struct{}, len(p.Light))
	for r := range p.Light {
		seen[r] = struct{}{}
	}
	for r := range p.Dark {
		seen[r] = struct{}{}
	}
	roles := make([]Role, 0, len(seen))
	for r := range seen {
		roles = append(roles, r)
	}
	sort.Slice(roles, func(i, j int) bool { return roles[i] < roles[j] })
	return roles
}

// Validate checks that both modes define the same roles with non-empty colors.
func (p Palette) Validate() error {
	var problems []string
	for _, role := range p.RoleNames() {
		light, okLight := p.Light[role]
		dark, okDark := p.Dark[role]
		switch {
		case !okLight:
			problems = append(problems, fmt.Sprintf("%s: missing light", role))
		case !okDark:
			problems = append(problems, fmt.Sprintf("%s: missing dark", role))
		}
		if okLight && strings.TrimSpace(light) == "" {
			problems = append(problems, fmt.Sprintf("%s: empty light", role))
		}
		if okDark && strings.TrimSpace(dark) == "" {
			problems = append(problems, fmt.Sprintf("%s: empty dark", role))
		}
	}
	if len(problems) == 0 {
		return nil
	}
	return appErrors.New(appErrors.CodeInvalidPalette,
		fmt.Sprintf("palette %q: %s", p.Name, strings.Join(problems, "; ")), nil)
}

package theme

// LinkColor is the fixed accent used by link text, shared with the default tint.
const LinkColor = "#0a7ea4"

// Default is the stock palette; it is registered first and therefore active
// until something else is selected.
var Default = Palette{
	Name: "default",
	Light: map[Role]string{
		RoleText:            "#11181C",
		RoleBackground:      "#fff",
		RoleTint:            LinkColor,
		RoleIcon:            "#687076",
		RoleTabIconDefault:  "#687076",
		RoleTabIconSelected: LinkColor,
	},
	Dark: map[Role]string{
		RoleText:            "#ECEDEE",
		RoleBackground:      "#151718",
		RoleTint:            "#fff",
		RoleIcon:            "#9BA1A6",
		RoleTabIconDefault:  "#9BA1A6",
		RoleTabIconSelected: "#fff",
	},
}

// GitHub palette
// https://primer.style/primitives/colors
var GitHub = Palette{
	Name: "github",
	Light: map[Role]string{
		RoleText:            "#24292f",
		RoleBackground:      "#ffffff",
		RoleTint:            "#0969da",
		RoleIcon:            "#57606a",
		RoleTabIconDefault:  "#57606a",
		RoleTabIconSelected: "#0969da",
	},
	Dark: map[Role]string{
		RoleText:            "#c9d1d9",
		RoleBackground:      "#0d1117",
		RoleTint:            "#58a6ff",
		RoleIcon:            "#8b949e",
		RoleTabIconDefault:  "#8b949e",
		RoleTabIconSelected: "#58a6ff",
	},
}

// Nord palette. Light uses Polar Night text on Snow Storm, dark the reverse.
// https://www.nordtheme.com/docs/colors-and-palettes
var Nord = Palette{
	Name: "nord",
	Light: map[Role]string{
		RoleText:            "#2E3440",
		RoleBackground:      "#ECEFF4",
		RoleTint:            "#5E81AC",
		RoleIcon:            "#3B4252",
		RoleTabIconDefault:  "#4C566A",
		RoleTabIconSelected: "#5E81AC",
	},
	Dark: map[Role]string{
		RoleText:            "#ECEFF4",
		RoleBackground:      "#2E3440",
		RoleTint:            "#88C0D0",
		RoleIcon:            "#8B95A7",
		RoleTabIconDefault:  "#4C566A",
		RoleTabIconSelected: "#88C0D0",
	},
}

// Dracula has no official light variant; light values follow the Material
// greys used by most Dracula ports.
var Dracula = Palette{
	Name: "dracula",
	Light: map[Role]string{
		RoleText:            "#212121",
		RoleBackground:      "#ffffff",
		RoleTint:            "#7e57c2",
		RoleIcon:            "#757575",
		RoleTabIconDefault:  "#757575",
		RoleTabIconSelected: "#7e57c2",
	},
	Dark: map[Role]string{
		RoleText:            "#f8f8f2",
		RoleBackground:      "#282a36",
		RoleTint:            "#bd93f9",
		RoleIcon:            "#6272a4",
		RoleTabIconDefault:  "#6272a4",
		RoleTabIconSelected: "#bd93f9",
	},
}

// Solarized palette
// https://ethanschoonover.com/solarized/
var Solarized = Palette{
	Name: "solarized",
	Light: map[Role]string{
		RoleText:            "#657b83",
		RoleBackground:      "#fdf6e3",
		RoleTint:            "#268bd2",
		RoleIcon:            "#93a1a1",
		RoleTabIconDefault:  "#93a1a1",
		RoleTabIconSelected: "#268bd2",
	},
	Dark: map[Role]string{
		RoleText:            "#839496",
		RoleBackground:      "#002b36",
		RoleTint:            "#268bd2",
		RoleIcon:            "#586e75",
		RoleTabIconDefault:  "#586e75",
		RoleTabIconSelected: "#268bd2",
	},
}

func init() {
	for _, p := range []Palette{Default, GitHub, Nord, Dracula, Solarized} {
		if err := RegisterPalette(p); err != nil {
			panic(err)
		}
	}
}

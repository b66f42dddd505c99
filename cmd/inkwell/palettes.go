package main

import (
	"fmt"

	"inkwell/internal/config"
	"inkwell/internal/debug"
	"inkwell/internal/text"
	"inkwell/internal/theme"

	"github.com/spf13/cobra"
)

func newPalettesCmd(e *env) *cobra.Command {
	var save string

	cmd := &cobra.Command{
		Use:   "palettes",
		Short: "List palettes, or persist one with --save",
		RunE: func(cmd *cobra.Command, args []string) error {
			if save != "" {
				if err := config.SavePalette(save); err != nil {
					return err
				}
				theme.SetPalette(save)
				debug.Logf("saved palette %s", save)
				fmt.Fprintf(e.out, "Saved palette %s\n", save)
				return nil
			}

			current := theme.CurrentName()
			for _, name := range theme.Available() {
				marker := "  "
				variant := text.VariantDefault
				if name == current {
					marker = "* "
					variant = text.VariantDefaultSemiBold
				}
				p, _ := theme.Lookup(name)
				swatch := e.txt.Render(name, text.Props{
					Variant:    variant,
					LightColor: p.Light[theme.RoleTint],
					DarkColor:  p.Dark[theme.RoleTint],
				})
				fmt.Fprintf(e.out, "%s%s\n", marker, swatch)
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&save, "save", "", "Persist this palette to the config file")
	return cmd
}

func newRolesCmd(e *env) *cobra.Command {
	return &cobra.Command{
		Use:   "roles [role...]",
		Short: "Show each role's resolved color for the active palette and mode",
		Example: `  inkwell roles
  inkwell --mode dark roles tint text`,
		RunE: func(cmd *cobra.Command, args []string) error {
			p := theme.Current()
			roles := p.RoleNames()
			if len(args) > 0 {
				roles = roles[:0]
				for _, arg := range args {
					role := theme.Role(arg)
					if _, err := p.Lookup(role); err != nil {
						return err
					}
					roles = append(roles, role)
				}
			}

			resolver := theme.NewResolver(p, e.flag.Get)
			fmt.Fprintf(e.out, "%s (%s)\n", p.Name, e.flag.Get())
			for _, role := range roles {
				color := resolver.Resolve(theme.Overrides{}, role)
				swatch := e.txt.Render(color, text.Props{LightColor: color, DarkColor: color})
				fmt.Fprintf(e.out, "  %-16s %s\n", role, swatch)
			}
			return nil
		},
	}
}

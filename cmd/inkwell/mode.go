package main

import (
	"fmt"

	"inkwell/internal/config"
	"inkwell/internal/debug"
	"inkwell/internal/theme"

	"github.com/spf13/cobra"
)

func newModeCmd(e *env) *cobra.Command {
	var save string

	cmd := &cobra.Command{
		Use:   "mode",
		Short: "Show the appearance mode, or persist one with --save",
		Example: `  inkwell mode
  inkwell mode --save dark`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if save == "" {
				fmt.Fprintf(e.out, "%s (%s)\n", e.settings.Mode, e.flag.Get())
				return nil
			}

			if err := config.SaveMode(save); err != nil {
				return err
			}
			mode, err := theme.ResolveModeSetting(save, e.detect)
			if err != nil {
				return err
			}
			e.flag.Set(mode)
			debug.Logf("saved mode %s (%s)", save, mode)
			fmt.Fprintf(e.out, "Saved mode %s\n", save)
			return nil
		},
	}
	cmd.Flags().StringVar(&save, "save", "", "Persist this mode (light, dark or auto) to the config file")
	return cmd
}

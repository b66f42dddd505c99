package main

import (
	"fmt"

	"inkwell/internal/debug"
	"inkwell/internal/preview"

	"github.com/spf13/cobra"
)

func newPreviewCmd(e *env) *cobra.Command {
	var sample string

	cmd := &cobra.Command{
		Use:   "preview",
		Short: "Interactive gallery of every variant",
		RunE: func(cmd *cobra.Command, args []string) error {
			model := preview.New(preview.Config{
				Flag:     e.flag,
				Renderer: e.renderer,
				Sample:   sample,
				Logger:   debug.Logger(),
			})
			debug.Log("starting preview")
			return runProgram(model, e.program)
		},
	}
	cmd.Flags().StringVar(&sample, "sample", "", "Sample text shown for each variant")
	return cmd
}

func runProgram(model *preview.Model, factory programFactory) error {
	if factory == nil {
		return fmt.Errorf("program factory is nil")
	}
	prog := factory(model)
	if prog == nil {
		return fmt.Errorf("program is nil")
	}
	if _, err := prog.Run(); err != nil {
		return fmt.Errorf("run preview: %w", err)
	}
	return nil
}

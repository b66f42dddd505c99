package main

import (
	"fmt"
	"io"
	"os"

	"inkwell/internal/config"
	"inkwell/internal/debug"
	"inkwell/internal/term"
	"inkwell/internal/text"
	"inkwell/internal/theme"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/muesli/termenv"
	"github.com/spf13/cobra"
)

type programRunner interface {
	Run() (tea.Model, error)
}

type programFactory func(tea.Model) programRunner

// env carries the collaborators every command shares. Tests swap the output,
// color profile, background detection and program factory. A nil detect asks
// the renderer for the terminal background.
type env struct {
	out     io.Writer
	errOut  io.Writer
	profile *termenv.Profile
	detect  func() theme.Mode
	program programFactory

	renderer *term.Renderer
	settings config.Theme
	flag     *theme.ModeFlag
	txt      *text.Text
}

func defaultEnv() *env {
	return &env{
		out:    os.Stdout,
		errOut: os.Stderr,
		program: func(m tea.Model) programRunner {
			return tea.NewProgram(m, tea.WithAltScreen())
		},
	}
}

type globalFlags struct {
	debug   bool
	mode    string
	palette string
	noColor bool
}

// NewRootCmd builds the CLI with all subcommands registered.
func NewRootCmd(e *env) *cobra.Command {
	var g globalFlags

	root := &cobra.Command{
		Use:           "inkwell",
		Short:         "Themed terminal text",
		Long:          "inkwell renders text with light/dark aware palettes and fixed typographic variants.",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return e.setup(cmd, g)
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			debug.Close()
		},
	}

	root.PersistentFlags().BoolVar(&g.debug, "debug", false, "Write a debug log to ~/.inkwell/debug.log")
	root.PersistentFlags().StringVar(&g.mode, "mode", "", "Appearance mode: light, dark or auto")
	root.PersistentFlags().StringVar(&g.palette, "palette", "", "Palette name (see `inkwell palettes`)")
	root.PersistentFlags().BoolVar(&g.noColor, "no-color", false, "Disable ANSI colors")

	root.AddCommand(newRenderCmd(e))
	root.AddCommand(newPalettesCmd(e))
	root.AddCommand(newRolesCmd(e))
	root.AddCommand(newModeCmd(e))
	root.AddCommand(newPreviewCmd(e))
	root.AddCommand(newVersionCmd(e))
	return root
}

// setup loads config, applies flag overrides, and builds the renderer, mode
// flag and text component.
func (e *env) setup(cmd *cobra.Command, g globalFlags) error {
	if err := config.Initialize(); err != nil {
		return fmt.Errorf("initialize config: %w", err)
	}

	overrides := map[string]any{}
	flags := cmd.Flags()
	if flags.Changed("debug") {
		overrides[config.KeyDebug] = g.debug
	}
	if flags.Changed("mode") {
		overrides[config.KeyMode] = g.mode
	}
	if flags.Changed("palette") {
		overrides[config.KeyPalette] = g.palette
	}
	if flags.Changed("no-color") {
		overrides[config.KeyNoColor] = g.noColor
	}
	if err := config.ApplyOverrides(overrides); err != nil {
		return err
	}

	if err := debug.InitLevel(config.GetBool(config.KeyDebug), config.GetString(config.KeyLogLevel)); err != nil {
		fmt.Fprintf(e.errOut, "Warning: debug log unavailable: %v\n", err)
	} else if debug.Enabled() {
		if path, err := debug.GetLogPath(); err == nil {
			fmt.Fprintf(e.errOut, "Debug log: %s\n", path)
		}
	}
	log := debug.Logger()

	settings, err := e.loadTheme(cmd)
	if err != nil {
		return err
	}
	e.settings = settings
	theme.SetPalette(settings.Palette)

	e.renderer = term.NewRenderer(e.out)
	switch {
	case config.GetBool(config.KeyNoColor):
		e.renderer.SetColorProfile(termenv.Ascii)
	case e.profile != nil:
		e.renderer.SetColorProfile(*e.profile)
	}

	if e.detect == nil {
		renderer := e.renderer
		e.detect = func() theme.Mode {
			if renderer.HasDarkBackground() {
				return theme.Dark
			}
			return theme.Light
		}
	}
	mode, err := theme.ResolveModeSetting(settings.Mode, e.detect)
	if err != nil {
		return err
	}
	e.flag = theme.NewModeFlag(mode)
	e.txt = text.New(theme.NewRegistryResolver(e.flag.Get), e.renderer)

	log.Debug().
		Str("command", cmd.Name()).
		Str("palette", settings.Palette).
		Str("mode_setting", settings.Mode).
		Str("mode", mode.String()).
		Msg("theme configured")
	return nil
}

// loadTheme validates the theme settings. Commands run with --save are there
// to repair the config, so they fall back to defaults and only warn.
func (e *env) loadTheme(cmd *cobra.Command) (config.Theme, error) {
	if !savesConfig(cmd) {
		return config.LoadTheme()
	}
	settings, err := config.LoadThemeWithFallback()
	if err != nil {
		fmt.Fprintf(e.errOut, "Warning: %v; using palette %s, mode %s\n", err, settings.Palette, settings.Mode)
		log := debug.Logger()
		log.Warn().Err(err).Str("command", cmd.Name()).Msg("invalid theme config ignored")
	}
	return settings, nil
}

func savesConfig(cmd *cobra.Command) bool {
	f := cmd.Flags().Lookup("save")
	return f != nil && f.Changed
}

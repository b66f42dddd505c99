package main

import (
	"fmt"
	"strings"

	"inkwell/internal/debug"
	"inkwell/internal/term"
	"inkwell/internal/text"

	"github.com/spf13/cobra"
)

type renderFlags struct {
	variant    string
	light      string
	dark       string
	color      string
	background string
	bold       bool
	italic     bool
	underline  bool
	width      int
	lines      int
	ellipsize  string
	attrs      []string
}

func newRenderCmd(e *env) *cobra.Command {
	var f renderFlags

	cmd := &cobra.Command{
		Use:   "render [text...]",
		Short: "Render text with a variant and the active palette",
		Example: `  inkwell render "Hello World"
  inkwell render --variant title --light '#fff' --dark '#000' Title
  inkwell render --variant link --color '#ff00ff' docs`,
		RunE: func(cmd *cobra.Command, args []string) error {
			variant, err := text.ParseVariant(f.variant)
			if err != nil {
				return err
			}

			props := text.Props{
				Variant:    variant,
				LightColor: f.light,
				DarkColor:  f.dark,
				Attrs:      text.Attrs{},
			}
			if style := f.style(cmd); !style.IsZero() {
				props.Style = &style
			}
			if f.width > 0 {
				props.Attrs[term.AttrWidth] = f.width
			}
			if f.lines > 0 {
				props.Attrs[term.AttrNumberOfLines] = f.lines
			}
			if f.ellipsize != "" {
				props.Attrs[term.AttrEllipsizeMode] = f.ellipsize
			}
			for _, kv := range f.attrs {
				k, v, ok := strings.Cut(kv, "=")
				if !ok {
					return fmt.Errorf("invalid --attr %q (want key=value)", kv)
				}
				props.Attrs[k] = v
			}

			content := strings.Join(args, " ")
			log := debug.Logger()
			log.Debug().
				Str("variant", string(variant)).
				Int("attrs", len(props.Attrs)).
				Msg("render")

			out := e.txt.Render(content, props)
			if out == "" {
				return nil
			}
			_, err = fmt.Fprintln(e.out, out)
			return err
		},
	}

	flags := cmd.Flags()
	flags.StringVarP(&f.variant, "variant", "v", string(text.VariantDefault), "Text variant: default, defaultSemiBold, title, subtitle, link")
	flags.StringVar(&f.light, "light", "", "Color override used in light mode")
	flags.StringVar(&f.dark, "dark", "", "Color override used in dark mode")
	flags.StringVar(&f.color, "color", "", "Color applied last, overriding theme and variant")
	flags.StringVar(&f.background, "background", "", "Background color")
	flags.BoolVar(&f.bold, "bold", false, "Force bold weight")
	flags.BoolVar(&f.italic, "italic", false, "Italic text")
	flags.BoolVar(&f.underline, "underline", false, "Underlined text")
	flags.IntVar(&f.width, "width", 0, "Wrap at this many columns")
	flags.IntVar(&f.lines, "lines", 0, "Limit output to this many lines")
	flags.StringVar(&f.ellipsize, "ellipsize", "", "Ellipsis position when truncating: tail, head, clip")
	flags.StringArrayVar(&f.attrs, "attr", nil, "Extra host attribute key=value (repeatable)")
	return cmd
}

// style builds the caller style from explicitly set flags only.
func (f renderFlags) style(cmd *cobra.Command) text.Style {
	var s text.Style
	s.Color = f.color
	s.BackgroundColor = f.background
	flags := cmd.Flags()
	if flags.Changed("bold") {
		s.FontWeight = text.WeightNormal
		if f.bold {
			s.FontWeight = text.WeightBold
		}
	}
	if flags.Changed("italic") {
		s.Italic = text.Bool(f.italic)
	}
	if flags.Changed("underline") {
		s.Underline = text.Bool(f.underline)
	}
	return s
}

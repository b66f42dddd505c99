package text

// FontWeight is a CSS-style weight keyword or number.
type FontWeight string

const (
	WeightNormal   FontWeight = "normal"
	WeightBold     FontWeight = "bold"
	WeightSemiBold FontWeight = "600"
)

// Style is a partial style record. Empty strings and nil pointers are unset
// and do not override earlier records when merged.
type Style struct {
	Color           string
	BackgroundColor string
	FontSize        *int
	LineHeight      *int
	FontWeight      FontWeight
	Italic          *bool
	Underline       *bool
	MarginTop       *int
	MarginBottom    *int
	MarginLeft      *int
	MarginRight     *int
}

// Int returns a pointer to v, for filling optional Style fields.
func Int(v int) *int { return &v }

// Bool returns a pointer to v, for filling optional Style fields.
func Bool(v bool) *bool { return &v }

// IsZero reports whether no field is set.
func (s Style) IsZero() bool {
	return s == Style{}
}

// Merge flattens styles in order; for each field the last record that sets
// it wins.
func Merge(styles ...Style) Style {
	var out Style
	for _, s := range styles {
		if s.Color != "" {
			out.Color = s.Color
		}
		if s.BackgroundColor != "" {
			out.BackgroundColor = s.BackgroundColor
		}
		if s.FontWeight != "" {
			out.FontWeight = s.FontWeight
		}
		out.FontSize = pick(out.FontSize, s.FontSize)
		out.LineHeight = pick(out.LineHeight, s.LineHeight)
		out.Italic = pick(out.Italic, s.Italic)
		out.Underline = pick(out.Underline, s.Underline)
		out.MarginTop = pick(out.MarginTop, s.MarginTop)
		out.MarginBottom = pick(out.MarginBottom, s.MarginBottom)
		out.MarginLeft = pick(out.MarginLeft, s.MarginLeft)
		out.MarginRight = pick(out.MarginRight, s.MarginRight)
	}
	return out
}

func pick[T any](cur, next *T) *T {
	if next == nil {
		return cur
	}
	v := *next
	return &v
}

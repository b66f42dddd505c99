package text

import (
	"fmt"

	appErrors "inkwell/internal/errors"
	"inkwell/internal/theme"
)

// Variant selects a fixed typographic style block.
type Variant string

const (
	VariantDefault         Variant = "default"
	VariantDefaultSemiBold Variant = "defaultSemiBold"
	VariantTitle           Variant = "title"
	VariantSubtitle        Variant = "subtitle"
	VariantLink            Variant = "link"
)

// subtitle leaves LineHeight unset so the host primitive's default applies.
var variantStyles = map[Variant]Style{
	VariantDefault: {
		FontSize:   Int(16),
		LineHeight: Int(24),
		FontWeight: WeightNormal,
	},
	VariantDefaultSemiBold: {
		FontSize:   Int(16),
		LineHeight: Int(24),
		FontWeight: WeightSemiBold,
	},
	VariantTitle: {
		FontSize:   Int(32),
		LineHeight: Int(32),
		FontWeight: WeightBold,
	},
	VariantSubtitle: {
		FontSize:   Int(20),
		FontWeight: WeightBold,
	},
	VariantLink: {
		FontSize:   Int(16),
		LineHeight: Int(30),
		Color:      theme.LinkColor,
	},
}

// AllVariants lists the variants in display order.
func AllVariants() []Variant {
	return []Variant{
		VariantDefault,
		VariantDefaultSemiBold,
		VariantTitle,
		VariantSubtitle,
		VariantLink,
	}
}

// VariantStyle returns the style block for v. An empty variant means
// default; an unknown one yields an empty block.
func VariantStyle(v Variant) Style {
	if v == "" {
		v = VariantDefault
	}
	return Merge(variantStyles[v])
}

// ParseVariant validates a variant name supplied at runtime, e.g. from a flag.
func ParseVariant(s string) (Variant, error) {
	if s == "" {
		return VariantDefault, nil
	}
	v := Variant(s)
	if _, ok := variantStyles[v]; !ok {
		return "", appErrors.New(appErrors.CodeUnknownVariant,
			fmt.Sprintf("unknown variant %q", s), nil)
	}
	return v, nil
}

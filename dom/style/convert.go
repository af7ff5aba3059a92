package style

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/npillmayer/tyse/core/dimen"
	"github.com/npillmayer/tyse/core/percent"
	"github.com/npillmayer/udt/binding"
	"github.com/npillmayer/udt/css"
	"github.com/npillmayer/udt/expr"
)

// Converters from expression values to style value types. Composite values
// are given either as a scalar, which applies to every component, or as an
// array of components.

// ColorFromValue accepts a color name or hex string, or an unsigned
// integer 0xRRGGBBAA.
func ColorFromValue(v expr.Value) (Color, error) {
	switch v.Kind {
	case expr.StringKind:
		return ParseColor(v.Str)
	case expr.UintKind:
		return ColorFromUint(v.Uint)
	case expr.IntKind:
		if v.Int >= 0 {
			return ColorFromUint(uint64(v.Int))
		}
	}
	return Color{}, fmt.Errorf("cannot convert %s to a color", v)
}

func components(v expr.Value) []expr.Value {
	if v.Kind == expr.ArrayKind {
		return v.Items
	}
	if v.Kind == expr.StringKind && strings.ContainsAny(strings.TrimSpace(v.Str), " \t") {
		var items []expr.Value
		for _, f := range strings.Fields(v.Str) {
			items = append(items, expr.Str(f))
		}
		return items
	}
	return []expr.Value{v}
}

func float32s(v expr.Value) ([]float32, error) {
	comps := components(v)
	fs := make([]float32, len(comps))
	for i, c := range comps {
		f, err := binding.ToFloat(c)
		if err != nil {
			return nil, err
		}
		fs[i] = float32(f)
	}
	return fs, nil
}

// ColorQuadFromValue accepts 1, 2 or 4 colors.
func ColorQuadFromValue(v expr.Value) (ColorQuad, error) {
	comps := components(v)
	colors := make([]Color, len(comps))
	for i, c := range comps {
		col, err := ColorFromValue(c)
		if err != nil {
			return ColorQuad{}, err
		}
		colors[i] = col
	}
	return Distribute4(colors)
}

// InsetsFromValue accepts 1, 2 or 4 numbers.
func InsetsFromValue(v expr.Value) (Insets, error) {
	fs, err := float32s(v)
	if err != nil {
		return Insets{}, err
	}
	return Distribute4(fs)
}

// RadiiFromValue accepts 1, 2 or 4 numbers.
func RadiiFromValue(v expr.Value) (CornerRadii, error) {
	fs, err := float32s(v)
	if err != nil {
		return CornerRadii{}, err
	}
	return RadiiFrom(fs)
}

// ParseDimen accepts a length with a CSS unit ("12pt", "10px"), a
// percentage like "50%" or "auto". A number without a unit is a number of
// pixels. Lengths with a unit must be integral.
func ParseDimen(s string) (css.DimenT, error) {
	s = strings.TrimSpace(s)
	if strings.EqualFold(s, "auto") {
		return css.Auto(), nil
	}
	if f, err := strconv.ParseFloat(s, 32); err == nil {
		return css.Px(float32(f)), nil
	}
	du, isPercent, err := dimen.Parse(s)
	if err != nil {
		return css.DimenT{}, fmt.Errorf("malformed dimension %q: %w", s, err)
	}
	if isPercent {
		if du < 0 || du > 100 {
			return css.DimenT{}, fmt.Errorf("percentage %q out of range", s)
		}
		return css.Percentage(percent.FromInt(int(du))), nil
	}
	return css.JustDimen(du), nil
}

func dimenFromValue(v expr.Value) (css.DimenT, error) {
	if v.Kind == expr.StringKind {
		return ParseDimen(v.Str)
	}
	f, err := binding.ToFloat(v)
	if err != nil {
		return css.DimenT{}, err
	}
	return css.Px(float32(f)), nil
}

// SizeFromValue accepts one dimension for both width and height, or two.
func SizeFromValue(v expr.Value) (Size, error) {
	comps := components(v)
	if len(comps) != 1 && len(comps) != 2 {
		return Size{}, fmt.Errorf("%w: expecting 1 or 2 dimensions, have %d", ErrValueCount, len(comps))
	}
	w, err := dimenFromValue(comps[0])
	if err != nil {
		return Size{}, err
	}
	h := w
	if len(comps) == 2 {
		if h, err = dimenFromValue(comps[1]); err != nil {
			return Size{}, err
		}
	}
	return Size{W: w, H: h}, nil
}

// Vec2FromValue accepts one number for both components, or two.
func Vec2FromValue(v expr.Value) (Vec2, error) {
	fs, err := float32s(v)
	if err != nil {
		return Vec2{}, err
	}
	switch len(fs) {
	case 1:
		return Vec2{fs[0], fs[0]}, nil
	case 2:
		return Vec2{fs[0], fs[1]}, nil
	}
	return Vec2{}, fmt.Errorf("%w: expecting 1 or 2 numbers, have %d", ErrValueCount, len(fs))
}

// AnchorFromValue accepts an anchor name or two fractions.
func AnchorFromValue(v expr.Value) (Anchor, error) {
	if comps := components(v); len(comps) == 1 && comps[0].Kind == expr.StringKind {
		if a, ok := AnchorNamed(comps[0].Str); ok {
			return a, nil
		}
	}
	fs, err := float32s(v)
	if err != nil {
		return Anchor{}, fmt.Errorf("cannot convert %s to an anchor point", v)
	}
	if len(fs) != 2 {
		return Anchor{}, fmt.Errorf("%w: expecting an anchor name or 2 numbers, have %d", ErrValueCount, len(fs))
	}
	return Anchor{fs[0], fs[1]}, nil
}

// GradientFromValue accepts an optional orientation followed by two colors.
func GradientFromValue(v expr.Value) (Gradient, error) {
	comps := components(v)
	g := Gradient{}
	if len(comps) == 3 {
		o, ok := ParseOrientation(comps[0].Text())
		if !ok {
			return g, fmt.Errorf("invalid gradient orientation %s", comps[0])
		}
		g.Orientation = o
		comps = comps[1:]
	}
	if len(comps) != 2 {
		return g, fmt.Errorf("%w: expecting two gradient colors, have %d", ErrValueCount, len(comps))
	}
	var err error
	if g.From, err = ColorFromValue(comps[0]); err != nil {
		return g, err
	}
	g.To, err = ColorFromValue(comps[1])
	return g, err
}

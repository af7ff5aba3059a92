package style

import (
	"fmt"
	"strings"

	"github.com/npillmayer/udt/binding"
	"github.com/npillmayer/udt/css"
	"github.com/npillmayer/udt/expr"
	"github.com/npillmayer/udt/maybe"
)

// Style is a record of style properties, each of which may be unset.
type Style struct {
	Size            maybe.Maybe[Size]
	MinSize         maybe.Maybe[Size]
	MaxSize         maybe.Maybe[Size]
	Color           maybe.Maybe[Color]
	BackgroundColor maybe.Maybe[Color]
	BorderColor     maybe.Maybe[ColorQuad]
	BorderWidth     maybe.Maybe[Insets]
	Padding         maybe.Maybe[Insets]
	Margin          maybe.Maybe[Insets]
	CornerRadius    maybe.Maybe[CornerRadii]
	Offset          maybe.Maybe[Vec2]
	Anchor          maybe.Maybe[Anchor]
	Flow            maybe.Maybe[Flow]
	Gradient        maybe.Maybe[Gradient]
	Opacity         maybe.Maybe[float64]
	FontSize        maybe.Maybe[float64]
	ZIndex          maybe.Maybe[int64]
	Grow            maybe.Maybe[uint64]
	Visible         maybe.Maybe[bool]
	Clip            maybe.Maybe[bool]
}

// field connects a style property to the record: binding by name, merging
// and formatting.
type field struct {
	desc   *binding.Descriptor[*Style]
	isSet  func(*Style) bool
	merge  func(dst, src *Style)
	format func(*Style) string
}

func prop[T any](name string, kind binding.Kind, conv func(expr.Value) (T, error),
	f func(*Style) *maybe.Maybe[T]) field {
	//
	return field{
		desc: binding.Prop(name, kind, conv,
			func(s *Style) T { v, _ := f(s).Get(); return v },
			func(s *Style, x T) { *f(s) = maybe.Just(x) }),
		isSet: func(s *Style) bool { return f(s).IsJust() },
		merge: func(dst, src *Style) { *f(dst) = f(dst).Or(*f(src)) },
		format: func(s *Style) string {
			v, _ := f(s).Get()
			return fmt.Sprint(v)
		},
	}
}

func float64Of(v expr.Value) (float64, error) { return binding.ToFloat(v) }

var fields = []field{
	prop("size", binding.KindSize, SizeFromValue, func(s *Style) *maybe.Maybe[Size] { return &s.Size }),
	prop("min-size", binding.KindSize, SizeFromValue, func(s *Style) *maybe.Maybe[Size] { return &s.MinSize }),
	prop("max-size", binding.KindSize, SizeFromValue, func(s *Style) *maybe.Maybe[Size] { return &s.MaxSize }),
	prop("color", binding.KindColor, ColorFromValue, func(s *Style) *maybe.Maybe[Color] { return &s.Color }),
	prop("background-color", binding.KindColor, ColorFromValue, func(s *Style) *maybe.Maybe[Color] { return &s.BackgroundColor }),
	prop("border-color", binding.KindColorQuad, ColorQuadFromValue, func(s *Style) *maybe.Maybe[ColorQuad] { return &s.BorderColor }),
	prop("border-width", binding.KindInsets, InsetsFromValue, func(s *Style) *maybe.Maybe[Insets] { return &s.BorderWidth }),
	prop("padding", binding.KindInsets, InsetsFromValue, func(s *Style) *maybe.Maybe[Insets] { return &s.Padding }),
	prop("margin", binding.KindInsets, InsetsFromValue, func(s *Style) *maybe.Maybe[Insets] { return &s.Margin }),
	prop("corner-radius", binding.KindRadii, RadiiFromValue, func(s *Style) *maybe.Maybe[CornerRadii] { return &s.CornerRadius }),
	prop("offset", binding.KindVec2, Vec2FromValue, func(s *Style) *maybe.Maybe[Vec2] { return &s.Offset }),
	prop("anchor", binding.KindAnchor, AnchorFromValue, func(s *Style) *maybe.Maybe[Anchor] { return &s.Anchor }),
	prop("flow", binding.KindFlow, ParseFlow, func(s *Style) *maybe.Maybe[Flow] { return &s.Flow }),
	prop("gradient", binding.KindGradient, GradientFromValue, func(s *Style) *maybe.Maybe[Gradient] { return &s.Gradient }),
	prop("opacity", binding.KindFloat, float64Of, func(s *Style) *maybe.Maybe[float64] { return &s.Opacity }),
	prop("font-size", binding.KindFloat, float64Of, func(s *Style) *maybe.Maybe[float64] { return &s.FontSize }),
	prop("z-index", binding.KindInt, binding.ToInt, func(s *Style) *maybe.Maybe[int64] { return &s.ZIndex }),
	prop("grow", binding.KindUint, binding.ToUint, func(s *Style) *maybe.Maybe[uint64] { return &s.Grow }),
	prop("visible", binding.KindBool, binding.ToBool, func(s *Style) *maybe.Maybe[bool] { return &s.Visible }),
	prop("clip", binding.KindBool, binding.ToBool, func(s *Style) *maybe.Maybe[bool] { return &s.Clip }),
}

// Properties is the descriptor table of style properties.
var Properties = func() *binding.Table[*Style] {
	descs := make([]*binding.Descriptor[*Style], len(fields))
	for i, f := range fields {
		descs[i] = f.desc
	}
	return binding.NewTable(descs...)
}()

// Set assigns a converted value to the property called name.
func (s *Style) Set(name string, x any) error {
	return Properties.Assign(s, name, x)
}

// Get returns the value of the property called name and whether it is set.
func (s *Style) Get(name string) (any, bool) {
	key := binding.Normalize(name)
	for _, f := range fields {
		if binding.Normalize(f.desc.Name) == key {
			if !f.isSet(s) {
				return nil, false
			}
			return f.desc.Get(s), true
		}
	}
	return nil, false
}

// IsEmpty is true if no property of s is set.
func (s *Style) IsEmpty() bool {
	if s == nil {
		return true
	}
	for _, f := range fields {
		if f.isSet(s) {
			return false
		}
	}
	return true
}

// Merge overwrites every property of s which is set in other. Properties
// unset in other are left untouched. It returns s to allow for chaining.
func (s *Style) Merge(other *Style) *Style {
	if other == nil {
		return s
	}
	for _, f := range fields {
		f.merge(s, other)
	}
	return s
}

// Clone returns a copy of s.
func (s *Style) Clone() *Style {
	if s == nil {
		return &Style{}
	}
	c := *s
	return &c
}

// Each calls f for every property set in s, in declaration order of the
// property set.
func (s *Style) Each(f func(name string, value string)) {
	for _, fld := range fields {
		if fld.isSet(s) {
			f(fld.desc.Name, fld.format(s))
		}
	}
}

func (s *Style) String() string {
	if s == nil {
		return "{}"
	}
	var b strings.Builder
	b.WriteByte('{')
	s.Each(func(name, value string) {
		if b.Len() > 1 {
			b.WriteString("; ")
		}
		b.WriteString(name)
		b.WriteString(": ")
		b.WriteString(value)
	})
	b.WriteByte('}')
	return b.String()
}

// Default returns the style every cascade starts from. Properties not set
// by any rule take these values.
func Default() *Style {
	return &Style{
		Size:            maybe.Just(Size{W: css.Auto(), H: css.Auto()}),
		Color:           maybe.Just(namedColors["black"]),
		BackgroundColor: maybe.Just(namedColors["transparent"]),
		Padding:         maybe.Just(Insets{}),
		Margin:          maybe.Just(Insets{}),
		BorderWidth:     maybe.Just(Insets{}),
		Anchor:          maybe.Just(Anchor{0, 0}),
		Flow:            maybe.Just(FlowColumn),
		Opacity:         maybe.Just(1.0),
		Visible:         maybe.Just(true),
	}
}

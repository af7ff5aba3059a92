package dom

import (
	"github.com/npillmayer/udt/binding"
	"github.com/npillmayer/udt/dom/style"
	"github.com/npillmayer/udt/expr"
)

// Container is the variant of plain container nodes. It has no properties
// of its own.
type Container struct{}

// ContainerType is the node type of elements named "node".
var ContainerType = NewType[Container]("node", nil, binding.NewTable[*Container]())

// Align is the horizontal alignment of text.
type Align uint8

// Text alignments.
const (
	AlignStart Align = iota
	AlignCenter
	AlignEnd
	AlignJustify
)

var alignNames = map[string]Align{
	"start": AlignStart, "center": AlignCenter, "end": AlignEnd, "justify": AlignJustify,
}

func (a Align) String() string {
	for name, x := range alignNames {
		if x == a {
			return name
		}
	}
	return "?"
}

// Text is the variant of text nodes. The text itself is the node's value.
type Text struct {
	Wrap     bool
	Align    Align
	MaxLines uint64 // 0 for unlimited
}

// TextType is the node type of elements named "text".
var TextType = NewType[Text]("text", nil, binding.NewTable(
	binding.Prop("wrap", binding.KindBool, binding.ToBool,
		func(t *Text) bool { return t.Wrap }, func(t *Text, b bool) { t.Wrap = b }),
	binding.Prop("align", binding.KindEnum, binding.Enum(alignNames),
		func(t *Text) Align { return t.Align }, func(t *Text, a Align) { t.Align = a }),
	binding.Prop("max-lines", binding.KindUint, binding.ToUint,
		func(t *Text) uint64 { return t.MaxLines }, func(t *Text, n uint64) { t.MaxLines = n }),
))

// Fit tells how an image is scaled into its node.
type Fit uint8

// Image fit modes.
const (
	FitFill Fit = iota
	FitContain
	FitCover
	FitNone
)

var fitNames = map[string]Fit{
	"fill": FitFill, "contain": FitContain, "cover": FitCover, "none": FitNone,
}

func (f Fit) String() string {
	for name, x := range fitNames {
		if x == f {
			return name
		}
	}
	return "?"
}

// Image is the variant of image nodes.
type Image struct {
	Source string
	Tint   style.Color
	Fit    Fit
}

// ImageType is the node type of elements named "image".
var ImageType = NewType("image", func() *Image {
	return &Image{Tint: style.Color{R: 0xff, G: 0xff, B: 0xff, A: 0xff}}
}, binding.NewTable(
	binding.Prop("source", binding.KindString, binding.ToString,
		func(i *Image) string { return i.Source }, func(i *Image, s string) { i.Source = s }),
	binding.Prop("tint", binding.KindColor, style.ColorFromValue,
		func(i *Image) style.Color { return i.Tint }, func(i *Image, c style.Color) { i.Tint = c }),
	binding.Prop("fit", binding.KindEnum, binding.Enum(fitNames),
		func(i *Image) Fit { return i.Fit }, func(i *Image, f Fit) { i.Fit = f }),
))

// Button is the variant of button nodes. Action names the command a host
// triggers on activation.
type Button struct {
	Label    string
	Disabled bool
	Action   string
}

// ButtonType is the node type of elements named "button".
var ButtonType = NewType[Button]("button", nil, binding.NewTable(
	binding.Prop("label", binding.KindString, binding.ToString,
		func(b *Button) string { return b.Label }, func(b *Button, s string) { b.Label = s }),
	binding.Prop("disabled", binding.KindBool, binding.ToBool,
		func(b *Button) bool { return b.Disabled }, func(b *Button, d bool) { b.Disabled = d }),
	binding.Prop("action", binding.KindString, binding.ToString,
		func(b *Button) string { return b.Action }, func(b *Button, s string) { b.Action = s }),
))

// Scroll is the variant of scroll containers.
type Scroll struct {
	Horizontal bool
	Vertical   bool
	Step       float64
	Data       expr.Value // arbitrary data for the host, e.g. list items
}

// ScrollType is the node type of elements named "scroll".
var ScrollType = NewType("scroll", func() *Scroll {
	return &Scroll{Vertical: true, Step: 1}
}, binding.NewTable(
	binding.Prop("horizontal", binding.KindBool, binding.ToBool,
		func(s *Scroll) bool { return s.Horizontal }, func(s *Scroll, b bool) { s.Horizontal = b }),
	binding.Prop("vertical", binding.KindBool, binding.ToBool,
		func(s *Scroll) bool { return s.Vertical }, func(s *Scroll, b bool) { s.Vertical = b }),
	binding.Prop("step", binding.KindFloat, binding.ToFloat,
		func(s *Scroll) float64 { return s.Step }, func(s *Scroll, f float64) { s.Step = f }),
	binding.Prop("data", binding.KindAny, binding.ToAny,
		func(s *Scroll) expr.Value { return s.Data }, func(s *Scroll, v expr.Value) { s.Data = v }),
))

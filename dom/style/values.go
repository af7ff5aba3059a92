package style

import (
	"errors"
	"fmt"
	"strings"

	"github.com/npillmayer/udt/binding"
	"github.com/npillmayer/udt/css"
)

// ErrValueCount is returned if a composite value is given with a wrong
// number of components.
var ErrValueCount = errors.New("wrong number of values")

// Quad holds one value per edge of a box.
type Quad[T any] struct {
	Top, Right, Bottom, Left T
}

// ColorQuad holds one color per edge.
type ColorQuad = Quad[Color]

// Insets hold one length per edge, in pixels.
type Insets = Quad[float32]

func (q Quad[T]) String() string {
	return fmt.Sprintf("[%v %v %v %v]", q.Top, q.Right, q.Bottom, q.Left)
}

// Distribute4 distributes one, two or four values to the edges of a box.
// Every other count of values is an error.
func Distribute4[T any](v []T) (Quad[T], error) {
	switch len(v) {
	case 1:
		return Quad[T]{v[0], v[0], v[0], v[0]}, nil
	case 2:
		return Quad[T]{v[0], v[1], v[0], v[1]}, nil
	case 4:
		return Quad[T]{v[0], v[1], v[2], v[3]}, nil
	}
	return Quad[T]{}, fmt.Errorf("%w: expecting 1, 2 or 4 values, have %d", ErrValueCount, len(v))
}

// CornerRadii holds one radius per corner, in pixels.
type CornerRadii struct {
	TopLeft, TopRight, BottomRight, BottomLeft float32
}

// RadiiFrom distributes one, two or four radii to the corners, clockwise
// starting at the top left corner. Two values denote top-left/bottom-right
// and top-right/bottom-left.
func RadiiFrom(v []float32) (CornerRadii, error) {
	q, err := Distribute4(v)
	if err != nil {
		return CornerRadii{}, err
	}
	return CornerRadii{TopLeft: q.Top, TopRight: q.Right, BottomRight: q.Bottom, BottomLeft: q.Left}, nil
}

func (r CornerRadii) String() string {
	return fmt.Sprintf("[%g %g %g %g]", r.TopLeft, r.TopRight, r.BottomRight, r.BottomLeft)
}

// Size is a two-dimensional extent. Each dimension may be fixed, relative
// to the parent or left to the layout engine.
type Size struct {
	W, H css.DimenT
}

func (s Size) String() string {
	return s.W.String() + " " + s.H.String()
}

// Vec2 is a two-dimensional vector in pixels.
type Vec2 struct {
	X, Y float32
}

func (v Vec2) String() string {
	return fmt.Sprintf("(%g, %g)", v.X, v.Y)
}

// Anchor is a reference point relative to a node's box, with (0,0) at the
// top left corner and (1,1) at the bottom right corner.
type Anchor struct {
	X, Y float32
}

var namedAnchors = map[string]Anchor{
	"topleft":     {0, 0},
	"top":         {0.5, 0},
	"topright":    {1, 0},
	"left":        {0, 0.5},
	"center":      {0.5, 0.5},
	"right":       {1, 0.5},
	"bottomleft":  {0, 1},
	"bottom":      {0.5, 1},
	"bottomright": {1, 1},
}

// AnchorNamed returns the anchor for names like "top-left" or "center".
func AnchorNamed(name string) (Anchor, bool) {
	a, ok := namedAnchors[binding.Normalize(name)]
	return a, ok
}

func (a Anchor) String() string {
	for _, name := range []string{"top-left", "top", "top-right", "left", "center",
		"right", "bottom-left", "bottom", "bottom-right"} {
		if namedAnchors[binding.Normalize(name)] == a {
			return name
		}
	}
	return fmt.Sprintf("(%g, %g)", a.X, a.Y)
}

// Flow is the direction children of a node are laid out in.
type Flow uint8

// Flow directions.
const (
	FlowRow Flow = iota
	FlowColumn
	FlowRowReverse
	FlowColumnReverse
)

var flowNames = map[string]Flow{
	"row":            FlowRow,
	"column":         FlowColumn,
	"row-reverse":    FlowRowReverse,
	"column-reverse": FlowColumnReverse,
}

// ParseFlow converts a flow direction name.
var ParseFlow = binding.Enum(flowNames)

func (f Flow) String() string {
	for name, ff := range flowNames {
		if ff == f {
			return name
		}
	}
	return fmt.Sprintf("Flow(%d)", uint8(f))
}

// Orientation of a gradient.
type Orientation uint8

// Gradients run either from left to right or from top to bottom.
const (
	Horizontal Orientation = iota
	Vertical
)

func (o Orientation) String() string {
	if o == Vertical {
		return "vertical"
	}
	return "horizontal"
}

// Gradient is a linear two-color gradient.
type Gradient struct {
	Orientation Orientation
	From, To    Color
}

func (g Gradient) String() string {
	return fmt.Sprintf("%s %s %s", g.Orientation, g.From, g.To)
}

// ParseOrientation converts "horizontal" or "vertical".
func ParseOrientation(s string) (Orientation, bool) {
	switch strings.ToLower(s) {
	case "horizontal":
		return Horizontal, true
	case "vertical":
		return Vertical, true
	}
	return Horizontal, false
}

package cssom

import (
	"errors"
	"fmt"

	"github.com/npillmayer/udt/binding"
	"github.com/npillmayer/udt/css"
	"github.com/npillmayer/udt/dom/style"
	"github.com/npillmayer/udt/expr"
	"github.com/npillmayer/udt/lexer"
)

// Interpreter converts the value tokens of a declaration for properties of
// a given kind.
type Interpreter struct {
	Name    string
	Kind    binding.Kind
	Convert func(toks []lexer.Token[lexer.Markup], file string) (any, error)
}

// Interpreters is the chain of value interpreters, in the order they are
// tried.
var Interpreters = []Interpreter{
	{"integer", binding.KindInt, single(binding.ToInt)},
	{"unsigned integer", binding.KindUint, single(binding.ToUint)},
	{"boolean", binding.KindBool, single(binding.ToBool)},
	{"float", binding.KindFloat, single(binding.ToFloat)},
	{"color", binding.KindColor, single(style.ColorFromValue)},
	{"border color", binding.KindColorQuad, colorQuad},
	{"corner radii", binding.KindRadii, multi(style.RadiiFromValue)},
	{"insets", binding.KindInsets, multi(style.InsetsFromValue)},
	{"size", binding.KindSize, size},
	{"2d vector", binding.KindVec2, multi(style.Vec2FromValue)},
	{"anchor point", binding.KindAnchor, multi(style.AnchorFromValue)},
	{"flow direction", binding.KindFlow, single(style.ParseFlow)},
	{"gradient", binding.KindGradient, multi(style.GradientFromValue)},
}

// Declare interprets the value tokens of a declaration and sets property
// name on st. context names the rule for error messages, e.g. the
// selector.
func Declare(st *style.Style, name lexer.Token[lexer.Markup], value []lexer.Token[lexer.Markup],
	file string, context string) error {
	//
	d, ok := style.Properties.Lookup(name.Value)
	if !ok {
		return lexer.Wrap(binding.ErrNoSuchProperty, lexer.SemanticError, file, name.Pos(),
			"in %s: %s", context, name.Value)
	}
	if len(value) == 0 {
		return lexer.Errorf(lexer.SyntaxError, file, name.Pos(),
			"in %s: missing value for property %s", context, d.Name)
	}
	for _, interp := range Interpreters {
		if interp.Kind != d.Kind {
			continue
		}
		x, err := interp.Convert(value, file)
		if errors.Is(err, style.ErrValueCount) {
			return lexer.Wrap(err, lexer.SemanticError, file, value[0].Pos(),
				"in %s: property %s", context, d.Name)
		} else if err != nil {
			return lexer.Wrap(err, lexer.TypeError, file, value[0].Pos(),
				"in %s: invalid %s value for property %s", context, interp.Name, d.Name)
		}
		if err = d.Set(st, x); err != nil {
			return lexer.Wrap(err, lexer.TypeError, file, value[0].Pos(), "in %s", context)
		}
		tracer().Debugf("%s { %s: %v }", context, d.Name, x)
		return nil
	}
	return lexer.Wrap(ErrFailedToApplyStyle, lexer.SemanticError, file, name.Pos(),
		"in %s: property %s of kind %s", context, d.Name, d.Kind)
}

func values(toks []lexer.Token[lexer.Markup], file string) ([]expr.Value, error) {
	vals := make([]expr.Value, 0, len(toks))
	for _, t := range toks {
		if t.Kind == lexer.Comma {
			continue
		}
		v, err := expr.FromToken(t, file)
		if err != nil {
			return nil, err
		}
		vals = append(vals, v)
	}
	return vals, nil
}

// single creates an interpreter for values consisting of exactly one
// token.
func single[T any](conv func(expr.Value) (T, error)) func([]lexer.Token[lexer.Markup], string) (any, error) {
	return func(toks []lexer.Token[lexer.Markup], file string) (any, error) {
		vals, err := values(toks, file)
		if err != nil {
			return nil, err
		}
		if len(vals) != 1 {
			return nil, fmt.Errorf("%w: expecting a single value, have %d", style.ErrValueCount, len(vals))
		}
		return conv(vals[0])
	}
}

// multi creates an interpreter for composite values. The tokens are passed
// to conv as an array.
func multi[T any](conv func(expr.Value) (T, error)) func([]lexer.Token[lexer.Markup], string) (any, error) {
	return func(toks []lexer.Token[lexer.Markup], file string) (any, error) {
		vals, err := values(toks, file)
		if err != nil {
			return nil, err
		}
		return conv(expr.Array(vals...))
	}
}

func colorQuad(toks []lexer.Token[lexer.Markup], file string) (any, error) {
	vals, err := values(toks, file)
	if err != nil {
		return nil, err
	}
	if n := len(vals); n != 1 && n != 2 && n != 4 {
		return nil, fmt.Errorf("%w: expecting 1, 2 or 4 colors, have %d", style.ErrValueCount, n)
	}
	return style.ColorQuadFromValue(expr.Array(vals...))
}

// size accepts one or two dimensions, each being a number of pixels, an
// integer directly followed by a unit or '%', or 'auto'.
func size(toks []lexer.Token[lexer.Markup], file string) (any, error) {
	var dims []css.DimenT
	for i := 0; i < len(toks); i++ {
		t := toks[i]
		switch t.Kind {
		case lexer.Comma:
			continue
		case lexer.Ident, lexer.Int, lexer.Float:
			text := t.Value
			if t.Kind != lexer.Ident && i+1 < len(toks) && t.Span.Adjacent(toks[i+1].Span) &&
				(toks[i+1].Kind == lexer.Percent || toks[i+1].Kind == lexer.Ident) {
				text += toks[i+1].Value
				i++
			}
			d, err := style.ParseDimen(text)
			if err != nil {
				return nil, err
			}
			dims = append(dims, d)
		default:
			return nil, fmt.Errorf("unexpected %s %q in size", t.Kind, t.Value)
		}
	}
	switch len(dims) {
	case 1:
		return style.Size{W: dims[0], H: dims[0]}, nil
	case 2:
		return style.Size{W: dims[0], H: dims[1]}, nil
	}
	return nil, fmt.Errorf("%w: expecting 1 or 2 dimensions, have %d", style.ErrValueCount, len(dims))
}

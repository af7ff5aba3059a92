package dom

import (
	"errors"
	"strings"

	"github.com/npillmayer/udt/dom/style/cssom/douceuradapter"
	"github.com/npillmayer/udt/expr"
	"github.com/npillmayer/udt/lexer"
	"github.com/npillmayer/udt/markup"
)

// ErrInvalidAttribute is returned for attributes no interpreter claims.
var ErrInvalidAttribute = errors.New("invalid attribute")

// AttrInterpreter applies attributes of a certain kind to nodes.
type AttrInterpreter struct {
	Name   string
	Claims func(n *Node, attr string) bool
	Apply  func(n *Node, a *markup.Attr) error
}

// Interpreters is the chain of attribute interpreters, in order of
// priority.
var Interpreters = []AttrInterpreter{
	{"id", named("id"), applyID},
	{"class", named("class"), applyClasses},
	{"tags", named("tags"), applyTags},
	{"value", named("value"), applyValue},
	{"style", named("style"), applyInlineStyle},
	{"property", claimsProperty, applyProperty},
}

func named(name string) func(*Node, string) bool {
	return func(_ *Node, attr string) bool {
		return strings.EqualFold(attr, name)
	}
}

// ApplyAttribute applies an attribute to a node, using the first
// interpreter of the chain which claims it.
func ApplyAttribute(n *Node, a *markup.Attr) error {
	for _, interp := range Interpreters {
		if interp.Claims(n, a.Name) {
			tracer().Debugf("<%s>: attribute %s handled by %s interpreter", n.Element, a.Name, interp.Name)
			return interp.Apply(n, a)
		}
	}
	return lexer.Wrap(ErrInvalidAttribute, lexer.SemanticError, n.File, a.Pos,
		"element <%s> has no attribute %s", n.Element, a.Name)
}

// text evaluates an attribute which has to be a non-empty scalar.
func text(n *Node, a *markup.Attr) (string, error) {
	v, err := a.Value(n.File)
	if err != nil {
		return "", err
	}
	if !v.IsScalar() || strings.TrimSpace(v.Text()) == "" {
		return "", lexer.Errorf(lexer.TypeError, n.File, a.Pos,
			"attribute %s of element <%s> needs a non-empty text, have %s", a.Name, n.Element, v)
	}
	return strings.TrimSpace(v.Text()), nil
}

func applyID(n *Node, a *markup.Attr) error {
	id, err := text(n, a)
	if err != nil {
		return err
	}
	if strings.ContainsAny(id, " \t\n") {
		return lexer.Errorf(lexer.SemanticError, n.File, a.Pos, "id %q of element <%s> contains blanks", id, n.Element)
	}
	n.ID = id
	return nil
}

func applyClasses(n *Node, a *markup.Attr) error {
	list, err := text(n, a)
	if err != nil {
		return err
	}
	for _, c := range strings.Fields(list) {
		n.AddClass(c)
	}
	return nil
}

func applyTags(n *Node, a *markup.Attr) error {
	list, err := text(n, a)
	if err != nil {
		return err
	}
	for _, t := range strings.Fields(list) {
		n.AddTag(t)
	}
	return nil
}

func applyValue(n *Node, a *markup.Attr) error {
	v, err := a.Value(n.File)
	if err != nil {
		return err
	}
	n.Value = v
	return nil
}

func applyInlineStyle(n *Node, a *markup.Attr) error {
	if a.IsExpression() || a.Kind == markup.AttrImplicit {
		return lexer.Errorf(lexer.TypeError, n.File, a.Pos,
			"style attribute of element <%s> must be a list of declarations", n.Element)
	}
	st, err := douceuradapter.InlineStyle(a.Raw, n.File, a.Pos)
	if err != nil {
		return err
	}
	if n.Inline == nil {
		n.Inline = st
	} else {
		n.Inline = n.Inline.Merge(st)
	}
	return nil
}

func claimsProperty(n *Node, attr string) bool {
	return n.Type.Has(attr)
}

func applyProperty(n *Node, a *markup.Attr) error {
	v, err := a.Value(n.File)
	if err != nil {
		return err
	}
	if err = n.Type.Bind(n.Variant, a.Name, v); err != nil {
		return lexer.Wrap(err, lexer.TypeError, n.File, a.Pos,
			"element <%s>, attribute %s", n.Element, a.Name)
	}
	return nil
}

// valueOf is the value of an element's text content.
func valueOf(el *markup.Element) expr.Value {
	return expr.Str(el.Text)
}

package markup

import (
	"fmt"
	"strings"

	"github.com/npillmayer/udt/expr"
	"github.com/npillmayer/udt/lexer"
)

// AttrKind tells how an attribute value has been written.
type AttrKind uint8

// Kinds of attribute values.
const (
	AttrImplicit    AttrKind = iota // no value given, implies true
	AttrString                      // "…"
	AttrIdent                       // unquoted name
	AttrInt                         // -12
	AttrUint                        // 0xff
	AttrFloat                       // 1.5
	AttrBool                        // true | false
	AttrExpr                        // {…}
	AttrPlaceholder                 // ${name}
)

var attrKindNames = [...]string{"implicit", "string", "identifier", "integer",
	"unsigned integer", "float", "boolean", "expression", "placeholder"}

func (k AttrKind) String() string {
	if int(k) < len(attrKindNames) {
		return attrKindNames[k]
	}
	return fmt.Sprintf("AttrKind(%d)", uint8(k))
}

// Attr is an attribute of an element. Raw holds the value as written,
// with string literals unescaped and expressions including their braces.
type Attr struct {
	Name string
	Kind AttrKind
	Raw  string
	Pos  lexer.Pos
}

// Text returns the textual value of an attribute. Implicit attributes
// return "true".
func (a *Attr) Text() string {
	if a.Kind == AttrImplicit {
		return "true"
	}
	return a.Raw
}

// IsExpression is true for {…} values, including strings consisting of a
// braced expression only.
func (a *Attr) IsExpression() bool {
	if a.Kind == AttrExpr {
		return true
	}
	if a.Kind == AttrString {
		s := strings.TrimSpace(a.Raw)
		return len(s) >= 2 && s[0] == '{' && s[len(s)-1] == '}'
	}
	return false
}

// Value converts the attribute value into a typed value. Expressions are
// evaluated. Unresolved placeholders are an error.
func (a *Attr) Value(file string) (expr.Value, error) {
	if a.IsExpression() {
		return expr.EvaluateBraced(a.Raw, nil, file, a.Pos)
	}
	switch a.Kind {
	case AttrImplicit:
		return expr.Bool(true), nil
	case AttrString, AttrIdent:
		return expr.Str(a.Raw), nil
	case AttrPlaceholder:
		return expr.Value{}, lexer.Errorf(lexer.SemanticError, file, a.Pos,
			"unresolved placeholder %s for attribute %s", a.Raw, a.Name)
	}
	kind := map[AttrKind]lexer.Markup{
		AttrInt:   lexer.Int,
		AttrUint:  lexer.Uint,
		AttrFloat: lexer.Float,
		AttrBool:  lexer.Bool,
	}[a.Kind]
	return expr.FromToken(lexer.Token[lexer.Markup]{Kind: kind, Value: a.Raw, Span: lexer.Span{Start: a.Pos}}, file)
}

func (a *Attr) String() string {
	switch a.Kind {
	case AttrImplicit:
		return a.Name
	case AttrString:
		return fmt.Sprintf("%s=%q", a.Name, a.Raw)
	}
	return a.Name + "=" + a.Raw
}

// Element is a node of the syntax tree.
type Element struct {
	Name     string
	Attrs    []*Attr
	Children []*Element
	Text     string    // element content, text chunks joined by blanks
	File     string    // source file
	Pos      lexer.Pos // position of the element's name
	// Scope is the chain of templates the element has been stamped out
	// from, outermost first. It is empty for elements written in a document
	// proper.
	Scope []string
}

// Attr returns the attribute called name (case-insensitive), or nil.
func (el *Element) Attr(name string) *Attr {
	for _, a := range el.Attrs {
		if strings.EqualFold(a.Name, name) {
			return a
		}
	}
	return nil
}

// RemoveAttr deletes an attribute.
func (el *Element) RemoveAttr(name string) {
	for i, a := range el.Attrs {
		if strings.EqualFold(a.Name, name) {
			el.Attrs = append(el.Attrs[:i:i], el.Attrs[i+1:]...)
			return
		}
	}
}

// Is compares the element name case-insensitively.
func (el *Element) Is(name string) bool {
	return strings.EqualFold(el.Name, name)
}

// Clone creates a deep copy of an element subtree. The copy shares no
// state with the original.
func (el *Element) Clone() *Element {
	c := *el
	c.Attrs = make([]*Attr, len(el.Attrs))
	for i, a := range el.Attrs {
		ac := *a
		c.Attrs[i] = &ac
	}
	c.Children = make([]*Element, len(el.Children))
	for i, ch := range el.Children {
		c.Children[i] = ch.Clone()
	}
	c.Scope = append([]string(nil), el.Scope...)
	return &c
}

// Walk visits el and its descendants depth-first, parents first. If f
// returns false, the children of the current element are skipped.
func (el *Element) Walk(f func(*Element) bool) {
	if !f(el) {
		return
	}
	for _, ch := range el.Children {
		ch.Walk(f)
	}
}

func (el *Element) String() string {
	var b strings.Builder
	b.WriteByte('<')
	b.WriteString(el.Name)
	for _, a := range el.Attrs {
		b.WriteByte(' ')
		b.WriteString(a.String())
	}
	b.WriteByte('>')
	return b.String()
}

// Document is the result of parsing a source text.
type Document struct {
	File      string
	Root      *Element                    // nil for an empty document
	Templates []*Element                  // template declarations, in order
	Style     []lexer.Token[lexer.Markup] // contents of the style element
	HasStyle  bool
	StylePos  lexer.Pos
}

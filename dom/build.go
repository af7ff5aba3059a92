package dom

import (
	"github.com/npillmayer/udt/lexer"
	"github.com/npillmayer/udt/markup"
)

// Builder constructs node trees from markup elements.
type Builder struct {
	Types     *Registry
	UniqueIDs bool // reject duplicate ids within one tree
	ids       map[string]*Node
}

// Build constructs the node tree for a markup element tree. Template
// references have to be expanded beforehand.
func Build(el *markup.Element, types *Registry, uniqueIDs bool) (*Node, error) {
	b := &Builder{Types: types, UniqueIDs: uniqueIDs}
	return b.Build(el)
}

// Build constructs the node tree for a markup element tree.
func (b *Builder) Build(el *markup.Element) (*Node, error) {
	if el == nil {
		return nil, nil
	}
	b.ids = make(map[string]*Node)
	return b.build(el)
}

func (b *Builder) build(el *markup.Element) (*Node, error) {
	t, ok := b.Types.Lookup(el.Name)
	if !ok {
		return nil, lexer.Errorf(lexer.SemanticError, el.File, el.Pos, "unknown element <%s>", el.Name)
	}
	n := NewNode(t)
	n.Element, n.File, n.Pos = el.Name, el.File, el.Pos
	for _, a := range el.Attrs {
		if err := ApplyAttribute(n, a); err != nil {
			return nil, err
		}
	}
	if el.Text != "" {
		if el.Attr("value") != nil {
			return nil, lexer.Errorf(lexer.SemanticError, el.File, el.Pos,
				"element <%s> has both a value attribute and text content", el.Name)
		}
		n.Value = valueOf(el)
	}
	if n.ID != "" && b.UniqueIDs {
		if prev, dup := b.ids[n.ID]; dup {
			return nil, lexer.Errorf(lexer.SemanticError, el.File, el.Pos,
				"duplicate id %q, first used at %s:%s", n.ID, prev.File, prev.Pos)
		}
		b.ids[n.ID] = n
	}
	for _, ch := range el.Children {
		child, err := b.build(ch)
		if err != nil {
			return nil, err
		}
		n.AppendChild(child)
	}
	tracer().P("id", n.ID).Debugf("built %s", n)
	return n, nil
}

package template

import (
	"strings"

	"github.com/npillmayer/udt/lexer"
	"github.com/npillmayer/udt/markup"
)

// projection moves caller content into the slots of an expanded body.
type projection struct {
	t       *Template
	ref     *markup.Element
	content map[string][]*markup.Element // by lower-case slot name
	order   []string
	filled  map[string]bool
}

// distribute sorts caller children by the value of their slot attribute,
// preserving their order. The slot attribute is removed.
func (p *projection) distribute(children []*markup.Element) error {
	p.content = make(map[string][]*markup.Element)
	p.filled = make(map[string]bool)
	for _, ch := range children {
		name := ""
		if a := ch.Attr(SlotAttr); a != nil {
			if a.Kind == markup.AttrImplicit {
				return lexer.Errorf(lexer.SemanticError, ch.File, a.Pos,
					"slot attribute of <%s> needs a slot name", ch.Name)
			}
			name = strings.ToLower(a.Text())
			ch.RemoveAttr(SlotAttr)
		}
		if _, ok := p.content[name]; !ok {
			p.order = append(p.order, name)
		}
		p.content[name] = append(p.content[name], ch)
	}
	return nil
}

// fill replaces slot elements in a list of siblings, recursively. Content
// for a slot name is moved into the first slot of that name; further slots
// of the same name and slots without matching content stay empty.
func (p *projection) fill(elements []*markup.Element) []*markup.Element {
	result := make([]*markup.Element, 0, len(elements))
	for _, el := range elements {
		if !el.Is(SlotTag) || len(el.Scope) == 0 || !strings.EqualFold(el.Scope[len(el.Scope)-1], p.t.Name) {
			el.Children = p.fill(el.Children)
			result = append(result, el)
			continue
		}
		name := ""
		if a := el.Attr("name"); a != nil {
			name = strings.ToLower(a.Text())
		}
		if !p.filled[name] {
			p.filled[name] = true
			result = append(result, p.content[name]...)
		}
	}
	return result
}

// checkConsumed rejects caller content addressed to a slot the template
// does not have.
func (p *projection) checkConsumed() error {
	for _, name := range p.order {
		if p.filled[name] {
			continue
		}
		ch := p.content[name][0]
		if name == "" {
			return lexer.Errorf(lexer.SemanticError, ch.File, ch.Pos,
				"template %s has no default slot for <%s>", p.t.Name, ch.Name)
		}
		return lexer.Errorf(lexer.SemanticError, ch.File, ch.Pos,
			"template %s has no slot named %q for <%s>", p.t.Name, name, ch.Name)
	}
	return nil
}

package template

import (
	"strings"

	"github.com/npillmayer/udt/expr"
	"github.com/npillmayer/udt/lexer"
	"github.com/npillmayer/udt/markup"
)

// DefaultMaxDepth limits the nesting of template expansions if not
// configured otherwise.
const DefaultMaxDepth = 64

// Expander replaces template references in a markup tree by the
// expanded template bodies.
type Expander struct {
	Templates *Registry
	MaxDepth  int // maximum nesting of expansions, DefaultMaxDepth if 0
}

// Expand expands all template references in the tree rooted at root and
// returns the new root. The tree is modified in place. If root itself is a
// reference, the template body has to consist of exactly one element.
func Expand(root *markup.Element, reg *Registry, maxDepth int) (*markup.Element, error) {
	x := Expander{Templates: reg, MaxDepth: maxDepth}
	return x.Expand(root)
}

// Expand expands all template references in the tree rooted at root.
func (x Expander) Expand(root *markup.Element) (*markup.Element, error) {
	if root == nil {
		return nil, nil
	}
	items, err := x.expandList([]*markup.Element{root})
	if err != nil {
		return nil, err
	}
	if len(items) != 1 {
		return nil, lexer.Errorf(lexer.SemanticError, root.File, root.Pos,
			"root element <%s> expands to %d elements, must be exactly one", root.Name, len(items))
	}
	return items[0], nil
}

func (x Expander) maxDepth() int {
	if x.MaxDepth <= 0 {
		return DefaultMaxDepth
	}
	return x.MaxDepth
}

// expandList expands a list of siblings. References are replaced by their
// expansions, other elements have their children expanded.
func (x Expander) expandList(elements []*markup.Element) ([]*markup.Element, error) {
	result := make([]*markup.Element, 0, len(elements))
	for _, el := range elements {
		t, ok := x.lookup(el.Name)
		if !ok {
			children, err := x.expandList(el.Children)
			if err != nil {
				return nil, err
			}
			el.Children = children
			result = append(result, el)
			continue
		}
		expanded, err := x.instantiate(t, el)
		if err != nil {
			return nil, err
		}
		result = append(result, expanded...)
	}
	return result, nil
}

func (x Expander) lookup(name string) (*Template, bool) {
	if x.Templates == nil {
		return nil, false
	}
	return x.Templates.Lookup(name)
}

// instantiate stamps out template t for reference ref.
func (x Expander) instantiate(t *Template, ref *markup.Element) ([]*markup.Element, error) {
	for _, name := range ref.Scope {
		if strings.EqualFold(name, t.Name) {
			chain := strings.Join(append(append([]string(nil), ref.Scope...), t.Name), " → ")
			return nil, lexer.Wrap(ErrCycle, lexer.SemanticError, ref.File, ref.Pos,
				"template %s: expansion chain %s", t.Name, chain)
		}
	}
	if len(ref.Scope) >= x.maxDepth() {
		return nil, lexer.Errorf(lexer.SemanticError, ref.File, ref.Pos,
			"template %s: expansion nested deeper than %d levels", t.Name, x.maxDepth())
	}
	if ref.Text != "" {
		return nil, lexer.Errorf(lexer.SemanticError, ref.File, ref.Pos,
			"template reference <%s> must not contain text", ref.Name)
	}
	subst, err := bindArguments(t, ref)
	if err != nil {
		return nil, err
	}
	tracer().P("template", t.Name).Debugf("expanding reference at %s:%s", ref.File, ref.Pos)
	// caller content belongs to the caller's scope
	callerContent, err := x.expandList(ref.Children)
	if err != nil {
		return nil, err
	}
	scope := append(append([]string(nil), ref.Scope...), t.Name)
	body := make([]*markup.Element, len(t.Body))
	for i, b := range t.Body {
		c := b.Clone()
		if err := substitute(t, c, subst, scope); err != nil {
			return nil, err
		}
		body[i] = c
	}
	// references inside the body are expanded before projection, so that
	// nested templates never see the caller's children
	if body, err = x.expandList(body); err != nil {
		return nil, err
	}
	p := &projection{t: t, ref: ref}
	if err := p.distribute(callerContent); err != nil {
		return nil, err
	}
	body = p.fill(body)
	if err := p.checkConsumed(); err != nil {
		return nil, err
	}
	return body, nil
}

// bindArguments collects substitution text for all declared arguments.
func bindArguments(t *Template, ref *markup.Element) (map[string]string, error) {
	subst := make(map[string]string, len(t.Args))
	for _, a := range ref.Attrs {
		if strings.EqualFold(a.Name, SlotAttr) {
			continue
		}
		if _, ok := t.Arg(a.Name); !ok {
			return nil, lexer.Errorf(lexer.SemanticError, ref.File, a.Pos,
				"template %s has no argument %s", t.Name, a.Name)
		}
		if a.Kind == markup.AttrPlaceholder || expr.HasPlaceholder(a.Text()) {
			return nil, lexer.Wrap(ErrArgumentNotDefined, lexer.SemanticError, ref.File, a.Pos,
				"template %s: value of argument %s refers to undefined %s", t.Name, a.Name, a.Text())
		}
		subst[strings.ToLower(a.Name)] = a.Text()
	}
	for _, arg := range t.Args {
		key := strings.ToLower(arg.Name)
		if _, ok := subst[key]; ok {
			continue
		}
		if !arg.HasDefault {
			return nil, lexer.Wrap(ErrArgumentNotDefined, lexer.SemanticError, ref.File, ref.Pos,
				"template %s (declared in %s) requires argument %s", t.Name, t.File, arg.Name)
		}
		subst[key] = arg.Default
	}
	return subst, nil
}

// substitute replaces placeholders in a copy of a template body element.
func substitute(t *Template, el *markup.Element, subst map[string]string, scope []string) (err error) {
	el.Walk(func(e *markup.Element) bool {
		if err != nil {
			return false
		}
		e.Scope = scope
		for _, a := range e.Attrs {
			if !expr.HasPlaceholder(a.Raw) {
				continue
			}
			a.Raw = expr.Substitute(a.Raw, subst)
			if rest := expr.Placeholders(a.Raw); len(rest) > 0 {
				err = undefined(t, e, a.Pos, rest[0])
				return false
			}
			if a.Kind == markup.AttrPlaceholder {
				retype(a, e.File)
			}
		}
		e.Text = expr.Substitute(e.Text, subst)
		if rest := expr.Placeholders(e.Text); len(rest) > 0 {
			err = undefined(t, e, e.Pos, rest[0])
			return false
		}
		return true
	})
	return
}

// retype sets the kind of an attribute whose value was a single
// placeholder from the substituted text, as if it had been written in the
// tag. Text which is not a single value stays a string.
func retype(a *markup.Attr, file string) {
	a.Kind = markup.AttrString
	tok, err := lexer.LexAttrValue(a.Raw, file)
	if err != nil {
		return
	}
	if kind, ok := markup.AttrKindOf(tok.Kind); ok && kind != markup.AttrPlaceholder {
		a.Kind, a.Raw = kind, tok.Value
	}
}

func undefined(t *Template, el *markup.Element, pos lexer.Pos, name string) error {
	return lexer.Wrap(ErrArgumentNotDefined, lexer.SemanticError, el.File, pos,
		"template %s: placeholder ${%s} in <%s> names no argument", t.Name, name, el.Name)
}

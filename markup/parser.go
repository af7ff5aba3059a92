package markup

import (
	"errors"
	"strings"

	"github.com/npillmayer/udt/lexer"
)

// ErrDuplicateRoot is returned for documents with more than one root
// element.
var ErrDuplicateRoot = errors.New("document has more than one root element")

// ErrDuplicateStyle is returned for documents with more than one style
// element.
var ErrDuplicateStyle = errors.New("document has more than one style element")

// Tags names the elements with special meaning to the parser. Names are
// compared case-insensitively.
type Tags struct {
	Document string // optional enclosing element, e.g. "udt"
	Style    string // style block, e.g. "style"
	Template string // template declaration, e.g. "template"
}

// DefaultTags are the element names used if not configured otherwise.
var DefaultTags = Tags{Document: "udt", Style: "style", Template: "template"}

type parser struct {
	s    *lexer.Stream[lexer.Markup]
	file string
	tags Tags
	doc  *Document
}

// ParseText lexes and parses a document.
func ParseText(src, file string, tags Tags) (*Document, error) {
	toks, err := lexer.Lex(src, file, tags.Style)
	if err != nil {
		return nil, err
	}
	return Parse(toks, file, tags)
}

// Parse parses a document from a token sequence produced by lexer.Lex.
func Parse(toks []lexer.Token[lexer.Markup], file string, tags Tags) (*Document, error) {
	p := &parser{
		s:    lexer.NewStream(file, toks),
		file: file,
		tags: tags,
		doc:  &Document{File: file},
	}
	items, err := p.parseSiblings(nil)
	if err != nil {
		return nil, err
	}
	if !p.s.EOF() {
		return nil, p.s.Unexpected("without matching start tag")
	}
	if len(items) == 1 && tags.Document != "" && items[0].Is(tags.Document) {
		wrapper := items[0]
		if len(wrapper.Attrs) > 0 {
			return nil, lexer.Errorf(lexer.SemanticError, file, wrapper.Attrs[0].Pos,
				"document element <%s> does not take attributes", wrapper.Name)
		}
		items = wrapper.Children
	}
	for _, el := range items {
		if el.Is(tags.Template) {
			p.doc.Templates = append(p.doc.Templates, el)
			continue
		}
		if p.doc.Root != nil {
			return nil, lexer.Wrap(ErrDuplicateRoot, lexer.SemanticError, file, el.Pos,
				"element <%s>", el.Name)
		}
		p.doc.Root = el
	}
	tracer().P("file", file).Debugf("parsed document: %d templates, style=%v", len(p.doc.Templates), p.doc.HasStyle)
	return p.doc, nil
}

// parseSiblings parses elements until end of input or until an end tag.
// Text between elements is appended to the text of parent.
func (p *parser) parseSiblings(parent *Element) ([]*Element, error) {
	var elements []*Element
	for !p.s.EOF() && !p.s.Is(lexer.TagEndOpen) {
		switch p.s.Current().Kind {
		case lexer.Text:
			t, _ := p.s.Next()
			if parent == nil {
				return nil, lexer.Errorf(lexer.SyntaxError, p.file, t.Pos(),
					"text %q outside of any element", t.Value)
			}
			if parent.Text != "" {
				parent.Text += " "
			}
			parent.Text += t.Value
		case lexer.TagOpen:
			el, err := p.parseElement()
			if err != nil {
				return nil, err
			}
			if el != nil {
				elements = append(elements, el)
			}
		default:
			return nil, p.s.Unexpected("where an element is expected")
		}
	}
	return elements, nil
}

// parseElement parses an element. Style elements are captured into the
// document and nil is returned for them.
func (p *parser) parseElement() (*Element, error) {
	if _, err := p.s.Consume(lexer.TagOpen); err != nil {
		return nil, err
	}
	name, err := p.s.Consume(lexer.Ident)
	if err != nil {
		return nil, err
	}
	el := &Element{Name: name.Value, File: p.file, Pos: name.Pos()}
	if err := p.parseAttributes(el); err != nil {
		return nil, err
	}
	if p.s.Is(lexer.TagSelfEnd) {
		p.s.Advance(1)
		if el.Is(p.tags.Style) {
			return nil, p.captureStyle(el, nil)
		}
		return el, nil
	}
	if _, err := p.s.Consume(lexer.TagClose); err != nil {
		return nil, err
	}
	if el.Is(p.tags.Style) {
		body := p.s.Until(lexer.TagEndOpen)
		if err := p.closeTag(el); err != nil {
			return nil, err
		}
		return nil, p.captureStyle(el, body)
	}
	if el.Children, err = p.parseSiblings(el); err != nil {
		return nil, err
	}
	return el, p.closeTag(el)
}

func (p *parser) closeTag(el *Element) error {
	if _, err := p.s.Consume(lexer.TagEndOpen); err != nil {
		return lexer.Errorf(lexer.SyntaxError, p.file, el.Pos, "element <%s> is not closed", el.Name)
	}
	name, err := p.s.Consume(lexer.Ident)
	if err != nil {
		return err
	}
	if !strings.EqualFold(name.Value, el.Name) {
		return lexer.Errorf(lexer.SyntaxError, p.file, name.Pos(),
			"closing tag </%s> does not match <%s> at %s", name.Value, el.Name, el.Pos)
	}
	_, err = p.s.Consume(lexer.TagClose)
	return err
}

func (p *parser) captureStyle(el *Element, body []lexer.Token[lexer.Markup]) error {
	if p.doc.HasStyle {
		return lexer.Wrap(ErrDuplicateStyle, lexer.SemanticError, p.file, el.Pos, "element <%s>", el.Name)
	}
	if len(el.Attrs) > 0 {
		return lexer.Errorf(lexer.SemanticError, p.file, el.Attrs[0].Pos,
			"style element does not take attributes")
	}
	p.doc.HasStyle = true
	p.doc.Style = body
	p.doc.StylePos = el.Pos
	return nil
}

var attrKinds = map[lexer.Markup]AttrKind{
	lexer.String:      AttrString,
	lexer.Ident:       AttrIdent,
	lexer.Int:         AttrInt,
	lexer.Uint:        AttrUint,
	lexer.Float:       AttrFloat,
	lexer.Bool:        AttrBool,
	lexer.Expr:        AttrExpr,
	lexer.Placeholder: AttrPlaceholder,
}

// AttrKindOf returns the attribute kind for a value token.
func AttrKindOf(k lexer.Markup) (AttrKind, bool) {
	kind, ok := attrKinds[k]
	return kind, ok
}

func (p *parser) parseAttributes(el *Element) error {
	for p.s.Is(lexer.Ident) {
		name, _ := p.s.Next()
		if el.Attr(name.Value) != nil {
			return lexer.Errorf(lexer.SemanticError, p.file, name.Pos(),
				"duplicate attribute %s for element <%s>", name.Value, el.Name)
		}
		attr := &Attr{Name: name.Value, Kind: AttrImplicit, Pos: name.Pos()}
		if p.s.Is(lexer.Equals) {
			p.s.Advance(1)
			v := p.s.Current()
			kind, ok := attrKinds[v.Kind]
			if !ok {
				return p.s.Unexpected("as value of attribute " + name.Value)
			}
			p.s.Advance(1)
			attr.Kind, attr.Raw, attr.Pos = kind, v.Value, v.Pos()
		}
		el.Attrs = append(el.Attrs, attr)
	}
	if !p.s.Is(lexer.TagClose) && !p.s.Is(lexer.TagSelfEnd) {
		return p.s.Unexpected("in element <" + el.Name + ">")
	}
	return nil
}

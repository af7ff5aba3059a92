package lexer

import (
	"strings"
)

type mode uint8

const (
	contentMode mode = iota
	tagMode
	styleMode
)

// MarkupLexer produces tokens of the markup grammar.
type MarkupLexer struct {
	*scanner
	styleTag string
	mode     mode
	toks     []Token[Markup]
	tagName  string // name of the tag currently lexed
	inEnd    bool   // lexing an end tag
	nameNext bool   // next identifier is a tag name
}

// Lex tokenizes a markup document. file is used for diagnostics only.
// The contents of elements named styleTag (case-insensitive) are lexed as
// style blocks.
func Lex(src, file, styleTag string) ([]Token[Markup], error) {
	l := &MarkupLexer{scanner: newScanner(src, file), styleTag: styleTag}
	if err := l.run(); err != nil {
		return nil, err
	}
	tracer().P("file", file).Debugf("lexed %d markup tokens", len(l.toks))
	return l.toks, nil
}

// LexStyle tokenizes a stand-alone stylesheet.
func LexStyle(src, file string) ([]Token[Markup], error) {
	l := &MarkupLexer{scanner: newScanner(src, file), mode: styleMode}
	if err := l.run(); err != nil {
		return nil, err
	}
	return l.toks, nil
}

// LexValue tokenizes a single style property value, e.g. the value of an
// inline style declaration.
func LexValue(src, file string) ([]Token[Markup], error) {
	toks, err := LexStyle(src, file)
	if err != nil {
		return nil, err
	}
	for _, t := range toks {
		switch t.Kind {
		case LBrace, RBrace, Semicolon, Colon:
			return nil, Errorf(SyntaxError, file, t.Pos(), "unexpected %s in property value", t.Kind)
		}
	}
	return toks, nil
}

// LexAttrValue tokenizes a single attribute value as it would appear
// unquoted after "=" in a tag, e.g. the text substituted for a template
// placeholder.
func LexAttrValue(src, file string) (Token[Markup], error) {
	l := &MarkupLexer{scanner: newScanner(src, file), mode: tagMode}
	l.skipSpace()
	start := l.pos()
	if l.peek() == eof {
		return Token[Markup]{}, l.errorf(start, "empty attribute value")
	}
	if _, err := l.lexTag(); err != nil {
		return Token[Markup]{}, err
	}
	l.skipSpace()
	if len(l.toks) != 1 || l.peek() != eof {
		return Token[Markup]{}, l.errorf(start, "%q is not a single attribute value", src)
	}
	switch t := l.toks[0]; t.Kind {
	case Equals, TagClose, TagSelfEnd:
		return Token[Markup]{}, l.errorf(start, "unexpected %s in attribute value", t.Kind)
	}
	return l.toks[0], nil
}

func (l *MarkupLexer) emit(k Markup, value string, start Pos) {
	l.toks = append(l.toks, Token[Markup]{
		Kind:  k,
		Value: value,
		Span:  Span{Start: start, End: l.pos()},
	})
}

func (l *MarkupLexer) run() error {
	for {
		var err error
		var done bool
		switch l.mode {
		case contentMode:
			done, err = l.lexContent()
		case tagMode:
			done, err = l.lexTag()
		case styleMode:
			done, err = l.lexStyle()
		}
		if err != nil {
			return err
		}
		if done {
			return nil
		}
	}
}

func (l *MarkupLexer) skipComment(open, close string) error {
	start := l.pos()
	l.skip(len(open))
	for !l.hasPrefix(close) {
		if l.next() == eof {
			return l.errorf(start, "unterminated comment")
		}
	}
	l.skip(len(close))
	return nil
}

func (l *MarkupLexer) lexContent() (bool, error) {
	l.skipSpace()
	start := l.pos()
	switch {
	case l.peek() == eof:
		return true, nil
	case l.hasPrefix("<!--"):
		return false, l.skipComment("<!--", "-->")
	case l.hasPrefix("</"):
		l.skip(2)
		l.emit(TagEndOpen, "</", start)
		l.mode, l.inEnd, l.nameNext = tagMode, true, true
		return false, nil
	case l.peek() == '<':
		l.next()
		l.emit(TagOpen, "<", start)
		l.mode, l.inEnd, l.nameNext = tagMode, false, true
		return false, nil
	}
	from := l.off
	for r := l.peek(); r != '<' && r != eof; r = l.peek() {
		l.next()
	}
	l.emit(Text, strings.TrimSpace(l.src[from:l.off]), start)
	return false, nil
}

func (l *MarkupLexer) lexTag() (bool, error) {
	l.skipSpace()
	start := l.pos()
	r := l.peek()
	switch {
	case r == eof:
		return false, l.errorf(start, "unexpected end of input inside tag <%s", l.tagName)
	case l.hasPrefix("/>"):
		l.skip(2)
		l.emit(TagSelfEnd, "/>", start)
		l.mode = contentMode
	case r == '>':
		l.next()
		l.emit(TagClose, ">", start)
		l.mode = contentMode
		if !l.inEnd && l.styleTag != "" && strings.EqualFold(l.tagName, l.styleTag) {
			l.mode = styleMode
		}
	case r == '=':
		l.next()
		l.emit(Equals, "=", start)
	case r == '"':
		s, err := l.scanString('"')
		if err != nil {
			return false, err
		}
		l.emit(String, s, start)
	case r == '{':
		raw, err := l.scanBalanced('{', '}')
		if err != nil {
			return false, err
		}
		l.emit(Expr, raw, start)
	case r == '$' && l.peekAt(1) == '{':
		l.next()
		raw, err := l.scanBalanced('{', '}')
		if err != nil {
			return false, err
		}
		l.emit(Placeholder, "$"+raw, start)
	case l.startsNumber():
		return false, l.lexNumber(start)
	case l.startsIdent():
		l.lexIdent(start)
	default:
		return false, l.unexpected(r, start)
	}
	return false, nil
}

// lexIdent emits an identifier or a boolean literal. As identifiers are
// scanned greedily, "truex" will never be classified as a boolean.
func (l *MarkupLexer) lexIdent(start Pos) {
	id := l.scanIdent()
	if l.mode == tagMode && l.nameNext {
		l.tagName = id
		l.nameNext = false
		l.emit(Ident, id, start)
		return
	}
	if id == "true" || id == "false" {
		l.emit(Bool, id, start)
		return
	}
	l.emit(Ident, id, start)
}

func (l *MarkupLexer) lexNumber(start Pos) error {
	class, text, err := l.scanNumber()
	if err != nil {
		return err
	}
	switch class {
	case numUint:
		l.emit(Uint, text, start)
	case numFloat:
		l.emit(Float, text, start)
	default:
		l.emit(Int, text, start)
	}
	return nil
}

var stylePunct = map[rune]Markup{
	'{': LBrace,
	'}': RBrace,
	':': Colon,
	';': Semicolon,
	',': Comma,
	'#': Hash,
	'.': Dot,
	'&': Amp,
	'@': At,
	'%': Percent,
	'(': LParen,
	')': RParen,
}

func (l *MarkupLexer) lexStyle() (bool, error) {
	l.skipSpace()
	start := l.pos()
	r := l.peek()
	switch {
	case r == eof:
		return true, nil
	case l.hasPrefix("/*"):
		return false, l.skipComment("/*", "*/")
	case l.hasPrefix("</") && l.styleTag != "":
		l.skip(2)
		l.emit(TagEndOpen, "</", start)
		l.mode, l.inEnd, l.nameNext = tagMode, true, true
	case r == '"':
		s, err := l.scanString('"')
		if err != nil {
			return false, err
		}
		l.emit(String, s, start)
	case l.startsNumber():
		return false, l.lexNumber(start)
	case l.startsIdent():
		l.lexIdent(start)
	default:
		k, ok := stylePunct[r]
		if !ok {
			return false, l.unexpected(r, start)
		}
		l.next()
		l.emit(k, string(r), start)
	}
	return false, nil
}

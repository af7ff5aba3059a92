package cssom

import (
	"errors"
	"strings"

	"github.com/npillmayer/udt/dom/style"
	"github.com/npillmayer/udt/lexer"
)

// ErrFailedToApplyStyle is returned if no value interpreter accepts a
// property declaration.
var ErrFailedToApplyStyle = errors.New("failed to apply style")

type parser struct {
	s     *lexer.Stream[lexer.Markup]
	file  string
	ld    *Loader
	sheet *StyleSheet
}

// Parse parses the tokens of a style block. Imports are resolved with reg,
// which may be nil if the block does not contain any imports.
func Parse(toks []lexer.Token[lexer.Markup], file string, reg *Registry) (*StyleSheet, error) {
	return parse(toks, file, reg.NewLoader())
}

func parse(toks []lexer.Token[lexer.Markup], file string, ld *Loader) (*StyleSheet, error) {
	p := &parser{
		s:     lexer.NewStream(file, toks),
		file:  file,
		ld:    ld,
		sheet: &StyleSheet{},
	}
	for !p.s.EOF() {
		var err error
		if p.s.Is(lexer.At) {
			err = p.parseImport()
		} else {
			err = p.parseBlock(nil)
		}
		if err != nil {
			return nil, err
		}
	}
	tracer().P("file", file).Debugf("parsed stylesheet with %d rules", len(p.sheet.rules))
	return p.sheet, nil
}

// ParseText lexes and parses a stand-alone stylesheet.
func ParseText(src, file string, reg *Registry) (*StyleSheet, error) {
	return parseFormat(src, file, reg.NewLoader())
}

// parseFormat is the Format of stylesheets without a registered suffix.
func parseFormat(src, file string, ld *Loader) (*StyleSheet, error) {
	toks, err := lexer.LexStyle(src, file)
	if err != nil {
		return nil, err
	}
	return parse(toks, file, ld)
}

func (p *parser) parseImport() error {
	at, _ := p.s.Consume(lexer.At)
	kw, err := p.s.Consume(lexer.Ident)
	if err != nil {
		return err
	}
	if !strings.EqualFold(kw.Value, "import") {
		return lexer.Errorf(lexer.SemanticError, p.file, kw.Pos(), "unknown keyword @%s", kw.Value)
	}
	name, err := p.s.Consume(lexer.String)
	if err != nil {
		return err
	}
	if _, err := p.s.Consume(lexer.Semicolon); err != nil {
		return err
	}
	if !p.ld.Exists(name.Value) {
		return lexer.Wrap(ErrUnknownStylesheet, lexer.SemanticError, p.file, at.Pos(),
			"cannot import %q", name.Value)
	}
	imported, err := p.ld.Load(name.Value)
	if err != nil {
		return lexer.Wrap(err, lexer.SemanticError, p.file, at.Pos(), "cannot import %q", name.Value)
	}
	tracer().Debugf("importing %d rules from %q", len(imported.Rules()), name.Value)
	p.sheet.AppendRules(imported)
	return nil
}

// parseBlock parses a selector block. parents holds the selectors of the
// enclosing block, if any.
func (p *parser) parseBlock(parents []string) error {
	start := p.s.Current()
	selTokens := p.s.Until(lexer.LBrace, lexer.RBrace, lexer.Semicolon)
	if _, err := p.s.Consume(lexer.LBrace); err != nil {
		return err
	}
	selectors, err := p.selectors(selTokens, parents)
	if err != nil {
		return err
	}
	st := &style.Style{}
	// rules for the block are added before rules of nested blocks
	at := len(p.sheet.rules)
	for !p.s.Is(lexer.RBrace) {
		if p.s.EOF() {
			return p.s.Unexpected("in style block, expected '}'")
		}
		if p.nestedBlockAhead() {
			if err := p.parseBlock(selectors); err != nil {
				return err
			}
			continue
		}
		if err := p.parseDeclaration(st, selectors); err != nil {
			return err
		}
	}
	p.s.Consume(lexer.RBrace)
	rules := make([]*Rule, len(selectors))
	for i, sel := range selectors {
		rules[i] = &Rule{Selector: sel, Style: st, File: p.file, Pos: start.Pos()}
	}
	p.sheet.rules = append(p.sheet.rules[:at], append(rules, p.sheet.rules[at:]...)...)
	return nil
}

// nestedBlockAhead is true if a '{' comes before the next ';' or '}'.
func (p *parser) nestedBlockAhead() bool {
	for i := 0; ; i++ {
		switch p.s.Peek(i).Kind {
		case lexer.LBrace:
			return true
		case lexer.Semicolon, lexer.RBrace, lexer.EOF:
			return false
		}
	}
}

func (p *parser) parseDeclaration(st *style.Style, selectors []string) error {
	name, err := p.s.Consume(lexer.Ident)
	if err != nil {
		return err
	}
	if _, err := p.s.Consume(lexer.Colon); err != nil {
		return err
	}
	value := p.s.Until(lexer.Semicolon, lexer.RBrace)
	if p.s.Is(lexer.Semicolon) {
		p.s.Advance(1)
	}
	return Declare(st, name, value, p.file, strings.Join(selectors, ", "))
}

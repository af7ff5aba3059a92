package cssom

import (
	"strings"

	"github.com/npillmayer/udt/lexer"
)

// selectors converts the tokens of a selector list into selector strings,
// combining them with the selectors of the enclosing block.
func (p *parser) selectors(toks []lexer.Token[lexer.Markup], parents []string) ([]string, error) {
	var groups [][]lexer.Token[lexer.Markup]
	from := 0
	for i, t := range toks {
		if t.Kind == lexer.Comma {
			groups = append(groups, toks[from:i])
			from = i + 1
		}
	}
	groups = append(groups, toks[from:])
	var result []string
	for _, g := range groups {
		sel, refine, err := p.selector(g, parents != nil)
		if err != nil {
			return nil, err
		}
		if parents == nil {
			result = append(result, sel)
			continue
		}
		for _, parent := range parents {
			if refine {
				result = append(result, parent+sel)
			} else {
				result = append(result, parent+" "+sel)
			}
		}
	}
	return result, nil
}

// selector validates a single selector and rebuilds its text. Whitespace
// between tokens is significant and normalized to a single blank. If the
// selector starts with '&', refine is true and the '&' is dropped.
func (p *parser) selector(toks []lexer.Token[lexer.Markup], nested bool) (sel string, refine bool, err error) {
	if len(toks) == 0 {
		return "", false, p.s.Unexpected("where a selector is expected")
	}
	var b strings.Builder
	i := 0
	if toks[0].Kind == lexer.Amp {
		if !nested {
			return "", false, lexer.Errorf(lexer.SyntaxError, p.file, toks[0].Pos(),
				"'&' is only allowed in nested blocks")
		}
		refine = true
		i = 1
		if i == len(toks) {
			return "", false, lexer.Errorf(lexer.SyntaxError, p.file, toks[0].Pos(), "incomplete selector")
		}
		if !toks[0].Span.Adjacent(toks[1].Span) {
			b.WriteByte(' ')
		}
	}
	first := i
	for ; i < len(toks); i++ {
		t := toks[i]
		if i > first && !toks[i-1].Span.Adjacent(t.Span) {
			b.WriteByte(' ')
		}
		switch t.Kind {
		case lexer.Ident:
			b.WriteString(t.Value)
		case lexer.Hash, lexer.Dot, lexer.Colon:
			if i+1 == len(toks) || toks[i+1].Kind != lexer.Ident || !t.Span.Adjacent(toks[i+1].Span) {
				return "", false, lexer.Errorf(lexer.SyntaxError, p.file, t.Pos(),
					"%s must be followed by a name", t.Kind)
			}
			b.WriteString(t.Value)
			b.WriteString(toks[i+1].Value)
			i++
		default:
			return "", false, lexer.Errorf(lexer.SyntaxError, p.file, t.Pos(),
				"unexpected %s %q in selector", t.Kind, t.Value)
		}
	}
	return b.String(), refine, nil
}

/*
Package douceuradapter reads plain CSS with the douceur CSS parser and
converts it into the typed stylesheets of package cssom.

Plain CSS is used in two places: inline style attributes of elements,
which consist of declarations only, and named stylesheets registered with
a ".css" suffix. Plain CSS stylesheets are flat: there is no nesting of
blocks. Values are written the CSS way: colors may be given as unquoted
hex values (#ff0000), lengths may carry a "px" unit.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>
*/
package douceuradapter

import (
	"strconv"
	"strings"
	"unicode"

	"github.com/aymerick/douceur/css"
	"github.com/aymerick/douceur/parser"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/tyse/core/dimen"
	"github.com/npillmayer/udt/dom/style"
	"github.com/npillmayer/udt/dom/style/cssom"
	"github.com/npillmayer/udt/lexer"
)

// tracer traces with key 'udt.style'.
func tracer() tracing.Trace {
	return tracing.Select("udt.style")
}

// Parse parses a plain CSS stylesheet. It is a cssom.Format and is usually
// set for the suffix ".css" of a stylesheet registry.
func Parse(src, name string, ld *cssom.Loader) (*cssom.StyleSheet, error) {
	c, err := parser.Parse(src)
	if err != nil {
		return nil, lexer.Wrap(err, lexer.SyntaxError, name, lexer.Pos{}, "malformed CSS")
	}
	return Wrap(c, name, ld)
}

var _ cssom.Format = Parse

// Wrap converts a douceur stylesheet. @import rules are resolved with ld.
func Wrap(c *css.Stylesheet, name string, ld *cssom.Loader) (*cssom.StyleSheet, error) {
	sheet := cssom.NewStyleSheet()
	for _, r := range c.Rules {
		switch {
		case r.Kind == css.AtRule && strings.EqualFold(r.Name, "@import"):
			imp, err := strconv.Unquote(strings.TrimSpace(r.Prelude))
			if err != nil {
				imp = strings.Trim(strings.TrimSpace(r.Prelude), `"'`)
			}
			if !ld.Exists(imp) {
				return nil, lexer.Wrap(cssom.ErrUnknownStylesheet, lexer.SemanticError, name, lexer.Pos{},
					"cannot import %q", imp)
			}
			other, err := ld.Load(imp)
			if err != nil {
				return nil, lexer.Wrap(err, lexer.SemanticError, name, lexer.Pos{}, "cannot import %q", imp)
			}
			sheet.AppendRules(other)
		case r.Kind == css.AtRule:
			return nil, lexer.Errorf(lexer.SemanticError, name, lexer.Pos{}, "unsupported at-rule %s", r.Name)
		default:
			st, err := declarations(r.Declarations, name, r.Prelude)
			if err != nil {
				return nil, err
			}
			for _, sel := range r.Selectors {
				sheet.AddRule(&cssom.Rule{
					Selector: strings.Join(strings.Fields(sel), " "),
					Style:    st,
					File:     name,
				})
			}
		}
	}
	tracer().Debugf("converted CSS stylesheet %q with %d rules", name, len(sheet.Rules()))
	return sheet, nil
}

// InlineStyle parses the declarations of a style attribute into an
// anonymous style. pos is the position of the attribute.
func InlineStyle(text, file string, pos lexer.Pos) (*style.Style, error) {
	text = strings.TrimSpace(text)
	if text != "" && !strings.HasSuffix(text, ";") {
		text += ";" // the last declaration is dropped by douceur otherwise
	}
	decls, err := parser.ParseDeclarations(text)
	if err != nil {
		return nil, lexer.Wrap(err, lexer.SyntaxError, file, pos, "malformed style attribute")
	}
	st, err := declarations(decls, file, "style attribute")
	if err != nil {
		if e, ok := err.(*lexer.Error); ok && !e.Pos.IsKnown() {
			e.Pos = pos
		}
		return nil, err
	}
	return st, nil
}

func declarations(decls []*css.Declaration, file, context string) (*style.Style, error) {
	st := &style.Style{}
	for _, d := range decls {
		value, err := lexer.LexValue(normalize(d.Value), file)
		if err != nil {
			return nil, lexer.Wrap(err, lexer.SyntaxError, file, lexer.Pos{},
				"in %s: malformed value for %s", context, d.Property)
		}
		for i := range value { // positions are relative to the value only
			value[i].Span.Start = lexer.Pos{Offset: value[i].Span.Start.Offset}
			value[i].Span.End = lexer.Pos{Offset: value[i].Span.End.Offset}
		}
		name := lexer.Token[lexer.Markup]{Kind: lexer.Ident, Value: d.Property}
		if err := cssom.Declare(st, name, value, file, context); err != nil {
			return nil, err
		}
	}
	return st, nil
}

// normalize rewrites CSS notation into the notation of style blocks:
// unquoted hex colors are quoted and lengths with a unit become pixels.
func normalize(value string) string {
	fields := strings.Fields(value)
	for i, f := range fields {
		switch {
		case strings.HasPrefix(f, "#"):
			fields[i] = strconv.Quote(f)
		case hasUnit(f):
			if du, isPercent, err := dimen.Parse(f); err == nil && !isPercent {
				fields[i] = strconv.FormatFloat(float64(du)/float64(dimen.PX), 'g', -1, 64)
			}
		}
	}
	return strings.Join(fields, " ")
}

// hasUnit is true for fields like "12pt", i.e. a digit followed by letters.
func hasUnit(f string) bool {
	n := strings.TrimRightFunc(f, unicode.IsLetter)
	return n != f && n != "" && unicode.IsDigit(rune(n[len(n)-1]))
}

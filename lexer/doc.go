/*
Package lexer converts UDT source text into flat sequences of typed tokens.

Overview

There are two independent grammars and therefore two independent token
kind enumerations:

    Markup    tags, attributes, element text, style blocks and selectors
    ExprKind  the small literal language of attribute expressions: scalars,
              arrays and maps

Tokens of both grammars share the generic type Token[K]. Parsers are built
on top of Stream[K], a cursor over a token slice with lookahead and
consumption with type assertions.

The markup lexer is modal: it switches between element content, the
inside of a tag, and the body of a style block. A style block is lexed with
the same token kinds, so the stylesheet parser may consume a sub-stream
of the markup token stream. Stand-alone stylesheets (e.g., named
stylesheets for imports) are lexed with LexStyle.

Every error produced by this package is a *Error, carrying a category,
the file name given by the client and a 1-based line/column position.

___________________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package lexer

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'udt.lexer'.
func tracer() tracing.Trace {
	return tracing.Select("udt.lexer")
}

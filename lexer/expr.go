package lexer

var exprPunct = map[rune]ExprKind{
	'[': ExprLBracket,
	']': ExprRBracket,
	'{': ExprLBrace,
	'}': ExprRBrace,
	',': ExprComma,
	':': ExprColon,
}

// LexExpr tokenizes an attribute expression. String literals in
// expressions are delimited by single quotes, so expressions may be
// embedded in double-quoted markup strings without escaping.
func LexExpr(src, file string) ([]Token[ExprKind], error) {
	s := newScanner(src, file)
	var toks []Token[ExprKind]
	emit := func(k ExprKind, v string, start Pos) {
		toks = append(toks, Token[ExprKind]{Kind: k, Value: v, Span: Span{Start: start, End: s.pos()}})
	}
	for {
		s.skipSpace()
		start := s.pos()
		r := s.peek()
		switch {
		case r == eof:
			return toks, nil
		case r == '\'':
			str, err := s.scanString('\'')
			if err != nil {
				return nil, err
			}
			emit(ExprString, str, start)
		case s.startsNumber():
			class, text, err := s.scanNumber()
			if err != nil {
				return nil, err
			}
			switch class {
			case numUint:
				emit(ExprUint, text, start)
			case numFloat:
				emit(ExprFloat, text, start)
			default:
				emit(ExprInt, text, start)
			}
		case s.startsIdent():
			id := s.scanIdent()
			if id == "true" || id == "false" {
				emit(ExprBool, id, start)
			} else {
				emit(ExprIdent, id, start)
			}
		default:
			k, ok := exprPunct[r]
			if !ok {
				return nil, s.unexpected(r, start)
			}
			s.next()
			emit(k, string(r), start)
		}
	}
}

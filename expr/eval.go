package expr

import (
	"strconv"
	"strings"

	"github.com/npillmayer/udt/lexer"
)

// Substitute replaces every occurrence of ${name} in src by the value
// registered for name in placeholders. Names are matched case-insensitively.
// Placeholders without a replacement are left untouched.
func Substitute(src string, placeholders map[string]string) string {
	if len(placeholders) == 0 || !strings.Contains(src, "${") {
		return src
	}
	folded := make(map[string]string, len(placeholders))
	for k, v := range placeholders {
		folded[strings.ToLower(k)] = v
	}
	var b strings.Builder
	rest := src
	for {
		i := strings.Index(rest, "${")
		if i < 0 {
			break
		}
		j := strings.IndexByte(rest[i:], '}')
		if j < 0 {
			break
		}
		name := rest[i+2 : i+j]
		b.WriteString(rest[:i])
		if v, ok := folded[strings.ToLower(strings.TrimSpace(name))]; ok {
			b.WriteString(v)
		} else {
			b.WriteString(rest[i : i+j+1])
		}
		rest = rest[i+j+1:]
	}
	b.WriteString(rest)
	return b.String()
}

// Placeholders returns the names of all placeholders in src, in order of
// appearance.
func Placeholders(src string) []string {
	var names []string
	rest := src
	for {
		i := strings.Index(rest, "${")
		if i < 0 {
			return names
		}
		j := strings.IndexByte(rest[i:], '}')
		if j < 0 {
			return names
		}
		names = append(names, strings.TrimSpace(rest[i+2:i+j]))
		rest = rest[i+j+1:]
	}
}

// HasPlaceholder is true if src contains at least one ${…} placeholder.
func HasPlaceholder(src string) bool {
	return len(Placeholders(src)) > 0
}

// Evaluate substitutes placeholders in src, tokenizes and evaluates it.
// Empty input yields the absent value. file is used for diagnostics.
func Evaluate(src string, placeholders map[string]string, file string) (Value, error) {
	src = Substitute(src, placeholders)
	toks, err := lexer.LexExpr(src, file)
	if err != nil {
		return Value{}, err
	}
	s := lexer.NewStream(file, toks)
	if s.EOF() {
		return Value{}, nil
	}
	if len(toks) == 1 {
		return scalar(toks[0], file)
	}
	var v Value
	switch s.Current().Kind {
	case lexer.ExprLBracket:
		v, err = parseArray(s)
	case lexer.ExprLBrace:
		v, err = parseMap(s)
	default:
		return Value{}, s.Unexpected("at start of expression, expected '[' or '{'")
	}
	if err != nil {
		return Value{}, err
	}
	if !s.EOF() {
		return Value{}, s.Unexpected("after end of expression")
	}
	tracer().Debugf("evaluated %q to %s", src, v)
	return v, nil
}

// EvaluateBraced evaluates a raw attribute expression of the form {…}.
// The outer braces are stripped and the body is evaluated. If the body does
// not evaluate, the braced text is tried as a map literal, so that both
// {{a: 1}} and {a: 1} denote a map. An empty body is an error.
func EvaluateBraced(raw string, placeholders map[string]string, file string, pos lexer.Pos) (Value, error) {
	body := strings.TrimSpace(raw)
	if strings.HasPrefix(body, "{") && strings.HasSuffix(body, "}") {
		body = strings.TrimSpace(body[1 : len(body)-1])
	}
	if body == "" {
		return Value{}, lexer.Errorf(lexer.SemanticError, file, pos, "empty expression")
	}
	v, err := Evaluate(body, placeholders, file)
	if err != nil {
		if m, merr := Evaluate(raw, placeholders, file); merr == nil && m.Kind == MapKind {
			return m, nil
		}
		return Value{}, lexer.Wrap(err, lexer.SyntaxError, file, pos, "in expression %s", raw)
	}
	return v, nil
}

func parseValue(s *lexer.Stream[lexer.ExprKind]) (Value, error) {
	switch s.Current().Kind {
	case lexer.ExprLBracket:
		return parseArray(s)
	case lexer.ExprLBrace:
		return parseMap(s)
	}
	t, err := s.Next()
	if err != nil {
		return Value{}, err
	}
	return scalar(t, s.File())
}

func parseArray(s *lexer.Stream[lexer.ExprKind]) (Value, error) {
	if _, err := s.Consume(lexer.ExprLBracket); err != nil {
		return Value{}, err
	}
	arr := Value{Kind: ArrayKind}
	for !s.Is(lexer.ExprRBracket) {
		if len(arr.Items) > 0 {
			if _, err := s.Consume(lexer.ExprComma); err != nil {
				return Value{}, err
			}
		}
		v, err := parseValue(s)
		if err != nil {
			return Value{}, err
		}
		arr.Items = append(arr.Items, v)
	}
	_, err := s.Consume(lexer.ExprRBracket)
	return arr, err
}

func parseMap(s *lexer.Stream[lexer.ExprKind]) (Value, error) {
	if _, err := s.Consume(lexer.ExprLBrace); err != nil {
		return Value{}, err
	}
	m := Value{Kind: MapKind}
	for !s.Is(lexer.ExprRBrace) {
		if len(m.Entries) > 0 {
			if _, err := s.Consume(lexer.ExprComma); err != nil {
				return Value{}, err
			}
		}
		key := s.Current()
		if key.Kind != lexer.ExprIdent && key.Kind != lexer.ExprString {
			return Value{}, s.Unexpected("as map key")
		}
		s.Advance(1)
		if _, err := s.Consume(lexer.ExprColon); err != nil {
			return Value{}, err
		}
		v, err := parseValue(s)
		if err != nil {
			return Value{}, err
		}
		m.Entries = append(m.Entries, Entry{Key: key.Value, Value: v})
	}
	_, err := s.Consume(lexer.ExprRBrace)
	return m, err
}

func scalar(t lexer.Token[lexer.ExprKind], file string) (Value, error) {
	var v Value
	var err error
	switch t.Kind {
	case lexer.ExprString, lexer.ExprIdent:
		return Str(t.Value), nil
	case lexer.ExprInt:
		v.Kind = IntKind
		v.Int, err = strconv.ParseInt(t.Value, 10, 64)
	case lexer.ExprUint:
		v.Kind = UintKind
		v.Uint, err = strconv.ParseUint(t.Value, 0, 64)
	case lexer.ExprFloat:
		v.Kind = FloatKind
		v.Float, err = strconv.ParseFloat(t.Value, 64)
	case lexer.ExprBool:
		return Bool(t.Value == "true"), nil
	default:
		return Value{}, lexer.Errorf(lexer.SyntaxError, file, t.Pos(), "unexpected %s in expression", t.Kind)
	}
	if err != nil {
		return Value{}, lexer.Wrap(err, lexer.TypeError, file, t.Pos(), "malformed %s literal %q", t.Kind, t.Value)
	}
	return v, nil
}

// FromToken converts a scalar markup token into a value. Identifiers
// convert to strings.
func FromToken(t lexer.Token[lexer.Markup], file string) (Value, error) {
	var v Value
	var err error
	switch t.Kind {
	case lexer.String, lexer.Ident, lexer.Text:
		return Str(t.Value), nil
	case lexer.Int:
		v.Kind = IntKind
		v.Int, err = strconv.ParseInt(t.Value, 10, 64)
	case lexer.Uint:
		v.Kind = UintKind
		v.Uint, err = strconv.ParseUint(t.Value, 0, 64)
	case lexer.Float:
		v.Kind = FloatKind
		v.Float, err = strconv.ParseFloat(t.Value, 64)
	case lexer.Bool:
		return Bool(t.Value == "true"), nil
	default:
		return Value{}, lexer.Errorf(lexer.SyntaxError, file, t.Pos(), "%s is not a literal value", t.Kind)
	}
	if err != nil {
		return Value{}, lexer.Wrap(err, lexer.TypeError, file, t.Pos(), "malformed %s literal %q", t.Kind, t.Value)
	}
	return v, nil
}

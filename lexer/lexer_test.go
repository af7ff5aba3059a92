package lexer

import (
	"errors"
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

func kinds[K Kind](toks []Token[K]) []K {
	ks := make([]K, len(toks))
	for i, t := range toks {
		ks[i] = t.Kind
	}
	return ks
}

func sameKinds[K Kind](t *testing.T, toks []Token[K], expected ...K) {
	t.Helper()
	ks := kinds(toks)
	if len(ks) != len(expected) {
		t.Fatalf("expected %d tokens, have %d: %v", len(expected), len(ks), toks)
	}
	for i := range ks {
		if ks[i] != expected[i] {
			t.Errorf("token #%d: expected %s, have %s", i, expected[i], toks[i])
		}
	}
}

func TestLexElement(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "udt.lexer")
	defer teardown()
	//
	toks, err := Lex(`<node id="a" visible size={[1, 2]} label=${text}>Hello</node>`, "test", "style")
	if err != nil {
		t.Fatal(err)
	}
	sameKinds(t, toks,
		TagOpen, Ident, Ident, Equals, String, Ident, Ident, Equals, Expr,
		Ident, Equals, Placeholder, TagClose, Text, TagEndOpen, Ident, TagClose)
	if toks[8].Value != "{[1, 2]}" {
		t.Errorf("expected raw expression including braces, have %q", toks[8].Value)
	}
	if toks[13].Value != "Hello" {
		t.Errorf("expected text 'Hello', have %q", toks[13].Value)
	}
}

func TestLexNumbers(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "udt.lexer")
	defer teardown()
	//
	toks, err := Lex(`<n a=-12 b=1_000 c=0xff00_ffff d=1.5 e=2e3 f=-0.5/>`, "test", "style")
	if err != nil {
		t.Fatal(err)
	}
	expected := []struct {
		k Markup
		v string
	}{
		{Int, "-12"}, {Int, "1000"}, {Uint, "0xff00ffff"}, {Float, "1.5"}, {Float, "2e3"}, {Float, "-0.5"},
	}
	j := 0
	for _, tok := range toks {
		if tok.Kind == Int || tok.Kind == Uint || tok.Kind == Float {
			if tok.Kind != expected[j].k || tok.Value != expected[j].v {
				t.Errorf("expected %s %q, have %s", expected[j].k, expected[j].v, tok)
			}
			j++
		}
	}
	if j != len(expected) {
		t.Errorf("expected %d numbers, found %d", len(expected), j)
	}
}

func TestLexBooleanPrefix(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "udt.lexer")
	defer teardown()
	//
	toks, err := LexStyle(`truex: true; false-ish: false;`, "test")
	if err != nil {
		t.Fatal(err)
	}
	sameKinds(t, toks, Ident, Colon, Bool, Semicolon, Ident, Colon, Bool, Semicolon)
}

func TestLexStyleBlock(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "udt.lexer")
	defer teardown()
	//
	src := `<udt><style>
	/* comment */
	.box:hover { color: red; &.big { size: 50% auto; } }
	</style><!-- a comment --><n/></udt>`
	toks, err := Lex(src, "test", "style")
	if err != nil {
		t.Fatal(err)
	}
	sameKinds(t, toks,
		TagOpen, Ident, TagClose, // <udt>
		TagOpen, Ident, TagClose, // <style>
		Dot, Ident, Colon, Ident, LBrace, Ident, Colon, Ident, Semicolon,
		Amp, Dot, Ident, LBrace, Ident, Colon, Int, Percent, Ident, Semicolon, RBrace, RBrace,
		TagEndOpen, Ident, TagClose, // </style>
		TagOpen, Ident, TagSelfEnd, // <n/>
		TagEndOpen, Ident, TagClose) // </udt>
	if toks[6].Pos().Line != 3 {
		t.Errorf("expected '.' on line 3, is on %s", toks[6].Pos())
	}
}

func TestLexErrors(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "udt.lexer")
	defer teardown()
	//
	inputs := []string{
		`<n a="unterminated/>`,
		`<n a=?/>`,
		`<n a={[1, 2}/>`,
		`<n`,
	}
	for _, input := range inputs {
		_, err := Lex(input, "bad.udt", "style")
		if err == nil {
			t.Errorf("expected error for %q", input)
			continue
		}
		var lerr *Error
		if !errors.As(err, &lerr) || lerr.Category != LexError {
			t.Errorf("expected lex error for %q, have %v", input, err)
		}
		t.Logf("%s", err)
	}
	_, err := Lex("<n a=1\n  b=§/>", "bad.udt", "style")
	var lerr *Error
	if !errors.As(err, &lerr) {
		t.Fatalf("expected *Error, have %v", err)
	}
	if lerr.Pos.Line != 2 || lerr.Pos.Col != 5 {
		t.Errorf("expected error at 2:5, is at %s", lerr.Pos)
	}
}

func TestLexExpr(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "udt.lexer")
	defer teardown()
	//
	toks, err := LexExpr(`{a: 'x\'y', b: [1, 0x10, 2.5, true]}`, "test")
	if err != nil {
		t.Fatal(err)
	}
	sameKinds(t, toks,
		ExprLBrace, ExprIdent, ExprColon, ExprString, ExprComma,
		ExprIdent, ExprColon, ExprLBracket, ExprInt, ExprComma, ExprUint, ExprComma,
		ExprFloat, ExprComma, ExprBool, ExprRBracket, ExprRBrace)
	if toks[3].Value != "x'y" {
		t.Errorf("expected escaped quote in string, have %q", toks[3].Value)
	}
	if _, err := LexExpr(`'open`, "test"); err == nil {
		t.Errorf("expected unterminated string to fail")
	}
}

func TestLexAttrValue(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "udt.lexer")
	defer teardown()
	//
	for _, c := range []struct {
		src  string
		kind Markup
		val  string
	}{
		{"3", Int, "3"},
		{" -12 ", Int, "-12"},
		{"0x10", Uint, "0x10"},
		{"2.5", Float, "2.5"},
		{"false", Bool, "false"},
		{"row", Ident, "row"},
		{`"a b"`, String, "a b"},
		{"{[1, 2]}", Expr, "{[1, 2]}"},
	} {
		tok, err := LexAttrValue(c.src, "test")
		if err != nil {
			t.Errorf("%q: %v", c.src, err)
			continue
		}
		if tok.Kind != c.kind || tok.Value != c.val {
			t.Errorf("%q: expected %s %q, have %s", c.src, c.kind, c.val, tok)
		}
	}
	for _, src := range []string{"", "  ", "a b", "1 2", "=", ">", "/>", `"open`} {
		if _, err := LexAttrValue(src, "test"); err == nil {
			t.Errorf("%q: expected an error", src)
		}
	}
}

func TestStream(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "udt.lexer")
	defer teardown()
	//
	toks, _ := LexExpr(`[1, 2]`, "test")
	s := NewStream("test", toks)
	if !s.SequenceEquals(ExprLBracket, ExprInt, ExprComma) {
		t.Errorf("expected sequence [ int , to match")
	}
	if s.SequenceEquals(ExprLBracket, ExprComma) {
		t.Errorf("expected sequence [ , not to match")
	}
	if _, err := s.Consume(ExprInt); err == nil {
		t.Errorf("expected consume of wrong kind to fail")
	}
	if err := s.Advance(5); err != nil {
		t.Fatal(err)
	}
	if !s.EOF() || s.Peek(0).Kind != ExprEOF {
		t.Errorf("expected stream to be at EOF")
	}
	if _, err := s.Consume(ExprEOF); err == nil {
		t.Errorf("expected consume at EOF to fail")
	}
	if err := s.Advance(1); err == nil {
		t.Errorf("expected advance past EOF to fail")
	}
}

package lexer

import "fmt"

// Kind is the constraint for token kind enumerations. The zero value of
// every kind enumeration denotes end-of-stream.
type Kind interface {
	~uint8
	fmt.Stringer
}

// Token is a lexical token of grammar K. Tokens are immutable once produced.
//
// Value holds the raw text of the token with the following exceptions:
// string literals hold their unescaped content, numeric literals have
// underscores stripped, and element text is trimmed of surrounding whitespace.
type Token[K Kind] struct {
	Kind  K
	Value string
	Span  Span
}

func (t Token[K]) String() string {
	return fmt.Sprintf("%s(%q)@%s", t.Kind, t.Value, t.Span.Start)
}

// Pos returns the start position of a token.
func (t Token[K]) Pos() Pos {
	return t.Span.Start
}

// --- Markup grammar --------------------------------------------------------

// Markup is the token kind enumeration of the markup grammar, including
// style blocks and selectors.
type Markup uint8

// Markup token kinds.
const (
	EOF         Markup = iota // end of stream
	TagOpen                   // <
	TagEndOpen                // </
	TagClose                  // >
	TagSelfEnd                // />
	Equals                    // =
	Ident                     // letters, digits, '_' and '-', not starting with a digit
	String                    // "…"
	Int                       // -12
	Uint                      // 0xff00ff
	Float                     // 1.5e3
	Bool                      // true | false
	Text                      // element content
	Expr                      // {…} attribute expression, raw text including braces
	Placeholder               // ${name}
	LBrace                    // {  (style blocks)
	RBrace                    // }
	Colon                     // :
	Semicolon                 // ;
	Comma                     // ,
	Hash                      // #
	Dot                       // .
	Amp                       // &
	At                        // @
	Percent                   // %
	LParen                    // (
	RParen                    // )
)

var markupNames = [...]string{
	EOF:         "end-of-input",
	TagOpen:     "'<'",
	TagEndOpen:  "'</'",
	TagClose:    "'>'",
	TagSelfEnd:  "'/>'",
	Equals:      "'='",
	Ident:       "identifier",
	String:      "string",
	Int:         "integer",
	Uint:        "unsigned integer",
	Float:       "float",
	Bool:        "boolean",
	Text:        "text",
	Expr:        "expression",
	Placeholder: "placeholder",
	LBrace:      "'{'",
	RBrace:      "'}'",
	Colon:       "':'",
	Semicolon:   "';'",
	Comma:       "','",
	Hash:        "'#'",
	Dot:         "'.'",
	Amp:         "'&'",
	At:          "'@'",
	Percent:     "'%'",
	LParen:      "'('",
	RParen:      "')'",
}

func (k Markup) String() string {
	if int(k) < len(markupNames) {
		return markupNames[k]
	}
	return fmt.Sprintf("Markup(%d)", uint8(k))
}

// IsScalar is true for literal tokens which carry a scalar value.
func (k Markup) IsScalar() bool {
	switch k {
	case String, Int, Uint, Float, Bool, Ident:
		return true
	}
	return false
}

// --- Expression grammar ----------------------------------------------------

// ExprKind is the token kind enumeration of the expression grammar.
// It is unrelated to Markup, even where kinds share a name.
type ExprKind uint8

// Expression token kinds.
const (
	ExprEOF      ExprKind = iota // end of stream
	ExprLBracket                 // [
	ExprRBracket                 // ]
	ExprLBrace                   // {
	ExprRBrace                   // }
	ExprComma                    // ,
	ExprColon                    // :
	ExprIdent                    // identifier
	ExprString                   // '…'
	ExprInt                      // integer
	ExprUint                     // 0x…
	ExprFloat                    // float
	ExprBool                     // true | false
)

var exprNames = [...]string{
	ExprEOF:      "end-of-expression",
	ExprLBracket: "'['",
	ExprRBracket: "']'",
	ExprLBrace:   "'{'",
	ExprRBrace:   "'}'",
	ExprComma:    "','",
	ExprColon:    "':'",
	ExprIdent:    "identifier",
	ExprString:   "string",
	ExprInt:      "integer",
	ExprUint:     "unsigned integer",
	ExprFloat:    "float",
	ExprBool:     "boolean",
}

func (k ExprKind) String() string {
	if int(k) < len(exprNames) {
		return exprNames[k]
	}
	return fmt.Sprintf("ExprKind(%d)", uint8(k))
}

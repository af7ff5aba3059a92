package lexer

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// eof represents the end of the source text.
const eof rune = -1

// scanner is the rune-level machinery shared by all lexers.
type scanner struct {
	src  string
	file string
	off  int // byte offset of the next rune
	line int
	col  int
}

func newScanner(src, file string) *scanner {
	return &scanner{src: src, file: file, line: 1, col: 1}
}

func (s *scanner) pos() Pos {
	return Pos{Offset: s.off, Line: s.line, Col: s.col}
}

// peekAt returns the rune n positions ahead without consuming anything.
func (s *scanner) peekAt(n int) rune {
	off := s.off
	for {
		if off >= len(s.src) {
			return eof
		}
		r, w := utf8.DecodeRuneInString(s.src[off:])
		if n == 0 {
			return r
		}
		off += w
		n--
	}
}

func (s *scanner) peek() rune {
	return s.peekAt(0)
}

func (s *scanner) hasPrefix(p string) bool {
	return strings.HasPrefix(s.src[s.off:], p)
}

func (s *scanner) next() rune {
	if s.off >= len(s.src) {
		return eof
	}
	r, w := utf8.DecodeRuneInString(s.src[s.off:])
	s.off += w
	if r == '\n' {
		s.line++
		s.col = 1
	} else {
		s.col++
	}
	return r
}

func (s *scanner) skip(n int) {
	for ; n > 0; n-- {
		s.next()
	}
}

func (s *scanner) skipSpace() {
	for unicode.IsSpace(s.peek()) {
		s.next()
	}
}

func (s *scanner) errorf(start Pos, format string, args ...interface{}) *Error {
	return Errorf(LexError, s.file, start, format, args...)
}

func (s *scanner) unexpected(r rune, at Pos) *Error {
	if r == eof {
		return s.errorf(at, "unexpected end of input")
	}
	return s.errorf(at, "unrecognized character %q", r)
}

// --- Literals --------------------------------------------------------------

func isIdentStart(r rune) bool {
	return r == '_' || unicode.IsLetter(r)
}

func isIdentChar(r rune) bool {
	return r == '_' || r == '-' || unicode.IsLetter(r) || unicode.IsDigit(r)
}

func isDigit(r rune) bool {
	return r >= '0' && r <= '9'
}

func isHexDigit(r rune) bool {
	return isDigit(r) || (r >= 'a' && r <= 'f') || (r >= 'A' && r <= 'F')
}

// startsIdent is true if an identifier starts at the current position.
// A leading hyphen is allowed if followed by an identifier character which
// does not make it a number.
func (s *scanner) startsIdent() bool {
	r := s.peek()
	if isIdentStart(r) {
		return true
	}
	if r == '-' {
		r1 := s.peekAt(1)
		return isIdentStart(r1) || r1 == '-'
	}
	return false
}

// startsNumber is true if a numeric literal starts at the current position.
func (s *scanner) startsNumber() bool {
	r := s.peek()
	if isDigit(r) {
		return true
	}
	if r == '-' || r == '+' {
		r1 := s.peekAt(1)
		return isDigit(r1) || (r1 == '.' && isDigit(s.peekAt(2)))
	}
	return false
}

func (s *scanner) scanIdent() string {
	start := s.off
	s.next()
	for isIdentChar(s.peek()) {
		s.next()
	}
	return s.src[start:s.off]
}

type numClass uint8

const (
	numInt numClass = iota
	numUint
	numFloat
)

// scanNumber scans a signed integer, a float or a hexadecimal unsigned
// integer. Underscores are accepted as visual separators and stripped.
func (s *scanner) scanNumber() (numClass, string, error) {
	start := s.pos()
	var b strings.Builder
	if r := s.peek(); r == '-' || r == '+' {
		b.WriteRune(s.next())
	}
	if s.peek() == '0' && (s.peekAt(1) == 'x' || s.peekAt(1) == 'X') {
		if b.Len() > 0 {
			return numUint, "", s.errorf(start, "hexadecimal literal may not be signed")
		}
		b.WriteString("0x")
		s.skip(2)
		n := 0
		for r := s.peek(); isHexDigit(r) || r == '_'; r = s.peek() {
			if r != '_' {
				b.WriteRune(r)
				n++
			}
			s.next()
		}
		if n == 0 {
			return numUint, "", s.errorf(start, "hexadecimal literal without digits")
		}
		return numUint, b.String(), nil
	}
	class := numInt
	s.digits(&b)
	if s.peek() == '.' && isDigit(s.peekAt(1)) {
		class = numFloat
		b.WriteRune(s.next())
		s.digits(&b)
	}
	if r := s.peek(); r == 'e' || r == 'E' {
		r1 := s.peekAt(1)
		if isDigit(r1) || ((r1 == '-' || r1 == '+') && isDigit(s.peekAt(2))) {
			class = numFloat
			b.WriteRune(s.next())
			if r1 == '-' || r1 == '+' {
				b.WriteRune(s.next())
			}
			s.digits(&b)
		}
	}
	return class, b.String(), nil
}

func (s *scanner) digits(b *strings.Builder) {
	for r := s.peek(); isDigit(r) || r == '_'; r = s.peek() {
		if r != '_' {
			b.WriteRune(r)
		}
		s.next()
	}
}

// scanString scans a string literal delimited by quote, with backslash
// escaping. The opening delimiter must be the next rune.
func (s *scanner) scanString(quote rune) (string, error) {
	start := s.pos()
	s.next() // opening delimiter
	var b strings.Builder
	for {
		r := s.next()
		switch r {
		case eof:
			return b.String(), s.errorf(start, "unterminated string literal")
		case quote:
			return b.String(), nil
		case '\\':
			e := s.next()
			switch e {
			case eof:
				return b.String(), s.errorf(start, "unterminated string literal")
			case 'n':
				b.WriteRune('\n')
			case 't':
				b.WriteRune('\t')
			case 'r':
				b.WriteRune('\r')
			default:
				b.WriteRune(e)
			}
		default:
			b.WriteRune(r)
		}
	}
}

// scanBalanced scans a brace-delimited region, respecting nested braces and
// string literals of both delimiters. It returns the raw text including the
// outer braces.
func (s *scanner) scanBalanced(open, close rune) (string, error) {
	start := s.pos()
	from := s.off
	depth := 0
	for {
		r := s.peek()
		switch r {
		case eof:
			return "", s.errorf(start, "unterminated %c…%c", open, close)
		case '\'', '"':
			if _, err := s.scanString(r); err != nil {
				return "", err
			}
			continue
		case open:
			depth++
		case close:
			depth--
		}
		s.next()
		if depth == 0 {
			return s.src[from:s.off], nil
		}
	}
}

package lexer

import (
	"fmt"
	"strings"
)

// Pos is a position within a source text. Line and Col are 1-based,
// Offset is the 0-based byte offset. The zero value denotes an unknown
// position.
type Pos struct {
	Offset int
	Line   int
	Col    int
}

// IsKnown returns false for the zero position.
func (p Pos) IsKnown() bool {
	return p.Line > 0
}

func (p Pos) String() string {
	if !p.IsKnown() {
		return "?"
	}
	return fmt.Sprintf("%d:%d", p.Line, p.Col)
}

// Span is a range of source positions [Start, End).
type Span struct {
	Start Pos
	End   Pos
}

// Adjacent is true if no characters lie between span s and span next.
// Selectors depend on this, as whitespace is significant between
// simple selectors.
func (s Span) Adjacent(next Span) bool {
	return s.End.Offset == next.Start.Offset
}

// Category classifies errors of the compiler pipeline.
type Category uint8

// Error categories. There is no warning channel: every error is fatal.
const (
	NoCategory    Category = iota
	LexError               // unrecognized character, unterminated string
	SyntaxError            // unexpected token, mismatched closing tag
	SemanticError          // unknown names, wrong argument counts, duplicates
	TypeError              // value does not convert to the target type
)

func (c Category) String() string {
	switch c {
	case LexError:
		return "lex error"
	case SyntaxError:
		return "syntax error"
	case SemanticError:
		return "semantic error"
	case TypeError:
		return "type error"
	}
	return "error"
}

// Error is the error type of the compilation pipeline. Err is an optional
// underlying cause.
type Error struct {
	Category Category
	File     string
	Pos      Pos
	Msg      string
	Err      error
}

// Errorf creates a new error for a category and position.
func Errorf(cat Category, file string, pos Pos, format string, args ...interface{}) *Error {
	return &Error{
		Category: cat,
		File:     file,
		Pos:      pos,
		Msg:      fmt.Sprintf(format, args...),
	}
}

// Wrap creates a new error for a category and position, wrapping cause err.
func Wrap(err error, cat Category, file string, pos Pos, format string, args ...interface{}) *Error {
	e := Errorf(cat, file, pos, format, args...)
	e.Err = err
	return e
}

func (e *Error) Error() string {
	var b strings.Builder
	if e.File != "" {
		b.WriteString(e.File)
		b.WriteByte(':')
	}
	if e.Pos.IsKnown() {
		b.WriteString(e.Pos.String())
		b.WriteByte(':')
	}
	if b.Len() > 0 {
		b.WriteByte(' ')
	}
	b.WriteString(e.Category.String())
	b.WriteString(": ")
	b.WriteString(e.Msg)
	if e.Err != nil {
		b.WriteString(": ")
		b.WriteString(e.Err.Error())
	}
	return b.String()
}

// Unwrap returns the underlying cause, if any.
func (e *Error) Unwrap() error {
	return e.Err
}

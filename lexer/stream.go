package lexer

// Stream is a cursor over a token sequence. It never moves past the end of
// the sequence: reading beyond the last token yields a token of kind zero,
// which every kind enumeration reserves for end-of-stream, and consuming
// at end-of-stream is an error.
type Stream[K Kind] struct {
	file string
	toks []Token[K]
	at   int
	last Pos
}

// NewStream creates a stream over toks. file is used for error messages.
func NewStream[K Kind](file string, toks []Token[K]) *Stream[K] {
	s := &Stream[K]{file: file, toks: toks}
	if len(toks) > 0 {
		s.last = toks[len(toks)-1].Span.End
	}
	return s
}

// File returns the file name diagnostics are reported for.
func (s *Stream[K]) File() string {
	return s.file
}

// Peek returns the token offset positions ahead of the cursor.
func (s *Stream[K]) Peek(offset int) Token[K] {
	i := s.at + offset
	if i < 0 || i >= len(s.toks) {
		var zero K
		return Token[K]{Kind: zero, Span: Span{Start: s.last, End: s.last}}
	}
	return s.toks[i]
}

// Current is Peek(0).
func (s *Stream[K]) Current() Token[K] {
	return s.Peek(0)
}

// Is reports whether the next token is of kind k.
func (s *Stream[K]) Is(k K) bool {
	return s.Peek(0).Kind == k
}

// EOF is true if all tokens have been consumed.
func (s *Stream[K]) EOF() bool {
	return s.at >= len(s.toks)
}

// Consume returns the next token and moves past it, if it is of kind k.
// Otherwise a syntax error naming the expected and the actual token is
// returned and the cursor does not move.
func (s *Stream[K]) Consume(k K) (Token[K], error) {
	t := s.Peek(0)
	if s.EOF() {
		return t, Errorf(SyntaxError, s.file, t.Pos(), "expected %s, found end of input", k)
	}
	if t.Kind != k {
		return t, Errorf(SyntaxError, s.file, t.Pos(), "expected %s, found %s %q", k, t.Kind, t.Value)
	}
	s.at++
	return t, nil
}

// Next returns the next token and moves past it, whatever its kind.
func (s *Stream[K]) Next() (Token[K], error) {
	t := s.Peek(0)
	if s.EOF() {
		return t, Errorf(SyntaxError, s.file, t.Pos(), "unexpected end of input")
	}
	s.at++
	return t, nil
}

// Advance skips n tokens.
func (s *Stream[K]) Advance(n int) error {
	if s.at+n > len(s.toks) {
		return Errorf(SyntaxError, s.file, s.last, "cannot advance %d tokens past end of input", n)
	}
	s.at += n
	return nil
}

// SequenceEquals reports whether the upcoming tokens are of the given kinds,
// without consuming anything.
func (s *Stream[K]) SequenceEquals(kinds ...K) bool {
	for i, k := range kinds {
		if s.at+i >= len(s.toks) || s.toks[s.at+i].Kind != k {
			return false
		}
	}
	return true
}

// Unexpected creates a syntax error for the current token.
func (s *Stream[K]) Unexpected(context string) *Error {
	t := s.Peek(0)
	if s.EOF() {
		return Errorf(SyntaxError, s.file, t.Pos(), "unexpected end of input %s", context)
	}
	return Errorf(SyntaxError, s.file, t.Pos(), "unexpected %s %q %s", t.Kind, t.Value, context)
}

// Until collects tokens up to, but excluding, the first token of one of the
// given kinds or the end of the stream. The terminating token is not
// consumed.
func (s *Stream[K]) Until(kinds ...K) []Token[K] {
	from := s.at
	for !s.EOF() {
		k := s.toks[s.at].Kind
		for _, stop := range kinds {
			if k == stop {
				return s.toks[from:s.at]
			}
		}
		s.at++
	}
	return s.toks[from:s.at]
}

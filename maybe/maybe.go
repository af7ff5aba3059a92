/*
Package maybe implements an option type.

The zero value of Maybe[T] is Nothing, which makes Maybe a good fit for
records with optional fields: a freshly declared record has every field
unset.

    var x maybe.Maybe[int]      // Nothing
    y := maybe.Just(7)
    z := x.Or(y)                // Just 7

___________________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package maybe

import "fmt"

// Maybe holds either a value of type T or nothing.
type Maybe[T any] struct {
	value T
	tag   bool
}

// Just wraps x.
func Just[T any](x T) Maybe[T] {
	return Maybe[T]{value: x, tag: true}
}

// Nothing returns the empty option. It is equal to the zero value.
func Nothing[T any]() Maybe[T] {
	return Maybe[T]{}
}

// IsJust is true if m holds a value.
func (m Maybe[T]) IsJust() bool {
	return m.tag
}

// Get returns the value of m and whether there is one.
func (m Maybe[T]) Get() (T, bool) {
	return m.value, m.tag
}

// Match starts a type switch on m:
//
//     switch mm := m.Match(); mm {
//     case mm.Just(&v): …
//     case mm.Nothing(): …
//     }
func (m Maybe[T]) Match() *Matcher[T] {
	return &Matcher[T]{m: m}
}

// WithDefault returns the value of m, or def if m is Nothing.
func (m Maybe[T]) WithDefault(def T) T {
	if m.tag {
		return m.value
	}
	return def
}

// Map applies f to the value of m, if any.
func (m Maybe[T]) Map(f func(T) T) Maybe[T] {
	if m.tag {
		return Just(f(m.value))
	}
	return m
}

// Or returns other if other holds a value, m otherwise. It is the
// override operation of records with optional fields.
func (m Maybe[T]) Or(other Maybe[T]) Maybe[T] {
	if other.tag {
		return other
	}
	return m
}

func (m Maybe[T]) String() string {
	if m.tag {
		return fmt.Sprintf("Just(%v)", m.value)
	}
	return "Nothing"
}

// AndThen chains a computation which may fail to produce a value.
func AndThen[T, S any](f func(T) Maybe[S], x Maybe[T]) Maybe[S] {
	if v, ok := x.Get(); ok {
		return f(v)
	}
	return Nothing[S]()
}

// Map converts the value of x to a different type.
func Map[T, S any](f func(T) S, x Maybe[T]) Maybe[S] {
	if v, ok := x.Get(); ok {
		return Just(f(v))
	}
	return Nothing[S]()
}

// --- Matching --------------------------------------------------------------

// Matcher is a helper for type switches on Maybe.
type Matcher[T any] struct {
	m Maybe[T]
}

// Just matches if there is a value and extracts it into v.
func (mm *Matcher[T]) Just(v *T) *Matcher[T] {
	if mm.m.tag {
		*v = mm.m.value
		return mm
	}
	return nil
}

// Nothing matches the empty option.
func (mm *Matcher[T]) Nothing() *Matcher[T] {
	if !mm.m.tag {
		return mm
	}
	return nil
}

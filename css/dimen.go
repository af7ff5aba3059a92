package css

import (
	"fmt"
	"math"

	"github.com/npillmayer/tyse/core/dimen"
	"github.com/npillmayer/tyse/core/percent"
)

const (
	dimenNone uint32 = 0

	dimenAbsolute uint32 = 0x0001
	dimenAuto     uint32 = 0x0002
	kindMask      uint32 = 0x000f

	dimenPercent uint32 = 0x0100
	relativeMask uint32 = 0xff00
)

// DimenT is an option type for lengths of the style system. Fixed lengths
// are held in design units; a pixel is dimen.PX.
type DimenT struct {
	d       dimen.DU
	percent percent.Percent
	flags   uint32
}

/*
type DimenT
	= Unset
	| Auto
	| JustDimen dimen
	| Percentage Percent
*/

// Auto creates a dimension to be determined by the layout engine.
func Auto() DimenT {
	return DimenT{flags: dimenAuto}
}

// JustDimen creates a dimension with a fixed value of x.
func JustDimen(x dimen.DU) DimenT {
	return DimenT{d: x, flags: dimenAbsolute}
}

// Px creates a dimension with a fixed value of x pixels. Fractions of a
// pixel are rounded to the nearest design unit.
func Px(x float32) DimenT {
	return JustDimen(dimen.DU(math.Round(float64(x) * float64(dimen.PX))))
}

// Percentage creates a dimension relative to the parent's extent.
func Percentage(n percent.Percent) DimenT {
	return DimenT{percent: n, flags: dimenPercent}
}

// IsUnset is true for the zero value.
func (d DimenT) IsUnset() bool {
	return d.flags == dimenNone
}

// Resolve returns the length of d relative to a reference length. For auto
// and unset dimensions the second return value is false.
func (d DimenT) Resolve(reference dimen.DU) (dimen.DU, bool) {
	switch {
	case d.flags&dimenAbsolute > 0:
		return d.d, true
	case d.flags&dimenPercent > 0:
		return reference * dimen.DU(d.percent) / 100, true
	}
	return 0, false
}

func (d DimenT) String() string {
	switch {
	case d.flags&dimenAbsolute > 0:
		return fmt.Sprintf("%gpx", float64(d.d)/float64(dimen.PX))
	case d.flags&dimenPercent > 0:
		return d.percent.String()
	case d.flags&dimenAuto > 0:
		return "auto"
	}
	return "unset"
}

// ---------------------------------------------------------------------------

// Match starts a type switch on a dimension:
//
//     switch m := d.Match(); m {
//     case m.Just(&du): …
//     case m.IsKind(css.Auto()): …
//     }
func (d DimenT) Match() *Matcher {
	return &Matcher{dimen: d}
}

// Matcher is a helper for matching the variants of DimenT.
type Matcher struct {
	dimen DimenT
}

// IsKind matches if the dimension has the same variant as d.
func (m *Matcher) IsKind(d DimenT) *Matcher {
	switch {
	case m.dimen.flags&relativeMask > 0 || d.flags&relativeMask > 0:
		if m.dimen.flags&relativeMask == d.flags&relativeMask {
			return m
		}
	case (m.dimen.flags & kindMask) == (d.flags & kindMask):
		return m
	}
	return nil
}

// Just matches fixed dimensions and extracts the length.
func (m *Matcher) Just(du *dimen.DU) *Matcher {
	if m.dimen.flags&dimenAbsolute > 0 {
		if du != nil {
			*du = m.dimen.d
		}
		return m
	}
	return nil
}

// Percentage matches relative dimensions and extracts the percentage.
func (m *Matcher) Percentage(p *percent.Percent) *Matcher {
	if m.dimen.flags&dimenPercent > 0 {
		if p != nil {
			*p = m.dimen.percent
		}
		return m
	}
	return nil
}

// --- Expression matching ---------------------------------------------------

// DimenPatterns holds the results of a pattern match, one per variant.
type DimenPatterns[T any] struct {
	Unset   T
	Auto    T
	Just    T
	Percent T
	Default T
}

// DimenPattern starts an expression match on a dimension.
func DimenPattern[T any](d DimenT) *MatchExpr[T] {
	return &MatchExpr[T]{dimen: d}
}

// MatchExpr selects one of several values depending on a dimension variant.
type MatchExpr[T any] struct {
	dimen DimenT
}

// OneOf returns the pattern result for the dimension's variant.
func (m *MatchExpr[T]) OneOf(patterns DimenPatterns[T]) T {
	switch {
	case m.dimen.flags == dimenNone:
		return patterns.Unset
	case m.dimen.flags&dimenAuto > 0:
		return patterns.Auto
	case m.dimen.flags&dimenAbsolute > 0:
		return patterns.Just
	case m.dimen.flags&dimenPercent > 0:
		return patterns.Percent
	}
	return patterns.Default
}

// With extracts the fixed length of the dimension.
func (m *MatchExpr[T]) With(du *dimen.DU) *MatchExpr[T] {
	*du = m.dimen.d
	return m
}

// Const returns x. It is used to evaluate an expression after With.
func (m *MatchExpr[T]) Const(x T) T {
	return x
}

package expr

import (
	"fmt"
	"strconv"
	"strings"
)

// ValueKind discriminates the variants of Value.
type ValueKind uint8

// Value kinds. The zero value denotes an absent value.
const (
	Absent ValueKind = iota
	StringKind
	IntKind
	UintKind
	FloatKind
	BoolKind
	ArrayKind
	MapKind
)

var kindNames = [...]string{"absent", "string", "int", "uint", "float", "bool", "array", "map"}

func (k ValueKind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return fmt.Sprintf("ValueKind(%d)", uint8(k))
}

// Value is the result of evaluating an expression. It is a closed tagged
// variant: only the field selected by Kind is meaningful.
type Value struct {
	Kind    ValueKind
	Str     string
	Int     int64
	Uint    uint64
	Float   float64
	Bool    bool
	Items   []Value
	Entries []Entry
}

// Entry is a key/value pair of a map value. Maps preserve the order of
// their entries in the source text.
type Entry struct {
	Key   string
	Value Value
}

// Str creates a string value.
func Str(s string) Value { return Value{Kind: StringKind, Str: s} }

// Int creates an integer value.
func Int(n int64) Value { return Value{Kind: IntKind, Int: n} }

// Uint creates an unsigned integer value.
func Uint(n uint64) Value { return Value{Kind: UintKind, Uint: n} }

// Float creates a float value.
func Float(f float64) Value { return Value{Kind: FloatKind, Float: f} }

// Bool creates a boolean value.
func Bool(b bool) Value { return Value{Kind: BoolKind, Bool: b} }

// Array creates an array value.
func Array(items ...Value) Value { return Value{Kind: ArrayKind, Items: items} }

// Map creates a map value.
func Map(entries ...Entry) Value { return Value{Kind: MapKind, Entries: entries} }

// None returns the absent value.
func None() Value { return Value{} }

// IsAbsent is true for the result of evaluating an empty expression.
func (v Value) IsAbsent() bool {
	return v.Kind == Absent
}

// IsScalar is true for strings, numbers and booleans.
func (v Value) IsScalar() bool {
	return v.Kind >= StringKind && v.Kind <= BoolKind
}

// Get returns the value for key in a map value. Keys match exactly.
func (v Value) Get(key string) (Value, bool) {
	for _, e := range v.Entries {
		if e.Key == key {
			return e.Value, true
		}
	}
	return Value{}, false
}

// Text returns the textual form of a scalar value, as it would be parsed
// from markup.
func (v Value) Text() string {
	switch v.Kind {
	case StringKind:
		return v.Str
	case IntKind:
		return strconv.FormatInt(v.Int, 10)
	case UintKind:
		return "0x" + strconv.FormatUint(v.Uint, 16)
	case FloatKind:
		return strconv.FormatFloat(v.Float, 'g', -1, 64)
	case BoolKind:
		return strconv.FormatBool(v.Bool)
	}
	return v.String()
}

// Interface converts v into plain Go values: string, int64, uint64,
// float64, bool, []any and map[string]any. Absent values become nil.
func (v Value) Interface() any {
	switch v.Kind {
	case StringKind:
		return v.Str
	case IntKind:
		return v.Int
	case UintKind:
		return v.Uint
	case FloatKind:
		return v.Float
	case BoolKind:
		return v.Bool
	case ArrayKind:
		a := make([]any, len(v.Items))
		for i, item := range v.Items {
			a[i] = item.Interface()
		}
		return a
	case MapKind:
		m := make(map[string]any, len(v.Entries))
		for _, e := range v.Entries {
			m[e.Key] = e.Value.Interface()
		}
		return m
	}
	return nil
}

func (v Value) String() string {
	switch v.Kind {
	case Absent:
		return "<absent>"
	case StringKind:
		return strconv.Quote(v.Str)
	case ArrayKind:
		var b strings.Builder
		b.WriteByte('[')
		for i, item := range v.Items {
			if i > 0 {
				b.WriteString(", ")
			}
			b.WriteString(item.String())
		}
		b.WriteByte(']')
		return b.String()
	case MapKind:
		var b strings.Builder
		b.WriteByte('{')
		for i, e := range v.Entries {
			if i > 0 {
				b.WriteString(", ")
			}
			b.WriteString(e.Key)
			b.WriteString(": ")
			b.WriteString(e.Value.String())
		}
		b.WriteByte('}')
		return b.String()
	}
	return v.Text()
}

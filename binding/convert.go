package binding

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/npillmayer/udt/expr"
)

// ToString accepts every scalar value and returns its text.
func ToString(v expr.Value) (string, error) {
	if !v.IsScalar() {
		return "", fmt.Errorf("expected a scalar, have %s", v.Kind)
	}
	return v.Text(), nil
}

// ToInt accepts integers, unsigned integers in range and numeric text.
func ToInt(v expr.Value) (int64, error) {
	switch v.Kind {
	case expr.IntKind:
		return v.Int, nil
	case expr.UintKind:
		if v.Uint > math.MaxInt64 {
			return 0, fmt.Errorf("%d overflows int", v.Uint)
		}
		return int64(v.Uint), nil
	case expr.StringKind:
		return strconv.ParseInt(strings.TrimSpace(v.Str), 0, 64)
	}
	return 0, fmt.Errorf("expected an integer, have %s", v.Kind)
}

// ToUint accepts non-negative integers, unsigned integers and numeric text.
func ToUint(v expr.Value) (uint64, error) {
	switch v.Kind {
	case expr.UintKind:
		return v.Uint, nil
	case expr.IntKind:
		if v.Int < 0 {
			return 0, fmt.Errorf("%d is negative", v.Int)
		}
		return uint64(v.Int), nil
	case expr.StringKind:
		return strconv.ParseUint(strings.TrimSpace(v.Str), 0, 64)
	}
	return 0, fmt.Errorf("expected an unsigned integer, have %s", v.Kind)
}

// ToFloat accepts every numeric value and numeric text.
func ToFloat(v expr.Value) (float64, error) {
	switch v.Kind {
	case expr.FloatKind:
		return v.Float, nil
	case expr.IntKind:
		return float64(v.Int), nil
	case expr.UintKind:
		return float64(v.Uint), nil
	case expr.StringKind:
		return strconv.ParseFloat(strings.TrimSpace(v.Str), 64)
	}
	return 0, fmt.Errorf("expected a number, have %s", v.Kind)
}

// ToBool accepts booleans and boolean text.
func ToBool(v expr.Value) (bool, error) {
	switch v.Kind {
	case expr.BoolKind:
		return v.Bool, nil
	case expr.StringKind:
		return strconv.ParseBool(strings.TrimSpace(v.Str))
	}
	return false, fmt.Errorf("expected a boolean, have %s", v.Kind)
}

// ToAny accepts every value, including arrays and maps.
func ToAny(v expr.Value) (expr.Value, error) {
	return v, nil
}

// Enum creates a converter for an enumeration type. Names are matched
// case-insensitively with hyphens stripped.
func Enum[T any](names map[string]T) func(expr.Value) (T, error) {
	folded := make(map[string]T, len(names))
	for k, v := range names {
		folded[Normalize(k)] = v
	}
	return func(v expr.Value) (T, error) {
		var zero T
		if v.Kind != expr.StringKind {
			return zero, fmt.Errorf("expected an enumeration name, have %s", v.Kind)
		}
		x, ok := folded[Normalize(strings.TrimSpace(v.Str))]
		if !ok {
			return zero, fmt.Errorf("%q is not a valid name", v.Str)
		}
		return x, nil
	}
}

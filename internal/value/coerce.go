package value

import (
	"strconv"
	"strings"
)

func formatInt(v int64) string { return strconv.FormatInt(v, 10) }

// formatFloat renders v so its canonical form always differs from the
// Integer canonical form of the same numeric value (spec §4.4, §9:
// "1 vs 1.0 ... they do not agree. Implementers must reproduce this
// exactly"). strconv's 'f'/-1 formatting drops the fractional part for
// integral values, so a trailing ".0" is forced on whenever neither a
// decimal point nor an exponent is already present.
func formatFloat(v float64) string {
	s := strconv.FormatFloat(v, 'f', -1, 64)
	if !strings.ContainsAny(s, ".eE") {
		s += ".0"
	}
	return s
}

// Truthy implements spec §4.4's truthiness rules: Bool is its own
// value; Integer is true iff non-zero; Null is false; everything else
// (Float, String, List, including empty ones) is true.
func Truthy(v Value) bool {
	switch x := v.(type) {
	case *Bool:
		return x.Value
	case *Integer:
		return x.Value != 0
	case *Null:
		return false
	default:
		return true
	}
}

// ToInt implements the to-Integer coercion of spec §4.4.
func ToInt(v Value) int64 {
	switch x := v.(type) {
	case *Integer:
		return x.Value
	case *Float:
		return int64(x.Value)
	case *Bool:
		if x.Value {
			return 1
		}
		return 0
	case *String:
		f, err := strconv.ParseFloat(x.Value, 64)
		if err != nil {
			return 0
		}
		return int64(f)
	default:
		return 0
	}
}

// ToFloat implements the to-Float coercion of spec §4.4.
func ToFloat(v Value) float64 {
	switch x := v.(type) {
	case *Integer:
		return float64(x.Value)
	case *Float:
		return x.Value
	case *Bool:
		if x.Value {
			return 1.0
		}
		return 0.0
	case *String:
		f, err := strconv.ParseFloat(x.Value, 64)
		if err != nil {
			return 0.0
		}
		return f
	default:
		return 0.0
	}
}

// DeepCopy produces an independent copy of v, recursing into Lists so
// that append's deep-copy guarantee (spec §6.2, §8) holds for nested
// lists too. Scalars are already immutable and are returned as-is.
func DeepCopy(v Value) Value {
	list, ok := v.(*List)
	if !ok {
		return v
	}
	elements := make([]Value, len(list.Elements))
	for i, el := range list.Elements {
		elements[i] = DeepCopy(el)
	}
	return NewList(elements)
}

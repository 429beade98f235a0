// SPDX-License-Identifier: MIT
//
// File: variant.go
// Role: Variant construction, strict accessors and lenient conversions.
// Policy:
//   - Strict accessors (As*) fail with ErrTypeMismatch on the wrong kind.
//   - Lenient conversions (To*) never fail and fall back to zero values.

package variant

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Null returns the empty Variant. It is identical to Variant{}.
func Null() Variant { return Variant{} }

// FromBool returns a Variant holding v.
func FromBool(v bool) Variant { return Variant{kind: KindBool, b: v} }

// FromInt returns a Variant holding v.
func FromInt(v int64) Variant { return Variant{kind: KindInt, i: v} }

// FromFloat returns a Variant holding v.
func FromFloat(v float64) Variant { return Variant{kind: KindFloat, f: v} }

// FromString returns a Variant holding v.
func FromString(v string) Variant { return Variant{kind: KindString, s: v} }

// New builds a Variant from an arbitrary Go value.
//
// Accepted inputs:
//   - nil                               → Null
//   - Variant                           → itself
//   - bool                              → KindBool
//   - int, int8..int64, uint8..uint32   → KindInt
//   - uint, uint64, uintptr             → KindInt when ≤ math.MaxInt64
//   - float32, float64                  → KindFloat
//   - string, []byte                    → KindString
//
// Errors:
//   - ErrUnsupportedType for any other type, or an unsigned value that
//     does not fit in int64.
//
// Complexity: O(1), except []byte which copies into a string.
func New(v any) (Variant, error) {
	switch x := v.(type) {
	case nil:
		return Null(), nil
	case Variant:
		return x, nil
	case bool:
		return FromBool(x), nil
	case int:
		return FromInt(int64(x)), nil
	case int8:
		return FromInt(int64(x)), nil
	case int16:
		return FromInt(int64(x)), nil
	case int32:
		return FromInt(int64(x)), nil
	case int64:
		return FromInt(x), nil
	case uint8:
		return FromInt(int64(x)), nil
	case uint16:
		return FromInt(int64(x)), nil
	case uint32:
		return FromInt(int64(x)), nil
	case uint:
		return fromUnsigned(uint64(x))
	case uint64:
		return fromUnsigned(x)
	case uintptr:
		return fromUnsigned(uint64(x))
	case float32:
		return FromFloat(float64(x)), nil
	case float64:
		return FromFloat(x), nil
	case string:
		return FromString(x), nil
	case []byte:
		return FromString(string(x)), nil
	}

	return Null(), fmt.Errorf("%w: %T", ErrUnsupportedType, v)
}

// fromUnsigned narrows u into KindInt or reports overflow.
func fromUnsigned(u uint64) (Variant, error) {
	if u > math.MaxInt64 {
		return Null(), fmt.Errorf("%w: %d overflows int64", ErrUnsupportedType, u)
	}

	return FromInt(int64(u)), nil
}

// Kind reports the active member of the union.
func (v Variant) Kind() Kind { return v.kind }

// IsNull reports whether v holds nothing.
func (v Variant) IsNull() bool { return v.kind == KindNull }

// Equal reports whether v and other hold the same kind and value.
// Float NaN is never equal to itself.
func (v Variant) Equal(other Variant) bool { return v == other }

// mismatch builds the wrapped ErrTypeMismatch for a strict accessor.
func (v Variant) mismatch(want Kind) error {
	return fmt.Errorf("%w: want %s, have %s", ErrTypeMismatch, want, v.kind)
}

// AsBool returns the held bool, or ErrTypeMismatch.
func (v Variant) AsBool() (bool, error) {
	if v.kind != KindBool {
		return false, v.mismatch(KindBool)
	}

	return v.b, nil
}

// AsInt returns the held int64, or ErrTypeMismatch.
func (v Variant) AsInt() (int64, error) {
	if v.kind != KindInt {
		return 0, v.mismatch(KindInt)
	}

	return v.i, nil
}

// AsFloat returns the held float64, or ErrTypeMismatch.
// An integer Variant is not silently widened; use ToFloat for that.
func (v Variant) AsFloat() (float64, error) {
	if v.kind != KindFloat {
		return 0, v.mismatch(KindFloat)
	}

	return v.f, nil
}

// AsString returns the held string, or ErrTypeMismatch.
func (v Variant) AsString() (string, error) {
	if v.kind != KindString {
		return "", v.mismatch(KindString)
	}

	return v.s, nil
}

// ToBool converts v to a bool.
//
// Int and Float are true when non-zero. Strings are parsed with
// strconv.ParseBool; unparsable strings and Null yield false.
func (v Variant) ToBool() bool {
	switch v.kind {
	case KindBool:
		return v.b
	case KindInt:
		return v.i != 0
	case KindFloat:
		return v.f != 0
	case KindString:
		b, err := strconv.ParseBool(strings.TrimSpace(v.s))
		if err != nil {
			return false
		}

		return b
	}

	return false
}

// ToInt converts v to an int64.
//
// Floats are truncated toward zero, bools map to 0/1, strings are parsed
// as base-10 integers first and as floats second. Anything else yields 0.
func (v Variant) ToInt() int64 {
	switch v.kind {
	case KindInt:
		return v.i
	case KindBool:
		if v.b {
			return 1
		}

		return 0
	case KindFloat:
		return int64(v.f)
	case KindString:
		s := strings.TrimSpace(v.s)
		if n, err := strconv.ParseInt(s, 10, 64); err == nil {
			return n
		}
		if f, err := strconv.ParseFloat(s, 64); err == nil {
			return int64(f)
		}
	}

	return 0
}

// ToFloat converts v to a float64.
// Ints widen, bools map to 0/1, strings are parsed; anything else yields 0.
func (v Variant) ToFloat() float64 {
	switch v.kind {
	case KindFloat:
		return v.f
	case KindInt:
		return float64(v.i)
	case KindBool:
		if v.b {
			return 1
		}

		return 0
	case KindString:
		f, err := strconv.ParseFloat(strings.TrimSpace(v.s), 64)
		if err != nil {
			return 0
		}

		return f
	}

	return 0
}

// ToString converts v to its textual form. Null yields "".
func (v Variant) ToString() string {
	switch v.kind {
	case KindString:
		return v.s
	case KindInt:
		return strconv.FormatInt(v.i, 10)
	case KindFloat:
		return strconv.FormatFloat(v.f, 'g', -1, 64)
	case KindBool:
		return strconv.FormatBool(v.b)
	}

	return ""
}

// String renders v with its kind for debugging, e.g. int(5) or string("C").
func (v Variant) String() string {
	switch v.kind {
	case KindNull:
		return "null"
	case KindString:
		return "string(" + strconv.Quote(v.s) + ")"
	}

	return v.kind.String() + "(" + v.ToString() + ")"
}

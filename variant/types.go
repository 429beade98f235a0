// SPDX-License-Identifier: MIT
//
// File: types.go
// Role: Kind enumeration and the Variant value type.

package variant

// Kind identifies which member of the union a Variant currently holds.
type Kind uint8

const (
	// KindNull is the zero kind: the Variant holds nothing.
	KindNull Kind = iota

	// KindBool holds a bool.
	KindBool

	// KindInt holds a signed 64-bit integer.
	KindInt

	// KindFloat holds a 64-bit float.
	KindFloat

	// KindString holds a string.
	KindString
)

// kindNames maps each Kind to its printable name.
var kindNames = [...]string{
	KindNull:   "null",
	KindBool:   "bool",
	KindInt:    "int",
	KindFloat:  "float",
	KindString: "string",
}

// String returns the lowercase name of k ("null", "bool", ...).
func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}

	return "unknown"
}

// Variant is a tagged union over bool, int64, float64 and string.
//
// The zero Variant is Null. Only the field matching kind is meaningful;
// the others stay at their zero values so that == comparison between two
// Variants of the same kind and value holds.
type Variant struct {
	kind Kind
	b    bool
	i    int64
	f    float64
	s    string
}

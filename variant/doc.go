// SPDX-License-Identifier: MIT
// Package variant provides a small tagged-union value type and a
// string-keyed map of such values, used for arbitrary molecule metadata.
//
// A Variant holds exactly one active Kind at a time:
//
//	KindNull   – zero value, nothing stored
//	KindBool   – bool
//	KindInt    – int64
//	KindFloat  – float64
//	KindString – string
//
// Two families of accessors exist:
//
//   - Strict: AsBool/AsInt/AsFloat/AsString return ErrTypeMismatch when the
//     requested kind differs from the active one.
//   - Lenient: ToBool/ToInt/ToFloat/ToString never fail; they widen numbers,
//     map bools to 0/1, parse strings, and fall back to the zero value.
//
// Variant is a plain value: assigning or passing it copies the held value.
//
// Map is the string-keyed store:
//
//	SetValue(name, v)           // insert or replace, O(1)
//	Value(name) (Variant,error) // ErrKeyNotFound if absent
//	Size(), IsEmpty()           // O(1)
//
// Errors:
//
//	ErrTypeMismatch    – strict accessor on the wrong kind
//	ErrKeyNotFound     – Map.Value on an absent key
//	ErrUnsupportedType – New called with a Go type outside the union
//
// Neither type is safe for concurrent mutation.
package variant

// SPDX-License-Identifier: MIT
//
// File: map.go
// Role: Map, a string-keyed store of Variant values with strict lookup.
// Determinism:
//   - Names() returns keys sorted ascending.

package variant

import (
	"fmt"
	"sort"
)

// Map associates unique string names with Variant values.
// The zero Map is empty and ready to use.
type Map struct {
	values map[string]Variant
}

// NewMap returns an empty Map.
func NewMap() *Map {
	return &Map{values: make(map[string]Variant)}
}

// SetValue stores v under name, replacing any previous value.
//
// Complexity: O(1) amortized.
func (m *Map) SetValue(name string, v Variant) {
	if m.values == nil {
		m.values = make(map[string]Variant)
	}
	m.values[name] = v
}

// Value returns the Variant stored under name.
//
// Errors:
//   - ErrKeyNotFound (wrapped with the name) if nothing is stored under name.
//
// Lookup is strict: a missing key is never reported as a Null Variant.
func (m *Map) Value(name string) (Variant, error) {
	v, ok := m.values[name]
	if !ok {
		return Null(), fmt.Errorf("%w: %q", ErrKeyNotFound, name)
	}

	return v, nil
}

// Has reports whether a value is stored under name.
func (m *Map) Has(name string) bool {
	_, ok := m.values[name]

	return ok
}

// Delete removes name and reports whether it was present.
func (m *Map) Delete(name string) bool {
	if _, ok := m.values[name]; !ok {
		return false
	}
	delete(m.values, name)

	return true
}

// Size returns the number of stored names. O(1).
func (m *Map) Size() int { return len(m.values) }

// IsEmpty reports whether Size() == 0. O(1).
func (m *Map) IsEmpty() bool { return len(m.values) == 0 }

// Names returns every stored name in ascending order.
//
// Complexity: O(n log n).
func (m *Map) Names() []string {
	names := make([]string, 0, len(m.values))
	var name string
	for name = range m.values {
		names = append(names, name)
	}
	sort.Strings(names)

	return names
}

// Clear removes every entry.
func (m *Map) Clear() {
	m.values = make(map[string]Variant)
}

// Clone returns an independent copy of m.
// Variants are values, so the copy shares nothing with m.
func (m *Map) Clone() *Map {
	out := &Map{values: make(map[string]Variant, len(m.values))}
	var (
		name string
		v    Variant
	)
	for name, v = range m.values {
		out.values[name] = v
	}

	return out
}

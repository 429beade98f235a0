// SPDX-License-Identifier: MIT
//
// File: methods_data.go
// Role: Molecule-level metadata, delegated to a variant.Map.

package molecule

import "github.com/ghutchis/MolCore/variant"

// SetData stores value under name, replacing any previous value.
func (m *Molecule) SetData(name string, value variant.Variant) {
	m.data.SetValue(name, value)
}

// Data returns the value stored under name.
//
// Errors:
//   - variant.ErrKeyNotFound: if nothing is stored under name.
func (m *Molecule) Data(name string) (variant.Variant, error) {
	return m.data.Value(name)
}

// HasData reports whether a value is stored under name.
func (m *Molecule) HasData(name string) bool { return m.data.Has(name) }

// DataNames returns every metadata name in ascending order.
func (m *Molecule) DataNames() []string { return m.data.Names() }

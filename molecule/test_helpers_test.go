// SPDX-License-Identifier: MIT
// Package molecule_test contains fixtures and assertions shared by the
// molecule tests.

package molecule_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/ghutchis/MolCore/molecule"
)

// Atomic numbers used across tests (avoid magic numbers in test bodies).
const (
	Hydrogen uint8 = 1
	Carbon   uint8 = 6
	Nitrogen uint8 = 7
	Oxygen   uint8 = 8
)

// Bond orders used across tests.
const (
	Single uint8 = 1
	Double uint8 = 2
	Triple uint8 = 3
)

// Sizes for randomized and benchmark runs.
const (
	NRandomOps = 500
	NBench     = 256
	RandomSeed = 42
)

// AddAtoms APPENDS one atom per atomic number and returns the handles.
func AddAtoms(m *molecule.Molecule, zs ...uint8) []molecule.Atom {
	out := make([]molecule.Atom, len(zs))
	for i, z := range zs {
		out[i] = m.AddAtom(z)
	}

	return out
}

// MustBond ADDS a bond and fails the test on error.
func MustBond(tb testing.TB, m *molecule.Molecule, a, b molecule.Atom, order uint8) molecule.Bond {
	tb.Helper()
	bd, err := m.AddBond(a, b, order)
	require.NoError(tb, err, "AddBond(%v,%v,%d)", a, b, order)

	return bd
}

// RequireConsistent ASSERTS the column-length invariants and Validate().
func RequireConsistent(tb testing.TB, m *molecule.Molecule) {
	tb.Helper()
	require.Len(tb, m.AtomicNumbers(), m.AtomCount(), "atomic numbers vs atom count")
	require.Equal(tb, m.Size(), m.AtomCount(), "graph size vs atom count")
	require.Len(tb, m.BondPairs(), m.BondCount(), "bond pairs vs bond count")
	require.Len(tb, m.BondOrders(), m.BondCount(), "bond orders vs bond count")
	require.NoError(tb, m.Validate())
}

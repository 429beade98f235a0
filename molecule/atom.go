// SPDX-License-Identifier: MIT
//
// File: atom.go
// Role: Atom handle. Holds no chemistry data; every read goes through the
// owning Molecule after a staleness check.

package molecule

import "fmt"

// Atom is a non-owning reference to one atom of a Molecule.
// The zero Atom is invalid.
type Atom struct {
	molecule *Molecule
	index    int
	serial   uint64
}

// IsValid reports whether the handle has an owning molecule.
// A valid handle may still be stale; see IsStale.
func (a Atom) IsValid() bool { return a.molecule != nil }

// IsStale reports whether the handle no longer addresses the atom it was
// created for. Invalid handles are stale.
func (a Atom) IsStale() bool {
	if a.molecule == nil {
		return true
	}
	_, err := a.molecule.resolveAtom(a)

	return err != nil
}

// Molecule returns the owning molecule, or nil for an invalid handle.
func (a Atom) Molecule() *Molecule { return a.molecule }

// Index returns the index the handle was created with.
func (a Atom) Index() int { return a.index }

// AtomicNumber returns the atom's atomic number.
func (a Atom) AtomicNumber() (uint8, error) {
	if a.molecule == nil {
		return 0, ErrInvalidHandle
	}
	i, err := a.molecule.resolveAtom(a)
	if err != nil {
		return 0, err
	}

	return a.molecule.atoms.at(i).atomicNumber, nil
}

// SetAtomicNumber replaces the atom's atomic number.
func (a Atom) SetAtomicNumber(atomicNumber uint8) error {
	if a.molecule == nil {
		return ErrInvalidHandle
	}
	i, err := a.molecule.resolveAtom(a)
	if err != nil {
		return err
	}
	a.molecule.atoms.at(i).atomicNumber = atomicNumber

	return nil
}

// Neighbors returns handles to the atoms bonded to a. See Molecule.Neighbors.
func (a Atom) Neighbors() ([]Atom, error) {
	if a.molecule == nil {
		return nil, ErrInvalidHandle
	}

	return a.molecule.Neighbors(a)
}

// Bonds returns handles to the bonds touching a. See Molecule.BondsOf.
func (a Atom) Bonds() ([]Bond, error) {
	if a.molecule == nil {
		return nil, ErrInvalidHandle
	}

	return a.molecule.BondsOf(a)
}

// String renders the handle for debugging, e.g. "atom 2".
func (a Atom) String() string {
	if a.molecule == nil {
		return "atom <invalid>"
	}

	return fmt.Sprintf("atom %d", a.index)
}

// resolveAtom checks that a addresses a live atom of m and returns its index.
func (m *Molecule) resolveAtom(a Atom) (int, error) {
	switch {
	case a.molecule == nil:
		return -1, ErrInvalidHandle
	case a.molecule != m:
		return -1, fmt.Errorf("%w: atom of molecule %s used on molecule %s", ErrForeignHandle, a.molecule.id, m.id)
	case a.index < 0 || a.index >= m.atoms.size() || m.atoms.at(a.index).serial != a.serial:
		return -1, fmt.Errorf("%w: atom %d", ErrStaleHandle, a.index)
	}

	return a.index, nil
}

// atomHandle builds a fresh handle for the atom currently at index i.
func (m *Molecule) atomHandle(i int) Atom {
	return Atom{molecule: m, index: i, serial: m.atoms.at(i).serial}
}

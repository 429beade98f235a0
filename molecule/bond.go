// SPDX-License-Identifier: MIT
//
// File: bond.go
// Role: Bond handle, same ownership and staleness rules as Atom.

package molecule

import "fmt"

// Bond is a non-owning reference to one bond of a Molecule.
// The zero Bond is invalid; BondBetween returns it on a miss.
type Bond struct {
	molecule *Molecule
	index    int
	serial   uint64
}

// IsValid reports whether the handle has an owning molecule.
func (b Bond) IsValid() bool { return b.molecule != nil }

// IsStale reports whether the handle no longer addresses the bond it was
// created for. Invalid handles are stale.
func (b Bond) IsStale() bool {
	if b.molecule == nil {
		return true
	}
	_, err := b.molecule.resolveBond(b)

	return err != nil
}

// Molecule returns the owning molecule, or nil for an invalid handle.
func (b Bond) Molecule() *Molecule { return b.molecule }

// Index returns the index the handle was created with.
func (b Bond) Index() int { return b.index }

// Order returns the bond order.
func (b Bond) Order() (uint8, error) {
	if b.molecule == nil {
		return 0, ErrInvalidHandle
	}
	i, err := b.molecule.resolveBond(b)
	if err != nil {
		return 0, err
	}

	return b.molecule.bonds.at(i).order, nil
}

// SetOrder replaces the bond order. Topology is unchanged.
func (b Bond) SetOrder(order uint8) error {
	if b.molecule == nil {
		return ErrInvalidHandle
	}
	i, err := b.molecule.resolveBond(b)
	if err != nil {
		return err
	}
	b.molecule.bonds.at(i).order = order

	return nil
}

// Atoms returns fresh handles to the bond's endpoints in AddBond order.
func (b Bond) Atoms() (Atom, Atom, error) {
	if b.molecule == nil {
		return Atom{}, Atom{}, ErrInvalidHandle
	}
	i, err := b.molecule.resolveBond(b)
	if err != nil {
		return Atom{}, Atom{}, err
	}
	p := b.molecule.bonds.at(i).pair

	return b.molecule.atomHandle(p.Begin), b.molecule.atomHandle(p.End), nil
}

// Pair returns the bond's endpoint indices in AddBond order.
func (b Bond) Pair() (BondPair, error) {
	if b.molecule == nil {
		return BondPair{}, ErrInvalidHandle
	}
	i, err := b.molecule.resolveBond(b)
	if err != nil {
		return BondPair{}, err
	}

	return b.molecule.bonds.at(i).pair, nil
}

// String renders the handle for debugging, e.g. "bond 0".
func (b Bond) String() string {
	if b.molecule == nil {
		return "bond <invalid>"
	}

	return fmt.Sprintf("bond %d", b.index)
}

// resolveBond checks that b addresses a live bond of m and returns its index.
func (m *Molecule) resolveBond(b Bond) (int, error) {
	switch {
	case b.molecule == nil:
		return -1, ErrInvalidHandle
	case b.molecule != m:
		return -1, fmt.Errorf("%w: bond of molecule %s used on molecule %s", ErrForeignHandle, b.molecule.id, m.id)
	case b.index < 0 || b.index >= m.bonds.size() || m.bonds.at(b.index).serial != b.serial:
		return -1, fmt.Errorf("%w: bond %d", ErrStaleHandle, b.index)
	}

	return b.index, nil
}

// bondHandle builds a fresh handle for the bond currently at index i.
func (m *Molecule) bondHandle(i int) Bond {
	return Bond{molecule: m, index: i, serial: m.bonds.at(i).serial}
}

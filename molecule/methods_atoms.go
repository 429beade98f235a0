// SPDX-License-Identifier: MIT
//
// File: methods_atoms.go
// Role: Atom lifecycle & queries.
//
// Determinism:
//   - AddAtom returns index == AtomCount() before the call.
//   - Atoms() and Neighbors() return handles in ascending index order.

package molecule

import "fmt"

// AddAtom appends an atom with the given atomic number and returns a handle.
//
// Implementation:
//   - Stage 1: Add a graph vertex; its index is the new atom index.
//   - Stage 2: Append the atom row with a fresh serial.
//
// Complexity:
//   - Time O(1) amortized, Space O(1) amortized.
func (m *Molecule) AddAtom(atomicNumber uint8) Atom {
	m.graph.AddVertex()
	i := m.atoms.insert(atomRecord{atomicNumber: atomicNumber, serial: m.nextSerial()})

	return m.atomHandle(i)
}

// RemoveAtomAt removes the atom at index i and every bond touching it.
//
// Implementation:
//   - Stage 1: Validate i (ErrIndexOutOfRange). Nothing is mutated on failure.
//   - Stage 2: One stable pass over the bond table: drop rows touching i and
//     decrement surviving endpoints above i.
//   - Stage 3: Remove the graph edge of every dropped bond.
//   - Stage 4: Remove graph vertex i (the graph shifts higher vertices down).
//   - Stage 5: Remove atom row i.
//
// Behavior highlights:
//   - Surviving bond pairs keep naming the same two atoms under their new
//     indices; BondPairs() never references a removed or shifted-away atom.
//   - Handles to atoms above i, and to bonds above any dropped bond, become
//     stale.
//
// Errors:
//   - ErrIndexOutOfRange: if i is not in [0, AtomCount()).
//   - ErrInconsistent: if the graph rejects an edge or vertex removal, which
//     means the invariants were already broken.
//
// Complexity:
//   - Time O(V + E), Space O(k) for the k dropped bonds.
func (m *Molecule) RemoveAtomAt(i int) error {
	if err := m.checkAtomIndex(i); err != nil {
		return err
	}

	dropped := m.bonds.removeIf(func(r *bondRecord) bool {
		if r.pair.touches(i) {
			return true
		}
		if r.pair.Begin > i {
			r.pair.Begin--
		}
		if r.pair.End > i {
			r.pair.End--
		}

		return false
	})

	// Dropped pairs still carry pre-removal indices, which is what the graph expects.
	var r bondRecord
	for _, r = range dropped {
		if err := m.graph.RemoveEdge(r.pair.Begin, r.pair.End); err != nil {
			return fmt.Errorf("%w: removing bond %d-%d: %v", ErrInconsistent, r.pair.Begin, r.pair.End, err)
		}
	}

	if err := m.graph.RemoveVertex(i); err != nil {
		return fmt.Errorf("%w: removing atom %d: %v", ErrInconsistent, i, err)
	}
	m.atoms.remove(i)

	return nil
}

// RemoveAtom removes the atom addressed by a. See RemoveAtomAt.
//
// Errors:
//   - ErrInvalidHandle, ErrForeignHandle, ErrStaleHandle for a bad handle.
func (m *Molecule) RemoveAtom(a Atom) error {
	i, err := m.resolveAtom(a)
	if err != nil {
		return err
	}

	return m.RemoveAtomAt(i)
}

// Atom returns a handle to the atom at index i.
//
// Errors:
//   - ErrIndexOutOfRange: if i is not in [0, AtomCount()).
func (m *Molecule) Atom(i int) (Atom, error) {
	if err := m.checkAtomIndex(i); err != nil {
		return Atom{}, err
	}

	return m.atomHandle(i), nil
}

// Atoms returns handles to every atom in index order.
func (m *Molecule) Atoms() []Atom {
	out := make([]Atom, m.atoms.size())
	var i int
	for i = range out {
		out[i] = m.atomHandle(i)
	}

	return out
}

// AtomCount returns the number of atoms.
func (m *Molecule) AtomCount() int { return m.atoms.size() }

// Size returns the number of atoms; it mirrors the graph's vertex count.
func (m *Molecule) Size() int { return m.graph.Size() }

// IsEmpty reports whether the molecule has no atoms.
func (m *Molecule) IsEmpty() bool { return m.graph.IsEmpty() }

// AtomicNumbers returns a copy of the atomic-number column, index-aligned
// with atom indices.
func (m *Molecule) AtomicNumbers() []uint8 {
	out := make([]uint8, m.atoms.size())
	var i int
	for i = range out {
		out[i] = m.atoms.at(i).atomicNumber
	}

	return out
}

// Neighbors returns handles to the atoms bonded to a, ascending by index,
// repeated once per parallel bond.
//
// Errors:
//   - ErrInvalidHandle, ErrForeignHandle, ErrStaleHandle for a bad handle.
func (m *Molecule) Neighbors(a Atom) ([]Atom, error) {
	i, err := m.resolveAtom(a)
	if err != nil {
		return nil, err
	}
	idx, err := m.graph.Neighbors(i)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInconsistent, err)
	}

	out := make([]Atom, len(idx))
	var (
		k, j int
	)
	for k, j = range idx {
		out[k] = m.atomHandle(j)
	}

	return out, nil
}

// checkAtomIndex validates i against the atom table.
func (m *Molecule) checkAtomIndex(i int) error {
	if i < 0 || i >= m.atoms.size() {
		return fmt.Errorf("%w: atom index %d not in [0,%d)", ErrIndexOutOfRange, i, m.atoms.size())
	}

	return nil
}

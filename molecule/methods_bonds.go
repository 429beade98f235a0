// SPDX-License-Identifier: MIT
//
// File: methods_bonds.go
// Role: Bond lifecycle & queries, including lookup by endpoint pair.
//
// Determinism:
//   - AddBond returns index == BondCount() before the call.
//   - Pair lookups return the first match in insertion order.

package molecule

import "fmt"

// AddBond joins a and b with a bond of the given order.
//
// No self-bond or duplicate-bond check is made: callers may create a bond
// from an atom to itself or several bonds between the same pair.
//
// Errors:
//   - ErrInvalidHandle, ErrForeignHandle, ErrStaleHandle if either handle is bad.
//     Nothing is mutated on failure.
//
// Complexity: O(1) amortized.
func (m *Molecule) AddBond(a, b Atom, order uint8) (Bond, error) {
	ia, err := m.resolveAtom(a)
	if err != nil {
		return Bond{}, err
	}
	ib, err := m.resolveAtom(b)
	if err != nil {
		return Bond{}, err
	}

	if err = m.graph.AddEdge(ia, ib); err != nil {
		return Bond{}, fmt.Errorf("%w: adding bond %d-%d: %v", ErrInconsistent, ia, ib, err)
	}
	i := m.bonds.insert(bondRecord{
		pair:   BondPair{Begin: ia, End: ib},
		order:  order,
		serial: m.nextSerial(),
	})

	return m.bondHandle(i), nil
}

// RemoveBondAt removes the bond at index i. Bonds above i shift down by one.
//
// Errors:
//   - ErrIndexOutOfRange: if i is not in [0, BondCount()).
//   - ErrInconsistent: if the graph has no matching edge.
//
// Complexity: O(B + deg) for the row shift and the edge lookup.
func (m *Molecule) RemoveBondAt(i int) error {
	if err := m.checkBondIndex(i); err != nil {
		return err
	}

	p := m.bonds.at(i).pair
	if err := m.graph.RemoveEdge(p.Begin, p.End); err != nil {
		return fmt.Errorf("%w: removing bond %d-%d: %v", ErrInconsistent, p.Begin, p.End, err)
	}
	m.bonds.remove(i)

	return nil
}

// RemoveBond removes the bond addressed by b. See RemoveBondAt.
func (m *Molecule) RemoveBond(b Bond) error {
	i, err := m.resolveBond(b)
	if err != nil {
		return err
	}

	return m.RemoveBondAt(i)
}

// RemoveBondBetween removes the first bond, in insertion order, whose pair
// matches (a, b) under the molecule's lookup policy.
//
// Errors:
//   - handle errors as for AddBond.
//   - ErrBondNotFound: if no bond matches.
func (m *Molecule) RemoveBondBetween(a, b Atom) error {
	ia, ib, err := m.resolvePair(a, b)
	if err != nil {
		return err
	}

	i := m.findBond(ia, ib)
	if i < 0 {
		return fmt.Errorf("%w: %d-%d", ErrBondNotFound, ia, ib)
	}

	return m.RemoveBondAt(i)
}

// Bond returns a handle to the bond at index i.
//
// Errors:
//   - ErrIndexOutOfRange: if i is not in [0, BondCount()).
func (m *Molecule) Bond(i int) (Bond, error) {
	if err := m.checkBondIndex(i); err != nil {
		return Bond{}, err
	}

	return m.bondHandle(i), nil
}

// BondBetween returns the first bond, in insertion order, whose pair matches
// (a, b). By default (b, a) does not match; see WithUnorderedBondLookup.
//
// A miss is not an error: it returns the zero Bond (IsValid() == false) and
// a nil error. Errors are reserved for bad handles.
//
// Complexity: O(B).
func (m *Molecule) BondBetween(a, b Atom) (Bond, error) {
	ia, ib, err := m.resolvePair(a, b)
	if err != nil {
		return Bond{}, err
	}

	i := m.findBond(ia, ib)
	if i < 0 {
		return Bond{}, nil
	}

	return m.bondHandle(i), nil
}

// BondsOf returns handles to every bond touching a, in index order.
// A self-bond is listed once.
func (m *Molecule) BondsOf(a Atom) ([]Bond, error) {
	ia, err := m.resolveAtom(a)
	if err != nil {
		return nil, err
	}

	var out []Bond
	var i int
	for i = 0; i < m.bonds.size(); i++ {
		if m.bonds.at(i).pair.touches(ia) {
			out = append(out, m.bondHandle(i))
		}
	}

	return out, nil
}

// Bonds returns handles to every bond in index order.
func (m *Molecule) Bonds() []Bond {
	out := make([]Bond, m.bonds.size())
	var i int
	for i = range out {
		out[i] = m.bondHandle(i)
	}

	return out
}

// BondCount returns the number of bonds.
func (m *Molecule) BondCount() int { return m.bonds.size() }

// BondPairs returns a copy of the endpoint column, index-aligned with bond indices.
func (m *Molecule) BondPairs() []BondPair {
	out := make([]BondPair, m.bonds.size())
	var i int
	for i = range out {
		out[i] = m.bonds.at(i).pair
	}

	return out
}

// BondOrders returns a copy of the bond-order column, index-aligned with bond indices.
func (m *Molecule) BondOrders() []uint8 {
	out := make([]uint8, m.bonds.size())
	var i int
	for i = range out {
		out[i] = m.bonds.at(i).order
	}

	return out
}

// findBond returns the first bond index matching (a, b), or -1.
func (m *Molecule) findBond(a, b int) int {
	var i int
	for i = 0; i < m.bonds.size(); i++ {
		if m.bonds.at(i).pair.matches(a, b, m.unorderedLookup) {
			return i
		}
	}

	return -1
}

// resolvePair resolves two atom handles or returns the first failure.
func (m *Molecule) resolvePair(a, b Atom) (int, int, error) {
	ia, err := m.resolveAtom(a)
	if err != nil {
		return -1, -1, err
	}
	ib, err := m.resolveAtom(b)
	if err != nil {
		return -1, -1, err
	}

	return ia, ib, nil
}

// checkBondIndex validates i against the bond table.
func (m *Molecule) checkBondIndex(i int) error {
	if i < 0 || i >= m.bonds.size() {
		return fmt.Errorf("%w: bond index %d not in [0,%d)", ErrIndexOutOfRange, i, m.bonds.size())
	}

	return nil
}

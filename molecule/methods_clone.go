// SPDX-License-Identifier: MIT
//
// File: methods_clone.go
// Role: Cloning, topology snapshots and invariant checking.

package molecule

import (
	"fmt"
	"sort"

	"github.com/google/uuid"

	"github.com/ghutchis/MolCore/graph"
)

// Clone returns a deep copy of m with a new ID.
//
// Handles obtained from m are foreign to the clone; obtain new ones through
// the clone's accessors. Entity serials are preserved, so handle staleness
// on the clone follows the same rules as on m.
//
// Complexity: O(V + E + D) where D is the number of metadata entries.
func (m *Molecule) Clone() *Molecule {
	return &Molecule{
		id:              uuid.New(),
		unorderedLookup: m.unorderedLookup,
		graph:           m.graph.Clone(),
		atoms:           m.atoms.clone(),
		bonds:           m.bonds.clone(),
		data:            m.data.Clone(),
		lastSerial:      m.lastSerial,
	}
}

// Graph returns a snapshot of the molecule's topology. Vertex i is atom i.
// The snapshot is independent: mutating it does not affect m.
func (m *Molecule) Graph() *graph.Graph { return m.graph.Clone() }

// Validate checks the cross-collection invariants:
//   - the graph has one vertex per atom row,
//   - the graph has one edge per bond row,
//   - every bond pair references existing atoms,
//   - the graph's edges are exactly the bond pairs (ignoring orientation).
//
// Errors:
//   - ErrInconsistent wrapped with the first violation found.
//
// Complexity: O(V + E log E).
func (m *Molecule) Validate() error {
	if m.graph.Size() != m.atoms.size() {
		return fmt.Errorf("%w: %d graph vertices for %d atoms", ErrInconsistent, m.graph.Size(), m.atoms.size())
	}
	if m.graph.EdgeCount() != m.bonds.size() {
		return fmt.Errorf("%w: %d graph edges for %d bonds", ErrInconsistent, m.graph.EdgeCount(), m.bonds.size())
	}

	want := make([]graph.Edge, 0, m.bonds.size())
	var (
		i int
		p BondPair
	)
	for i = 0; i < m.bonds.size(); i++ {
		p = m.bonds.at(i).pair
		if m.checkAtomIndex(p.Begin) != nil || m.checkAtomIndex(p.End) != nil {
			return fmt.Errorf("%w: bond %d references %d-%d with %d atoms", ErrInconsistent, i, p.Begin, p.End, m.atoms.size())
		}
		if p.Begin <= p.End {
			want = append(want, graph.Edge{A: p.Begin, B: p.End})
		} else {
			want = append(want, graph.Edge{A: p.End, B: p.Begin})
		}
	}
	sort.Slice(want, func(x, y int) bool {
		if want[x].A != want[y].A {
			return want[x].A < want[y].A
		}

		return want[x].B < want[y].B
	})

	got := m.graph.Edges()
	for i = range want {
		if want[i] != got[i] {
			return fmt.Errorf("%w: bond %v has no matching graph edge", ErrInconsistent, want[i])
		}
	}

	return nil
}

// String renders a short summary, e.g. "Molecule(<id>, atoms=3, bonds=2)".
func (m *Molecule) String() string {
	return fmt.Sprintf("Molecule(%s, atoms=%d, bonds=%d)", m.id, m.atoms.size(), m.bonds.size())
}

// SPDX-License-Identifier: MIT
//
// File: types.go
// Role: Molecule, its options, row records and the New constructor.

package molecule

import (
	"github.com/google/uuid"

	"github.com/ghutchis/MolCore/graph"
	"github.com/ghutchis/MolCore/variant"
)

// BondPair names the two atom indices joined by a bond, in the order they
// were given to AddBond.
type BondPair struct {
	Begin int
	End   int
}

// touches reports whether the pair references atom i.
func (p BondPair) touches(i int) bool { return p.Begin == i || p.End == i }

// matches reports whether the pair is (a, b), or (b, a) when unordered.
func (p BondPair) matches(a, b int, unordered bool) bool {
	if p.Begin == a && p.End == b {
		return true
	}

	return unordered && p.Begin == b && p.End == a
}

// atomRecord is one row of the atom table.
type atomRecord struct {
	atomicNumber uint8
	serial       uint64
}

// bondRecord is one row of the bond table.
type bondRecord struct {
	pair   BondPair
	order  uint8
	serial uint64
}

// Option configures a Molecule before creation.
type Option func(m *Molecule)

// WithUnorderedBondLookup makes BondBetween and RemoveBondBetween match a
// stored pair in either orientation.
func WithUnorderedBondLookup() Option {
	return func(m *Molecule) { m.unorderedLookup = true }
}

// Molecule coordinates topology, per-entity attributes and metadata.
//
// Invariants between completed calls:
//   - graph.Size() == atoms.size()
//   - graph.EdgeCount() == bonds.size()
//   - every bond pair references two atom indices in [0, atoms.size())
type Molecule struct {
	id uuid.UUID

	// Configuration flags
	unorderedLookup bool

	// Storage
	graph *graph.Graph
	atoms table[atomRecord]
	bonds table[bondRecord]
	data  *variant.Map

	// lastSerial is the most recently issued entity serial; 0 is never issued.
	lastSerial uint64
}

// New creates an empty Molecule.
//
// The underlying graph permits parallel edges and self-loops, so the
// Molecule never refuses a bond for chemistry reasons.
// Complexity: O(len(opts))
func New(opts ...Option) *Molecule {
	m := &Molecule{
		id:    uuid.New(),
		graph: graph.New(graph.WithMultiEdges(), graph.WithLoops()),
		data:  variant.NewMap(),
	}
	var opt Option
	for _, opt = range opts {
		opt(m)
	}

	return m
}

// ID returns the identity assigned to m at creation. Clones get a new ID.
func (m *Molecule) ID() uuid.UUID { return m.id }

// UnorderedBondLookup reports whether pair lookups ignore orientation.
func (m *Molecule) UnorderedBondLookup() bool { return m.unorderedLookup }

// nextSerial issues a fresh entity serial.
func (m *Molecule) nextSerial() uint64 {
	m.lastSerial++

	return m.lastSerial
}

// SPDX-License-Identifier: MIT
// Package molecule provides the Molecule entity coordinator together with
// the lightweight Atom and Bond handles that address entities inside it.
//
// A Molecule owns:
//
//   - one graph.Graph holding topology (vertex i ⇔ atom i),
//   - one atom table (atomic number per atom index),
//   - one bond table (endpoint pair and bond order per bond index),
//   - one variant.Map of named molecule-level metadata.
//
// Atom and bond tables are row tables: a single insert and a single remove
// entry point per entity kind, so len(AtomicNumbers()) == AtomCount() and
// len(BondPairs()) == len(BondOrders()) == BondCount() hold by construction.
// Bond indices are the Molecule's own insertion order; they are not the
// graph's edge storage order.
//
// Index semantics:
//
//	AddAtom(z)           → index = AtomCount() before the call
//	AddBond(a, b, order) → index = BondCount() before the call
//	RemoveAtomAt(i)      → atoms above i shift down by one
//	RemoveBondAt(i)      → bonds above i shift down by one
//
// Removal policy for atoms: every bond touching the atom is removed in a
// single pass, then surviving bond endpoints greater than the removed index
// are decremented so that every stored pair keeps naming the same two atoms.
//
// Handles:
//
// An Atom or Bond is (molecule, index, serial). Every entity gets a unique
// serial when created. A handle is valid when its molecule is non-nil, and
// stale when its index no longer holds the entity whose serial it carries,
// either because that entity was removed or because a lower-indexed removal
// shifted it. Operations given a stale handle fail with ErrStaleHandle; they
// never act on whatever entity now sits at the old index. Indexed accessors
// (Atom(i), Bond(i)) always return fresh handles.
//
// Bond lookup by endpoints:
//
//	BondBetween(a, b) – first bond in insertion order whose pair is exactly
//	                    (a, b); a miss returns the zero Bond and a nil error.
//	RemoveBondBetween – same match, ErrBondNotFound on a miss.
//
// Matching is order-sensitive unless the Molecule was created with
// WithUnorderedBondLookup, in which case a stored (b, a) also matches.
//
// Errors:
//
//	ErrIndexOutOfRange – indexed accessor or removal outside [0, count)
//	ErrInvalidHandle   – zero-value handle (no owning molecule)
//	ErrForeignHandle   – handle owned by a different Molecule
//	ErrStaleHandle     – handle whose entity moved or was removed
//	ErrBondNotFound    – pair-form bond removal found no match
//	ErrInconsistent    – topology and attribute tables disagree
//
// Metadata lookups propagate variant.ErrKeyNotFound.
//
// Concurrency: none. A Molecule assumes a single writer; concurrent reads are
// safe only while no mutation is in flight. No chemistry validation
// (valence, charge) is performed.
package molecule

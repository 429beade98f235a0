// Package molcore is an in-memory data model for chemical molecules: a
// mutable graph of atoms connected by bonds, typed per-entity attributes and
// a generic named-property store.
//
// Under the hood, everything is organized under three subpackages:
//
//	variant/  — Variant tagged union (bool, int, float, string) and Map
//	graph/    — dense-index undirected topology store
//	molecule/ — Molecule coordinator plus Atom and Bond handles
//
// Quick example (ethanol heavy atoms):
//
//	m := molecule.New()
//	c1 := m.AddAtom(6)
//	c2 := m.AddAtom(6)
//	o := m.AddAtom(8)
//	m.AddBond(c1, c2, 1)
//	m.AddBond(c2, o, 1)
//	m.SetData("name", variant.FromString("ethanol"))
//
//	    C1───C2───O
//
// Handles are cheap (molecule, index, serial) values. Removing an atom or a
// bond shifts higher indices down; handles to shifted entities become stale
// and are rejected with molecule.ErrStaleHandle rather than silently
// addressing a different entity.
//
// The core is single-threaded, performs no chemistry validation, no I/O and
// no persistence.
//
//	go get github.com/ghutchis/MolCore
package molcore

package molecule_test

import (
	"errors"
	"fmt"

	"github.com/ghutchis/MolCore/molecule"
	"github.com/ghutchis/MolCore/variant"
)

// ExampleMolecule builds water, looks up a bond by its endpoints and reads metadata.
func ExampleMolecule() {
	m := molecule.New()
	o := m.AddAtom(8)
	h1 := m.AddAtom(1)
	h2 := m.AddAtom(1)
	_, _ = m.AddBond(o, h1, 1)
	_, _ = m.AddBond(o, h2, 1)
	m.SetData("name", variant.FromString("water"))

	b, _ := m.BondBetween(o, h2)
	name, _ := m.Data("name")
	fmt.Println(m.AtomCount(), m.BondCount(), b.Index(), name.ToString())

	miss, _ := m.BondBetween(h1, h2)
	fmt.Println(miss.IsValid())

	// Output:
	// 3 2 1 water
	// false
}

// ExampleMolecule_RemoveAtom shows bond renumbering and handle staleness.
func ExampleMolecule_RemoveAtom() {
	m := molecule.New()
	c := m.AddAtom(6)
	n := m.AddAtom(7)
	o := m.AddAtom(8)
	_, _ = m.AddBond(n, o, 2)

	_ = m.RemoveAtom(c)
	fmt.Println(m.BondPairs())

	_, err := o.AtomicNumber()
	fmt.Println(errors.Is(err, molecule.ErrStaleHandle))

	// Output:
	// [{0 1}]
	// true
}

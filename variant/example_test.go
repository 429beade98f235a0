package variant_test

import (
	"errors"
	"fmt"

	"github.com/ghutchis/MolCore/variant"
)

// ExampleMap stores molecule metadata and shows strict lookup.
func ExampleMap() {
	m := variant.NewMap()
	m.SetValue("name", variant.FromString("ethanol"))
	m.SetValue("charge", variant.FromInt(0))

	v, _ := m.Value("name")
	fmt.Println(v)

	_, err := m.Value("smiles")
	fmt.Println(errors.Is(err, variant.ErrKeyNotFound))

	// Output:
	// string("ethanol")
	// true
}

// ExampleVariant_ToFloat contrasts strict and lenient access.
func ExampleVariant_ToFloat() {
	v := variant.FromInt(46)

	_, err := v.AsFloat()
	fmt.Println(errors.Is(err, variant.ErrTypeMismatch))
	fmt.Println(v.ToFloat())

	// Output:
	// true
	// 46
}

package variant_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ghutchis/MolCore/variant"
)

// TestVariant_ZeroIsNull verifies the default-constructed Variant is Null.
func TestVariant_ZeroIsNull(t *testing.T) {
	var v variant.Variant
	assert.True(t, v.IsNull())
	assert.Equal(t, variant.KindNull, v.Kind())
	assert.True(t, v.Equal(variant.Null()))
	assert.Equal(t, "null", v.String())
}

// TestVariant_StrictAccessors checks each As* accessor on its own kind
// and ErrTypeMismatch on every other kind.
func TestVariant_StrictAccessors(t *testing.T) {
	b, err := variant.FromBool(true).AsBool()
	require.NoError(t, err)
	assert.True(t, b)

	i, err := variant.FromInt(5).AsInt()
	require.NoError(t, err)
	assert.Equal(t, int64(5), i)

	f, err := variant.FromFloat(1.5).AsFloat()
	require.NoError(t, err)
	assert.Equal(t, 1.5, f)

	s, err := variant.FromString("benzene").AsString()
	require.NoError(t, err)
	assert.Equal(t, "benzene", s)

	_, err = variant.FromInt(5).AsFloat()
	assert.ErrorIs(t, err, variant.ErrTypeMismatch, "int must not be widened by AsFloat")
	_, err = variant.FromString("5").AsInt()
	assert.ErrorIs(t, err, variant.ErrTypeMismatch)
	_, err = variant.Null().AsBool()
	assert.ErrorIs(t, err, variant.ErrTypeMismatch)
	_, err = variant.FromBool(false).AsString()
	assert.ErrorIs(t, err, variant.ErrTypeMismatch)
}

// TestVariant_New covers the accepted Go types and the rejection path.
func TestVariant_New(t *testing.T) {
	cases := []struct {
		name string
		in   any
		kind variant.Kind
	}{
		{"nil", nil, variant.KindNull},
		{"bool", true, variant.KindBool},
		{"int", 7, variant.KindInt},
		{"int8", int8(-3), variant.KindInt},
		{"uint8", uint8(6), variant.KindInt},
		{"uint64", uint64(12), variant.KindInt},
		{"float32", float32(0.5), variant.KindFloat},
		{"float64", 2.25, variant.KindFloat},
		{"string", "C6H6", variant.KindString},
		{"bytes", []byte("H2O"), variant.KindString},
		{"variant", variant.FromInt(1), variant.KindInt},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			v, err := variant.New(tc.in)
			require.NoError(t, err)
			assert.Equal(t, tc.kind, v.Kind())
		})
	}

	_, err := variant.New(struct{}{})
	assert.ErrorIs(t, err, variant.ErrUnsupportedType)
	_, err = variant.New(uint64(math.MaxUint64))
	assert.ErrorIs(t, err, variant.ErrUnsupportedType, "uint64 overflow must be rejected")
}

// TestVariant_Conversions pins the lenient To* conversions.
func TestVariant_Conversions(t *testing.T) {
	assert.Equal(t, int64(3), variant.FromFloat(3.9).ToInt(), "float truncates toward zero")
	assert.Equal(t, int64(1), variant.FromBool(true).ToInt())
	assert.Equal(t, int64(42), variant.FromString(" 42 ").ToInt())
	assert.Equal(t, int64(2), variant.FromString("2.7").ToInt())
	assert.Equal(t, int64(0), variant.FromString("carbon").ToInt())
	assert.Equal(t, int64(0), variant.Null().ToInt())

	assert.Equal(t, 4.0, variant.FromInt(4).ToFloat())
	assert.Equal(t, 0.25, variant.FromString("0.25").ToFloat())
	assert.Equal(t, 0.0, variant.FromString("x").ToFloat())

	assert.True(t, variant.FromInt(-1).ToBool())
	assert.False(t, variant.FromFloat(0).ToBool())
	assert.True(t, variant.FromString("true").ToBool())
	assert.False(t, variant.FromString("maybe").ToBool())

	assert.Equal(t, "12", variant.FromInt(12).ToString())
	assert.Equal(t, "1.5", variant.FromFloat(1.5).ToString())
	assert.Equal(t, "false", variant.FromBool(false).ToString())
	assert.Equal(t, "", variant.Null().ToString())
}

// TestVariant_ValueSemantics verifies a copy is independent of the original.
func TestVariant_ValueSemantics(t *testing.T) {
	a := variant.FromString("ethanol")
	b := a
	a = variant.FromInt(1)

	s, err := b.AsString()
	require.NoError(t, err)
	assert.Equal(t, "ethanol", s)
	assert.False(t, a.Equal(b))
}

// TestVariant_String pins the debug rendering.
func TestVariant_String(t *testing.T) {
	assert.Equal(t, "int(5)", variant.FromInt(5).String())
	assert.Equal(t, `string("C")`, variant.FromString("C").String())
	assert.Equal(t, "bool(true)", variant.FromBool(true).String())
	assert.Equal(t, "float(0.5)", variant.FromFloat(0.5).String())
	assert.Equal(t, "unknown", variant.Kind(200).String())
}

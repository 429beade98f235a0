package variant_test

import (
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/ghutchis/MolCore/variant"
)

type MapSuite struct {
	suite.Suite
	m *variant.Map
}

func (s *MapSuite) SetupTest() {
	s.m = variant.NewMap()
}

func (s *MapSuite) TestSetValueThenValue() {
	require := require.New(s.T())
	s.m.SetValue("x", variant.FromInt(5))

	v, err := s.m.Value("x")
	require.NoError(err)
	require.Equal(variant.KindInt, v.Kind())
	n, err := v.AsInt()
	require.NoError(err)
	require.Equal(int64(5), n)
}

func (s *MapSuite) TestMissingKeyFails() {
	require := require.New(s.T())
	_, err := s.m.Value("missing")
	require.ErrorIs(err, variant.ErrKeyNotFound)
	require.Contains(err.Error(), `"missing"`)
}

func (s *MapSuite) TestOverwriteKeepsSize() {
	require := require.New(s.T())
	require.True(s.m.IsEmpty())

	s.m.SetValue("name", variant.FromString("water"))
	s.m.SetValue("name", variant.FromString("ice"))
	require.Equal(1, s.m.Size())
	require.False(s.m.IsEmpty())

	v, err := s.m.Value("name")
	require.NoError(err)
	require.Equal("ice", v.ToString())
}

func (s *MapSuite) TestDeleteHasNames() {
	require := require.New(s.T())
	s.m.SetValue("b", variant.FromBool(true))
	s.m.SetValue("a", variant.FromFloat(1))
	require.Equal([]string{"a", "b"}, s.m.Names())

	require.True(s.m.Has("a"))
	require.True(s.m.Delete("a"))
	require.False(s.m.Delete("a"))
	require.False(s.m.Has("a"))
	require.Equal(1, s.m.Size())

	s.m.Clear()
	require.True(s.m.IsEmpty())
}

func (s *MapSuite) TestCloneIsIndependent() {
	require := require.New(s.T())
	s.m.SetValue("k", variant.FromInt(1))
	c := s.m.Clone()
	c.SetValue("k", variant.FromInt(2))
	c.SetValue("extra", variant.Null())

	v, err := s.m.Value("k")
	require.NoError(err)
	require.Equal(int64(1), v.ToInt())
	require.Equal(1, s.m.Size())
	require.Equal(2, c.Size())
}

func (s *MapSuite) TestZeroValueUsable() {
	require := require.New(s.T())
	var m variant.Map
	require.True(m.IsEmpty())
	require.False(m.Delete("x"))
	m.SetValue("x", variant.FromInt(1))
	require.Equal(1, m.Size())
}

func TestMapSuite(t *testing.T) {
	suite.Run(t, new(MapSuite))
}

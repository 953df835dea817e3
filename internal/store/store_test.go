package store

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fixture(t *testing.T) *Store {
	t.Helper()
	s, err := New([]Record{
		{Z: 1, Symbol: "H", Name: "Hydrogen", Properties: map[string]string{"density": "0.00008988"}},
		{Z: 2, Symbol: "He", Name: "Helium", Properties: map[string]string{"density": "0.0001785"}},
		{Z: 3, Symbol: "Li", Name: "Lithium", Properties: map[string]string{"density": "0.534"}},
		{Z: 4, Symbol: "Be", Name: "Beryllium", Properties: nil},
		{Z: 5, Symbol: "B", Name: "Boron", Properties: map[string]string{"density": "2.34"}},
	}, nil)
	require.NoError(t, err)
	return s
}

func TestOpenEmbedded(t *testing.T) {
	s, err := Open()
	require.NoError(t, err)

	assert.Equal(t, 118, s.MaxZ())
	assert.Len(t, s.Zs(), 118)
	assert.Equal(t, "Gold", s.Name(79))
	assert.Equal(t, "Au", s.Symbol(79))
	assert.NotEmpty(t, s.Isotopes(79))
	assert.Empty(t, s.Isotopes(3))
}

func TestFind(t *testing.T) {
	s, err := Open()
	require.NoError(t, err)

	for _, query := range []string{"79", "Au", "au", "Gold", "GOLD", "  gold  "} {
		z, ok := s.Find(query)
		require.True(t, ok, "query %q", query)
		assert.Equal(t, 79, z, "query %q", query)
	}

	// Prefix matches resolve to the lowest atomic number.
	z, ok := s.Find("bo")
	require.True(t, ok)
	assert.Equal(t, 5, z) // Boron, not Bohrium

	for _, query := range []string{"", "0", "119", "-1", "xq"} {
		_, ok := s.Find(query)
		assert.False(t, ok, "query %q", query)
	}
}

func TestPropertyDegradesToNA(t *testing.T) {
	s := fixture(t)

	assert.Equal(t, "0.534", s.Property(3, "density"))
	assert.Equal(t, NA, s.Property(3, "electronegativity"))
	assert.Equal(t, NA, s.Property(4, "density"))
	assert.Equal(t, NA, s.Property(99, "density"))

	assert.Equal(t, "Lithium", s.Property(3, "name"))
	assert.Equal(t, "Li", s.Property(3, "symbol"))
}

func TestParseValue(t *testing.T) {
	cases := []struct {
		raw  string
		want float64
		ok   bool
	}{
		{"19.3", 19.3, true},
		{"[226]", 226, true},
		{"~3823", 3823, true},
		{"1.23 (est)", 1.23, true},
		{"-1, 1", 0, false},
		{NA, 0, false},
		{"", 0, false},
		{"unknown", 0, false},
	}
	for _, tc := range cases {
		got, ok := ParseValue(tc.raw)
		assert.Equal(t, tc.ok, ok, "raw %q", tc.raw)
		if tc.ok {
			assert.InDelta(t, tc.want, got, 1e-9, "raw %q", tc.raw)
		}
	}
}

func TestSortedByPlacesUndefinedLast(t *testing.T) {
	s := fixture(t)

	asc := s.SortedBy("density", false)
	assert.Equal(t, []int{1, 2, 3, 5, 4}, asc)

	desc := s.SortedBy("density", true)
	assert.Equal(t, []int{5, 3, 2, 1, 4}, desc)
}

func TestSortedByTiesBreakByZ(t *testing.T) {
	s, err := New([]Record{
		{Z: 1, Symbol: "A", Name: "Alpha", Properties: map[string]string{"density": "1.0"}},
		{Z: 2, Symbol: "B", Name: "Beta", Properties: map[string]string{"density": "1.0"}},
		{Z: 3, Symbol: "C", Name: "Gamma", Properties: map[string]string{"density": "0.5"}},
	}, nil)
	require.NoError(t, err)

	assert.Equal(t, []int{3, 1, 2}, s.SortedBy("density", false))
	assert.Equal(t, []int{1, 2, 3}, s.SortedBy("density", true))
}

func TestNewRejectsBadTables(t *testing.T) {
	_, err := New([]Record{
		{Z: 1, Symbol: "H", Name: "Hydrogen"},
		{Z: 3, Symbol: "Li", Name: "Lithium"},
	}, nil)
	assert.ErrorContains(t, err, "gap")

	_, err = New([]Record{
		{Z: 1, Symbol: "H", Name: "Hydrogen"},
		{Z: 1, Symbol: "H", Name: "Hydrogen"},
	}, nil)
	assert.ErrorContains(t, err, "duplicate")

	_, err = New([]Record{{Z: 0, Symbol: "X", Name: "Exium"}}, nil)
	assert.ErrorContains(t, err, "invalid atomic number")
}

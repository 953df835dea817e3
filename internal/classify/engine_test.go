package classify

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hverma/elemental/internal/store"
)

func fixture(t *testing.T) *store.Store {
	t.Helper()
	s, err := store.New([]store.Record{
		{Z: 1, Symbol: "Aa", Name: "Alpha", Properties: map[string]string{
			"melting_point":    "273.15",
			"boiling_point":    "373.15",
			"density":          "1.0",
			"discovered":       "1766",
			"oxidation_states": "-1, 1",
		}},
		{Z: 2, Symbol: "Bb", Name: "Beta", Properties: map[string]string{
			"melting_point":    "100",
			"boiling_point":    "200",
			"density":          "2.0",
			"discovered":       "1800",
			"discoverer":       "Known to the ancients",
			"oxidation_states": "1, 2, 3",
		}},
		{Z: 3, Symbol: "Cc", Name: "Gamma", Properties: map[string]string{
			"density":          "3.0",
			"discovered":       "1901",
			"oxidation_states": "-3, -2, -1, 1, 2, 3, 4, 5, 6, 7",
		}},
		{Z: 4, Symbol: "Dd", Name: "Delta", Properties: map[string]string{
			"discovered": "ancient times",
		}},
	}, nil)
	require.NoError(t, err)
	return s
}

func TestByStateBoundary(t *testing.T) {
	e := New(fixture(t))
	e.SetScheme(Scheme{Kind: ByState})

	// Exactly at the melting point is not solid.
	e.SetReference(273.15)
	assert.Equal(t, "liquid", e.Categorize(1).Key)

	e.SetReference(273.14)
	assert.Equal(t, "solid", e.Categorize(1).Key)

	// Exactly at the boiling point is not liquid.
	e.SetReference(373.15)
	assert.Equal(t, "gas", e.Categorize(1).Key)

	e.SetReference(250)
	assert.Equal(t, "unknown", e.Categorize(3).Key)
}

func TestByPropertyMedianAndEpsilon(t *testing.T) {
	e := New(fixture(t))
	e.SetScheme(Scheme{Kind: ByProperty, Property: "density"})

	// Median of the defined densities {1, 2, 3} is 2.
	ref, ok := e.Reference()
	require.True(t, ok)
	assert.InDelta(t, 2.0, ref, 1e-9)

	assert.Equal(t, "less", e.Categorize(1).Key)
	assert.Equal(t, "equal", e.Categorize(2).Key)
	assert.Equal(t, "greater", e.Categorize(3).Key)
	assert.Equal(t, "unknown", e.Categorize(4).Key)

	// A value exactly epsilon away still counts as equal: the tolerance
	// check runs before the strict comparisons.
	e.SetReference(2.005)
	assert.Equal(t, "equal", e.Categorize(2).Key)
	e.SetReference(2.006)
	assert.Equal(t, "less", e.Categorize(2).Key)
}

func TestPropertyReferenceSurvivesSchemeSwitch(t *testing.T) {
	e := New(fixture(t))
	e.SetScheme(Scheme{Kind: ByProperty, Property: "density"})
	e.SetReference(5.5)

	e.SetScheme(Scheme{Kind: ByGroup})
	_, ok := e.Reference()
	assert.False(t, ok)

	e.SetScheme(Scheme{Kind: ByProperty, Property: "density"})
	ref, ok := e.Reference()
	require.True(t, ok)
	assert.InDelta(t, 5.5, ref, 1e-9)
}

func TestByDiscovery(t *testing.T) {
	e := New(fixture(t))
	e.SetScheme(Scheme{Kind: ByDiscovery})

	assert.Equal(t, "before", e.Categorize(1).Key)
	assert.Equal(t, "after", e.Categorize(3).Key)
	assert.Equal(t, "unknown", e.Categorize(4).Key)

	// The discoverer match wins over the year and is case-sensitive.
	assert.Equal(t, "ancients", e.Categorize(2).Key)

	e.SetReference(1766)
	assert.Equal(t, "during", e.Categorize(1).Key)
}

func TestByOxidation(t *testing.T) {
	e := New(fixture(t))
	e.SetScheme(Scheme{Kind: ByOxidation})

	assert.Equal(t, "2", e.Categorize(1).Key)
	assert.Equal(t, "3", e.Categorize(2).Key)
	assert.Equal(t, "7", e.Categorize(3).Key) // counts above seven share the last bucket
	assert.Equal(t, "unknown", e.Categorize(4).Key)
}

func TestByGroup(t *testing.T) {
	s, err := store.Open()
	require.NoError(t, err)
	e := New(s)

	assert.Equal(t, "s", e.Categorize(1).Key)
	assert.Equal(t, "p", e.Categorize(13).Key)
	assert.Equal(t, "d", e.Categorize(26).Key)
	assert.Equal(t, "f", e.Categorize(58).Key)
}

func TestLegendOrder(t *testing.T) {
	e := New(fixture(t))

	keys := func(l Legend) []string {
		var out []string
		for _, c := range l.Entries {
			out = append(out, c.Key)
		}
		return out
	}

	assert.Equal(t, []string{"s", "p", "d", "f"}, keys(e.Legend()))

	e.SetScheme(Scheme{Kind: ByState})
	l := e.Legend()
	assert.Equal(t, []string{"solid", "liquid", "gas", "unknown"}, keys(l))
	assert.Contains(t, l.Reference, "298.15")

	e.SetScheme(Scheme{Kind: ByDiscovery})
	assert.Equal(t, []string{"before", "during", "after", "ancients", "unknown"}, keys(e.Legend()))

	e.SetScheme(Scheme{Kind: ByOxidation})
	assert.Equal(t, []string{"1", "2", "3", "4", "5", "6", "7", "unknown"}, keys(e.Legend()))

	e.SetScheme(Scheme{Kind: ByProperty, Property: "density"})
	assert.Equal(t, []string{"less", "equal", "greater", "unknown"}, keys(e.Legend()))
}

func TestParseScheme(t *testing.T) {
	cases := map[string]Scheme{
		"group":     {Kind: ByGroup},
		"by-state":  {Kind: ByState},
		"discovery": {Kind: ByDiscovery},
		"oxidation": {Kind: ByOxidation},
		"density":   {Kind: ByProperty, Property: "density"},
	}
	for in, want := range cases {
		got, err := ParseScheme(in)
		require.NoError(t, err, "input %q", in)
		assert.Equal(t, want, got, "input %q", in)
	}

	_, err := ParseScheme("discoverer") // non-numeric property
	assert.Error(t, err)
	_, err = ParseScheme("bogus")
	assert.Error(t, err)
}

package chem

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRangesPartitionAtomicNumbers(t *testing.T) {
	next := 1
	for _, r := range Ranges() {
		require.Equal(t, next, r.Min, "range for %s must start where the previous one ended", r.Orbital)
		require.Equal(t, r.Min+r.Orbital.Degeneracy()-1, r.Max)
		next = r.Max + 1
	}
	require.Equal(t, MaxZ+1, next, "ranges must cover exactly [1, MaxZ]")
}

func TestOrbitalOfCoversEveryElementOnce(t *testing.T) {
	for z := 1; z <= MaxZ; z++ {
		orb, ok := OrbitalOf(z)
		require.True(t, ok, "z=%d must resolve to an orbital", z)
		r, ok := RangeOf(orb)
		require.True(t, ok)
		assert.GreaterOrEqual(t, z, r.Min)
		assert.LessOrEqual(t, z, r.Max)
	}
}

func TestOrbitalOfKnownElements(t *testing.T) {
	cases := []struct {
		z    int
		want string
	}{
		{1, "1s"},
		{2, "1s"},
		{3, "2s"},
		{10, "2p"},
		{21, "3d"},
		{26, "3d"},
		{57, "4f"},
		{79, "5d"},
		{118, "7p"},
	}
	for _, tc := range cases {
		orb, ok := OrbitalOf(tc.z)
		require.True(t, ok)
		assert.Equal(t, tc.want, orb.String(), "z=%d", tc.z)
	}
}

func TestOrbitalOfRejectsOutOfRange(t *testing.T) {
	for _, z := range []int{0, -4, MaxZ + 1, 1000} {
		_, ok := OrbitalOf(z)
		assert.False(t, ok, "z=%d", z)
	}
}

func TestElectronConfigNaiveFilling(t *testing.T) {
	cases := []struct {
		z    int
		want string
	}{
		{1, "1s-1"},
		{2, "1s-2"},
		{3, "[He] 2s-1"},
		{8, "[He] 2s-2 2p-4"},
		{26, "[Ar] 4s-2 3d-6"},
		{54, "[Kr] 5s-2 4d-10 5p-6"},
	}
	for _, tc := range cases {
		got, ok := ElectronConfig(tc.z)
		require.True(t, ok)
		assert.Equal(t, tc.want, got, "z=%d", tc.z)
	}
}

func TestElectronConfigAppliesAufbauExceptions(t *testing.T) {
	got, ok := ElectronConfig(24)
	require.True(t, ok)
	assert.Equal(t, "[Ar] 4s-1 3d-5", got, "chromium must use the override, not naive filling")

	got, ok = ElectronConfig(29)
	require.True(t, ok)
	assert.Equal(t, "[Ar] 4s-1 3d-10", got)

	got, ok = ElectronConfig(46)
	require.True(t, ok)
	assert.Equal(t, "[Kr] 4d-10", got)
}

func TestElectronConfigRejectsOutOfRange(t *testing.T) {
	_, ok := ElectronConfig(0)
	assert.False(t, ok)
	_, ok = ElectronConfig(MaxZ + 1)
	assert.False(t, ok)
}

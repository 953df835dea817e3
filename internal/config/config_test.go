package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultIsValid(t *testing.T) {
	cfg := Default()
	require.NoError(t, cfg.Validate())
	assert.Equal(t, 2, cfg.ElementWidth)
	assert.Equal(t, "conventional", cfg.Convention)
	assert.Equal(t, "group", cfg.Scheme)
	assert.InDelta(t, 0.005, cfg.Epsilon, 1e-9)
}

func TestLoadMissingFileUsesDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestLoadMergesOverDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(
		"element_width: 3\nconvention: ordered\nexcluded_properties: [abundance]\n"), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 3, cfg.ElementWidth)
	assert.Equal(t, "ordered", cfg.Convention)
	assert.Equal(t, []string{"abundance"}, cfg.ExcludedProps)
	// Untouched options keep their defaults.
	assert.Equal(t, 1, cfg.ElementSeparation)
	assert.Equal(t, "group", cfg.Scheme)
}

func TestClampRepairsNumericOptions(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(
		"element_width: 1\nelement_separation: -4\nindentation: -1\nepsilon: -0.5\n"), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 2, cfg.ElementWidth)
	assert.Equal(t, 0, cfg.ElementSeparation)
	assert.Equal(t, 0, cfg.Indentation)
	assert.InDelta(t, 0.005, cfg.Epsilon, 1e-9)
}

func TestLoadRejectsBadConvention(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("convention: sideways\n"), 0o644))

	_, err := Load(path)
	assert.Error(t, err)
}

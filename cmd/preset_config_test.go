package cmd

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const presetsYAML = `presets:
  quick:
    count: 100
    print: true
    stats: false
  audit:
    count: 10000
    stats: true
    naive: true
`

func writePresetsFile(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "presets.yaml")
	require.NoError(t, os.WriteFile(path, []byte(presetsYAML), 0o644))
	return path
}

func TestGetRunPreset_KnownPreset(t *testing.T) {
	// GIVEN a presets file with a "quick" preset
	path := writePresetsFile(t)

	// WHEN the preset is looked up
	preset := GetRunPreset(path, "quick")

	// THEN its fields are populated from the YAML
	require.NotNil(t, preset)
	assert.Equal(t, int64(100), preset.Count)
	assert.True(t, preset.Print)
	assert.False(t, preset.Stats)
	assert.False(t, preset.Naive)
}

func TestGetRunPreset_NaiveVariantPreset(t *testing.T) {
	path := writePresetsFile(t)

	preset := GetRunPreset(path, "audit")

	require.NotNil(t, preset)
	assert.Equal(t, int64(10000), preset.Count)
	assert.True(t, preset.Stats)
	assert.True(t, preset.Naive)
}

func TestGetRunPreset_UnknownPreset_ReturnsNil(t *testing.T) {
	path := writePresetsFile(t)

	preset := GetRunPreset(path, "missing")

	assert.Nil(t, preset)
}

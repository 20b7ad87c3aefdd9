package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault(t *testing.T) {
	c := Default()

	assert.Equal(t, "data", c.DataDir)
	assert.False(t, c.Color)
	assert.Equal(t, 100_000, c.Days.Day7.SmallDirLimit)
	assert.Equal(t, 70_000_000, c.Days.Day7.DiskSize)
	assert.Equal(t, 30_000_000, c.Days.Day7.NeededSpace)
	assert.Equal(t, 20, c.Days.Day11.CalmRounds)
	assert.Equal(t, 10_000, c.Days.Day11.WorriedRounds)
	assert.Equal(t, 2_000_000, c.Days.Day15.Row)
	assert.Equal(t, 4_000_000, c.Days.Day15.SearchSize)
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "aoc.yaml")
	const doc = `data_dir: inputs
color: true
days:
  day15:
    row: 10
    search_size: 20
`
	require.NoError(t, os.WriteFile(path, []byte(doc), 0o644))

	c, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "inputs", c.DataDir)
	assert.True(t, c.Color)
	assert.Equal(t, 10, c.Days.Day15.Row)
	assert.Equal(t, 20, c.Days.Day15.SearchSize)
	// Unset values fall back to the defaults.
	assert.Equal(t, 20, c.Days.Day11.CalmRounds)
	assert.Equal(t, 100_000, c.Days.Day7.SmallDirLimit)
}

func TestLoadErrors(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.ErrorIs(t, err, os.ErrNotExist)

	path := filepath.Join(t.TempDir(), "bad.yaml")
	require.NoError(t, os.WriteFile(path, []byte("days: [1, 2"), 0o644))
	_, err = Load(path)
	assert.Error(t, err)
}

func TestLoadKeepsZeros(t *testing.T) {
	path := filepath.Join(t.TempDir(), "aoc.yaml")
	const doc = `data_dir: ""
days:
  day15:
    row: 0
`
	require.NoError(t, os.WriteFile(path, []byte(doc), 0o644))

	c, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, 0, c.Days.Day15.Row)
	assert.Equal(t, 4_000_000, c.Days.Day15.SearchSize)
	assert.Equal(t, "data", c.DataDir)
}

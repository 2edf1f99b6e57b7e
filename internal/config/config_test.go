// SPDX-License-Identifier: MIT

package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/labyrinth/internal/config"
	"github.com/katalvlaran/labyrinth/maze"
)

func TestDefault(t *testing.T) {
	cfg, err := config.Load("")
	require.NoError(t, err)
	assert.Equal(t, config.Default(), cfg)
	assert.Equal(t, maze.DefaultMarkers(), cfg.MazeMarkers())
	assert.Equal(t, "info", cfg.Logging.Level)
	assert.Equal(t, "all", cfg.Traverse.Strategy)
}

// TestParse_Overrides keeps defaults for omitted keys.
func TestParse_Overrides(t *testing.T) {
	cfg, err := config.Parse([]byte(`
logging:
  level: debug
  format: json
markers:
  wall: "#"
  open: "."
render:
  color: never
matrix:
  max_nodes: 0
`))
	require.NoError(t, err)

	assert.Equal(t, "debug", cfg.Logging.Level)
	assert.Equal(t, "json", cfg.Logging.Format)
	assert.Equal(t, maze.Markers{Wall: '#', Open: '.', Start: 'A', Goal: 'B'}, cfg.MazeMarkers())
	assert.Equal(t, "never", cfg.Render.Color)
	assert.Equal(t, "·", cfg.Render.PathGlyph)
	assert.Equal(t, 0, cfg.Matrix.MaxNodes)
}

func TestParse_Invalid(t *testing.T) {
	tests := map[string]string{
		"level":      "logging:\n  level: loud\n",
		"format":     "logging:\n  format: xml\n",
		"long glyph": "markers:\n  wall: \"##\"\n",
		"empty":      "markers:\n  goal: \"\"\n",
		"duplicate":  "markers:\n  start: \"B\"\n",
		"color":      "render:\n  color: sometimes\n",
		"strategy":   "traverse:\n  strategy: dijkstra\n",
		"max nodes":  "matrix:\n  max_nodes: -1\n",
	}
	for name, doc := range tests {
		t.Run(name, func(t *testing.T) {
			_, err := config.Parse([]byte(doc))
			assert.ErrorIs(t, err, config.ErrInvalid)
		})
	}

	_, err := config.Parse([]byte("logging: [unclosed"))
	assert.Error(t, err)
	assert.NotErrorIs(t, err, config.ErrInvalid)
}

func TestLoad_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "labyrinth.yaml")
	require.NoError(t, os.WriteFile(path, []byte("traverse:\n  strategy: greedy\n"), 0o644))

	cfg, err := config.Load(path)
	require.NoError(t, err)
	assert.Equal(t, "greedy", cfg.Traverse.Strategy)

	_, err = config.Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}

// TestMarshal_RoundTrip writes the defaults and reads them back.
func TestMarshal_RoundTrip(t *testing.T) {
	data, err := config.Default().Marshal()
	require.NoError(t, err)
	assert.Contains(t, string(data), "strategy: all")

	back, err := config.Parse(data)
	require.NoError(t, err)
	assert.Equal(t, config.Default(), back)
}

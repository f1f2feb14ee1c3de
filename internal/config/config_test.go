package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault(t *testing.T) {
	cfg := Default()
	require.NoError(t, cfg.Validate())
	assert.Equal(t, 10.0, cfg.RemoveRadius)
	assert.Equal(t, LabelsIDs, cfg.Render.Labels)
}

func TestLoad(t *testing.T) {
	t.Run("empty path gives defaults", func(t *testing.T) {
		cfg, err := Load("")
		require.NoError(t, err)
		assert.Equal(t, Default(), cfg)
	})

	t.Run("file overrides defaults", func(t *testing.T) {
		path := writeConfig(t, `
canvas:
  width: 1024
  clamp: true
remove_radius: 15
render:
  labels: names
  beams: false
`)
		cfg, err := Load(path)
		require.NoError(t, err)
		assert.Equal(t, 1024.0, cfg.Canvas.Width)
		assert.Equal(t, 600.0, cfg.Canvas.Height, "unset keys keep their default")
		assert.True(t, cfg.Canvas.Clamp)
		assert.Equal(t, 15.0, cfg.RemoveRadius)
		assert.Equal(t, LabelsNames, cfg.Render.Labels)
		assert.False(t, cfg.Render.Beams)
		assert.True(t, cfg.Render.Intersections)
	})

	t.Run("invalid values", func(t *testing.T) {
		for name, body := range map[string]string{
			"negative radius": "remove_radius: -1",
			"zero width":      "canvas:\n  width: 0",
			"bad labels":      "render:\n  labels: emoji",
			"zero scale":      "render:\n  scale: 0",
		} {
			_, err := Load(writeConfig(t, body))
			assert.Error(t, err, name)
		}
	})

	t.Run("malformed yaml", func(t *testing.T) {
		_, err := Load(writeConfig(t, "canvas: [1, 2"))
		assert.Error(t, err)
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
		assert.Error(t, err)
	})
}

func TestCanvasApply(t *testing.T) {
	canvas := Canvas{Width: 100, Height: 50}
	x, y := canvas.Apply(-5, 70)
	assert.Equal(t, -5.0, x)
	assert.Equal(t, 70.0, y)

	canvas.Clamp = true
	x, y = canvas.Apply(-5, 70)
	assert.Equal(t, 0.0, x)
	assert.Equal(t, 50.0, y)
	x, y = canvas.Apply(30, 20)
	assert.Equal(t, 30.0, x)
	assert.Equal(t, 20.0, y)
}

// Helpers

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "securezone.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

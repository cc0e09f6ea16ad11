package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaults(t *testing.T) {
	t.Setenv("MAZE_WIDTH", "400")
	t.Setenv("MAZE_TILE", "40")
	t.Setenv("MAZE_FPS", "not-a-number")
	t.Setenv("MAZE_ADDR", ":9090")

	cfg := Defaults()
	assert.Equal(t, 400, cfg.Width)
	assert.Equal(t, 640, cfg.Height)
	assert.Equal(t, 40, cfg.Tile)
	assert.Equal(t, 120, cfg.FPS, "malformed value falls back to default")
	assert.Equal(t, ":9090", cfg.Addr)
	assert.Equal(t, 10, cfg.Cols())
	assert.Equal(t, 16, cfg.Rows())
	assert.NoError(t, cfg.Validate())
}

func TestValidate(t *testing.T) {
	valid := Config{Width: 360, Height: 640, Tile: 20, FPS: 60}
	require.NoError(t, valid.Validate())
	assert.Equal(t, 18, valid.Cols())
	assert.Equal(t, 32, valid.Rows())

	t.Run("uneven", func(t *testing.T) {
		cfg := valid
		cfg.Width = 365
		err := cfg.Validate()
		assert.ErrorIs(t, err, ErrUneven)
	})

	t.Run("all problems reported", func(t *testing.T) {
		cfg := Config{Width: 0, Height: -5, Tile: 0, FPS: 0}
		err := cfg.Validate()
		require.Error(t, err)
		for _, want := range []string{"width", "height", "tile", "fps"} {
			assert.Contains(t, err.Error(), want)
		}
	})
}

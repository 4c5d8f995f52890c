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
	assert.Equal(t, [3]float32{0, 4, 25}, cfg.Camera.Position)
	assert.Equal(t, float32(-90), cfg.Camera.Yaw)
	assert.InDelta(t, 640.0/480.0, cfg.Window.Aspect(), 1e-6)
}

func TestLoadOverlaysDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join("testdata", "partial.toml"))
	require.NoError(t, err)

	assert.Equal(t, 1280, cfg.Window.Width)
	assert.Equal(t, "Sushi", cfg.Window.Title)
	assert.Equal(t, float32(60), cfg.Camera.FOV)
	assert.Equal(t, float32(10.5), cfg.Camera.MoveSpeed)
	assert.True(t, cfg.Camera.WorldVertical)
	assert.True(t, cfg.Render.Lighting)

	// untouched keys keep defaults
	assert.Equal(t, float32(0.5), cfg.Camera.Sensitivity)
	assert.Equal(t, float32(100), cfg.Camera.Far)
	assert.Equal(t, "scenes/restaurant.yaml", cfg.Assets.Scene)
}

func TestLoadErrors(t *testing.T) {
	_, err := Load(filepath.Join("testdata", "missing.toml"))
	assert.Error(t, err)

	_, err = Load(filepath.Join("testdata", "broken.toml"))
	assert.Error(t, err)

	_, err = Load(filepath.Join("testdata", "bad_projection.toml"))
	assert.ErrorIs(t, err, ErrInvalid)
}

func TestValidate(t *testing.T) {
	mutate := []func(*Config){
		func(c *Config) { c.Window.Width = 0 },
		func(c *Config) { c.Camera.FOV = 180 },
		func(c *Config) { c.Camera.Near = 0 },
		func(c *Config) { c.Camera.MoveSpeed = -1 },
		func(c *Config) { c.Camera.Sensitivity = 0 },
		func(c *Config) { c.Assets.Scene = "" },
	}
	for i, m := range mutate {
		cfg := Default()
		m(&cfg)
		assert.ErrorIs(t, cfg.Validate(), ErrInvalid, "case %d", i)
	}
}

func TestEncodeRoundTrip(t *testing.T) {
	data, err := Encode(Default())
	require.NoError(t, err)
	assert.Contains(t, string(data), "move_speed")

	path := filepath.Join(t.TempDir(), "restaurant.toml")
	require.NoError(t, os.WriteFile(path, data, 0o644))
	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestFPSLimitClamp(t *testing.T) {
	defer SetFPSLimit(GetFPSLimit())

	SetFPSLimit(-5)
	assert.Equal(t, 0, GetFPSLimit())
	SetFPSLimit(3)
	assert.Equal(t, 15, GetFPSLimit())
	SetFPSLimit(5000)
	assert.Equal(t, 1000, GetFPSLimit())
	SetFPSLimit(144)
	assert.Equal(t, 144, GetFPSLimit())
}

func TestApply(t *testing.T) {
	defer SetFPSLimit(GetFPSLimit())
	defer SetLighting(GetLighting())

	cfg := Default()
	cfg.Render.FPSLimit = 60
	cfg.Render.Lighting = true
	Apply(cfg)
	assert.Equal(t, 60, GetFPSLimit())
	assert.True(t, GetLighting())
}

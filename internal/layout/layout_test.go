package layout

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"restaurant-gl/internal/scene"
)

const eps = 1e-5

func TestLoadSmall(t *testing.T) {
	l, err := Load("testdata/small.yaml")
	require.NoError(t, err)

	assert.Equal(t, []string{"box", "lamp"}, l.MeshNames())
	assert.Equal(t, []string{"wood"}, l.TextureNames())
	assert.Equal(t, mgl32.Vec3{1, 2, 3}, l.LightPosition())
	assert.Equal(t, mgl32.Vec3{1, 1, 1}, l.LightColor(), "color defaults to white")

	ins, err := l.Instances(nil)
	require.NoError(t, err)
	require.Len(t, ins, 3)

	assert.Equal(t, "crate[0]", ins[0].Name)
	assert.Equal(t, "crate[1]", ins[1].Name)
	assert.Equal(t, "bulb", ins[2].Name)

	// scale 2, quarter turn: local +x lands on -z, doubled, then moved to (1,0,0)
	p := mgl32.TransformCoordinate(mgl32.Vec3{1, 0, 0}, ins[0].Model(0))
	assert.InDelta(t, 1, p[0], eps)
	assert.InDelta(t, 0, p[1], eps)
	assert.InDelta(t, -2, p[2], eps)

	bulb := ins[2]
	assert.True(t, bulb.Flat)
	assert.Empty(t, bulb.Texture)
	assert.Equal(t, mgl32.Vec3{1, 0.5, 0}, bulb.Color)
	require.IsType(t, scene.Combined{}, bulb.Animation)

	// quarter period of a 1 Hz bob: full amplitude
	c := mgl32.TransformCoordinate(mgl32.Vec3{}, bulb.Model(0.25))
	assert.InDelta(t, 5.5, c[1], eps)
}

func TestGridPlacement(t *testing.T) {
	l, err := Parse([]byte(`
meshes: {box: b}
textures: {wood: w}
objects:
  - mesh: box
    texture: wood
    at: [[9, 9, 9]]
    grid: {origin: [0, 0, 0], count: [2, 1, 2], spacing: [10, 0, 5]}
`))
	require.NoError(t, err)
	ins, err := l.Instances(nil)
	require.NoError(t, err)
	require.Len(t, ins, 5)

	want := []mgl32.Vec3{{9, 9, 9}, {0, 0, 0}, {10, 0, 0}, {0, 0, 5}, {10, 0, 5}}
	for i, w := range want {
		got := mgl32.TransformCoordinate(mgl32.Vec3{}, ins[i].Model(0))
		assert.InDelta(t, w[0], got[0], eps)
		assert.InDelta(t, w[2], got[2], eps)
	}
	assert.Equal(t, "objects[0][4]", ins[4].Name)
	assert.Nil(t, ins[0].Animation)
}

func TestDefaultTexture(t *testing.T) {
	l, err := Parse([]byte(`
meshes: {box: b}
textures: {wood: w}
objects:
  - {mesh: box, at: [[0, 0, 0]]}
`))
	require.NoError(t, err)

	_, err = l.Instances(nil)
	assert.ErrorIs(t, err, ErrUnknownTexture)

	ins, err := l.Instances(map[string]string{"box": "wood"})
	require.NoError(t, err)
	assert.Equal(t, "wood", ins[0].Texture)
}

func TestInstanceErrors(t *testing.T) {
	cases := map[string]struct {
		doc  string
		want error
	}{
		"unknown mesh": {`
meshes: {box: b}
textures: {wood: w}
objects: [{name: x, mesh: ball, texture: wood, at: [[0, 0, 0]]}]`, ErrUnknownMesh},
		"unknown texture": {`
meshes: {box: b}
textures: {wood: w}
objects: [{name: x, mesh: box, texture: steel, at: [[0, 0, 0]]}]`, ErrUnknownTexture},
		"no placement": {`
meshes: {box: b}
textures: {wood: w}
objects: [{name: x, mesh: box, texture: wood}]`, ErrNoPlacement},
		"empty grid": {`
meshes: {box: b}
textures: {wood: w}
objects: [{name: x, mesh: box, texture: wood, grid: {count: [0, 1, 1]}}]`, ErrNoPlacement},
	}
	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			l, err := Parse([]byte(tc.doc))
			require.NoError(t, err)
			_, err = l.Instances(nil)
			assert.ErrorIs(t, err, tc.want)
			assert.Contains(t, err.Error(), "x")
		})
	}
}

func TestLoadErrors(t *testing.T) {
	_, err := Load("testdata/missing.yaml")
	assert.Error(t, err)

	_, err = Load("testdata/broken.yaml")
	assert.Error(t, err)
}

func TestRestaurantLayout(t *testing.T) {
	l, err := Load("../../assets/scenes/restaurant.yaml")
	require.NoError(t, err)

	ins, err := l.Instances(map[string]string{"sushi": "sushi"})
	require.NoError(t, err)
	assert.Len(t, ins, 38)

	for _, in := range ins {
		_, ok := l.Meshes[in.Mesh]
		assert.True(t, ok, in.Name)
		if !in.Flat {
			_, ok = l.Textures[in.Texture]
			assert.True(t, ok, in.Name)
		}
	}
	assert.Equal(t, mgl32.Vec3{0, 10, 0}, l.LightPosition())
}

func TestWatcherSeesWrite(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "scene.yaml")
	require.NoError(t, os.WriteFile(path, []byte("objects: []\n"), 0o644))

	w, err := Watch(path)
	require.NoError(t, err)
	defer w.Close()
	assert.False(t, w.Poll())

	require.NoError(t, os.WriteFile(filepath.Join(dir, "other.yaml"), []byte("x: 1\n"), 0o644))
	require.NoError(t, os.WriteFile(path, []byte("objects: [{}]\n"), 0o644))

	select {
	case <-w.Changed():
	case <-time.After(5 * time.Second):
		t.Fatal("no change event")
	}
}

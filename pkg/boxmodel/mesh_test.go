package boxmodel

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const eps = 1e-5

func vertexAt(v []float32, i int) (pos, normal mgl32.Vec3, uv [2]float32) {
	b := v[i*FloatsPerVertex:]
	return mgl32.Vec3{b[0], b[1], b[2]}, mgl32.Vec3{b[5], b[6], b[7]}, [2]float32{b[3], b[4]}
}

func TestUnitCubeVertices(t *testing.T) {
	m := &Model{Elements: []Element{{From: [3]float32{0, 0, 0}, To: [3]float32{1, 1, 1}}}}
	v := m.Vertices()
	require.Len(t, v, 36*FloatsPerVertex)
	assert.Equal(t, int32(36), m.VertexCount())

	for i := 0; i < 36; i++ {
		pos, n, uv := vertexAt(v, i)
		for k := 0; k < 3; k++ {
			assert.True(t, pos[k] == 0 || pos[k] == 1)
		}
		assert.InDelta(t, 1, n.Len(), eps)
		assert.True(t, uv[0] >= 0 && uv[0] <= 1)
	}
}

// Every triangle winds counter-clockwise around its own normal.
func TestWindingMatchesNormal(t *testing.T) {
	m := &Model{Elements: []Element{{From: [3]float32{-1, 0, -2}, To: [3]float32{1, 3, 2}}}}
	v := m.Vertices()
	for tri := 0; tri < len(v)/FloatsPerVertex/3; tri++ {
		a, n, _ := vertexAt(v, tri*3)
		b, _, _ := vertexAt(v, tri*3+1)
		c, _, _ := vertexAt(v, tri*3+2)
		geo := b.Sub(a).Cross(c.Sub(a)).Normalize()
		assert.InDelta(t, 1, geo.Dot(n), eps, "triangle %d", tri)
	}
}

func TestFacesSubsetAndUnit(t *testing.T) {
	l := NewLoader("testdata")
	m, err := l.LoadModel("slab")
	require.NoError(t, err)

	v := m.Vertices()
	assert.Equal(t, int32(12), m.VertexCount())
	require.Len(t, v, 12*FloatsPerVertex)

	// up face comes before north in emission order
	pos, n, _ := vertexAt(v, 0)
	assert.InDelta(t, 0.5, pos[1], eps)
	assert.Equal(t, mgl32.Vec3{0, 1, 0}, n)

	_, n, uv := vertexAt(v, 6)
	assert.Equal(t, mgl32.Vec3{0, 0, -1}, n)
	assert.InDelta(t, 1, uv[1], eps, "lower edge samples v1")
}

func TestElementRotation(t *testing.T) {
	l := NewLoader("testdata")
	m, err := l.LoadModel("turned")
	require.NoError(t, err)

	v := m.Vertices()
	require.Len(t, v, 6*FloatsPerVertex)
	for i := 0; i < 6; i++ {
		pos, n, _ := vertexAt(v, i)
		// the east face at x=2 turns 90 degrees about y onto z=-2
		assert.InDelta(t, -2, pos[2], eps)
		assert.InDelta(t, 0, n[0], eps)
		assert.InDelta(t, -1, n[2], eps)
	}
}

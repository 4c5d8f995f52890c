package text

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultAtlas(t *testing.T) {
	a, err := DefaultAtlas(16)
	require.NoError(t, err)

	assert.Len(t, a.Glyphs, int(lastRune-firstRune+1))
	assert.Equal(t, atlasWidth, a.Image.Bounds().Dx())

	space := a.Glyphs[' ']
	assert.Zero(t, space.Width)
	assert.Positive(t, space.Advance)

	g := a.Glyphs['M']
	assert.Positive(t, g.Width)
	assert.Positive(t, g.BearingY, "capital sits above the baseline")

	// some ink landed in the atlas
	var ink int
	for _, p := range a.Image.Pix {
		if p > 0 {
			ink++
		}
	}
	assert.Positive(t, ink)
}

func TestBuildAtlasErrors(t *testing.T) {
	_, err := BuildAtlas([]byte("not a font"), 16)
	assert.Error(t, err)

	_, err = DefaultAtlas(0)
	assert.Error(t, err)
}

func TestMeasureAndQuads(t *testing.T) {
	a, err := DefaultAtlas(20)
	require.NoError(t, err)

	w1, h1 := a.Measure("FPS", 1)
	w2, h2 := a.Measure("FPS", 2)
	assert.InDelta(t, 2*w1, w2, 1e-4)
	assert.InDelta(t, 2*h1, h2, 1e-4)

	q := a.Quads("a b", 10, 30, 1)
	assert.Len(t, q, 2*FloatsPerGlyph, "space emits no quad")

	// second glyph starts after two advances
	wantX := 10 + float32(a.Glyphs['a'].Advance+a.Glyphs[' '].Advance) + a.Glyphs['b'].BearingX
	assert.InDelta(t, wantX, q[FloatsPerGlyph], 1e-4)

	for i := 0; i < len(q); i += 4 {
		assert.True(t, q[i+2] >= 0 && q[i+2] <= 1, "u in range")
		assert.True(t, q[i+3] >= 0 && q[i+3] <= 1, "v in range")
	}

	// unknown rune advances like a space
	wUnknown, _ := a.Measure("é", 1)
	wSpace, _ := a.Measure(" ", 1)
	assert.Equal(t, wSpace, wUnknown)
	assert.Empty(t, a.Quads("é", 0, 0, 1))
}

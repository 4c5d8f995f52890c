package assets

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/image/webp"
)

func gradient(w, h int) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.SetRGBA(x, y, color.RGBA{uint8(x * 10), uint8(y * 10), 99, 255})
		}
	}
	return img
}

func TestDecodePNG(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, gradient(4, 3)))

	img, err := DecodeImage(&buf)
	require.NoError(t, err)
	assert.Equal(t, image.Rect(0, 0, 4, 3), img.Bounds())
	assert.Equal(t, color.RGBA{30, 20, 99, 255}, img.RGBAAt(3, 2))
}

func TestDecodeRejectsGarbage(t *testing.T) {
	_, err := DecodeImage(strings.NewReader("not an image"))
	assert.Error(t, err)
}

func TestLoadShippedTextures(t *testing.T) {
	paths, err := filepath.Glob("../../assets/textures/*")
	require.NoError(t, err)
	require.NotEmpty(t, paths)
	for _, p := range paths {
		img, err := LoadImage(p)
		if assert.NoError(t, err, p) {
			assert.False(t, img.Bounds().Empty(), p)
		}
	}

	_, err = LoadImage("../../assets/textures/missing.png")
	assert.Error(t, err)
}

func TestToRGBAShiftsOrigin(t *testing.T) {
	src := gradient(6, 6).SubImage(image.Rect(2, 2, 5, 4))
	out := ToRGBA(src)
	assert.Equal(t, image.Rect(0, 0, 3, 2), out.Bounds())
	assert.Equal(t, color.RGBA{20, 20, 99, 255}, out.RGBAAt(0, 0))
}

func TestFlipVertical(t *testing.T) {
	img := gradient(2, 3)
	FlipVertical(img)
	assert.Equal(t, uint8(20), img.RGBAAt(0, 0).G)
	assert.Equal(t, uint8(10), img.RGBAAt(0, 1).G)
	assert.Equal(t, uint8(0), img.RGBAAt(1, 2).G)
}

func TestWebPLossless(t *testing.T) {
	src := gradient(8, 5)
	var buf bytes.Buffer
	require.NoError(t, EncodeWebP(&buf, src))

	back, err := webp.Decode(&buf)
	require.NoError(t, err)
	got := ToRGBA(back)
	assert.Equal(t, src.Pix, got.Pix)
}

func TestEncodeEmpty(t *testing.T) {
	var buf bytes.Buffer
	err := EncodeWebP(&buf, image.NewRGBA(image.Rect(0, 0, 0, 0)))
	assert.ErrorIs(t, err, ErrEmptyImage)
}

func TestSaveScreenshot(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "shots")
	at := time.Date(2024, 3, 1, 12, 30, 5, 0, time.UTC)

	path, err := SaveScreenshot(dir, gradient(4, 4), at)
	require.NoError(t, err)
	assert.Equal(t, "shot-20240301-123005.000.webp", filepath.Base(path))

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Positive(t, info.Size())
}

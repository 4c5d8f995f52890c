package assets

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	"image/draw"
	_ "image/jpeg"
	_ "image/png"
	"io"
	"os"

	_ "github.com/ftrvxmtrx/tga"
	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/webp"
)

var ErrEmptyImage = errors.New("assets: empty image")

// LoadImage reads a texture file in any registered format (png, jpeg, bmp,
// webp, tga) and returns it as RGBA, top row first.
func LoadImage(path string) (*image.RGBA, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("assets: read %s: %w", path, err)
	}
	img, err := DecodeImage(bytes.NewReader(raw))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return img, nil
}

func DecodeImage(r io.Reader) (*image.RGBA, error) {
	img, format, err := image.Decode(r)
	if err != nil {
		return nil, fmt.Errorf("assets: decode: %w", err)
	}
	if img.Bounds().Empty() {
		return nil, fmt.Errorf("%w (%s)", ErrEmptyImage, format)
	}
	return ToRGBA(img), nil
}

// ToRGBA returns src as an RGBA image whose bounds start at the origin.
func ToRGBA(src image.Image) *image.RGBA {
	b := src.Bounds()
	if rgba, ok := src.(*image.RGBA); ok && b.Min == (image.Point{}) {
		return rgba
	}
	dst := image.NewRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
	draw.Draw(dst, dst.Bounds(), src, b.Min, draw.Src)
	return dst
}

// FlipVertical reverses the row order in place. glReadPixels returns the
// bottom row first.
func FlipVertical(img *image.RGBA) {
	h := img.Bounds().Dy()
	row := make([]byte, img.Stride)
	for y := 0; y < h/2; y++ {
		top := img.Pix[y*img.Stride : (y+1)*img.Stride]
		bottom := img.Pix[(h-1-y)*img.Stride : (h-y)*img.Stride]
		copy(row, top)
		copy(top, bottom)
		copy(bottom, row)
	}
}

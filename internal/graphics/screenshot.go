package graphics

import (
	"image"

	"github.com/go-gl/gl/v4.1-core/gl"

	"restaurant-gl/internal/assets"
)

// ReadFramebuffer copies the back buffer into an image, top row first.
func ReadFramebuffer(width, height int) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	if width == 0 || height == 0 {
		return img
	}
	gl.PixelStorei(gl.PACK_ALIGNMENT, 1)
	gl.ReadBuffer(gl.BACK)
	gl.ReadPixels(0, 0, int32(width), int32(height), gl.RGBA, gl.UNSIGNED_BYTE, gl.Ptr(img.Pix))
	assets.FlipVertical(img)
	return img
}

package graphics

import (
	"image"
	"sync"

	"github.com/go-gl/gl/v4.1-core/gl"

	"restaurant-gl/internal/assets"
)

// UploadTexture creates a repeating, mipmapped 2D texture from img. Row 0 of
// the image lands at t=0.
func UploadTexture(img *image.RGBA) uint32 {
	var texture uint32
	gl.GenTextures(1, &texture)
	gl.BindTexture(gl.TEXTURE_2D, texture)

	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_S, gl.REPEAT)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_T, gl.REPEAT)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MIN_FILTER, gl.LINEAR_MIPMAP_LINEAR)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MAG_FILTER, gl.NEAREST)

	gl.PixelStorei(gl.UNPACK_ALIGNMENT, 4)
	gl.TexImage2D(
		gl.TEXTURE_2D,
		0,
		gl.RGBA,
		int32(img.Rect.Size().X),
		int32(img.Rect.Size().Y),
		0,
		gl.RGBA,
		gl.UNSIGNED_BYTE,
		gl.Ptr(img.Pix),
	)
	gl.GenerateMipmap(gl.TEXTURE_2D)

	gl.BindTexture(gl.TEXTURE_2D, 0)
	return texture
}

// TextureCache uploads each image path once. Scene reloads reuse it so only
// new files hit the disk.
type TextureCache struct {
	mu       sync.RWMutex
	textures map[string]uint32
}

func NewTextureCache() *TextureCache {
	return &TextureCache{textures: make(map[string]uint32)}
}

// Get returns a cached texture ID for the given path, loading it on first use.
func (c *TextureCache) Get(path string) (uint32, error) {
	c.mu.RLock()
	if tex, ok := c.textures[path]; ok {
		c.mu.RUnlock()
		return tex, nil
	}
	c.mu.RUnlock()

	c.mu.Lock()
	defer c.mu.Unlock()

	// Double check locking
	if tex, ok := c.textures[path]; ok {
		return tex, nil
	}

	img, err := assets.LoadImage(path)
	if err != nil {
		return 0, err
	}
	tex := UploadTexture(img)
	c.textures[path] = tex
	return tex, nil
}

func (c *TextureCache) Dispose() {
	c.mu.Lock()
	defer c.mu.Unlock()
	for path, tex := range c.textures {
		gl.DeleteTextures(1, &tex)
		delete(c.textures, path)
	}
}

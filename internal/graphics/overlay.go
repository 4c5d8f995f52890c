package graphics

import (
	"fmt"
	"path/filepath"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/mathgl/mgl32"

	"restaurant-gl/internal/text"
)

const (
	TextVertShader = "text.vert"
	TextFragShader = "text.frag"
)

// Overlay draws status lines in window pixel coordinates on top of the scene.
type Overlay struct {
	atlas      *text.Atlas
	shader     *Shader
	texture    uint32
	projection mgl32.Mat4
	vao        uint32
	vbo        uint32
}

func NewOverlay(shaderDir string, atlas *text.Atlas, width, height int) (*Overlay, error) {
	if atlas == nil || len(atlas.Glyphs) == 0 {
		return nil, fmt.Errorf("invalid font atlas")
	}
	shader, err := NewShader(
		filepath.Join(shaderDir, TextVertShader),
		filepath.Join(shaderDir, TextFragShader),
	)
	if err != nil {
		return nil, err
	}
	o := &Overlay{atlas: atlas, shader: shader}
	o.SetViewport(width, height)
	o.initGL()
	return o, nil
}

func (o *Overlay) initGL() {
	b := o.atlas.Image.Bounds()
	gl.GenTextures(1, &o.texture)
	gl.ActiveTexture(gl.TEXTURE0)
	gl.BindTexture(gl.TEXTURE_2D, o.texture)
	// Ensure tight byte alignment for single-channel upload
	gl.PixelStorei(gl.UNPACK_ALIGNMENT, 1)
	gl.TexImage2D(gl.TEXTURE_2D, 0, gl.RED, int32(b.Dx()), int32(b.Dy()), 0, gl.RED, gl.UNSIGNED_BYTE, gl.Ptr(o.atlas.Image.Pix))
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_S, gl.CLAMP_TO_EDGE)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_T, gl.CLAMP_TO_EDGE)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MIN_FILTER, gl.LINEAR)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MAG_FILTER, gl.LINEAR)
	gl.PixelStorei(gl.UNPACK_ALIGNMENT, 4)

	gl.GenVertexArrays(1, &o.vao)
	gl.GenBuffers(1, &o.vbo)
	gl.BindVertexArray(o.vao)
	gl.BindBuffer(gl.ARRAY_BUFFER, o.vbo)
	gl.EnableVertexAttribArray(0)
	gl.VertexAttribPointerWithOffset(0, 4, gl.FLOAT, false, 4*4, 0)
	gl.BindBuffer(gl.ARRAY_BUFFER, 0)
	gl.BindVertexArray(0)
}

// SetViewport takes the window size in screen coordinates.
func (o *Overlay) SetViewport(width, height int) {
	o.projection = mgl32.Ortho(0, float32(width), float32(height), 0, -1, 1)
}

// RenderLines draws lines top-down from (x, yStart), lineStep pixels apart.
func (o *Overlay) RenderLines(lines []string, x, yStart, lineStep, scale float32, color mgl32.Vec3) {
	vertices := make([]float32, 0, 64*text.FloatsPerGlyph)
	y := yStart
	for _, line := range lines {
		vertices = append(vertices, o.atlas.Quads(line, x, y, scale)...)
		y += lineStep
	}
	if len(vertices) == 0 {
		return
	}

	gl.Disable(gl.DEPTH_TEST)
	gl.Disable(gl.CULL_FACE)
	gl.Enable(gl.BLEND)
	gl.BlendFunc(gl.SRC_ALPHA, gl.ONE_MINUS_SRC_ALPHA)

	o.shader.Use()
	o.shader.SetVector3("textColor", color)
	o.shader.SetMatrix4("projection", o.projection)
	o.shader.SetInt("text", 0)

	gl.ActiveTexture(gl.TEXTURE0)
	gl.BindTexture(gl.TEXTURE_2D, o.texture)
	gl.BindVertexArray(o.vao)
	gl.BindBuffer(gl.ARRAY_BUFFER, o.vbo)

	// orphan, then fill
	size := len(vertices) * 4
	gl.BufferData(gl.ARRAY_BUFFER, size, nil, gl.DYNAMIC_DRAW)
	gl.BufferSubData(gl.ARRAY_BUFFER, 0, size, gl.Ptr(vertices))
	gl.DrawArrays(gl.TRIANGLES, 0, int32(len(vertices)/4))

	gl.Disable(gl.BLEND)
}

// Measure returns the size of s in pixels at scale.
func (o *Overlay) Measure(s string, scale float32) (float32, float32) {
	return o.atlas.Measure(s, scale)
}

func (o *Overlay) Dispose() {
	gl.DeleteBuffers(1, &o.vbo)
	gl.DeleteVertexArrays(1, &o.vao)
	gl.DeleteTextures(1, &o.texture)
	o.shader.Delete()
}

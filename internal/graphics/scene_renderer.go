package graphics

import (
	"errors"
	"path/filepath"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/mathgl/mgl32"

	"restaurant-gl/internal/scene"
)

var ErrShader = errors.New("graphics: shader")

// Shader file names inside the configured shader dir
const (
	SceneVertShader = "scene.vert"
	SceneFragShader = "scene.frag"

	samplerUniform = "texture_sampler"
)

// SceneRenderer carries out a scene.Composer draw sequence on the current GL
// context. Mesh and texture handles are GL object names.
type SceneRenderer struct {
	shader *Shader
	clear  mgl32.Vec3
}

var _ scene.Renderer = (*SceneRenderer)(nil)

func NewSceneRenderer(shaderDir string, clear mgl32.Vec3) (*SceneRenderer, error) {
	shader, err := NewShader(
		filepath.Join(shaderDir, SceneVertShader),
		filepath.Join(shaderDir, SceneFragShader),
	)
	if err != nil {
		return nil, err
	}
	shader.Use()
	shader.SetInt(samplerUniform, 0)
	return &SceneRenderer{shader: shader, clear: clear}, nil
}

// Begin clears the frame and restores the 3D state the overlay turns off.
func (r *SceneRenderer) Begin() {
	gl.Enable(gl.DEPTH_TEST)
	// box models emit CCW front faces
	gl.Enable(gl.CULL_FACE)
	gl.CullFace(gl.BACK)
	gl.FrontFace(gl.CCW)

	gl.ClearColor(r.clear[0], r.clear[1], r.clear[2], 1.0)
	gl.Clear(gl.COLOR_BUFFER_BIT | gl.DEPTH_BUFFER_BIT)

	r.shader.Use()
	gl.ActiveTexture(gl.TEXTURE0)
}

// Viewport sets the GL viewport in framebuffer pixels.
func (r *SceneRenderer) Viewport(width, height int) {
	gl.Viewport(0, 0, int32(width), int32(height))
}

func (r *SceneRenderer) BindMesh(h scene.MeshHandle) {
	gl.BindVertexArray(uint32(h))
}

func (r *SceneRenderer) BindTexture(h scene.TextureHandle) {
	gl.BindTexture(gl.TEXTURE_2D, uint32(h))
}

func (r *SceneRenderer) SetUniformMat4(name string, m mgl32.Mat4) {
	r.shader.SetMatrix4(name, m)
}

func (r *SceneRenderer) SetUniformInt(name string, v int32) {
	r.shader.SetInt(name, v)
}

func (r *SceneRenderer) SetUniformVec3(name string, v mgl32.Vec3) {
	r.shader.SetVector3(name, v)
}

func (r *SceneRenderer) Draw(count int32) {
	gl.DrawArrays(gl.TRIANGLES, 0, count)
}

func (r *SceneRenderer) Dispose() {
	gl.BindVertexArray(0)
	r.shader.Delete()
}

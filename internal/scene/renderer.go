package scene

import "github.com/go-gl/mathgl/mgl32"

// Uniform names shared with assets/shaders/scene.
const (
	UniformModel       = "model"
	UniformView        = "view"
	UniformProjection  = "projection"
	UniformMVP         = "mvp"
	UniformShading     = "shading"
	UniformObjectColor = "objectColor"
	UniformLighting    = "lighting"
	UniformLightPos    = "lightPos"
	UniformLightColor  = "lightColor"
)

// Shading modes written to UniformShading.
const (
	ShadingTextured int32 = 0
	ShadingFlat     int32 = 1
)

// Renderer receives the draw sequence for a frame. Matrices are mgl32
// column-major and implementations upload them untransposed.
type Renderer interface {
	BindMesh(h MeshHandle)
	BindTexture(h TextureHandle)
	SetUniformMat4(name string, m mgl32.Mat4)
	SetUniformInt(name string, v int32)
	SetUniformVec3(name string, v mgl32.Vec3)
	Draw(count int32)
}

// Viewer supplies the view matrix for a frame.
type Viewer interface {
	ViewMatrix() mgl32.Mat4
}

package scene

import (
	"errors"
	"fmt"

	"github.com/go-gl/mathgl/mgl32"
)

var ErrInvalidProjection = errors.New("scene: invalid projection")

// Composer turns a scene and a viewer into the per-frame draw sequence.
// The projection is cached between resizes; it is only touched from the
// render thread.
type Composer struct {
	projection mgl32.Mat4

	lighting   bool
	lightPos   mgl32.Vec3
	lightColor mgl32.Vec3
}

// NewComposer returns a composer with a validated perspective projection.
func NewComposer(fovDeg, aspect, near, far float32) (*Composer, error) {
	c := &Composer{
		lightPos:   mgl32.Vec3{0, 10, 0},
		lightColor: mgl32.Vec3{1, 1, 1},
	}
	if err := c.SetProjection(fovDeg, aspect, near, far); err != nil {
		return nil, err
	}
	return c, nil
}

// SetProjection replaces the projection with a perspective one. On error the
// previous projection is kept.
func (c *Composer) SetProjection(fovDeg, aspect, near, far float32) error {
	switch {
	case fovDeg <= 0 || fovDeg >= 180:
		return fmt.Errorf("%w: fov %v", ErrInvalidProjection, fovDeg)
	case aspect <= 0:
		return fmt.Errorf("%w: aspect %v", ErrInvalidProjection, aspect)
	case near <= 0 || near >= far:
		return fmt.Errorf("%w: near %v far %v", ErrInvalidProjection, near, far)
	}
	c.projection = mgl32.Perspective(mgl32.DegToRad(fovDeg), aspect, near, far)
	return nil
}

// SetOrthographic replaces the projection with an orthographic one.
func (c *Composer) SetOrthographic(left, right, bottom, top, near, far float32) error {
	if left == right || bottom == top || near == far {
		return fmt.Errorf("%w: ortho %v %v %v %v %v %v", ErrInvalidProjection, left, right, bottom, top, near, far)
	}
	c.projection = mgl32.Ortho(left, right, bottom, top, near, far)
	return nil
}

func (c *Composer) Projection() mgl32.Mat4 { return c.projection }

func (c *Composer) SetLighting(on bool) { c.lighting = on }
func (c *Composer) Lighting() bool      { return c.lighting }

// SetLight places the point light used when lighting is on.
func (c *Composer) SetLight(pos, color mgl32.Vec3) {
	c.lightPos = pos
	c.lightColor = color
}

// RenderFrame issues the draw sequence for every instance of s, in order.
func (c *Composer) RenderFrame(v Viewer, s *Scene, r Renderer) {
	view := v.ViewMatrix()
	viewProj := c.projection.Mul4(view)

	r.SetUniformMat4(UniformView, view)
	r.SetUniformMat4(UniformProjection, c.projection)
	r.SetUniformInt(UniformLighting, boolToInt(c.lighting))
	r.SetUniformVec3(UniformLightPos, c.lightPos)
	r.SetUniformVec3(UniformLightColor, c.lightColor)

	for i := range s.items {
		item := &s.items[i]
		model := item.instance.Model(s.clock)

		r.BindMesh(item.mesh.Handle)
		shading := ShadingTextured
		if item.instance.Flat {
			shading = ShadingFlat
		} else {
			r.BindTexture(item.texture)
		}
		r.SetUniformMat4(UniformModel, model)
		r.SetUniformMat4(UniformMVP, viewProj.Mul4(model))
		r.SetUniformInt(UniformShading, shading)
		r.SetUniformVec3(UniformObjectColor, item.instance.Color)
		r.Draw(item.mesh.Count)
	}
}

func boolToInt(b bool) int32 {
	if b {
		return 1
	}
	return 0
}

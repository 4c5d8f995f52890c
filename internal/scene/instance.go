package scene

import (
	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
)

// Instance is one placed occurrence of a mesh and texture.
// A zero Scale or Rotation is treated as identity.
type Instance struct {
	Name    string
	Mesh    string
	Texture string

	Base     mgl32.Mat4
	Scale    mgl32.Mat4
	Rotation mgl32.Mat4

	Animation Animation

	// Flat instances skip the texture and draw lightColor*Color.
	Flat  bool
	Color mgl32.Vec3
}

// Place returns an instance translated to pos with identity scale and rotation.
func Place(name, mesh, texture string, pos mgl32.Vec3) Instance {
	return Instance{
		Name:     name,
		Mesh:     mesh,
		Texture:  texture,
		Base:     mgl32.Translate3D(pos[0], pos[1], pos[2]),
		Scale:    mgl32.Ident4(),
		Rotation: mgl32.Ident4(),
	}
}

// Model returns the instance's model matrix at scene time t in seconds.
func (in *Instance) Model(t float64) mgl32.Mat4 {
	base := orIdentity(in.Base)
	scale := orIdentity(in.Scale)
	rotation := orIdentity(in.Rotation)
	if in.Animation != nil {
		offset, spin := in.Animation.At(t)
		base = base.Mul4(mgl32.Translate3D(offset[0], offset[1], offset[2]))
		rotation = rotation.Mul4(spin)
	}
	return ComposeModel(base, scale, rotation)
}

// ComposeModel returns base·scale·rotation: rotation and scale act in the
// object's local frame, the base translation places the result in the world.
func ComposeModel(base, scale, rotation mgl32.Mat4) mgl32.Mat4 {
	return base.Mul4(scale).Mul4(rotation)
}

func orIdentity(m mgl32.Mat4) mgl32.Mat4 {
	if m == (mgl32.Mat4{}) {
		return mgl32.Ident4()
	}
	return m
}

// Animation yields a translation offset and a local rotation for time t.
type Animation interface {
	At(t float64) (offset mgl32.Vec3, rotation mgl32.Mat4)
}

// Spin rotates continuously; Rates are radians per second about X, Y and Z,
// applied as rotZ·rotY·rotX.
type Spin struct {
	Rates mgl32.Vec3
}

func (s Spin) At(t float64) (mgl32.Vec3, mgl32.Mat4) {
	tt := float32(t)
	rx := mgl32.HomogRotate3DX(s.Rates[0] * tt)
	ry := mgl32.HomogRotate3DY(s.Rates[1] * tt)
	rz := mgl32.HomogRotate3DZ(s.Rates[2] * tt)
	return mgl32.Vec3{}, rz.Mul4(ry).Mul4(rx)
}

// Bob oscillates along Axis with the given amplitude and frequency in Hz.
type Bob struct {
	Axis      mgl32.Vec3
	Amplitude float32
	Frequency float32
}

func (b Bob) At(t float64) (mgl32.Vec3, mgl32.Mat4) {
	phase := 2 * math32.Pi * b.Frequency * float32(t)
	return b.Axis.Mul(b.Amplitude * math32.Sin(phase)), mgl32.Ident4()
}

// Combined applies several animations in order.
type Combined []Animation

func (c Combined) At(t float64) (mgl32.Vec3, mgl32.Mat4) {
	offset := mgl32.Vec3{}
	rotation := mgl32.Ident4()
	for _, a := range c {
		o, r := a.At(t)
		offset = offset.Add(o)
		rotation = rotation.Mul4(r)
	}
	return offset, rotation
}

// Grid returns count[0]*count[1]*count[2] positions starting at origin and
// stepping by spacing, z outermost and x innermost.
func Grid(origin mgl32.Vec3, count [3]int, spacing mgl32.Vec3) []mgl32.Vec3 {
	if count[0] <= 0 || count[1] <= 0 || count[2] <= 0 {
		return nil
	}
	out := make([]mgl32.Vec3, 0, count[0]*count[1]*count[2])
	for z := 0; z < count[2]; z++ {
		for y := 0; y < count[1]; y++ {
			for x := 0; x < count[0]; x++ {
				out = append(out, mgl32.Vec3{
					origin[0] + float32(x)*spacing[0],
					origin[1] + float32(y)*spacing[1],
					origin[2] + float32(z)*spacing[2],
				})
			}
		}
	}
	return out
}

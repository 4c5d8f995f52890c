package boxmodel

import "github.com/go-gl/mathgl/mgl32"

// FloatsPerVertex is the interleaved layout x,y,z,u,v,nx,ny,nz.
const FloatsPerVertex = 8

type corner struct {
	pos mgl32.Vec3
	uv  [2]float32
}

// Vertices emits two triangles per face of every element. Elements without a
// faces block get all six faces with a 0..1 UV.
func (m *Model) Vertices() []float32 {
	unit := m.Unit
	if unit == 0 {
		unit = 1
	}
	var out []float32
	for _, e := range m.Elements {
		from := mgl32.Vec3{e.From[0], e.From[1], e.From[2]}.Mul(1 / unit)
		to := mgl32.Vec3{e.To[0], e.To[1], e.To[2]}.Mul(1 / unit)
		xform, normXform := e.transform(unit)

		for _, name := range FaceNames {
			uv := [4]float32{0, 0, 1, 1}
			if len(e.Faces) > 0 {
				face, ok := e.Faces[name]
				if !ok {
					continue
				}
				if face.UV != nil {
					uv = *face.UV
				}
			}
			quad, normal := faceQuad(name, from, to, uv)
			n := normXform.Mul3x1(normal).Normalize()
			for _, idx := range [6]int{0, 1, 2, 0, 2, 3} {
				c := quad[idx]
				p := mgl32.TransformCoordinate(c.pos, xform)
				out = append(out, p[0], p[1], p[2], c.uv[0], c.uv[1], n[0], n[1], n[2])
			}
		}
	}
	return out
}

// VertexCount is the number of vertices Vertices returns.
func (m *Model) VertexCount() int32 {
	count := 0
	for _, e := range m.Elements {
		if len(e.Faces) == 0 {
			count += len(FaceNames) * 6
			continue
		}
		for _, name := range FaceNames {
			if _, ok := e.Faces[name]; ok {
				count += 6
			}
		}
	}
	return int32(count)
}

func (e Element) transform(unit float32) (mgl32.Mat4, mgl32.Mat3) {
	if e.Rotation == nil || e.Rotation.Angle == 0 {
		return mgl32.Ident4(), mgl32.Ident3()
	}
	o := mgl32.Vec3{e.Rotation.Origin[0], e.Rotation.Origin[1], e.Rotation.Origin[2]}.Mul(1 / unit)
	angle := mgl32.DegToRad(e.Rotation.Angle)
	var r mgl32.Mat4
	switch e.Rotation.Axis {
	case "x":
		r = mgl32.HomogRotate3DX(angle)
	case "z":
		r = mgl32.HomogRotate3DZ(angle)
	default:
		r = mgl32.HomogRotate3DY(angle)
	}
	m := mgl32.Translate3D(o[0], o[1], o[2]).Mul4(r).Mul4(mgl32.Translate3D(-o[0], -o[1], -o[2]))
	return m, r.Mat3()
}

// faceQuad returns the face corners counter-clockwise seen from outside.
// Image rows run top to bottom, so the lower edge samples v1.
func faceQuad(name string, f, t mgl32.Vec3, uv [4]float32) ([4]corner, mgl32.Vec3) {
	u0, v0, u1, v1 := uv[0], uv[1], uv[2], uv[3]
	x0, y0, z0 := f[0], f[1], f[2]
	x1, y1, z1 := t[0], t[1], t[2]

	var p [4]mgl32.Vec3
	var n mgl32.Vec3
	switch name {
	case "down":
		p = [4]mgl32.Vec3{{x0, y0, z0}, {x1, y0, z0}, {x1, y0, z1}, {x0, y0, z1}}
		n = mgl32.Vec3{0, -1, 0}
	case "up":
		p = [4]mgl32.Vec3{{x0, y1, z0}, {x0, y1, z1}, {x1, y1, z1}, {x1, y1, z0}}
		n = mgl32.Vec3{0, 1, 0}
	case "north":
		p = [4]mgl32.Vec3{{x1, y0, z0}, {x0, y0, z0}, {x0, y1, z0}, {x1, y1, z0}}
		n = mgl32.Vec3{0, 0, -1}
	case "south":
		p = [4]mgl32.Vec3{{x0, y0, z1}, {x1, y0, z1}, {x1, y1, z1}, {x0, y1, z1}}
		n = mgl32.Vec3{0, 0, 1}
	case "west":
		p = [4]mgl32.Vec3{{x0, y0, z0}, {x0, y0, z1}, {x0, y1, z1}, {x0, y1, z0}}
		n = mgl32.Vec3{-1, 0, 0}
	case "east":
		p = [4]mgl32.Vec3{{x1, y0, z1}, {x1, y0, z0}, {x1, y1, z0}, {x1, y1, z1}}
		n = mgl32.Vec3{1, 0, 0}
	}
	uvs := [4][2]float32{{u0, v1}, {u1, v1}, {u1, v0}, {u0, v0}}
	var q [4]corner
	for i := range q {
		q[i] = corner{pos: p[i], uv: uvs[i]}
	}
	return q, n
}

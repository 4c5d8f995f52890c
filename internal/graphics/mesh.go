package graphics

import (
	"github.com/go-gl/gl/v4.1-core/gl"

	"restaurant-gl/pkg/boxmodel"
)

// MeshBuffers is an uploaded vertex array in the x,y,z,u,v,nx,ny,nz layout.
type MeshBuffers struct {
	VAO   uint32
	VBO   uint32
	Count int32
}

func UploadMesh(vertices []float32) MeshBuffers {
	var m MeshBuffers
	gl.GenVertexArrays(1, &m.VAO)
	gl.GenBuffers(1, &m.VBO)
	gl.BindVertexArray(m.VAO)
	gl.BindBuffer(gl.ARRAY_BUFFER, m.VBO)
	if len(vertices) > 0 {
		gl.BufferData(gl.ARRAY_BUFFER, len(vertices)*4, gl.Ptr(vertices), gl.STATIC_DRAW)
	}

	stride := int32(boxmodel.FloatsPerVertex * 4)
	gl.EnableVertexAttribArray(0)
	gl.VertexAttribPointerWithOffset(0, 3, gl.FLOAT, false, stride, 0)
	gl.EnableVertexAttribArray(1)
	gl.VertexAttribPointerWithOffset(1, 2, gl.FLOAT, false, stride, 3*4)
	gl.EnableVertexAttribArray(2)
	gl.VertexAttribPointerWithOffset(2, 3, gl.FLOAT, false, stride, 5*4)

	gl.BindBuffer(gl.ARRAY_BUFFER, 0)
	gl.BindVertexArray(0)

	m.Count = int32(len(vertices) / boxmodel.FloatsPerVertex)
	return m
}

func (m *MeshBuffers) Delete() {
	gl.DeleteBuffers(1, &m.VBO)
	gl.DeleteVertexArrays(1, &m.VAO)
	m.VAO, m.VBO, m.Count = 0, 0, 0
}

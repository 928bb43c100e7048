package graphics

import (
	"shadow-demo/internal/meshing"
	"shadow-demo/internal/model"

	"github.com/go-gl/gl/v4.1-core/gl"
)

// UploadMesh copies each attribute stream of d into its own vertex buffer.
func UploadMesh(d meshing.Data) model.Mesh {
	return model.Mesh{
		Vertices: uploadBuffer(d.Positions),
		UVs:      uploadBuffer(d.UVs),
		Normals:  uploadBuffer(d.Normals),
		Count:    int32(d.Count()),
	}
}

// DeleteMesh releases the buffers created by UploadMesh.
func DeleteMesh(m model.Mesh) {
	buffers := []uint32{m.Vertices, m.UVs, m.Normals}
	gl.DeleteBuffers(int32(len(buffers)), &buffers[0])
}

func uploadBuffer(data []float32) uint32 {
	var vbo uint32
	gl.GenBuffers(1, &vbo)
	gl.BindBuffer(gl.ARRAY_BUFFER, vbo)
	if len(data) > 0 {
		gl.BufferData(gl.ARRAY_BUFFER, len(data)*4, gl.Ptr(data), gl.STATIC_DRAW)
	}
	gl.BindBuffer(gl.ARRAY_BUFFER, 0)
	return vbo
}

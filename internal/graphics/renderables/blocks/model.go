package blocks

import (
	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/mathgl/mgl32"

	"mini-mt/internal/meshing"
	"mini-mt/internal/world"
)

// blockMesh is one uploaded vertex buffer: an unindexed triangle list in
// the block-local format pos.xyz, uv.xy, light.
type blockMesh struct {
	vao   uint32
	vbo   uint32
	count int32
}

func newBlockMesh(verts []float32) *blockMesh {
	m := &blockMesh{count: int32(len(verts) / meshing.VertexStride)}

	gl.GenVertexArrays(1, &m.vao)
	gl.GenBuffers(1, &m.vbo)
	gl.BindVertexArray(m.vao)
	gl.BindBuffer(gl.ARRAY_BUFFER, m.vbo)
	gl.BufferData(gl.ARRAY_BUFFER, len(verts)*4, gl.Ptr(verts), gl.STATIC_DRAW)

	stride := int32(meshing.VertexStride * 4)
	gl.EnableVertexAttribArray(0)
	gl.VertexAttribPointer(0, 3, gl.FLOAT, false, stride, gl.PtrOffset(0))
	gl.EnableVertexAttribArray(1)
	gl.VertexAttribPointer(1, 2, gl.FLOAT, false, stride, gl.PtrOffset(3*4))
	gl.EnableVertexAttribArray(2)
	gl.VertexAttribPointer(2, 1, gl.FLOAT, false, stride, gl.PtrOffset(5*4))

	gl.BindVertexArray(0)
	gl.BindBuffer(gl.ARRAY_BUFFER, 0)
	return m
}

func (m *blockMesh) delete() {
	if m == nil {
		return
	}
	gl.DeleteVertexArrays(1, &m.vao)
	gl.DeleteBuffers(1, &m.vbo)
}

// blockModel is the render-side record for one map block: up to two
// meshes, a world transform and the bounds used for frustum culling. The
// bounds pad half a node on each side because vertices sit on node
// centers.
type blockModel struct {
	opaque    *blockMesh
	blend     *blockMesh
	transform mgl32.Mat4
	aabbMin   mgl32.Vec3
	aabbMax   mgl32.Vec3
	center    mgl32.Vec3
	// index orders equal-distance models in the blend pass. The model
	// table is a map, so iteration order alone is not stable across
	// frames.
	index uint64
}

// newBlockModel uploads both mesh partitions. Returns nil when the mesh
// came out empty, which tells the caller to drop the table entry.
func newBlockModel(pos world.BlockPos, data *meshing.MeshData) *blockModel {
	if data.Empty() {
		return nil
	}

	fpos := mgl32.Vec3{
		float32(pos.X) * world.BlockSize,
		float32(pos.Y) * world.BlockSize,
		float32(pos.Z) * world.BlockSize,
	}
	m := &blockModel{
		transform: mgl32.Translate3D(fpos.X(), fpos.Y(), fpos.Z()),
		aabbMin:   fpos.Sub(mgl32.Vec3{0.5, 0.5, 0.5}),
		aabbMax:   fpos.Add(mgl32.Vec3{15.5, 15.5, 15.5}),
		center:    fpos.Add(mgl32.Vec3{7.5, 7.5, 7.5}),
	}
	if len(data.Verts) > 0 {
		m.opaque = newBlockMesh(data.Verts)
	}
	if len(data.BlendVerts) > 0 {
		m.blend = newBlockMesh(data.BlendVerts)
	}
	return m
}

func (m *blockModel) delete() {
	m.opaque.delete()
	m.blend.delete()
}

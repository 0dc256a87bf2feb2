package meshing

import "mini-mt/internal/world"

// VertexStride is the number of float32 per vertex: pos.xyz, uv.xy, light.
const VertexStride = 6

// MeshData is the output of one mesh job: unindexed triangle lists split
// into the opaque and blended partitions.
type MeshData struct {
	Verts      []float32
	BlendVerts []float32
}

// NewMeshData allocates mesh buffers with the given starting capacity (in
// floats). Workers carry the previous job's capacity forward to amortize
// allocation.
func NewMeshData(capFloats int) *MeshData {
	return &MeshData{
		Verts:      make([]float32, 0, capFloats),
		BlendVerts: make([]float32, 0, capFloats),
	}
}

// Cap reports the larger of the two buffer capacities.
func (d *MeshData) Cap() int {
	if cap(d.Verts) > cap(d.BlendVerts) {
		return cap(d.Verts)
	}
	return cap(d.BlendVerts)
}

// Empty reports whether both partitions came out with no geometry.
func (d *MeshData) Empty() bool {
	return len(d.Verts) == 0 && len(d.BlendVerts) == 0
}

// Info is the read-only data shared with the mesh workers: the content-ID
// indexed node table and the atlas slices the tiles point into.
type Info struct {
	Nodes    []*world.NodeDef
	Textures []AtlasSlice
}

package meshing

// faceVert is one corner of a unit-cube face template: a position centered
// on the node origin and the face-local base texture coordinate.
type faceVert struct {
	Pos [3]float32
	UV  [2]float32
}

// CubeFaces is the unit-cube face template, 6 vertices (two triangles, CCW)
// per face. Face order matches world.FaceDirs: +Y, -Y, +X, -X, +Z, -Z.
var CubeFaces = [6][6]faceVert{
	{
		{[3]float32{-0.5, 0.5, -0.5}, [2]float32{0, 1}},
		{[3]float32{0.5, 0.5, 0.5}, [2]float32{1, 0}},
		{[3]float32{0.5, 0.5, -0.5}, [2]float32{1, 1}},
		{[3]float32{0.5, 0.5, 0.5}, [2]float32{1, 0}},
		{[3]float32{-0.5, 0.5, -0.5}, [2]float32{0, 1}},
		{[3]float32{-0.5, 0.5, 0.5}, [2]float32{0, 0}},
	},
	{
		{[3]float32{-0.5, -0.5, -0.5}, [2]float32{0, 1}},
		{[3]float32{0.5, -0.5, -0.5}, [2]float32{1, 1}},
		{[3]float32{0.5, -0.5, 0.5}, [2]float32{1, 0}},
		{[3]float32{0.5, -0.5, 0.5}, [2]float32{1, 0}},
		{[3]float32{-0.5, -0.5, 0.5}, [2]float32{0, 0}},
		{[3]float32{-0.5, -0.5, -0.5}, [2]float32{0, 1}},
	},
	{
		{[3]float32{0.5, 0.5, 0.5}, [2]float32{1, 1}},
		{[3]float32{0.5, -0.5, -0.5}, [2]float32{0, 0}},
		{[3]float32{0.5, 0.5, -0.5}, [2]float32{0, 1}},
		{[3]float32{0.5, -0.5, -0.5}, [2]float32{0, 0}},
		{[3]float32{0.5, 0.5, 0.5}, [2]float32{1, 1}},
		{[3]float32{0.5, -0.5, 0.5}, [2]float32{1, 0}},
	},
	{
		{[3]float32{-0.5, 0.5, 0.5}, [2]float32{1, 1}},
		{[3]float32{-0.5, 0.5, -0.5}, [2]float32{0, 1}},
		{[3]float32{-0.5, -0.5, -0.5}, [2]float32{0, 0}},
		{[3]float32{-0.5, -0.5, -0.5}, [2]float32{0, 0}},
		{[3]float32{-0.5, -0.5, 0.5}, [2]float32{1, 0}},
		{[3]float32{-0.5, 0.5, 0.5}, [2]float32{1, 1}},
	},
	{
		{[3]float32{-0.5, -0.5, 0.5}, [2]float32{0, 0}},
		{[3]float32{0.5, -0.5, 0.5}, [2]float32{1, 0}},
		{[3]float32{0.5, 0.5, 0.5}, [2]float32{1, 1}},
		{[3]float32{0.5, 0.5, 0.5}, [2]float32{1, 1}},
		{[3]float32{-0.5, 0.5, 0.5}, [2]float32{0, 1}},
		{[3]float32{-0.5, -0.5, 0.5}, [2]float32{0, 0}},
	},
	{
		{[3]float32{-0.5, -0.5, -0.5}, [2]float32{0, 0}},
		{[3]float32{0.5, 0.5, -0.5}, [2]float32{1, 1}},
		{[3]float32{0.5, -0.5, -0.5}, [2]float32{1, 0}},
		{[3]float32{0.5, 0.5, -0.5}, [2]float32{1, 1}},
		{[3]float32{-0.5, -0.5, -0.5}, [2]float32{0, 0}},
		{[3]float32{-0.5, 0.5, -0.5}, [2]float32{0, 1}},
	},
}

// faceAxis maps a face index to the axis its normal lies on (0=x, 1=y, 2=z).
var faceAxis = [6]int{1, 1, 0, 0, 2, 2}

// AtlasSlice holds, for one atlas slot, the precomputed UV quad of every
// cube face: the face template's base UVs mapped into the tile's atlas
// rectangle.
type AtlasSlice struct {
	CubeTexCoords [6][6][2]float32
}

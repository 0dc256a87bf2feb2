package world

// BlockPos identifies a 16x16x16 mapblock in the world grid.
type BlockPos struct {
	X, Y, Z int16
}

// FaceDirs lists the six face-neighbor offsets. The order matches the cube
// face template in the meshing package: +Y, -Y, +X, -X, +Z, -Z. Opposite
// faces pair up as f and f^1.
var FaceDirs = [6][3]int16{
	{0, 1, 0},
	{0, -1, 0},
	{1, 0, 0},
	{-1, 0, 0},
	{0, 0, 1},
	{0, 0, -1},
}

// Offset returns the block position shifted by one of the FaceDirs entries.
func (p BlockPos) Offset(d [3]int16) BlockPos {
	return BlockPos{p.X + d[0], p.Y + d[1], p.Z + d[2]}
}

// OppositeFace maps a face index to the face looking back at it.
func OppositeFace(f int) int {
	return f ^ 1
}

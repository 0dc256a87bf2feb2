package world

const (
	// BlockSize is the edge length of a mapblock in nodes.
	BlockSize = 16
	// NodeCount is the number of nodes in one mapblock.
	NodeCount = BlockSize * BlockSize * BlockSize
)

// MapBlock is the immutable payload of one 16x16x16 mapblock: a content ID
// per node plus the param1 (light) and param2 bytes. Blocks are never
// mutated after insertion into the store; re-delivery replaces the whole
// value. Worker goroutines share the pointer without locking.
type MapBlock struct {
	Param0 [NodeCount]uint16
	Param1 [NodeCount]uint8
	Param2 [NodeCount]uint8
}

// NodeIndex converts block-local node coordinates to a flat index.
func NodeIndex(x, y, z int) int {
	return x | y<<4 | z<<8
}

// NodeXYZ is the inverse of NodeIndex.
func NodeXYZ(idx int) (x, y, z int) {
	return idx & 0xf, idx >> 4 & 0xf, idx >> 8 & 0xf
}

// SplitPos converts an absolute node position into the containing block
// position and the node index inside it.
func SplitPos(x, y, z int16) (BlockPos, int) {
	blk := BlockPos{x >> 4, y >> 4, z >> 4}
	idx := int(x&0xf) | int(y&0xf)<<4 | int(z&0xf)<<8
	return blk, idx
}

package world

import "sync"

// BlockStore maps block positions to immutable mapblock payloads. The
// ingestion path is the only writer; mesh workers read concurrently. Reads
// of a block and its neighbors need no cross-read atomicity: a neighbor
// arriving mid-read triggers its own meshing pass later.
type BlockStore struct {
	mu     sync.RWMutex
	blocks map[BlockPos]*MapBlock
}

func NewBlockStore() *BlockStore {
	return &BlockStore{blocks: make(map[BlockPos]*MapBlock)}
}

// Insert stores a block, replacing any previous payload at the position.
func (s *BlockStore) Insert(pos BlockPos, blk *MapBlock) {
	s.mu.Lock()
	s.blocks[pos] = blk
	s.mu.Unlock()
}

// Get returns the block at pos, or nil and false when absent.
func (s *BlockStore) Get(pos BlockPos) (*MapBlock, bool) {
	s.mu.RLock()
	blk, ok := s.blocks[pos]
	s.mu.RUnlock()
	return blk, ok
}

// GetWithNeighbors snapshots the block at pos and its six face neighbors in
// FaceDirs order. Missing neighbors are nil.
func (s *BlockStore) GetWithNeighbors(pos BlockPos) (*MapBlock, [6]*MapBlock) {
	var nbors [6]*MapBlock
	s.mu.RLock()
	blk := s.blocks[pos]
	for f, dir := range FaceDirs {
		nbors[f] = s.blocks[pos.Offset(dir)]
	}
	s.mu.RUnlock()
	return blk, nbors
}

// Len returns the number of stored blocks.
func (s *BlockStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.blocks)
}

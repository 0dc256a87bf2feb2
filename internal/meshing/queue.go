package meshing

import (
	"sync"

	"mini-mt/internal/world"
)

// Queue hands completed meshes from the workers to the render thread. The
// producer side is a map guarded by one mutex; the render thread swaps it
// against an empty map once per frame, so the lock is held only for the
// swap and for single inserts, never while GPU buffers are built.
type Queue struct {
	mu      sync.Mutex
	produce map[world.BlockPos]*MeshData
}

func NewQueue() *Queue {
	return &Queue{produce: make(map[world.BlockPos]*MeshData)}
}

// Publish stores a finished mesh, overwriting any unconsumed result for the
// same position.
func (q *Queue) Publish(pos world.BlockPos, data *MeshData) {
	q.mu.Lock()
	q.produce[pos] = data
	q.mu.Unlock()
}

// Swap exchanges the produce map with the caller's drained map and returns
// the batch of completed meshes. The caller passes its previous (emptied)
// consume map back in to keep map allocations stable.
func (q *Queue) Swap(empty map[world.BlockPos]*MeshData) map[world.BlockPos]*MeshData {
	q.mu.Lock()
	full := q.produce
	q.produce = empty
	q.mu.Unlock()
	return full
}

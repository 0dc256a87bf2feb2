package meshing

import (
	"testing"
	"time"

	"mini-mt/internal/config"
	"mini-mt/internal/world"
)

func waitForMesh(t *testing.T, q *Queue, pos world.BlockPos) *MeshData {
	t.Helper()
	deadline := time.Now().Add(2 * time.Second)
	consume := make(map[world.BlockPos]*MeshData)
	for time.Now().Before(deadline) {
		batch := q.Swap(consume)
		if data, ok := batch[pos]; ok {
			return data
		}
		consume = batch
		time.Sleep(time.Millisecond)
	}
	t.Fatalf("no mesh for %v within deadline", pos)
	return nil
}

func TestPoolMeshesSubmittedBlock(t *testing.T) {
	info := testInfo()
	store := world.NewBlockStore()
	q := NewQueue()
	pool := NewPool(2, 16, info, config.Default(), store, q)
	defer pool.Shutdown()

	pos := world.BlockPos{X: 0, Y: 0, Z: 0}
	store.Insert(pos, blockWith(map[int]uint16{world.NodeIndex(8, 8, 8): ctStone}))
	for _, dir := range world.FaceDirs {
		store.Insert(pos.Offset(dir), &world.MapBlock{})
	}

	pool.Submit(pos)
	data := waitForMesh(t, q, pos)
	if len(data.Verts) != 6*faceFloats {
		t.Fatalf("meshed %d floats, want %d", len(data.Verts), 6*faceFloats)
	}
}

func TestPoolSkipsMissingBlock(t *testing.T) {
	info := testInfo()
	store := world.NewBlockStore()
	q := NewQueue()
	pool := NewPool(1, 16, info, config.Default(), store, q)
	defer pool.Shutdown()

	pool.Submit(world.BlockPos{X: 9, Y: 9, Z: 9})

	time.Sleep(50 * time.Millisecond)
	batch := q.Swap(make(map[world.BlockPos]*MeshData))
	if len(batch) != 0 {
		t.Fatalf("published %d meshes for a never-inserted block", len(batch))
	}
}

package meshing

import (
	"testing"

	"mini-mt/internal/world"
)

func TestQueuePublishOverwrites(t *testing.T) {
	q := NewQueue()
	pos := world.BlockPos{X: 1, Y: 0, Z: 0}

	first := NewMeshData(0)
	first.Verts = append(first.Verts, 1)
	second := NewMeshData(0)
	second.Verts = append(second.Verts, 2)

	q.Publish(pos, first)
	q.Publish(pos, second)

	batch := q.Swap(make(map[world.BlockPos]*MeshData))
	if len(batch) != 1 {
		t.Fatalf("batch size %d, want 1", len(batch))
	}
	if batch[pos].Verts[0] != 2 {
		t.Fatal("later publish did not overwrite the unconsumed one")
	}
}

func TestQueueSwapCycle(t *testing.T) {
	q := NewQueue()
	pos := world.BlockPos{X: 0, Y: 0, Z: 0}
	q.Publish(pos, NewMeshData(0))

	consume := make(map[world.BlockPos]*MeshData)
	batch := q.Swap(consume)
	if len(batch) != 1 {
		t.Fatalf("first swap: %d entries, want 1", len(batch))
	}

	// Drain and hand the map back, as the render thread does each frame.
	for k := range batch {
		delete(batch, k)
	}
	again := q.Swap(batch)
	if len(again) != 0 {
		t.Fatalf("second swap: %d entries, want 0", len(again))
	}
}

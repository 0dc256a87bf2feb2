package blocks

import (
	"testing"

	"mini-mt/internal/world"
)

func TestSortBlendFarthestFirst(t *testing.T) {
	entries := []blendEntry{
		{model: &blockModel{}, dist: 5.0},
		{model: &blockModel{}, dist: 1.0},
		{model: &blockModel{}, dist: 3.0},
	}
	sortBlendEntries(entries)

	want := []float32{5.0, 3.0, 1.0}
	for i, w := range want {
		if entries[i].dist != w {
			t.Fatalf("position %d: dist %v, want %v", i, entries[i].dist, w)
		}
	}
}

func TestSortBlendTiesBreakOnModelIndex(t *testing.T) {
	a := &blockModel{index: 0}
	b := &blockModel{index: 1}
	c := &blockModel{index: 2}

	entries := []blendEntry{
		{model: c, dist: 2.0},
		{model: a, dist: 2.0},
		{model: b, dist: 2.0},
	}
	sortBlendEntries(entries)

	if entries[0].model != a || entries[1].model != b || entries[2].model != c {
		t.Fatal("equal distances did not order by model index")
	}
}

// The blend pass collects entries by ranging over the model table, whose
// iteration order changes between frames. Equal-distance ordering must
// come out identical regardless.
func TestBlendOrderStableAcrossCollectionPasses(t *testing.T) {
	models := make(map[world.BlockPos]*blockModel)
	for i := 0; i < 8; i++ {
		models[world.BlockPos{X: int16(i)}] = &blockModel{
			blend: &blockMesh{},
			index: uint64(i),
		}
	}

	var first []*blockModel
	for pass := 0; pass < 100; pass++ {
		entries := make([]blendEntry, 0, len(models))
		for _, model := range models {
			entries = append(entries, blendEntry{model: model, dist: 4.0})
		}
		sortBlendEntries(entries)

		if pass == 0 {
			for _, e := range entries {
				first = append(first, e.model)
			}
			continue
		}
		for i, e := range entries {
			if e.model != first[i] {
				t.Fatalf("pass %d: equal-distance blend order differs at index %d", pass, i)
			}
		}
	}
}

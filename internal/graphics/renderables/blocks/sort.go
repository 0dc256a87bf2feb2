package blocks

import "sort"

// blendEntry is one translucent mesh queued for the sorted blend pass.
type blendEntry struct {
	model *blockModel
	dist  float32
}

// sortBlendEntries orders entries farthest first so overlapping
// translucent faces composite back to front. Equal distances fall back to
// the model's insertion index: the collection pass ranges over a map, so
// input order alone would reshuffle ties every frame.
func sortBlendEntries(entries []blendEntry) {
	sort.SliceStable(entries, func(i, j int) bool {
		if entries[i].dist != entries[j].dist {
			return entries[i].dist > entries[j].dist
		}
		return entries[i].model.index < entries[j].model.index
	})
}

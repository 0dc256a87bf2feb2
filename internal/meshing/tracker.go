package meshing

import (
	"sync"
	"time"

	"mini-mt/internal/world"
)

// DeferTimeout bounds how long a block with missing neighbors waits before
// it is meshed anyway, trading a possibly seamed mesh for latency.
const DeferTimeout = 100 * time.Millisecond

// deferredBlock tracks a block that is not yet meshable: which face
// neighbors are confirmed present and how many are still unknown. The
// record exists only while count > 0 and is removed the moment the count
// reaches zero or the timeout fires.
type deferredBlock struct {
	count uint8
	mask  [6]bool
	since time.Time
}

// Tracker decides, per delivered block, whether to dispatch it for meshing
// immediately or defer it until its neighbors arrive. Dispatch is
// idempotent downstream: a block meshed twice just overwrites its model.
type Tracker struct {
	mu       sync.Mutex
	store    *world.BlockStore
	dispatch func(world.BlockPos)
	deferred map[world.BlockPos]*deferredBlock
	now      func() time.Time
}

func NewTracker(store *world.BlockStore, dispatch func(world.BlockPos)) *Tracker {
	return &Tracker{
		store:    store,
		dispatch: dispatch,
		deferred: make(map[world.BlockPos]*deferredBlock),
		now:      time.Now,
	}
}

// AddBlock inserts the payload into the store and runs the readiness step:
// neighbors waiting on this block are credited (and dispatched when
// complete), neighbors already present get refreshed, and the new block is
// either dispatched or deferred with its unsatisfied mask.
func (t *Tracker) AddBlock(pos world.BlockPos, blk *world.MapBlock) {
	t.store.Insert(pos, blk)

	var ready []world.BlockPos

	t.mu.Lock()
	count := uint8(6)
	var mask [6]bool

	for f, dir := range world.FaceDirs {
		npos := pos.Offset(dir)

		if nb, ok := t.deferred[npos]; ok {
			rf := world.OppositeFace(f)
			if !nb.mask[rf] {
				nb.mask[rf] = true
				nb.count--
				if nb.count == 0 {
					delete(t.deferred, npos)
					ready = append(ready, npos)
				}
			}
		} else if _, ok := t.store.Get(npos); ok {
			// Neighbor was meshed with this face unresolved; refresh it.
			ready = append(ready, npos)
		} else {
			continue
		}

		mask[f] = true
		count--
	}

	if count == 0 {
		ready = append(ready, pos)
	} else if rec, ok := t.deferred[pos]; ok {
		// Re-delivery: update completeness, keep the original deadline.
		rec.mask = mask
		rec.count = count
	} else {
		t.deferred[pos] = &deferredBlock{count: count, mask: mask, since: t.now()}
	}
	t.mu.Unlock()

	for _, p := range ready {
		t.dispatch(p)
	}
}

// PromoteStale force-dispatches every deferred block older than
// DeferTimeout and drops its record. Partial-neighbor state is not
// retained; a later neighbor arrival triggers a fresh mesh on its own.
func (t *Tracker) PromoteStale() {
	var ready []world.BlockPos

	t.mu.Lock()
	now := t.now()
	for pos, rec := range t.deferred {
		if now.Sub(rec.since) > DeferTimeout {
			delete(t.deferred, pos)
			ready = append(ready, pos)
		}
	}
	t.mu.Unlock()

	for _, p := range ready {
		t.dispatch(p)
	}
}

// DeferredCount reports how many blocks currently await neighbors.
func (t *Tracker) DeferredCount() int {
	t.mu.Lock()
	defer t.mu.Unlock()
	return len(t.deferred)
}

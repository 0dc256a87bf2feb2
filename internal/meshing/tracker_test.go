package meshing

import (
	"testing"
	"time"

	"mini-mt/internal/world"
)

type dispatchLog struct {
	calls []world.BlockPos
}

func (d *dispatchLog) record(pos world.BlockPos) {
	d.calls = append(d.calls, pos)
}

func (d *dispatchLog) countOf(pos world.BlockPos) int {
	n := 0
	for _, p := range d.calls {
		if p == pos {
			n++
		}
	}
	return n
}

func newTestTracker() (*Tracker, *dispatchLog, *time.Time) {
	store := world.NewBlockStore()
	dl := &dispatchLog{}
	tr := NewTracker(store, dl.record)
	now := time.Now()
	tr.now = func() time.Time { return now }
	return tr, dl, &now
}

func TestImmediateDispatchWithAllNeighbors(t *testing.T) {
	tr, dl, _ := newTestTracker()
	center := world.BlockPos{X: 0, Y: 0, Z: 0}

	for _, dir := range world.FaceDirs {
		tr.AddBlock(center.Offset(dir), &world.MapBlock{})
	}
	if dl.countOf(center) != 0 {
		t.Fatal("center dispatched before delivery")
	}

	tr.AddBlock(center, &world.MapBlock{})
	if dl.countOf(center) != 1 {
		t.Fatalf("center dispatched %d times, want exactly once", dl.countOf(center))
	}
	if tr.DeferredCount() != 6 {
		t.Fatalf("deferred count = %d, want 6 incomplete neighbors", tr.DeferredCount())
	}
}

func TestDeferredCountdown(t *testing.T) {
	tr, dl, _ := newTestTracker()
	center := world.BlockPos{X: 0, Y: 0, Z: 0}

	tr.AddBlock(center, &world.MapBlock{})
	if dl.countOf(center) != 0 {
		t.Fatal("dispatched with zero neighbors")
	}
	if tr.DeferredCount() != 1 {
		t.Fatalf("deferred count = %d, want 1", tr.DeferredCount())
	}

	for i, dir := range world.FaceDirs {
		tr.AddBlock(center.Offset(dir), &world.MapBlock{})
		if i < 5 && dl.countOf(center) != 0 {
			t.Fatalf("dispatched after %d of 6 neighbors", i+1)
		}
	}
	if dl.countOf(center) != 1 {
		t.Fatalf("center dispatched %d times, want exactly once", dl.countOf(center))
	}
}

func TestNeighborCreditIsIdempotent(t *testing.T) {
	tr, dl, _ := newTestTracker()
	center := world.BlockPos{X: 0, Y: 0, Z: 0}
	nb := center.Offset(world.FaceDirs[2])

	tr.AddBlock(center, &world.MapBlock{})
	tr.AddBlock(nb, &world.MapBlock{})
	// Re-delivering the same neighbor must not decrement the count again.
	tr.AddBlock(nb, &world.MapBlock{})

	if dl.countOf(center) != 0 {
		t.Fatal("center dispatched with only one distinct neighbor")
	}
}

func TestTimeoutPromotion(t *testing.T) {
	tr, dl, now := newTestTracker()
	center := world.BlockPos{X: 0, Y: 0, Z: 0}
	tr.AddBlock(center, &world.MapBlock{})

	*now = now.Add(50 * time.Millisecond)
	tr.PromoteStale()
	if dl.countOf(center) != 0 {
		t.Fatal("promoted before the deadline")
	}

	*now = now.Add(60 * time.Millisecond)
	tr.PromoteStale()
	if dl.countOf(center) != 1 {
		t.Fatalf("dispatched %d times after timeout, want once", dl.countOf(center))
	}
	if tr.DeferredCount() != 0 {
		t.Fatal("record kept after timeout promotion")
	}

	tr.PromoteStale()
	if dl.countOf(center) != 1 {
		t.Fatal("timed-out block promoted twice")
	}
}

func TestLateNeighborRefreshesTimedOutBlock(t *testing.T) {
	tr, dl, now := newTestTracker()
	center := world.BlockPos{X: 0, Y: 0, Z: 0}
	tr.AddBlock(center, &world.MapBlock{})

	*now = now.Add(200 * time.Millisecond)
	tr.PromoteStale()

	// Neighbor arriving after the timeout refreshes the (already meshed)
	// center: benign overwrite, not an error.
	tr.AddBlock(center.Offset(world.FaceDirs[0]), &world.MapBlock{})
	if dl.countOf(center) != 2 {
		t.Fatalf("center dispatched %d times, want seam-fix remesh", dl.countOf(center))
	}
}

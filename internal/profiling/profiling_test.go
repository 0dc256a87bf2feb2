package profiling

import (
	"strings"
	"testing"
	"time"
)

func TestTrackAccumulatesAcrossCalls(t *testing.T) {
	ResetFrame()
	for i := 0; i < 3; i++ {
		stop := Track("test.op")
		time.Sleep(time.Millisecond)
		stop()
	}

	out := TopN(1)
	if !strings.HasPrefix(out, "test.op:") {
		t.Fatalf("TopN = %q, want test.op entry", out)
	}
}

func TestResetFrameClearsTotals(t *testing.T) {
	Track("test.stale")()
	ResetFrame()
	if out := TopN(5); out != "" {
		t.Fatalf("TopN after reset = %q, want empty", out)
	}
}

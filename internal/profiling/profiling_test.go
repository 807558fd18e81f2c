package profiling

import (
	"strings"
	"testing"
	"time"
)

func TestTrackAndSum(t *testing.T) {
	ResetFrame()
	stop := Track("physics.Step")
	time.Sleep(time.Millisecond)
	stop()
	Track("physics.Raycast")()
	Track("devil.Update")()

	if got := SumWithPrefix("physics."); got < time.Millisecond {
		t.Errorf("expected physics total >= 1ms, got %v", got)
	}
	if len(Snapshot()) != 3 {
		t.Errorf("expected 3 entries, got %d", len(Snapshot()))
	}

	top := TopN(1)
	if !strings.HasPrefix(top, "physics.Step:") {
		t.Errorf("expected physics.Step to be slowest, got %q", top)
	}

	ResetFrame()
	if len(Snapshot()) != 0 {
		t.Errorf("expected empty snapshot after reset")
	}
	if TopN(5) != "" {
		t.Errorf("expected empty TopN after reset")
	}
}

package profiling

import (
	"testing"
	"time"
)

func TestTrackAndReset(t *testing.T) {
	ResetFrame()
	mu.Lock()
	frameTotals["renderer.RenderLights"] = 3 * time.Millisecond
	frameTotals["renderer.RenderModels"] = 5 * time.Millisecond
	frameTotals["model.UpdateAll"] = 1 * time.Millisecond
	mu.Unlock()

	stop := Track("model.UpdateAll")
	stop()

	if got := SumWithPrefix("renderer."); got != 8*time.Millisecond {
		t.Errorf("Expected 8ms for renderer buckets, got %v", got)
	}
	if got := TopN(2); got != "renderer.RenderModels:5.0ms, renderer.RenderLights:3.0ms" {
		t.Errorf("Unexpected TopN output %q", got)
	}

	ResetFrame()
	if len(Snapshot()) != 0 {
		t.Errorf("Expected empty snapshot after reset")
	}
}

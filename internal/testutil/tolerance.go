package testutil

import (
	"math"
	"testing"

	"github.com/cwbudde/algo-granular/dsp/frame"
)

// RequireSliceNearlyEqual fails t if got and want differ in length or if
// any element pair exceeds eps (absolute tolerance).
func RequireSliceNearlyEqual(t *testing.T, got, want []float64, eps float64) {
	t.Helper()
	if len(got) != len(want) {
		t.Fatalf("length mismatch: got %d, want %d", len(got), len(want))
	}
	for i := range got {
		diff := math.Abs(got[i] - want[i])
		if diff > eps {
			t.Fatalf("index %d: got %v, want %v (diff %v > eps %v)", i, got[i], want[i], diff, eps)
		}
	}
}

// RequireFramesNearlyEqual compares two frame slices channel by channel.
func RequireFramesNearlyEqual(t *testing.T, got, want []frame.Stereo, eps float64) {
	t.Helper()
	if len(got) != len(want) {
		t.Fatalf("length mismatch: got %d, want %d", len(got), len(want))
	}
	for i := range got {
		dl := math.Abs(float64(got[i].L - want[i].L))
		dr := math.Abs(float64(got[i].R - want[i].R))
		if dl > eps || dr > eps {
			t.Fatalf("frame %d: got %v, want %v (eps %v)", i, got[i], want[i], eps)
		}
	}
}

// RequireSilent fails t if any sample in the channel buffers is non-zero.
func RequireSilent(t *testing.T, channels ...[]float32) {
	t.Helper()
	for ch, buf := range channels {
		for i, v := range buf {
			if v != 0 {
				t.Fatalf("channel %d sample %d = %v, want 0", ch, i, v)
			}
		}
	}
}

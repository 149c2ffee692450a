package spectrum

import (
	"math"
	"testing"
)

func TestMagnitude(t *testing.T) {
	got := Magnitude([]complex128{3 + 4i, -1, 2i, 0})
	want := []float64{5, 1, 2, 0}
	for i := range want {
		if math.Abs(got[i]-want[i]) > 1e-12 {
			t.Fatalf("got[%d]=%v, want %v", i, got[i], want[i])
		}
	}
	if Magnitude(nil) != nil {
		t.Fatal("Magnitude(nil) must be nil")
	}
}

func TestPeakBin(t *testing.T) {
	mag := []float64{9, 1, 3, 7, 2}
	if got := PeakBin(mag, 0); got != 0 {
		t.Fatalf("PeakBin(from=0) = %d, want 0", got)
	}
	if got := PeakBin(mag, 1); got != 3 {
		t.Fatalf("PeakBin(from=1) = %d, want 3", got)
	}
	if got := PeakBin(mag, 5); got != -1 {
		t.Fatalf("PeakBin(past end) = %d, want -1", got)
	}
}

func TestRefinePeak(t *testing.T) {
	mag := []float64{0, 1, 2, 2, 0}
	p := RefinePeak(mag, 2)
	if p.Position <= 2 || p.Position > 2.5 {
		t.Fatalf("Position = %v, want in (2, 2.5]", p.Position)
	}
	if p.Magnitude != 2 {
		t.Fatalf("Magnitude = %v, want 2", p.Magnitude)
	}
	if edge := RefinePeak(mag, 4); edge.Position != 4 {
		t.Fatalf("edge Position = %v, want 4", edge.Position)
	}
}

func TestParabolicOffset(t *testing.T) {
	if got := ParabolicOffset(1, 2, 1); got != 0 {
		t.Fatalf("symmetric peak offset = %v, want 0", got)
	}
	if got := ParabolicOffset(1, 2, 2); got <= 0 {
		t.Fatalf("right-leaning peak offset = %v, want > 0", got)
	}
	if got := ParabolicOffset(1, 1, 1); got != 0 {
		t.Fatalf("flat offset = %v, want 0", got)
	}
}

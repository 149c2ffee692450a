package window

import (
	"math"
	"testing"
)

func TestGenerateCosineSums(t *testing.T) {
	for _, typ := range []Type{TypeRectangular, TypeHann, TypeHamming, TypeBlackman} {
		t.Run(typ.String(), func(t *testing.T) {
			w := Generate(typ, 65)
			if len(w) != 65 {
				t.Fatalf("len=%d, want 65", len(w))
			}
			if math.Abs(w[32]-1) > 1e-12 {
				t.Fatalf("center=%v, want 1", w[32])
			}
			for i := range w {
				if math.Abs(w[i]-w[len(w)-1-i]) > 1e-12 {
					t.Fatalf("not symmetric at %d: %v != %v", i, w[i], w[len(w)-1-i])
				}
			}
		})
	}
}

func TestGenerateEdges(t *testing.T) {
	tests := []struct {
		typ  Type
		edge float64
	}{
		{TypeRectangular, 1},
		{TypeHann, 0},
		{TypeHamming, 0.08},
		{TypeBlackman, 0},
	}
	for _, tt := range tests {
		w := Generate(tt.typ, 16)
		if math.Abs(w[0]-tt.edge) > 1e-12 || math.Abs(w[15]-tt.edge) > 1e-12 {
			t.Fatalf("%s edges = %v, %v, want %v", tt.typ, w[0], w[15], tt.edge)
		}
	}
}

func TestGeneratePeriodic(t *testing.T) {
	w := Generate(TypeHann, 8, WithPeriodic())
	if w[0] != 0 {
		t.Fatalf("w[0]=%v, want 0", w[0])
	}
	if math.Abs(w[4]-1) > 1e-12 {
		t.Fatalf("w[4]=%v, want 1", w[4])
	}
	if w[7] == 0 {
		t.Fatal("periodic window must not end on zero")
	}
}

func TestGenerateDegenerateLengths(t *testing.T) {
	if w := Generate(TypeHann, 0); w != nil {
		t.Fatalf("Generate(0) = %v, want nil", w)
	}
	if w := Generate(TypeHann, 1); len(w) != 1 || w[0] != 1 {
		t.Fatalf("Generate(1) = %v, want [1]", w)
	}
	if _, err := Hann(0); err == nil {
		t.Fatal("Hann(0) expected error")
	}
	if _, err := Blackman(-3); err == nil {
		t.Fatal("Blackman(-3) expected error")
	}
}

func TestCoherentGain(t *testing.T) {
	w, err := Hann(4096, WithPeriodic())
	if err != nil {
		t.Fatalf("Hann() error = %v", err)
	}
	g, err := CoherentGain(w)
	if err != nil {
		t.Fatalf("CoherentGain() error = %v", err)
	}
	if math.Abs(g-0.5) > 1e-9 {
		t.Fatalf("gain=%v, want 0.5", g)
	}
	if _, err := CoherentGain(nil); err == nil {
		t.Fatal("CoherentGain(nil) expected error")
	}
}

func TestApplyCoefficientsInPlace(t *testing.T) {
	buf := []float64{2, 2, 2}
	if err := ApplyCoefficientsInPlace(buf, []float64{0, 0.5, 1}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if buf[0] != 0 || buf[1] != 1 || buf[2] != 2 {
		t.Fatalf("buf=%v", buf)
	}
	if err := ApplyCoefficientsInPlace(buf, []float64{1}); err == nil {
		t.Fatal("expected length mismatch error")
	}
}

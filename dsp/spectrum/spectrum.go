package spectrum

import (
	"sync"

	"github.com/cwbudde/algo-vecmath"
)

// scratchBuf holds pooled scratch memory for complex-to-real unpacking.
type scratchBuf struct {
	data []float64
}

var scratchPool = sync.Pool{
	New: func() any { return &scratchBuf{} },
}

func getScratch(n int) (re, im []float64, buf *scratchBuf) {
	buf = scratchPool.Get().(*scratchBuf)
	need := 2 * n
	if cap(buf.data) < need {
		buf.data = make([]float64, need)
	} else {
		buf.data = buf.data[:need]
	}
	return buf.data[:n], buf.data[n:need], buf
}

// Magnitude returns |X[k]| for each complex spectrum bin. Scratch buffers
// are pooled, so in steady state this allocates only the output slice.
func Magnitude(in []complex128) []float64 {
	if len(in) == 0 {
		return nil
	}

	out := make([]float64, len(in))
	re, im, buf := getScratch(len(in))
	for i, c := range in {
		re[i] = real(c)
		im[i] = imag(c)
	}
	vecmath.Magnitude(out, re, im)
	scratchPool.Put(buf)
	return out
}

// PeakBin returns the index of the largest value in mag at or after from,
// or -1 if there is none.
func PeakBin(mag []float64, from int) int {
	if from < 0 {
		from = 0
	}
	peak := -1
	for k := from; k < len(mag); k++ {
		if peak < 0 || mag[k] > mag[peak] {
			peak = k
		}
	}
	return peak
}

// Peak is a spectral peak refined to sub-bin precision.
type Peak struct {
	Bin       int
	Position  float64
	Magnitude float64
}

// RefinePeak fits a parabola through bin k and its neighbours. At either
// edge the bin itself is returned.
func RefinePeak(mag []float64, k int) Peak {
	p := Peak{Bin: k, Position: float64(k)}
	if k < 0 || k >= len(mag) {
		return p
	}
	p.Magnitude = mag[k]
	if k > 0 && k < len(mag)-1 {
		p.Position += ParabolicOffset(mag[k-1], mag[k], mag[k+1])
	}
	return p
}

// ParabolicOffset returns the vertex position of the parabola through three
// equally spaced points, relative to the middle one, in [-0.5, 0.5].
func ParabolicOffset(a, b, c float64) float64 {
	den := a - 2*b + c
	if den == 0 {
		return 0
	}
	p := 0.5 * (a - c) / den
	if p > 0.5 {
		return 0.5
	}
	if p < -0.5 {
		return -0.5
	}
	return p
}

package fundamental

import (
	"errors"
	"fmt"
	"math"

	algofft "github.com/MeKo-Christian/algo-fft"

	"github.com/cwbudde/algo-granular/dsp/spectrum"
	"github.com/cwbudde/algo-granular/dsp/window"
)

// MinSamples is the shortest input Estimate accepts.
const MinSamples = 8

var (
	// ErrTooShort is returned for inputs shorter than MinSamples.
	ErrTooShort = errors.New("fundamental: input too short")
	// ErrSilent is returned when the input carries no energy above DC.
	ErrSilent = errors.New("fundamental: input is silent")
)

// Result describes a detected spectral peak.
type Result struct {
	FrequencyHz float64
	Magnitude   float64
	Bin         int
	FFTSize     int
}

// Estimate returns the dominant frequency of samples recorded at sampleRate.
func Estimate(samples []float64, sampleRate float64) (float64, error) {
	res, err := Analyze(samples, sampleRate)
	if err != nil {
		return 0, err
	}
	return res.FrequencyHz, nil
}

// Analyze performs the full peak search and reports the peak details.
func Analyze(samples []float64, sampleRate float64) (Result, error) {
	if sampleRate <= 0 || math.IsNaN(sampleRate) || math.IsInf(sampleRate, 0) {
		return Result{}, fmt.Errorf("fundamental: sample rate must be > 0: %f", sampleRate)
	}
	if len(samples) < MinSamples {
		return Result{}, fmt.Errorf("%w: %d < %d", ErrTooShort, len(samples), MinSamples)
	}

	coeffs, err := window.Hann(len(samples))
	if err != nil {
		return Result{}, fmt.Errorf("fundamental: %w", err)
	}
	windowed := make([]float64, len(samples))
	copy(windowed, samples)
	if err := window.ApplyCoefficientsInPlace(windowed, coeffs); err != nil {
		return Result{}, fmt.Errorf("fundamental: %w", err)
	}

	size := nextPowerOf2(len(samples))
	plan, err := algofft.NewPlan64(size)
	if err != nil {
		return Result{}, fmt.Errorf("fundamental: failed to create FFT plan: %w", err)
	}

	bins := make([]complex128, size)
	for i, v := range windowed {
		bins[i] = complex(v, 0)
	}
	if err := plan.Forward(bins, bins); err != nil {
		return Result{}, fmt.Errorf("fundamental: forward FFT failed: %w", err)
	}

	mag := spectrum.Magnitude(bins[:size/2+1])
	peak := spectrum.RefinePeak(mag, spectrum.PeakBin(mag, 1))
	if peak.Magnitude <= 1e-12 {
		return Result{}, ErrSilent
	}

	return Result{
		FrequencyHz: peak.Position * sampleRate / float64(size),
		Magnitude:   peak.Magnitude,
		Bin:         peak.Bin,
		FFTSize:     size,
	}, nil
}

func nextPowerOf2(n int) int {
	p := 1
	for p < n {
		p <<= 1
	}
	return p
}

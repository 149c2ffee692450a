package testutil

import (
	"math"
	"math/rand"

	"github.com/cwbudde/algo-granular/dsp/frame"
)

// DeterministicSine generates a deterministic sine wave.
func DeterministicSine(freqHz, sampleRate, amplitude float64, length int) []float64 {
	out := make([]float64, length)
	step := 2 * math.Pi * freqHz / sampleRate
	for i := range out {
		out[i] = amplitude * math.Sin(step*float64(i))
	}
	return out
}

// StereoSine returns a sine on the left channel and its inverse on the right.
func StereoSine(freqHz, sampleRate, amplitude float64, length int) *frame.Sequence {
	mono := DeterministicSine(freqHz, sampleRate, amplitude, length)
	frames := make([]frame.Stereo, length)
	for i, v := range mono {
		frames[i] = frame.Stereo{L: float32(v), R: float32(-v)}
	}
	return frame.FromFrames(frames)
}

// StereoNoise generates decorrelated white noise per channel with a fixed seed.
func StereoNoise(seed int64, amplitude float64, length int) *frame.Sequence {
	rng := rand.New(rand.NewSource(seed))
	frames := make([]frame.Stereo, length)
	for i := range frames {
		frames[i] = frame.Stereo{
			L: float32((rng.Float64()*2 - 1) * amplitude),
			R: float32((rng.Float64()*2 - 1) * amplitude),
		}
	}
	return frame.FromFrames(frames)
}

// Ramp returns frames whose left value equals the index and whose right
// value is the negated index. Handy for checking which source frame played.
func Ramp(length int) *frame.Sequence {
	frames := make([]frame.Stereo, length)
	for i := range frames {
		frames[i] = frame.Stereo{L: float32(i), R: -float32(i)}
	}
	return frame.FromFrames(frames)
}

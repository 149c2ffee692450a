package grain

import (
	"errors"
	"fmt"
	"math"
)

const (
	// MinSamples is the absolute grain length floor, independent of sample rate.
	MinSamples = 20

	// MaxMilliseconds caps the grain length.
	MaxMilliseconds = 500.0

	// MaxStartFraction is the largest accepted start position.
	MaxStartFraction = 0.99
)

// ErrSampleTooShort is returned when the source cannot hold a minimum grain.
var ErrSampleTooShort = errors.New("grain: sample shorter than minimum grain")

// Spec is a playback sub-range [Start, Start+Length) of a source sample.
type Spec struct {
	Start  int
	Length int
}

// End returns the exclusive end index.
func (s Spec) End() int { return s.Start + s.Length }

// Empty reports whether the grain has no frames.
func (s Spec) Empty() bool { return s.Length <= 0 }

// Index maps a cursor onto a source index looping inside the grain.
// An empty grain maps everything to Start.
func (s Spec) Index(cursor uint64) int {
	if s.Length <= 0 {
		return s.Start
	}
	return s.Start + int(cursor%uint64(s.Length))
}

// Fits reports whether the grain lies entirely within sourceLength frames.
func (s Spec) Fits(sourceLength int) bool {
	return s.Start >= 0 && s.Length >= 0 && s.End() <= sourceLength
}

// MaxSamples returns the grain length cap for a source at sampleRateHz.
func MaxSamples(sourceLength int, sampleRateHz float64) int {
	limit := int(math.Round(sampleRateHz / 1000 * MaxMilliseconds))
	if sourceLength < limit {
		return sourceLength
	}
	return limit
}

// Select computes the grain for sourceLength frames at sampleRateHz.
//
// sizeFraction scales the grain between MinSamples and MaxSamples and is
// clamped to [0, 1]. startFraction positions the grain within the source and
// is clamped to [0, MaxStartFraction].
func Select(sourceLength int, sampleRateHz, sizeFraction, startFraction float64) (Spec, error) {
	if sampleRateHz <= 0 || math.IsNaN(sampleRateHz) || math.IsInf(sampleRateHz, 0) {
		return Spec{}, fmt.Errorf("grain: sample rate must be > 0: %f", sampleRateHz)
	}
	if sourceLength < MinSamples {
		return Spec{}, fmt.Errorf("%w: %d < %d", ErrSampleTooShort, sourceLength, MinSamples)
	}

	sizeFraction = clampFraction(sizeFraction, 1)
	startFraction = clampFraction(startFraction, MaxStartFraction)

	maxLen := MaxSamples(sourceLength, sampleRateHz)
	length := int(math.Round(float64(maxLen) * sizeFraction))
	if length < MinSamples {
		length = MinSamples
	}

	start := int(math.Round(float64(sourceLength) * startFraction))
	if limit := sourceLength - length; start > limit {
		start = limit
	}

	return Spec{Start: start, Length: length}, nil
}

func clampFraction(v, upper float64) float64 {
	if math.IsNaN(v) || v < 0 {
		return 0
	}
	if v > upper {
		return upper
	}
	return v
}

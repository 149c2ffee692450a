package pitch

import (
	"math"

	"github.com/cwbudde/algo-granular/dsp/frame"
	"github.com/cwbudde/algo-granular/dsp/interp"
)

const (
	// ReferenceNote is the MIDI note tuned to ReferenceHz (A4).
	ReferenceNote = 69
	// ReferenceHz is the concert pitch of ReferenceNote.
	ReferenceHz = 440.0

	// MaxNote is the highest valid MIDI note number.
	MaxNote = 127
)

// NoteFrequency converts a MIDI note number to Hz using equal temperament.
func NoteFrequency(note int) float64 {
	return ReferenceHz * math.Pow(2, float64(note-ReferenceNote)/12)
}

// NaturalFrequency returns how many times per second a grain of grainLength
// frames repeats when looped unmodified at sampleRateHz.
func NaturalFrequency(grainLength int, sampleRateHz float64) float64 {
	if grainLength <= 0 {
		return 0
	}
	return 1000.0 / (float64(grainLength) / (sampleRateHz / 1000))
}

// Factor returns sourceHz/targetHz, or false when the ratio is not a usable
// positive finite number.
func Factor(sourceHz, targetHz float64) (float64, bool) {
	if !isFinitePositive(sourceHz) || !isFinitePositive(targetHz) {
		return 0, false
	}
	f := sourceHz / targetHz
	if !isFinitePositive(f) {
		return 0, false
	}
	return f, true
}

// OutputLength returns the number of frames Repitch produces for a grain of
// inputLength frames and the given factor. It is 0 for any degenerate input.
func OutputLength(inputLength int, factor float64) int {
	if inputLength < 2 || !isFinitePositive(factor) {
		return 0
	}
	n := math.Floor(float64(inputLength-1) * factor)
	if n <= 0 || n > math.MaxInt32 {
		return 0
	}
	return int(n)
}

// MaxOutputLength bounds the repitched length for any grain at sampleRateHz
// and any MIDI note, so callers can preallocate once.
//
// The repitched length is (n-1)*rate/(n*target), which never exceeds
// rate/target; the lowest note gives the largest value.
func MaxOutputLength(sampleRateHz float64) int {
	if !isFinitePositive(sampleRateHz) {
		return 0
	}
	return int(math.Ceil(sampleRateHz/NoteFrequency(0))) + 1
}

// Repitch resamples grain from sourceHz to targetHz.
// Degenerate inputs (fewer than two frames, non-positive frequencies, or a
// zero output length) produce an empty sequence.
func Repitch(sourceHz, targetHz float64, grain *frame.Sequence) *frame.Sequence {
	return frame.FromFrames(RepitchInto(nil, sourceHz, targetHz, grain.Frames()))
}

// RepitchInto is Repitch writing into dst, reusing its capacity.
// It allocates only when cap(dst) is smaller than the output length.
func RepitchInto(dst []frame.Stereo, sourceHz, targetHz float64, grain []frame.Stereo) []frame.Stereo {
	factor, ok := Factor(sourceHz, targetHz)
	if !ok {
		return dst[:0]
	}
	n := OutputLength(len(grain), factor)
	if n == 0 {
		return dst[:0]
	}
	dst = ensureLen(dst, n)
	stretch(dst, grain, factor)
	return dst
}

// Resample converts seq recorded at fromRateHz to toRateHz with the same
// linear kernel used by Repitch. The last input frame maps onto the last
// output frame.
func Resample(seq *frame.Sequence, fromRateHz, toRateHz float64) *frame.Sequence {
	src := seq.Frames()
	if len(src) < 2 || fromRateHz == toRateHz {
		return seq
	}
	factor, ok := Factor(toRateHz, fromRateHz)
	if !ok {
		return frame.New(0)
	}
	n := int(math.Floor(float64(len(src)-1)*factor)) + 1
	dst := make([]frame.Stereo, n)
	stretch(dst, src, factor)
	return frame.FromFrames(dst)
}

// stretch fills every dst[i] from the fractional source position i/factor.
func stretch(dst, src []frame.Stereo, factor float64) {
	last := len(src) - 2
	for i := range dst {
		idx, frac := interp.Split(float64(i) / factor)
		if idx > last {
			idx, frac = last, 1
		}
		s0, s1 := src[idx], src[idx+1]
		w := float32(frac)
		dst[i] = frame.Stereo{
			L: interp.Linear32(w, s0.L, s1.L),
			R: interp.Linear32(w, s0.R, s1.R),
		}
	}
}

func ensureLen(buf []frame.Stereo, n int) []frame.Stereo {
	if cap(buf) >= n {
		return buf[:n]
	}
	return make([]frame.Stereo, n)
}

func isFinitePositive(v float64) bool {
	return v > 0 && !math.IsNaN(v) && !math.IsInf(v, 0)
}

package instrument

import (
	"fmt"
	"math"

	"github.com/cwbudde/algo-granular/dsp/frame"
	"github.com/cwbudde/algo-granular/dsp/grain"
	"github.com/cwbudde/algo-granular/dsp/pitch"
)

// State is the playback state of a Voice.
type State int

const (
	// Idle means no note is held; output is silent and the cursor is 0.
	Idle State = iota
	// Sounding means a note is held and the cursor advances every tick.
	Sounding
)

func (s State) String() string {
	switch s {
	case Idle:
		return "idle"
	case Sounding:
		return "sounding"
	}
	return fmt.Sprintf("State(%d)", int(s))
}

// Voice is the single-note grain playback state machine.
//
// A Voice loops either the raw grain or, in pitch mode, the grain re-pitched
// to the held note. Retriggering while Sounding keeps the cursor running.
//
// Voice never allocates after NewVoice and is not thread-safe.
type Voice struct {
	sampleRate float64

	source  *frame.Sequence
	grain   grain.Spec
	grainOK bool

	sizeFraction  float64
	startFraction float64
	pitchMode     bool

	note   uint8
	held   bool
	cursor uint64

	repitched []frame.Stereo
}

// NewVoice returns an Idle voice with no source at sampleRate Hz.
func NewVoice(sampleRate float64) (*Voice, error) {
	if sampleRate <= 0 || math.IsNaN(sampleRate) || math.IsInf(sampleRate, 0) {
		return nil, fmt.Errorf("instrument: sample rate must be > 0: %f", sampleRate)
	}
	return &Voice{
		sampleRate: sampleRate,
		repitched:  make([]frame.Stereo, 0, pitch.MaxOutputLength(sampleRate)),
	}, nil
}

// SampleRate returns the playback rate in Hz.
func (v *Voice) SampleRate() float64 { return v.sampleRate }

// State returns Idle or Sounding.
func (v *Voice) State() State {
	if v.held {
		return Sounding
	}
	return Idle
}

// Note returns the held note and whether one is held.
func (v *Voice) Note() (uint8, bool) { return v.note, v.held }

// Cursor returns the number of ticks since the voice left Idle.
func (v *Voice) Cursor() uint64 { return v.cursor }

// Grain returns the current grain and whether it is playable.
func (v *Voice) Grain() (grain.Spec, bool) { return v.grain, v.grainOK }

// Repitched returns the current re-pitched loop. Callers must not modify it.
func (v *Voice) Repitched() []frame.Stereo { return v.repitched }

// Source returns the sample the voice plays from.
func (v *Voice) Source() *frame.Sequence { return v.source }

// SetSource replaces the sample and re-derives the grain, and the
// re-pitched loop when a note is held in pitch mode. A nil or empty source
// is silent.
func (v *Voice) SetSource(seq *frame.Sequence) {
	v.source = seq
	v.reselect()
	v.refreshLoop()
}

// Configure updates the grain controls and re-derives the grain. If a note
// is held in pitch mode the loop is re-pitched immediately.
func (v *Voice) Configure(sizeFraction, startFraction float64, pitchMode bool) {
	v.sizeFraction = sizeFraction
	v.startFraction = startFraction
	v.pitchMode = pitchMode
	v.reselect()
	v.refreshLoop()
}

// NoteOn makes note the held note. The last note-on wins; the cursor is not
// reset on retrigger. Note numbers above 127 are ignored.
func (v *Voice) NoteOn(note uint8) {
	if note > pitch.MaxNote {
		return
	}
	v.note = note
	v.held = true
	v.reselect()
	v.refreshLoop()
}

// NoteOff releases note if it is the held note. Any other note, or a
// repeated release, is a no-op.
func (v *Voice) NoteOff(note uint8) {
	if !v.held || note != v.note {
		return
	}
	v.held = false
	v.cursor = 0
}

// Tick returns the next output frame and advances the cursor while Sounding.
func (v *Voice) Tick() frame.Stereo {
	if !v.held {
		return frame.Silence
	}

	out := frame.Silence
	if v.pitchMode {
		if n := uint64(len(v.repitched)); n > 0 {
			out = v.repitched[v.cursor%n]
		}
	} else if v.grainOK {
		out = v.source.At(v.grain.Index(v.cursor))
	}

	v.cursor++
	return out
}

func (v *Voice) reselect() {
	if v.source.Len() < grain.MinSamples {
		v.grain, v.grainOK = grain.Spec{}, false
		return
	}
	g, err := grain.Select(v.source.Len(), v.sampleRate, v.sizeFraction, v.startFraction)
	v.grain, v.grainOK = g, err == nil
}

// refreshLoop rebuilds the re-pitched loop for the held note. Outside pitch
// mode, without a note or without a grain the loop is left empty.
func (v *Voice) refreshLoop() {
	if !v.pitchMode || !v.held || !v.grainOK {
		v.repitched = v.repitched[:0]
		return
	}
	src := v.source.Frames()[v.grain.Start:v.grain.End()]
	v.repitched = pitch.RepitchInto(
		v.repitched,
		pitch.NaturalFrequency(v.grain.Length, v.sampleRate),
		pitch.NoteFrequency(int(v.note)),
		src,
	)
}

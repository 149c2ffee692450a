package instrument

import (
	"sync/atomic"

	"github.com/sirupsen/logrus"

	"github.com/cwbudde/algo-granular/dsp/frame"
	"github.com/cwbudde/algo-granular/instrument/param"
	"github.com/cwbudde/algo-granular/sample"
)

// OutputChannels is the number of output buffers Process writes.
const OutputChannels = 2

// Status describes the most recent sample load.
type Status struct {
	Index  int
	Name   string
	Frames int
	Err    error
}

// Instrument is a single-voice granular sample player.
//
// HandleMIDI, SetParameter and Process must be called from one goroutine
// (the host audio thread) and never block or allocate. Deliver is the only
// method meant for another goroutine: it hands a freshly decoded sample
// over to the audio thread, which picks it up at the start of the next
// Process call.
type Instrument struct {
	sampleRate float64
	logger     logrus.FieldLogger
	names      []string
	requester  Requester

	params      param.Set
	sampleIndex atomic.Int64
	voice       *Voice

	pending atomic.Pointer[frame.Sequence]
	status  atomic.Pointer[Status]
}

// New returns an instrument with no sample loaded.
func New(opts ...Option) (*Instrument, error) {
	cfg := defaultConfig()
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}

	voice, err := NewVoice(cfg.sampleRate)
	if err != nil {
		return nil, err
	}

	inst := &Instrument{
		sampleRate:  cfg.sampleRate,
		logger:      cfg.logger,
		names:       cfg.names,
		requester:   cfg.requester,
		params:      cfg.params,
		voice:       voice,
	}
	inst.sampleIndex.Store(-1)
	inst.status.Store(&Status{Index: -1})
	inst.configureVoice()
	inst.RequestSelectedSample()
	return inst, nil
}

// SetRequester attaches the sample reload scheduler and requests the
// currently selected sample. Call it before audio processing starts.
func (i *Instrument) SetRequester(r Requester) {
	i.requester = r
	i.RequestSelectedSample()
}

// SampleRate returns the playback rate in Hz.
func (i *Instrument) SampleRate() float64 { return i.sampleRate }

// Voice exposes the playback state machine.
func (i *Instrument) Voice() *Voice { return i.voice }

// Params returns a copy of the current parameter values.
func (i *Instrument) Params() param.Set { return i.params }

// SampleNames returns the selectable sample names.
func (i *Instrument) SampleNames() []string { return i.names }

// Status returns the most recent load status. Safe for concurrent use.
func (i *Instrument) Status() Status { return *i.status.Load() }

// Display renders the current value of a parameter for the host.
func (i *Instrument) Display(id param.ID) string {
	return i.params.Display(id, i.names)
}

// HandleMIDI applies a raw MIDI message. Unrecognised messages are ignored.
func (i *Instrument) HandleMIDI(raw []byte) {
	i.HandleEvent(ParseMIDI(raw))
}

// HandleEvent applies a parsed note event.
func (i *Instrument) HandleEvent(ev Event) {
	i.acceptPending()
	switch ev.Kind {
	case EventNoteOn:
		i.voice.NoteOn(ev.Note)
	case EventNoteOff:
		i.voice.NoteOff(ev.Note)
	case EventIgnored:
	}
}

// SetParameter stores a normalized parameter value. Grain controls take
// effect immediately; a sample selection change schedules a reload.
func (i *Instrument) SetParameter(id param.ID, value float64) {
	if !i.params.Update(id, value) {
		return
	}
	switch id {
	case param.GrainSize, param.GrainStart, param.PitchMode:
		i.configureVoice()
	case param.SampleSelect:
		i.RequestSelectedSample()
	}
}

// RequestSelectedSample schedules loading the sample picked by the
// SampleSelect parameter if it differs from the last one requested.
func (i *Instrument) RequestSelectedSample() {
	idx := i.params.SampleIndex(len(i.names))
	if idx < 0 || i.requester == nil || int64(idx) == i.sampleIndex.Load() {
		return
	}
	i.sampleIndex.Store(int64(idx))
	i.requester.Request(idx)
}

// Deliver hands a load result over to the audio thread. A failed load
// installs silence and is reported through the logger and Status; the same
// selection is requested again on the next RequestSelectedSample.
func (i *Instrument) Deliver(res sample.Result) {
	seq := res.Frames
	log := i.logger.WithFields(logrus.Fields{"index": res.Index, "sample": res.Name})
	if res.Err != nil {
		log.WithError(res.Err).Error("sample load failed, output muted")
		i.sampleIndex.CompareAndSwap(int64(res.Index), -1)
		seq = frame.New(0)
	} else {
		log.WithField("frames", seq.Len()).Info("sample ready")
	}
	i.status.Store(&Status{Index: res.Index, Name: res.Name, Frames: seq.Len(), Err: res.Err})
	i.Publish(seq)
}

// Publish queues seq to replace the playing sample. seq must not be
// modified afterwards. A nil seq is treated as silence.
func (i *Instrument) Publish(seq *frame.Sequence) {
	if seq == nil {
		seq = frame.New(0)
	}
	i.pending.Store(seq)
}

// Process renders one buffer. outputs must hold exactly OutputChannels
// buffers; any other count leaves them untouched. Frames past the shorter
// buffer are zeroed.
func (i *Instrument) Process(outputs [][]float32) {
	if len(outputs) != OutputChannels {
		return
	}
	i.acceptPending()

	left, right := outputs[0], outputs[1]
	n := min(len(left), len(right))
	for k := range n {
		f := i.voice.Tick()
		left[k] = f.L
		right[k] = f.R
	}
	clear(left[n:])
	clear(right[n:])
}

func (i *Instrument) acceptPending() {
	if seq := i.pending.Swap(nil); seq != nil {
		i.voice.SetSource(seq)
	}
}

func (i *Instrument) configureVoice() {
	i.voice.Configure(i.params.GrainSize(), i.params.GrainStart(), i.params.PitchMode())
}

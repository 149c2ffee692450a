package render

import (
	"encoding/binary"
	"math"

	"github.com/cwbudde/algo-granular/dsp/frame"
)

// DefaultBlockSize is the largest block passed to Process in one call.
const DefaultBlockSize = 512

// frameBytes is the size of one interleaved float32 stereo frame.
const frameBytes = 8

// Processor is the host-facing side of an instrument.
type Processor interface {
	HandleMIDI(raw []byte)
	Process(outputs [][]float32)
}

// Renderer pulls audio from a Processor while applying scheduled events.
// It is not thread-safe; all calls must come from the rendering goroutine.
type Renderer struct {
	proc      Processor
	events    []Event
	next      int
	pos       int64
	blockSize int

	left, right []float32
	outputs     [][]float32
	scratch     []frame.Stereo

	// carry holds the encoded frame split across two Read calls.
	carry              [frameBytes]byte
	carryOff, carryLen int
}

// NewRenderer returns a renderer starting at frame 0. events must be sorted
// by frame (see Schedule). blockSize <= 0 selects DefaultBlockSize.
func NewRenderer(proc Processor, events []Event, blockSize int) *Renderer {
	if blockSize <= 0 {
		blockSize = DefaultBlockSize
	}
	r := &Renderer{
		proc:      proc,
		events:    events,
		blockSize: blockSize,
		left:      make([]float32, blockSize),
		right:     make([]float32, blockSize),
	}
	r.outputs = [][]float32{nil, nil}
	return r
}

// Position returns the number of frames rendered so far.
func (r *Renderer) Position() int64 { return r.pos }

// Done reports whether every scheduled event has been applied.
func (r *Renderer) Done() bool { return r.next >= len(r.events) }

// Render fills dst with the next len(dst) frames.
func (r *Renderer) Render(dst []frame.Stereo) {
	for len(dst) > 0 {
		r.applyDue()

		n := min(len(dst), r.blockSize)
		if r.next < len(r.events) {
			if until := r.events[r.next].Frame - r.pos; until < int64(n) {
				n = int(until)
			}
		}

		r.outputs[0], r.outputs[1] = r.left[:n], r.right[:n]
		r.proc.Process(r.outputs)
		for i := range n {
			dst[i] = frame.Stereo{L: r.left[i], R: r.right[i]}
		}
		dst = dst[n:]
		r.pos += int64(n)
	}
	r.applyDue()
}

// RenderFrames renders n frames into a new sequence.
func (r *Renderer) RenderFrames(n int) *frame.Sequence {
	out := frame.New(n)
	r.Render(out.Frames())
	return out
}

// Read implements io.Reader producing interleaved float32 little-endian
// stereo. It fills p completely; a frame that does not fit is finished on
// the next call. Read never returns an error.
func (r *Renderer) Read(p []byte) (int, error) {
	n := copy(p, r.carry[r.carryOff:r.carryLen])
	r.carryOff += n
	p = p[n:]

	if frames := len(p) / frameBytes; frames > 0 {
		buf := r.renderScratch(frames)
		for i, f := range buf {
			putFrame(p[i*frameBytes:], f)
		}
		n += frames * frameBytes
		p = p[frames*frameBytes:]
	}

	if len(p) > 0 {
		putFrame(r.carry[:], r.renderScratch(1)[0])
		r.carryLen = frameBytes
		r.carryOff = copy(p, r.carry[:])
		n += r.carryOff
	}
	return n, nil
}

func (r *Renderer) renderScratch(frames int) []frame.Stereo {
	if cap(r.scratch) < frames {
		r.scratch = make([]frame.Stereo, frames)
	}
	buf := r.scratch[:frames]
	r.Render(buf)
	return buf
}

func putFrame(dst []byte, f frame.Stereo) {
	binary.LittleEndian.PutUint32(dst, math.Float32bits(f.L))
	binary.LittleEndian.PutUint32(dst[4:], math.Float32bits(f.R))
}

func (r *Renderer) applyDue() {
	for r.next < len(r.events) && r.events[r.next].Frame <= r.pos {
		r.proc.HandleMIDI(r.events[r.next].Message)
		r.next++
	}
}

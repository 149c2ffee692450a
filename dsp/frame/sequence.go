package frame

// Sequence is an ordered, index-addressable run of stereo frames.
// Its length never changes after construction; treat it as read-only once it
// has been handed to another goroutine.
type Sequence struct {
	frames []Stereo
}

// New returns a silent Sequence of n frames.
func New(n int) *Sequence {
	if n < 0 {
		n = 0
	}
	return &Sequence{frames: make([]Stereo, n)}
}

// FromFrames wraps an existing slice without copying.
func FromFrames(frames []Stereo) *Sequence {
	return &Sequence{frames: frames}
}

// Deinterleave pairs interleaved samples by index into stereo frames.
// An odd trailing sample is discarded.
func Deinterleave(samples []float32) *Sequence {
	n := len(samples) / 2
	frames := make([]Stereo, n)
	for i := range frames {
		frames[i] = Stereo{L: samples[2*i], R: samples[2*i+1]}
	}
	return &Sequence{frames: frames}
}

// FromChannels builds a Sequence from separate channel slices.
// The result is as long as the shorter input.
func FromChannels(left, right []float32) *Sequence {
	n := len(left)
	if len(right) < n {
		n = len(right)
	}
	frames := make([]Stereo, n)
	for i := range frames {
		frames[i] = Stereo{L: left[i], R: right[i]}
	}
	return &Sequence{frames: frames}
}

// Len returns the number of frames. A nil Sequence has length 0.
func (s *Sequence) Len() int {
	if s == nil {
		return 0
	}
	return len(s.frames)
}

// Empty reports whether the sequence holds no frames.
func (s *Sequence) Empty() bool {
	return s.Len() == 0
}

// At returns the frame at index i. It panics if i is out of range.
func (s *Sequence) At(i int) Stereo {
	return s.frames[i]
}

// Frames returns the underlying slice. Callers must not modify it.
func (s *Sequence) Frames() []Stereo {
	if s == nil {
		return nil
	}
	return s.frames
}

// Slice returns the sub-range [start, start+length) sharing memory with s.
// Bounds are clamped to the sequence.
func (s *Sequence) Slice(start, length int) *Sequence {
	n := s.Len()
	if start < 0 {
		start = 0
	}
	if start > n {
		start = n
	}
	end := start + length
	if length < 0 || end > n {
		end = n
	}
	return &Sequence{frames: s.frames[start:end:end]}
}

// Copy returns a deep copy of the sequence.
func (s *Sequence) Copy() *Sequence {
	out := make([]Stereo, s.Len())
	copy(out, s.Frames())
	return &Sequence{frames: out}
}

// Left extracts the left channel as float64 samples.
func (s *Sequence) Left() []float64 {
	return s.channel(0)
}

// Right extracts the right channel as float64 samples.
func (s *Sequence) Right() []float64 {
	return s.channel(1)
}

// Mono extracts the channel average as float64 samples.
func (s *Sequence) Mono() []float64 {
	out := make([]float64, s.Len())
	for i, f := range s.Frames() {
		out[i] = float64(f.Mono())
	}
	return out
}

func (s *Sequence) channel(ch int) []float64 {
	out := make([]float64, s.Len())
	for i, f := range s.Frames() {
		out[i] = float64(f.Channel(ch))
	}
	return out
}

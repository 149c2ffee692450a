package frame

// Stereo is one left/right sample pair at a single time index.
// Values are conventionally in [-1, 1] but are not clamped.
type Stereo struct {
	L float32
	R float32
}

// Silence is the zero frame.
var Silence = Stereo{}

// Mono returns the average of both channels.
func (s Stereo) Mono() float32 {
	return (s.L + s.R) / 2
}

// Channel returns the sample for channel 0 (left) or any other index (right).
func (s Stereo) Channel(ch int) float32 {
	if ch == 0 {
		return s.L
	}
	return s.R
}

// Lerp interpolates linearly from s towards next by frac in [0, 1].
func (s Stereo) Lerp(next Stereo, frac float32) Stereo {
	return Stereo{
		L: s.L + (next.L-s.L)*frac,
		R: s.R + (next.R-s.R)*frac,
	}
}

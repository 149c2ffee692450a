package render

import (
	"errors"
	"fmt"
	"io"
	"math"

	"github.com/go-audio/audio"
	"github.com/go-audio/wav"

	"github.com/cwbudde/algo-granular/dsp/frame"
)

const (
	wavFormatPCM   = 1
	wavFormatFloat = 3
)

// ErrBitDepth is returned for output bit depths other than 16 or 32.
var ErrBitDepth = errors.New("render: wav bit depth must be 16 or 32")

// WriteWAV encodes seq as a stereo WAV stream at sampleRate. bitDepth 16
// writes clipped integer PCM, 32 writes IEEE float.
func WriteWAV(w io.WriteSeeker, seq *frame.Sequence, sampleRate, bitDepth int) error {
	format := wavFormatPCM
	switch bitDepth {
	case 16:
	case 32:
		format = wavFormatFloat
	default:
		return fmt.Errorf("%w: %d", ErrBitDepth, bitDepth)
	}

	data := make([]int, 2*seq.Len())
	for i, f := range seq.Frames() {
		data[2*i] = encodeSample(f.L, bitDepth)
		data[2*i+1] = encodeSample(f.R, bitDepth)
	}

	enc := wav.NewEncoder(w, sampleRate, bitDepth, 2, format)
	buf := &audio.IntBuffer{
		Format:         &audio.Format{NumChannels: 2, SampleRate: sampleRate},
		Data:           data,
		SourceBitDepth: bitDepth,
	}
	if err := enc.Write(buf); err != nil {
		return fmt.Errorf("render: write wav: %w", err)
	}
	if err := enc.Close(); err != nil {
		return fmt.Errorf("render: close wav: %w", err)
	}
	return nil
}

func encodeSample(v float32, bitDepth int) int {
	if bitDepth == 32 {
		return int(int32(math.Float32bits(v)))
	}
	c := math.Max(-1, math.Min(1, float64(v)))
	return int(math.Round(c * 32767))
}

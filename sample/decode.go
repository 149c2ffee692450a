package sample

import (
	"bytes"
	"context"
	"encoding/binary"
	"fmt"
	"io"
	"math"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-audio/riff"
	"github.com/go-audio/wav"
	"github.com/hajimehoshi/go-mp3"

	"github.com/cwbudde/algo-granular/dsp/frame"
)

const (
	wavFormatPCM        = 1
	wavFormatFloat      = 3
	wavFormatExtensible = 0xFFFE
)

// guidTail is the part of a WAVE_FORMAT_EXTENSIBLE SubFormat GUID that
// follows the two byte format code.
var guidTail = []byte{0x00, 0x00, 0x00, 0x00, 0x10, 0x00, 0x80, 0x00, 0x00, 0xAA, 0x00, 0x38, 0x9B, 0x71}

// Decoded is a decoded sample with its native sample rate.
type Decoded struct {
	Frames     *frame.Sequence
	SampleRate int
}

// DecodeFile opens path and decodes it according to its extension.
func DecodeFile(ctx context.Context, path string) (Decoded, error) {
	if err := ctx.Err(); err != nil {
		return Decoded{}, err
	}
	f, err := os.Open(path)
	if err != nil {
		return Decoded{}, ioError("open", path, err)
	}
	defer f.Close()

	switch strings.ToLower(filepath.Ext(path)) {
	case ".wav", ".wave":
		return DecodeWAV(f)
	case ".mp3":
		return DecodeMP3(f)
	}
	return Decoded{}, fmt.Errorf("%w: %s", ErrUnsupportedSampleFormat, filepath.Ext(path))
}

// DecodeWAV decodes a RIFF/WAVE stream. Integer PCM must be 16 or 32 bits,
// float data 32 bits. WAVE_FORMAT_EXTENSIBLE files are accepted with a PCM or
// IEEE float subformat. Mono data is copied to both channels; wider files
// keep their first two channels.
func DecodeWAV(r io.ReadSeeker) (Decoded, error) {
	start, err := r.Seek(0, io.SeekCurrent)
	if err != nil {
		return Decoded{}, fmt.Errorf("%w: seek wav: %w", ErrIO, err)
	}
	dec := wav.NewDecoder(r)
	if !dec.IsValidFile() {
		return Decoded{}, fmt.Errorf("%w: not a valid WAV stream", ErrUnsupportedSampleFormat)
	}

	format := int(dec.WavAudioFormat)
	if format == wavFormatExtensible {
		if format, err = extensibleSubFormat(r, start); err != nil {
			return Decoded{}, err
		}
		if _, err := r.Seek(start, io.SeekStart); err != nil {
			return Decoded{}, fmt.Errorf("%w: seek wav: %w", ErrIO, err)
		}
		dec = wav.NewDecoder(r)
		if !dec.IsValidFile() {
			return Decoded{}, fmt.Errorf("%w: not a valid WAV stream", ErrUnsupportedSampleFormat)
		}
	}

	bits := int(dec.BitDepth)
	switch format {
	case wavFormatPCM:
		if bits != 16 && bits != 32 {
			return Decoded{}, &UnsupportedBitsPerSampleError{Bits: bits}
		}
	case wavFormatFloat:
		if bits != 32 {
			return Decoded{}, &UnsupportedBitsPerSampleError{Bits: bits}
		}
	default:
		return Decoded{}, fmt.Errorf("%w: wav format tag %d", ErrUnsupportedSampleFormat, format)
	}

	buf, err := dec.FullPCMBuffer()
	if err != nil {
		return Decoded{}, fmt.Errorf("%w: decode wav: %w", ErrIO, err)
	}

	samples := make([]float32, len(buf.Data))
	switch {
	case format == wavFormatFloat:
		for i, v := range buf.Data {
			samples[i] = math.Float32frombits(uint32(int32(v)))
		}
	case bits == 16:
		for i, v := range buf.Data {
			samples[i] = float32(v) / 32768
		}
	default:
		for i, v := range buf.Data {
			samples[i] = float32(float64(v) / 2147483648)
		}
	}

	return Decoded{
		Frames:     toStereo(samples, int(dec.NumChans)),
		SampleRate: int(dec.SampleRate),
	}, nil
}

// extensibleSubFormat reads the SubFormat GUID of the fmt chunk of the RIFF
// stream at offset start and returns its format code.
func extensibleSubFormat(r io.ReadSeeker, start int64) (int, error) {
	if _, err := r.Seek(start, io.SeekStart); err != nil {
		return 0, fmt.Errorf("%w: seek wav: %w", ErrIO, err)
	}
	p := riff.New(r)
	if err := p.ParseHeaders(); err != nil {
		return 0, fmt.Errorf("%w: %w", ErrUnsupportedSampleFormat, err)
	}
	for {
		ch, err := p.NextChunk()
		if err != nil {
			return 0, fmt.Errorf("%w: wav fmt chunk not found", ErrUnsupportedSampleFormat)
		}
		if ch.ID != riff.FmtID {
			ch.Drain()
			continue
		}
		buf := make([]byte, ch.Size)
		if _, err := io.ReadFull(ch, buf); err != nil {
			return 0, fmt.Errorf("%w: read wav fmt chunk: %w", ErrIO, err)
		}
		if len(buf) < 40 {
			return 0, fmt.Errorf("%w: extensible fmt chunk is %d bytes", ErrUnsupportedSampleFormat, len(buf))
		}
		guid := buf[24:40]
		if !bytes.Equal(guid[2:], guidTail) {
			return 0, fmt.Errorf("%w: unknown wav subformat % x", ErrUnsupportedSampleFormat, guid)
		}
		return int(binary.LittleEndian.Uint16(guid)), nil
	}
}

// DecodeMP3 decodes an MPEG-1/2 layer III stream. go-mp3 always yields
// 16-bit little-endian stereo.
func DecodeMP3(r io.Reader) (Decoded, error) {
	dec, err := mp3.NewDecoder(r)
	if err != nil {
		return Decoded{}, fmt.Errorf("%w: mp3: %w", ErrUnsupportedSampleFormat, err)
	}
	raw, err := io.ReadAll(dec)
	if err != nil {
		return Decoded{}, fmt.Errorf("%w: decode mp3: %w", ErrIO, err)
	}

	samples := make([]float32, len(raw)/2)
	for i := range samples {
		samples[i] = float32(int16(binary.LittleEndian.Uint16(raw[2*i:]))) / 32768
	}
	return Decoded{
		Frames:     frame.Deinterleave(samples),
		SampleRate: dec.SampleRate(),
	}, nil
}

// toStereo keeps the first two channels of each interleaved frame. Mono is
// duplicated to both sides.
func toStereo(samples []float32, channels int) *frame.Sequence {
	switch {
	case channels <= 1:
		return frame.FromChannels(samples, samples)
	case channels == 2:
		return frame.Deinterleave(samples)
	}
	n := len(samples) / channels
	seq := frame.New(n)
	out := seq.Frames()
	for i := range out {
		out[i] = frame.Stereo{L: samples[i*channels], R: samples[i*channels+1]}
	}
	return seq
}

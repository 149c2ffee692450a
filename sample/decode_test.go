package sample

import (
	"bytes"
	"context"
	"encoding/binary"
	"errors"
	"math"
	"os"
	"path/filepath"
	"testing"

	"github.com/go-audio/audio"
	"github.com/go-audio/wav"
	"github.com/stretchr/testify/require"
)

func writeWAV(t *testing.T, path string, rate, bits, channels, format int, data []int) {
	t.Helper()
	f, err := os.Create(path)
	require.NoError(t, err)
	defer f.Close()

	enc := wav.NewEncoder(f, rate, bits, channels, format)
	buf := &audio.IntBuffer{
		Format:         &audio.Format{NumChannels: channels, SampleRate: rate},
		Data:           data,
		SourceBitDepth: bits,
	}
	require.NoError(t, enc.Write(buf))
	require.NoError(t, enc.Close())
}

func floatBits(values ...float32) []int {
	out := make([]int, len(values))
	for i, v := range values {
		out[i] = int(int32(math.Float32bits(v)))
	}
	return out
}

func TestDecodeWAV16BitStereo(t *testing.T) {
	path := filepath.Join(t.TempDir(), "stereo16.wav")
	writeWAV(t, path, 44100, 16, 2, wavFormatPCM, []int{16384, -16384, 0, 8192, -32768, 0})

	dec, err := DecodeFile(context.Background(), path)
	require.NoError(t, err)
	require.Equal(t, 44100, dec.SampleRate)
	require.Equal(t, 3, dec.Frames.Len())
	require.InDelta(t, 0.5, dec.Frames.At(0).L, 1e-6)
	require.InDelta(t, -0.5, dec.Frames.At(0).R, 1e-6)
	require.InDelta(t, 0.25, dec.Frames.At(1).R, 1e-6)
	require.InDelta(t, -1.0, dec.Frames.At(2).L, 1e-6)
}

func TestDecodeWAV32BitFloat(t *testing.T) {
	path := filepath.Join(t.TempDir(), "float.wav")
	writeWAV(t, path, 48000, 32, 2, wavFormatFloat, floatBits(0.125, -0.75, 1, -1))

	dec, err := DecodeFile(context.Background(), path)
	require.NoError(t, err)
	require.Equal(t, 48000, dec.SampleRate)
	require.Equal(t, 2, dec.Frames.Len())
	require.Equal(t, float32(0.125), dec.Frames.At(0).L)
	require.Equal(t, float32(-0.75), dec.Frames.At(0).R)
	require.Equal(t, float32(-1), dec.Frames.At(1).R)
}

func TestDecodeWAV32BitInt(t *testing.T) {
	path := filepath.Join(t.TempDir(), "int32.wav")
	writeWAV(t, path, 44100, 32, 2, wavFormatPCM, []int{1 << 30, -(1 << 30)})

	dec, err := DecodeFile(context.Background(), path)
	require.NoError(t, err)
	require.Equal(t, 1, dec.Frames.Len())
	require.InDelta(t, 0.5, dec.Frames.At(0).L, 1e-6)
	require.InDelta(t, -0.5, dec.Frames.At(0).R, 1e-6)
}

func TestDecodeWAVMonoDuplicatesChannel(t *testing.T) {
	path := filepath.Join(t.TempDir(), "mono.wav")
	writeWAV(t, path, 44100, 16, 1, wavFormatPCM, []int{16384, -8192, 0})

	dec, err := DecodeFile(context.Background(), path)
	require.NoError(t, err)
	require.Equal(t, 3, dec.Frames.Len())
	for _, f := range dec.Frames.Frames() {
		require.Equal(t, f.L, f.R)
	}
}

func TestDecodeWAVRejectsBitDepth(t *testing.T) {
	for _, bits := range []int{8, 24} {
		path := filepath.Join(t.TempDir(), "bad.wav")
		writeWAV(t, path, 44100, bits, 2, wavFormatPCM, []int{1, 2, 3, 4})

		_, err := DecodeFile(context.Background(), path)
		var bitsErr *UnsupportedBitsPerSampleError
		require.True(t, errors.As(err, &bitsErr), "bits=%d err=%v", bits, err)
		require.Equal(t, bits, bitsErr.Bits)
	}
}

func TestDecodeRejectsGarbage(t *testing.T) {
	_, err := DecodeWAV(bytes.NewReader([]byte("definitely not a riff file")))
	require.ErrorIs(t, err, ErrUnsupportedSampleFormat)

	_, err = DecodeMP3(bytes.NewReader(nil))
	require.ErrorIs(t, err, ErrUnsupportedSampleFormat)
}

func TestDecodeFileErrors(t *testing.T) {
	dir := t.TempDir()

	_, err := DecodeFile(context.Background(), filepath.Join(dir, "missing.wav"))
	require.ErrorIs(t, err, ErrIO)

	txt := filepath.Join(dir, "notes.txt")
	require.NoError(t, os.WriteFile(txt, []byte("hi"), 0o644))
	_, err = DecodeFile(context.Background(), txt)
	require.ErrorIs(t, err, ErrUnsupportedSampleFormat)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = DecodeFile(ctx, txt)
	require.ErrorIs(t, err, context.Canceled)
}

func TestToStereoKeepsFirstTwoChannels(t *testing.T) {
	seq := toStereo([]float32{1, 2, 3, 4, 5, 6, 7, 8}, 4)
	require.Equal(t, 2, seq.Len())
	require.Equal(t, float32(1), seq.At(0).L)
	require.Equal(t, float32(2), seq.At(0).R)
	require.Equal(t, float32(5), seq.At(1).L)
	require.Equal(t, float32(6), seq.At(1).R)
}

// extensibleWAV builds a WAVE_FORMAT_EXTENSIBLE stream with the given
// subformat code.
func extensibleWAV(t *testing.T, code uint16, bits, channels int, payload []byte) []byte {
	t.Helper()
	const rate = 44100
	blockAlign := channels * bits / 8

	var fmtChunk bytes.Buffer
	for _, v := range []any{
		uint16(wavFormatExtensible), uint16(channels), uint32(rate),
		uint32(rate * blockAlign), uint16(blockAlign), uint16(bits),
		uint16(22), uint16(bits), uint32(3), code,
	} {
		require.NoError(t, binary.Write(&fmtChunk, binary.LittleEndian, v))
	}
	fmtChunk.Write(guidTail)

	var body bytes.Buffer
	body.WriteString("WAVE")
	writeChunk := func(id string, data []byte) {
		body.WriteString(id)
		require.NoError(t, binary.Write(&body, binary.LittleEndian, uint32(len(data))))
		body.Write(data)
	}
	writeChunk("fmt ", fmtChunk.Bytes())
	writeChunk("data", payload)

	var out bytes.Buffer
	out.WriteString("RIFF")
	require.NoError(t, binary.Write(&out, binary.LittleEndian, uint32(body.Len())))
	out.Write(body.Bytes())
	return out.Bytes()
}

func TestDecodeWAVExtensiblePCM(t *testing.T) {
	var payload bytes.Buffer
	for _, v := range []int16{16384, -16384, 8192, 0} {
		require.NoError(t, binary.Write(&payload, binary.LittleEndian, v))
	}
	raw := extensibleWAV(t, wavFormatPCM, 16, 2, payload.Bytes())

	dec, err := DecodeWAV(bytes.NewReader(raw))
	require.NoError(t, err)
	require.Equal(t, 44100, dec.SampleRate)
	require.Equal(t, 2, dec.Frames.Len())
	require.InDelta(t, 0.5, dec.Frames.At(0).L, 1e-6)
	require.InDelta(t, -0.5, dec.Frames.At(0).R, 1e-6)
	require.InDelta(t, 0.25, dec.Frames.At(1).L, 1e-6)
}

func TestDecodeWAVExtensibleFloat(t *testing.T) {
	var payload bytes.Buffer
	for _, v := range []float32{0.125, -0.75} {
		require.NoError(t, binary.Write(&payload, binary.LittleEndian, v))
	}
	raw := extensibleWAV(t, wavFormatFloat, 32, 2, payload.Bytes())

	dec, err := DecodeWAV(bytes.NewReader(raw))
	require.NoError(t, err)
	require.Equal(t, 1, dec.Frames.Len())
	require.Equal(t, float32(0.125), dec.Frames.At(0).L)
	require.Equal(t, float32(-0.75), dec.Frames.At(0).R)
}

func TestDecodeWAVExtensibleUnknownSubformat(t *testing.T) {
	raw := extensibleWAV(t, 0x0055, 16, 2, make([]byte, 8))
	_, err := DecodeWAV(bytes.NewReader(raw))
	require.ErrorIs(t, err, ErrUnsupportedSampleFormat)
}

package sample

import (
	"errors"
	"fmt"
)

var (
	// ErrUnsupportedSampleFormat is returned for encodings other than integer
	// PCM or IEEE float, and for file types no decoder handles.
	ErrUnsupportedSampleFormat = errors.New("sample: unsupported sample format")

	// ErrIO wraps failures to open or read a sample.
	ErrIO = errors.New("sample: i/o failure")

	// ErrUnknownSample is returned for indices outside the configured list.
	ErrUnknownSample = errors.New("sample: unknown sample index")
)

// UnsupportedBitsPerSampleError reports a bit depth the decoder rejects.
type UnsupportedBitsPerSampleError struct {
	Bits int
}

func (e *UnsupportedBitsPerSampleError) Error() string {
	return fmt.Sprintf("sample: unsupported bits per sample: %d", e.Bits)
}

func ioError(op, path string, err error) error {
	return fmt.Errorf("%w: %s %s: %w", ErrIO, op, path, err)
}

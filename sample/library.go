package sample

import (
	"context"
	"path/filepath"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/cwbudde/algo-granular/dsp/frame"
	"github.com/cwbudde/algo-granular/dsp/pitch"
)

// Source produces the frames of a selectable sample.
type Source interface {
	Load(ctx context.Context, index int) (*frame.Sequence, error)
	Name(index int) string
}

// Library resolves samples through a Config and decodes them at a fixed
// playback rate.
type Library struct {
	cfg        *Config
	sampleRate float64
	logger     logrus.FieldLogger
}

// NewLibrary returns a library producing frames at sampleRate Hz.
func NewLibrary(cfg *Config, sampleRate float64, logger logrus.FieldLogger) *Library {
	if cfg == nil {
		cfg = DefaultConfig()
	}
	if logger == nil {
		logger = logrus.StandardLogger()
	}
	return &Library{cfg: cfg, sampleRate: sampleRate, logger: logger}
}

// Names returns the file names of all selectable samples, in index order.
func (l *Library) Names() []string {
	names := l.cfg.Names()
	for i, n := range names {
		names[i] = filepath.Base(n)
	}
	return names
}

// Name returns the file name of sample index, or "" if unknown.
func (l *Library) Name(index int) string {
	if index < 0 || index >= len(l.cfg.Samples) {
		return ""
	}
	return filepath.Base(l.cfg.Samples[index])
}

// Load decodes sample index and converts it to the library rate.
func (l *Library) Load(ctx context.Context, index int) (*frame.Sequence, error) {
	path, err := l.cfg.Resolve(index)
	if err != nil {
		return nil, err
	}
	return l.LoadFile(ctx, path)
}

// LoadFile decodes an arbitrary file and converts it to the library rate.
func (l *Library) LoadFile(ctx context.Context, path string) (*frame.Sequence, error) {
	start := time.Now()
	dec, err := DecodeFile(ctx, path)
	if err != nil {
		return nil, err
	}

	log := l.logger.WithFields(logrus.Fields{
		"path":   path,
		"frames": dec.Frames.Len(),
		"rate":   dec.SampleRate,
	})

	seq := dec.Frames
	if dec.SampleRate > 0 && float64(dec.SampleRate) != l.sampleRate {
		seq = pitch.Resample(seq, float64(dec.SampleRate), l.sampleRate)
		log = log.WithField("resampled", seq.Len())
	}
	log.WithField("elapsed", time.Since(start)).Debug("decoded sample")
	return seq, nil
}

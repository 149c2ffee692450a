package instrument

import (
	"github.com/sirupsen/logrus"

	"github.com/cwbudde/algo-granular/instrument/param"
)

// DefaultSampleRate is used when no WithSampleRate option is given.
const DefaultSampleRate = 44100.0

// Requester schedules a sample reload off the audio thread.
// Request must not block.
type Requester interface {
	Request(index int)
}

type config struct {
	sampleRate float64
	logger     logrus.FieldLogger
	names      []string
	requester  Requester
	params     param.Set
}

// Option mutates the instrument configuration.
type Option func(*config)

func defaultConfig() config {
	return config{
		sampleRate: DefaultSampleRate,
		logger:     logrus.StandardLogger(),
		params:     param.Defaults(),
	}
}

// WithSampleRate sets the playback sample rate.
func WithSampleRate(sampleRate float64) Option {
	return func(cfg *config) {
		if sampleRate > 0 {
			cfg.sampleRate = sampleRate
		}
	}
}

// WithLogger sets the logger used for load status reporting.
func WithLogger(logger logrus.FieldLogger) Option {
	return func(cfg *config) {
		if logger != nil {
			cfg.logger = logger
		}
	}
}

// WithSampleNames sets the selectable sample names shown for SampleSelect.
func WithSampleNames(names ...string) Option {
	return func(cfg *config) {
		cfg.names = append([]string(nil), names...)
	}
}

// WithRequester sets where sample reloads are scheduled.
func WithRequester(r Requester) Option {
	return func(cfg *config) {
		cfg.requester = r
	}
}

// WithParameter sets the initial normalized value of a parameter.
func WithParameter(id param.ID, value float64) Option {
	return func(cfg *config) {
		cfg.params.Update(id, value)
	}
}

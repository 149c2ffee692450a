package sample

import (
	"context"
	"sync"

	"github.com/sirupsen/logrus"

	"github.com/cwbudde/algo-granular/dsp/frame"
)

// Result is the outcome of one load request.
type Result struct {
	Index  int
	Name   string
	Frames *frame.Sequence
	Err    error
}

// Sink receives load results on the loader goroutine.
type Sink interface {
	Deliver(Result)
}

// SinkFunc adapts a function to Sink.
type SinkFunc func(Result)

// Deliver calls f(res).
func (f SinkFunc) Deliver(res Result) { f(res) }

// Loader decodes samples on its own goroutine. Request never blocks; when
// requests arrive faster than they can be served, only the latest pending
// one is kept.
type Loader struct {
	source Source
	sink   Sink
	logger logrus.FieldLogger

	requests chan int
	wg       sync.WaitGroup
}

// NewLoader returns a stopped loader. Call Start to begin serving requests.
func NewLoader(source Source, sink Sink, logger logrus.FieldLogger) *Loader {
	if logger == nil {
		logger = logrus.StandardLogger()
	}
	return &Loader{
		source:   source,
		sink:     sink,
		logger:   logger,
		requests: make(chan int, 1),
	}
}

// Start serves requests until ctx is cancelled.
func (l *Loader) Start(ctx context.Context) {
	l.wg.Add(1)
	go func() {
		defer l.wg.Done()
		l.run(ctx)
	}()
}

// Wait blocks until the loader goroutine has exited.
func (l *Loader) Wait() { l.wg.Wait() }

// Request schedules loading sample index, replacing any request that has
// not been picked up yet.
func (l *Loader) Request(index int) {
	for {
		select {
		case l.requests <- index:
			return
		default:
		}
		select {
		case <-l.requests:
		default:
		}
	}
}

// LoadNow loads index synchronously on the calling goroutine and delivers
// the result.
func (l *Loader) LoadNow(ctx context.Context, index int) Result {
	res := l.load(ctx, index)
	l.sink.Deliver(res)
	return res
}

func (l *Loader) run(ctx context.Context) {
	for {
		select {
		case <-ctx.Done():
			return
		case index := <-l.requests:
			res := l.load(ctx, index)
			if ctx.Err() != nil {
				return
			}
			l.sink.Deliver(res)
		}
	}
}

func (l *Loader) load(ctx context.Context, index int) Result {
	name := l.source.Name(index)
	log := l.logger.WithFields(logrus.Fields{"index": index, "sample": name})
	log.Debug("loading sample")

	seq, err := l.source.Load(ctx, index)
	if err != nil {
		log.WithError(err).Warn("sample load failed")
		return Result{Index: index, Name: name, Err: err}
	}
	return Result{Index: index, Name: name, Frames: seq}
}

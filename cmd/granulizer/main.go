// Command granulizer renders or plays notes through the granular sampler.
//
// Usage:
//
//	granulizer [flags]
//
// The sample comes from the configured library (-config, -sample) or from a
// file given with -file. Notes are listed as key@start+duration items.
//
// Examples:
//
//	granulizer -file pads.wav -notes 60,64,67 -out chord.wav
//	granulizer -sample 1 -pitch -size 0.2 -notes "69@0s+2s" -analyze -out a4.wav
//	granulizer -file pads.wav -pitch -notes 48,55,60 -play
//	granulizer -params
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/cwbudde/algo-granular/instrument"
	"github.com/cwbudde/algo-granular/instrument/param"
	"github.com/cwbudde/algo-granular/measure/fundamental"
	"github.com/cwbudde/algo-granular/render"
	"github.com/cwbudde/algo-granular/sample"
)

const releaseTail = 100 * time.Millisecond

type options struct {
	configPath string
	file       string
	sampleIdx  int
	rate       float64
	size       float64
	start      float64
	pitch      bool
	notes      string
	out        string
	bits       int
	play       bool
	analyze    bool
	params     bool
	verbose    bool
}

func main() {
	var opts options
	defaultConfig, _ := sample.ConfigPath()

	flag.StringVar(&opts.configPath, "config", defaultConfig, "sample library config (JSON)")
	flag.StringVar(&opts.file, "file", "", "play this sample file instead of the library")
	flag.IntVar(&opts.sampleIdx, "sample", 0, "library sample index")
	flag.Float64Var(&opts.rate, "rate", instrument.DefaultSampleRate, "output sample rate in Hz")
	flag.Float64Var(&opts.size, "size", param.GrainSize.Info().Default, "grain size in [0,1]")
	flag.Float64Var(&opts.start, "start", param.GrainStart.Info().Default, "grain start in [0,0.99]")
	flag.BoolVar(&opts.pitch, "pitch", false, "re-pitch the grain to each note")
	flag.StringVar(&opts.notes, "notes", "69", "notes as key@start+duration, comma separated")
	flag.StringVar(&opts.out, "out", "", "write the rendering to this WAV file")
	flag.IntVar(&opts.bits, "bits", 16, "WAV bit depth (16 or 32)")
	flag.BoolVar(&opts.play, "play", false, "play through the audio device")
	flag.BoolVar(&opts.analyze, "analyze", false, "print the dominant frequency of the rendering")
	flag.BoolVar(&opts.params, "params", false, "print parameter values and exit")
	flag.BoolVar(&opts.verbose, "v", false, "debug logging")
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: granulizer [flags]\n\n")
		fmt.Fprintf(os.Stderr, "Renders or plays notes through the granular sampler.\n\n")
		fmt.Fprintf(os.Stderr, "Flags:\n")
		flag.PrintDefaults()
	}
	flag.Parse()

	logger := logrus.New()
	logger.SetOutput(os.Stderr)
	if opts.verbose {
		logger.SetLevel(logrus.DebugLevel)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := run(ctx, opts, logger); err != nil {
		logger.WithError(err).Error("granulizer failed")
		os.Exit(1)
	}
}

func run(ctx context.Context, opts options, logger *logrus.Logger) error {
	cfg, err := sample.LoadConfig(opts.configPath)
	if err != nil {
		return err
	}
	if opts.file != "" {
		path, err := filepath.Abs(opts.file)
		if err != nil {
			return fmt.Errorf("resolve %s: %w", opts.file, err)
		}
		cfg = &sample.Config{BaseDir: cfg.BaseDir, Samples: []string{path}}
		opts.sampleIdx = 0
	}
	lib := sample.NewLibrary(cfg, opts.rate, logger)
	names := lib.Names()

	selector := 0.0
	if len(names) > 0 {
		selector = (float64(opts.sampleIdx) + 0.5) / float64(len(names))
	}
	pitchMode := 0.0
	if opts.pitch {
		pitchMode = 1
	}

	inst, err := instrument.New(
		instrument.WithSampleRate(opts.rate),
		instrument.WithLogger(logger),
		instrument.WithSampleNames(names...),
		instrument.WithParameter(param.GrainSize, opts.size),
		instrument.WithParameter(param.GrainStart, opts.start),
		instrument.WithParameter(param.PitchMode, pitchMode),
		instrument.WithParameter(param.SampleSelect, selector),
	)
	if err != nil {
		return err
	}

	if opts.params {
		fmt.Println(renderParams(inst))
		return nil
	}

	notes, err := render.ParseNotes(opts.notes)
	if err != nil {
		return err
	}
	events := render.Schedule(notes, opts.rate)
	total := int(render.Span(events)) + int(releaseTail.Seconds()*opts.rate)

	loader := sample.NewLoader(lib, inst, logger)

	if opts.play {
		return play(ctx, inst, loader, events, total)
	}

	params := inst.Params()
	idx := params.SampleIndex(len(names))
	if res := loader.LoadNow(ctx, idx); res.Err != nil {
		logger.WithError(res.Err).Warn("rendering silence")
	}

	seq := render.NewRenderer(inst, events, 0).RenderFrames(total)
	fmt.Println(renderStatus(inst, seq.Len()))

	if opts.analyze {
		hz, err := fundamental.Estimate(seq.Left(), opts.rate)
		if err != nil {
			logger.WithError(err).Warn("analysis failed")
		} else {
			fmt.Printf("dominant frequency: %.2f Hz\n", hz)
		}
	}

	if opts.out == "" {
		return nil
	}
	f, err := os.Create(opts.out)
	if err != nil {
		return fmt.Errorf("create %s: %w", opts.out, err)
	}
	if err := render.WriteWAV(f, seq, int(opts.rate), opts.bits); err != nil {
		_ = f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("close %s: %w", opts.out, err)
	}
	logger.WithFields(logrus.Fields{"path": opts.out, "frames": seq.Len()}).Info("wrote rendering")
	return nil
}

// play streams through the audio device. The sample loads asynchronously
// while the device is already pulling audio, the way a host would see it.
func play(ctx context.Context, inst *instrument.Instrument, loader *sample.Loader, events []render.Event, total int) error {
	out, err := openOutput(int(inst.SampleRate()))
	if err != nil {
		return err
	}
	defer out.Close()

	loadCtx, cancel := context.WithCancel(ctx)
	defer func() {
		cancel()
		loader.Wait()
	}()
	loader.Start(loadCtx)
	inst.SetRequester(loader)

	out.Play(render.NewRenderer(inst, events, 0))

	length := time.Duration(float64(total) / inst.SampleRate() * float64(time.Second))
	select {
	case <-ctx.Done():
	case <-time.After(length):
	}
	return nil
}

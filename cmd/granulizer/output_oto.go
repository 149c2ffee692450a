//go:build !headless

package main

import (
	"fmt"
	"io"
	"sync"

	"github.com/ebitengine/oto/v3"
)

type output struct {
	ctx    *oto.Context
	player *oto.Player
	mu     sync.Mutex
}

func openOutput(sampleRate int) (*output, error) {
	ctx, ready, err := oto.NewContext(&oto.NewContextOptions{
		SampleRate:   sampleRate,
		ChannelCount: 2,
		Format:       oto.FormatFloat32LE,
	})
	if err != nil {
		return nil, fmt.Errorf("open audio device: %w", err)
	}
	<-ready
	return &output{ctx: ctx}, nil
}

// Play starts pulling audio from r on the device's goroutine.
func (o *output) Play(r io.Reader) {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.player = o.ctx.NewPlayer(r)
	o.player.Play()
}

func (o *output) Close() error {
	o.mu.Lock()
	defer o.mu.Unlock()
	if o.player == nil {
		return nil
	}
	err := o.player.Close()
	o.player = nil
	return err
}

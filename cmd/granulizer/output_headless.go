//go:build headless

package main

import (
	"errors"
	"io"
)

type output struct{}

func openOutput(int) (*output, error) {
	return nil, errors.New("audio output is not available in headless builds")
}

func (o *output) Play(io.Reader) {}

func (o *output) Close() error { return nil }

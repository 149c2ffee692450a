// Package render drives an instrument offline or from a pull-based audio
// backend.
//
// A [Renderer] owns the processing goroutine: it applies scheduled MIDI
// events at their exact frame offsets and calls Process for the frames in
// between, so events and audio are always serialized the way a plugin host
// serializes them.
package render

// Package frame provides the stereo frame type and the immutable frame
// sequence used as the in-memory representation of a decoded sample.
//
// A nil or zero-length [Sequence] is the canonical silent buffer: every
// consumer in this module treats it as "nothing to play" rather than as an
// error.
package frame

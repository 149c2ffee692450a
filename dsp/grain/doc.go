// Package grain maps normalized grain controls onto a playback sub-range of
// a source sample.
//
// A grain is at least [MinSamples] frames long and at most 500 ms (or the
// whole source, whichever is shorter). Start position is expressed as a
// fraction of the source and is pulled back so the grain never runs past the
// end of the source.
package grain

// Package pitch re-pitches stereo grains by linear-interpolation resampling.
//
// A grain looped at its natural length repeats at [NaturalFrequency] Hz.
// [Repitch] stretches or shrinks the grain so that the loop repeats at a
// target frequency instead, usually a MIDI note from [NoteFrequency]:
//
//	factor = sourceHz / targetHz
//	len(out) = floor((len(grain)-1) * factor)
//
// Pitching up (target above source) shortens the loop; pitching down
// lengthens it.
package pitch

// Package fundamental estimates the dominant frequency of a rendered signal.
//
// The estimate is the Hann-windowed FFT magnitude peak refined by parabolic
// interpolation over its neighbours. It is intended for verifying that looped
// and re-pitched grains land on the expected note, not as a general pitch
// tracker: signals whose strongest partial is not the fundamental report that
// partial instead.
package fundamental

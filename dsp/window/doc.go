// Package window generates the tapering windows used before spectral
// analysis of rendered grains.
//
// Only the cosine-sum family is provided: Rectangular, Hann, Hamming and
// Blackman, each in symmetric or periodic form.
package window

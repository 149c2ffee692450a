// Package spectrum provides helpers on FFT output bins.
//
// The package does not implement the FFT itself. It works on complex bins
// produced by an external backend and offers magnitude extraction and peak
// location with sub-bin refinement.
package spectrum

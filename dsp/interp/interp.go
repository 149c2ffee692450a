package interp

import "math"

// Linear2 interpolates from x0 towards x1 by t in [0, 1].
func Linear2(t, x0, x1 float64) float64 {
	return x0 + (x1-x0)*t
}

// Linear32 is the float32 form of Linear2.
func Linear32(t, x0, x1 float32) float32 {
	return x0 + (x1-x0)*t
}

// Split returns the integer part of a non-negative read position and the
// fractional weight towards the next sample.
func Split(pos float64) (int, float64) {
	i := math.Floor(pos)
	return int(i), pos - i
}

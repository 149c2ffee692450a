// Package interp provides the fractional-position interpolation primitives
// used by the resampling code.
//
// Only 2-point linear interpolation is offered:
//
//   - [Linear2]:   float64 samples
//   - [Linear32]:  float32 samples
//   - [Split]:     break a fractional read position into index and weight
package interp

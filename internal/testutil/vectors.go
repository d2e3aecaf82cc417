// Package testutil holds helpers shared by tests across the module.
package testutil

import "math/rand"

// RandomVector returns n values uniform in [-scale, scale) from a fixed seed.
func RandomVector(seed int64, scale float64, n int) []float64 {
	out := make([]float64, n)
	rng := rand.New(rand.NewSource(seed))
	for i := range out {
		out[i] = (rng.Float64()*2 - 1) * scale
	}
	return out
}

// Ramp returns start, start+step, start+2*step, ... of length n.
func Ramp(start, step float64, n int) []float64 {
	out := make([]float64, n)
	for i := range out {
		out[i] = start + step*float64(i)
	}
	return out
}

// Fill returns a slice of length n with every element set to value.
func Fill(value float64, n int) []float64 {
	out := make([]float64, n)
	for i := range out {
		out[i] = value
	}
	return out
}

// Sum returns the reference elementwise sum of a and b, which must have
// equal length.
func Sum(a, b []float64) []float64 {
	out := make([]float64, len(a))
	for i := range out {
		out[i] = a[i] + b[i]
	}
	return out
}

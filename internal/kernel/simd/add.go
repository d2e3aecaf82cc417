//go:build !purego && (amd64 || arm64)

// Package simd registers the algo-vecmath add routine, which dispatches to
// AVX2, SSE2 or NEON assembly on its own.
package simd

import vecmath "github.com/cwbudde/algo-vecmath"

// AddBlock performs element-wise addition: dst[i] = a[i] + b[i].
// Slices must have equal length. Panics if lengths differ.
func AddBlock(dst, a, b []float64) {
	if len(a) != len(b) || len(dst) != len(a) {
		panic("kernel: slice length mismatch")
	}
	if len(dst) == 0 {
		return
	}
	vecmath.AddBlock(dst, a, b)
}

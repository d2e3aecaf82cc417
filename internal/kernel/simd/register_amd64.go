//go:build amd64 && !purego

package simd

import (
	"github.com/cwbudde/algo-vecadd/internal/kernel"
	"github.com/cwbudde/algo-vecmath/cpu"
)

// SSE2 is the amd64 baseline; vecmath upgrades to AVX2 internally.
func init() {
	kernel.Global.Register(kernel.Entry{
		Name:      "vecmath",
		SIMDLevel: cpu.SIMDSSE2,
		Priority:  20,
		AddBlock:  AddBlock,
	})
}

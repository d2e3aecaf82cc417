//go:build arm64 && !purego

package simd

import (
	"github.com/cwbudde/algo-vecadd/internal/kernel"
	"github.com/cwbudde/algo-vecmath/cpu"
)

func init() {
	kernel.Global.Register(kernel.Entry{
		Name:      "vecmath",
		SIMDLevel: cpu.SIMDNEON,
		Priority:  20,
		AddBlock:  AddBlock,
	})
}

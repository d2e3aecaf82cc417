// Package generic registers the pure Go add kernels. They serve as the
// fallback when no SIMD kernel is available or ForceGeneric is set.
package generic

import (
	"github.com/cwbudde/algo-vecadd/internal/kernel"
	"github.com/cwbudde/algo-vecmath/cpu"
)

func init() {
	kernel.Global.Register(kernel.Entry{
		Name:      "generic",
		SIMDLevel: cpu.SIMDNone,
		Priority:  0,
		AddBlock:  AddBlock,
	})
	kernel.Global.Register(kernel.Entry{
		Name:      "unrolled",
		SIMDLevel: cpu.SIMDNone,
		Priority:  5,
		AddBlock:  AddBlockUnrolled,
	})
}

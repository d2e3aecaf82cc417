//go:build !purego && (amd64 || arm64)

package vector

import (
	_ "github.com/cwbudde/algo-vecadd/internal/kernel/simd"
)

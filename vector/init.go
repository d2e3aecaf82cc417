package vector

// Importing kernel packages triggers their init() functions, which register
// implementations with the kernel registry.

import (
	_ "github.com/cwbudde/algo-vecadd/internal/kernel/generic"
)

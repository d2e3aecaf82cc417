package generic

// AddBlock performs element-wise addition: dst[i] = a[i] + b[i].
// Slices must have equal length. Panics if lengths differ.
func AddBlock(dst, a, b []float64) {
	if len(a) != len(b) || len(dst) != len(a) {
		panic("kernel: slice length mismatch")
	}
	for i := range dst {
		dst[i] = a[i] + b[i]
	}
}

// AddBlockUnrolled is AddBlock with the loop unrolled by four. The reslicing
// up front lets the compiler drop bounds checks inside the loop.
func AddBlockUnrolled(dst, a, b []float64) {
	if len(a) != len(b) || len(dst) != len(a) {
		panic("kernel: slice length mismatch")
	}

	n := len(dst)
	a = a[:n]
	b = b[:n]

	i := 0
	for ; i+4 <= n; i += 4 {
		dst[i] = a[i] + b[i]
		dst[i+1] = a[i+1] + b[i+1]
		dst[i+2] = a[i+2] + b[i+2]
		dst[i+3] = a[i+3] + b[i+3]
	}
	for ; i < n; i++ {
		dst[i] = a[i] + b[i]
	}
}

// Package buffer provides a reusable float64 vector and a pool for it, so
// repeated runs can recycle output storage instead of allocating per run.
package buffer

// Vector wraps a float64 slice with reuse-friendly semantics.
type Vector struct {
	values []float64
}

// Values returns the underlying slice.
func (v *Vector) Values() []float64 {
	return v.values
}

// Len returns the current number of elements.
func (v *Vector) Len() int {
	return len(v.values)
}

// Cap returns the capacity of the backing slice.
func (v *Vector) Cap() int {
	return cap(v.values)
}

// Resize sets the length to n, reusing existing capacity when possible.
// Elements beyond the previous length are zeroed.
func (v *Vector) Resize(n int) {
	if n < 0 {
		n = 0
	}
	oldLen := len(v.values)
	if n > cap(v.values) {
		s := make([]float64, n)
		copy(s, v.values)
		v.values = s
		return
	}
	v.values = v.values[:n]
	// The backing array may hold stale data from an earlier use.
	if n > oldLen {
		clear(v.values[oldLen:n])
	}
}

// Zero sets all elements to 0.
func (v *Vector) Zero() {
	clear(v.values)
}

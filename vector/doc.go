// Package vector implements elementwise vector addition.
//
// Each output element depends on exactly one pair of input elements, so the
// work splits into independent contiguous chunks. Add and AddInto run on the
// calling goroutine with the best registered kernel; Adder fans large inputs
// out across goroutines.
//
// Inputs of different lengths are rejected with ErrLengthMismatch rather than
// truncated.
package vector

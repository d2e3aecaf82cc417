//go:build !purego && (amd64 || arm64)

package simd

import "testing"

func TestAddBlockMatchesScalar(t *testing.T) {
	for _, n := range []int{0, 1, 3, 4, 7, 8, 31, 32, 33, 1000} {
		a := make([]float64, n)
		b := make([]float64, n)
		for i := range a {
			a[i] = float64(i) * 1.25
			b[i] = -float64(i) / 3
		}

		got := make([]float64, n)
		AddBlock(got, a, b)

		for i := range got {
			if want := a[i] + b[i]; got[i] != want {
				t.Fatalf("n=%d: [%d] = %v, want %v", n, i, got[i], want)
			}
		}
	}
}

func TestAddBlockPanic(t *testing.T) {
	defer func() {
		if r := recover(); r == nil {
			t.Error("AddBlock should panic on mismatched lengths")
		}
	}()
	AddBlock(make([]float64, 4), make([]float64, 4), make([]float64, 3))
}

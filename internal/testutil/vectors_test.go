package testutil

import "testing"

func TestRandomVectorDeterministic(t *testing.T) {
	a := RandomVector(7, 2, 64)
	b := RandomVector(7, 2, 64)
	RequireSliceEqual(t, a, b)

	for i, v := range a {
		if v < -2 || v >= 2 {
			t.Fatalf("a[%d] = %v out of range", i, v)
		}
	}
}

func TestRampAndFill(t *testing.T) {
	RequireSliceEqual(t, Ramp(1, 0.5, 4), []float64{1, 1.5, 2, 2.5})
	RequireSliceEqual(t, Fill(3, 3), []float64{3, 3, 3})
	RequireSliceEqual(t, Sum([]float64{1, 2}, []float64{3, 4}), []float64{4, 6})
}

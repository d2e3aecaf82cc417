package testutil

import (
	"math"
	"testing"
)

// recordingTB captures Fatalf instead of stopping the test.
type recordingTB struct {
	testing.TB
	failed bool
}

func (r *recordingTB) Helper() {}

func (r *recordingTB) Fatalf(string, ...any) { r.failed = true }

func TestRequireSliceNearlyEqual(t *testing.T) {
	nan := math.NaN()

	tests := []struct {
		name      string
		got, want []float64
		eps       float64
		fail      bool
	}{
		{name: "equal", got: []float64{1, 2}, want: []float64{1, 2}},
		{name: "within-eps", got: []float64{1.05}, want: []float64{1}, eps: 0.1},
		{name: "outside-eps", got: []float64{1.2}, want: []float64{1}, eps: 0.1, fail: true},
		{name: "length", got: []float64{1}, want: []float64{1, 2}, fail: true},
		{name: "nan-got", got: []float64{nan}, want: []float64{1}, eps: 1, fail: true},
		{name: "nan-want", got: []float64{1}, want: []float64{nan}, eps: 1, fail: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := &recordingTB{}
			RequireSliceNearlyEqual(rec, tt.got, tt.want, tt.eps)
			if rec.failed != tt.fail {
				t.Fatalf("failed = %v, want %v", rec.failed, tt.fail)
			}
		})
	}
}

func TestRequireSliceEqualRejectsNaN(t *testing.T) {
	rec := &recordingTB{}
	RequireSliceEqual(rec, []float64{math.NaN()}, []float64{0})
	if !rec.failed {
		t.Fatal("NaN accepted as equal to 0")
	}
}

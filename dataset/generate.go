package dataset

import (
	"fmt"
	"math/rand"
	"path/filepath"
)

// Paths names the files of a generated dataset.
type Paths struct {
	Input0   string
	Input1   string
	Expected string
}

// PathsIn returns the conventional dataset file names inside dir.
func PathsIn(dir string) Paths {
	return Paths{
		Input0:   filepath.Join(dir, "input0.raw"),
		Input1:   filepath.Join(dir, "input1.raw"),
		Expected: filepath.Join(dir, "output.raw"),
	}
}

// Generate writes two random input vectors of length n and their exact sum
// into dir. The same seed always produces the same dataset.
func Generate(dir string, n int, seed int64) (Paths, error) {
	if n < 0 {
		return Paths{}, fmt.Errorf("dataset: negative size %d", n)
	}

	rng := rand.New(rand.NewSource(seed))
	a := make([]float64, n)
	b := make([]float64, n)
	sum := make([]float64, n)
	for i := range a {
		a[i] = quantize(rng.Float64()*200 - 100)
		b[i] = quantize(rng.Float64()*200 - 100)
		sum[i] = a[i] + b[i]
	}

	p := PathsIn(dir)
	for _, f := range []struct {
		path string
		v    []float64
	}{
		{p.Input0, a},
		{p.Input1, b},
		{p.Expected, sum},
	} {
		if err := Export(f.path, f.v); err != nil {
			return Paths{}, err
		}
	}

	return p, nil
}

// quantize rounds to 1/1024 so generated files stay short and exact.
func quantize(x float64) float64 {
	const scale = 1024
	return float64(int64(x*scale)) / scale
}

package vector

import (
	"errors"
	"fmt"
	"sync"

	"github.com/cwbudde/algo-vecadd/internal/kernel"
	"github.com/cwbudde/algo-vecmath/cpu"
)

var (
	// ErrLengthMismatch is returned when input and output lengths disagree.
	ErrLengthMismatch = errors.New("vector: length mismatch")

	// ErrUnknownKernel is returned when a named kernel is not registered or
	// not supported on this CPU.
	ErrUnknownKernel = errors.New("vector: unknown kernel")
)

var (
	defaultKernel     *kernel.Entry
	defaultKernelOnce sync.Once
)

func initDefaultKernel() {
	entry := kernel.Global.Lookup(cpu.DetectFeatures())
	if entry == nil {
		panic("vector: no add kernel registered (missing generic fallback?)")
	}
	defaultKernel = entry
}

// DefaultKernel returns the kernel Add and AddInto use.
func DefaultKernel() kernel.Entry {
	defaultKernelOnce.Do(initDefaultKernel)
	return *defaultKernel
}

// Add returns a new slice holding a[i] + b[i].
// An empty input yields an empty, non-nil slice.
func Add(a, b []float64) ([]float64, error) {
	if err := checkLengths(len(a), a, b); err != nil {
		return nil, err
	}

	dst := make([]float64, len(a))
	defaultKernelOnce.Do(initDefaultKernel)
	defaultKernel.AddBlock(dst, a, b)

	return dst, nil
}

// AddInto writes a[i] + b[i] into dst. dst may alias a or b.
func AddInto(dst, a, b []float64) error {
	if err := checkLengths(len(dst), a, b); err != nil {
		return err
	}

	defaultKernelOnce.Do(initDefaultKernel)
	defaultKernel.AddBlock(dst, a, b)

	return nil
}

func checkLengths(n int, a, b []float64) error {
	if len(a) != len(b) {
		return fmt.Errorf("%w: inputs have %d and %d elements", ErrLengthMismatch, len(a), len(b))
	}
	if n != len(a) {
		return fmt.Errorf("%w: output has %d elements, inputs have %d", ErrLengthMismatch, n, len(a))
	}
	return nil
}

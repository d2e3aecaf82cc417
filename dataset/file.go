package dataset

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
)

// Reader yields one vector.
type Reader interface {
	Read(ctx context.Context) ([]float64, error)
}

// FileSource reads a vector from a file, choosing the codec by extension.
type FileSource struct {
	Path string
}

// Read implements Reader.
func (s FileSource) Read(ctx context.Context) ([]float64, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return Import(s.Path)
}

// Import reads the vector stored at path.
func Import(path string) ([]float64, error) {
	format, err := FormatFromPath(path)
	if err != nil {
		return nil, err
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("dataset: %w", err)
	}
	defer f.Close()

	v, err := Decode(f, format)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return v, nil
}

// Export writes v to path, creating parent directories as needed.
func Export(path string, v []float64) (err error) {
	format, err := FormatFromPath(path)
	if err != nil {
		return err
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("dataset: %w", err)
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("dataset: %w", err)
	}
	defer func() {
		if cerr := f.Close(); err == nil && cerr != nil {
			err = fmt.Errorf("dataset: %w", cerr)
		}
	}()

	return Encode(f, format, v)
}

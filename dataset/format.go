package dataset

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"
)

var (
	// ErrFormat is returned for a file extension with no codec.
	ErrFormat = errors.New("dataset: unknown format")

	// ErrCountMismatch is returned when a raw header disagrees with the
	// number of values that follow it.
	ErrCountMismatch = errors.New("dataset: count mismatch")
)

// Format selects a vector file codec.
type Format int

const (
	FormatRaw Format = iota
	FormatCSV
)

// String returns the format name.
func (f Format) String() string {
	switch f {
	case FormatRaw:
		return "raw"
	case FormatCSV:
		return "csv"
	default:
		return "unknown"
	}
}

// FormatFromPath picks the codec from a file extension. Files without an
// extension are treated as raw.
func FormatFromPath(path string) (Format, error) {
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case "", ".raw", ".txt", ".dat":
		return FormatRaw, nil
	case ".csv":
		return FormatCSV, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrFormat, ext)
	}
}

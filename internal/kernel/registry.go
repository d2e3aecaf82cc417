// Package kernel provides the implementation registry for elementwise add
// kernels.
//
// Kernel packages register themselves from init() functions. The vector
// package selects the highest-priority kernel the current CPU supports, or a
// kernel named explicitly by configuration.
package kernel

import (
	"sync"

	"github.com/cwbudde/algo-vecmath/cpu"
)

// AddBlockFn computes dst[i] = a[i] + b[i]. Implementations panic when the
// three slices differ in length.
type AddBlockFn func(dst, a, b []float64)

// Entry is one registered add kernel.
type Entry struct {
	// Name identifies the kernel in configuration and on the command line.
	Name string

	// SIMDLevel is the instruction set the kernel needs.
	SIMDLevel cpu.SIMDLevel

	// Priority orders compatible kernels; higher wins.
	//   - pure Go: 0-9
	//   - SIMD-backed: 20
	Priority int

	AddBlock AddBlockFn
}

// Registry stores available kernels.
type Registry struct {
	mu      sync.RWMutex
	entries []Entry
	sorted  bool // true if entries are sorted by priority (descending)
}

// Global is the default kernel registry.
var Global = &Registry{}

// Register adds a kernel. Registering a name twice replaces the earlier entry.
func (r *Registry) Register(entry Entry) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i := range r.entries {
		if r.entries[i].Name == entry.Name {
			r.entries[i] = entry
			r.sorted = false
			return
		}
	}

	r.entries = append(r.entries, entry)
	r.sorted = false
}

// Lookup returns the highest-priority kernel supported by features, or nil
// when nothing compatible is registered.
func (r *Registry) Lookup(features cpu.Features) *Entry {
	r.ensureSorted()

	r.mu.RLock()
	defer r.mu.RUnlock()

	for i := range r.entries {
		entry := r.entries[i]
		if Supports(features, entry.SIMDLevel) {
			return &entry
		}
	}

	return nil
}

// ByName returns the kernel registered under name if features support it.
func (r *Registry) ByName(name string, features cpu.Features) (*Entry, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for i := range r.entries {
		entry := r.entries[i]
		if entry.Name == name && Supports(features, entry.SIMDLevel) {
			return &entry, true
		}
	}

	return nil, false
}

// ListEntries returns a copy of all entries, sorted by priority.
func (r *Registry) ListEntries() []Entry {
	r.ensureSorted()

	r.mu.RLock()
	defer r.mu.RUnlock()

	entries := make([]Entry, len(r.entries))
	copy(entries, r.entries)
	return entries
}

// Reset clears all entries. Intended for tests.
func (r *Registry) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.entries = nil
	r.sorted = false
}

func (r *Registry) ensureSorted() {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.sorted {
		return
	}

	// Insertion sort; the registry holds a handful of entries.
	for i := 1; i < len(r.entries); i++ {
		key := r.entries[i]
		j := i - 1
		for j >= 0 && r.entries[j].Priority < key.Priority {
			r.entries[j+1] = r.entries[j]
			j--
		}
		r.entries[j+1] = key
	}
	r.sorted = true
}

// Supports reports whether features can run a kernel built for level.
// ForceGeneric restricts selection to SIMDNone kernels.
func Supports(features cpu.Features, level cpu.SIMDLevel) bool {
	if features.ForceGeneric {
		return level == cpu.SIMDNone
	}

	switch level {
	case cpu.SIMDNone:
		return true
	case cpu.SIMDSSE2:
		return features.HasSSE2
	case cpu.SIMDAVX2:
		return features.HasAVX2
	case cpu.SIMDNEON:
		return features.HasNEON
	default:
		return false
	}
}

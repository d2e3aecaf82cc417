package kernel

import (
	"testing"

	"github.com/cwbudde/algo-vecmath/cpu"
)

func noop(dst, a, b []float64) {}

func newTestRegistry() *Registry {
	r := &Registry{}
	r.Register(Entry{Name: "generic", SIMDLevel: cpu.SIMDNone, Priority: 0, AddBlock: noop})
	r.Register(Entry{Name: "sse2", SIMDLevel: cpu.SIMDSSE2, Priority: 20, AddBlock: noop})
	r.Register(Entry{Name: "neon", SIMDLevel: cpu.SIMDNEON, Priority: 20, AddBlock: noop})
	r.Register(Entry{Name: "unrolled", SIMDLevel: cpu.SIMDNone, Priority: 5, AddBlock: noop})
	return r
}

func TestLookup(t *testing.T) {
	r := newTestRegistry()

	tests := []struct {
		name     string
		features cpu.Features
		want     string
	}{
		{"force-generic", cpu.Features{HasSSE2: true, ForceGeneric: true}, "unrolled"},
		{"amd64", cpu.Features{HasSSE2: true, Architecture: "amd64"}, "sse2"},
		{"arm64", cpu.Features{HasNEON: true, Architecture: "arm64"}, "neon"},
		{"no-simd", cpu.Features{Architecture: "riscv64"}, "unrolled"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			entry := r.Lookup(tt.features)
			if entry == nil {
				t.Fatal("Lookup returned nil")
			}
			if entry.Name != tt.want {
				t.Errorf("Lookup = %q, want %q", entry.Name, tt.want)
			}
		})
	}
}

func TestLookupEmpty(t *testing.T) {
	r := &Registry{}
	if entry := r.Lookup(cpu.Features{}); entry != nil {
		t.Fatalf("Lookup on empty registry = %q, want nil", entry.Name)
	}
}

func TestByName(t *testing.T) {
	r := newTestRegistry()

	if _, ok := r.ByName("sse2", cpu.Features{HasSSE2: true}); !ok {
		t.Error("ByName(sse2) not found with SSE2 available")
	}
	if _, ok := r.ByName("sse2", cpu.Features{HasSSE2: true, ForceGeneric: true}); ok {
		t.Error("ByName(sse2) found under ForceGeneric")
	}
	if _, ok := r.ByName("missing", cpu.Features{}); ok {
		t.Error("ByName(missing) found")
	}
}

func TestRegisterReplacesByName(t *testing.T) {
	r := newTestRegistry()
	r.Register(Entry{Name: "generic", SIMDLevel: cpu.SIMDNone, Priority: 50, AddBlock: noop})

	entries := r.ListEntries()
	if len(entries) != 4 {
		t.Fatalf("len(entries) = %d, want 4", len(entries))
	}
	if entries[0].Name != "generic" || entries[0].Priority != 50 {
		t.Errorf("entries[0] = %s/%d, want generic/50", entries[0].Name, entries[0].Priority)
	}
}

func TestListEntriesSorted(t *testing.T) {
	entries := newTestRegistry().ListEntries()
	for i := 1; i < len(entries); i++ {
		if entries[i-1].Priority < entries[i].Priority {
			t.Fatalf("entries not sorted: %d before %d", entries[i-1].Priority, entries[i].Priority)
		}
	}
}

func TestReset(t *testing.T) {
	r := newTestRegistry()
	r.Reset()
	if n := len(r.ListEntries()); n != 0 {
		t.Fatalf("len after Reset = %d, want 0", n)
	}
}

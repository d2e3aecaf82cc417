package vector

import (
	"context"
	"fmt"
	"runtime"

	"github.com/cwbudde/algo-vecadd/internal/kernel"
	"github.com/cwbudde/algo-vecmath/cpu"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// DefaultMinChunk is the smallest number of elements handed to one goroutine.
const DefaultMinChunk = 4096

// Config holds Adder settings.
type Config struct {
	Workers  int
	MinChunk int
	Kernel   string // empty selects the best supported kernel
	Features cpu.Features
	Logger   *zap.Logger
}

// Option mutates a Config.
type Option func(*Config)

// DefaultConfig returns one worker per schedulable CPU and the detected CPU
// features.
func DefaultConfig() Config {
	return Config{
		Workers:  runtime.GOMAXPROCS(0),
		MinChunk: DefaultMinChunk,
		Features: cpu.DetectFeatures(),
		Logger:   zap.NewNop(),
	}
}

// WithWorkers sets the maximum number of concurrent chunks.
func WithWorkers(n int) Option {
	return func(cfg *Config) {
		if n > 0 {
			cfg.Workers = n
		}
	}
}

// WithMinChunk sets the smallest chunk size.
func WithMinChunk(n int) Option {
	return func(cfg *Config) {
		if n > 0 {
			cfg.MinChunk = n
		}
	}
}

// WithKernel forces the kernel registered under name.
func WithKernel(name string) Option {
	return func(cfg *Config) {
		cfg.Kernel = name
	}
}

// WithFeatures overrides detected CPU features for kernel selection.
func WithFeatures(f cpu.Features) Option {
	return func(cfg *Config) {
		cfg.Features = f
	}
}

// WithLogger sets the logger. A nil logger is ignored.
func WithLogger(l *zap.Logger) Option {
	return func(cfg *Config) {
		if l != nil {
			cfg.Logger = l
		}
	}
}

// Adder adds vectors in parallel. It is safe for concurrent use.
type Adder struct {
	workers  int
	minChunk int
	kernel   kernel.Entry
	logger   *zap.Logger
}

// NewAdder applies opts to DefaultConfig and selects a kernel.
func NewAdder(opts ...Option) (*Adder, error) {
	cfg := DefaultConfig()
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}

	var entry *kernel.Entry
	if cfg.Kernel != "" {
		e, ok := kernel.Global.ByName(cfg.Kernel, cfg.Features)
		if !ok {
			return nil, fmt.Errorf("%w: %q", ErrUnknownKernel, cfg.Kernel)
		}
		entry = e
	} else {
		entry = kernel.Global.Lookup(cfg.Features)
		if entry == nil {
			return nil, fmt.Errorf("%w: none registered", ErrUnknownKernel)
		}
	}

	return &Adder{
		workers:  cfg.Workers,
		minChunk: cfg.MinChunk,
		kernel:   *entry,
		logger:   cfg.Logger,
	}, nil
}

// Kernel returns the name of the selected kernel.
func (a *Adder) Kernel() string {
	return a.kernel.Name
}

// Add returns a new slice holding x[i] + y[i].
func (a *Adder) Add(ctx context.Context, x, y []float64) ([]float64, error) {
	if err := checkLengths(len(x), x, y); err != nil {
		return nil, err
	}

	dst := make([]float64, len(x))
	if err := a.AddInto(ctx, dst, x, y); err != nil {
		return nil, err
	}

	return dst, nil
}

// AddInto writes x[i] + y[i] into dst, splitting the range into contiguous
// chunks run concurrently. Each dst element is written by exactly one chunk.
// A cancelled ctx stops chunks that have not started; dst is then partially
// written.
func (a *Adder) AddInto(ctx context.Context, dst, x, y []float64) error {
	if err := checkLengths(len(dst), x, y); err != nil {
		return err
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	n := len(dst)
	chunks := a.chunkCount(n)

	a.logger.Debug("vector add",
		zap.Int("length", n),
		zap.String("kernel", a.kernel.Name),
		zap.Int("chunks", chunks))

	if chunks <= 1 {
		a.kernel.AddBlock(dst, x, y)
		return nil
	}

	size := (n + chunks - 1) / chunks
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(a.workers)

	for start := 0; start < n; start += size {
		end := min(start+size, n)
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			a.kernel.AddBlock(dst[start:end], x[start:end], y[start:end])
			return nil
		})
	}

	return g.Wait()
}

// chunkCount returns how many chunks n elements split into.
func (a *Adder) chunkCount(n int) int {
	if a.workers <= 1 || n < 2*a.minChunk {
		return 1
	}
	return min(n/a.minChunk, a.workers)
}

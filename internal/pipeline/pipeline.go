// Package pipeline runs one vector addition end to end: import both inputs,
// validate, compute, then write and verify the result.
package pipeline

import (
	"context"
	"errors"
	"fmt"

	"github.com/cwbudde/algo-vecadd/dataset"
	"github.com/cwbudde/algo-vecadd/internal/buffer"
	"github.com/cwbudde/algo-vecadd/internal/config"
	"github.com/cwbudde/algo-vecadd/internal/timing"
	"github.com/cwbudde/algo-vecadd/solution"
	"github.com/cwbudde/algo-vecadd/vector"
	"github.com/cwbudde/algo-vecmath/cpu"
	"go.uber.org/zap"
)

// Phase messages recorded by the timer.
const (
	PhaseImport  = "Importing data and creating memory on host"
	PhaseCompute = "Performing vector addition"
	PhaseExport  = "Writing output"
	PhaseCheck   = "Checking solution"
)

// ErrInputs is returned when Args does not name exactly two inputs.
var ErrInputs = errors.New("pipeline: exactly two input files are required")

// Args names the files of one run. Expected and Output are optional.
type Args struct {
	Inputs   []string
	Expected string
	Output   string
}

// Report summarizes a completed run.
type Report struct {
	Length   int              `json:"length"`
	Kernel   string           `json:"kernel"`
	Solution *solution.Result `json:"solution,omitempty"`
	Timings  []timing.Record  `json:"timings"`
}

// Runner executes runs with shared settings and a shared output pool.
type Runner struct {
	cfg    *config.Config
	logger *zap.Logger
	adder  *vector.Adder
	pool   *buffer.Pool
}

// NewRunner builds a Runner from cfg. A nil logger disables logging.
func NewRunner(cfg *config.Config, logger *zap.Logger) (*Runner, error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	features := cpu.DetectFeatures()
	features.ForceGeneric = features.ForceGeneric || cfg.Compute.ForceGeneric

	adder, err := vector.NewAdder(
		vector.WithWorkers(cfg.Compute.Workers),
		vector.WithMinChunk(cfg.Compute.MinChunk),
		vector.WithKernel(cfg.Compute.Kernel),
		vector.WithFeatures(features),
		vector.WithLogger(logger),
	)
	if err != nil {
		return nil, err
	}

	return &Runner{
		cfg:    cfg,
		logger: logger,
		adder:  adder,
		pool:   buffer.NewPool(),
	}, nil
}

// Kernel returns the name of the add kernel in use.
func (r *Runner) Kernel() string {
	return r.adder.Kernel()
}

// Run executes one run. Input lengths must agree; a mismatch returns an
// error wrapping vector.ErrLengthMismatch before any output is computed.
func (r *Runner) Run(ctx context.Context, args Args) (*Report, error) {
	if len(args.Inputs) != 2 {
		return nil, fmt.Errorf("%w, got %d", ErrInputs, len(args.Inputs))
	}

	timer := timing.New(r.logger)

	var a, b []float64
	err := timer.Time(timing.Generic, PhaseImport, func() error {
		var err error
		if a, err = (dataset.FileSource{Path: args.Inputs[0]}).Read(ctx); err != nil {
			return err
		}
		b, err = (dataset.FileSource{Path: args.Inputs[1]}).Read(ctx)
		return err
	})
	if err != nil {
		return nil, fmt.Errorf("import: %w", err)
	}

	if len(a) != len(b) {
		return nil, fmt.Errorf("%w: %s has %d elements, %s has %d",
			vector.ErrLengthMismatch, args.Inputs[0], len(a), args.Inputs[1], len(b))
	}
	n := len(a)
	r.logger.Debug("The input length is", zap.Int("length", n))

	out := r.pool.Get(n)
	defer r.pool.Put(out)
	r.logger.Debug("output buffer acquired",
		zap.Int("length", out.Len()),
		zap.Int("capacity", out.Cap()))

	err = timer.Time(timing.Compute, PhaseCompute, func() error {
		return r.adder.AddInto(ctx, out.Values(), a, b)
	})
	if err != nil {
		return nil, fmt.Errorf("compute: %w", err)
	}

	report := &Report{Length: n, Kernel: r.adder.Kernel()}

	if args.Output != "" {
		err = timer.Time(timing.IO, PhaseExport, func() error {
			return dataset.Export(args.Output, out.Values())
		})
		if err != nil {
			return nil, fmt.Errorf("export: %w", err)
		}
	}

	if args.Expected != "" {
		err = timer.Time(timing.Generic, PhaseCheck, func() error {
			want, err := dataset.Import(args.Expected)
			if err != nil {
				return err
			}
			res := solution.Check(out.Values(), want, solution.Tolerance{
				Abs: r.cfg.Check.AbsTolerance,
				Rel: r.cfg.Check.RelTolerance,
			})
			report.Solution = &res
			return nil
		})
		if err != nil {
			return nil, fmt.Errorf("check: %w", err)
		}

		r.logger.Info("solution checked",
			zap.String("run_id", report.Solution.RunID),
			zap.Bool("correct", report.Solution.Correct),
			zap.Int("mismatches", report.Solution.Mismatches))
	}

	report.Timings = timer.Records()
	return report, nil
}

// Command vecadd adds two vector files elementwise and checks the result.
//
// Usage:
//
//	vecadd run -i input0.raw,input1.raw [-e output.raw] [-o result.raw]
//	vecadd generate --dir data/0 --size 1024
//	vecadd check result.raw output.raw
//	vecadd kernels
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/cwbudde/algo-vecadd/internal/config"
	"github.com/cwbudde/algo-vecadd/internal/logging"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// options holds persistent flag values shared by all subcommands.
type options struct {
	configPath   string
	verbose      bool
	logLevel     string
	workers      int
	kernel       string
	forceGeneric bool

	cfg    *config.Config
	logger *zap.Logger
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	err := newRootCmd().ExecuteContext(ctx)
	stop()
	if err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	opts := &options{}

	root := &cobra.Command{
		Use:   "vecadd",
		Short: "Elementwise vector addition with solution checking",
		Long: `vecadd reads two vectors, adds them elementwise across all CPUs
and optionally writes the result and compares it with an expected vector.

Vector files use the raw format (element count, then one value per line)
or CSV, chosen by file extension.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return opts.init(cmd)
		},
		PersistentPostRun: func(_ *cobra.Command, _ []string) {
			if opts.logger != nil {
				_ = opts.logger.Sync()
			}
		},
	}

	pf := root.PersistentFlags()
	pf.StringVar(&opts.configPath, "config", "", "path to a YAML config file")
	pf.BoolVarP(&opts.verbose, "verbose", "v", false, "enable trace logging")
	pf.StringVar(&opts.logLevel, "log-level", "", "log level: trace, debug, info, warn, error")
	pf.IntVar(&opts.workers, "workers", 0, "maximum concurrent chunks (0 = GOMAXPROCS)")
	pf.StringVar(&opts.kernel, "kernel", "", "force a registered add kernel by name")
	pf.BoolVar(&opts.forceGeneric, "force-generic", false, "disable SIMD kernels")

	root.AddCommand(
		newRunCmd(opts),
		newGenerateCmd(opts),
		newCheckCmd(opts),
		newKernelsCmd(opts),
	)

	return root
}

// init loads the config file, applies flag overrides and builds the logger.
func (o *options) init(cmd *cobra.Command) error {
	cfg, err := config.Load(o.configPath)
	if err != nil {
		return err
	}

	flags := cmd.Flags()
	if flags.Changed("workers") {
		cfg.Compute.Workers = o.workers
	}
	if flags.Changed("kernel") {
		cfg.Compute.Kernel = o.kernel
	}
	if flags.Changed("force-generic") {
		cfg.Compute.ForceGeneric = o.forceGeneric
	}
	if flags.Changed("log-level") {
		cfg.Logging.Level = o.logLevel
	}
	if o.verbose {
		cfg.Logging.Level = "trace"
	}

	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}

	if o.logger == nil {
		o.logger, err = logging.New(cfg.Logging.Level, cfg.Logging.Encoding)
		if err != nil {
			return err
		}
	}
	o.cfg = cfg

	return nil
}

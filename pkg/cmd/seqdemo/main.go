// Copyright 2026 The Cockroach Authors.
//
// Use of this software is governed by the CockroachDB Software License
// included in the /LICENSE file.

// seqdemo exercises the list and vector containers on generated input and
// reports what they did.
package main

import (
	"io"
	"math/rand"
	"os"

	"github.com/cockroachdb/containers/pkg/util/randutil"
	"github.com/cockroachdb/errors"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

type optsT struct {
	count   int
	seed    int64
	verbose bool
}

// env is what every subcommand runs against once the flags are parsed.
type env struct {
	optsT
	log *zap.Logger
	rng *rand.Rand
	out io.Writer
}

// loggerFactory builds the logger once --verbose is known.
type loggerFactory func(verbose bool) (*zap.Logger, error)

func newLogger(verbose bool) (*zap.Logger, error) {
	cfg := zap.NewProductionConfig()
	cfg.Encoding = "console"
	cfg.OutputPaths = []string{"stderr"}
	if verbose {
		cfg.Level = zap.NewAtomicLevelAt(zap.DebugLevel)
	}
	return cfg.Build()
}

func newRootCmd(newLog loggerFactory) *cobra.Command {
	var opts optsT
	e := &env{}

	rootCmd := &cobra.Command{
		Use:          "seqdemo",
		Short:        "run the sequence containers on generated input",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if opts.count < 0 {
				return errors.Newf("--count must not be negative, got %d", opts.count)
			}
			log, err := newLog(opts.verbose)
			if err != nil {
				return errors.Wrap(err, "building logger")
			}
			rng, seed := randutil.NewRandFromSeed(opts.seed)
			log.Debug("initialized", zap.Int64("seed", seed), zap.Int("count", opts.count))
			*e = env{optsT: opts, log: log, rng: rng, out: cmd.OutOrStdout()}
			return nil
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if e.log != nil {
				_ = e.log.Sync()
			}
		},
	}
	flags := rootCmd.PersistentFlags()
	flags.IntVar(&opts.count, "count", 10, "number of elements to generate")
	flags.Int64Var(&opts.seed, "seed", 0, "seed for the generated input; 0 picks one from the clock")
	flags.BoolVarP(&opts.verbose, "verbose", "v", false, "log at debug level")

	rootCmd.AddCommand(
		newListCmd(e),
		newVectorCmd(e),
		newGrowthCmd(e),
	)
	return rootCmd
}

func main() {
	if err := newRootCmd(newLogger).Execute(); err != nil {
		os.Exit(1)
	}
}

package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"runtime"
	"syscall"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/katalvlaran/uniformity/laws"
)

var (
	parallel int
	failFast bool
)

// checkCmd runs the law battery
var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Run the law battery over every space and completion",
	Args:  cobra.NoArgs,
	RunE:  runCheck,
}

func init() {
	checkCmd.Flags().IntVarP(&parallel, "parallel", "p", runtime.GOMAXPROCS(0), "Checks run at once")
	checkCmd.Flags().BoolVar(&failFast, "fail-fast", false, "Stop at the first failing law")
}

func runCheck(cmd *cobra.Command, args []string) error {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	reg, err := loadRegistry()
	if err != nil {
		return err
	}
	if parallel <= 0 {
		return fmt.Errorf("--parallel must be > 0, got %d", parallel)
	}
	opts := []laws.Option{laws.WithParallelism(parallel), laws.WithLogger(logger)}
	if failFast {
		opts = append(opts, laws.WithFailFast())
	}

	checks := reg.Checks()
	logger.Info("running law battery", zap.Int("checks", len(checks)), zap.Int("parallel", parallel))
	results, runErr := laws.Run(ctx, checks, opts...)

	out := cmd.OutOrStdout()
	for _, r := range results {
		if r.OK() {
			fmt.Fprintf(out, "ok    %s (%s)\n", r.Name, r.Duration)
			continue
		}
		fmt.Fprintf(out, "FAIL  %s: %v\n", r.Name, r.Err)
	}
	failed := laws.Failed(results)
	if len(failed) > 0 {
		return fmt.Errorf("%d of %d checks failed", len(failed), len(results))
	}

	return runErr
}

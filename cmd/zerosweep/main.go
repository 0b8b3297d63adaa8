// Command zerosweep scans a range of the critical line for nontrivial
// zeros, persists them under a run, and prints the refined ordinates.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"go.uber.org/zap"

	"github.com/riemannlab/riemann/go-engine/internal/store"
	"github.com/riemannlab/riemann/go-engine/internal/zeros"
	"github.com/riemannlab/riemann/go-engine/internal/zeta"
)

// #region main

func main() {
	dbPath := flag.String("db", "riemann.db", "path to riemann.db")
	tStart := flag.Float64("t-start", 10, "sweep start ordinate")
	tEnd := flag.Float64("t-end", 50, "sweep end ordinate")
	step := flag.Float64("step", 0.05, "scan spacing")
	refineTol := flag.Float64("refine-tol", 1e-8, "bisection bracket width")
	workers := flag.Int("workers", 0, "probe workers (0 = NumCPU)")
	tol := flag.Float64("tol", 0, "engine absolute tolerance (0 = default)")
	verbose := flag.Bool("verbose", false, "debug logging")
	flag.Parse()

	logger := newLogger(*verbose)
	defer logger.Sync()

	if err := run(*dbPath, zeros.SweepConfig{
		TStart:    *tStart,
		TEnd:      *tEnd,
		Step:      *step,
		RefineTol: *refineTol,
		Workers:   *workers,
		Tolerance: zeta.ToleranceConfig{AbsTol: *tol},
	}, logger); err != nil {
		logger.Error("sweep failed", zap.Error(err))
		os.Exit(1)
	}
}

func newLogger(verbose bool) *zap.Logger {
	cfg := zap.NewProductionConfig()
	if verbose {
		cfg.Level = zap.NewAtomicLevelAt(zap.DebugLevel)
	}
	logger, err := cfg.Build()
	if err != nil {
		fmt.Fprintf(os.Stderr, "init logger: %v\n", err)
		os.Exit(1)
	}
	return logger
}

// #endregion main

// #region run

func run(dbPath string, cfg zeros.SweepConfig, logger *zap.Logger) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	st, err := store.NewStore(dbPath)
	if err != nil {
		return err
	}
	defer st.Close()

	rec, err := st.CreateRun("sweep", cfg)
	if err != nil {
		return err
	}
	if err := st.LogEvent(rec.RunID, "started", ""); err != nil {
		return err
	}
	logger.Info("sweep started",
		zap.String("run_id", rec.RunID),
		zap.Float64("t_start", cfg.TStart),
		zap.Float64("t_end", cfg.TEnd),
		zap.Float64("step", cfg.Step),
	)

	zs, err := zeros.Sweep(ctx, cfg, zeta.New())
	if err != nil {
		if logErr := st.LogEvent(rec.RunID, "failed", err.Error()); logErr != nil {
			logger.Warn("record failure event", zap.Error(logErr))
		}
		return err
	}
	if err := st.InsertZeros(rec.RunID, zs); err != nil {
		return err
	}
	if err := st.LogEvent(rec.RunID, "completed", ""); err != nil {
		return err
	}
	logger.Info("sweep completed", zap.Int("zeros", len(zs)))

	fmt.Printf("Run %s: %d zeros in [%g, %g]\n", rec.RunID, len(zs), cfg.TStart, cfg.TEnd)
	for i, z := range zs {
		fmt.Printf("  %4d  t = %.9f  (%d bisections)\n", i+1, z.T, z.Iterations)
	}
	return nil
}

// #endregion run

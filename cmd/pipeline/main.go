// Command pipeline runs the full dataset build described by a YAML config:
// zero sweep, persistence, and the π(x) comparison CSVs.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"go.uber.org/zap"

	"github.com/riemannlab/riemann/go-engine/internal/pipeline"
	"github.com/riemannlab/riemann/go-engine/internal/store"
	"github.com/riemannlab/riemann/go-engine/internal/zeta"
)

// #region main

func main() {
	configPath := flag.String("config", "pipeline.yaml", "path to pipeline config")
	verbose := flag.Bool("verbose", false, "debug logging")
	flag.Parse()

	logger := newLogger(*verbose)
	defer logger.Sync()

	if err := run(*configPath, logger); err != nil {
		logger.Error("pipeline failed", zap.Error(err))
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

func run(configPath string, logger *zap.Logger) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cfg, err := pipeline.LoadConfig(configPath)
	if err != nil {
		return err
	}

	st, err := store.NewStore(cfg.DBPath)
	if err != nil {
		return err
	}
	defer st.Close()

	p := pipeline.New(st, zeta.New(), logger)
	sum, err := p.Run(ctx, cfg)
	if err != nil {
		return err
	}

	fmt.Printf("Run %s completed\n", sum.RunID)
	fmt.Printf("  zeros:       %d  → %s\n", sum.Zeros, sum.ZerosCSV)
	fmt.Printf("  comparisons: %d  → %s\n", sum.Comparisons, sum.ComparisonCSV)
	return nil
}

// #endregion run

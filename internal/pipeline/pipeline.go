// Package pipeline builds the full dataset in one pass: sweep zeros on the
// critical line, persist them, and compare prime-counting methods (exact
// sieve, x/ln x, explicit formula over the computed zeros), exporting the
// results to CSV for the plotting front-ends.
package pipeline

import (
	"context"
	"encoding/csv"
	"fmt"
	"math"
	"os"
	"path/filepath"
	"strconv"

	"go.uber.org/zap"

	"github.com/riemannlab/riemann/go-engine/internal/primes"
	"github.com/riemannlab/riemann/go-engine/internal/store"
	"github.com/riemannlab/riemann/go-engine/internal/zeros"
	"github.com/riemannlab/riemann/go-engine/internal/zeta"
)

// #region pipeline

// Pipeline wires the sweep, the store, and the prime comparison together.
type Pipeline struct {
	store *store.Store
	eng   *zeta.Engine
	log   *zap.Logger
}

// New creates a pipeline. A nil logger disables logging.
func New(st *store.Store, eng *zeta.Engine, logger *zap.Logger) *Pipeline {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Pipeline{store: st, eng: eng, log: logger}
}

// Summary reports what one pipeline run produced.
type Summary struct {
	RunID         string
	Zeros         int
	Comparisons   int
	ZerosCSV      string
	ComparisonCSV string
}

// #endregion pipeline

// #region run

// Run executes the full pipeline under the given config. The run and its
// lifecycle events are persisted even on failure.
func (p *Pipeline) Run(ctx context.Context, cfg Config) (Summary, error) {
	rec, err := p.store.CreateRun("pipeline", cfg)
	if err != nil {
		return Summary{}, err
	}
	if err := p.store.LogEvent(rec.RunID, "started", ""); err != nil {
		return Summary{}, err
	}

	sum, err := p.run(ctx, rec.RunID, cfg)
	if err != nil {
		if logErr := p.store.LogEvent(rec.RunID, "failed", err.Error()); logErr != nil {
			p.log.Warn("record failure event", zap.Error(logErr))
		}
		return Summary{}, err
	}
	if err := p.store.LogEvent(rec.RunID, "completed", ""); err != nil {
		return Summary{}, err
	}
	return sum, nil
}

func (p *Pipeline) run(ctx context.Context, runID string, cfg Config) (Summary, error) {
	if err := os.MkdirAll(cfg.OutputDir, 0o755); err != nil {
		return Summary{}, fmt.Errorf("create output dir: %w", err)
	}

	// Stage 1: zeros on the critical line.
	p.log.Info("sweeping zeros",
		zap.Float64("t_start", cfg.Sweep.TStart),
		zap.Float64("t_end", cfg.Sweep.TEnd),
		zap.Float64("step", cfg.Sweep.Step),
	)
	zs, err := zeros.Sweep(ctx, zeros.SweepConfig{
		TStart:    cfg.Sweep.TStart,
		TEnd:      cfg.Sweep.TEnd,
		Step:      cfg.Sweep.Step,
		RefineTol: cfg.Sweep.RefineTol,
		Workers:   cfg.Sweep.Workers,
		Tolerance: zeta.ToleranceConfig{
			AbsTol:   cfg.Tolerance.AbsTol,
			MaxTerms: cfg.Tolerance.MaxTerms,
			MinTerms: cfg.Tolerance.MinTerms,
		},
	}, p.eng)
	if err != nil {
		return Summary{}, fmt.Errorf("sweep zeros: %w", err)
	}
	if err := p.store.InsertZeros(runID, zs); err != nil {
		return Summary{}, err
	}
	p.log.Info("sweep completed", zap.Int("zeros", len(zs)))

	zerosCSV := filepath.Join(cfg.OutputDir, "zeros.csv")
	if err := writeZerosCSV(zerosCSV, zs); err != nil {
		return Summary{}, err
	}

	// Stage 2: π(x) comparison driven by the computed zeros.
	rhos := make([]complex128, len(zs))
	for i, z := range zs {
		rhos[i] = complex(0.5, z.T)
	}
	comparisonCSV := filepath.Join(cfg.OutputDir, "pi_comparison.csv")
	n, err := p.writeComparison(comparisonCSV, cfg, rhos)
	if err != nil {
		return Summary{}, err
	}
	p.log.Info("comparison completed", zap.Int("rows", n))

	return Summary{
		RunID:         runID,
		Zeros:         len(zs),
		Comparisons:   n,
		ZerosCSV:      zerosCSV,
		ComparisonCSV: comparisonCSV,
	}, nil
}

// #endregion run

// #region csv-export

func writeZerosCSV(path string, zs []zeros.Zero) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if err := w.Write([]string{"index", "t", "bracket_lo", "bracket_hi", "iterations"}); err != nil {
		return fmt.Errorf("write header: %w", err)
	}
	for i, z := range zs {
		row := []string{
			strconv.Itoa(i + 1),
			formatFloat(z.T),
			formatFloat(z.Bracket[0]),
			formatFloat(z.Bracket[1]),
			strconv.Itoa(z.Iterations),
		}
		if err := w.Write(row); err != nil {
			return fmt.Errorf("write zero %d: %w", i+1, err)
		}
	}
	w.Flush()
	return w.Error()
}

func (p *Pipeline) writeComparison(path string, cfg Config, rhos []complex128) (int, error) {
	f, err := os.Create(path)
	if err != nil {
		return 0, fmt.Errorf("create %s: %w", path, err)
	}
	defer f.Close()

	maxX := 0.0
	for _, x := range cfg.XValues {
		maxX = math.Max(maxX, x)
	}
	primeList := primes.Generate(int(maxX))

	w := csv.NewWriter(f)
	header := []string{"x", "pi_exact", "pi_approx", "pi_explicit", "error_approx", "error_explicit", "zeros_used"}
	if err := w.Write(header); err != nil {
		return 0, fmt.Errorf("write header: %w", err)
	}

	rows := 0
	for _, x := range cfg.XValues {
		if x < 2 {
			continue
		}
		piExact := float64(primes.Count(x, primeList))
		piApprox := x / math.Log(x)
		piExpl := primes.PiExplicit(x, rhos, cfg.MaxZeroHeight)

		row := []string{
			formatFloat(x),
			strconv.Itoa(int(piExact)),
			formatFloat(piApprox),
			formatFloat(piExpl),
			formatFloat(math.Abs(piExact - piApprox)),
			formatFloat(math.Abs(piExact - piExpl)),
			strconv.Itoa(len(rhos)),
		}
		if err := w.Write(row); err != nil {
			return rows, fmt.Errorf("write comparison x=%g: %w", x, err)
		}
		rows++
	}
	w.Flush()
	return rows, w.Error()
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}

// #endregion csv-export

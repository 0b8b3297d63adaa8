// Package grid evaluates ζ over a rectangular lattice of sample points, the
// batch shape consumed by plotting front-ends. Rows are fanned out over a
// bounded worker group; the engine is pure, so no locking is needed.
package grid

import (
	"context"
	"fmt"
	"runtime"

	"golang.org/x/sync/errgroup"

	"github.com/riemannlab/riemann/go-engine/internal/zeta"
)

// #region config

// ScanConfig describes the rectangle [ReStart, ReEnd] × [ImStart, ImEnd]
// sampled at Step along both axes.
type ScanConfig struct {
	ReStart, ReEnd float64
	ImStart, ImEnd float64
	Step           float64
	Workers        int
	Tolerance      zeta.ToleranceConfig
}

func (c ScanConfig) withDefaults() ScanConfig {
	if c.Step <= 0 {
		c.Step = 1.0
	}
	if c.Workers <= 0 {
		c.Workers = runtime.NumCPU()
	}
	return c
}

// #endregion config

// #region sample

// Sample is one lattice point. Pole and invalid arguments do not abort the
// scan; they yield a skipped sample carrying the rejection reason.
type Sample struct {
	S           complex128
	Value       complex128
	ErrEstimate float64
	Terms       int
	Method      zeta.Method
	Converged   bool
	Skipped     bool
	SkipReason  string
}

// #endregion sample

// #region scan

// Scan evaluates the lattice and returns samples in deterministic row-major
// order (imaginary axis outer, real axis inner).
func Scan(ctx context.Context, cfg ScanConfig, eng *zeta.Engine) ([]Sample, error) {
	cfg = cfg.withDefaults()
	if cfg.ReEnd < cfg.ReStart || cfg.ImEnd < cfg.ImStart {
		return nil, fmt.Errorf("scan rectangle [%g, %g] x [%g, %g] is empty",
			cfg.ReStart, cfg.ReEnd, cfg.ImStart, cfg.ImEnd)
	}

	nRe := countSteps(cfg.ReStart, cfg.ReEnd, cfg.Step)
	nIm := countSteps(cfg.ImStart, cfg.ImEnd, cfg.Step)

	rows := make([][]Sample, nIm)
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(cfg.Workers)
	for row := 0; row < nIm; row++ {
		g.Go(func() error {
			im := cfg.ImStart + float64(row)*cfg.Step
			samples := make([]Sample, nRe)
			for col := 0; col < nRe; col++ {
				select {
				case <-gctx.Done():
					return gctx.Err()
				default:
				}
				s := complex(cfg.ReStart+float64(col)*cfg.Step, im)
				res, err := eng.Evaluate(s, cfg.Tolerance)
				if err != nil {
					samples[col] = Sample{S: s, Skipped: true, SkipReason: err.Error()}
					continue
				}
				samples[col] = Sample{
					S:           s,
					Value:       res.Value,
					ErrEstimate: res.ErrEstimate,
					Terms:       res.Terms,
					Method:      res.Method,
					Converged:   res.Converged,
				}
			}
			rows[row] = samples
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	out := make([]Sample, 0, nRe*nIm)
	for _, row := range rows {
		out = append(out, row...)
	}
	return out, nil
}

func countSteps(start, end, step float64) int {
	n := int((end-start)/step) + 1
	if n < 1 {
		n = 1
	}
	return n
}

// #endregion scan

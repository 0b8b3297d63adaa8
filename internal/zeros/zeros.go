// Package zeros locates nontrivial zeros of ζ on the critical line by
// scanning the Riemann-Siegel Z function for sign changes and refining each
// bracket by bisection. The engine is stateless, so probe evaluation fans
// out across workers.
package zeros

import (
	"context"
	"fmt"
	"math"
	"runtime"

	"golang.org/x/sync/errgroup"

	"github.com/riemannlab/riemann/go-engine/internal/siegel"
	"github.com/riemannlab/riemann/go-engine/internal/zeta"
)

const maxBisectIterations = 200

// #region config

// SweepConfig bounds one zero sweep over [TStart, TEnd].
type SweepConfig struct {
	TStart float64
	TEnd   float64
	// Step is the scan spacing; a sign change between adjacent probes
	// brackets a zero. Zeros closer together than Step can be missed.
	// The final probe always lands on TEnd, so a trailing partial step
	// is still scanned.
	Step float64
	// RefineTol is the bracket width at which bisection stops.
	RefineTol float64
	Workers   int
	Tolerance zeta.ToleranceConfig
}

func (c SweepConfig) withDefaults() SweepConfig {
	if c.Step <= 0 {
		c.Step = 0.1
	}
	if c.RefineTol <= 0 {
		c.RefineTol = 1e-8
	}
	if c.Workers <= 0 {
		c.Workers = runtime.NumCPU()
	}
	return c
}

// #endregion config

// #region zero

// Zero is one refined sign change of Z.
type Zero struct {
	// T is the ordinate: ζ(1/2 + iT) ≈ 0.
	T          float64
	Bracket    [2]float64
	Iterations int
}

// #endregion zero

// #region sweep

// Sweep scans [TStart, TEnd] and returns the refined zeros in ascending
// order of T.
func Sweep(ctx context.Context, cfg SweepConfig, eng *zeta.Engine) ([]Zero, error) {
	cfg = cfg.withDefaults()
	if cfg.TEnd <= cfg.TStart {
		return nil, fmt.Errorf("sweep range [%g, %g] is empty", cfg.TStart, cfg.TEnd)
	}
	ev := siegel.NewEvaluator(eng, cfg.Tolerance)

	// Probe positions cover the range at Step spacing; the final probe is
	// clamped to TEnd so a sign change in a trailing partial step is not
	// missed.
	n := int(math.Floor((cfg.TEnd-cfg.TStart)/cfg.Step)) + 1
	ts := make([]float64, n)
	for i := range ts {
		ts[i] = cfg.TStart + float64(i)*cfg.Step
	}
	if ts[n-1] < cfg.TEnd {
		ts = append(ts, cfg.TEnd)
		n++
	}
	vals := make([]float64, n)

	// Probe the grid in parallel.
	g, gctx := errgroup.WithContext(ctx)
	chunk := (n + cfg.Workers - 1) / cfg.Workers
	for w := 0; w < cfg.Workers; w++ {
		lo := w * chunk
		hi := min(lo+chunk, n)
		if lo >= hi {
			break
		}
		g.Go(func() error {
			for i := lo; i < hi; i++ {
				select {
				case <-gctx.Done():
					return gctx.Err()
				default:
				}
				z, err := ev.Z(ts[i])
				if err != nil {
					return fmt.Errorf("probe t=%g: %w", ts[i], err)
				}
				vals[i] = z
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	// Collect brackets sequentially, refine them in parallel.
	type bracket struct {
		lo, hi, flo float64
	}
	var brackets []bracket
	for i := 0; i < n-1; i++ {
		if vals[i]*vals[i+1] < 0 {
			brackets = append(brackets, bracket{
				lo:  ts[i],
				hi:  ts[i+1],
				flo: vals[i],
			})
		}
	}

	result := make([]Zero, len(brackets))
	rg, rctx := errgroup.WithContext(ctx)
	rg.SetLimit(cfg.Workers)
	for i, b := range brackets {
		rg.Go(func() error {
			select {
			case <-rctx.Done():
				return rctx.Err()
			default:
			}
			t, iters, err := bisect(ev, b.lo, b.hi, b.flo, cfg.RefineTol)
			if err != nil {
				return fmt.Errorf("refine bracket [%g, %g]: %w", b.lo, b.hi, err)
			}
			result[i] = Zero{T: t, Bracket: [2]float64{b.lo, b.hi}, Iterations: iters}
			return nil
		})
	}
	if err := rg.Wait(); err != nil {
		return nil, err
	}
	return result, nil
}

// #endregion sweep

// #region bisect

func bisect(ev *siegel.Evaluator, lo, hi, flo, tol float64) (float64, int, error) {
	iters := 0
	for hi-lo > tol && iters < maxBisectIterations {
		mid := (lo + hi) / 2
		fmid, err := ev.Z(mid)
		if err != nil {
			return 0, iters, err
		}
		iters++
		if flo*fmid <= 0 {
			hi = mid
		} else {
			lo = mid
			flo = fmid
		}
	}
	return (lo + hi) / 2, iters, nil
}

// #endregion bisect

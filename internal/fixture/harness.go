package fixture

import (
	"errors"
	"fmt"
	"math/cmplx"

	"github.com/riemannlab/riemann/go-engine/internal/zeta"
)

// #region types

// CaseResult captures the outcome of replaying one case.
type CaseResult struct {
	Name     string
	S        complex128
	Pass     bool
	Got      complex128
	AbsError float64
	Method   zeta.Method
	Terms    int
	// Exhausted flags that the engine ran out of budget on this case.
	Exhausted bool
	Reason    string
}

// Summary aggregates a replay run.
type Summary struct {
	Total     int
	Passes    int
	Failures  int
	Exhausted int
}

// #endregion types

// #region replay

// Replay runs every case through the engine and compares against the
// fixture's expectations. Engine failures on cases not marked WantPole are
// reported as case failures, never as a harness error.
func Replay(f Fixture, eng *zeta.Engine) []CaseResult {
	cfg := zeta.ToleranceConfig{
		AbsTol:   f.Tolerance.AbsTol,
		MaxTerms: f.Tolerance.MaxTerms,
		MinTerms: f.Tolerance.MinTerms,
	}

	results := make([]CaseResult, 0, len(f.Cases))
	for _, c := range f.Cases {
		s := complex(c.Re, c.Im)
		cr := CaseResult{Name: c.Name, S: s}

		res, err := eng.Evaluate(s, cfg)
		if c.WantPole {
			var pe *zeta.PoleError
			cr.Pass = errors.As(err, &pe)
			if !cr.Pass {
				cr.Reason = fmt.Sprintf("expected pole error, got err=%v", err)
			}
			results = append(results, cr)
			continue
		}
		if err != nil {
			cr.Reason = err.Error()
			results = append(results, cr)
			continue
		}

		cr.Got = res.Value
		cr.Method = res.Method
		cr.Terms = res.Terms
		cr.Exhausted = !res.Converged
		cr.AbsError = cmplx.Abs(res.Value - complex(c.WantRe, c.WantIm))
		cr.Pass = cr.AbsError <= c.MaxError
		if !cr.Pass {
			cr.Reason = fmt.Sprintf("|got-want| = %g exceeds %g", cr.AbsError, c.MaxError)
		}
		results = append(results, cr)
	}
	return results
}

// Summarize aggregates replay results.
func Summarize(results []CaseResult) Summary {
	sum := Summary{Total: len(results)}
	for _, r := range results {
		if r.Pass {
			sum.Passes++
		} else {
			sum.Failures++
		}
		if r.Exhausted {
			sum.Exhausted++
		}
	}
	return sum
}

// #endregion replay

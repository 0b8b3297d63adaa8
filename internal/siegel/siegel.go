// Package siegel evaluates ζ on the critical line through the Riemann-Siegel
// main sum. The real-valued Z function is the workhorse for zero sweeps: its
// sign changes locate the nontrivial zeros without complex arithmetic per
// probe point.
package siegel

import (
	"math"
	"math/cmplx"

	"github.com/riemannlab/riemann/go-engine/internal/zeta"
)

// mainSumCutoff is the t below which the main sum has no terms (N < 1) and
// evaluation falls back to the core engine.
const mainSumCutoff = 2 * math.Pi

// #region theta

// Theta computes the Riemann-Siegel theta function via its asymptotic
// expansion, accurate to well below the main-sum remainder for t > 1.
// The correction terms divide by t, so Theta is only defined for t > 0;
// Theta(0) is NaN.
func Theta(t float64) float64 {
	return t/2*math.Log(t/(2*math.Pi)) - t/2 - math.Pi/8 +
		1/(48*t) + 7/(5760*t*t*t)
}

// #endregion theta

// #region evaluator

// Evaluator computes Z(t) and ζ(1/2+it), using the Riemann-Siegel formula
// where it applies and the core engine below the cutoff. Stateless and safe
// for concurrent use.
type Evaluator struct {
	eng *zeta.Engine
	cfg zeta.ToleranceConfig
}

// NewEvaluator wires an evaluator to the given engine and fallback budget.
func NewEvaluator(eng *zeta.Engine, cfg zeta.ToleranceConfig) *Evaluator {
	return &Evaluator{eng: eng, cfg: cfg}
}

// #endregion evaluator

// #region z-function

// Z computes the Riemann-Siegel Z function
//
//	Z(t) = 2 Σ_{n≤N} cos(θ(t) - t·ln n)/√n + C₀ remainder,  N = ⌊√(t/2π)⌋
//
// with the first-order remainder term, giving O(t^(-3/4)) accuracy. Z(t) is
// real and Z(t) = e^(-iθ(t)) ζ(1/2+it), so zeros of Z are zeros of ζ on the
// critical line.
func (e *Evaluator) Z(t float64) (float64, error) {
	if t < 0 {
		// Z is even.
		t = -t
	}
	if t == 0 {
		// Theta(0) is NaN; the rotation angle degenerates to 0 and
		// Z(0) = ζ(1/2), which is real.
		res, err := e.eng.Evaluate(complex(0.5, 0), e.cfg)
		if err != nil {
			return 0, err
		}
		return real(res.Value), nil
	}
	if t < mainSumCutoff {
		res, err := e.eng.Evaluate(complex(0.5, t), e.cfg)
		if err != nil {
			return 0, err
		}
		rotated := res.Value * cmplx.Exp(complex(0, -Theta(t)))
		return real(rotated), nil
	}

	theta := Theta(t)
	a := math.Sqrt(t / (2 * math.Pi))
	n := math.Floor(a)

	var sum float64
	for k := 1.0; k <= n; k++ {
		sum += math.Cos(theta-t*math.Log(k)) / math.Sqrt(k)
	}
	sum *= 2

	// First remainder term of the Riemann-Siegel asymptotic series.
	p := a - n
	c0 := math.Cos(2*math.Pi*(p*p-p-1.0/16.0)) / math.Cos(2*math.Pi*p)
	rem := c0 / math.Sqrt(a)
	if math.Mod(n, 2) == 0 {
		rem = -rem
	}

	return sum + rem, nil
}

// #endregion z-function

// #region zeta-half

// ZetaHalf computes ζ(1/2+it) as Z(t)·e^(iθ(t)).
func (e *Evaluator) ZetaHalf(t float64) (complex128, error) {
	z, err := e.Z(t)
	if err != nil {
		return 0, err
	}
	if t == 0 {
		return complex(z, 0), nil
	}
	return complex(z, 0) * cmplx.Exp(complex(0, Theta(t))), nil
}

// #endregion zeta-half

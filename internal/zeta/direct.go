package zeta

import (
	"math"
	"math/cmplx"
)

// #region direct-summer

// sumDirect accumulates the Dirichlet series Σ 1/n^s term by term. Only
// reached for Re(s) > directThreshold, so the integral tail bound
// N^(1-σ)/(σ-1) is finite and monotone decreasing. Budget exhaustion is not
// an error: the best partial sum is returned with the last tail bound and
// Converged=false.
func sumDirect(s complex128, ctl controller) Result {
	sigma := real(s)
	var sum complex128
	var tail float64
	n := 0
	for {
		n++
		sum += cmplx.Exp(-s * complex(math.Log(float64(n)), 0))
		tail = math.Pow(float64(n), 1-sigma) / (sigma - 1)
		if ctl.done(n, tail) {
			return Result{Value: sum, ErrEstimate: tail, Terms: n, Method: MethodDirect, Converged: true}
		}
		if ctl.exhausted(n) {
			return Result{Value: sum, ErrEstimate: tail, Terms: n, Method: MethodDirect, Converged: false}
		}
	}
}

// #endregion direct-summer

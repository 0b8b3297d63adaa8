package zeta

import (
	"math"
	"math/cmplx"
)

// #region accelerated-summer

// sumAccelerated evaluates ζ(s) in the slow band 0 < Re(s) ≤ directThreshold
// through the alternating eta series η(s) = Σ (-1)^(n-1)/n^s, accelerated by
// an Euler transform (repeated averaging of the partial sums), then converted
// back via ζ(s) = η(s)/(1 - 2^(1-s)). The denominator vanishes only at the
// pole s = 1, which the validator rejects before this is reached.
//
// The stopping rule watches the successive-difference magnitude of the
// accelerated sequence, scaled to the ζ side of the conversion.
func sumAccelerated(s complex128, ctl controller) Result {
	denom := 1 - cmplx.Exp((1-s)*complex(math.Ln2, 0))
	absDenom := cmplx.Abs(denom)

	// row is the running diagonal of the averaging triangle; row[0] is the
	// most-averaged (best) eta estimate.
	row := make([]complex128, 0, 64)
	var partial complex128
	var prev complex128
	var diff float64
	sign := 1.0
	n := 0
	for {
		n++
		partial += complex(sign, 0) * cmplx.Exp(-s*complex(math.Log(float64(n)), 0))
		sign = -sign

		row = append(row, partial)
		for i := len(row) - 2; i >= 0; i-- {
			row[i] = (row[i] + row[i+1]) / 2
		}
		est := row[0]

		if n > 1 {
			diff = cmplx.Abs(est-prev) / absDenom
			if ctl.done(n, diff) {
				return Result{Value: est / denom, ErrEstimate: diff, Terms: n, Method: MethodAccelerated, Converged: true}
			}
		}
		prev = est

		if ctl.exhausted(n) {
			return Result{Value: est / denom, ErrEstimate: diff, Terms: n, Method: MethodAccelerated, Converged: false}
		}
	}
}

// #endregion accelerated-summer

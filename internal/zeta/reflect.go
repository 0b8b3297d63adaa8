package zeta

import (
	"math"
	"math/cmplx"
)

// #region reflector

// reflect evaluates ζ(s) for Re(s) ≤ 0 through the functional equation
// ζ(s) = 2^s · π^(s-1) · sin(πs/2) · Γ(1-s) · ζ(1-s). The reflected argument
// 1-s has Re ≥ 1 and is routed back through the dispatcher, so it always
// lands in the direct or accelerated summer.
func (e *Engine) reflect(s complex128, ctl controller) (Result, error) {
	// Trivial zeros: sin(πs/2) is exactly zero at s = -2, -4, ... Short-
	// circuit analytically so the result is an exact zero with zero error,
	// not floating-point cancellation noise.
	if isNegativeEvenInteger(s) {
		return Result{Value: 0, ErrEstimate: 0, Terms: 0, Method: MethodReflected, Converged: true}, nil
	}

	// s = 0 reflects onto the pole at 1-s = 1, so it is the one point in
	// this region the dispatcher cannot recurse on. ζ(0) = -1/2 exactly.
	if s == 0 {
		return Result{Value: complex(-0.5, 0), ErrEstimate: 0, Terms: 0, Method: MethodReflected, Converged: true}, nil
	}

	reflected, err := e.evaluate(1-s, ctl)
	if err != nil {
		return Result{}, err
	}

	pi := complex(math.Pi, 0)
	prefactor := cmplx.Pow(2, s) * cmplx.Pow(pi, s-1) * cmplx.Sin(pi*s/2) * e.gamma(1-s)

	return Result{
		Value:       prefactor * reflected.Value,
		ErrEstimate: reflected.ErrEstimate * cmplx.Abs(prefactor),
		Terms:       reflected.Terms,
		Method:      MethodReflected,
		Converged:   reflected.Converged,
	}, nil
}

// isNegativeEvenInteger reports whether s is exactly -2, -4, -6, ...
func isNegativeEvenInteger(s complex128) bool {
	re, im := real(s), imag(s)
	if im != 0 || re >= 0 {
		return false
	}
	if re != math.Trunc(re) {
		return false
	}
	return math.Mod(re, 2) == 0
}

// #endregion reflector

// Package primes connects the zeta engine to the prime counting function:
// a segmented sieve for exact counts, the Riemann explicit formula driven by
// computed zeros, and an Euler product cross-check of the Dirichlet series.
package primes

import (
	"math"
	"math/cmplx"
	"sort"
)

const segmentSize = 32768

// #region sieve

// Generate returns all primes ≤ nMax via a segmented Eratosthenes sieve.
func Generate(nMax int) []int {
	if nMax < 2 {
		return nil
	}
	limit := int(math.Sqrt(float64(nMax))) + 1
	base := simpleSieve(limit)
	primes := append([]int(nil), base...)

	size := max(limit, segmentSize)
	for low := limit + 1; low <= nMax; low += size {
		high := min(low+size-1, nMax)
		segment := make([]bool, high-low+1)
		for _, p := range base {
			start := max(((low+p-1)/p)*p, p*p)
			for j := start; j <= high; j += p {
				segment[j-low] = true
			}
		}
		for i, composite := range segment {
			if !composite {
				primes = append(primes, low+i)
			}
		}
	}
	return primes
}

func simpleSieve(limit int) []int {
	if limit < 2 {
		return nil
	}
	composite := make([]bool, limit+1)
	var primes []int
	for i := 2; i <= limit; i++ {
		if composite[i] {
			continue
		}
		primes = append(primes, i)
		for j := i * i; j <= limit; j += i {
			composite[j] = true
		}
	}
	return primes
}

// Count returns π(x), the number of primes ≤ x, given a sorted prime list
// covering x.
func Count(x float64, primes []int) int {
	return sort.SearchInts(primes, int(math.Floor(x))+1)
}

// #endregion sieve

// #region explicit-formula

// Psi evaluates the Chebyshev function ψ(x) through the Riemann explicit
// formula
//
//	ψ(x) = x - Σ_ρ x^ρ/ρ - ln 2π
//
// over the supplied zeros (positive ordinates only; each ρ is paired with
// its conjugate, giving the real contribution 2·Re(x^ρ/ρ)). Zeros above
// maxHeight are skipped; maxHeight ≤ 0 uses every zero given.
func Psi(x float64, zeros []complex128, maxHeight float64) float64 {
	if x <= 1 {
		return 0
	}
	logx := math.Log(x)
	psi := x
	for _, rho := range zeros {
		if maxHeight > 0 && math.Abs(imag(rho)) > maxHeight {
			continue
		}
		psi -= 2 * real(cmplx.Exp(rho*complex(logx, 0))/rho)
	}
	return psi - math.Log(2*math.Pi)
}

// PiExplicit approximates π(x) as ψ(x)/ln x.
func PiExplicit(x float64, zeros []complex128, maxHeight float64) float64 {
	if x <= 1 {
		return 0
	}
	return Psi(x, zeros, maxHeight) / math.Log(x)
}

// #endregion explicit-formula

// #region euler-product

// ZetaEuler evaluates the truncated Euler product ζ(s) ≈ Π (1 - p^-s)^-1
// over the supplied primes. Only meaningful for Re(s) > 1. A positive cutoff
// stops early once |factor - 1| drops below it.
func ZetaEuler(s complex128, primes []int, cutoff float64) complex128 {
	prod := complex(1, 0)
	for _, p := range primes {
		factor := 1 / (1 - cmplx.Exp(-s*complex(math.Log(float64(p)), 0)))
		if cutoff > 0 && cmplx.Abs(factor-1) < cutoff {
			break
		}
		prod *= factor
	}
	return prod
}

// #endregion euler-product

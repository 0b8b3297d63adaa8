package primes

import (
	"math"
	"math/cmplx"
	"testing"

	"github.com/riemannlab/riemann/go-engine/internal/zeta"
)

// First ten zero ordinates on the critical line, used as explicit-formula input.
var firstZeros = func() []complex128 {
	ordinates := []float64{
		14.134725141734693, 21.022039638771554, 25.010857580145688,
		30.424876125859513, 32.935061587739190, 37.586178158825671,
		40.918719012147495, 43.327073280914999, 48.005150881167159,
		49.773832477672302,
	}
	zs := make([]complex128, len(ordinates))
	for i, t := range ordinates {
		zs[i] = complex(0.5, t)
	}
	return zs
}()

func TestGenerateSmall(t *testing.T) {
	tests := []struct {
		nMax  int
		count int
		last  int
	}{
		{1, 0, 0},
		{2, 1, 2},
		{10, 4, 7},
		{100, 25, 97},
		{1000, 168, 997},
	}
	for _, tc := range tests {
		got := Generate(tc.nMax)
		if len(got) != tc.count {
			t.Fatalf("Generate(%d): %d primes, want %d", tc.nMax, len(got), tc.count)
		}
		if tc.count > 0 && got[len(got)-1] != tc.last {
			t.Fatalf("Generate(%d): last prime %d, want %d", tc.nMax, got[len(got)-1], tc.last)
		}
	}
}

func TestGenerateSegmented(t *testing.T) {
	// 100000 crosses several segments; π(10^5) = 9592.
	got := Generate(100000)
	if len(got) != 9592 {
		t.Fatalf("π(10^5) = %d, want 9592", len(got))
	}
}

func TestCount(t *testing.T) {
	primes := Generate(100)
	if got := Count(97, primes); got != 25 {
		t.Fatalf("Count(97) = %d, want 25", got)
	}
	if got := Count(96.5, primes); got != 24 {
		t.Fatalf("Count(96.5) = %d, want 24", got)
	}
	if got := Count(1, primes); got != 0 {
		t.Fatalf("Count(1) = %d, want 0", got)
	}
}

func TestZetaEulerMatchesKnown(t *testing.T) {
	primes := Generate(1000)
	got := ZetaEuler(3, primes, 0)
	if cmplx.Abs(got-complex(1.2020569031595943, 0)) > 1e-6 {
		t.Fatalf("Euler product ζ(3) = %v", got)
	}
}

func TestZetaEulerMatchesEngine(t *testing.T) {
	primes := Generate(5000)
	s := complex(2.5, 0.5)
	got := ZetaEuler(s, primes, 0)
	res, err := zeta.Evaluate(s, zeta.ToleranceConfig{})
	if err != nil {
		t.Fatalf("Evaluate: %v", err)
	}
	if cmplx.Abs(got-res.Value) > 1e-4 {
		t.Fatalf("Euler product %v vs engine %v", got, res.Value)
	}
}

func TestPsiWithoutZeros(t *testing.T) {
	got := Psi(100, nil, 0)
	want := 100 - math.Log(2*math.Pi)
	if got != want {
		t.Fatalf("Psi(100, none) = %g, want %g", got, want)
	}
	if Psi(1, firstZeros, 0) != 0 {
		t.Fatal("Psi(1) should be 0")
	}
}

func TestPsiApproximatesChebyshev(t *testing.T) {
	// Exact ψ(50) = Σ_{p^k ≤ 50} ln p.
	exact := 0.0
	for _, p := range Generate(50) {
		for pk := float64(p); pk <= 50; pk *= float64(p) {
			exact += math.Log(float64(p))
		}
	}
	got := Psi(50, firstZeros, 0)
	if math.Abs(got-exact) > 10 {
		t.Fatalf("explicit ψ(50) = %g, exact %g: truncated-sum error too large", got, exact)
	}
}

func TestPiExplicitRoughlyTracksPi(t *testing.T) {
	primes := Generate(1000)
	exact := float64(Count(1000, primes))
	got := PiExplicit(1000, firstZeros, 0)
	if math.Abs(got-exact)/exact > 0.3 {
		t.Fatalf("PiExplicit(1000) = %g, exact π = %g: relative error too large", got, exact)
	}
	if PiExplicit(1, firstZeros, 0) != 0 {
		t.Fatal("PiExplicit(1) should be 0")
	}
}

func TestPsiMaxHeightFilter(t *testing.T) {
	all := Psi(100, firstZeros, 0)
	truncated := Psi(100, firstZeros, 15)
	if all == truncated {
		t.Fatal("maxHeight filter had no effect")
	}
	// Filtering to below the first ordinate leaves only the smooth terms.
	none := Psi(100, firstZeros, 10)
	if none != 100-math.Log(2*math.Pi) {
		t.Fatalf("Psi with all zeros filtered = %g", none)
	}
}

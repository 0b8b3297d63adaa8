package gammafn

import (
	"math"
	"math/cmplx"
	"testing"
)

func TestGammaKnownValues(t *testing.T) {
	tests := []struct {
		name string
		z    complex128
		want complex128
	}{
		{"gamma-1", 1, 1},
		{"gamma-2", 2, 1},
		{"gamma-5", 5, 24},
		{"gamma-half", 0.5, complex(math.Sqrt(math.Pi), 0)},
		{"gamma-neg-half", -0.5, complex(-2*math.Sqrt(math.Pi), 0)},
		{"gamma-1+i", complex(1, 1), complex(0.49801566811835604, -0.15494982830181067)},
		{"gamma-half+i", complex(0.5, 1), complex(0.30069462542388841, -0.42496774924012819)},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := Gamma(tc.z)
			if cmplx.Abs(got-tc.want) > 1e-10*math.Max(1, cmplx.Abs(tc.want)) {
				t.Fatalf("Gamma(%v) = %v, want %v", tc.z, got, tc.want)
			}
		})
	}
}

func TestGammaRecurrence(t *testing.T) {
	// Γ(z+1) = z Γ(z) off the real axis.
	points := []complex128{
		complex(0.3, 2.5),
		complex(2.7, -1.1),
		complex(-1.3, 0.8),
	}
	for _, z := range points {
		lhs := Gamma(z + 1)
		rhs := z * Gamma(z)
		if cmplx.Abs(lhs-rhs) > 1e-10*cmplx.Abs(lhs) {
			t.Fatalf("recurrence failed at %v: Γ(z+1)=%v, zΓ(z)=%v", z, lhs, rhs)
		}
	}
}

func TestGammaConjugateSymmetry(t *testing.T) {
	points := []complex128{
		complex(1.5, 3),
		complex(0.25, 7),
		complex(-2.5, 1.5),
	}
	for _, z := range points {
		a := Gamma(cmplx.Conj(z))
		b := cmplx.Conj(Gamma(z))
		if cmplx.Abs(a-b) > 1e-10*cmplx.Abs(b) {
			t.Fatalf("conjugate symmetry failed at %v: %v vs %v", z, a, b)
		}
	}
}

package zeros

import (
	"context"
	"math"
	"testing"

	"github.com/riemannlab/riemann/go-engine/internal/zeta"
)

func TestSweepFindsFirstZero(t *testing.T) {
	got, err := Sweep(context.Background(), SweepConfig{
		TStart: 13,
		TEnd:   15,
		Step:   0.05,
	}, zeta.New())
	if err != nil {
		t.Fatalf("Sweep: %v", err)
	}
	if len(got) != 1 {
		t.Fatalf("expected 1 zero in [13, 15], got %d", len(got))
	}
	z := got[0]
	if math.Abs(z.T-14.134725) > 0.02 {
		t.Fatalf("first zero at t=%g, want ≈ 14.134725", z.T)
	}
	if z.T < z.Bracket[0] || z.T > z.Bracket[1] {
		t.Fatalf("zero t=%g outside bracket %v", z.T, z.Bracket)
	}
	if z.Iterations == 0 {
		t.Fatal("expected bisection to iterate")
	}
}

func TestSweepFindsFirstTwoZeros(t *testing.T) {
	got, err := Sweep(context.Background(), SweepConfig{
		TStart:  12,
		TEnd:    23,
		Step:    0.05,
		Workers: 4,
	}, zeta.New())
	if err != nil {
		t.Fatalf("Sweep: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("expected 2 zeros in [12, 23], got %d", len(got))
	}
	want := []float64{14.134725, 21.022040}
	for i, w := range want {
		if math.Abs(got[i].T-w) > 0.05 {
			t.Fatalf("zero %d at t=%g, want ≈ %g", i, got[i].T, w)
		}
	}
	if got[0].T >= got[1].T {
		t.Fatalf("zeros not ascending: %g, %g", got[0].T, got[1].T)
	}
}

func TestSweepProbesTrailingPartialStep(t *testing.T) {
	// (14.15 - 13.9) is not a multiple of 0.2, so the first zero at
	// t ≈ 14.1347 sits between the last full grid point (14.1) and TEnd.
	got, err := Sweep(context.Background(), SweepConfig{
		TStart: 13.9,
		TEnd:   14.15,
		Step:   0.2,
	}, zeta.New())
	if err != nil {
		t.Fatalf("Sweep: %v", err)
	}
	if len(got) != 1 {
		t.Fatalf("expected 1 zero in [13.9, 14.15], got %d", len(got))
	}
	if math.Abs(got[0].T-14.134725) > 0.02 {
		t.Fatalf("zero at t=%g, want ≈ 14.134725", got[0].T)
	}
	if got[0].Bracket[1] > 14.15 {
		t.Fatalf("bracket %v exceeds TEnd", got[0].Bracket)
	}
}

func TestSweepEmptyRange(t *testing.T) {
	if _, err := Sweep(context.Background(), SweepConfig{TStart: 20, TEnd: 10}, zeta.New()); err == nil {
		t.Fatal("expected error for empty range")
	}
}

func TestSweepCanceledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, err := Sweep(ctx, SweepConfig{TStart: 10, TEnd: 100, Step: 0.01}, zeta.New()); err == nil {
		t.Fatal("expected error from canceled context")
	}
}

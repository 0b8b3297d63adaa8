package zeta

import (
	"errors"
	"math"
	"testing"
)

func TestClassifyRegions(t *testing.T) {
	tests := []struct {
		name string
		s    complex128
		want Region
	}{
		{"direct-real", 2, RegionDirect},
		{"direct-complex", complex(4, 100), RegionDirect},
		{"accelerated-band", 1.2, RegionAccelerated},
		{"accelerated-critical-line", complex(0.5, 14.1), RegionAccelerated},
		{"accelerated-near-pole", complex(1, 1), RegionAccelerated},
		{"reflected-zero-re", complex(0, 3), RegionReflected},
		{"reflected-negative", -3, RegionReflected},
		{"boundary-threshold", complex(directThreshold, 0), RegionAccelerated},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, err := Classify(tc.s)
			if err != nil {
				t.Fatalf("Classify(%v): %v", tc.s, err)
			}
			if got != tc.want {
				t.Fatalf("Classify(%v) = %s, want %s", tc.s, got, tc.want)
			}
		})
	}
}

func TestClassifyPole(t *testing.T) {
	region, err := Classify(complex(1, 0))
	if region != RegionPole {
		t.Fatalf("expected RegionPole, got %s", region)
	}
	var pe *PoleError
	if !errors.As(err, &pe) {
		t.Fatalf("expected *PoleError, got %v", err)
	}
}

func TestClassifyNonFinite(t *testing.T) {
	tests := []struct {
		name string
		s    complex128
	}{
		{"nan-re", complex(math.NaN(), 0)},
		{"nan-im", complex(2, math.NaN())},
		{"inf-re", complex(math.Inf(1), 0)},
		{"inf-im", complex(0.5, math.Inf(-1))},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := Classify(tc.s)
			var iae *InvalidArgumentError
			if !errors.As(err, &iae) {
				t.Fatalf("expected *InvalidArgumentError, got %v", err)
			}
		})
	}
}

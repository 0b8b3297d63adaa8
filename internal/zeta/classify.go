package zeta

import "math"

// #region classify

// Classify validates s and maps it to its evaluation region. The pole check
// is exact; region boundaries use the fixed real-part thresholds. Returns
// RegionPole together with a *PoleError so callers can branch on either.
func Classify(s complex128) (Region, error) {
	re, im := real(s), imag(s)
	if !isFinite(re) || !isFinite(im) {
		return "", &InvalidArgumentError{S: s, Reason: "non-finite component"}
	}
	if re == 1 && im == 0 {
		return RegionPole, &PoleError{S: s}
	}
	switch {
	case re > directThreshold:
		return RegionDirect, nil
	case re > 0:
		return RegionAccelerated, nil
	default:
		return RegionReflected, nil
	}
}

func isFinite(x float64) bool {
	return !math.IsNaN(x) && !math.IsInf(x, 0)
}

// #endregion classify

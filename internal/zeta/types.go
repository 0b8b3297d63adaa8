package zeta

// #region region

// Region classifies where in the complex plane an argument falls.
type Region string

const (
	RegionPole        Region = "pole"
	RegionDirect      Region = "direct"
	RegionAccelerated Region = "accelerated"
	RegionReflected   Region = "reflected"
)

// directThreshold is the real-part cutoff above which the raw Dirichlet
// series converges fast enough for direct summation. Kept above 1 with a
// safety margin so the slow band near the pole routes to acceleration.
const directThreshold = 1.5

// #endregion region

// #region method

// Method identifies which summation strategy produced a Result.
type Method string

const (
	MethodDirect      Method = "direct"
	MethodAccelerated Method = "accelerated"
	MethodReflected   Method = "reflected"
)

// #endregion method

// #region tolerance-config

// ToleranceConfig bounds the work of a single evaluation. Constructed per
// call and passed by value; the engine holds no shared mutable state.
type ToleranceConfig struct {
	// AbsTol is the target absolute error of the returned value.
	AbsTol float64
	// MaxTerms caps the number of series terms per summation.
	MaxTerms int
	// MinTerms guards against premature stopping on oscillatory partial sums.
	MinTerms int
}

// DefaultToleranceConfig returns the standard evaluation budget.
func DefaultToleranceConfig() ToleranceConfig {
	return ToleranceConfig{
		AbsTol:   1e-12,
		MaxTerms: 1_000_000,
		MinTerms: 8,
	}
}

// #endregion tolerance-config

// #region result

// Result is the outcome of one evaluation. Converged=false flags that the
// term budget ran out before AbsTol was met; Value is then the best partial
// estimate and ErrEstimate carries the degraded bound.
type Result struct {
	Value       complex128
	ErrEstimate float64
	Terms       int
	Method      Method
	Converged   bool
}

// #endregion result

// #region gamma-capability

// GammaFunc is the complex Gamma primitive consumed by the functional
// equation reflector. Injectable so the core is testable against a
// reference implementation.
type GammaFunc func(z complex128) complex128

// #endregion gamma-capability

// Package zeta evaluates the Riemann zeta function for arbitrary complex
// arguments, excluding the pole at s = 1. Arguments are classified into
// regions and routed to a direct Dirichlet summer, an Euler-accelerated
// eta summer, or a functional-equation reflector. Every call is pure and
// independently budgeted, so concurrent evaluation needs no locking.
package zeta

import (
	"github.com/riemannlab/riemann/go-engine/internal/gammafn"
)

// #region engine

// Engine is the region dispatcher and sole public entry point. The zero
// value is not usable; construct with New.
type Engine struct {
	gamma GammaFunc
}

// Option configures an Engine.
type Option func(*Engine)

// WithGamma substitutes the complex Gamma implementation used by the
// functional equation reflector.
func WithGamma(g GammaFunc) Option {
	return func(e *Engine) { e.gamma = g }
}

// New creates an Engine wired to the default Lanczos Gamma.
func New(opts ...Option) *Engine {
	e := &Engine{gamma: gammafn.Gamma}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// #endregion engine

// #region evaluate

// Evaluate computes ζ(s) under the given tolerance budget. Zero-valued
// config fields fall back to DefaultToleranceConfig. Fails with *PoleError
// for s = 1+0i and *InvalidArgumentError for non-finite components; budget
// exhaustion is not an error and is reported via Result.Converged.
func (e *Engine) Evaluate(s complex128, cfg ToleranceConfig) (Result, error) {
	return e.evaluate(s, newController(cfg))
}

// evaluate is the recursive dispatcher: the reflector re-enters it with 1-s.
func (e *Engine) evaluate(s complex128, ctl controller) (Result, error) {
	region, err := Classify(s)
	if err != nil {
		return Result{}, err
	}
	switch region {
	case RegionDirect:
		return sumDirect(s, ctl), nil
	case RegionAccelerated:
		return sumAccelerated(s, ctl), nil
	case RegionReflected:
		return e.reflect(s, ctl)
	default:
		// Classify returns an error for the pole, so this is unreachable.
		return Result{}, &PoleError{S: s}
	}
}

// #endregion evaluate

// #region package-default

var defaultEngine = New()

// Evaluate computes ζ(s) with the package default engine.
func Evaluate(s complex128, cfg ToleranceConfig) (Result, error) {
	return defaultEngine.Evaluate(s, cfg)
}

// #endregion package-default

package zeta

// #region controller

// controller is the stopping policy shared by the summers. It normalizes a
// caller-supplied ToleranceConfig once and then answers two questions per
// iteration: is the residual small enough, and is the budget spent.
type controller struct {
	cfg ToleranceConfig
}

func newController(cfg ToleranceConfig) controller {
	def := DefaultToleranceConfig()
	if cfg.AbsTol <= 0 {
		cfg.AbsTol = def.AbsTol
	}
	if cfg.MaxTerms <= 0 {
		cfg.MaxTerms = def.MaxTerms
	}
	if cfg.MinTerms <= 0 {
		cfg.MinTerms = def.MinTerms
	}
	if cfg.MinTerms > cfg.MaxTerms {
		cfg.MinTerms = cfg.MaxTerms
	}
	return controller{cfg: cfg}
}

// done reports whether a summation may stop: the residual estimate is below
// target and enough terms have been taken to trust it.
func (c controller) done(terms int, residual float64) bool {
	return terms >= c.cfg.MinTerms && residual < c.cfg.AbsTol
}

// exhausted reports whether the term budget is spent.
func (c controller) exhausted(terms int) bool {
	return terms >= c.cfg.MaxTerms
}

// #endregion controller

// Package fixture loads JSON fixtures of evaluation cases and replays them
// through the engine. Fixtures double as golden-value regression suites for
// the command-line replay tool and as table input for tests.
package fixture

import (
	"encoding/json"
	"fmt"
	"os"
)

// #region fixture-types

// Fixture is the top-level JSON structure for an evaluation fixture.
type Fixture struct {
	Description string      `json:"description"`
	Tolerance   Tolerance   `json:"tolerance"`
	Cases       []Case      `json:"cases"`
}

// Tolerance mirrors zeta.ToleranceConfig with JSON tags. Zero fields fall
// back to engine defaults.
type Tolerance struct {
	AbsTol   float64 `json:"abs_tol"`
	MaxTerms int     `json:"max_terms"`
	MinTerms int     `json:"min_terms"`
}

// Case is one evaluation case: an argument and what to expect from it.
type Case struct {
	Name string  `json:"name"`
	Re   float64 `json:"re"`
	Im   float64 `json:"im"`

	// Expected value and the acceptance band around it. Ignored when
	// WantPole is set.
	WantRe   float64 `json:"want_re"`
	WantIm   float64 `json:"want_im"`
	MaxError float64 `json:"max_error"`

	// WantPole marks a case expected to fail with the pole error.
	WantPole bool `json:"want_pole,omitempty"`
}

// #endregion fixture-types

// #region load

// Load reads and parses a fixture file.
func Load(path string) (Fixture, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Fixture{}, fmt.Errorf("read fixture: %w", err)
	}
	var f Fixture
	if err := json.Unmarshal(data, &f); err != nil {
		return Fixture{}, fmt.Errorf("parse fixture: %w", err)
	}
	if len(f.Cases) == 0 {
		return Fixture{}, fmt.Errorf("fixture %s has no cases", path)
	}
	return f, nil
}

// #endregion load

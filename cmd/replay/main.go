// Command replay runs a JSON fixture of known ζ values through the engine
// and reports any case whose result drifts outside its allowed error.
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"strconv"

	"github.com/riemannlab/riemann/go-engine/internal/fixture"
	"github.com/riemannlab/riemann/go-engine/internal/zeta"
)

// #region main

func main() {
	path := flag.String("fixture", "", "path to fixture JSON")
	failFast := flag.Bool("fail-fast", false, "stop printing after the first failure")
	jsonOut := flag.Bool("json", false, "output as JSON instead of table")
	flag.Parse()

	if *path == "" {
		fmt.Fprintln(os.Stderr, "usage: replay --fixture cases.json [--fail-fast] [--json]")
		os.Exit(2)
	}

	f, err := fixture.Load(*path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "load fixture: %v\n", err)
		os.Exit(1)
	}

	results := fixture.Replay(f, zeta.New())
	sum := fixture.Summarize(results)

	if *jsonOut {
		if err := printJSON(results, sum); err != nil {
			fmt.Fprintf(os.Stderr, "error: %v\n", err)
			os.Exit(1)
		}
	} else {
		printTable(f.Description, results, sum, *failFast)
	}

	if sum.Failures > 0 {
		os.Exit(1)
	}
}

// #endregion main

// #region table

func printTable(desc string, results []fixture.CaseResult, sum fixture.Summary, failFast bool) {
	if desc != "" {
		fmt.Printf("Fixture: %s\n\n", desc)
	}
	fmt.Printf("%-24s  %-6s  %-12s  %8s  %12s\n",
		"Case", "Pass", "Method", "Terms", "Abs Error")
	fmt.Printf("%-24s+-%-6s+-%-12s+-%8s+-%12s\n",
		"------------------------", "------", "------------", "--------", "------------")

	for _, r := range results {
		status := "ok"
		if !r.Pass {
			status = "FAIL"
		}
		fmt.Printf("%-24s  %-6s  %-12s  %8d  %12s\n",
			r.Name, status, string(r.Method), r.Terms,
			strconv.FormatFloat(r.AbsError, 'e', 3, 64))
		if !r.Pass {
			fmt.Printf("  reason: %s\n", r.Reason)
			if failFast {
				break
			}
		}
	}

	fmt.Printf("\n%d cases: %d passed, %d failed", sum.Total, sum.Passes, sum.Failures)
	if sum.Exhausted > 0 {
		fmt.Printf(" (%d exhausted term budget)", sum.Exhausted)
	}
	fmt.Println()
}

// #endregion table

// #region json

type jsonCase struct {
	Name      string  `json:"name"`
	Pass      bool    `json:"pass"`
	GotRe     float64 `json:"got_re"`
	GotIm     float64 `json:"got_im"`
	AbsError  float64 `json:"abs_error"`
	Method    string  `json:"method,omitempty"`
	Terms     int     `json:"terms"`
	Exhausted bool    `json:"exhausted,omitempty"`
	Reason    string  `json:"reason,omitempty"`
}

type jsonReport struct {
	Cases     []jsonCase `json:"cases"`
	Total     int        `json:"total"`
	Passes    int        `json:"passes"`
	Failures  int        `json:"failures"`
	Exhausted int        `json:"exhausted"`
}

func printJSON(results []fixture.CaseResult, sum fixture.Summary) error {
	rep := jsonReport{
		Total:     sum.Total,
		Passes:    sum.Passes,
		Failures:  sum.Failures,
		Exhausted: sum.Exhausted,
	}
	for _, r := range results {
		rep.Cases = append(rep.Cases, jsonCase{
			Name:      r.Name,
			Pass:      r.Pass,
			GotRe:     real(r.Got),
			GotIm:     imag(r.Got),
			AbsError:  r.AbsError,
			Method:    string(r.Method),
			Terms:     r.Terms,
			Exhausted: r.Exhausted,
			Reason:    r.Reason,
		})
	}
	data, err := json.MarshalIndent(rep, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal json: %w", err)
	}
	fmt.Println(string(data))
	return nil
}

// #endregion json

// Command zeta evaluates ζ(s) at a single point or over a rectangle in the
// complex plane, printing a table, JSON, or CSV.
package main

import (
	"context"
	"encoding/csv"
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"strconv"

	"github.com/riemannlab/riemann/go-engine/internal/grid"
	"github.com/riemannlab/riemann/go-engine/internal/zeta"
)

// #region main

func main() {
	sFlag := flag.String("s", "", "single argument in Go complex syntax, e.g. 2+3i or 0.5+14.13i")
	reStart := flag.Float64("re-start", 0, "rectangle real start")
	reEnd := flag.Float64("re-end", 0, "rectangle real end")
	imStart := flag.Float64("im-start", 0, "rectangle imaginary start")
	imEnd := flag.Float64("im-end", 0, "rectangle imaginary end")
	step := flag.Float64("step", 1.0, "rectangle step along both axes")
	tol := flag.Float64("tol", 0, "absolute tolerance (0 = engine default)")
	maxTerms := flag.Int("max-terms", 0, "term budget per evaluation (0 = engine default)")
	output := flag.String("output", "", "CSV output path for rectangle mode (default stdout)")
	jsonOut := flag.Bool("json", false, "output as JSON instead of table/CSV")
	flag.Parse()

	cfg := zeta.ToleranceConfig{AbsTol: *tol, MaxTerms: *maxTerms}

	var err error
	if *sFlag != "" {
		err = runPointMode(*sFlag, cfg, *jsonOut)
	} else if *reEnd != 0 || *imEnd != 0 || *reStart != 0 || *imStart != 0 {
		err = runRangeMode(grid.ScanConfig{
			ReStart: *reStart, ReEnd: *reEnd,
			ImStart: *imStart, ImEnd: *imEnd,
			Step: *step, Tolerance: cfg,
		}, *output, *jsonOut)
	} else {
		fmt.Fprintln(os.Stderr, "usage: zeta --s 2+3i [--tol 1e-12]")
		fmt.Fprintln(os.Stderr, "       zeta --re-start -2 --re-end 3 --im-start 0 --im-end 20 --step 0.5 [--output out.csv]")
		os.Exit(2)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

// #endregion main

// #region point-mode

type pointOutput struct {
	S           string  `json:"s"`
	Value       string  `json:"value"`
	Re          float64 `json:"re"`
	Im          float64 `json:"im"`
	ErrEstimate float64 `json:"err_estimate"`
	Terms       int     `json:"terms"`
	Method      string  `json:"method"`
	Converged   bool    `json:"converged"`
}

func runPointMode(arg string, cfg zeta.ToleranceConfig, jsonOut bool) error {
	s, err := strconv.ParseComplex(arg, 128)
	if err != nil {
		return fmt.Errorf("parse argument %q: %w", arg, err)
	}

	res, err := zeta.New().Evaluate(s, cfg)
	if err != nil {
		return err
	}

	out := pointOutput{
		S:           formatComplex(s),
		Value:       formatComplex(res.Value),
		Re:          real(res.Value),
		Im:          imag(res.Value),
		ErrEstimate: res.ErrEstimate,
		Terms:       res.Terms,
		Method:      string(res.Method),
		Converged:   res.Converged,
	}
	if jsonOut {
		return printJSON(out)
	}

	fmt.Printf("ζ(%s) = %s\n", out.S, out.Value)
	fmt.Printf("Error:     %.3g\n", out.ErrEstimate)
	fmt.Printf("Terms:     %d\n", out.Terms)
	fmt.Printf("Method:    %s\n", out.Method)
	if !out.Converged {
		fmt.Printf("Warning:   term budget exhausted before target tolerance\n")
	}
	return nil
}

// #endregion point-mode

// #region range-mode

func runRangeMode(cfg grid.ScanConfig, output string, jsonOut bool) error {
	samples, err := grid.Scan(context.Background(), cfg, zeta.New())
	if err != nil {
		return err
	}

	if jsonOut {
		rows := make([]pointOutput, 0, len(samples))
		for _, sm := range samples {
			if sm.Skipped {
				continue
			}
			rows = append(rows, pointOutput{
				S:           formatComplex(sm.S),
				Value:       formatComplex(sm.Value),
				Re:          real(sm.Value),
				Im:          imag(sm.Value),
				ErrEstimate: sm.ErrEstimate,
				Terms:       sm.Terms,
				Method:      string(sm.Method),
				Converged:   sm.Converged,
			})
		}
		return printJSON(rows)
	}

	var w *csv.Writer
	if output != "" {
		f, err := os.Create(output)
		if err != nil {
			return fmt.Errorf("create %s: %w", output, err)
		}
		defer f.Close()
		w = csv.NewWriter(f)
	} else {
		w = csv.NewWriter(os.Stdout)
	}

	header := []string{"s_re", "s_im", "value_re", "value_im", "err_estimate", "terms", "method", "converged", "skipped"}
	if err := w.Write(header); err != nil {
		return fmt.Errorf("write header: %w", err)
	}
	for _, sm := range samples {
		row := []string{
			formatFloat(real(sm.S)),
			formatFloat(imag(sm.S)),
			formatFloat(real(sm.Value)),
			formatFloat(imag(sm.Value)),
			formatFloat(sm.ErrEstimate),
			strconv.Itoa(sm.Terms),
			string(sm.Method),
			strconv.FormatBool(sm.Converged),
			strconv.FormatBool(sm.Skipped),
		}
		if err := w.Write(row); err != nil {
			return fmt.Errorf("write sample: %w", err)
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return err
	}
	if output != "" {
		fmt.Fprintf(os.Stderr, "%d samples written to %s\n", len(samples), output)
	}
	return nil
}

// #endregion range-mode

// #region output

func formatComplex(z complex128) string {
	return strconv.FormatComplex(z, 'g', -1, 128)
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}

func printJSON(v interface{}) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal json: %w", err)
	}
	fmt.Println(string(data))
	return nil
}

// #endregion output

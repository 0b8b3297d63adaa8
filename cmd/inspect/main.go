package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"os"

	"github.com/riemannlab/riemann/go-engine/internal/store"
)

// #region main

func main() {
	dbPath := flag.String("db", "", "path to riemann.db")
	last := flag.Int("last", 20, "show N most recent runs")
	runID := flag.String("run", "", "show single run detail")
	showZeros := flag.Bool("zeros", false, "include full zero list in run detail")
	showSamples := flag.Bool("samples", false, "include full sample list in run detail")
	jsonOut := flag.Bool("json", false, "output as JSON instead of table")
	flag.Parse()

	if *dbPath == "" {
		fmt.Fprintln(os.Stderr, "usage: inspect --db path/to/riemann.db [--last N] [--run id] [--zeros] [--samples] [--json]")
		os.Exit(2)
	}

	st, err := store.NewStore(*dbPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "open db: %v\n", err)
		os.Exit(1)
	}
	defer st.Close()

	if *runID != "" {
		if err := runDetailMode(st, *runID, *showZeros, *showSamples, *jsonOut); err != nil {
			fmt.Fprintf(os.Stderr, "error: %v\n", err)
			os.Exit(1)
		}
	} else {
		if err := runListMode(st, *last, *jsonOut); err != nil {
			fmt.Fprintf(os.Stderr, "error: %v\n", err)
			os.Exit(1)
		}
	}
}

// #endregion main

// #region list-mode

type listRow struct {
	RunID     string `json:"run_id"`
	Kind      string `json:"kind"`
	Zeros     int    `json:"zeros"`
	Samples   int    `json:"samples"`
	LastEvent string `json:"last_event"`
	CreatedAt string `json:"created_at"`
}

func runListMode(st *store.Store, last int, jsonOut bool) error {
	runs, err := st.ListRuns(last)
	if err != nil {
		return err
	}
	if len(runs) == 0 {
		fmt.Fprintln(os.Stderr, "no runs found")
		return nil
	}

	// Store returns DESC, reverse for chronological.
	rows := make([]listRow, len(runs))
	for i, rec := range runs {
		zs, err := st.ListZeros(rec.RunID)
		if err != nil {
			return err
		}
		samples, err := st.ListSamples(rec.RunID)
		if err != nil {
			return err
		}
		events, err := st.ListEvents(rec.RunID)
		if err != nil {
			return err
		}
		lastEvent := "—"
		if len(events) > 0 {
			lastEvent = events[len(events)-1].Event
		}
		rows[len(runs)-1-i] = listRow{
			RunID:     rec.RunID,
			Kind:      rec.Kind,
			Zeros:     len(zs),
			Samples:   len(samples),
			LastEvent: lastEvent,
			CreatedAt: rec.CreatedAt.Format("2006-01-02T15:04:05Z"),
		}
	}

	if jsonOut {
		return printJSON(rows)
	}

	fmt.Printf("%-12s  %-10s  %6s  %8s  %-10s  %s\n",
		"Run", "Kind", "Zeros", "Samples", "Status", "Time")
	fmt.Printf("%-12s+-%-10s+-%6s+-%8s+-%-10s+-%s\n",
		"------------", "----------", "------", "--------", "----------", "--------------------")
	for _, r := range rows {
		fmt.Printf("%-12s  %-10s  %6d  %8d  %-10s  %s\n",
			shortID(r.RunID), r.Kind, r.Zeros, r.Samples, r.LastEvent, r.CreatedAt)
	}
	return nil
}

// #endregion list-mode

// #region detail-mode

type zeroOutput struct {
	Index      int     `json:"index"`
	T          float64 `json:"t"`
	BracketLo  float64 `json:"bracket_lo"`
	BracketHi  float64 `json:"bracket_hi"`
	Iterations int     `json:"iterations"`
}

type sampleOutput struct {
	SRe        float64 `json:"s_re"`
	SIm        float64 `json:"s_im"`
	ValueRe    float64 `json:"value_re"`
	ValueIm    float64 `json:"value_im"`
	Method     string  `json:"method"`
	Terms      int     `json:"terms"`
	Converged  bool    `json:"converged"`
	Skipped    bool    `json:"skipped"`
	SkipReason string  `json:"skip_reason,omitempty"`
}

type eventOutput struct {
	Event     string `json:"event"`
	Reason    string `json:"reason,omitempty"`
	CreatedAt string `json:"created_at"`
}

type detailOutput struct {
	RunID       string         `json:"run_id"`
	Kind        string         `json:"kind"`
	CreatedAt   string         `json:"created_at"`
	ParamsJSON  string         `json:"params_json,omitempty"`
	ZeroCount   int            `json:"zero_count"`
	SampleCount int            `json:"sample_count"`
	Skipped     int            `json:"skipped"`
	Exhausted   int            `json:"exhausted"`
	Events      []eventOutput  `json:"events"`
	Zeros       []zeroOutput   `json:"zeros,omitempty"`
	Samples     []sampleOutput `json:"samples,omitempty"`
}

func runDetailMode(st *store.Store, runID string, showZeros, showSamples, jsonOut bool) error {
	rec, err := st.GetRun(runID)
	if err != nil {
		return err
	}
	zs, err := st.ListZeros(runID)
	if err != nil {
		return err
	}
	samples, err := st.ListSamples(runID)
	if err != nil {
		return err
	}
	events, err := st.ListEvents(runID)
	if err != nil {
		return err
	}

	out := detailOutput{
		RunID:       rec.RunID,
		Kind:        rec.Kind,
		CreatedAt:   rec.CreatedAt.Format("2006-01-02T15:04:05Z"),
		ParamsJSON:  rec.ParamsJSON,
		ZeroCount:   len(zs),
		SampleCount: len(samples),
	}
	for _, sm := range samples {
		if sm.Skipped {
			out.Skipped++
		} else if !sm.Converged {
			out.Exhausted++
		}
	}
	for _, e := range events {
		out.Events = append(out.Events, eventOutput{
			Event:     e.Event,
			Reason:    e.Reason,
			CreatedAt: e.CreatedAt.Format("2006-01-02T15:04:05Z"),
		})
	}
	if showZeros {
		for i, z := range zs {
			out.Zeros = append(out.Zeros, zeroOutput{
				Index: i + 1, T: z.T,
				BracketLo: z.Bracket[0], BracketHi: z.Bracket[1],
				Iterations: z.Iterations,
			})
		}
	}
	if showSamples {
		for _, sm := range samples {
			out.Samples = append(out.Samples, sampleOutput{
				SRe: real(sm.S), SIm: imag(sm.S),
				ValueRe: real(sm.Value), ValueIm: imag(sm.Value),
				Method: string(sm.Method), Terms: sm.Terms,
				Converged: sm.Converged, Skipped: sm.Skipped,
				SkipReason: sm.SkipReason,
			})
		}
	}

	if jsonOut {
		return printJSON(out)
	}

	fmt.Printf("Run:      %s\n", out.RunID)
	fmt.Printf("Kind:     %s\n", out.Kind)
	fmt.Printf("Created:  %s\n", out.CreatedAt)
	if out.ParamsJSON != "" {
		fmt.Printf("Params:   %s\n", out.ParamsJSON)
	}
	fmt.Printf("Zeros:    %d\n", out.ZeroCount)
	fmt.Printf("Samples:  %d (%d skipped, %d exhausted)\n", out.SampleCount, out.Skipped, out.Exhausted)

	if len(out.Events) > 0 {
		fmt.Printf("\nEvents:\n")
		for _, e := range out.Events {
			if e.Reason != "" {
				fmt.Printf("  %-12s %s  %s\n", e.Event, e.CreatedAt, e.Reason)
			} else {
				fmt.Printf("  %-12s %s\n", e.Event, e.CreatedAt)
			}
		}
	}
	if showZeros && len(out.Zeros) > 0 {
		fmt.Printf("\nZeros:\n")
		fmt.Printf("  %4s  %16s  %10s\n", "#", "t", "iterations")
		for _, z := range out.Zeros {
			fmt.Printf("  %4d  %16.9f  %10d\n", z.Index, z.T, z.Iterations)
		}
	}
	if showSamples && len(out.Samples) > 0 {
		fmt.Printf("\nSamples:\n")
		for _, sm := range out.Samples {
			if sm.Skipped {
				fmt.Printf("  s=(%g, %g)  skipped: %s\n", sm.SRe, sm.SIm, sm.SkipReason)
				continue
			}
			fmt.Printf("  s=(%g, %g)  ζ=(%g, %g)  %s/%d\n",
				sm.SRe, sm.SIm, sm.ValueRe, sm.ValueIm, sm.Method, sm.Terms)
		}
	}
	return nil
}

// #endregion detail-mode

// #region output

func printJSON(v interface{}) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal json: %w", err)
	}
	fmt.Println(string(data))
	return nil
}

func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}

// #endregion output

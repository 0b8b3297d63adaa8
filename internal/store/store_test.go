package store

import (
	"path/filepath"
	"strings"
	"testing"

	"github.com/riemannlab/riemann/go-engine/internal/grid"
	"github.com/riemannlab/riemann/go-engine/internal/zeros"
	"github.com/riemannlab/riemann/go-engine/internal/zeta"
)

func tempDB(t *testing.T) *Store {
	t.Helper()
	dir := t.TempDir()
	s, err := NewStore(filepath.Join(dir, "test.db"))
	if err != nil {
		t.Fatalf("NewStore: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func TestCreateAndGetRun(t *testing.T) {
	s := tempDB(t)

	rec, err := s.CreateRun("sweep", map[string]float64{"t_start": 10, "t_end": 30})
	if err != nil {
		t.Fatalf("CreateRun: %v", err)
	}
	if rec.RunID == "" {
		t.Fatal("expected non-empty run ID")
	}

	got, err := s.GetRun(rec.RunID)
	if err != nil {
		t.Fatalf("GetRun: %v", err)
	}
	if got.Kind != "sweep" {
		t.Fatalf("expected kind sweep, got %s", got.Kind)
	}
	if !strings.Contains(got.ParamsJSON, "t_start") {
		t.Fatalf("params not persisted: %q", got.ParamsJSON)
	}
}

func TestGetRunNonExistent(t *testing.T) {
	s := tempDB(t)
	if _, err := s.GetRun("nonexistent-id"); err == nil {
		t.Fatal("expected error for non-existent run")
	}
}

func TestZerosRoundTrip(t *testing.T) {
	s := tempDB(t)
	rec, _ := s.CreateRun("sweep", nil)

	in := []zeros.Zero{
		{T: 14.134725, Bracket: [2]float64{14.1, 14.15}, Iterations: 22},
		{T: 21.022040, Bracket: [2]float64{21.0, 21.05}, Iterations: 24},
	}
	if err := s.InsertZeros(rec.RunID, in); err != nil {
		t.Fatalf("InsertZeros: %v", err)
	}

	got, err := s.ListZeros(rec.RunID)
	if err != nil {
		t.Fatalf("ListZeros: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("expected 2 zeros, got %d", len(got))
	}
	for i := range in {
		if got[i] != in[i] {
			t.Fatalf("zero %d: got %+v, want %+v", i, got[i], in[i])
		}
	}
}

func TestSamplesRoundTrip(t *testing.T) {
	s := tempDB(t)
	rec, _ := s.CreateRun("scan", nil)

	in := []grid.Sample{
		{
			S: complex(2, 0), Value: complex(1.6449340668, 0),
			ErrEstimate: 1e-13, Terms: 120, Method: zeta.MethodDirect, Converged: true,
		},
		{
			S: complex(1, 0), Skipped: true, SkipReason: "zeta: pole at s = (1+0i)",
		},
	}
	if err := s.InsertSamples(rec.RunID, in); err != nil {
		t.Fatalf("InsertSamples: %v", err)
	}

	got, err := s.ListSamples(rec.RunID)
	if err != nil {
		t.Fatalf("ListSamples: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("expected 2 samples, got %d", len(got))
	}
	if got[0].Method != zeta.MethodDirect || !got[0].Converged {
		t.Fatalf("first sample fields lost: %+v", got[0])
	}
	if !got[1].Skipped || !strings.Contains(got[1].SkipReason, "pole") {
		t.Fatalf("skip fields lost: %+v", got[1])
	}
}

func TestRunLog(t *testing.T) {
	s := tempDB(t)
	rec, _ := s.CreateRun("pipeline", nil)

	if err := s.LogEvent(rec.RunID, "started", ""); err != nil {
		t.Fatalf("LogEvent: %v", err)
	}
	if err := s.LogEvent(rec.RunID, "failed", "sweep range empty"); err != nil {
		t.Fatalf("LogEvent: %v", err)
	}

	entries, err := s.ListEvents(rec.RunID)
	if err != nil {
		t.Fatalf("ListEvents: %v", err)
	}
	if len(entries) != 2 {
		t.Fatalf("expected 2 entries, got %d", len(entries))
	}
	if entries[0].Event != "started" || entries[1].Reason != "sweep range empty" {
		t.Fatalf("entries wrong: %+v", entries)
	}
}

func TestListRunsNewestFirst(t *testing.T) {
	s := tempDB(t)
	s.CreateRun("sweep", nil)
	s.CreateRun("scan", nil)

	runs, err := s.ListRuns(10)
	if err != nil {
		t.Fatalf("ListRuns: %v", err)
	}
	if len(runs) != 2 {
		t.Fatalf("expected 2 runs, got %d", len(runs))
	}
}

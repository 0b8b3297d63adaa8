package fixture

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/riemannlab/riemann/go-engine/internal/zeta"
)

const sampleFixture = `{
  "description": "closed-form anchor values",
  "tolerance": {"abs_tol": 1e-10},
  "cases": [
    {"name": "zeta-2", "re": 2, "im": 0, "want_re": 1.6449340668482264, "want_im": 0, "max_error": 1e-8},
    {"name": "zeta-0", "re": 0, "im": 0, "want_re": -0.5, "want_im": 0, "max_error": 1e-8},
    {"name": "trivial-zero", "re": -2, "im": 0, "want_re": 0, "want_im": 0, "max_error": 0},
    {"name": "pole", "re": 1, "im": 0, "want_pole": true}
  ]
}`

func writeFixture(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "fixture.json")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write fixture: %v", err)
	}
	return path
}

func TestLoadAndReplay(t *testing.T) {
	path := writeFixture(t, sampleFixture)
	f, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if f.Description == "" || len(f.Cases) != 4 {
		t.Fatalf("fixture parsed wrong: %+v", f)
	}

	results := Replay(f, zeta.New())
	for _, r := range results {
		if !r.Pass {
			t.Fatalf("case %s failed: %s", r.Name, r.Reason)
		}
	}

	sum := Summarize(results)
	if sum.Total != 4 || sum.Passes != 4 || sum.Failures != 0 {
		t.Fatalf("summary wrong: %+v", sum)
	}
}

func TestReplayDetectsMismatch(t *testing.T) {
	f := Fixture{
		Cases: []Case{
			{Name: "wrong-value", Re: 2, Im: 0, WantRe: 3.0, MaxError: 1e-6},
		},
	}
	results := Replay(f, zeta.New())
	if results[0].Pass {
		t.Fatal("expected mismatch to fail")
	}
	sum := Summarize(results)
	if sum.Failures != 1 {
		t.Fatalf("summary wrong: %+v", sum)
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "absent.json")); err == nil {
		t.Fatal("expected error for missing file")
	}
}

func TestLoadEmptyCases(t *testing.T) {
	path := writeFixture(t, `{"description": "empty", "cases": []}`)
	if _, err := Load(path); err == nil {
		t.Fatal("expected error for empty case list")
	}
}

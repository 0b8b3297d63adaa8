// Package store persists computation runs, zeros, and grid samples in
// SQLite so sweeps can be resumed, inspected, and exported after the fact.
package store

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite"

	"github.com/riemannlab/riemann/go-engine/internal/grid"
	"github.com/riemannlab/riemann/go-engine/internal/zeros"
	"github.com/riemannlab/riemann/go-engine/internal/zeta"
)

// #region schema
const schema = `
CREATE TABLE IF NOT EXISTS runs (
	run_id       TEXT PRIMARY KEY,
	kind         TEXT NOT NULL,
	params_json  TEXT,
	created_at   TEXT NOT NULL
);

CREATE TABLE IF NOT EXISTS zeros (
	id          INTEGER PRIMARY KEY AUTOINCREMENT,
	run_id      TEXT NOT NULL,
	idx         INTEGER NOT NULL,
	t           REAL NOT NULL,
	bracket_lo  REAL NOT NULL,
	bracket_hi  REAL NOT NULL,
	iterations  INTEGER NOT NULL,
	FOREIGN KEY (run_id) REFERENCES runs(run_id)
);

CREATE TABLE IF NOT EXISTS samples (
	id            INTEGER PRIMARY KEY AUTOINCREMENT,
	run_id        TEXT NOT NULL,
	s_re          REAL NOT NULL,
	s_im          REAL NOT NULL,
	value_re      REAL,
	value_im      REAL,
	err_estimate  REAL,
	terms         INTEGER,
	method        TEXT,
	converged     INTEGER NOT NULL DEFAULT 1,
	skipped       INTEGER NOT NULL DEFAULT 0,
	skip_reason   TEXT,
	FOREIGN KEY (run_id) REFERENCES runs(run_id)
);

CREATE TABLE IF NOT EXISTS run_log (
	id          INTEGER PRIMARY KEY AUTOINCREMENT,
	run_id      TEXT NOT NULL,
	event       TEXT NOT NULL,
	reason      TEXT,
	created_at  TEXT NOT NULL,
	FOREIGN KEY (run_id) REFERENCES runs(run_id)
);
`

// #endregion schema

// #region store-struct
// Store manages persisted evaluation results in SQLite.
type Store struct {
	db *sql.DB
}

// #endregion store-struct

// #region constructor
// NewStore opens a SQLite database and runs migrations.
func NewStore(dbPath string) (*Store, error) {
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open db: %w", err)
	}
	if _, err := db.Exec("PRAGMA journal_mode=WAL"); err != nil {
		return nil, fmt.Errorf("pragma: %w", err)
	}
	if _, err := db.Exec("PRAGMA foreign_keys=ON"); err != nil {
		return nil, fmt.Errorf("pragma fk: %w", err)
	}
	if _, err := db.Exec(schema); err != nil {
		return nil, fmt.Errorf("migrate: %w", err)
	}
	return &Store{db: db}, nil
}

// Close closes the underlying database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

// DB returns the underlying *sql.DB for use by other packages.
func (s *Store) DB() *sql.DB {
	return s.db
}

// #endregion constructor

// #region runs
// CreateRun inserts a new run row with a fresh ID. params is serialized to
// JSON for later inspection; nil params is allowed.
func (s *Store) CreateRun(kind string, params any) (RunRecord, error) {
	rec := RunRecord{
		RunID:     uuid.New().String(),
		Kind:      kind,
		CreatedAt: time.Now().UTC(),
	}
	if params != nil {
		data, err := json.Marshal(params)
		if err != nil {
			return RunRecord{}, fmt.Errorf("marshal params: %w", err)
		}
		rec.ParamsJSON = string(data)
	}

	_, err := s.db.Exec(
		`INSERT INTO runs (run_id, kind, params_json, created_at) VALUES (?, ?, ?, ?)`,
		rec.RunID, rec.Kind, nullIfEmpty(rec.ParamsJSON), rec.CreatedAt.Format(time.RFC3339Nano),
	)
	if err != nil {
		return RunRecord{}, fmt.Errorf("insert run: %w", err)
	}
	return rec, nil
}

// GetRun retrieves a run by ID.
func (s *Store) GetRun(runID string) (RunRecord, error) {
	var rec RunRecord
	var paramsJSON sql.NullString
	var createdStr string
	err := s.db.QueryRow(
		`SELECT run_id, kind, params_json, created_at FROM runs WHERE run_id = ?`, runID,
	).Scan(&rec.RunID, &rec.Kind, &paramsJSON, &createdStr)
	if err != nil {
		return RunRecord{}, fmt.Errorf("get run %s: %w", runID, err)
	}
	if paramsJSON.Valid {
		rec.ParamsJSON = paramsJSON.String
	}
	rec.CreatedAt, _ = time.Parse(time.RFC3339Nano, createdStr)
	return rec, nil
}

// ListRuns returns the most recent runs, newest first.
func (s *Store) ListRuns(limit int) ([]RunRecord, error) {
	rows, err := s.db.Query(
		`SELECT run_id, kind, params_json, created_at FROM runs ORDER BY created_at DESC LIMIT ?`, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("list runs: %w", err)
	}
	defer rows.Close()

	var records []RunRecord
	for rows.Next() {
		var rec RunRecord
		var paramsJSON sql.NullString
		var createdStr string
		if err := rows.Scan(&rec.RunID, &rec.Kind, &paramsJSON, &createdStr); err != nil {
			return nil, fmt.Errorf("scan run: %w", err)
		}
		if paramsJSON.Valid {
			rec.ParamsJSON = paramsJSON.String
		}
		rec.CreatedAt, _ = time.Parse(time.RFC3339Nano, createdStr)
		records = append(records, rec)
	}
	return records, rows.Err()
}

// #endregion runs

// #region run-log
// LogEvent appends a lifecycle entry for a run.
func (s *Store) LogEvent(runID, event, reason string) error {
	_, err := s.db.Exec(
		`INSERT INTO run_log (run_id, event, reason, created_at) VALUES (?, ?, ?, ?)`,
		runID, event, nullIfEmpty(reason), time.Now().UTC().Format(time.RFC3339Nano),
	)
	if err != nil {
		return fmt.Errorf("log event: %w", err)
	}
	return nil
}

// ListEvents returns a run's log entries in insertion order.
func (s *Store) ListEvents(runID string) ([]LogEntry, error) {
	rows, err := s.db.Query(
		`SELECT run_id, event, reason, created_at FROM run_log WHERE run_id = ? ORDER BY id ASC`, runID,
	)
	if err != nil {
		return nil, fmt.Errorf("list events: %w", err)
	}
	defer rows.Close()

	var entries []LogEntry
	for rows.Next() {
		var e LogEntry
		var reason sql.NullString
		var createdStr string
		if err := rows.Scan(&e.RunID, &e.Event, &reason, &createdStr); err != nil {
			return nil, fmt.Errorf("scan event: %w", err)
		}
		if reason.Valid {
			e.Reason = reason.String
		}
		e.CreatedAt, _ = time.Parse(time.RFC3339Nano, createdStr)
		entries = append(entries, e)
	}
	return entries, rows.Err()
}

// #endregion run-log

// #region zeros
// InsertZeros persists a sweep's zeros under the given run, in order.
func (s *Store) InsertZeros(runID string, zs []zeros.Zero) error {
	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	for i, z := range zs {
		_, err := tx.Exec(
			`INSERT INTO zeros (run_id, idx, t, bracket_lo, bracket_hi, iterations)
			 VALUES (?, ?, ?, ?, ?, ?)`,
			runID, i+1, z.T, z.Bracket[0], z.Bracket[1], z.Iterations,
		)
		if err != nil {
			return fmt.Errorf("insert zero %d: %w", i+1, err)
		}
	}
	return tx.Commit()
}

// ListZeros returns a run's zeros ordered by index.
func (s *Store) ListZeros(runID string) ([]zeros.Zero, error) {
	rows, err := s.db.Query(
		`SELECT t, bracket_lo, bracket_hi, iterations FROM zeros WHERE run_id = ? ORDER BY idx ASC`, runID,
	)
	if err != nil {
		return nil, fmt.Errorf("list zeros: %w", err)
	}
	defer rows.Close()

	var zs []zeros.Zero
	for rows.Next() {
		var z zeros.Zero
		if err := rows.Scan(&z.T, &z.Bracket[0], &z.Bracket[1], &z.Iterations); err != nil {
			return nil, fmt.Errorf("scan zero: %w", err)
		}
		zs = append(zs, z)
	}
	return zs, rows.Err()
}

// #endregion zeros

// #region samples
// InsertSamples persists a grid scan's samples under the given run.
func (s *Store) InsertSamples(runID string, samples []grid.Sample) error {
	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	for _, sm := range samples {
		skipped := 0
		if sm.Skipped {
			skipped = 1
		}
		converged := 0
		if sm.Converged {
			converged = 1
		}
		_, err := tx.Exec(
			`INSERT INTO samples (run_id, s_re, s_im, value_re, value_im, err_estimate, terms, method, converged, skipped, skip_reason)
			 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
			runID, real(sm.S), imag(sm.S), real(sm.Value), imag(sm.Value),
			sm.ErrEstimate, sm.Terms, string(sm.Method), converged, skipped,
			nullIfEmpty(sm.SkipReason),
		)
		if err != nil {
			return fmt.Errorf("insert sample at %v: %w", sm.S, err)
		}
	}
	return tx.Commit()
}

// ListSamples returns a run's samples in insertion order.
func (s *Store) ListSamples(runID string) ([]grid.Sample, error) {
	rows, err := s.db.Query(
		`SELECT s_re, s_im, value_re, value_im, err_estimate, terms, method, converged, skipped, skip_reason
		 FROM samples WHERE run_id = ? ORDER BY id ASC`, runID,
	)
	if err != nil {
		return nil, fmt.Errorf("list samples: %w", err)
	}
	defer rows.Close()

	var samples []grid.Sample
	for rows.Next() {
		var sm grid.Sample
		var sRe, sIm, valRe, valIm float64
		var method string
		var converged, skipped int
		var skipReason sql.NullString
		if err := rows.Scan(&sRe, &sIm, &valRe, &valIm, &sm.ErrEstimate, &sm.Terms, &method, &converged, &skipped, &skipReason); err != nil {
			return nil, fmt.Errorf("scan sample: %w", err)
		}
		sm.S = complex(sRe, sIm)
		sm.Value = complex(valRe, valIm)
		sm.Method = zeta.Method(method)
		sm.Converged = converged != 0
		sm.Skipped = skipped != 0
		if skipReason.Valid {
			sm.SkipReason = skipReason.String
		}
		samples = append(samples, sm)
	}
	return samples, rows.Err()
}

// #endregion samples

// #region helpers
func nullIfEmpty(s string) interface{} {
	if s == "" {
		return nil
	}
	return s
}

// #endregion helpers

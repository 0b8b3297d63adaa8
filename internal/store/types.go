package store

import "time"

// #region run-record

// RunRecord is a persisted computation run: one zero sweep, grid scan, or
// pipeline execution.
type RunRecord struct {
	RunID      string
	Kind       string // "sweep" | "scan" | "pipeline"
	ParamsJSON string
	CreatedAt  time.Time
}

// #endregion run-record

// #region log-entry

// LogEntry is a single row in the run_log table, recording run lifecycle
// decisions for later inspection.
type LogEntry struct {
	RunID     string
	Event     string // "started" | "completed" | "failed"
	Reason    string
	CreatedAt time.Time
}

// #endregion log-entry

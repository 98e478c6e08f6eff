package model

import (
	"time"
)

// ConsoleReport is the structured summary for a single model.
type ConsoleReport struct {
	Model string

	// Main evaluation row, unmodified, and its standing in the main table.
	Main      ResultRow
	MainRank  int
	MainTotal int

	// Per-attack rows for Model, in file order.
	Attacks []AttackResultRow

	// FocusRow is nil when Model has no row for FocusAttack.
	FocusAttack  string
	FocusRow     *AttackResultRow
	FocusRanking []RankedAttackRow
}

// JobStatus is the outcome class of one batch job.
type JobStatus string

const (
	JobOK    JobStatus = "ok"
	JobFail  JobStatus = "fail"  // Exited non-zero
	JobError JobStatus = "error" // Never started
)

// JobResult is the outcome of one external script invocation.
type JobResult struct {
	RunID    string            `json:"run_id"`
	Script   string            `json:"script"`
	Status   JobStatus         `json:"status"`
	ExitCode int               `json:"exit_code"`
	Started  time.Time         `json:"started"`
	Duration time.Duration     `json:"duration"`
	Stdout   string            `json:"stdout,omitempty"`
	Stderr   string            `json:"stderr,omitempty"`
	Err      *ExternalJobError `json:"-"`
	Error    string            `json:"error,omitempty"`
}

// BatchReport accumulates job results in invocation order.
type BatchReport struct {
	RunID     string
	Results   []JobResult
	Succeeded int
	Failed    int
}

// Failures returns the recorded error of every failed job, in order.
func (b *BatchReport) Failures() []*ExternalJobError {
	var out []*ExternalJobError
	for _, r := range b.Results {
		if r.Err != nil {
			out = append(out, r.Err)
		}
	}
	return out
}

package domain

import (
	"encoding/json"
	"errors"
	"time"
)

var ErrInvalidLimits = errors.New("invalid execution limits")

// CaseStatus classifies the outcome of one test case run.
type CaseStatus string

const (
	CasePassed             CaseStatus = "passed"
	CaseFailed             CaseStatus = "failed"
	CaseError              CaseStatus = "error"
	CaseTimeout            CaseStatus = "timeout"
	CaseBackendUnavailable CaseStatus = "backend_unavailable"
)

// OverallStatus is the single verdict attached to a submission.
type OverallStatus string

const (
	OverallPassed  OverallStatus = "passed"
	OverallFailed  OverallStatus = "failed"
	OverallError   OverallStatus = "error"
	OverallWarning OverallStatus = "warning"
)

// CaseOutcome is the immutable record of one test case run. Created once,
// appended in input order, never mutated.
type CaseOutcome struct {
	Index         int             `json:"test_case"`
	Status        CaseStatus      `json:"status"`
	ActualOutput  json.RawMessage `json:"output,omitempty"`
	StderrExcerpt string          `json:"error,omitempty"`
	DurationMs    int64           `json:"duration_ms"`
}

// SubmissionResult aggregates all case outcomes into one verdict. It is
// produced in a single step after the last case finishes; PassedCount and
// TotalCount are always consistent with CaseOutcomes.
type SubmissionResult struct {
	OverallStatus OverallStatus `json:"status"`
	CaseOutcomes  []CaseOutcome `json:"test_results"`
	PassedCount   int           `json:"passed"`
	TotalCount    int           `json:"total"`
}

// RawExecution is what the isolation backend hands back for one run,
// uninterpreted.
type RawExecution struct {
	Stdout   string
	Stderr   string
	ExitCode int
	TimedOut bool
	Duration time.Duration
}

// ExecutionLimits are the hard resource ceilings applied to each isolation
// unit. Timeout is also the engine's own supervising deadline, so it must be
// shorter than any ambient timeout the backend applies on its own.
type ExecutionLimits struct {
	Timeout     time.Duration
	MemoryMB    int64
	CPUFraction float64
}

// Validate reports whether the limits are usable at all.
func (l ExecutionLimits) Validate() error {
	if l.Timeout <= 0 {
		return ErrInvalidLimits
	}
	if l.MemoryMB <= 0 {
		return ErrInvalidLimits
	}
	if l.CPUFraction <= 0 {
		return ErrInvalidLimits
	}
	return nil
}

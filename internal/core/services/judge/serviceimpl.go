package judge

import (
	"context"
	"errors"
	"strings"
	"time"
	"unicode/utf8"

	"gitlab.com/cloudjudge-2025.net/internal/core/ports/primary"
	"gitlab.com/cloudjudge-2025.net/internal/core/ports/secondary"
	"gitlab.com/cloudjudge-2025.net/internal/domain"
	"gitlab.com/cloudjudge-2025.net/internal/static/errs"
)

// maxStderrExcerpt bounds what a hostile submission can push into a stored
// verdict.
const maxStderrExcerpt = 2048

var _ IJudgeService = (*JudgeService)(nil)

// JudgeService is the engine: sequential per-case execution through the
// sandbox port, its own deadline per case, sticky fallback once the backend
// reports unavailable. No state is shared between Judge calls.
type JudgeService struct {
	sandbox secondary.Sandbox
	logger  primary.Logger
}

func NewJudgeService(sandbox secondary.Sandbox, logger primary.Logger) *JudgeService {
	return &JudgeService{
		sandbox: sandbox,
		logger:  logger,
	}
}

func (s *JudgeService) Judge(ctx context.Context, code string, cases []domain.TestCase, limits domain.ExecutionLimits) domain.SubmissionResult {
	outcomes := make([]domain.CaseOutcome, 0, len(cases))
	fallback := false

	for i, c := range cases {
		if fallback {
			// Fallback is global for the submission: once the backend is
			// known to be unreachable it is not contacted again.
			outcomes = append(outcomes, domain.CaseOutcome{
				Index:  i,
				Status: domain.CaseBackendUnavailable,
			})
			continue
		}

		outcome, unavailable := s.runCase(ctx, code, c, limits, i)
		if unavailable {
			s.logger.Warn("Isolation backend unavailable, judging in fallback mode", "case", i)
			fallback = true
		}
		outcomes = append(outcomes, outcome)
	}

	return aggregate(outcomes)
}

// runCase executes one test case. The second return value reports that the
// backend itself was unreachable.
func (s *JudgeService) runCase(ctx context.Context, code string, c domain.TestCase, limits domain.ExecutionLimits, idx int) (domain.CaseOutcome, bool) {
	outcome := domain.CaseOutcome{Index: idx}
	start := time.Now()

	// The engine's deadline supervises the backend's own enforcement; a
	// misconfigured backend can never block a submission past this.
	runCtx, cancel := context.WithTimeout(ctx, limits.Timeout)
	raw, err := s.sandbox.Run(runCtx, code, c.Input, limits)
	cancel()

	outcome.DurationMs = time.Since(start).Milliseconds()

	switch {
	case errors.Is(err, errs.BackendUnavailable):
		outcome.Status = domain.CaseBackendUnavailable
		return outcome, true

	case errors.Is(err, context.DeadlineExceeded):
		outcome.Status = domain.CaseTimeout
		return outcome, false

	case err != nil:
		outcome.Status = domain.CaseError
		outcome.StderrExcerpt = excerpt(err.Error())
		return outcome, false

	case raw.TimedOut:
		outcome.Status = domain.CaseTimeout
		return outcome, false

	case raw.ExitCode != 0:
		outcome.Status = domain.CaseError
		msg := raw.Stderr
		if strings.TrimSpace(msg) == "" {
			msg = "execution failed"
		}
		outcome.StderrExcerpt = excerpt(msg)
		return outcome, false
	}

	return s.classifyOutput(outcome, raw.Stdout, c), false
}

// classifyOutput parses the authoritative last stdout line and compares it
// structurally against the expected value.
func (s *JudgeService) classifyOutput(outcome domain.CaseOutcome, stdout string, c domain.TestCase) domain.CaseOutcome {
	payload := lastLine(stdout)
	if payload == "" {
		outcome.Status = domain.CaseError
		outcome.StderrExcerpt = "no result payload on stdout"
		return outcome
	}

	equal, err := outputsEqual([]byte(payload), c.Expected)
	if err != nil {
		outcome.Status = domain.CaseError
		outcome.StderrExcerpt = excerpt("malformed result payload: " + err.Error())
		return outcome
	}

	outcome.ActualOutput = []byte(payload)
	if equal {
		outcome.Status = domain.CasePassed
	} else {
		outcome.Status = domain.CaseFailed
	}
	return outcome
}

// aggregate derives the submission verdict from the outcome sequence in one
// step. Precedence: unavailable infrastructure outranks a code defect, and a
// crash outranks a wrong answer.
func aggregate(outcomes []domain.CaseOutcome) domain.SubmissionResult {
	result := domain.SubmissionResult{
		CaseOutcomes: outcomes,
		TotalCount:   len(outcomes),
	}

	var hasUnavailable, hasError, hasFailed bool
	for _, o := range outcomes {
		switch o.Status {
		case domain.CasePassed:
			result.PassedCount++
		case domain.CaseBackendUnavailable:
			hasUnavailable = true
		case domain.CaseError:
			hasError = true
		case domain.CaseFailed, domain.CaseTimeout:
			hasFailed = true
		}
	}

	switch {
	case hasUnavailable:
		result.OverallStatus = domain.OverallWarning
	case hasError:
		result.OverallStatus = domain.OverallError
	case hasFailed:
		result.OverallStatus = domain.OverallFailed
	case len(outcomes) == 0:
		// zero cases is no evidence of correctness
		result.OverallStatus = domain.OverallFailed
	default:
		result.OverallStatus = domain.OverallPassed
	}

	return result
}

// lastLine returns the last non-blank line, per the calling convention that
// only the final stdout line carries the result.
func lastLine(stdout string) string {
	lines := strings.Split(stdout, "\n")
	for i := len(lines) - 1; i >= 0; i-- {
		if line := strings.TrimSpace(lines[i]); line != "" {
			return line
		}
	}
	return ""
}

// excerpt caps the string without splitting a multi-byte rune at the cut;
// the result is stored in a JSON verdict and must stay valid UTF-8.
func excerpt(s string) string {
	if len(s) <= maxStderrExcerpt {
		return s
	}
	cut := maxStderrExcerpt
	for cut > 0 && !utf8.RuneStart(s[cut]) {
		cut--
	}
	return s[:cut]
}

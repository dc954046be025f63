package judge

import (
	"context"

	"gitlab.com/cloudjudge-2025.net/internal/domain"
)

// IJudgeService turns a submission into a single verdict.
type IJudgeService interface {
	// Judge runs the code against every case in order and aggregates the
	// per-case outcomes. It is total: every failure mode, including an
	// unreachable isolation backend, is reported through the result, never
	// as an error to the caller.
	Judge(ctx context.Context, code string, cases []domain.TestCase, limits domain.ExecutionLimits) domain.SubmissionResult
}

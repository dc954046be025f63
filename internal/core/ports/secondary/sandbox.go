package secondary

import (
	"context"
	"encoding/json"

	"gitlab.com/cloudjudge-2025.net/internal/domain"
)

// Sandbox executes one piece of source code against one input inside a
// disposable, resource-limited isolation unit and returns the raw textual
// result without judging its correctness.
//
// Run returns errs.BackendUnavailable (wrapped) when the isolation mechanism
// itself cannot be reached; every execution-level failure is reported through
// the RawExecution instead. Implementations must destroy the unit on every
// exit path and must never retry.
type Sandbox interface {
	Run(ctx context.Context, code string, input json.RawMessage, limits domain.ExecutionLimits) (*domain.RawExecution, error)
}

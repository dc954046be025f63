package secondary

import (
	"context"

	"github.com/google/uuid"

	"gitlab.com/cloudjudge-2025.net/internal/domain"
)

// CasesCache caches the parsed test cases of a problem so repeated
// submissions skip the database read and the JSON parse. A miss or a cache
// error must fall through to the problem store.
type CasesCache interface {
	Get(ctx context.Context, problemID uuid.UUID) ([]domain.TestCase, error)
	Set(ctx context.Context, problemID uuid.UUID, cases []domain.TestCase) error
	Invalidate(ctx context.Context, problemID uuid.UUID) error
}

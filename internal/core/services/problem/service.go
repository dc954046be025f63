package problem

import (
	"context"

	"github.com/google/uuid"

	"gitlab.com/cloudjudge-2025.net/internal/domain"
)

// UpdateParams carries the optional fields of a problem update; nil means
// leave unchanged.
type UpdateParams struct {
	Title       *string
	Description *string
	Difficulty  *string
	TestCases   *string
}

type IProblemService interface {
	Create(ctx context.Context, creatorID uuid.UUID, problem *domain.Problem) (*domain.Problem, error)
	Update(ctx context.Context, userID, problemID uuid.UUID, params UpdateParams) (*domain.Problem, error)
	Get(ctx context.Context, id uuid.UUID) (*domain.Problem, error)
	List(ctx context.Context) ([]*domain.Problem, error)
}

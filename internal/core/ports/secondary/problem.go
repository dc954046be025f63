package secondary

import (
	"context"

	"github.com/google/uuid"

	"gitlab.com/cloudjudge-2025.net/internal/domain"
)

type ProblemPort interface {
	Create(ctx context.Context, problem *domain.Problem) error
	Update(ctx context.Context, problem *domain.Problem) error
	Get(ctx context.Context, id uuid.UUID) (*domain.Problem, error)
	List(ctx context.Context) ([]*domain.Problem, error)
}

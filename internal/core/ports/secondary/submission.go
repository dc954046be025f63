package secondary

import (
	"context"

	"github.com/google/uuid"

	"gitlab.com/cloudjudge-2025.net/internal/domain"
)

// UserStats is the per-user aggregate the stats endpoint reports.
type UserStats struct {
	TotalSubmissions  int `db:"total_submissions" json:"total_submissions"`
	PassedSubmissions int `db:"passed_submissions" json:"passed_submissions"`
	UniqueSolved      int `db:"unique_solved" json:"unique_problems_solved"`
}

type SubmissionPort interface {
	Create(ctx context.Context, submission *domain.Submission) error
	Get(ctx context.Context, id uuid.UUID) (*domain.Submission, error)
	ListByUser(ctx context.Context, userID uuid.UUID) ([]*domain.Submission, error)
	ListByUserAndProblem(ctx context.Context, userID, problemID uuid.UUID) ([]*domain.Submission, error)
	StatsByUser(ctx context.Context, userID uuid.UUID) (*UserStats, error)
}
